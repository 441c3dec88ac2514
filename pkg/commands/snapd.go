package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/go-errors/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

// SnapdClient is the part of snapd's REST API we consume. The concrete
// implementation talks HTTP over the snapd unix socket; tests swap in a mock.
type SnapdClient interface {
	ListSnaps(ctx context.Context) ([]SnapDetails, error)
	SystemInfo(ctx context.Context) (*SystemInfo, error)
}

// SocketClient implements SnapdClient against a local snapd unix socket.
type SocketClient struct {
	Log        *logrus.Entry
	socketPath string
	httpClient *http.Client
}

// NewSocketClient returns a client for the snapd socket at socketPath.
func NewSocketClient(log *logrus.Entry, socketPath string, timeout time.Duration) *SocketClient {
	return &SocketClient{
		Log:        log,
		socketPath: socketPath,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
					dialer := net.Dialer{}
					return dialer.DialContext(ctx, "unix", socketPath)
				},
			},
		},
	}
}

// SocketPath returns the unix socket this client dials.
func (c *SocketClient) SocketPath() string {
	return c.socketPath
}

// ListSnaps returns every snap currently installed on the system. An entry
// that fails to decode is skipped with a warning instead of failing the whole
// listing, so one strange snap can't hide all the others.
func (c *SocketClient) ListSnaps(ctx context.Context) ([]SnapDetails, error) {
	var rawSnaps []json.RawMessage
	if err := c.get(ctx, "/v2/snaps", &rawSnaps); err != nil {
		return nil, err
	}

	details := make([]SnapDetails, 0, len(rawSnaps))
	for i, raw := range rawSnaps {
		var snap SnapDetails
		if err := json.Unmarshal(raw, &snap); err != nil {
			c.Log.Warnf("skipping undecodable snap entry %d: %v", i, err)
			continue
		}
		if snap.Name == "" {
			c.Log.Warnf("skipping snap entry %d with no name", i)
			continue
		}
		details = append(details, snap)
	}

	if len(rawSnaps) > 0 && len(details) == 0 {
		return nil, ComplexError{
			Code:    MalformedResponse,
			Message: "no snap entry in the snapd response could be decoded",
			frame:   xerrors.Caller(1),
		}
	}

	return details, nil
}

// SystemInfo fetches daemon information. It doubles as our liveness probe:
// if this succeeds we know the thing on the other end of the socket is snapd.
func (c *SocketClient) SystemInfo(ctx context.Context) (*SystemInfo, error) {
	info := &SystemInfo{}
	if err := c.get(ctx, "/v2/system-info", info); err != nil {
		return nil, err
	}
	return info, nil
}

// get performs a GET against snapd's REST API and decodes the result payload
// into out. The host in the URL is arbitrary because the transport dials the
// unix socket regardless.
func (c *SocketClient) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://localhost"+path, nil)
	if err != nil {
		return WrapError(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ComplexError{
			Code:    DaemonUnavailable,
			Message: fmt.Sprintf("cannot reach snapd at %s: %v", c.socketPath, err),
			frame:   xerrors.Caller(1),
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ComplexError{
			Code:    DaemonUnavailable,
			Message: fmt.Sprintf("reading snapd response for %s: %v", path, err),
			frame:   xerrors.Caller(1),
		}
	}

	var envelope snapdResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ComplexError{
			Code:    MalformedResponse,
			Message: fmt.Sprintf("cannot parse snapd response for %s: %v", path, err),
			frame:   xerrors.Caller(1),
		}
	}

	// snapd reported an API-level failure. The daemon is alive and speaking
	// our protocol, so this gets neither of the transport error codes.
	if envelope.Type == "error" {
		message := envelope.Status
		var payload snapdError
		if err := json.Unmarshal(envelope.Result, &payload); err == nil && payload.Message != "" {
			message = payload.Message
		}
		return errors.Errorf("snapd: %s", message)
	}

	if envelope.Type != "sync" {
		return ComplexError{
			Code:    MalformedResponse,
			Message: fmt.Sprintf("unexpected snapd response type %q for %s", envelope.Type, path),
			frame:   xerrors.Caller(1),
		}
	}

	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return ComplexError{
			Code:    MalformedResponse,
			Message: fmt.Sprintf("cannot parse snapd result for %s: %v", path, err),
			frame:   xerrors.Caller(1),
		}
	}

	return nil
}
