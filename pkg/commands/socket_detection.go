package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Timeout for validating socket connectivity
const socketValidationTimeout = 3 * time.Second

const (
	// SnapdSocketPath is where every modern distro puts the snapd socket
	SnapdSocketPath = "/run/snapd.socket"

	// snapdSocketPathLegacy covers systems where /var/run is a real directory
	// rather than a symlink to /run
	snapdSocketPathLegacy = "/var/run/snapd.socket"
)

var ErrNoSnapdSocket = errors.New("no working snapd socket found")

// Cache for socket detection results
var (
	cachedSnapdSocket string
	snapdSocketOnce   sync.Once
	snapdSocketErr    error
)

// Swappable for tests
var (
	validateSnapdSocketFunc = validateSnapdSocket
	statFunc                = os.Stat
)

// DetectSnapdSocket finds a snapd socket that answers.
// Results are cached after the first detection.
func DetectSnapdSocket(log *logrus.Entry) (string, error) {
	snapdSocketOnce.Do(func() {
		cachedSnapdSocket, snapdSocketErr = detectSnapdSocketInternal(log)
	})
	return cachedSnapdSocket, snapdSocketErr
}

// ResetSnapdSocketCache clears the cached detection result so the next call
// probes again. Used by tests and by the retry path after the user fixes
// their snapd install.
func ResetSnapdSocketCache() {
	snapdSocketOnce = sync.Once{}
	cachedSnapdSocket = ""
	snapdSocketErr = nil
}

func detectSnapdSocketInternal(log *logrus.Entry) (string, error) {
	// Priority 1: explicit SNAPD_SOCKET environment variable. We respect the
	// override even when the probe fails so that the error the user ends up
	// seeing mentions the socket they actually asked for.
	if socketPath := os.Getenv("SNAPD_SOCKET"); socketPath != "" {
		log.Debugf("Using SNAPD_SOCKET from environment: %s", socketPath)
		ctx, cancel := context.WithTimeout(context.Background(), socketValidationTimeout)
		defer cancel()
		if err := validateSnapdSocketFunc(ctx, log, socketPath); err != nil {
			log.Warnf("SNAPD_SOCKET=%s is set but not accessible: %v", socketPath, err)
		}
		return socketPath, nil
	}

	// Priority 2: well-known socket locations
	var lastErr error
	for _, socketPath := range []string{SnapdSocketPath, snapdSocketPathLegacy} {
		// Fast path: check if socket file exists
		if _, err := statFunc(socketPath); err != nil {
			continue
		}

		// Validate by actually connecting
		ctx, cancel := context.WithTimeout(context.Background(), socketValidationTimeout)
		err := validateSnapdSocketFunc(ctx, log, socketPath)
		cancel()

		if err != nil {
			log.Debugf("Socket %s exists but validation failed: %v", socketPath, err)
			if strings.Contains(err.Error(), "permission denied") {
				lastErr = fmt.Errorf("%s: permission denied (does your user have access to the snapd socket?)", socketPath)
			} else {
				lastErr = fmt.Errorf("%s: %w", socketPath, err)
			}
			continue
		}

		log.Infof("Connected to snapd via %s", socketPath)
		return socketPath, nil
	}

	// All candidates failed - provide actionable error
	if lastErr != nil {
		return "", fmt.Errorf("%w: last error: %v", ErrNoSnapdSocket, lastErr)
	}

	msg := fmt.Sprintf("%v: ensure snapd is installed and running", ErrNoSnapdSocket)
	return "", errors.New(msg)
}

// validateSnapdSocket checks that whatever listens on socketPath actually
// speaks the snapd API, not just that something accepts connections.
func validateSnapdSocket(ctx context.Context, log *logrus.Entry, socketPath string) error {
	client := NewSocketClient(log, socketPath, socketValidationTimeout)
	if _, err := client.SystemInfo(ctx); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	return nil
}
