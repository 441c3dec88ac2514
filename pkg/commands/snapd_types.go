package commands

import (
	"encoding/json"
	"time"
)

// snapdResponse is the envelope snapd wraps around every REST reply.
// See https://snapcraft.io/docs/snapd-api for the format.
type snapdResponse struct {
	Type       string          `json:"type"`
	StatusCode int             `json:"status-code"`
	Status     string          `json:"status"`
	Result     json.RawMessage `json:"result"`
}

// snapdError is the result payload of a type=error envelope.
type snapdError struct {
	Message string `json:"message"`
	Kind    string `json:"kind,omitempty"`
}

// SnapDetails is the wire format snapd uses for an installed snap.
// Only the fields we actually read are listed; snapd sends plenty more.
type SnapDetails struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Title           string        `json:"title"`
	Summary         string        `json:"summary"`
	Version         string        `json:"version"`
	Revision        string        `json:"revision"`
	Channel         string        `json:"channel"`
	TrackingChannel string        `json:"tracking-channel"`
	Confinement     string        `json:"confinement"`
	Type            string        `json:"type"`
	Status          string        `json:"status"`
	Developer       string        `json:"developer"`
	Publisher       SnapPublisher `json:"publisher"`
	Icon            string        `json:"icon"`
	Apps            []SnapApp     `json:"apps"`
	InstallDate     time.Time     `json:"install-date"`
	InstalledSize   int64         `json:"installed-size"`
	MountedFrom     string        `json:"mounted-from"`
	Website         string        `json:"website"`
}

// PublisherName returns the publisher's display name, falling back to the
// store username for accounts that never set one.
func (d SnapDetails) PublisherName() string {
	if d.Publisher.DisplayName != "" {
		return d.Publisher.DisplayName
	}
	return d.Publisher.Username
}

// SnapPublisher identifies the store account that published a snap.
type SnapPublisher struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display-name"`
	Validation  string `json:"validation"`
}

// SnapApp is an application exposed by a snap. Snaps with at least one
// desktop-file carrying app are the ones users see in their launcher.
type SnapApp struct {
	Snap        string `json:"snap,omitempty"`
	Name        string `json:"name"`
	DesktopFile string `json:"desktop-file,omitempty"`
	Daemon      string `json:"daemon,omitempty"`
}

// SystemInfo is the subset of /v2/system-info we care about. We hit that
// endpoint to verify a socket actually has snapd on the other end, and we
// show the version in the status panel.
type SystemInfo struct {
	Series    string        `json:"series"`
	Version   string        `json:"version"`
	OnClassic bool          `json:"on-classic"`
	OSRelease SystemRelease `json:"os-release"`
}

// SystemRelease mirrors the os-release block of /v2/system-info.
type SystemRelease struct {
	ID        string `json:"id"`
	VersionID string `json:"version-id"`
}
