package commands

import (
	"github.com/sasha-s/go-deadlock"
)

// Daemon is the status panel's single item: our connection to snapd.
type Daemon struct {
	Name       string
	SocketPath string

	// Info is refreshed in the background, so reads go through CurrentInfo
	Info      *SystemInfo
	InfoMutex deadlock.Mutex
}

// RecordInfo stores the latest system-info reply from snapd.
func (d *Daemon) RecordInfo(info *SystemInfo) {
	d.InfoMutex.Lock()
	defer d.InfoMutex.Unlock()

	d.Info = info
}

// CurrentInfo returns the last system-info reply, or nil if we have not
// reached the daemon yet.
func (d *Daemon) CurrentInfo() *SystemInfo {
	d.InfoMutex.Lock()
	defer d.InfoMutex.Unlock()

	return d.Info
}
