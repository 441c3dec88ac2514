package commands

import (
	"os"
	"path/filepath"

	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"

	"github.com/yeager/snap-l10n/pkg/i18n"
)

// Snap : an installed snap package together with its scan state
type Snap struct {
	Name string
	ID   string

	// InstallPath is where the active revision is mounted, usually
	// /snap/<name>/current
	InstallPath string

	Details   SnapDetails
	OSCommand *OSCommand
	Log       *logrus.Entry
	Tr        *i18n.TranslationSet

	// Status, ScanError and Scanned are written by scan workers while the gui
	// reads them for rendering, so go through CurrentScanState/RecordScanResult
	Status    TranslationStatus
	ScanError error
	Scanned   bool

	StatusMutex deadlock.Mutex
}

// ScanState is a render-safe copy of a snap's scan outcome.
type ScanState struct {
	Status  TranslationStatus
	Err     error
	Scanned bool
}

// RecordScanResult stores the outcome of a scan, replacing whatever we had.
func (s *Snap) RecordScanResult(status TranslationStatus, err error) {
	s.StatusMutex.Lock()
	defer s.StatusMutex.Unlock()

	s.Status = status
	s.ScanError = err
	s.Scanned = true
}

// CurrentScanState returns a copy of the scan state for rendering.
func (s *Snap) CurrentScanState() ScanState {
	s.StatusMutex.Lock()
	defer s.StatusMutex.Unlock()

	return ScanState{Status: s.Status, Err: s.ScanError, Scanned: s.Scanned}
}

// StoreURL returns the snap's page on the store website.
func (s *Snap) StoreURL() string {
	return "https://snapcraft.io/" + s.Name
}

// FirstDesktopFile returns the absolute path of the first scanned desktop
// entry, if there is one.
func (s *Snap) FirstDesktopFile() (string, bool) {
	state := s.CurrentScanState()
	if len(state.Status.DesktopFiles) == 0 {
		return "", false
	}
	return filepath.Join(s.InstallPath, state.Status.DesktopFiles[0]), true
}

// HasDesktopEntries tells us whether the last scan found any desktop files.
func (s *Snap) HasDesktopEntries() bool {
	state := s.CurrentScanState()
	return len(state.Status.DesktopFiles) > 0
}

// DefaultSnapMountDir returns where snaps are mounted on this system. Most
// distros use /snap; Fedora keeps it under /var/lib/snapd/snap.
func DefaultSnapMountDir() string {
	if _, err := os.Stat("/snap"); err == nil {
		return "/snap"
	}
	return "/var/lib/snapd/snap"
}
