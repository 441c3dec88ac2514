package commands

import (
	"context"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"

	"github.com/yeager/snap-l10n/pkg/config"
	"github.com/yeager/snap-l10n/pkg/i18n"
)

// SnapdCommand ties the snap side of the app together: it asks snapd what is
// installed and drives the scanner over each snap's install tree.
type SnapdCommand struct {
	Log       *logrus.Entry
	OSCommand *OSCommand
	Tr        *i18n.TranslationSet
	Config    *config.AppConfig
	Client    SnapdClient

	// Scanner is swapped out when the reference locales change, so scan
	// workers grab it through currentScanner
	Scanner *Scanner

	// SocketPath is the unix socket we ended up talking to, kept around for
	// the status panel
	SocketPath string

	// MountDir is the base directory snaps are mounted under
	MountDir string

	SnapMutex deadlock.Mutex

	// CoverageHistory accumulates one sample per completed scan sweep,
	// guarded by HistoryMutex
	CoverageHistory []CoverageSample
	HistoryMutex    deadlock.Mutex
}

// NewSnapdCommand detects a snapd socket unless config forces one, and wires
// up the scanner against the configured reference locales.
func NewSnapdCommand(log *logrus.Entry, osCommand *OSCommand, tr *i18n.TranslationSet, appConfig *config.AppConfig) (*SnapdCommand, error) {
	socketPath := appConfig.UserConfig.Snapd.Socket
	if socketPath == "" {
		detected, err := DetectSnapdSocket(log)
		if err != nil {
			return nil, err
		}
		socketPath = detected
	}

	client := NewSocketClient(log, socketPath, appConfig.UserConfig.Snapd.RequestTimeout)

	return &SnapdCommand{
		Log:        log,
		OSCommand:  osCommand,
		Tr:         tr,
		Config:     appConfig,
		Client:     client,
		Scanner:    NewScanner(log, appConfig.UserConfig.Locales.Reference, appConfig.UserConfig.Scan.SkipLocaleDirs),
		SocketPath: socketPath,
		MountDir:   DefaultSnapMountDir(),
	}, nil
}

// GetSnaps returns a model for every installed snap, sorted by name. Models
// from existingSnaps are reused where the name matches so that scan state
// survives a refresh.
func (c *SnapdCommand) GetSnaps(ctx context.Context, existingSnaps []*Snap) ([]*Snap, error) {
	c.SnapMutex.Lock()
	defer c.SnapMutex.Unlock()

	details, err := c.Client.ListSnaps(ctx)
	if err != nil {
		return nil, err
	}

	ownSnaps := make([]*Snap, len(details))

	for i, d := range details {
		var newSnap *Snap

		// check if we already have data stored against the snap
		for _, existingSnap := range existingSnaps {
			if existingSnap.Name == d.Name {
				newSnap = existingSnap
				break
			}
		}

		// initialise the snap if it's completely new
		if newSnap == nil {
			newSnap = &Snap{
				Name:      d.Name,
				OSCommand: c.OSCommand,
				Log:       c.Log,
				Tr:        c.Tr,
			}
		}

		// a revision bump moves the current symlink, so the old scan no
		// longer describes what's on disk
		if newSnap.Details.Revision != d.Revision {
			newSnap.StatusMutex.Lock()
			newSnap.Scanned = false
			newSnap.ScanError = nil
			newSnap.StatusMutex.Unlock()
		}

		newSnap.ID = d.ID
		newSnap.Details = d
		newSnap.InstallPath = filepath.Join(c.MountDir, d.Name, "current")

		ownSnaps[i] = newSnap
	}

	sort.Slice(ownSnaps, func(i, j int) bool { return ownSnaps[i].Name < ownSnaps[j].Name })

	return ownSnaps, nil
}

// SetReferenceLocales rebuilds the scanner against a new reference list.
// Already recorded scan results keep describing the old list until the next
// sweep, so callers should kick one off straight after.
func (c *SnapdCommand) SetReferenceLocales(locales []string) {
	c.SnapMutex.Lock()
	defer c.SnapMutex.Unlock()

	c.Scanner = NewScanner(c.Log, locales, c.Config.UserConfig.Scan.SkipLocaleDirs)
}

func (c *SnapdCommand) currentScanner() *Scanner {
	c.SnapMutex.Lock()
	defer c.SnapMutex.Unlock()

	return c.Scanner
}

// ScanOne scans a single snap's install tree and records the outcome on the
// snap. A missing install path counts as untranslated rather than as a
// failure, since snaps without desktop entries are a normal part of any
// system.
func (c *SnapdCommand) ScanOne(snap *Snap) {
	status, err := c.currentScanner().Scan(snap.InstallPath)
	if HasErrorCode(err, PathNotFound) {
		err = nil
	}
	if err != nil {
		c.Log.Warnf("scanning %s failed: %v", snap.Name, err)
	}
	snap.RecordScanResult(status, err)
}

// ScanAll sweeps every snap's install tree, scan.workers trees at a time.
// Individual failures are recorded on the snap and never abort the sweep.
func (c *SnapdCommand) ScanAll(ctx context.Context, snaps []*Snap) {
	workers := c.Config.UserConfig.Scan.Workers
	if workers < 1 {
		workers = 1
	}

	sem := make(chan struct{}, workers)
	wg := sync.WaitGroup{}
	for _, snap := range snaps {
		snap := snap
		wg.Add(1)
		go func() {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				return
			}
			defer func() { <-sem }()

			c.ScanOne(snap)
		}()
	}
	wg.Wait()

	// a cancelled sweep leaves gaps, so it doesn't get a history sample
	if ctx.Err() == nil {
		c.RecordCoverage(snaps)
	}
}

// RecordCoverage appends one history sample summarising the given snaps.
func (c *SnapdCommand) RecordCoverage(snaps []*Snap) {
	sample := CoverageSample{RecordedAt: time.Now()}

	var ratioSum float64
	for _, snap := range snaps {
		state := snap.CurrentScanState()
		if !state.Scanned || state.Err != nil {
			continue
		}
		sample.ScannedSnaps++
		ratioSum += state.Status.CoverageRatio()
		switch state.Status.Classification {
		case ClassificationComplete:
			sample.TranslatedSnaps++
		case ClassificationPartial:
			sample.PartialSnaps++
		default:
			sample.UntranslatedSnaps++
		}
	}
	if sample.ScannedSnaps > 0 {
		sample.Percentage = ratioSum / float64(sample.ScannedSnaps) * 100
	}

	maxSamples := c.Config.UserConfig.Coverage.MaxSamples

	c.HistoryMutex.Lock()
	defer c.HistoryMutex.Unlock()

	c.CoverageHistory = append(c.CoverageHistory, sample)
	if maxSamples > 0 && len(c.CoverageHistory) > maxSamples {
		c.CoverageHistory = c.CoverageHistory[len(c.CoverageHistory)-maxSamples:]
	}
}

// CoverageSamples returns a copy of the recorded history for rendering.
func (c *SnapdCommand) CoverageSamples() []CoverageSample {
	c.HistoryMutex.Lock()
	defer c.HistoryMutex.Unlock()

	return append([]CoverageSample(nil), c.CoverageHistory...)
}

// DaemonInfo asks snapd about itself.
func (c *SnapdCommand) DaemonInfo(ctx context.Context) (*SystemInfo, error) {
	return c.Client.SystemInfo(ctx)
}
