package commands

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/go-errors/errors"
	"github.com/stretchr/testify/assert"
)

func TestGetSnapsSortsAndMerges(t *testing.T) {
	client := &MockSnapdClient{
		ListSnapsFunc: func(ctx context.Context) ([]SnapDetails, error) {
			return []SnapDetails{
				{ID: "b2", Name: "vlc", Revision: "3"},
				{ID: "a1", Name: "firefox", Revision: "10"},
			}, nil
		},
	}
	command := NewDummySnapdCommandWithClient(client)

	snaps, err := command.GetSnaps(context.Background(), nil)
	assert.NoError(t, err)
	assert.Equal(t, "firefox", snaps[0].Name)
	assert.Equal(t, "vlc", snaps[1].Name)
	assert.Equal(t, filepath.Join("/snap", "firefox", "current"), snaps[0].InstallPath)

	// record a scan against firefox, then refresh: the model and its scan
	// state have to survive
	snaps[0].RecordScanResult(TranslationStatus{Classification: ClassificationPartial}, nil)

	refreshed, err := command.GetSnaps(context.Background(), snaps)
	assert.NoError(t, err)
	assert.Same(t, snaps[0], refreshed[0])
	assert.True(t, refreshed[0].CurrentScanState().Scanned)
}

func TestGetSnapsResetsScanStateOnRevisionChange(t *testing.T) {
	revision := "10"
	client := &MockSnapdClient{
		ListSnapsFunc: func(ctx context.Context) ([]SnapDetails, error) {
			return []SnapDetails{{ID: "a1", Name: "firefox", Revision: revision}}, nil
		},
	}
	command := NewDummySnapdCommandWithClient(client)

	snaps, err := command.GetSnaps(context.Background(), nil)
	assert.NoError(t, err)
	snaps[0].RecordScanResult(TranslationStatus{Classification: ClassificationComplete}, nil)

	revision = "11"
	refreshed, err := command.GetSnaps(context.Background(), snaps)
	assert.NoError(t, err)
	assert.Same(t, snaps[0], refreshed[0])
	assert.False(t, refreshed[0].CurrentScanState().Scanned)
}

func TestGetSnapsPropagatesListError(t *testing.T) {
	client := &MockSnapdClient{
		ListSnapsFunc: func(ctx context.Context) ([]SnapDetails, error) {
			return nil, ComplexError{Code: DaemonUnavailable, Message: "gone"}
		},
	}
	command := NewDummySnapdCommandWithClient(client)

	_, err := command.GetSnaps(context.Background(), nil)

	assert.True(t, HasErrorCode(err, DaemonUnavailable))
}

func TestScanAllRecordsStatusPerSnap(t *testing.T) {
	command := NewDummySnapdCommand()
	command.Scanner = NewScanner(NewDummyLog(), []string{"sv", "de"}, false)

	base := t.TempDir()
	partialDir := filepath.Join(base, "partial", "current")
	writeDesktopFile(t, partialDir, "meta/gui/app.desktop", "[Desktop Entry]\nName[sv]=A\n")

	snaps := []*Snap{
		{Name: "partial", InstallPath: partialDir, Log: command.Log},
		{Name: "missing", InstallPath: filepath.Join(base, "missing", "current"), Log: command.Log},
	}

	command.ScanAll(context.Background(), snaps)

	partialState := snaps[0].CurrentScanState()
	assert.True(t, partialState.Scanned)
	assert.NoError(t, partialState.Err)
	assert.Equal(t, ClassificationPartial, partialState.Status.Classification)

	// a missing install path counts as untranslated, not as a failure
	missingState := snaps[1].CurrentScanState()
	assert.True(t, missingState.Scanned)
	assert.NoError(t, missingState.Err)
	assert.Equal(t, ClassificationNone, missingState.Status.Classification)
	assert.Equal(t, []string{"sv", "de"}, missingState.Status.MissingLocales)

	samples := command.CoverageSamples()
	assert.Len(t, samples, 1)
	assert.Equal(t, 2, samples[0].ScannedSnaps)
	assert.Equal(t, 1, samples[0].PartialSnaps)
	assert.Equal(t, 1, samples[0].UntranslatedSnaps)
	assert.InDelta(t, 25.0, samples[0].Percentage, 0.001)
}

func TestScanAllCancelledSweepRecordsNoSample(t *testing.T) {
	command := NewDummySnapdCommand()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	snaps := []*Snap{{Name: "a", InstallPath: t.TempDir(), Log: command.Log}}
	command.ScanAll(ctx, snaps)

	assert.Empty(t, command.CoverageSamples())
}

func TestRecordCoverageCapsHistory(t *testing.T) {
	command := NewDummySnapdCommand()
	command.Config.UserConfig.Coverage.MaxSamples = 3

	snap := &Snap{Name: "a", Log: command.Log}
	snap.RecordScanResult(TranslationStatus{
		Classification: ClassificationComplete,
		PresentLocales: []string{"sv"},
	}, nil)

	for i := 0; i < 5; i++ {
		command.RecordCoverage([]*Snap{snap})
	}

	samples := command.CoverageSamples()
	assert.Len(t, samples, 3)
	assert.Equal(t, 1, samples[0].TranslatedSnaps)
	assert.InDelta(t, 100.0, samples[0].Percentage, 0.001)
}

func TestRecordCoverageSkipsUnscannedAndErrored(t *testing.T) {
	command := NewDummySnapdCommand()

	unscanned := &Snap{Name: "u"}
	errored := &Snap{Name: "e"}
	errored.RecordScanResult(TranslationStatus{}, errors.New("boom"))

	command.RecordCoverage([]*Snap{unscanned, errored})

	samples := command.CoverageSamples()
	assert.Len(t, samples, 1)
	assert.Zero(t, samples[0].ScannedSnaps)
	assert.Zero(t, samples[0].Percentage)
}
