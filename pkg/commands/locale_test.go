package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func scannedSnap(name string, desktopFiles, presentLocales []string) *Snap {
	snap := &Snap{Name: name}
	snap.RecordScanResult(TranslationStatus{
		DesktopFiles:   desktopFiles,
		PresentLocales: presentLocales,
	}, nil)
	return snap
}

func TestBuildLocaleSummaries(t *testing.T) {
	snaps := []*Snap{
		scannedSnap("firefox", []string{"meta/gui/firefox.desktop"}, []string{"sv", "fr"}),
		scannedSnap("calc", []string{"meta/gui/calc.desktop"}, []string{"sv"}),
		scannedSnap("core", nil, nil),
		{Name: "pending"},
	}

	locales := BuildLocaleSummaries([]string{"sv", "fr", "de"}, snaps)

	assert.Len(t, locales, 3)

	assert.Equal(t, "sv", locales[0].Code)
	assert.Equal(t, 2, locales[0].TranslatedSnaps)
	assert.Equal(t, 2, locales[0].TotalSnaps)

	assert.Equal(t, "fr", locales[1].Code)
	assert.Equal(t, 1, locales[1].TranslatedSnaps)

	assert.Equal(t, "de", locales[2].Code)
	assert.Equal(t, 0, locales[2].TranslatedSnaps)
	assert.Equal(t, 2, locales[2].TotalSnaps)
}

func TestBuildLocaleSummariesWithNoSnaps(t *testing.T) {
	locales := BuildLocaleSummaries([]string{"sv"}, nil)

	assert.Len(t, locales, 1)
	assert.Equal(t, 0, locales[0].TotalSnaps)
	assert.Equal(t, 0.0, locales[0].CoverageRatio())
}

func TestLocaleCoverageRatio(t *testing.T) {
	locale := &Locale{Code: "sv", TranslatedSnaps: 3, TotalSnaps: 4}

	assert.InDelta(t, 0.75, locale.CoverageRatio(), 0.0001)
}
