package presentation

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/yeager/snap-l10n/pkg/commands"
)

func TestIsSystemLocale(t *testing.T) {
	tests := []struct {
		name         string
		systemLocale string
		code         string
		expected     bool
	}{
		{
			name:         "exact match",
			systemLocale: "de_DE",
			code:         "de_DE",
			expected:     true,
		},
		{
			name:         "language prefix matches regional system locale",
			systemLocale: "de_DE",
			code:         "de",
			expected:     true,
		},
		{
			name:         "different language",
			systemLocale: "de_DE",
			code:         "fr",
			expected:     false,
		},
		{
			name:         "regional code does not match bare system language",
			systemLocale: "de",
			code:         "de_AT",
			expected:     false,
		},
		{
			name:         "unknown system locale",
			systemLocale: "",
			code:         "de",
			expected:     false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, isSystemLocale(test.systemLocale, test.code))
		})
	}
}

func TestGetLocaleDisplayStrings(t *testing.T) {
	color.NoColor = true

	locale := &commands.Locale{Code: "de", TranslatedSnaps: 3, TotalSnaps: 5}

	result := GetLocaleDisplayStrings("fr_FR", locale)
	assert.Equal(t, []string{"de", "3/5"}, result)

	result = GetLocaleDisplayStrings("de_DE", locale)
	assert.Equal(t, []string{"de *", "3/5"}, result)
}

func TestGetLocaleColor(t *testing.T) {
	tests := []struct {
		name     string
		locale   *commands.Locale
		expected color.Attribute
	}{
		{
			name:     "full coverage",
			locale:   &commands.Locale{Code: "de", TranslatedSnaps: 5, TotalSnaps: 5},
			expected: color.FgGreen,
		},
		{
			name:     "partial coverage",
			locale:   &commands.Locale{Code: "fr", TranslatedSnaps: 1, TotalSnaps: 5},
			expected: color.FgYellow,
		},
		{
			name:     "no coverage",
			locale:   &commands.Locale{Code: "ja", TranslatedSnaps: 0, TotalSnaps: 5},
			expected: color.FgRed,
		},
		{
			name:     "nothing translatable yet",
			locale:   &commands.Locale{Code: "sv"},
			expected: color.FgWhite,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, getLocaleColor(test.locale))
		})
	}
}

func TestRenderLocaleSnaps(t *testing.T) {
	color.NoColor = true

	tr := testTranslationSet()
	locale := &commands.Locale{Code: "de", TranslatedSnaps: 1, TotalSnaps: 2}

	covered := scannedSnap("covered", commands.TranslationStatus{
		Classification: commands.ClassificationComplete,
		PresentLocales: []string{"de"},
		DesktopFiles:   []string{"a.desktop"},
	})
	uncovered := scannedSnap("uncovered", commands.TranslationStatus{
		Classification: commands.ClassificationNone,
		MissingLocales: []string{"de"},
		DesktopFiles:   []string{"b.desktop"},
	})
	headless := scannedSnap("headless", commands.TranslationStatus{})
	pending := &commands.Snap{Name: "pending"}

	result := RenderLocaleSnaps(tr, locale, []*commands.Snap{covered, uncovered, headless, pending})

	assert.Contains(t, result, "de: 50%")
	assert.Contains(t, result, "✔ covered")
	assert.Contains(t, result, "⨯ uncovered")
	assert.NotContains(t, result, "headless")
	assert.NotContains(t, result, "pending")
}

func TestRenderLocaleSnapsWithNothingTranslatable(t *testing.T) {
	tr := testTranslationSet()
	locale := &commands.Locale{Code: "de"}

	result := RenderLocaleSnaps(tr, locale, []*commands.Snap{{Name: "pending"}})

	assert.Equal(t, tr.NoSnaps, result)
}
