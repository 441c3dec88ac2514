package commands

import (
	"time"

	"github.com/samber/lo"
)

// Classification buckets a snap by how much of its desktop metadata is
// translated into the reference locales.
type Classification int

const (
	// ClassificationNone means not a single reference locale has coverage
	ClassificationNone Classification = iota
	// ClassificationPartial means some reference locales are covered and some are not
	ClassificationPartial
	// ClassificationComplete means every reference locale is covered
	ClassificationComplete
)

// String returns a stable machine-readable name, used in reports. Human
// facing strings live in the i18n package.
func (c Classification) String() string {
	switch c {
	case ClassificationComplete:
		return "complete"
	case ClassificationPartial:
		return "partial"
	default:
		return "none"
	}
}

// TranslationStatus is the outcome of scanning one snap's install tree.
type TranslationStatus struct {
	Classification Classification

	// PresentLocales are the reference locales with at least one translated
	// desktop entry, in reference order.
	PresentLocales []string

	// MissingLocales are the reference locales with no translated desktop
	// entry at all, in reference order. Together with PresentLocales this
	// always adds back up to the reference list.
	MissingLocales []string

	// DiscoveredLocales is every locale seen in the desktop entries, sorted,
	// including ones outside the reference list. Those extras are ignored by
	// the classification but still worth showing in the detail view.
	DiscoveredLocales []string

	// DesktopFiles are the desktop entries that were inspected, relative to
	// the snap's install path.
	DesktopFiles []string

	// LocaleDirs are gettext locale directories found under the install tree.
	// They hint at runtime translations but don't count towards coverage,
	// since we can't tell from the directory name whether the catalog inside
	// translates anything the user will see.
	LocaleDirs []string

	ScannedAt time.Time
}

// classify applies the coverage rules: complete needs every reference locale
// present and at least one of them, none means nothing is present, and
// everything in between is partial.
func classify(presentLocales, missingLocales []string) Classification {
	if len(presentLocales) == 0 {
		return ClassificationNone
	}
	if len(missingLocales) == 0 {
		return ClassificationComplete
	}
	return ClassificationPartial
}

// splitByPresence partitions referenceLocales into present and missing,
// preserving reference order in both halves. Locales outside the reference
// list never show up in either half.
func splitByPresence(referenceLocales []string, present map[string]bool) (presentLocales, missingLocales []string) {
	presentLocales = lo.Filter(referenceLocales, func(locale string, _ int) bool { return present[locale] })
	missingLocales = lo.Filter(referenceLocales, func(locale string, _ int) bool { return !present[locale] })
	return presentLocales, missingLocales
}

// CoverageRatio returns how much of the reference list this status covers,
// in the range 0 to 1.
func (ts TranslationStatus) CoverageRatio() float64 {
	total := len(ts.PresentLocales) + len(ts.MissingLocales)
	if total == 0 {
		return 0
	}
	return float64(len(ts.PresentLocales)) / float64(total)
}

// HasLocale reports whether the given reference locale is covered.
func (ts TranslationStatus) HasLocale(locale string) bool {
	return lo.Contains(ts.PresentLocales, locale)
}

// CoverageSample is one point on the coverage history graph.
type CoverageSample struct {
	RecordedAt time.Time

	// Percentage is the mean per-snap coverage ratio across all scanned
	// snaps, from 0 to 100.
	Percentage float64

	TranslatedSnaps   int
	PartialSnaps      int
	UntranslatedSnaps int
	ScannedSnaps      int
}
