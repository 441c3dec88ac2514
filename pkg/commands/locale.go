package commands

// Locale is a row in the locales panel: one reference locale together with
// how many snaps carry it.
type Locale struct {
	Code string

	// TranslatedSnaps counts the scanned snaps whose desktop entries cover
	// this locale. TotalSnaps is the population those came from: scanned
	// snaps with at least one desktop entry. Snaps without desktop entries
	// have nothing to translate so they don't drag the ratio down.
	TranslatedSnaps int
	TotalSnaps      int
}

// CoverageRatio returns the fraction of translatable snaps covering this
// locale, from 0 to 1.
func (l *Locale) CoverageRatio() float64 {
	if l.TotalSnaps == 0 {
		return 0
	}
	return float64(l.TranslatedSnaps) / float64(l.TotalSnaps)
}

// BuildLocaleSummaries tallies per-locale coverage across the given snaps.
// The result has one entry per reference locale, in reference order, and is
// rebuilt from scratch on every scan so it never goes stale.
func BuildLocaleSummaries(referenceLocales []string, snaps []*Snap) []*Locale {
	locales := make([]*Locale, 0, len(referenceLocales))
	for _, code := range referenceLocales {
		locales = append(locales, &Locale{Code: code})
	}

	for _, snap := range snaps {
		state := snap.CurrentScanState()
		if !state.Scanned || len(state.Status.DesktopFiles) == 0 {
			continue
		}
		for _, locale := range locales {
			locale.TotalSnaps++
			if state.Status.HasLocale(locale.Code) {
				locale.TranslatedSnaps++
			}
		}
	}

	return locales
}
