package presentation

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/samber/lo"

	"github.com/yeager/snap-l10n/pkg/commands"
	"github.com/yeager/snap-l10n/pkg/i18n"
	"github.com/yeager/snap-l10n/pkg/utils"
)

func GetLocaleDisplayStrings(systemLocale string, locale *commands.Locale) []string {
	code := locale.Code
	if isSystemLocale(systemLocale, code) {
		code = utils.ColoredString(code+" *", color.FgCyan)
	}

	return []string{
		code,
		getLocaleDisplayCoverage(locale),
	}
}

// isSystemLocale tells us whether the given reference locale is the one the
// user's own environment asks for. A plain language code like 'de' matches a
// regional system locale like de_DE, same as in the desktop entries
func isSystemLocale(systemLocale, code string) bool {
	if systemLocale == "" {
		return false
	}

	if code == systemLocale {
		return true
	}

	language, _, found := strings.Cut(systemLocale, "_")

	return found && code == language
}

func getLocaleDisplayCoverage(locale *commands.Locale) string {
	coverage := fmt.Sprintf("%d/%d", locale.TranslatedSnaps, locale.TotalSnaps)

	return utils.ColoredString(coverage, getLocaleColor(locale))
}

func getLocaleColor(locale *commands.Locale) color.Attribute {
	if locale.TotalSnaps == 0 {
		return color.FgWhite
	}

	switch ratio := locale.CoverageRatio(); {
	case ratio >= 1:
		return color.FgGreen
	case ratio > 0:
		return color.FgYellow
	default:
		return color.FgRed
	}
}

// RenderLocaleSnaps returns the content of the locale's snaps tab: which
// snaps carry the locale and which don't.
func RenderLocaleSnaps(tr *i18n.TranslationSet, locale *commands.Locale, snaps []*commands.Snap) string {
	// only scanned snaps with desktop entries have a say, matching how the
	// panel's own coverage counts are tallied
	translatable := lo.Filter(snaps, func(snap *commands.Snap, _ int) bool {
		state := snap.CurrentScanState()
		return state.Scanned && len(state.Status.DesktopFiles) > 0
	})

	if len(translatable) == 0 {
		return tr.NoSnaps
	}

	output := &strings.Builder{}

	fmt.Fprintf(output, "%s: %.0f%%\n\n",
		utils.ColoredString(locale.Code, color.FgCyan),
		locale.CoverageRatio()*100,
	)

	for _, snap := range translatable {
		if snap.CurrentScanState().Status.HasLocale(locale.Code) {
			fmt.Fprintf(output, "  %s %s\n", utils.ColoredString("✔", color.FgGreen), snap.Name)
		} else {
			fmt.Fprintf(output, "  %s %s\n", utils.ColoredString("⨯", color.FgRed), snap.Name)
		}
	}

	return output.String()
}
