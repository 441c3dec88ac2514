package presentation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/samber/lo"

	"github.com/yeager/snap-l10n/pkg/commands"
	"github.com/yeager/snap-l10n/pkg/config"
	"github.com/yeager/snap-l10n/pkg/i18n"
	"github.com/yeager/snap-l10n/pkg/utils"
)

func GetSnapDisplayStrings(guiConfig *config.GuiConfig, tr *i18n.TranslationSet, snap *commands.Snap) []string {
	return []string{
		getSnapDisplayStatus(guiConfig, tr, snap),
		snap.Name,
		utils.ColoredString(snap.Details.Version, color.FgYellow),
		utils.ColoredString(snap.Details.PublisherName(), color.FgMagenta),
	}
}

// getSnapDisplayStatus returns the colored translation status of the snap
func getSnapDisplayStatus(guiConfig *config.GuiConfig, tr *i18n.TranslationSet, snap *commands.Snap) string {
	state := snap.CurrentScanState()

	if !state.Scanned {
		return utils.ColoredString("…", color.FgWhite)
	}

	if state.Err != nil {
		return utils.ColoredString("!", color.FgRed)
	}

	longStatusMap := map[commands.Classification]string{
		commands.ClassificationComplete: tr.FullyTranslated,
		commands.ClassificationPartial:  tr.PartiallyTranslated,
		commands.ClassificationNone:     tr.Untranslated,
	}

	shortStatusMap := map[commands.Classification]string{
		commands.ClassificationComplete: "T",
		commands.ClassificationPartial:  "P",
		commands.ClassificationNone:     "U",
	}

	iconStatusMap := map[commands.Classification]rune{
		commands.ClassificationComplete: '✔',
		commands.ClassificationPartial:  '◐',
		commands.ClassificationNone:     '⨯',
	}

	classification := state.Status.Classification

	var status string
	switch guiConfig.TranslationStatusStyle {
	case "short":
		status = shortStatusMap[classification]
	case "icon":
		status = string(iconStatusMap[classification])
	case "long":
		fallthrough
	default:
		covered := len(state.Status.PresentLocales)
		total := covered + len(state.Status.MissingLocales)
		status = fmt.Sprintf("%s %d/%d", longStatusMap[classification], covered, total)
	}

	return utils.ColoredString(status, getSnapColor(snap))
}

// getSnapColor returns the color the snap's status is rendered in. Snaps
// without desktop entries come out white rather than red: they have nothing
// to translate, so calling them untranslated would be unfair
func getSnapColor(snap *commands.Snap) color.Attribute {
	state := snap.CurrentScanState()

	if !state.Scanned {
		return color.FgWhite
	}

	if state.Err != nil {
		return color.FgRed
	}

	switch state.Status.Classification {
	case commands.ClassificationComplete:
		return color.FgGreen
	case commands.ClassificationPartial:
		return color.FgYellow
	default:
		if len(state.Status.DesktopFiles) == 0 {
			return color.FgWhite
		}
		return color.FgRed
	}
}

// RenderSnapTranslations returns the content of the translations tab: what
// the last scan found, locale by locale.
func RenderSnapTranslations(tr *i18n.TranslationSet, snap *commands.Snap) string {
	state := snap.CurrentScanState()

	if !state.Scanned {
		return tr.ScanningStatus
	}

	if state.Err != nil {
		return utils.ColoredString(state.Err.Error(), color.FgRed)
	}

	if len(state.Status.DesktopFiles) == 0 {
		return tr.NoDesktopEntries
	}

	status := state.Status

	output := &strings.Builder{}

	longStatusMap := map[commands.Classification]string{
		commands.ClassificationComplete: tr.FullyTranslated,
		commands.ClassificationPartial:  tr.PartiallyTranslated,
		commands.ClassificationNone:     tr.Untranslated,
	}

	fmt.Fprintf(output, "%s (%.0f%%)\n\n",
		utils.ColoredString(longStatusMap[status.Classification], getSnapColor(snap)),
		status.CoverageRatio()*100,
	)

	for _, locale := range status.PresentLocales {
		fmt.Fprintf(output, "  %s %s\n", utils.ColoredString("✔", color.FgGreen), locale)
	}
	for _, locale := range status.MissingLocales {
		fmt.Fprintf(output, "  %s %s\n", utils.ColoredString("⨯", color.FgRed), locale)
	}

	// locales found in the entries but absent from the reference list
	referenceLocales := append(append([]string{}, status.PresentLocales...), status.MissingLocales...)
	extraLocales := lo.Filter(status.DiscoveredLocales, func(locale string, _ int) bool {
		return !lo.Contains(referenceLocales, locale)
	})
	if len(extraLocales) > 0 {
		fmt.Fprintf(output, "\n+ %s\n", strings.Join(extraLocales, ", "))
	}

	if len(status.LocaleDirs) > 0 {
		fmt.Fprintf(output, "\nlocale dirs:\n")
		for _, dir := range status.LocaleDirs {
			fmt.Fprintf(output, "  %s\n", dir)
		}
	}

	fmt.Fprintf(output, "\n%s\n", utils.ColoredString(status.ScannedAt.Format("2006-01-02 15:04:05"), color.FgBlue))

	return output.String()
}

// RenderSnapMetadata returns the content of the metadata tab: everything
// snapd told us about the snap, as yaml.
func RenderSnapMetadata(snap *commands.Snap) string {
	details, err := utils.MarshalIntoYaml(snap.Details)
	if err != nil {
		return err.Error()
	}

	header := fmt.Sprintf("%s (%s)\n\n",
		utils.ColoredString(snap.Name, color.FgCyan),
		utils.FormatDecimalBytes(int(snap.Details.InstalledSize)),
	)

	return header + utils.ColoredYamlString(string(details))
}

// RenderSnapDesktopEntries returns the content of the desktop entries tab:
// the raw text of each scanned desktop file.
func RenderSnapDesktopEntries(tr *i18n.TranslationSet, snap *commands.Snap) string {
	state := snap.CurrentScanState()

	if len(state.Status.DesktopFiles) == 0 {
		return tr.NoDesktopEntries
	}

	output := &strings.Builder{}

	for _, relPath := range state.Status.DesktopFiles {
		path := filepath.Join(snap.InstallPath, relPath)
		fmt.Fprintf(output, "%s\n", utils.ColoredString(relPath, color.FgCyan))

		content, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(output, "%s\n\n", utils.ColoredString(err.Error(), color.FgRed))
			continue
		}

		fmt.Fprintf(output, "%s\n", strings.TrimSpace(string(content)))
		fmt.Fprintln(output)
	}

	return output.String()
}
