package gui

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/yeager/snap-l10n/pkg/commands"
	"github.com/yeager/snap-l10n/pkg/gui/panels"
	"github.com/yeager/snap-l10n/pkg/gui/presentation"
	"github.com/yeager/snap-l10n/pkg/gui/types"
	"github.com/yeager/snap-l10n/pkg/tasks"
)

func (gui *Gui) getSnapsPanel() *panels.SideListPanel[*commands.Snap] {
	return &panels.SideListPanel[*commands.Snap]{
		ContextState: &panels.ContextState[*commands.Snap]{
			GetMainTabs: func() []panels.MainTab[*commands.Snap] {
				return []panels.MainTab[*commands.Snap]{
					{
						Key:    "translations",
						Title:  gui.Tr.TranslationsTitle,
						Render: gui.renderSnapTranslations,
					},
					{
						Key:    "metadata",
						Title:  gui.Tr.MetadataTitle,
						Render: gui.renderSnapMetadata,
					},
					{
						Key:    "desktop",
						Title:  gui.Tr.DesktopEntriesTitle,
						Render: gui.renderSnapDesktopEntries,
					},
				}
			},
			GetItemContextCacheKey: func(snap *commands.Snap) string {
				state := snap.CurrentScanState()
				return "snaps-" + snap.Name + "-" + snap.Details.Revision +
					"-" + strconv.FormatBool(state.Scanned) +
					"-" + strconv.FormatInt(state.Status.ScannedAt.UnixNano(), 10)
			},
		},
		ListPanel: panels.ListPanel[*commands.Snap]{
			List: panels.NewFilteredList[*commands.Snap](),
			View: gui.Views.Snaps,
		},
		NoItemsMessage: gui.Tr.NoSnaps,
		Gui:            gui.intoInterface(),
		Filter:         gui.snapListFilter,
		Sort: func(a *commands.Snap, b *commands.Snap) bool {
			return a.Name < b.Name
		},
		GetTableCells: func(snap *commands.Snap) []string {
			return presentation.GetSnapDisplayStrings(&gui.Config.UserConfig.Gui, gui.Tr, snap)
		},
	}
}

// snapListFilter applies the three list-shrinking mechanisms on top of each
// other: the config's hide option, the locale filter set from the locales
// panel, and the cycled status filter
func (gui *Gui) snapListFilter(snap *commands.Snap) bool {
	state := snap.CurrentScanState()

	if gui.Config.UserConfig.Gui.HideSnapsWithoutDesktopEntries && state.Scanned && !snap.HasDesktopEntries() {
		return false
	}

	if locale := gui.State.MissingLocaleFilter; locale != "" {
		if !state.Scanned || len(state.Status.DesktopFiles) == 0 || state.Status.HasLocale(locale) {
			return false
		}
	}

	switch gui.State.StatusFilter {
	case FILTER_UNTRANSLATED:
		return state.Scanned && state.Status.Classification == commands.ClassificationNone
	case FILTER_PARTIAL:
		return state.Scanned && state.Status.Classification == commands.ClassificationPartial
	}

	return true
}

// refreshSnaps re-fetches the snap list from snapd and kicks off a scan
// sweep. Existing models are reused so snaps that haven't changed revision
// keep their scan state while the sweep catches up.
func (gui *Gui) refreshSnaps() error {
	return gui.WithWaitingStatus(gui.Tr.RefreshingStatus, func() error {
		snaps, err := gui.SnapdCommand.GetSnaps(context.Background(), gui.Panels.Snaps.List.GetAllItems())
		if err != nil {
			return err
		}

		gui.State.lastRefresh = time.Now()

		gui.Panels.Snaps.SetItems(snaps)
		if err := gui.Panels.Snaps.RerenderList(); err != nil {
			return err
		}

		if err := gui.refreshLocales(); err != nil {
			return err
		}

		gui.scanSnaps(snaps)

		return nil
	})
}

func (gui *Gui) scanSnaps(snaps []*commands.Snap) {
	ctx := gui.newScanContext()

	_ = gui.WithWaitingStatus(gui.Tr.ScanningStatus, func() error {
		gui.SnapdCommand.ScanAll(ctx, snaps)

		// a newer sweep has taken over, let it do the rendering
		if ctx.Err() != nil {
			return nil
		}

		if err := gui.Panels.Snaps.RerenderList(); err != nil {
			return err
		}

		return gui.refreshLocales()
	})
}

// newScanContext cancels the in-flight sweep, if any, and returns a context
// for the next one. Scans are cheap but not free, and two sweeps racing over
// the same snaps would just flicker the list.
func (gui *Gui) newScanContext() context.Context {
	gui.Mutexes.ScanMutex.Lock()
	defer gui.Mutexes.ScanMutex.Unlock()

	if gui.cancelScan != nil {
		gui.cancelScan()
	}

	ctx, cancel := context.WithCancel(context.Background())
	gui.cancelScan = cancel

	return ctx
}

func (gui *Gui) handleRescanSnap() error {
	snap, err := gui.Panels.Snaps.GetSelectedItem()
	if err != nil {
		return nil
	}

	return gui.WithWaitingStatus(gui.Tr.ScanningStatus, func() error {
		gui.SnapdCommand.ScanOne(snap)

		if err := gui.Panels.Snaps.RerenderList(); err != nil {
			return err
		}

		return gui.refreshLocales()
	})
}

func (gui *Gui) handleCycleStatusFilter() error {
	switch gui.State.StatusFilter {
	case FILTER_ALL:
		gui.State.StatusFilter = FILTER_UNTRANSLATED
	case FILTER_UNTRANSLATED:
		gui.State.StatusFilter = FILTER_PARTIAL
	default:
		gui.State.StatusFilter = FILTER_ALL
	}

	gui.refreshSnapsViewTitle()
	gui.ResetOrigin(gui.Views.Snaps)

	return gui.Panels.Snaps.RerenderList()
}

func (gui *Gui) statusFilterLabel() string {
	switch gui.State.StatusFilter {
	case FILTER_UNTRANSLATED:
		return gui.Tr.StatusFilterUntranslated
	case FILTER_PARTIAL:
		return gui.Tr.StatusFilterPartial
	default:
		return gui.Tr.StatusFilterAll
	}
}

// refreshSnapsViewTitle spells out the active filters in the panel title so
// a shrunken list never looks like missing snaps
func (gui *Gui) refreshSnapsViewTitle() {
	title := gui.Tr.SnapsTitle

	if gui.State.StatusFilter != FILTER_ALL {
		title = fmt.Sprintf("%s (%s)", title, gui.statusFilterLabel())
	}

	if locale := gui.State.MissingLocaleFilter; locale != "" {
		title = fmt.Sprintf("%s (- %s)", title, locale)
	}

	gui.Views.Snaps.Title = title
}

func (gui *Gui) clearMissingLocaleFilter() error {
	gui.State.MissingLocaleFilter = ""
	gui.refreshSnapsViewTitle()

	return gui.Panels.Snaps.RerenderList()
}

func (gui *Gui) handleOpenStorePage() error {
	snap, err := gui.Panels.Snaps.GetSelectedItem()
	if err != nil {
		return nil
	}

	if err := gui.OSCommand.OpenLink(snap.StoreURL()); err != nil {
		return gui.createErrorPanel(err.Error())
	}

	return nil
}

func (gui *Gui) handleOpenDesktopFile() error {
	snap, err := gui.Panels.Snaps.GetSelectedItem()
	if err != nil {
		return nil
	}

	path, ok := snap.FirstDesktopFile()
	if !ok {
		return gui.createErrorPanel(gui.Tr.NoDesktopEntries)
	}

	return gui.openFile(path)
}

func (gui *Gui) handleExportMenu() error {
	exportItem := func(label string, format commands.ReportFormat) *types.MenuItem {
		return &types.MenuItem{
			Label: label,
			OnPress: func() error {
				return gui.exportReport(format)
			},
		}
	}

	return gui.Menu(CreateMenuOptions{
		Title: gui.Tr.ExportTitle,
		Items: []*types.MenuItem{
			exportItem(gui.Tr.ExportCSV, commands.ReportFormatCSV),
			exportItem(gui.Tr.ExportJSON, commands.ReportFormatJSON),
			exportItem(gui.Tr.ExportYAML, commands.ReportFormatYAML),
		},
	})
}

func (gui *Gui) exportReport(format commands.ReportFormat) error {
	return gui.WithWaitingStatus(gui.Tr.ExportingStatus, func() error {
		report := gui.SnapdCommand.BuildReport(gui.Panels.Snaps.List.GetAllItems())

		path, err := gui.SnapdCommand.WriteReport(report, format, gui.Config.UserConfig.Report.Directory)
		if err != nil {
			return err
		}

		return gui.createConfirmationPanel("", fmt.Sprintf("%s %s", gui.Tr.ReportWrittenTo, path), nil, nil)
	})
}

func (gui *Gui) renderSnapTranslations(snap *commands.Snap) tasks.TaskFunc {
	return gui.NewSimpleRenderStringTask(func() string {
		return presentation.RenderSnapTranslations(gui.Tr, snap)
	})
}

func (gui *Gui) renderSnapMetadata(snap *commands.Snap) tasks.TaskFunc {
	return gui.NewSimpleRenderStringTask(func() string {
		return presentation.RenderSnapMetadata(snap)
	})
}

func (gui *Gui) renderSnapDesktopEntries(snap *commands.Snap) tasks.TaskFunc {
	return gui.NewSimpleRenderStringTask(func() string {
		return presentation.RenderSnapDesktopEntries(gui.Tr, snap)
	})
}
