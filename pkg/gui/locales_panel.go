package gui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jesseduffield/gocui"
	"github.com/samber/lo"

	"github.com/yeager/snap-l10n/pkg/commands"
	"github.com/yeager/snap-l10n/pkg/gui/panels"
	"github.com/yeager/snap-l10n/pkg/gui/presentation"
	"github.com/yeager/snap-l10n/pkg/tasks"
)

func (gui *Gui) getLocalesPanel() *panels.SideListPanel[*commands.Locale] {
	return &panels.SideListPanel[*commands.Locale]{
		ContextState: &panels.ContextState[*commands.Locale]{
			GetMainTabs: func() []panels.MainTab[*commands.Locale] {
				return []panels.MainTab[*commands.Locale]{
					{
						Key:    "snaps",
						Title:  gui.Tr.SnapsTitle,
						Render: gui.renderLocaleSnaps,
					},
					{
						Key:    "history",
						Title:  gui.Tr.HistoryTitle,
						Render: gui.renderLocaleHistory,
					},
				}
			},
			GetItemContextCacheKey: func(locale *commands.Locale) string {
				return fmt.Sprintf("locales-%s-%d-%d", locale.Code, locale.TranslatedSnaps, locale.TotalSnaps)
			},
		},
		ListPanel: panels.ListPanel[*commands.Locale]{
			List: panels.NewFilteredList[*commands.Locale](),
			View: gui.Views.Locales,
		},
		NoItemsMessage: gui.Tr.NoLocales,
		Gui:            gui.intoInterface(),
		// the list keeps the reference order, which the user chose themselves
		Sort: nil,
		GetTableCells: func(locale *commands.Locale) []string {
			return presentation.GetLocaleDisplayStrings(gui.systemLocale, locale)
		},
	}
}

// refreshLocales rebuilds the per-locale coverage tallies from the current
// snap list.
func (gui *Gui) refreshLocales() error {
	locales := commands.BuildLocaleSummaries(
		gui.Config.UserConfig.Locales.Reference,
		gui.Panels.Snaps.List.GetAllItems(),
	)

	gui.Panels.Locales.SetItems(locales)

	return gui.Panels.Locales.RerenderList()
}

// handleLocaleFilterSnaps toggles the 'snaps missing this locale' filter on
// the snaps panel. Pressing it on the locale already being filtered clears
// the filter again, as does escape.
func (gui *Gui) handleLocaleFilterSnaps() error {
	locale, err := gui.Panels.Locales.GetSelectedItem()
	if err != nil {
		return nil
	}

	if gui.State.MissingLocaleFilter == locale.Code {
		return gui.clearMissingLocaleFilter()
	}

	gui.State.MissingLocaleFilter = locale.Code
	gui.refreshSnapsViewTitle()
	gui.ResetOrigin(gui.Views.Snaps)

	return gui.Panels.Snaps.RerenderList()
}

func (gui *Gui) handleEditReferenceLocales() error {
	current := strings.Join(gui.Config.UserConfig.Locales.Reference, ",")

	return gui.createPromptPanel(gui.Tr.ReferenceLocalesPrompt, current, func(g *gocui.Gui, v *gocui.View) error {
		locales := lo.FilterMap(strings.Split(v.TextArea.GetContent(), ","), func(locale string, _ int) (string, bool) {
			trimmed := strings.TrimSpace(locale)
			return trimmed, trimmed != ""
		})

		if len(locales) == 0 {
			return nil
		}

		gui.Config.UserConfig.Locales.Reference = locales
		gui.SnapdCommand.SetReferenceLocales(locales)

		// recorded scan results still describe the old reference list, so a
		// fresh sweep goes out straight away
		return gui.refreshSnaps()
	})
}

func (gui *Gui) renderLocaleSnaps(locale *commands.Locale) tasks.TaskFunc {
	return gui.NewSimpleRenderStringTask(func() string {
		return presentation.RenderLocaleSnaps(gui.Tr, locale, gui.Panels.Snaps.List.GetAllItems())
	})
}

// renderLocaleHistory plots the coverage samples recorded by completed scan
// sweeps. It re-renders on a ticker so the elapsed-time caption and any new
// samples show up while you watch.
func (gui *Gui) renderLocaleHistory(locale *commands.Locale) tasks.TaskFunc {
	return gui.NewTickerTask(TickerTaskOpts{
		Duration: time.Second,
		Func: func(ctx context.Context, notifyStopped chan struct{}) {
			width, _ := gui.Views.Main.Size()

			content, err := presentation.RenderCoverageHistory(
				gui.Tr,
				gui.Config.UserConfig,
				gui.SnapdCommand.CoverageSamples(),
				width,
			)
			if err != nil {
				content = err.Error()
			}

			_ = gui.RenderStringMain(content)
		},
		Autoscroll: false,
		Wrap:       false,
	})
}
