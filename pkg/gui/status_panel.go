package gui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/yeager/snap-l10n/pkg/commands"
	"github.com/yeager/snap-l10n/pkg/gui/panels"
	"github.com/yeager/snap-l10n/pkg/gui/presentation"
	"github.com/yeager/snap-l10n/pkg/tasks"
	"github.com/yeager/snap-l10n/pkg/utils"
)

func (gui *Gui) getStatusPanel() *panels.SideListPanel[*commands.Daemon] {
	return &panels.SideListPanel[*commands.Daemon]{
		ContextState: &panels.ContextState[*commands.Daemon]{
			GetMainTabs: func() []panels.MainTab[*commands.Daemon] {
				return []panels.MainTab[*commands.Daemon]{
					{
						Key:    "dashboard",
						Title:  gui.Tr.DashboardTitle,
						Render: gui.renderDashboard,
					},
					{
						Key:    "config",
						Title:  gui.Tr.ConfigTitle,
						Render: gui.renderConfig,
					},
					{
						Key:    "credits",
						Title:  gui.Tr.CreditsTitle,
						Render: gui.renderCredits,
					},
				}
			},
			GetItemContextCacheKey: func(daemon *commands.Daemon) string {
				info := daemon.CurrentInfo()
				if info == nil {
					return "status-" + daemon.Name
				}
				return "status-" + daemon.Name + "-" + info.Version
			},
		},
		ListPanel: panels.ListPanel[*commands.Daemon]{
			List: panels.NewFilteredList[*commands.Daemon](),
			View: gui.Views.Status,
		},
		NoItemsMessage: "",
		Gui:            gui.intoInterface(),
		Sort:           nil,
		GetTableCells:  presentation.GetDaemonDisplayStrings,
		DisableFilter:  true,
	}
}

// refreshStatus asks snapd about itself and re-renders the status panel. A
// failure here isn't fatal: the panel just stays red until snapd answers.
func (gui *Gui) refreshStatus() error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	info, err := gui.SnapdCommand.DaemonInfo(ctx)
	if err != nil {
		gui.Log.Warn(err)
		return gui.Panels.Status.RerenderList()
	}

	gui.daemon.RecordInfo(info)

	return gui.Panels.Status.RerenderList()
}

func (gui *Gui) handleOpenConfig() error {
	return gui.openFile(gui.Config.ConfigFilename())
}

func (gui *Gui) handleEditConfig() error {
	return gui.editFile(gui.Config.ConfigFilename())
}

// renderDashboard shows the headline numbers. It runs on a ticker because
// the numbers change underneath us while a scan sweep is running.
func (gui *Gui) renderDashboard(daemon *commands.Daemon) tasks.TaskFunc {
	return gui.NewTickerTask(TickerTaskOpts{
		Duration: time.Second,
		Func: func(ctx context.Context, notifyStopped chan struct{}) {
			_ = gui.RenderStringMain(gui.dashboardString(daemon))
		},
		Autoscroll: false,
		Wrap:       gui.Config.UserConfig.Gui.WrapMainPanel,
	})
}

func (gui *Gui) dashboardString(daemon *commands.Daemon) string {
	output := &strings.Builder{}

	fmt.Fprintf(output, "%s %s\n\n", utils.ColoredString(gui.Config.Name, color.FgCyan), gui.Config.Version)

	if info := daemon.CurrentInfo(); info != nil {
		fmt.Fprintf(output, "%s: %s (%s %s)\n", gui.Tr.SnapdVersionLabel, info.Version, info.OSRelease.ID, info.OSRelease.VersionID)
	} else {
		fmt.Fprintf(output, "%s\n", utils.ColoredString(gui.Tr.ConnectionFailed, color.FgRed))
	}
	fmt.Fprintf(output, "%s\n\n", daemon.SocketPath)

	translated, partial, untranslated := 0, 0, 0
	snaps := gui.Panels.Snaps.List.GetAllItems()
	for _, snap := range snaps {
		state := snap.CurrentScanState()
		if !state.Scanned || state.Err != nil {
			continue
		}
		switch state.Status.Classification {
		case commands.ClassificationComplete:
			translated++
		case commands.ClassificationPartial:
			partial++
		default:
			untranslated++
		}
	}

	fmt.Fprintf(output, "%s: %d\n", gui.Tr.TotalSnapsLabel, len(snaps))
	fmt.Fprintf(output, "%s: %s\n", gui.Tr.TranslatedLabel, utils.ColoredString(fmt.Sprint(translated), color.FgGreen))
	fmt.Fprintf(output, "%s: %s\n", gui.Tr.PartialLabel, utils.ColoredString(fmt.Sprint(partial), color.FgYellow))
	fmt.Fprintf(output, "%s: %s\n\n", gui.Tr.UntranslatedLabel, utils.ColoredString(fmt.Sprint(untranslated), color.FgRed))

	fmt.Fprintf(output, "%s: %s\n", gui.Tr.ReferenceLocalesLabel, strings.Join(gui.Config.UserConfig.Locales.Reference, ", "))

	if gui.systemLocale != "" {
		fmt.Fprintf(output, "%s: %s\n", gui.Tr.SystemLocaleLabel, gui.systemLocale)
	}

	if gui.State.StatusFilter != FILTER_ALL || gui.State.MissingLocaleFilter != "" {
		filters := []string{}
		if gui.State.StatusFilter != FILTER_ALL {
			filters = append(filters, gui.statusFilterLabel())
		}
		if locale := gui.State.MissingLocaleFilter; locale != "" {
			filters = append(filters, "- "+locale)
		}
		fmt.Fprintf(output, "%s: %s\n", gui.Tr.ActiveFilterLabel, strings.Join(filters, ", "))
	}

	if !gui.State.lastRefresh.IsZero() {
		fmt.Fprintf(output, "%s: %s\n", gui.Tr.LastRefreshLabel, gui.State.lastRefresh.Format("15:04:05"))
	}

	return output.String()
}

func (gui *Gui) renderConfig(daemon *commands.Daemon) tasks.TaskFunc {
	return gui.NewSimpleRenderStringTask(func() string {
		userConfig, err := utils.MarshalIntoYaml(gui.Config.UserConfig)
		if err != nil {
			return err.Error()
		}

		return fmt.Sprintf("%s\n\n%s", gui.Config.ConfigFilename(), utils.ColoredYamlString(string(userConfig)))
	})
}

func (gui *Gui) renderCredits(daemon *commands.Daemon) tasks.TaskFunc {
	return gui.NewSimpleRenderStringTask(func() string {
		return fmt.Sprintf(
			"%s %s\n%s\n\nhttps://github.com/yeager/snap-l10n\n",
			gui.Config.Name,
			gui.Config.Version,
			gui.Config.BuildDate,
		)
	})
}
