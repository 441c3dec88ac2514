package gui

import (
	"math"

	"github.com/jesseduffield/gocui"

	"github.com/yeager/snap-l10n/pkg/gui/keybindings"
	"github.com/yeager/snap-l10n/pkg/gui/panels"
	"github.com/yeager/snap-l10n/pkg/gui/types"
)

// Binding - a keybinding mapping a key and modifier to a handler. The keypress
// is only handled if the given view has focus, or handled globally if the view
// is ""
type Binding struct {
	ViewName    string
	Handler     func(*gocui.Gui, *gocui.View) error
	Key         interface{} // FIXME: find out how to get `gocui.Key | rune`
	Modifier    gocui.Modifier
	Description string
}

// GetKey returns the display label for the binding's key, used in the options
// menu and the cheatsheet
func (b *Binding) GetKey() string {
	return keybindings.LabelFromKey(b.Key)
}

func wrappedHandler(f func() error) func(*gocui.Gui, *gocui.View) error {
	return func(g *gocui.Gui, v *gocui.View) error {
		return f()
	}
}

func (gui *Gui) keybindingOpts() types.KeybindingsOpts {
	return types.KeybindingsOpts{
		GetKey: keybindings.GetKey,
		Config: gui.Config.UserConfig.Keybinding,
	}
}

// GetInitialKeybindings returns the complete list of keybindings. Handlers
// resolve their panel at press time, so this can be called before the views
// exist (the cheatsheet generator does exactly that).
func (gui *Gui) GetInitialKeybindings() []*Binding {
	opts := gui.keybindingOpts()

	bindings := []*Binding{
		{
			ViewName:    "",
			Key:         opts.GetKey(opts.Config.Universal.Quit),
			Modifier:    gocui.ModNone,
			Handler:     gui.quit,
			Description: gui.Tr.Quit,
		},
		{
			ViewName: "",
			Key:      opts.GetKey(opts.Config.Universal.QuitAlt),
			Modifier: gocui.ModNone,
			Handler:  gui.quit,
		},
		{
			ViewName:    "",
			Key:         opts.GetKey(opts.Config.Universal.Return),
			Modifier:    gocui.ModNone,
			Handler:     wrappedHandler(gui.escape),
			Description: gui.Tr.Return,
		},
		{
			ViewName:    "",
			Key:         opts.GetKey(opts.Config.Universal.OpenMenu),
			Modifier:    gocui.ModNone,
			Handler:     gui.handleCreateOptionsMenu,
			Description: gui.Tr.Menu,
		},
		{
			ViewName: "",
			Key:      opts.GetKey(opts.Config.Universal.OpenMenuAlt),
			Modifier: gocui.ModNone,
			Handler:  gui.handleCreateOptionsMenu,
		},
		{
			ViewName:    "",
			Key:         opts.GetKey(opts.Config.Universal.Refresh),
			Modifier:    gocui.ModNone,
			Handler:     wrappedHandler(gui.refreshSnaps),
			Description: gui.Tr.LcRefresh,
		},
		{
			ViewName:    "",
			Key:         opts.GetKey(opts.Config.Universal.Export),
			Modifier:    gocui.ModNone,
			Handler:     wrappedHandler(gui.handleExportMenu),
			Description: gui.Tr.ExportReport,
		},
		{
			ViewName:    "",
			Key:         opts.GetKey(opts.Config.Universal.Filter),
			Modifier:    gocui.ModNone,
			Handler:     wrappedHandler(gui.handleOpenFilter),
			Description: gui.Tr.LcFilter,
		},
		{
			ViewName:    "",
			Key:         opts.GetKey(opts.Config.Universal.NextScreenMode),
			Modifier:    gocui.ModNone,
			Handler:     wrappedHandler(gui.nextScreenMode),
			Description: gui.Tr.LcNextScreenMode,
		},
		{
			ViewName:    "",
			Key:         opts.GetKey(opts.Config.Universal.PrevScreenMode),
			Modifier:    gocui.ModNone,
			Handler:     wrappedHandler(gui.prevScreenMode),
			Description: gui.Tr.LcPrevScreenMode,
		},
		{
			ViewName:    "",
			Key:         opts.GetKey(opts.Config.Universal.GoToStatus),
			Modifier:    gocui.ModNone,
			Handler:     wrappedHandler(gui.goToSidePanel("status")),
			Description: gui.Tr.FocusStatus,
		},
		{
			ViewName:    "",
			Key:         opts.GetKey(opts.Config.Universal.GoToSnaps),
			Modifier:    gocui.ModNone,
			Handler:     wrappedHandler(gui.goToSidePanel("snaps")),
			Description: gui.Tr.FocusSnaps,
		},
		{
			ViewName:    "",
			Key:         opts.GetKey(opts.Config.Universal.GoToLocales),
			Modifier:    gocui.ModNone,
			Handler:     wrappedHandler(gui.goToSidePanel("locales")),
			Description: gui.Tr.FocusLocales,
		},
		{
			ViewName: "",
			Key:      opts.GetKey(opts.Config.Universal.PrevPanel),
			Modifier: gocui.ModNone,
			Handler:  wrappedHandler(gui.previousSidePanel),
		},
		{
			ViewName: "",
			Key:      opts.GetKey(opts.Config.Universal.NextPanel),
			Modifier: gocui.ModNone,
			Handler:  wrappedHandler(gui.nextSidePanel),
		},
		{
			ViewName: "",
			Key:      opts.GetKey(opts.Config.Universal.PrevPanelAlt),
			Modifier: gocui.ModNone,
			Handler:  wrappedHandler(gui.previousSidePanel),
		},
		{
			ViewName: "",
			Key:      opts.GetKey(opts.Config.Universal.NextPanelAlt),
			Modifier: gocui.ModNone,
			Handler:  wrappedHandler(gui.nextSidePanel),
		},
		{
			ViewName: "",
			Key:      opts.GetKey(opts.Config.Universal.TogglePanel),
			Modifier: gocui.ModNone,
			Handler:  wrappedHandler(gui.nextSidePanel),
		},
		{
			ViewName: "",
			Key:      opts.GetKey(opts.Config.Universal.TogglePanelAlt),
			Modifier: gocui.ModNone,
			Handler:  wrappedHandler(gui.previousSidePanel),
		},
		{
			ViewName:    "",
			Key:         opts.GetKey(opts.Config.Universal.PrevMainTab),
			Modifier:    gocui.ModNone,
			Handler:     wrappedHandler(gui.handlePrevMainTab),
			Description: gui.Tr.PreviousContext,
		},
		{
			ViewName:    "",
			Key:         opts.GetKey(opts.Config.Universal.NextMainTab),
			Modifier:    gocui.ModNone,
			Handler:     wrappedHandler(gui.handleNextMainTab),
			Description: gui.Tr.NextContext,
		},
		{
			ViewName:    "",
			Key:         opts.GetKey(opts.Config.Universal.ScrollUpMain),
			Modifier:    gocui.ModNone,
			Handler:     gui.scrollUpMain,
			Description: gui.Tr.Scroll,
		},
		{
			ViewName:    "",
			Key:         opts.GetKey(opts.Config.Universal.ScrollDownMain),
			Modifier:    gocui.ModNone,
			Handler:     gui.scrollDownMain,
			Description: gui.Tr.Scroll,
		},
		{
			ViewName: "",
			Key:      opts.GetKey(opts.Config.Universal.ScrollUpMainAlt1),
			Modifier: gocui.ModNone,
			Handler:  gui.scrollUpMain,
		},
		{
			ViewName: "",
			Key:      opts.GetKey(opts.Config.Universal.ScrollDownMainAlt1),
			Modifier: gocui.ModNone,
			Handler:  gui.scrollDownMain,
		},
		{
			ViewName: "",
			Key:      opts.GetKey(opts.Config.Universal.ScrollUpMainAlt2),
			Modifier: gocui.ModNone,
			Handler:  gui.scrollUpMain,
		},
		{
			ViewName: "",
			Key:      opts.GetKey(opts.Config.Universal.ScrollDownMainAlt2),
			Modifier: gocui.ModNone,
			Handler:  gui.scrollDownMain,
		},
		{
			ViewName: "",
			Key:      opts.GetKey(opts.Config.Universal.ScrollLeftMain),
			Modifier: gocui.ModNone,
			Handler:  gui.scrollLeftMain,
		},
		{
			ViewName: "",
			Key:      opts.GetKey(opts.Config.Universal.ScrollRightMain),
			Modifier: gocui.ModNone,
			Handler:  gui.scrollRightMain,
		},
		{
			ViewName: "",
			Key:      opts.GetKey(opts.Config.Universal.JumpToTopMain),
			Modifier: gocui.ModNone,
			Handler:  gui.jumpToTopMain,
		},
		{
			ViewName: "",
			Key:      opts.GetKey(opts.Config.Universal.JumpToBottomMain),
			Modifier: gocui.ModNone,
			Handler:  gui.jumpToBottomMain,
		},
		{
			ViewName:    "snaps",
			Key:         opts.GetKey(opts.Config.Universal.EnterMain),
			Modifier:    gocui.ModNone,
			Handler:     wrappedHandler(gui.handleEnterMain),
			Description: gui.Tr.FocusMain,
		},
		{
			ViewName:    "snaps",
			Key:         opts.GetKey(opts.Config.Snaps.Rescan),
			Modifier:    gocui.ModNone,
			Handler:     wrappedHandler(gui.handleRescanSnap),
			Description: gui.Tr.LcRescan,
		},
		{
			ViewName:    "snaps",
			Key:         opts.GetKey(opts.Config.Snaps.CycleStatusFilter),
			Modifier:    gocui.ModNone,
			Handler:     wrappedHandler(gui.handleCycleStatusFilter),
			Description: gui.Tr.CycleStatusFilter,
		},
		{
			ViewName:    "snaps",
			Key:         opts.GetKey(opts.Config.Snaps.OpenStorePage),
			Modifier:    gocui.ModNone,
			Handler:     wrappedHandler(gui.handleOpenStorePage),
			Description: gui.Tr.OpenStorePage,
		},
		{
			ViewName:    "snaps",
			Key:         opts.GetKey(opts.Config.Snaps.OpenDesktopFile),
			Modifier:    gocui.ModNone,
			Handler:     wrappedHandler(gui.handleOpenDesktopFile),
			Description: gui.Tr.OpenDesktopFile,
		},
		{
			ViewName:    "locales",
			Key:         opts.GetKey(opts.Config.Universal.EnterMain),
			Modifier:    gocui.ModNone,
			Handler:     wrappedHandler(gui.handleLocaleFilterSnaps),
			Description: gui.Tr.FilterMissing,
		},
		{
			ViewName:    "locales",
			Key:         opts.GetKey(opts.Config.Locales.FilterSnaps),
			Modifier:    gocui.ModNone,
			Handler:     wrappedHandler(gui.handleLocaleFilterSnaps),
			Description: gui.Tr.FilterMissing,
		},
		{
			ViewName:    "locales",
			Key:         opts.GetKey(opts.Config.Locales.EditReference),
			Modifier:    gocui.ModNone,
			Handler:     wrappedHandler(gui.handleEditReferenceLocales),
			Description: gui.Tr.EditReferenceLocales,
		},
		{
			ViewName:    "status",
			Key:         opts.GetKey(opts.Config.Universal.EnterMain),
			Modifier:    gocui.ModNone,
			Handler:     wrappedHandler(gui.handleEnterMain),
			Description: gui.Tr.FocusMain,
		},
		{
			ViewName:    "status",
			Key:         opts.GetKey(opts.Config.Status.OpenConfig),
			Modifier:    gocui.ModNone,
			Handler:     wrappedHandler(gui.handleOpenConfig),
			Description: gui.Tr.OpenConfig,
		},
		{
			ViewName:    "status",
			Key:         opts.GetKey(opts.Config.Status.EditConfig),
			Modifier:    gocui.ModNone,
			Handler:     wrappedHandler(gui.handleEditConfig),
			Description: gui.Tr.EditConfig,
		},
		{
			ViewName: "main",
			Key:      opts.GetKey(opts.Config.Main.Return),
			Modifier: gocui.ModNone,
			Handler:  wrappedHandler(gui.returnFocus),
		},
		{
			ViewName: "main",
			Key:      opts.GetKey(opts.Config.Main.ScrollLeft),
			Modifier: gocui.ModNone,
			Handler:  gui.scrollLeftMain,
		},
		{
			ViewName: "main",
			Key:      opts.GetKey(opts.Config.Main.ScrollRight),
			Modifier: gocui.ModNone,
			Handler:  gui.scrollRightMain,
		},
		{
			ViewName: "main",
			Key:      opts.GetKey(opts.Config.Main.ScrollLeftAlt),
			Modifier: gocui.ModNone,
			Handler:  gui.scrollLeftMain,
		},
		{
			ViewName: "main",
			Key:      opts.GetKey(opts.Config.Main.ScrollRightAlt),
			Modifier: gocui.ModNone,
			Handler:  gui.scrollRightMain,
		},
		{
			ViewName: "menu",
			Key:      opts.GetKey(opts.Config.Menu.Close),
			Modifier: gocui.ModNone,
			Handler:  gui.handleMenuClose,
		},
		{
			ViewName: "menu",
			Key:      opts.GetKey(opts.Config.Menu.CloseAlt),
			Modifier: gocui.ModNone,
			Handler:  gui.handleMenuClose,
		},
		{
			ViewName: "menu",
			Key:      opts.GetKey(opts.Config.Menu.Select),
			Modifier: gocui.ModNone,
			Handler:  wrappedHandler(gui.handleMenuPress),
		},
		{
			ViewName: "menu",
			Key:      opts.GetKey(opts.Config.Menu.SelectAlt),
			Modifier: gocui.ModNone,
			Handler:  wrappedHandler(gui.handleMenuPress),
		},
		{
			ViewName: "menu",
			Key:      opts.GetKey(opts.Config.Menu.Confirm),
			Modifier: gocui.ModNone,
			Handler:  wrappedHandler(gui.handleMenuPress),
		},
		{
			ViewName: "filter",
			Key:      opts.GetKey(opts.Config.Filter.Confirm),
			Modifier: gocui.ModNone,
			Handler:  wrappedHandler(gui.commitFilter),
		},
		{
			ViewName: "filter",
			Key:      opts.GetKey(opts.Config.Filter.Escape),
			Modifier: gocui.ModNone,
			Handler:  wrappedHandler(gui.escapeFilterPrompt),
		},
		{
			ViewName: "information",
			Key:      gocui.MouseLeft,
			Modifier: gocui.ModNone,
			Handler:  gui.handleDonate,
		},
		{
			ViewName: "main",
			Key:      gocui.MouseWheelUp,
			Modifier: gocui.ModNone,
			Handler:  gui.scrollUpMain,
		},
		{
			ViewName: "main",
			Key:      gocui.MouseWheelDown,
			Modifier: gocui.ModNone,
			Handler:  gui.scrollDownMain,
		},
	}

	// navigation is the same for every list panel, so those bindings are stamped out in a loop
	for _, listPanelViewName := range []string{"status", "snaps", "locales", "menu"} {
		viewName := listPanelViewName
		bindings = append(bindings, []*Binding{
			{
				ViewName:    viewName,
				Key:         opts.GetKey(opts.Config.Universal.PrevItem),
				Modifier:    gocui.ModNone,
				Handler:     gui.listPanelHandler(viewName, panels.ISideListPanel.HandlePrevLine),
				Description: gui.Tr.Navigate,
			},
			{
				ViewName: viewName,
				Key:      opts.GetKey(opts.Config.Universal.NextItem),
				Modifier: gocui.ModNone,
				Handler:  gui.listPanelHandler(viewName, panels.ISideListPanel.HandleNextLine),
			},
			{
				ViewName: viewName,
				Key:      opts.GetKey(opts.Config.Universal.PrevItemAlt),
				Modifier: gocui.ModNone,
				Handler:  gui.listPanelHandler(viewName, panels.ISideListPanel.HandlePrevLine),
			},
			{
				ViewName: viewName,
				Key:      opts.GetKey(opts.Config.Universal.NextItemAlt),
				Modifier: gocui.ModNone,
				Handler:  gui.listPanelHandler(viewName, panels.ISideListPanel.HandleNextLine),
			},
			{
				ViewName: viewName,
				Key:      gocui.MouseWheelUp,
				Modifier: gocui.ModNone,
				Handler:  gui.listPanelHandler(viewName, panels.ISideListPanel.HandlePrevLine),
			},
			{
				ViewName: viewName,
				Key:      gocui.MouseWheelDown,
				Modifier: gocui.ModNone,
				Handler:  gui.listPanelHandler(viewName, panels.ISideListPanel.HandleNextLine),
			},
			{
				ViewName: viewName,
				Key:      gocui.MouseLeft,
				Modifier: gocui.ModNone,
				Handler:  gui.listPanelHandler(viewName, panels.ISideListPanel.HandleClick),
			},
		}...)
	}

	return bindings
}

// listPanelHandler defers the panel lookup to press time, because the panels
// don't exist yet when the bindings are built
func (gui *Gui) listPanelHandler(viewName string, method func(panels.ISideListPanel) error) func(*gocui.Gui, *gocui.View) error {
	return wrappedHandler(func() error {
		panel, ok := gui.listPanelByName(viewName)
		if !ok {
			return nil
		}

		return method(panel)
	})
}

func (gui *Gui) listPanelByName(viewName string) (panels.ISideListPanel, bool) {
	if !gui.ViewsSetup {
		return nil, false
	}

	for _, panel := range gui.allListPanels() {
		if panel.GetView().Name() == viewName {
			return panel, true
		}
	}

	return nil, false
}

func (gui *Gui) keybindings(g *gocui.Gui) error {
	for _, binding := range gui.GetInitialKeybindings() {
		if binding.Key == nil {
			continue
		}
		if err := g.SetKeybinding(binding.ViewName, binding.Key, binding.Modifier, binding.Handler); err != nil {
			return err
		}
	}

	return nil
}

func (gui *Gui) handleEnterMain() error {
	return gui.switchFocus(gui.getMainView())
}

func (gui *Gui) handlePrevMainTab() error {
	panel, ok := gui.currentSidePanel()
	if !ok {
		return nil
	}

	return panel.HandlePrevMainTab()
}

func (gui *Gui) handleNextMainTab() error {
	panel, ok := gui.currentSidePanel()
	if !ok {
		return nil
	}

	return panel.HandleNextMainTab()
}

func (gui *Gui) goToSidePanel(viewName string) func() error {
	return func() error {
		view, err := gui.g.View(viewName)
		if err != nil {
			return nil
		}

		return gui.switchFocus(view)
	}
}

func (gui *Gui) nextSidePanel() error {
	return gui.cycleSidePanel(1)
}

func (gui *Gui) previousSidePanel() error {
	return gui.cycleSidePanel(-1)
}

func (gui *Gui) cycleSidePanel(direction int) error {
	if gui.popupPanelFocused() {
		return nil
	}

	viewNames := gui.sideViewNames()
	currentName := gui.currentSideWindowName()

	currentIdx := 0
	for i, viewName := range viewNames {
		if viewName == currentName {
			currentIdx = i
			break
		}
	}

	newIdx := (currentIdx + direction + len(viewNames)) % len(viewNames)
	view, err := gui.g.View(viewNames[newIdx])
	if err != nil {
		return nil
	}

	gui.resetMainView()

	return gui.switchFocus(view)
}

func (gui *Gui) resetMainView() {
	gui.resetMainObjectKey()
	gui.getMainView().Wrap = gui.Config.UserConfig.Gui.WrapMainPanel
}

func (gui *Gui) scrollUpMain(g *gocui.Gui, v *gocui.View) error {
	mainView := gui.getMainView()
	mainView.Autoscroll = false
	ox, oy := mainView.Origin()
	newOy := int(math.Max(0, float64(oy-gui.Config.UserConfig.Gui.ScrollHeight)))
	return mainView.SetOrigin(ox, newOy)
}

func (gui *Gui) scrollDownMain(g *gocui.Gui, v *gocui.View) error {
	mainView := gui.getMainView()
	ox, oy := mainView.Origin()

	reservedLines := 0
	if !gui.Config.UserConfig.Gui.ScrollPastBottom {
		_, sizeY := mainView.Size()
		reservedLines = sizeY
	}

	totalLines := mainView.ViewLinesHeight()
	if oy+reservedLines >= totalLines {
		return nil
	}

	return mainView.SetOrigin(ox, oy+gui.Config.UserConfig.Gui.ScrollHeight)
}

func (gui *Gui) scrollLeftMain(g *gocui.Gui, v *gocui.View) error {
	mainView := gui.getMainView()
	ox, oy := mainView.Origin()
	newOx := int(math.Max(0, float64(ox-gui.Config.UserConfig.Gui.ScrollHeight)))
	return mainView.SetOrigin(newOx, oy)
}

func (gui *Gui) scrollRightMain(g *gocui.Gui, v *gocui.View) error {
	mainView := gui.getMainView()
	ox, oy := mainView.Origin()
	return mainView.SetOrigin(ox+gui.Config.UserConfig.Gui.ScrollHeight, oy)
}

func (gui *Gui) jumpToTopMain(g *gocui.Gui, v *gocui.View) error {
	mainView := gui.getMainView()
	mainView.Autoscroll = false
	ox, _ := mainView.Origin()
	return mainView.SetOrigin(ox, 0)
}

func (gui *Gui) jumpToBottomMain(g *gocui.Gui, v *gocui.View) error {
	mainView := gui.getMainView()
	mainView.Autoscroll = false
	ox, _ := mainView.Origin()
	_, sizeY := mainView.Size()
	bottom := utilsMax(mainView.ViewLinesHeight()-sizeY, 0)
	return mainView.SetOrigin(ox, bottom)
}

func utilsMax(x, y int) int {
	if x > y {
		return x
	}
	return y
}
