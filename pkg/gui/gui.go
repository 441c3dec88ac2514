package gui

import (
	"context"
	"os/exec"
	"sync"
	"time"

	"github.com/boz/go-throttle"
	"github.com/go-errors/errors"

	"github.com/jesseduffield/gocui"
	"github.com/samber/lo"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"

	"github.com/yeager/snap-l10n/pkg/commands"
	"github.com/yeager/snap-l10n/pkg/config"
	"github.com/yeager/snap-l10n/pkg/gui/panels"
	"github.com/yeager/snap-l10n/pkg/gui/types"
	"github.com/yeager/snap-l10n/pkg/i18n"
	"github.com/yeager/snap-l10n/pkg/tasks"
)

// OverlappingEdges determines if panel edges overlap
var OverlappingEdges = false

// SentinelErrors are the errors that have special meaning and need to be checked
// by calling functions. The less of these, the better
type SentinelErrors struct {
	ErrSubProcess error
}

// GenerateSentinelErrors makes the sentinel errors for the gui. We're defining it
// here because we can't do package-scoped errors with localization
func (gui *Gui) GenerateSentinelErrors() {
	gui.Errors = SentinelErrors{
		ErrSubProcess: errors.New(gui.Tr.RunningSubprocess),
	}
}

// Gui wraps the gocui Gui object which handles rendering and events
type Gui struct {
	g             *gocui.Gui
	Log           *logrus.Entry
	SnapdCommand  *commands.SnapdCommand
	OSCommand     *commands.OSCommand
	SubProcess    *exec.Cmd
	State         guiState
	Config        *config.AppConfig
	Tr            *i18n.TranslationSet
	Errors        SentinelErrors
	statusManager *statusManager
	taskManager   *tasks.TaskManager
	waitForIntro  sync.WaitGroup
	ErrorChan     chan error

	// filter keypresses trigger this rather than re-rendering directly,
	// so that a fast typist doesn't queue up a render per keystroke
	filterThrottle throttle.ThrottleDriver

	// cancels the in-flight background scan sweep, if any. Guarded by
	// Mutexes.ScanMutex
	cancelScan context.CancelFunc

	Views Views

	// if we're in the middle of setting up our views we don't want certain
	// callbacks (like focus callbacks) firing against half-made views
	ViewsSetup bool

	Mutexes guiMutexes

	Panels Panels

	// daemon is the single item shown in the status panel: our connection
	// to snapd
	daemon *commands.Daemon

	// systemLocale is what the user's own environment asks for, detected once
	// at startup. The locales panel marks it so you can spot your own language
	systemLocale string
}

type Panels struct {
	Status  *panels.SideListPanel[*commands.Daemon]
	Snaps   *panels.SideListPanel[*commands.Snap]
	Locales *panels.SideListPanel[*commands.Locale]
	Menu    *panels.SideListPanel[*types.MenuItem]
}

type guiMutexes struct {
	ViewStackMutex deadlock.Mutex
	ScanMutex      deadlock.Mutex
}

type filterState struct {
	active bool
	// the panel whose list we are filtering
	panel panels.ISideListPanel
	// the string we are filtering on
	needle string
}

// translationFilter buckets the snaps panel by scan outcome.
type translationFilter int

const (
	FILTER_ALL translationFilter = iota
	FILTER_UNTRANSLATED
	FILTER_PARTIAL
)

// screen sizing determines how much space your selected window takes up (window
// as in panel, not your terminal's window). Sometimes you want a bit more space
// to see the contents of a panel, and this keeps track of how much maximisation
// you've set
type WindowMaximisation int

const (
	SCREEN_NORMAL WindowMaximisation = iota
	SCREEN_HALF
	SCREEN_FULL
)

func getScreenMode(config *config.AppConfig) WindowMaximisation {
	switch config.UserConfig.Gui.ScreenMode {
	case "normal":
		return SCREEN_NORMAL
	case "half":
		return SCREEN_HALF
	case "fullscreen":
		return SCREEN_FULL
	default:
		return SCREEN_NORMAL
	}
}

type guiState struct {
	// the names of views in the stack, with the last being the current view
	ViewStack []string

	// StatusFilter restricts the snaps panel to one scan-outcome bucket.
	// Cycled from the snaps panel
	StatusFilter translationFilter

	// when set, the snaps panel only shows snaps missing this locale. Set
	// from the locales panel, cleared with escape
	MissingLocaleFilter string

	Filter filterState

	ScreenMode WindowMaximisation

	// SessionIndex tells us how many times we've come back from a subprocess.
	// We increment it each time we switch to a new subprocess.
	// Every time we go to a subprocess we need to close a few goroutines so
	// this index is used for that purpose
	SessionIndex int

	// mainObjectKey tells us what context the main panel is rendering, e.g.
	// 'snaps-firefox-1234-translations'. When the key hasn't changed between
	// selections we skip re-rendering
	mainObjectKey string

	// when the snap list was last fetched from snapd, shown on the dashboard
	lastRefresh time.Time
}

// NewGui builds a new gui handler
func NewGui(log *logrus.Entry, snapdCommand *commands.SnapdCommand, oSCommand *commands.OSCommand, tr *i18n.TranslationSet, config *config.AppConfig, errorChan chan error) (*Gui, error) {
	initialState := guiState{
		StatusFilter: FILTER_ALL,
		ScreenMode:   getScreenMode(config),
	}

	gui := &Gui{
		Log:           log,
		SnapdCommand:  snapdCommand,
		OSCommand:     oSCommand,
		State:         initialState,
		Config:        config,
		Tr:            tr,
		statusManager: &statusManager{},
		taskManager:   tasks.NewTaskManager(log, tr),
		ErrorChan:     errorChan,
		daemon: &commands.Daemon{
			Name:       "snapd",
			SocketPath: snapdCommand.SocketPath,
		},
		systemLocale: i18n.SystemLocale(),
	}

	gui.GenerateSentinelErrors()

	gui.filterThrottle = throttle.ThrottleFunc(time.Millisecond*50, true, gui.rerenderFilteredPanel)

	return gui, nil
}

// Run setup the gui with keybindings and start the mainloop
func (gui *Gui) Run() error {
	// closing the task manager in turn closes the current task if there is
	// any, so we aren't leaving processes lying around after closing snap-l10n
	defer gui.taskManager.Close()

	g, err := gocui.NewGui(gocui.OutputTrue, OverlappingEdges, gocui.NORMAL, false, map[rune]string{})
	if err != nil {
		return err
	}
	defer g.Close()

	gui.g = g

	// a fresh gocui instance means fresh views, so the panels get rebuilt
	// against them in the next layout call
	gui.ViewsSetup = false

	// forgive the double-negative, this is because of my yaml `omitempty` woes
	if !gui.Config.UserConfig.Gui.IgnoreMouseEvents {
		g.Mouse = true
	}

	if err := gui.SetColorScheme(); err != nil {
		return err
	}

	gui.waitForIntro.Add(1)

	go func() {
		// wait for this session's views and panels to be set up before
		// rendering anything to them
		gui.waitForIntro.Wait()

		gui.goEvery(time.Millisecond*30, gui.reRenderMain)
		gui.goEvery(time.Millisecond*1000, gui.checkForContextChange)

		_ = gui.refreshStatus()

		interval := gui.Config.UserConfig.Refresh.Interval
		if interval > 0 {
			gui.goEvery(interval, gui.refreshSnaps)
		} else {
			_ = gui.refreshSnaps()
		}
	}()

	go func() {
		for err := range gui.ErrorChan {
			if err == nil || err == gui.Errors.ErrSubProcess {
				continue
			}
			gui.Log.Error(err)
			_ = gui.createErrorPanel(err.Error())
		}
	}()

	g.SetManager(gocui.ManagerFunc(gui.layout), gocui.ManagerFunc(gui.getFocusLayout()))

	if err = gui.keybindings(g); err != nil {
		return err
	}

	err = g.MainLoop()
	return err
}

func (gui *Gui) setPanels() {
	oldPanels := gui.Panels

	gui.Panels = Panels{
		Status:  gui.getStatusPanel(),
		Snaps:   gui.getSnapsPanel(),
		Locales: gui.getLocalesPanel(),
		Menu:    gui.getMenuPanel(),
	}

	// coming back from a subprocess the panels are rebuilt against the new
	// session's views, but the snaps keep their scan state
	if oldPanels.Snaps != nil {
		gui.Panels.Snaps.SetItems(oldPanels.Snaps.List.GetAllItems())
		gui.Panels.Locales.SetItems(oldPanels.Locales.List.GetAllItems())
	}
}

// onViewsCreated runs once the gocui views exist, at the start of a session.
// Coming back from a subprocess spins up a fresh gocui instance so this runs
// again, against the same panel state.
func (gui *Gui) onViewsCreated() error {
	gui.setPanels()

	gui.Panels.Status.SetItems([]*commands.Daemon{gui.daemon})

	if err := gui.setInitialViewContent(); err != nil {
		return err
	}

	gui.waitForIntro.Done()

	return nil
}

func (gui *Gui) allSidePanels() []panels.ISideListPanel {
	return []panels.ISideListPanel{
		gui.Panels.Status,
		gui.Panels.Snaps,
		gui.Panels.Locales,
	}
}

func (gui *Gui) allListPanels() []panels.ISideListPanel {
	return append(gui.allSidePanels(), gui.Panels.Menu)
}

func (gui *Gui) currentListPanel() (panels.ISideListPanel, bool) {
	return lo.Find(gui.allListPanels(), func(panel panels.ISideListPanel) bool {
		return panel.GetView() == gui.g.CurrentView()
	})
}

func (gui *Gui) currentSidePanel() (panels.ISideListPanel, bool) {
	return lo.Find(gui.allSidePanels(), func(panel panels.ISideListPanel) bool {
		return panel.GetView() == gui.g.CurrentView()
	})
}

func (gui *Gui) intoInterface() panels.IGui {
	return gui
}

func (gui *Gui) IsCurrentView(view *gocui.View) bool {
	return view == gui.g.CurrentView()
}

func (gui *Gui) FilterString(view *gocui.View) string {
	if gui.State.Filter.panel != nil && gui.State.Filter.panel.GetView() != view {
		return ""
	}

	return gui.State.Filter.needle
}

func (gui *Gui) IgnoreStrings() []string {
	return gui.Config.UserConfig.Ignore
}

func (gui *Gui) Update(f func() error) {
	gui.g.Update(func(*gocui.Gui) error { return f() })
}

// ShouldRefresh returns true if the given context key differs from the main
// panel's current one, meaning new content needs rendering. Storing the key
// makes this a one-shot check: asking is committing to render.
func (gui *Gui) ShouldRefresh(key string) bool {
	if gui.State.mainObjectKey == key {
		return false
	}

	gui.State.mainObjectKey = key
	return true
}

func (gui *Gui) resetMainObjectKey() {
	gui.State.mainObjectKey = ""
}

func (gui *Gui) initiallyFocusedViewName() string {
	return "snaps"
}

func (gui *Gui) renderGlobalOptions() error {
	return gui.renderOptionsMap(map[string]string{
		"PgUp/PgDn": gui.Tr.Scroll,
		"← → ↑ ↓":   gui.Tr.Navigate,
		"esc/q":     gui.Tr.Close,
		"x":         gui.Tr.Menu,
	})
}

func (gui *Gui) goEvery(interval time.Duration, function func() error) {
	currentSessionIndex := gui.State.SessionIndex
	_ = function() // time.Tick doesn't run immediately so we'll do that here
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			if gui.State.SessionIndex > currentSessionIndex {
				return
			}
			_ = function()
		}
	}()
}

// checkForContextChange runs the currently focused panel's 'select' function,
// simulating the current item having just been selected. The context cache key
// then tells us whether what the main panel shows is stale, e.g. because a
// background sweep re-scanned the selected snap, and if so the panel re-renders.
func (gui *Gui) checkForContextChange() error {
	return gui.newLineFocused(gui.g.CurrentView())
}

func (gui *Gui) reRenderMain() error {
	mainView := gui.getMainView()
	if mainView == nil {
		return nil
	}
	if mainView.IsTainted() {
		gui.g.Update(func(g *gocui.Gui) error {
			return nil
		})
	}
	return nil
}

func (gui *Gui) quit(g *gocui.Gui, v *gocui.View) error {
	if gui.Config.UserConfig.ConfirmOnQuit {
		return gui.createConfirmationPanel("", gui.Tr.ConfirmQuit, func(g *gocui.Gui, v *gocui.View) error {
			return gocui.ErrQuit
		}, nil)
	}
	return gocui.ErrQuit
}

func (gui *Gui) handleDonate(g *gocui.Gui, v *gocui.View) error {
	if !gui.g.Mouse {
		return nil
	}

	cx, _ := v.Cursor()
	if cx > len(gui.Tr.Donate) {
		return nil
	}
	return gui.OSCommand.OpenLink("https://github.com/sponsors/yeager")
}

func (gui *Gui) editFile(filename string) error {
	_, err := gui.runSyncOrAsyncCommand(gui.OSCommand.EditFile(filename))
	return err
}

func (gui *Gui) openFile(filename string) error {
	if err := gui.OSCommand.OpenFile(filename); err != nil {
		return gui.createErrorPanel(err.Error())
	}
	return nil
}

// runSyncOrAsyncCommand takes the output of a command that may have returned
// either no error, an error, or a subprocess to execute, and if a subprocess
// needs to be set on the gui object, it does so, and then returns the error
// the bool returned tells us whether the calling code should continue
func (gui *Gui) runSyncOrAsyncCommand(sub *exec.Cmd, err error) (bool, error) {
	if err != nil {
		if err != gui.Errors.ErrSubProcess {
			return false, gui.createErrorPanel(err.Error())
		}
	}
	if sub != nil {
		gui.SubProcess = sub
		return false, gui.Errors.ErrSubProcess
	}
	return true, nil
}
