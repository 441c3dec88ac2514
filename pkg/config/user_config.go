package config

// KeybindingConfig contains all keybinding configurations for snap-l10n
type KeybindingConfig struct {
	Universal KeybindingUniversalConfig `yaml:"universal"`
	Status    KeybindingStatusConfig    `yaml:"status"`
	Snaps     KeybindingSnapsConfig     `yaml:"snaps"`
	Locales   KeybindingLocalesConfig   `yaml:"locales"`
	Main      KeybindingMainConfig      `yaml:"main"`
	Menu      KeybindingMenuConfig      `yaml:"menu"`
	Filter    KeybindingFilterConfig    `yaml:"filter"`
}

// KeybindingUniversalConfig contains keybindings that are available globally
type KeybindingUniversalConfig struct {
	Quit               string `yaml:"quit,omitempty"`
	QuitAlt            string `yaml:"quitAlt,omitempty"`
	Return             string `yaml:"return,omitempty"`
	ScrollUpMain       string `yaml:"scrollUpMain,omitempty"`
	ScrollDownMain     string `yaml:"scrollDownMain,omitempty"`
	ScrollUpMainAlt1   string `yaml:"scrollUpMainAlt1,omitempty"`
	ScrollDownMainAlt1 string `yaml:"scrollDownMainAlt1,omitempty"`
	ScrollUpMainAlt2   string `yaml:"scrollUpMainAlt2,omitempty"`
	ScrollDownMainAlt2 string `yaml:"scrollDownMainAlt2,omitempty"`
	ScrollLeftMain     string `yaml:"scrollLeftMain,omitempty"`
	ScrollRightMain    string `yaml:"scrollRightMain,omitempty"`
	JumpToTopMain      string `yaml:"jumpToTopMain,omitempty"`
	JumpToBottomMain   string `yaml:"jumpToBottomMain,omitempty"`
	OpenMenu           string `yaml:"openMenu,omitempty"`
	OpenMenuAlt        string `yaml:"openMenuAlt,omitempty"`
	Refresh            string `yaml:"refresh,omitempty"`
	Export             string `yaml:"export,omitempty"`
	NextScreenMode     string `yaml:"nextScreenMode,omitempty"`
	PrevScreenMode     string `yaml:"prevScreenMode,omitempty"`
	PrevItem           string `yaml:"prevItem,omitempty"`
	NextItem           string `yaml:"nextItem,omitempty"`
	PrevItemAlt        string `yaml:"prevItemAlt,omitempty"`
	NextItemAlt        string `yaml:"nextItemAlt,omitempty"`
	PrevPanel          string `yaml:"prevPanel,omitempty"`
	NextPanel          string `yaml:"nextPanel,omitempty"`
	PrevPanelAlt       string `yaml:"prevPanelAlt,omitempty"`
	NextPanelAlt       string `yaml:"nextPanelAlt,omitempty"`
	TogglePanel        string `yaml:"togglePanel,omitempty"`
	TogglePanelAlt     string `yaml:"togglePanelAlt,omitempty"`
	EnterMain          string `yaml:"enterMain,omitempty"`
	PrevMainTab        string `yaml:"prevMainTab,omitempty"`
	NextMainTab        string `yaml:"nextMainTab,omitempty"`
	Filter             string `yaml:"filter,omitempty"`
	GoToStatus         string `yaml:"goToStatus,omitempty"`
	GoToSnaps          string `yaml:"goToSnaps,omitempty"`
	GoToLocales        string `yaml:"goToLocales,omitempty"`
}

// KeybindingStatusConfig contains keybindings for the status panel
type KeybindingStatusConfig struct {
	EditConfig string `yaml:"editConfig,omitempty"`
	OpenConfig string `yaml:"openConfig,omitempty"`
}

// KeybindingSnapsConfig contains keybindings for the snaps panel
type KeybindingSnapsConfig struct {
	Rescan            string `yaml:"rescan,omitempty"`
	CycleStatusFilter string `yaml:"cycleStatusFilter,omitempty"`
	OpenStorePage     string `yaml:"openStorePage,omitempty"`
	OpenDesktopFile   string `yaml:"openDesktopFile,omitempty"`
}

// KeybindingLocalesConfig contains keybindings for the locales panel
type KeybindingLocalesConfig struct {
	FilterSnaps   string `yaml:"filterSnaps,omitempty"`
	EditReference string `yaml:"editReference,omitempty"`
}

// KeybindingMainConfig contains keybindings for the main panel
type KeybindingMainConfig struct {
	Return         string `yaml:"return,omitempty"`
	ScrollLeft     string `yaml:"scrollLeft,omitempty"`
	ScrollRight    string `yaml:"scrollRight,omitempty"`
	ScrollLeftAlt  string `yaml:"scrollLeftAlt,omitempty"`
	ScrollRightAlt string `yaml:"scrollRightAlt,omitempty"`
}

// KeybindingMenuConfig contains keybindings for menus
type KeybindingMenuConfig struct {
	Close     string `yaml:"close,omitempty"`
	CloseAlt  string `yaml:"closeAlt,omitempty"`
	Select    string `yaml:"select,omitempty"`
	SelectAlt string `yaml:"selectAlt,omitempty"`
	Confirm   string `yaml:"confirm,omitempty"`
}

// KeybindingFilterConfig contains keybindings for the filter prompt
type KeybindingFilterConfig struct {
	Confirm string `yaml:"confirm,omitempty"`
	Escape  string `yaml:"escape,omitempty"`
}

// GetDefaultKeybindings returns the default keybinding configuration
func GetDefaultKeybindings() KeybindingConfig {
	return KeybindingConfig{
		Universal: KeybindingUniversalConfig{
			Quit:               "q",
			QuitAlt:            "<c-c>",
			Return:             "<esc>",
			ScrollUpMain:       "<pgup>",
			ScrollDownMain:     "<pgdown>",
			ScrollUpMainAlt1:   "<c-u>",
			ScrollDownMainAlt1: "<c-d>",
			ScrollUpMainAlt2:   "K",
			ScrollDownMainAlt2: "J",
			ScrollLeftMain:     "H",
			ScrollRightMain:    "L",
			JumpToTopMain:      "<home>",
			JumpToBottomMain:   "<end>",
			OpenMenu:           "x",
			OpenMenuAlt:        "?",
			Refresh:            "R",
			Export:             "E",
			NextScreenMode:     "+",
			PrevScreenMode:     "_",
			PrevItem:           "<up>",
			NextItem:           "<down>",
			PrevItemAlt:        "k",
			NextItemAlt:        "j",
			PrevPanel:          "<left>",
			NextPanel:          "<right>",
			PrevPanelAlt:       "h",
			NextPanelAlt:       "l",
			TogglePanel:        "<tab>",
			TogglePanelAlt:     "<backtab>",
			EnterMain:          "<enter>",
			PrevMainTab:        "[",
			NextMainTab:        "]",
			Filter:             "/",
			GoToStatus:         "1",
			GoToSnaps:          "2",
			GoToLocales:        "3",
		},
		Status: KeybindingStatusConfig{
			EditConfig: "e",
			OpenConfig: "o",
		},
		Snaps: KeybindingSnapsConfig{
			Rescan:            "r",
			CycleStatusFilter: "e",
			OpenStorePage:     "w",
			OpenDesktopFile:   "o",
		},
		Locales: KeybindingLocalesConfig{
			FilterSnaps:   "f",
			EditReference: "e",
		},
		Main: KeybindingMainConfig{
			Return:         "<esc>",
			ScrollLeft:     "<left>",
			ScrollRight:    "<right>",
			ScrollLeftAlt:  "h",
			ScrollRightAlt: "l",
		},
		Menu: KeybindingMenuConfig{
			Close:     "<esc>",
			CloseAlt:  "q",
			Select:    " ",
			SelectAlt: "y",
			Confirm:   "<enter>",
		},
		Filter: KeybindingFilterConfig{
			Confirm: "<enter>",
			Escape:  "<esc>",
		},
	}
}
