package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/OpenPeeDeeP/xdg"
	yaml "github.com/jesseduffield/yaml"
)

// AppConfig contains the base configuration fields required for snap-l10n.
type AppConfig struct {
	Debug       bool   `long:"debug" env:"DEBUG" default:"false"`
	Version     string `long:"version" env:"VERSION" default:"unversioned"`
	Commit      string `long:"commit" env:"COMMIT"`
	BuildDate   string `long:"build-date" env:"BUILD_DATE"`
	Name        string `long:"name" env:"NAME" default:"snap-l10n"`
	BuildSource string `long:"build-source" env:"BUILD_SOURCE" default:""`
	UserConfig  *UserConfig
	ConfigDir   string
}

// UserConfig holds all of the user-configurable options. The fields here are all in PascalCase but in your actual config.yml they'll be in camelCase. You can view the current config with `snap-l10n --config` and you can open the config file with 'o' when the status panel is focused, or use 'e' to edit it in your chosen editor. Be careful: if for example you set a `locales:` yaml key but then give it no child values, it will scrap all of the defaults and every snap will come out fully translated against an empty reference set
type UserConfig struct {
	// Gui is for configuring visual things like colors and whether we show or hide things
	Gui GuiConfig `yaml:"gui,omitempty"`

	// ConfirmOnQuit when enabled prompts you to confirm you want to quit when you hit esc or q when no confirmation panels are open
	ConfirmOnQuit bool `yaml:"confirmOnQuit,omitempty"`

	// Ignore hides snaps from every panel when their name contains any of the given strings. Handy for bases like core22 and for snapd itself, none of which could ever carry a desktop entry
	Ignore []string `yaml:"ignore,omitempty"`

	// Locales determines which locales each snap's desktop entries are checked against
	Locales LocalesConfig `yaml:"locales,omitempty"`

	// Snapd is for configuring how we talk to the snapd daemon
	Snapd SnapdConfig `yaml:"snapd,omitempty"`

	// Scan is for configuring how installed snaps are scanned for translations
	Scan ScanConfig `yaml:"scan,omitempty"`

	// Refresh determines how often the list of snaps is re-fetched from snapd and re-scanned
	Refresh RefreshConfig `yaml:"refresh,omitempty"`

	// Report is for configuring exported coverage reports
	Report ReportConfig `yaml:"report,omitempty"`

	// Coverage determines how much coverage history we record per locale, and what to graph
	Coverage CoverageConfig `yaml:"coverage,omitempty"`

	// OS determines what defaults are set for opening files and links
	OS OSConfig `yaml:"oS,omitempty"`

	// Keybinding holds the user's key overrides. Any key left blank falls back to the default
	Keybinding KeybindingConfig `yaml:"keybinding,omitempty"`
}

// ThemeConfig is for setting the colors of panels and some text.
type ThemeConfig struct {
	ActiveBorderColor   []string `yaml:"activeBorderColor,omitempty"`
	InactiveBorderColor []string `yaml:"inactiveBorderColor,omitempty"`
	OptionsTextColor    []string `yaml:"optionsTextColor,omitempty"`
	SelectedLineBgColor []string `yaml:"selectedLineBgColor,omitempty"`
}

// GuiConfig is for configuring visual things like colors and whether we show or hide things
type GuiConfig struct {
	// ScrollHeight determines how many characters you scroll at a time when scrolling the main panel
	ScrollHeight int `yaml:"scrollHeight,omitempty"`

	// Language determines the language of the UI itself, not the locales being checked. 'auto' means we detect it from your environment
	Language string `yaml:"language,omitempty"`

	// ScrollPastBottom determines whether you can scroll past the bottom of the main view
	ScrollPastBottom bool `yaml:"scrollPastBottom,omitempty"`

	// IgnoreMouseEvents is for when you don't want to use your mouse to interact with anything
	IgnoreMouseEvents bool `yaml:"mouseEvents,omitempty"`

	// Theme determines what colors and color attributes your panel borders have. I always set inactiveBorderColor to black because in my terminal it's more of a grey, but that doesn't work in your average terminal. I highly recommended finding a combination that works for you
	Theme ThemeConfig `yaml:"theme,omitempty"`

	// HideSnapsWithoutDesktopEntries hides snaps that ship no desktop entries at all. Those snaps have nothing we can inspect so they can only ever show up as untranslated, which some people consider noise
	HideSnapsWithoutDesktopEntries bool `yaml:"hideSnapsWithoutDesktopEntries,omitempty"`

	// ReturnImmediately determines whether you get the 'press enter to return' message after running a subprocess such as your editor
	ReturnImmediately bool `yaml:"returnImmediately,omitempty"`

	// WrapMainPanel determines whether we use word wrap on the main panel
	WrapMainPanel bool `yaml:"wrapMainPanel,omitempty"`

	// SidePanelWidth determines the width of the side panels as a fraction of the whole screen
	SidePanelWidth float64 `yaml:"sidePanelWidth,omitempty"`

	// ShowBottomLine determines whether we show the bottom line with keybinding options
	ShowBottomLine bool `yaml:"showBottomLine,omitempty"`

	// ExpandFocusedSidePanel determines whether the focused side panel gets more vertical space than the others
	ExpandFocusedSidePanel bool `yaml:"expandFocusedSidePanel,omitempty"`

	// ScreenMode determines the initial window arrangement. One of 'normal', 'half' and 'fullscreen'
	ScreenMode string `yaml:"screenMode,omitempty"`

	// TranslationStatusStyle determines how the translation status of a snap is rendered in the snaps panel. One of 'long' (status plus locale counts), 'short' (just the status) and 'icon'
	TranslationStatusStyle string `yaml:"translationStatusStyle,omitempty"`
}

// LocalesConfig determines which locales each snap's desktop entries are checked against
type LocalesConfig struct {
	// Reference is the set of locales a snap needs to cover before we call it fully translated. Region variants are distinct, so pt_BR in this list is not satisfied by a plain pt translation. You'll probably want to replace the default with whatever your distro actually ships
	Reference []string `yaml:"reference,omitempty"`
}

// SnapdConfig is for configuring how we talk to the snapd daemon
type SnapdConfig struct {
	// Socket is the path to the snapd unix socket. Leave it blank and we'll try the usual locations
	Socket string `yaml:"socket,omitempty"`

	// RequestTimeout is how long we wait for snapd to answer a single request before giving up
	RequestTimeout time.Duration `yaml:"requestTimeout,omitempty"`
}

// ScanConfig is for configuring how installed snaps are scanned for translations
type ScanConfig struct {
	// Workers is how many snaps we scan concurrently. Scans are all local disk reads so this doesn't need to be high
	Workers int `yaml:"workers,omitempty"`

	// SkipLocaleDirs skips looking inside the snap's bundled gettext locale directories. Those directories never decide a snap's status, they only add context in the main panel, so skipping them just makes scans a little cheaper
	SkipLocaleDirs bool `yaml:"skipLocaleDirs,omitempty"`
}

// RefreshConfig determines how often the list of snaps is re-fetched from snapd and re-scanned
type RefreshConfig struct {
	// Interval is the time between automatic refreshes. Zero disables them, leaving you with the 'R' key
	Interval time.Duration `yaml:"interval,omitempty"`
}

// ReportConfig is for configuring exported coverage reports
type ReportConfig struct {
	// Format is the default export format when none is given. One of 'csv', 'json' and 'yaml'
	Format string `yaml:"format,omitempty"`

	// Directory is where report files are written. Blank means the current directory
	Directory string `yaml:"directory,omitempty"`
}

// GraphConfig specifies how to make a graph of recorded coverage samples
type GraphConfig struct {
	// Min sets the minimum value that you want to display. If you want to set this, you should also set MinType to "static". The reason for this is that if Min == 0, it's not clear if it has not been set (given that the zero-value of an int is 0) or if it's intentionally been set to 0.
	Min float64 `yaml:"min,omitempty"`

	// Max sets the maximum value that you want to display. If you want to set this, you should also set MaxType to "static". The reason for this is that if Max == 0, it's not clear if it has not been set (given that the zero-value of an int is 0) or if it's intentionally been set to 0.
	Max float64 `yaml:"max,omitempty"`

	// Height sets the height of the graph in ascii characters
	Height int `yaml:"height,omitempty"`

	// Caption sets the caption of the graph. If you want to show the percentage of snaps covering a locale you could set this to "Coverage (%)"
	Caption string `yaml:"caption,omitempty"`

	// This is the path to the value that you want to display. It is based on the CoverageSample struct in the commands package, so feel free to look there to see all the options available. E.g. "Percentage" or "TranslatedSnaps"
	ValuePath string `yaml:"valuePath,omitempty"`

	// This determines the color of the graph. This can be any color attribute, e.g. 'blue', 'green'
	Color string `yaml:"color,omitempty"`

	// MinType and MaxType are each one of "", "static". blank means the min/max of the data set will be used. "static" means the min/max specified will be used
	MinType string `yaml:"minType,omitempty"`

	// MaxType is just like MinType but for the max value
	MaxType string `yaml:"maxType,omitempty"`
}

// CoverageConfig contains the stuff relating to coverage history and graphs
type CoverageConfig struct {
	// Graphs contains the configuration for the coverage graphs we want to show in the app
	Graphs []GraphConfig

	// MaxSamples is how many refresh samples we keep per locale for graphing. Older samples fall off the end
	MaxSamples int `yaml:"maxSamples,omitempty"`
}

// OSConfig contains config on the level of the os
type OSConfig struct {
	// OpenCommand is the command for opening a file
	OpenCommand string `yaml:"openCommand,omitempty"`

	// OpenCommand is the command for opening a link
	OpenLinkCommand string `yaml:"openLinkCommand,omitempty"`
}

// GetDefaultConfig returns the application default configuration
// NOTE (to contributors, not users): do not default a boolean to true, because false is the boolean zero value and this will be ignored when parsing the user's config
func GetDefaultConfig() UserConfig {
	return UserConfig{
		Gui: GuiConfig{
			ScrollHeight:      2,
			Language:          "auto",
			ScrollPastBottom:  false,
			IgnoreMouseEvents: false,
			Theme: ThemeConfig{
				ActiveBorderColor:   []string{"green", "bold"},
				InactiveBorderColor: []string{"default"},
				OptionsTextColor:    []string{"blue"},
				SelectedLineBgColor: []string{"default"},
			},
			HideSnapsWithoutDesktopEntries: false,
			ReturnImmediately:              false,
			WrapMainPanel:                  true,
			SidePanelWidth:                 0.3333,
			ShowBottomLine:                 true,
			ExpandFocusedSidePanel:         false,
			ScreenMode:                     "normal",
			TranslationStatusStyle:         "long",
		},
		ConfirmOnQuit: false,
		Ignore:        []string{},
		Locales: LocalesConfig{
			Reference: []string{"de", "es", "fr", "it", "ja", "pl", "pt_BR", "ru", "sv", "zh_CN"},
		},
		Snapd: SnapdConfig{
			Socket:         "",
			RequestTimeout: time.Second * 10,
		},
		Scan: ScanConfig{
			Workers:        8,
			SkipLocaleDirs: false,
		},
		Refresh: RefreshConfig{
			Interval: 0,
		},
		Report: ReportConfig{
			Format:    "csv",
			Directory: "",
		},
		Coverage: CoverageConfig{
			Graphs: []GraphConfig{
				{
					Caption:   "Coverage (%)",
					ValuePath: "Percentage",
					Color:     "cyan",
				},
				{
					Caption:   "Translated (snaps)",
					ValuePath: "TranslatedSnaps",
					Color:     "green",
				},
			},
			MaxSamples: 60,
		},
		OS:         GetPlatformDefaultConfig(),
		Keybinding: GetDefaultKeybindings(),
	}
}

// NewAppConfig makes a new app config
func NewAppConfig(name, version, commit, date string, buildSource string, debuggingFlag bool, referenceLocales []string, socketPath string) (*AppConfig, error) {
	configDir, err := findOrCreateConfigDir(name)
	if err != nil {
		return nil, err
	}

	userConfig, err := loadUserConfigWithDefaults(configDir)
	if err != nil {
		return nil, err
	}

	if err := userConfig.Validate(); err != nil {
		return nil, err
	}

	if len(referenceLocales) > 0 {
		userConfig.Locales.Reference = referenceLocales
	}

	if socketPath != "" {
		userConfig.Snapd.Socket = socketPath
	}

	appConfig := &AppConfig{
		Name:        name,
		Version:     version,
		Commit:      commit,
		BuildDate:   date,
		Debug:       debuggingFlag || os.Getenv("DEBUG") == "TRUE",
		BuildSource: buildSource,
		UserConfig:  userConfig,
		ConfigDir:   configDir,
	}

	return appConfig, nil
}

func configDirForVendor(vendor string, applicationName string) string {
	envConfigDir := os.Getenv("CONFIG_DIR")
	if envConfigDir != "" {
		return envConfigDir
	}
	configDirs := xdg.New(vendor, applicationName)
	return configDirs.ConfigHome()
}

func findOrCreateConfigDir(projectName string) (string, error) {
	folderPath := configDirForVendor("yeager", projectName)
	return folderPath, os.MkdirAll(folderPath, 0o755)
}

func loadUserConfigWithDefaults(configDir string) (*UserConfig, error) {
	config := GetDefaultConfig()

	return loadUserConfig(configDir, &config)
}

func loadUserConfig(configDir string, base *UserConfig) (*UserConfig, error) {
	fileName := filepath.Join(configDir, "config.yml")

	if _, err := os.Stat(fileName); err != nil {
		if os.IsNotExist(err) {
			file, err := os.Create(fileName)
			if err != nil {
				return nil, err
			}
			file.Close()
		} else {
			return nil, err
		}
	}

	content, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(content, base); err != nil {
		return nil, err
	}

	return base, nil
}

// WriteToUserConfig allows you to set a value on the user config to be saved
// note that if you set a zero-value, it may be ignored e.g. a false or 0 or empty string
// this is because we are using the omitempty yaml directive so that we don't write a heap
// of zero values to the user's config.yml
func (c *AppConfig) WriteToUserConfig(updateConfig func(*UserConfig) error) error {
	userConfig, err := loadUserConfig(c.ConfigDir, &UserConfig{})
	if err != nil {
		return err
	}

	if err := updateConfig(userConfig); err != nil {
		return err
	}

	out, err := yaml.Marshal(userConfig)
	if err != nil {
		return err
	}

	return os.WriteFile(c.ConfigFilename(), out, 0o666)
}

// ConfigFilename returns the filename of the current config file
func (c *AppConfig) ConfigFilename() string {
	return filepath.Join(c.ConfigDir, "config.yml")
}
