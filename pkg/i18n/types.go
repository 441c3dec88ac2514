package i18n

// TranslationSet is a set of localised strings for a given language
type TranslationSet struct {
	NotEnoughSpace                             string
	StatusTitle                                string
	SnapsTitle                                 string
	LocalesTitle                               string
	MainTitle                                  string
	GlobalTitle                                string
	Navigate                                   string
	Menu                                       string
	MenuTitle                                  string
	Execute                                    string
	Scroll                                     string
	Close                                      string
	Quit                                       string
	ErrorTitle                                 string
	NoViewMachingNewLineFocusedSwitchStatement string
	OpenConfig                                 string
	EditConfig                                 string
	ConfirmQuit                                string
	ErrorOccurred                              string
	ConnectionFailed                           string
	CannotAccessSnapdSocketError               string
	MalformedSnapdResponse                     string
	CannotKillChildError                       string

	Donate  string
	Cancel  string
	Confirm string
	Return  string

	FocusMain         string
	LcFilter          string
	LcRefresh         string
	LcRescan          string
	CycleStatusFilter string
	OpenStorePage     string
	OpenDesktopFile   string
	FilterMissing     string
	ExportReport      string
	PreviousContext   string
	NextContext       string

	EditReferenceLocales   string
	ReferenceLocalesPrompt string
	RunningSubprocess      string

	RefreshingStatus string
	ScanningStatus   string
	ExportingStatus  string

	FullyTranslated     string
	PartiallyTranslated string
	Untranslated        string

	StatusFilterAll          string
	StatusFilterUntranslated string
	StatusFilterPartial      string

	ExportTitle     string
	ExportCSV       string
	ExportJSON      string
	ExportYAML      string
	ReportWrittenTo string

	TranslationsTitle   string
	MetadataTitle       string
	DesktopEntriesTitle string
	HistoryTitle        string
	DashboardTitle      string
	ConfigTitle         string
	CreditsTitle        string
	NothingToDisplay    string

	NoSnaps          string
	NoSnap           string
	NoLocales        string
	NoDesktopEntries string

	TotalSnapsLabel       string
	TranslatedLabel       string
	PartialLabel          string
	UntranslatedLabel     string
	ReferenceLocalesLabel string
	SnapdVersionLabel     string
	LastRefreshLabel      string
	SystemLocaleLabel     string
	ActiveFilterLabel     string

	PressEnterToReturn string

	No  string
	Yes string

	LcNextScreenMode string
	LcPrevScreenMode string
	FilterPrompt     string

	FocusStatus  string
	FocusSnaps   string
	FocusLocales string
}
