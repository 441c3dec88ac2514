package i18n

func englishSet() TranslationSet {
	return TranslationSet{
		ErrorOccurred:                "An error occurred! Please create an issue at https://github.com/yeager/snap-l10n/issues",
		ConnectionFailed:             "connection to snapd failed. Check that the snapd service is running",
		CannotAccessSnapdSocketError: "Can't access snapd socket at: unix:///run/snapd.socket\nRun snap-l10n as root or check that snapd is installed and running",
		MalformedSnapdResponse:       "snapd answered with something we couldn't make sense of. You may be running an unsupported snapd version",
		CannotKillChildError:         "Waited three seconds for child process to stop. There may be an orphan process that continues to run on your system.",

		NoViewMachingNewLineFocusedSwitchStatement: "No view matching newLineFocused switch statement",

		Donate:  "Donate",
		Confirm: "Confirm",

		Return:            "return",
		FocusMain:         "focus main panel",
		LcFilter:          "filter list",
		LcRefresh:         "refresh snap list from snapd",
		LcRescan:          "re-scan this snap's translations",
		CycleStatusFilter: "cycle status filter (all/untranslated/partial)",
		OpenStorePage:     "open store page in browser",
		OpenDesktopFile:   "open desktop file",
		FilterMissing:     "show snaps missing this locale",
		ExportReport:      "export coverage report",
		Navigate:          "navigate",
		Execute:           "execute",
		Close:             "close",
		Quit:              "quit",
		Menu:              "menu",
		MenuTitle:         "Menu",
		Scroll:            "scroll",
		OpenConfig:        "open snap-l10n config",
		EditConfig:        "edit snap-l10n config",
		Cancel:            "cancel",
		PreviousContext:   "previous tab",
		NextContext:       "next tab",

		EditReferenceLocales:   "edit reference locales",
		ReferenceLocalesPrompt: "Reference locales (comma-separated)",
		RunningSubprocess:      "running subprocess",

		RefreshingStatus: "refreshing snap list",
		ScanningStatus:   "scanning translations",
		ExportingStatus:  "exporting report",

		FullyTranslated:     "translated",
		PartiallyTranslated: "partial",
		Untranslated:        "untranslated",

		StatusFilterAll:          "all snaps",
		StatusFilterUntranslated: "untranslated snaps",
		StatusFilterPartial:      "partially translated snaps",

		ExportTitle:     "Export:",
		ExportCSV:       "export as CSV",
		ExportJSON:      "export as JSON",
		ExportYAML:      "export as YAML",
		ReportWrittenTo: "Report written to",

		GlobalTitle:         "Global",
		MainTitle:           "Main",
		StatusTitle:         "Status",
		SnapsTitle:          "Snaps",
		LocalesTitle:        "Locales",
		ErrorTitle:          "Error",
		TranslationsTitle:   "Translations",
		MetadataTitle:       "Metadata",
		DesktopEntriesTitle: "Desktop Entries",
		HistoryTitle:        "History",
		DashboardTitle:      "Dashboard",
		ConfigTitle:         "Config",
		CreditsTitle:        "About",
		NothingToDisplay:    "Nothing to display",

		NoSnaps:          "No snaps",
		NoSnap:           "No snap",
		NoLocales:        "No locales",
		NoDesktopEntries: "No desktop entries",

		TotalSnapsLabel:       "Installed snaps",
		TranslatedLabel:       "Fully translated",
		PartialLabel:          "Partially translated",
		UntranslatedLabel:     "Untranslated",
		ReferenceLocalesLabel: "Reference locales",
		SnapdVersionLabel:     "snapd version",
		LastRefreshLabel:      "Last refresh",
		SystemLocaleLabel:     "System locale",
		ActiveFilterLabel:     "Active filter",

		ConfirmQuit:        "Are you sure you want to quit?",
		NotEnoughSpace:     "Not enough space to render panels",
		PressEnterToReturn: "Press enter to return to snap-l10n (this prompt can be disabled in your config by setting `gui.returnImmediately: true`)",

		No:  "no",
		Yes: "yes",

		LcNextScreenMode: "next screen mode (normal/half/fullscreen)",
		LcPrevScreenMode: "prev screen mode",
		FilterPrompt:     "filter",

		FocusStatus:  "focus status panel",
		FocusSnaps:   "focus snaps panel",
		FocusLocales: "focus locales panel",
	}
}
