package i18n

func swedishSet() TranslationSet {
	return TranslationSet{
		ErrorOccurred:                "Ett fel har inträffat! Skapa gärna en issue på https://github.com/yeager/snap-l10n/issues",
		ConnectionFailed:             "anslutningen till snapd misslyckades. Kontrollera att snapd-tjänsten kör",
		CannotAccessSnapdSocketError: "Kan inte komma åt snapd-uttaget på: unix:///run/snapd.socket\nKör snap-l10n som root eller kontrollera att snapd är installerat och kör",
		MalformedSnapdResponse:       "snapd svarade med något vi inte kunde tolka. Du kanske kör en snapd-version som inte stöds",
		CannotKillChildError:         "Väntade tre sekunder på att barnprocessen skulle avslutas. En övergiven process kan fortfarande köra på ditt system.",

		Donate:  "Donera",
		Confirm: "Bekräfta",

		Return:            "tillbaka",
		FocusMain:         "fokusera huvudpanelen",
		LcFilter:          "filtrera listan",
		LcRefresh:         "uppdatera paketlistan från snapd",
		LcRescan:          "sök igenom paketets översättningar igen",
		CycleStatusFilter: "växla statusfilter (alla/oöversatta/delvis)",
		OpenStorePage:     "öppna butikssidan i webbläsaren",
		OpenDesktopFile:   "öppna .desktop-filen",
		FilterMissing:     "visa paket som saknar språket",
		ExportReport:      "exportera täckningsrapport",
		Navigate:          "navigera",
		Execute:           "kör",
		Close:             "stäng",
		Quit:              "avsluta",
		Menu:              "meny",
		MenuTitle:         "Meny",
		Scroll:            "rulla",
		OpenConfig:        "öppna snap-l10n-konfigurationen",
		EditConfig:        "redigera snap-l10n-konfigurationen",
		Cancel:            "avbryt",
		PreviousContext:   "föregående flik",
		NextContext:       "nästa flik",

		EditReferenceLocales:   "redigera referensspråk",
		ReferenceLocalesPrompt: "Referensspråk (kommaseparerade)",
		RunningSubprocess:      "kör underprocess",

		RefreshingStatus: "uppdaterar paketlistan",
		ScanningStatus:   "söker igenom översättningar",
		ExportingStatus:  "exporterar rapport",

		FullyTranslated:     "översatt",
		PartiallyTranslated: "delvis",
		Untranslated:        "oöversatt",

		StatusFilterAll:          "alla paket",
		StatusFilterUntranslated: "oöversatta paket",
		StatusFilterPartial:      "delvis översatta paket",

		ExportTitle:     "Exportera:",
		ExportCSV:       "exportera som CSV",
		ExportJSON:      "exportera som JSON",
		ExportYAML:      "exportera som YAML",
		ReportWrittenTo: "Rapporten skrevs till",

		GlobalTitle:         "Globalt",
		MainTitle:           "Huvudpanel",
		StatusTitle:         "Status",
		SnapsTitle:          "Snap-paket",
		LocalesTitle:        "Språk",
		ErrorTitle:          "Fel",
		TranslationsTitle:   "Översättningar",
		MetadataTitle:       "Metadata",
		DesktopEntriesTitle: "Skrivbordsfiler",
		HistoryTitle:        "Historik",
		DashboardTitle:      "Översikt",
		ConfigTitle:         "Konfiguration",
		CreditsTitle:        "Om",
		NothingToDisplay:    "Inget att visa",

		NoSnaps:          "Inga snap-paket",
		NoSnap:           "Inget snap-paket",
		NoLocales:        "Inga språk",
		NoDesktopEntries: "Inga skrivbordsfiler",

		TotalSnapsLabel:       "Installerade snap-paket",
		TranslatedLabel:       "Helt översatta",
		PartialLabel:          "Delvis översatta",
		UntranslatedLabel:     "Oöversatta",
		ReferenceLocalesLabel: "Referensspråk",
		SnapdVersionLabel:     "snapd-version",
		LastRefreshLabel:      "Senaste uppdatering",
		SystemLocaleLabel:     "Systemspråk",
		ActiveFilterLabel:     "Aktivt filter",

		ConfirmQuit:        "Är du säker på att du vill avsluta?",
		NotEnoughSpace:     "Inte tillräckligt med utrymme för att rita panelerna",
		PressEnterToReturn: "Tryck på enter för att återvända till snap-l10n (du kan stänga av det här meddelandet genom att sätta `gui.returnImmediately: true` i din konfiguration)",

		No:  "nej",
		Yes: "ja",

		LcNextScreenMode: "nästa skärmläge (normal/halv/helskärm)",
		LcPrevScreenMode: "föregående skärmläge",
		FilterPrompt:     "filtrera",

		FocusStatus:  "fokusera statuspanelen",
		FocusSnaps:   "fokusera paketpanelen",
		FocusLocales: "fokusera språkpanelen",
	}
}
