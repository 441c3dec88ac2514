package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/go-errors/errors"
	"github.com/integrii/flaggy"
	"github.com/jesseduffield/yaml"

	"github.com/yeager/snap-l10n/pkg/app"
	"github.com/yeager/snap-l10n/pkg/config"
)

var (
	commit      string
	version     = "unversioned"
	date        string
	buildSource = "unknown"

	configFlag    = false
	debuggingFlag = false
	localesFlag   = ""
	socketFlag    = ""
	exportFlag    = ""
	outputFlag    = ""
)

func main() {
	info := fmt.Sprintf(
		"%s\nDate: %s\nBuildSource: %s\nCommit: %s\nOS: %s\nArch: %s",
		version,
		date,
		buildSource,
		commit,
		runtime.GOOS,
		runtime.GOARCH,
	)

	flaggy.SetName("snap-l10n")
	flaggy.SetDescription("Translation coverage of your installed snaps")
	flaggy.DefaultParser.AdditionalHelpPrepend = "https://github.com/yeager/snap-l10n"

	flaggy.Bool(&configFlag, "c", "config", "Print the current default config")
	flaggy.Bool(&debuggingFlag, "d", "debug", "a boolean")
	flaggy.String(&localesFlag, "l", "locales", "Comma-separated reference locales, overriding the config")
	flaggy.String(&socketFlag, "s", "socket", "Path to the snapd unix socket")
	flaggy.String(&exportFlag, "e", "export", "Write a coverage report in the given format (csv, json or yaml) and exit")
	flaggy.String(&outputFlag, "o", "output", "Directory to write the exported report to")
	flaggy.SetVersion(info)

	flaggy.Parse()

	if configFlag {
		var buf bytes.Buffer
		encoder := yaml.NewEncoder(&buf)
		err := encoder.Encode(config.GetDefaultConfig())
		if err != nil {
			log.Fatal(err.Error())
		}
		fmt.Printf("%v\n", buf.String())
		os.Exit(0)
	}

	var referenceLocales []string
	for _, locale := range strings.Split(localesFlag, ",") {
		if trimmed := strings.TrimSpace(locale); trimmed != "" {
			referenceLocales = append(referenceLocales, trimmed)
		}
	}

	appConfig, err := config.NewAppConfig("snap-l10n", version, commit, date, buildSource, debuggingFlag, referenceLocales, socketFlag)
	if err != nil {
		log.Fatal(err.Error())
	}

	app, err := app.NewApp(appConfig)
	if err == nil {
		if exportFlag != "" {
			var path string
			path, err = app.ExportReport(context.Background(), exportFlag, outputFlag)
			if err == nil {
				fmt.Println(path)
				os.Exit(0)
			}
		} else {
			err = app.Run()
		}
	}

	if err != nil {
		if errMessage, known := app.KnownError(err); known {
			log.Println(errMessage)
			os.Exit(1)
		}

		newErr := errors.Wrap(err, 0)
		stackTrace := newErr.ErrorStack()
		app.Log.Error(stackTrace)

		log.Fatal(fmt.Sprintf("%s\n\n%s", app.Tr.ErrorOccurred, stackTrace))
	}
}
