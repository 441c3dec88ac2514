package app

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/yeager/snap-l10n/pkg/commands"
	"github.com/yeager/snap-l10n/pkg/config"
	"github.com/yeager/snap-l10n/pkg/gui"
	"github.com/yeager/snap-l10n/pkg/i18n"
	"github.com/yeager/snap-l10n/pkg/log"
)

// App struct
type App struct {
	Config       *config.AppConfig
	Log          *logrus.Entry
	OSCommand    *commands.OSCommand
	SnapdCommand *commands.SnapdCommand
	Gui          *gui.Gui
	Tr           *i18n.TranslationSet
	ErrorChan    chan error
}

// NewApp bootstrap a new application
func NewApp(config *config.AppConfig) (*App, error) {
	app := &App{
		Config:    config,
		ErrorChan: make(chan error),
	}
	var err error
	app.Log = log.NewLogger(config)
	app.Tr, err = i18n.NewTranslationSetFromConfig(app.Log, config.UserConfig.Gui.Language)
	if err != nil {
		return app, err
	}
	app.OSCommand = commands.NewOSCommand(app.Log, config)

	app.SnapdCommand, err = commands.NewSnapdCommand(app.Log, app.OSCommand, app.Tr, app.Config)
	if err != nil {
		return app, err
	}
	app.Gui, err = gui.NewGui(app.Log, app.SnapdCommand, app.OSCommand, app.Tr, config, app.ErrorChan)
	if err != nil {
		return app, err
	}
	return app, nil
}

func (app *App) Run() error {
	return app.Gui.RunWithSubprocesses()
}

// ExportReport fetches and scans every snap once and writes a report,
// without starting the gui. This is what --export runs.
func (app *App) ExportReport(ctx context.Context, formatValue string, dir string) (string, error) {
	format, err := commands.ParseReportFormat(formatValue)
	if err != nil {
		return "", err
	}

	snaps, err := app.SnapdCommand.GetSnaps(ctx, nil)
	if err != nil {
		return "", err
	}

	app.SnapdCommand.ScanAll(ctx, snaps)

	return app.SnapdCommand.WriteReport(app.SnapdCommand.BuildReport(snaps), format, dir)
}

type errorMapping struct {
	originalError string
	newError      string
}

// KnownError takes an error and tells us whether it's an error that we know about where we can print a nicely formatted version of it rather than panicking with a stack trace
func (app *App) KnownError(err error) (string, bool) {
	if commands.HasErrorCode(err, commands.DaemonUnavailable) {
		return app.Tr.ConnectionFailed, true
	}

	if commands.HasErrorCode(err, commands.MalformedResponse) {
		return app.Tr.MalformedSnapdResponse, true
	}

	errorMessage := err.Error()

	mappings := []errorMapping{
		{
			originalError: "permission denied",
			newError:      app.Tr.CannotAccessSnapdSocketError,
		},
	}

	for _, mapping := range mappings {
		if strings.Contains(errorMessage, mapping.originalError) {
			return mapping.newError, true
		}
	}

	return "", false
}
