package commands

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/yeager/snap-l10n/pkg/config"
	"github.com/yeager/snap-l10n/pkg/i18n"
)

// This file exports dummy constructors for use by tests in other packages

// NewDummyOSCommand creates a new dummy OSCommand for testing
func NewDummyOSCommand() *OSCommand {
	return NewOSCommand(NewDummyLog(), NewDummyAppConfig())
}

// NewDummyAppConfig creates a new dummy AppConfig for testing
func NewDummyAppConfig() *config.AppConfig {
	userConfig := config.GetDefaultConfig()
	return &config.AppConfig{
		Name:        "snap-l10n",
		Version:     "unversioned",
		Commit:      "",
		BuildDate:   "",
		Debug:       false,
		BuildSource: "",
		UserConfig:  &userConfig,
	}
}

// NewDummyLog creates a new dummy Log for testing
func NewDummyLog() *logrus.Entry {
	log := logrus.New()
	log.Out = io.Discard
	return log.WithField("test", "test")
}

// NewDummySnapdCommand creates a new dummy SnapdCommand for testing
func NewDummySnapdCommand() *SnapdCommand {
	return NewDummySnapdCommandWithClient(&MockSnapdClient{})
}

// NewDummySnapdCommandWithClient creates a dummy SnapdCommand talking to the
// given client
func NewDummySnapdCommandWithClient(client SnapdClient) *SnapdCommand {
	appConfig := NewDummyAppConfig()
	log := NewDummyLog()
	return &SnapdCommand{
		Log:        log,
		OSCommand:  NewDummyOSCommand(),
		Tr:         i18n.NewTranslationSet(log, "en"),
		Config:     appConfig,
		Client:     client,
		Scanner:    NewScanner(log, appConfig.UserConfig.Locales.Reference, false),
		SocketPath: "/tmp/snapd-test.socket",
		MountDir:   "/snap",
	}
}
