package app

import (
	"fmt"
	"testing"

	"github.com/go-errors/errors"
	"github.com/stretchr/testify/assert"
	"golang.org/x/xerrors"

	"github.com/yeager/snap-l10n/pkg/commands"
	"github.com/yeager/snap-l10n/pkg/i18n"
)

func newTestApp() *App {
	return &App{
		Tr: i18n.NewTranslationSet(commands.NewDummyLog(), "en"),
	}
}

func TestKnownError(t *testing.T) {
	app := newTestApp()

	tests := []struct {
		name      string
		err       error
		wantKnown bool
		want      string
	}{
		{
			name: "daemon unavailable",
			err: commands.ComplexError{
				Code:    commands.DaemonUnavailable,
				Message: "dial unix /run/snapd.socket: connect: no such file or directory",
			},
			wantKnown: true,
			want:      app.Tr.ConnectionFailed,
		},
		{
			name: "malformed response",
			err: commands.ComplexError{
				Code:    commands.MalformedResponse,
				Message: "invalid character 'x' looking for beginning of value",
			},
			wantKnown: true,
			want:      app.Tr.MalformedSnapdResponse,
		},
		{
			name:      "socket permission denied",
			err:       errors.New("dial unix /run/snapd.socket: connect: permission denied"),
			wantKnown: true,
			want:      app.Tr.CannotAccessSnapdSocketError,
		},
		{
			name:      "unrelated error",
			err:       errors.New("something exploded"),
			wantKnown: false,
			want:      "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			message, known := app.KnownError(test.err)
			assert.Equal(t, test.wantKnown, known)
			assert.Equal(t, test.want, message)
		})
	}
}

func TestKnownErrorSeesThroughWrapping(t *testing.T) {
	app := newTestApp()

	err := fmt.Errorf("listing snaps: %w", commands.ComplexError{
		Code:    commands.DaemonUnavailable,
		Message: "connection refused",
	})

	message, known := app.KnownError(err)
	assert.True(t, known)
	assert.Equal(t, app.Tr.ConnectionFailed, message)

	// xerrors.As is what does the unwrapping, so make sure the chain is intact
	var complexErr commands.ComplexError
	assert.True(t, xerrors.As(err, &complexErr))
}
