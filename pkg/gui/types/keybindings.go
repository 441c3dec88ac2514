package types

import "github.com/yeager/snap-l10n/pkg/config"

// KeybindingsOpts carries what the binding builders need: the user's
// keybinding config plus the label parser.
type KeybindingsOpts struct {
	// GetKey turns a config label like "q" or "<c-c>" into the rune or
	// gocui.Key that gocui expects. nil means the binding is disabled.
	GetKey func(string) interface{}

	Config config.KeybindingConfig
}
