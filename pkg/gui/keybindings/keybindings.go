package keybindings

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jesseduffield/gocui"
	"github.com/yeager/snap-l10n/pkg/config"
)

// GetKey turns a keybinding label from the user's config into the value gocui
// expects: a rune for a single character, a gocui.Key for a special key like
// "<c-c>" or "<f1>". Labels are validated when the config is loaded, so a nil
// result here means a disabled binding, not an error.
func GetKey(key string) interface{} {
	runeCount := utf8.RuneCountInString(key)

	switch {
	case key == "<disabled>":
		return nil
	case runeCount > 1:
		binding, ok := config.KeyByLabel[strings.ToLower(key)]
		if !ok {
			return nil
		}
		return binding
	case runeCount == 1:
		return []rune(key)[0]
	}

	return nil
}

// LabelFromKey is the reverse of GetKey. It's used when rendering binding
// descriptions in the options menu and the cheatsheet.
func LabelFromKey(key interface{}) string {
	if key == nil {
		return ""
	}

	keyInt := 0

	switch key := key.(type) {
	case rune:
		keyInt = int(key)
	case gocui.Key:
		if label, ok := config.LabelByKey[key]; ok {
			return label
		}
		keyInt = int(key)
	}

	return fmt.Sprintf("%c", keyInt)
}
