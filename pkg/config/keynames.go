package config

import (
	"strings"
	"unicode/utf8"

	"github.com/jesseduffield/gocui"
)

// LabelByKey maps gocui key constants to the labels used in the user's config
// and in the keybindings cheatsheet. Some control keys share a code with a
// more familiar name, in which case only the familiar name appears here:
// ctrl+h is <backspace>, ctrl+i is <tab>, ctrl+m is <enter> and ctrl+[ is
// <esc>.
var LabelByKey = map[gocui.Key]string{
	gocui.KeyF1:         "<f1>",
	gocui.KeyF2:         "<f2>",
	gocui.KeyF3:         "<f3>",
	gocui.KeyF4:         "<f4>",
	gocui.KeyF5:         "<f5>",
	gocui.KeyF6:         "<f6>",
	gocui.KeyF7:         "<f7>",
	gocui.KeyF8:         "<f8>",
	gocui.KeyF9:         "<f9>",
	gocui.KeyF10:        "<f10>",
	gocui.KeyF11:        "<f11>",
	gocui.KeyF12:        "<f12>",
	gocui.KeyInsert:     "<insert>",
	gocui.KeyDelete:     "<delete>",
	gocui.KeyHome:       "<home>",
	gocui.KeyEnd:        "<end>",
	gocui.KeyPgup:       "<pgup>",
	gocui.KeyPgdn:       "<pgdown>",
	gocui.KeyArrowUp:    "<up>",
	gocui.KeyArrowDown:  "<down>",
	gocui.KeyArrowLeft:  "<left>",
	gocui.KeyArrowRight: "<right>",
	gocui.KeyTab:        "<tab>",
	gocui.KeyBacktab:    "<backtab>",
	gocui.KeyEnter:      "<enter>",
	gocui.KeyEsc:        "<esc>",
	gocui.KeyBackspace:  "<backspace>",
	gocui.KeyCtrlSpace:  "<c-space>",
	gocui.KeyCtrlA:      "<c-a>",
	gocui.KeyCtrlB:      "<c-b>",
	gocui.KeyCtrlC:      "<c-c>",
	gocui.KeyCtrlD:      "<c-d>",
	gocui.KeyCtrlE:      "<c-e>",
	gocui.KeyCtrlF:      "<c-f>",
	gocui.KeyCtrlG:      "<c-g>",
	gocui.KeyCtrlJ:      "<c-j>",
	gocui.KeyCtrlK:      "<c-k>",
	gocui.KeyCtrlL:      "<c-l>",
	gocui.KeyCtrlN:      "<c-n>",
	gocui.KeyCtrlO:      "<c-o>",
	gocui.KeyCtrlP:      "<c-p>",
	gocui.KeyCtrlQ:      "<c-q>",
	gocui.KeyCtrlR:      "<c-r>",
	gocui.KeyCtrlS:      "<c-s>",
	gocui.KeyCtrlT:      "<c-t>",
	gocui.KeyCtrlU:      "<c-u>",
	gocui.KeyCtrlV:      "<c-v>",
	gocui.KeyCtrlW:      "<c-w>",
	gocui.KeyCtrlX:      "<c-x>",
	gocui.KeyCtrlY:      "<c-y>",
	gocui.KeyCtrlZ:      "<c-z>",
	gocui.KeyCtrl4:      "<c-4>",
	gocui.KeyCtrl5:      "<c-5>",
	gocui.KeyCtrl6:      "<c-6>",
	gocui.KeyCtrl8:      "<c-8>",
}

// KeyByLabel is the reverse of LabelByKey
var KeyByLabel = makeKeyByLabel()

func makeKeyByLabel() map[string]gocui.Key {
	m := make(map[string]gocui.Key, len(LabelByKey))
	for key, label := range LabelByKey {
		m[label] = key
	}
	return m
}

// IsValidKeybindingKey tells us whether a key string from the user's config
// can actually be bound to something. Any single character works, as does any
// label in KeyByLabel and the special value <disabled>.
func IsValidKeybindingKey(key string) bool {
	if utf8.RuneCountInString(key) == 1 {
		return true
	}

	label := strings.ToLower(key)
	if label == "<disabled>" {
		return true
	}

	_, ok := KeyByLabel[label]
	return ok
}
