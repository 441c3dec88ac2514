// This "script" generates a file called Keybindings_{{.LANG}}.md
// in current working directory.
//
// The content of this generated file is a keybindings cheatsheet.
//
// To generate cheatsheet in english run:
//   LANG=en go run scripts/cheatsheet/main.go generate

package cheatsheet

import (
	"fmt"
	"log"
	"os"

	"github.com/yeager/snap-l10n/pkg/commands"
	"github.com/yeager/snap-l10n/pkg/gui"
	"github.com/yeager/snap-l10n/pkg/i18n"
)

const (
	generateCheatsheetCmd = "go run scripts/cheatsheet/main.go generate"
)

type bindingSection struct {
	title    string
	bindings []*gui.Binding
}

func Generate() {
	generateAtDir(GetKeybindingsDir())
}

func generateAtDir(dir string) {
	for lang := range i18n.GetTranslationSets() {
		os.Setenv("LC_ALL", lang)
		mGui := newFakeGui()

		file, err := os.Create(dir + "/Keybindings_" + lang + ".md")
		if err != nil {
			panic(err)
		}

		bindingSections := getBindingSections(mGui)
		content := formatSections(mGui, bindingSections)
		content = fmt.Sprintf(
			"_This file is auto-generated. To update, make the changes in the "+
				"pkg/i18n directory and then run `%s` from the project root._\n\n%s",
			generateCheatsheetCmd,
			content,
		)
		writeString(file, content)
	}
}

// newFakeGui builds a gui without dialing snapd, which is all we need to
// enumerate keybindings
func newFakeGui() *gui.Gui {
	snapdCommand := commands.NewDummySnapdCommand()
	log := commands.NewDummyLog()
	tr := i18n.NewTranslationSet(log, "en")
	config := commands.NewDummyAppConfig()

	mGui, err := gui.NewGui(log, snapdCommand, commands.NewDummyOSCommand(), tr, config, make(chan error))
	if err != nil {
		panic(err)
	}

	return mGui
}

func writeString(file *os.File, str string) {
	_, err := file.WriteString(str)
	if err != nil {
		log.Fatal(err)
	}
}

func formatTitle(title string) string {
	return fmt.Sprintf("\n## %s\n\n", title)
}

func formatBinding(binding *gui.Binding) string {
	return fmt.Sprintf("  <kbd>%s</kbd>: %s\n", binding.GetKey(), binding.Description)
}

func getBindingSections(mGui *gui.Gui) []*bindingSection {
	bindingSections := []*bindingSection{}

	for _, binding := range mGui.GetInitialKeybindings() {
		if binding.Description == "" {
			continue
		}

		viewName := binding.ViewName
		if viewName == "" {
			viewName = "global"
		}

		titleMap := map[string]string{
			"global":  mGui.Tr.GlobalTitle,
			"main":    mGui.Tr.MainTitle,
			"status":  mGui.Tr.StatusTitle,
			"snaps":   mGui.Tr.SnapsTitle,
			"locales": mGui.Tr.LocalesTitle,
			"menu":    mGui.Tr.MenuTitle,
		}

		bindingSections = addBinding(titleMap[viewName], bindingSections, binding)
	}

	return bindingSections
}

func addBinding(title string, bindingSections []*bindingSection, binding *gui.Binding) []*bindingSection {
	if binding.Description == "" {
		return bindingSections
	}

	for _, section := range bindingSections {
		if title == section.title {
			section.bindings = append(section.bindings, binding)
			return bindingSections
		}
	}

	section := &bindingSection{
		title:    title,
		bindings: []*gui.Binding{binding},
	}

	return append(bindingSections, section)
}

func formatSections(mGui *gui.Gui, bindingSections []*bindingSection) string {
	content := fmt.Sprintf("# Snap-l10n %s\n", mGui.Tr.Menu)

	for _, section := range bindingSections {
		content += formatTitle(section.title)
		content += "<pre>\n"
		for _, binding := range section.bindings {
			content += formatBinding(binding)
		}
		content += "</pre>\n"
	}

	return content
}
