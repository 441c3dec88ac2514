package gui

import (
	"github.com/jesseduffield/gocui"
	"github.com/samber/lo"

	"github.com/yeager/snap-l10n/pkg/gui/types"
)

func (gui *Gui) getApplicableBindings(v *gocui.View) []*Binding {
	if v == nil {
		return nil
	}

	return lo.Filter(gui.GetInitialKeybindings(), func(binding *Binding, _ int) bool {
		if binding.GetKey() == "" || binding.Description == "" {
			return false
		}

		return binding.ViewName == v.Name() || binding.ViewName == ""
	})
}

func (gui *Gui) handleCreateOptionsMenu(g *gocui.Gui, v *gocui.View) error {
	if gui.isPopupPanel(v.Name()) {
		return nil
	}

	bindings := gui.getApplicableBindings(v)

	menuItems := lo.Map(bindings, func(binding *Binding, _ int) *types.MenuItem {
		return &types.MenuItem{
			LabelColumns: []string{binding.GetKey(), binding.Description},
			OnPress: func() error {
				if binding.Handler == nil {
					return nil
				}

				return binding.Handler(g, v)
			},
		}
	})

	return gui.Menu(CreateMenuOptions{
		Title: gui.Tr.MenuTitle,
		Items: menuItems,
	})
}
