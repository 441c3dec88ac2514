package gui

import (
	"github.com/jesseduffield/gocui"

	"github.com/yeager/snap-l10n/pkg/gui/panels"
	"github.com/yeager/snap-l10n/pkg/gui/types"
	"github.com/yeager/snap-l10n/pkg/utils"
)

func (gui *Gui) getMenuPanel() *panels.SideListPanel[*types.MenuItem] {
	return &panels.SideListPanel[*types.MenuItem]{
		ListPanel: panels.ListPanel[*types.MenuItem]{
			List: panels.NewFilteredList[*types.MenuItem](),
			View: gui.Views.Menu,
		},
		NoItemsMessage: "",
		Gui:            gui.intoInterface(),
		OnClick:        gui.onMenuPress,
		Sort:           nil,
		GetTableCells: func(menuItem *types.MenuItem) []string {
			if menuItem.LabelColumns != nil {
				return menuItem.LabelColumns
			}

			label := menuItem.Label
			if menuItem.OpensMenu {
				label = utils.OpensMenuStyle(label)
			}

			return []string{label}
		},
		OnRerender: func() error {
			return gui.resizeMenu()
		},
		// the menu is itself a popup, so there's no filter prompt to put anywhere
		DisableFilter: true,
	}
}

func (gui *Gui) onMenuPress(menuItem *types.MenuItem) error {
	gui.Views.Menu.Visible = false
	if err := gui.returnFocus(); err != nil {
		return err
	}

	if menuItem.OnPress != nil {
		return menuItem.OnPress()
	}

	return nil
}

func (gui *Gui) handleMenuPress() error {
	selectedMenuItem, err := gui.Panels.Menu.GetSelectedItem()
	if err != nil {
		return nil
	}

	return gui.onMenuPress(selectedMenuItem)
}

type CreateMenuOptions struct {
	Title      string
	Items      []*types.MenuItem
	HideCancel bool
}

func (gui *Gui) Menu(opts CreateMenuOptions) error {
	if !opts.HideCancel {
		// this is mutative but I'm okay with that for now
		opts.Items = append(opts.Items, &types.MenuItem{
			LabelColumns: []string{gui.Tr.Cancel},
			OnPress: func() error {
				return nil
			},
		})
	}

	gui.Panels.Menu.SetItems(opts.Items)
	gui.Panels.Menu.SetSelectedLineIdx(0)

	if err := gui.Panels.Menu.RerenderList(); err != nil {
		return err
	}

	gui.Views.Menu.Title = opts.Title
	gui.Views.Menu.Visible = true

	return gui.switchFocus(gui.Views.Menu)
}

func (gui *Gui) resizeMenu() error {
	itemCount := gui.Panels.Menu.List.Len()
	// the +2 is for the border
	menuViewHeight := itemCount + 2
	width, height := gui.g.Size()
	menuViewWidth := width / 2
	x0 := width/2 - menuViewWidth/2
	y0 := height/2 - menuViewHeight/2
	_, err := gui.g.SetView("menu", x0, y0, x0+menuViewWidth, y0+menuViewHeight, 0)
	return err
}

func (gui *Gui) handleMenuClose(g *gocui.Gui, v *gocui.View) error {
	gui.Views.Menu.Visible = false
	return gui.returnFocus()
}

func (gui *Gui) renderMenuOptions() error {
	optionsMap := map[string]string{
		"esc/q": gui.Tr.Close,
		"↑ ↓":   gui.Tr.Navigate,
		"enter": gui.Tr.Execute,
	}
	return gui.renderOptionsMap(optionsMap)
}
