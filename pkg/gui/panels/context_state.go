package panels

import (
	"github.com/samber/lo"
	"github.com/yeager/snap-l10n/pkg/tasks"
)

// A 'context' is the pairing of a selected item with the tab currently shown
// in the main panel. Selecting a different item, or switching tab for the
// same item, produces a new context, and a new context means we render new
// content to the main panel.
type ContextState[T any] struct {
	// index of the currently selected tab in the main view.
	mainTabIdx int
	// this function returns the tabs that we can display for an item (the tabs
	// are shown on the main view)
	GetMainTabs func() []MainTab[T]
	// This tells us whether we need to re-render to the main panel for a given
	// item. It should include the item's ID, plus anything else that should
	// invalidate the cache (e.g. the snap's revision).
	GetItemContextCacheKey func(item T) string
}

type MainTab[T any] struct {
	// key used as part of the context cache key
	Key string
	// title of the tab, rendered in the main view
	Title string
	// function to render the content of the tab
	Render func(item T) tasks.TaskFunc
}

func (self *ContextState[T]) GetMainTabTitles() []string {
	return lo.Map(self.GetMainTabs(), func(tab MainTab[T], _ int) string {
		return tab.Title
	})
}

func (self *ContextState[T]) GetCurrentContextKey(item T) string {
	return self.GetItemContextCacheKey(item) + "-" + self.GetCurrentMainTab().Key
}

func (self *ContextState[T]) GetCurrentMainTab() MainTab[T] {
	return self.GetMainTabs()[self.mainTabIdx]
}

func (self *ContextState[T]) HandleNextMainTab() {
	tabs := self.GetMainTabs()

	if len(tabs) == 0 {
		return
	}

	self.mainTabIdx = (self.mainTabIdx + 1) % len(tabs)
}

func (self *ContextState[T]) HandlePrevMainTab() {
	tabs := self.GetMainTabs()

	if len(tabs) == 0 {
		return
	}

	self.mainTabIdx = (self.mainTabIdx - 1 + len(tabs)) % len(tabs)
}

func (self *ContextState[T]) SetMainTabIndex(index int) {
	self.mainTabIdx = index
}
