package app

import (
	"errors"
	"image/color"

	"tinygo.org/x/tinyfont"

	"ember/engine/scene"
)

// MenuItem is one selectable entry of a menu.
type MenuItem struct {
	Label  string
	Action func() error
}

// MenuHandler is a vertical item menu drawn over the scene while a menu
// state is active. Navigation is driven by whatever keys the application
// binds to MoveUp/MoveDown/Activate.
type MenuHandler struct {
	Title string

	items    []MenuItem
	selected int
}

// NewMenuHandler builds a menu from its items.
func NewMenuHandler(title string, items ...MenuItem) *MenuHandler {
	return &MenuHandler{Title: title, items: items}
}

// MoveUp moves the selection up, stopping at the first item.
func (m *MenuHandler) MoveUp() {
	if m.selected > 0 {
		m.selected--
	}
}

// MoveDown moves the selection down, stopping at the last item.
func (m *MenuHandler) MoveDown() {
	if m.selected < len(m.items)-1 {
		m.selected++
	}
}

// Selected returns the index of the highlighted item.
func (m *MenuHandler) Selected() int { return m.selected }

// Activate runs the highlighted item's action.
func (m *MenuHandler) Activate() error {
	if len(m.items) == 0 {
		return nil
	}
	it := m.items[m.selected]
	if it.Action == nil {
		return nil
	}
	return it.Action()
}

// Draw renders the menu onto the target.
func (m *MenuHandler) Draw(t *scene.Target) {
	white := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	yellow := color.RGBA{R: 0xFF, G: 0xFF, A: 0xFF}

	y := int16(12)
	tinyfont.WriteLine(t, &tinyfont.Picopixel, 8, y, m.Title, white)
	y += 12
	for i, it := range m.items {
		c := white
		label := "  " + it.Label
		if i == m.selected {
			c = yellow
			label = "> " + it.Label
		}
		tinyfont.WriteLine(t, &tinyfont.Picopixel, 8, y, label, c)
		y += 8
	}
}

// SetMenuHandler installs the menu drawn during the main and game menu
// states. Menus must be enabled in the settings.
func (a *App) SetMenuHandler(m *MenuHandler) error {
	if !a.cfg.Menus {
		return errors.New("app: menus are not enabled")
	}
	a.menus = m
	return nil
}

// MenuHandler returns the installed menu, or nil.
func (a *App) MenuHandler() *MenuHandler { return a.menus }
