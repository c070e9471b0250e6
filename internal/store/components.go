package store

import (
	"github.com/adamavenir/embedg/internal/types"
)

func (s *Store) updateRow(op string, i int, fn func(r *types.ComponentRow) bool) {
	s.update(op, func(m *types.Message) bool {
		if !inRange(m.Components, i) {
			return false
		}
		row := m.Components[i]
		if !fn(&row) {
			return false
		}
		m.Components = replaceItem(m.Components, i, row)
		return true
	})
}

// updateButton edits a copy of component j of row i when it is a button.
func (s *Store) updateButton(op string, i, j int, fn func(b *types.Button) bool) {
	s.updateRow(op, i, func(r *types.ComponentRow) bool {
		if !inRange(r.Components, j) {
			return false
		}
		button, ok := r.Components[j].(*types.Button)
		if !ok {
			return false
		}
		clone := *button
		if !fn(&clone) {
			return false
		}
		r.Components = replaceItem(r.Components, j, types.Component(&clone))
		return true
	})
}

// updateSelectMenu edits a copy of component j of row i when it is a select menu.
func (s *Store) updateSelectMenu(op string, i, j int, fn func(m *types.SelectMenu) bool) {
	s.updateRow(op, i, func(r *types.ComponentRow) bool {
		if !inRange(r.Components, j) {
			return false
		}
		menu, ok := r.Components[j].(*types.SelectMenu)
		if !ok {
			return false
		}
		clone := *menu
		if !fn(&clone) {
			return false
		}
		r.Components = replaceItem(r.Components, j, types.Component(&clone))
		return true
	})
}

// AddComponentRow appends a row.
func (s *Store) AddComponentRow(row types.ComponentRow) {
	clone := row.Clone()
	s.update("add_component_row", func(m *types.Message) bool {
		m.Components = appendItem(m.Components, clone)
		return true
	})
}

// ClearComponentRows removes every row.
func (s *Store) ClearComponentRows() {
	s.update("clear_component_rows", func(m *types.Message) bool {
		m.Components = []types.ComponentRow{}
		return true
	})
}

// MoveComponentRowUp swaps row i with its predecessor.
func (s *Store) MoveComponentRowUp(i int) {
	s.update("move_component_row_up", func(m *types.Message) bool {
		var ok bool
		m.Components, ok = moveItem(m.Components, i, -1)
		return ok
	})
}

// MoveComponentRowDown swaps row i with its successor.
func (s *Store) MoveComponentRowDown(i int) {
	s.update("move_component_row_down", func(m *types.Message) bool {
		var ok bool
		m.Components, ok = moveItem(m.Components, i, 1)
		return ok
	})
}

// DuplicateComponentRow inserts a copy of row i, with a fresh id, after it.
func (s *Store) DuplicateComponentRow(i int) {
	s.update("duplicate_component_row", func(m *types.Message) bool {
		if !inRange(m.Components, i) {
			return false
		}
		clone := m.Components[i].Clone()
		clone.ID = s.ids.NextID()
		m.Components, _ = insertAfter(m.Components, i, clone)
		return true
	})
}

// DeleteComponentRow removes row i.
func (s *Store) DeleteComponentRow(i int) {
	s.update("delete_component_row", func(m *types.Message) bool {
		var ok bool
		m.Components, ok = removeItem(m.Components, i)
		return ok
	})
}

// AddButton appends a button to row i.
func (s *Store) AddButton(i int, button types.Button) {
	clone := button.Clone()
	s.updateRow("add_button", i, func(r *types.ComponentRow) bool {
		r.Components = appendItem(r.Components, types.Component(clone))
		return true
	})
}

// AddSelectMenu appends a select menu to row i.
func (s *Store) AddSelectMenu(i int, menu types.SelectMenu) {
	clone := menu.Clone()
	s.updateRow("add_select_menu", i, func(r *types.ComponentRow) bool {
		r.Components = appendItem(r.Components, types.Component(clone))
		return true
	})
}

// ClearButtons removes every component of row i.
func (s *Store) ClearButtons(i int) {
	s.updateRow("clear_buttons", i, func(r *types.ComponentRow) bool {
		r.Components = []types.Component{}
		return true
	})
}

// MoveButtonUp swaps component j of row i with its predecessor.
func (s *Store) MoveButtonUp(i, j int) {
	s.updateRow("move_button_up", i, func(r *types.ComponentRow) bool {
		var ok bool
		r.Components, ok = moveItem(r.Components, j, -1)
		return ok
	})
}

// MoveButtonDown swaps component j of row i with its successor.
func (s *Store) MoveButtonDown(i, j int) {
	s.updateRow("move_button_down", i, func(r *types.ComponentRow) bool {
		var ok bool
		r.Components, ok = moveItem(r.Components, j, 1)
		return ok
	})
}

// DuplicateButton inserts a copy of component j, with a fresh id, after it.
func (s *Store) DuplicateButton(i, j int) {
	s.updateRow("duplicate_button", i, func(r *types.ComponentRow) bool {
		if !inRange(r.Components, j) {
			return false
		}
		clone := types.WithComponentID(r.Components[j], s.ids.NextID())
		r.Components, _ = insertAfter(r.Components, j, clone)
		return true
	})
}

// DeleteButton removes component j of row i.
func (s *Store) DeleteButton(i, j int) {
	s.updateRow("delete_button", i, func(r *types.ComponentRow) bool {
		var ok bool
		r.Components, ok = removeItem(r.Components, j)
		return ok
	})
}

// SetButtonStyle sets the style of a button. Non-buttons are left alone.
func (s *Store) SetButtonStyle(i, j int, style types.ButtonStyle) {
	s.updateButton("set_button_style", i, j, func(b *types.Button) bool {
		if b.Style == style {
			return false
		}
		b.Style = style
		return true
	})
}

// SetButtonLabel sets the label of a button.
func (s *Store) SetButtonLabel(i, j int, label string) {
	s.updateButton("set_button_label", i, j, func(b *types.Button) bool {
		if b.Label == label {
			return false
		}
		b.Label = label
		return true
	})
}

// SetButtonURL sets or clears the link of a button.
func (s *Store) SetButtonURL(i, j int, url string) {
	s.updateButton("set_button_url", i, j, func(b *types.Button) bool {
		return setOptional(&b.URL, url)
	})
}

// SetSelectMenuPlaceholder sets or clears the placeholder of a select menu.
func (s *Store) SetSelectMenuPlaceholder(i, j int, placeholder string) {
	s.updateSelectMenu("set_select_menu_placeholder", i, j, func(m *types.SelectMenu) bool {
		return setOptional(&m.Placeholder, placeholder)
	})
}

// AddSelectMenuOption appends an option.
func (s *Store) AddSelectMenuOption(i, j int, option types.SelectMenuOption) {
	s.updateSelectMenu("add_select_menu_option", i, j, func(m *types.SelectMenu) bool {
		m.Options = appendItem(m.Options, option)
		return true
	})
}

// ClearSelectMenuOptions removes every option.
func (s *Store) ClearSelectMenuOptions(i, j int) {
	s.updateSelectMenu("clear_select_menu_options", i, j, func(m *types.SelectMenu) bool {
		m.Options = []types.SelectMenuOption{}
		return true
	})
}

// MoveSelectMenuOptionUp swaps option k with its predecessor.
func (s *Store) MoveSelectMenuOptionUp(i, j, k int) {
	s.updateSelectMenu("move_select_menu_option_up", i, j, func(m *types.SelectMenu) bool {
		var ok bool
		m.Options, ok = moveItem(m.Options, k, -1)
		return ok
	})
}

// MoveSelectMenuOptionDown swaps option k with its successor.
func (s *Store) MoveSelectMenuOptionDown(i, j, k int) {
	s.updateSelectMenu("move_select_menu_option_down", i, j, func(m *types.SelectMenu) bool {
		var ok bool
		m.Options, ok = moveItem(m.Options, k, 1)
		return ok
	})
}

// DuplicateSelectMenuOption inserts a copy of option k, with a fresh id, after it.
func (s *Store) DuplicateSelectMenuOption(i, j, k int) {
	s.updateSelectMenu("duplicate_select_menu_option", i, j, func(m *types.SelectMenu) bool {
		if !inRange(m.Options, k) {
			return false
		}
		clone := m.Options[k]
		clone.ID = s.ids.NextID()
		m.Options, _ = insertAfter(m.Options, k, clone)
		return true
	})
}

// DeleteSelectMenuOption removes option k.
func (s *Store) DeleteSelectMenuOption(i, j, k int) {
	s.updateSelectMenu("delete_select_menu_option", i, j, func(m *types.SelectMenu) bool {
		var ok bool
		m.Options, ok = removeItem(m.Options, k)
		return ok
	})
}

// SetSelectMenuOptionLabel sets the label of option k.
func (s *Store) SetSelectMenuOptionLabel(i, j, k int, label string) {
	s.updateSelectMenu("set_select_menu_option_label", i, j, func(m *types.SelectMenu) bool {
		if !inRange(m.Options, k) || m.Options[k].Label == label {
			return false
		}
		option := m.Options[k]
		option.Label = label
		m.Options = replaceItem(m.Options, k, option)
		return true
	})
}
