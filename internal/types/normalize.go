package types

// Normalize replaces nil lists with empty ones so the document encodes the
// same way as one built by the editor.
func (m *Message) Normalize() {
	if m.Embeds == nil {
		m.Embeds = []Embed{}
	}
	if m.Components == nil {
		m.Components = []ComponentRow{}
	}
	for i := range m.Embeds {
		if m.Embeds[i].Fields == nil {
			m.Embeds[i].Fields = []EmbedField{}
		}
	}
	for i := range m.Components {
		if m.Components[i].Components == nil {
			m.Components[i].Components = []Component{}
		}
		for j, c := range m.Components[i].Components {
			if menu, ok := c.(*SelectMenu); ok && menu.Options == nil {
				clone := menu.Clone()
				clone.Options = []SelectMenuOption{}
				m.Components[i].Components[j] = clone
			}
		}
	}
}

// FillIDs assigns ids from next to every list element whose id is zero.
// Hand-written JSON usually omits them.
func (m *Message) FillIDs(next func() int) {
	for i := range m.Embeds {
		embed := &m.Embeds[i]
		if embed.ID == 0 {
			embed.ID = next()
		}
		for j := range embed.Fields {
			if embed.Fields[j].ID == 0 {
				embed.Fields[j].ID = next()
			}
		}
	}
	for i := range m.Components {
		row := &m.Components[i]
		if row.ID == 0 {
			row.ID = next()
		}
		for j, c := range row.Components {
			if c.ComponentID() == 0 {
				c = WithComponentID(c, next())
				row.Components[j] = c
			}
			menu, ok := c.(*SelectMenu)
			if !ok {
				continue
			}
			for k := range menu.Options {
				if menu.Options[k].ID == 0 {
					menu.Options[k].ID = next()
				}
			}
		}
	}
}
