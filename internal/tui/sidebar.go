package tui

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"

	"vicimap/internal/feature"
)

type featureItem struct {
	id   string
	name string
	desc string
}

func (i featureItem) Title() string       { return i.name }
func (i featureItem) Description() string { return i.desc }
func (i featureItem) FilterValue() string { return i.name + " " + i.id }

func sidebarDesc(f *feature.LineFeature) string {
	vis := "hidden"
	if f.Visible {
		vis = "shown"
	}
	lbl := "label off"
	if f.ShowName {
		lbl = "label on"
	}
	return fmt.Sprintf("%s · %s · %s", f.Category, vis, lbl)
}

func (m *Model) refreshSidebar() {
	items := make([]list.Item, 0, len(m.snap.Features))
	for _, f := range m.snap.Features {
		name := f.Name
		if name == "" {
			name = "(unnamed)"
		}
		items = append(items, featureItem{id: f.ID, name: name, desc: sidebarDesc(f)})
	}
	m.items = items
	m.l.SetItems(items)
}
