package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshAttrs rebuilds the attributes table from the working snapshot.
func (m *Model) refreshAttrs() {
	cols := []table.Column{
		{Title: "id", Width: 16},
		{Title: "name", Width: 20},
		{Title: "category", Width: 14},
		{Title: "visible", Width: 7},
		{Title: "label", Width: 5},
		{Title: "font", Width: 5},
		{Title: "angle", Width: 7},
	}
	var rows []table.Row
	for _, f := range m.snap.Features {
		angle := "auto"
		if f.CustomAngle != nil {
			angle = fmt.Sprintf("%.1f", *f.CustomAngle)
		}
		rows = append(rows, table.Row{
			f.ID,
			f.Name,
			f.Category.String(),
			fmt.Sprintf("%v", f.Visible),
			fmt.Sprintf("%v", f.ShowName),
			fmt.Sprintf("%.0f", f.EffectiveFontSize()),
			angle,
		})
	}
	for _, l := range m.snap.Labels {
		rows = append(rows, table.Row{
			l.ID,
			l.Text,
			"annotation",
			fmt.Sprintf("%v", l.Visible),
			"-",
			fmt.Sprintf("%.0f", l.FontSize),
			fmt.Sprintf("%.1f", l.Angle),
		})
	}
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}
