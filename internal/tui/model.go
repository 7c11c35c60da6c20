package tui

import (
	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"vicimap/internal/config"
	"vicimap/internal/feature"
	"vicimap/internal/geo"
	"vicimap/internal/history"
	"vicimap/internal/render"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	settings config.Settings
	styles   render.StyleSet

	// Editor state. snap is the working copy; hist holds committed
	// snapshots for undo/redo.
	snap   feature.Snapshot
	bounds geo.Bounds
	hist   *history.Store

	mode    editorMode
	subMode selectionSubMode
	sess    interactionSession

	// rectangle-selected feature ids
	selected map[string]bool
	// label under edit, nil when none
	active *labelRef

	// Feature sidebar
	l     list.Model
	items []list.Item

	// standalone label entry
	textEntry   bool
	pendingText geo.Point
	nextLabelID int
	ta          textarea.Model

	// last rendered map size
	mapW int
	mapH int

	// hover state
	hovering   bool
	hoverCellX int
	hoverCellY int
	hoverPt    geo.Point
	hoverOK    bool

	// attributes table
	showAttrs bool
	tbl       table.Model
}

// New builds an editor over the given snapshot. The snapshot becomes the
// first history entry, so the initial state is always reachable via undo.
func New(snap feature.Snapshot, bounds geo.Bounds, settings config.Settings) Model {
	m := Model{
		showSidebar: false,
		helpVisible: true,
		zoom:        1.0,
		status:      "vicimap ready",
		settings:    settings,
		styles:      settings.Styles(),
		snap:        snap,
		bounds:      bounds,
		hist:        history.New(snap),
		mode:        modeSelection,
		subMode:     subModeNone,
		sess:        idleSession{},
		selected:    map[string]bool{},
		nextLabelID: 1,
	}
	d := list.NewDefaultDelegate()
	d.ShowDescription = true
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Features"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	m.refreshSidebar()

	m.ta = textarea.New()
	m.ta.Placeholder = "Label text. Enter places it; Esc cancels."
	m.ta.CharLimit = 0
	m.ta.SetWidth(40)
	m.ta.SetHeight(3)

	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m *Model) findFeature(id string) *feature.LineFeature {
	for _, f := range m.snap.Features {
		if f.ID == id {
			return f
		}
	}
	return nil
}

func (m *Model) findLabel(id string) *feature.StandaloneLabel {
	for _, l := range m.snap.Labels {
		if l.ID == id {
			return l
		}
	}
	return nil
}

// commit snapshots the working state. Called once per finished
// interaction, not per pointer-move.
func (m *Model) commit() {
	m.hist.Commit(m.snap)
}
