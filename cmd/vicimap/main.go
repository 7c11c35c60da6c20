package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"vicimap/internal/config"
	"vicimap/internal/feature"
	"vicimap/internal/source"
	"vicimap/internal/tui"
)

const settingsFile = "vicimap_settings.yaml"

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: vicimap <data.geojson|data.json|data.shp> [settings.yaml]")
		os.Exit(2)
	}
	settingsPath := settingsFile
	if len(os.Args) > 2 {
		settingsPath = os.Args[2]
	}
	settings, err := config.Load(settingsPath)
	if err != nil {
		log.Fatalf("settings: %v", err)
	}

	raws, err := source.Load(os.Args[1])
	if err != nil {
		log.Fatalf("load: %v", err)
	}
	bounds := source.UnionBounds(raws)
	features, err := source.Build(raws, bounds, settings.DrawingWidth, settings.DrawingHeight)
	if err != nil {
		log.Fatalf("build: %v", err)
	}

	snap := feature.Snapshot{Features: features}
	m := tui.New(snap, bounds, settings)
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Fatal(err)
	}
}
