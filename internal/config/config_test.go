package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if s.DrawingWidth != 800 || s.DrawingHeight != 600 {
		t.Errorf("default drawing size = %vx%v", s.DrawingWidth, s.DrawingHeight)
	}
	if s.SVGPath != "vicinity-map.svg" || s.DXFPath != "vicinity-map.dxf" {
		t.Errorf("default artifact names = %q / %q", s.SVGPath, s.DXFPath)
	}
	if s.MinSeparation != 150 {
		t.Errorf("default min separation = %v", s.MinSeparation)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	data := `
drawingWidth: 1000
minSeparation: 80
svgPath: out.svg
highwayAttributes:
  stroke: "#000000"
  width: 3
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.DrawingWidth != 1000 || s.DrawingHeight != 600 {
		t.Errorf("size = %vx%v, want 1000x600", s.DrawingWidth, s.DrawingHeight)
	}
	if s.MinSeparation != 80 || s.SVGPath != "out.svg" {
		t.Errorf("overrides not applied: %+v", s)
	}
	st := s.Styles()
	if st.Highway.Stroke != "#000000" || st.Highway.Width != 3 {
		t.Errorf("highway style = %+v", st.Highway)
	}
	// untouched groups keep stock values
	if st.Waterway.Stroke != "#1e90ff" {
		t.Errorf("waterway style clobbered: %+v", st.Waterway)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte(":\n  - not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed settings should error")
	}
}
