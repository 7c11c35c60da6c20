package config

import (
	"os"

	"gopkg.in/yaml.v2"

	"vicimap/internal/label"
	"vicimap/internal/render"
)

// StrokeAttributes overrides one group's look. Empty fields keep the
// stock value.
type StrokeAttributes struct {
	Stroke string  `yaml:"stroke"`
	Width  float64 `yaml:"width"`
	Color  int     `yaml:"color"`
}

// Settings is the optional vicimap_settings.yaml file. Everything has a
// usable default; an absent file is not an error.
type Settings struct {
	DrawingWidth  float64 `yaml:"drawingWidth"`
	DrawingHeight float64 `yaml:"drawingHeight"`

	MinSeparation   float64 `yaml:"minSeparation"`
	DefaultFontSize float64 `yaml:"defaultFontSize"`

	SVGPath string `yaml:"svgPath"`
	DXFPath string `yaml:"dxfPath"`

	HighwayAttributes  StrokeAttributes `yaml:"highwayAttributes"`
	RailwayAttributes  StrokeAttributes `yaml:"railwayAttributes"`
	WaterwayAttributes StrokeAttributes `yaml:"waterwayAttributes"`
}

// Default returns the stock settings: an 800×600 drawing space and the
// standard artifact names.
func Default() Settings {
	return Settings{
		DrawingWidth:  800,
		DrawingHeight: 600,
		MinSeparation: label.DefaultMinSeparation,
		SVGPath:       render.DefaultSVGName,
		DXFPath:       render.DefaultDXFName,
	}
}

// Load reads settings from path, filling gaps with defaults. A missing
// file yields the defaults; a malformed one is an error.
func Load(path string) (Settings, error) {
	s := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, err
	}
	if err := yaml.Unmarshal(b, &s); err != nil {
		return Default(), err
	}
	if s.DrawingWidth <= 0 {
		s.DrawingWidth = 800
	}
	if s.DrawingHeight <= 0 {
		s.DrawingHeight = 600
	}
	if s.MinSeparation <= 0 {
		s.MinSeparation = label.DefaultMinSeparation
	}
	if s.SVGPath == "" {
		s.SVGPath = render.DefaultSVGName
	}
	if s.DXFPath == "" {
		s.DXFPath = render.DefaultDXFName
	}
	return s, nil
}

// Styles folds the stroke overrides into the stock style set.
func (s Settings) Styles() render.StyleSet {
	st := render.DefaultStyles()
	apply := func(dst *render.Style, a StrokeAttributes) {
		if a.Stroke != "" {
			dst.Stroke = a.Stroke
		}
		if a.Width > 0 {
			dst.Width = a.Width
		}
		if a.Color > 0 {
			dst.Color = a.Color
		}
	}
	apply(&st.Highway, s.HighwayAttributes)
	apply(&st.Railway, s.RailwayAttributes)
	apply(&st.Waterway, s.WaterwayAttributes)
	return st
}
