// Package style holds the layout constants shared by the wheel and ikigai renderers.
package style

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
	"gopkg.in/yaml.v3"
)

// Style is the single source of colors, sizes and geometry for both renderers.
// Font sizes are in points; pixel sizes follow from DPI.
type Style struct {
	DPI        float64 `yaml:"dpi"`
	Background string  `yaml:"background"`
	Wheel      Wheel   `yaml:"wheel"`
	Ikigai     Ikigai  `yaml:"ikigai"`
}

type Wheel struct {
	Size       int      `yaml:"size"`
	Margin     int      `yaml:"margin"`
	Palette    []string `yaml:"palette"`
	BarAlpha   float64  `yaml:"bar_alpha"`
	BarWidth   float64  `yaml:"bar_width"` // radians, independent of category count
	EdgeColor  string   `yaml:"edge_color"`
	EdgeWidth  float64  `yaml:"edge_width"`
	LabelSize  float64  `yaml:"label_size"`
	LabelColor string   `yaml:"label_color"`
	LabelPad   int      `yaml:"label_pad"`
	TitleSize  float64  `yaml:"title_size"`
	TitleColor string   `yaml:"title_color"`
	TitlePad   int      `yaml:"title_pad"`
}

// Ikigai geometry is in diagram units; the canvas spans [-Extent, Extent] on both axes.
type Ikigai struct {
	Size       int      `yaml:"size"`
	Extent     float64  `yaml:"extent"`
	Radius     float64  `yaml:"radius"`
	Offset     float64  `yaml:"offset"`
	EdgeInset  float64  `yaml:"edge_inset"`
	Colors     []string `yaml:"colors"` // top, left, bottom, right
	Alpha      float64  `yaml:"alpha"`
	LabelSize  float64  `yaml:"label_size"`
	LabelColor string   `yaml:"label_color"`
	TitleSize  float64  `yaml:"title_size"`
	TitleColor string   `yaml:"title_color"`
	PatchColor string   `yaml:"patch_color"`
	PatchPad   float64  `yaml:"patch_pad"` // pixels around text
}

// Default returns the stock look of the service.
func Default() *Style {
	return &Style{
		DPI:        100,
		Background: "#FFFFFF",
		Wheel: Wheel{
			Size:   600,
			Margin: 70,
			Palette: []string{
				"#FF9999", "#66B2FF", "#99FF99", "#FFCC99",
				"#FFD700", "#C71585", "#20B2AA", "#FF4500",
			},
			BarAlpha:   0.7,
			BarWidth:   math.Pi / 4,
			EdgeColor:  "#808080",
			EdgeWidth:  0.5,
			LabelSize:  10,
			LabelColor: "#555555",
			LabelPad:   8,
			TitleSize:  14,
			TitleColor: "#000000",
			TitlePad:   12,
		},
		Ikigai: Ikigai{
			Size:       1000,
			Extent:     2.5,
			Radius:     1.25,
			Offset:     0.6,
			EdgeInset:  0.1,
			Colors:     []string{"#FF9999", "#66B2FF", "#99FF99", "#FFCC99"},
			Alpha:      0.4,
			LabelSize:  9,
			LabelColor: "#000000",
			TitleSize:  20,
			TitleColor: "#555555",
			PatchColor: "#FFFFFF",
			PatchPad:   4,
		},
	}
}

// Load returns Default overlaid with the YAML file at path. An empty path yields Default.
func Load(path string) (*Style, error) {
	s := Default()
	if path == "" {
		return s, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read style %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, s); err != nil {
		return nil, fmt.Errorf("parse style %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("style %s: %w", path, err)
	}
	return s, nil
}

// Validate rejects a style the renderers cannot draw with.
func (s *Style) Validate() error {
	var errs []error
	if s.DPI <= 0 {
		errs = append(errs, errors.New("dpi must be positive"))
	}
	if s.Wheel.Size <= 2*s.Wheel.Margin {
		errs = append(errs, errors.New("wheel.size must exceed twice wheel.margin"))
	}
	if len(s.Wheel.Palette) == 0 {
		errs = append(errs, errors.New("wheel.palette is empty"))
	}
	if s.Ikigai.Size <= 0 || s.Ikigai.Extent <= 0 {
		errs = append(errs, errors.New("ikigai.size and ikigai.extent must be positive"))
	}
	if len(s.Ikigai.Colors) != 4 {
		errs = append(errs, fmt.Errorf("ikigai.colors needs 4 entries, got %d", len(s.Ikigai.Colors)))
	}
	colors := append([]string{s.Background, s.Wheel.EdgeColor, s.Wheel.LabelColor, s.Wheel.TitleColor,
		s.Ikigai.LabelColor, s.Ikigai.TitleColor, s.Ikigai.PatchColor}, s.Wheel.Palette...)
	colors = append(colors, s.Ikigai.Colors...)
	for _, c := range colors {
		if !validHex(c) {
			errs = append(errs, fmt.Errorf("bad color %q", c))
		}
	}
	return errors.Join(errs...)
}

// PaletteColor returns the wheel fill for bar i; the palette repeats past its end.
func (s *Style) PaletteColor(i int) drawing.Color {
	p := s.Wheel.Palette
	return Hex(p[i%len(p)]).WithAlpha(Opacity(s.Wheel.BarAlpha))
}

// Pixels converts a point size to pixels at the style's DPI.
func (s *Style) Pixels(points float64) float64 { return points * s.DPI / 72 }

// Hex parses "#RRGGBB" or "RRGGBB".
func Hex(s string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(s, "#"))
}

// Opacity maps a 0..1 opacity onto the 8-bit alpha channel.
func Opacity(a float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, a)) * 255))
}

func validHex(s string) bool {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 && len(s) != 3 {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}
