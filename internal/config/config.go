package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/example/shapecanvas/internal/document"
	"github.com/example/shapecanvas/internal/geom"
	"github.com/example/shapecanvas/internal/shape"
	"github.com/example/shapecanvas/internal/theme"
)

// Notify holds notification settings.
type Notify struct {
	Export bool
	Copy   bool
}

// Zoom holds the view zoom limits.
type Zoom struct {
	Min    float64
	Max    float64
	Factor float64
}

// Config holds the application configuration.
type Config struct {
	Theme   string
	SaveDir string

	CanvasWidth  int
	CanvasHeight int
	Background   shape.RGB
	DrawColor    shape.RGB
	FillColor    shape.RGB
	Fill         bool
	StrokeWidth  int

	Zoom   Zoom
	Notify Notify
	Themes map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	style := document.DefaultStyle()
	canvas := document.DefaultCanvas()
	return &Config{
		Theme:        "", // Empty allows fallback to env/default
		CanvasWidth:  canvas.Width,
		CanvasHeight: canvas.Height,
		Background:   canvas.Background,
		DrawColor:    style.Stroke,
		FillColor:    style.FillColor,
		Fill:         style.FillEnabled,
		StrokeWidth:  style.Width,
		Zoom: Zoom{
			Min:    geom.DefaultMinScale,
			Max:    geom.DefaultMaxScale,
			Factor: geom.DefaultZoomFactor,
		},
		Themes: make(map[string]*theme.Theme),
	}
}

// Style returns the initial drawing style.
func (c *Config) Style() document.Style {
	return document.Style{
		Stroke:      c.DrawColor,
		FillColor:   c.FillColor,
		FillEnabled: c.Fill,
		Width:       document.ClampWidth(c.StrokeWidth),
	}
}

// Canvas returns the initial canvas.
func (c *Config) Canvas() document.Canvas {
	return document.Canvas{Width: c.CanvasWidth, Height: c.CanvasHeight, Background: c.Background}
}

// TransformOptions returns the view options for the configured zoom limits.
func (c *Config) TransformOptions() []geom.Option {
	return []geom.Option{
		geom.WithScaleLimits(c.Zoom.Min, c.Zoom.Max),
		geom.WithZoomFactor(c.Zoom.Factor),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.SaveDir != "" {
		fmt.Fprintf(&sb, "save_dir = %s\n", c.SaveDir)
	}
	fmt.Fprintf(&sb, "canvas_width = %d\n", c.CanvasWidth)
	fmt.Fprintf(&sb, "canvas_height = %d\n", c.CanvasHeight)
	fmt.Fprintf(&sb, "background = %s\n", c.Background.Hex())
	fmt.Fprintf(&sb, "draw_color = %s\n", c.DrawColor.Hex())
	fmt.Fprintf(&sb, "fill_color = %s\n", c.FillColor.Hex())
	fmt.Fprintf(&sb, "fill = %v\n", c.Fill)
	fmt.Fprintf(&sb, "stroke_width = %d\n", c.StrokeWidth)
	sb.WriteString("\n")

	sb.WriteString("[zoom]\n")
	fmt.Fprintf(&sb, "min = %g\n", c.Zoom.Min)
	fmt.Fprintf(&sb, "max = %g\n", c.Zoom.Max)
	fmt.Fprintf(&sb, "factor = %g\n", c.Zoom.Factor)
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "export = %v\n", c.Notify.Export)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	sb.WriteString("\n")

	// Sorted for deterministic output
	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		for _, f := range t.Fields() {
			fmt.Fprintf(&sb, "%s: %s\n", f.Name, theme.Hex(f.Color))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
