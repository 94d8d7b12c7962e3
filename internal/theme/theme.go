package theme

import (
	"image/color"
)

// Theme defines the colors of the editor window around the drawing.
type Theme struct {
	Name string

	// General
	Backdrop   color.RGBA // Window area outside the page
	Foreground color.RGBA // Main text color
	PageBorder color.RGBA // Thin outline around the page

	// Toolbar
	ToolbarBackground color.RGBA
	ToolActive        color.RGBA // Selected tool background
	ToolText          color.RGBA
	ToolTextActive    color.RGBA
	Swatch            color.RGBA // Outline around the color swatches

	// Status bar
	StatusBackground color.RGBA
	StatusText       color.RGBA

	// Polygon vertex markers
	Marker color.RGBA
}

// Default returns the hardcoded default light theme (fallback).
func Default() *Theme {
	return &Theme{
		Name:              "Default",
		Backdrop:          color.RGBA{160, 160, 160, 255},
		Foreground:        color.RGBA{0, 0, 0, 255},
		PageBorder:        color.RGBA{96, 96, 96, 255},
		ToolbarBackground: color.RGBA{220, 220, 220, 255},
		ToolActive:        color.RGBA{180, 180, 180, 255},
		ToolText:          color.RGBA{0, 0, 0, 255},
		ToolTextActive:    color.RGBA{0, 0, 0, 255},
		Swatch:            color.RGBA{0, 0, 0, 255},
		StatusBackground:  color.RGBA{230, 230, 230, 255},
		StatusText:        color.RGBA{32, 32, 32, 255},
		Marker:            color.RGBA{255, 0, 0, 255},
	}
}
