// Package clipboard publishes generated code and rendered drawings to the
// system clipboard.
package clipboard

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
)

var errNoDisplay = errors.New("clipboard initialization requires DISPLAY or WAYLAND_DISPLAY")

var errNilImage = errors.New("no image to copy")

func hasDisplay() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

// System is the host clipboard.
type System struct{}

// WriteText replaces the clipboard contents with text.
func (System) WriteText(text string) error { return WriteText(text) }

// WriteImage replaces the clipboard contents with img encoded as PNG.
func (System) WriteImage(img image.Image) error { return WriteImage(img) }

func encodePNG(img image.Image) ([]byte, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, errNilImage
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode clipboard image: %w", err)
	}
	return buf.Bytes(), nil
}
