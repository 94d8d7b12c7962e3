// Package assets renders the application icon. Icons are drawn on demand
// at any size, so nothing is embedded.
package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/example/shapecanvas/internal/render"
)

var iconSizes = []int{16, 32, 48, 64, 128, 256}

var (
	mu        sync.Mutex
	pngData   = map[int][]byte{}
	iconPaths = map[int]string{}
)

var (
	paper   = color.RGBA{0xfa, 0xfa, 0xf5, 0xff}
	outline = color.RGBA{0x22, 0x22, 0x22, 0xff}
	accentA = color.RGBA{0xe5, 0x39, 0x35, 0xff}
	accentB = color.RGBA{0x1e, 0x88, 0xe5, 0xff}
	accentC = color.RGBA{0xfd, 0xd8, 0x35, 0xff}
)

// IconImage draws the icon: a rectangle, an oval and a triangle on a page.
func IconImage(size int) (image.Image, error) {
	if size < 8 {
		return nil, fmt.Errorf("icon size %d too small", size)
	}
	s := float64(size)
	u := s / 16
	r := render.NewRaster(size, size)
	r.FillRect(u, u, s-2*u, s-2*u, paper)
	r.StrokeRect(u, u, s-2*u, s-2*u, u*0.75, outline)

	r.FillRect(3*u, 3*u, 6*u, 5*u, accentB)
	r.StrokeRect(3*u, 3*u, 6*u, 5*u, u*0.5, outline)
	r.FillEllipse(10*u, 6*u, 2.5*u, 2.5*u, accentA)
	r.StrokeEllipse(10*u, 6*u, 2.5*u, 2.5*u, u*0.5, outline)
	tri := []render.Vec{{X: 4 * u, Y: 13 * u}, {X: 8 * u, Y: 9 * u}, {X: 12 * u, Y: 13 * u}}
	r.FillPolygon(tri, accentC)
	r.StrokePolygon(tri, u*0.5, outline)
	return r.Image(), nil
}

// IconPNG returns a copy of the encoded icon for the requested size.
func IconPNG(size int) ([]byte, error) {
	mu.Lock()
	defer mu.Unlock()
	data, err := iconPNGLocked(size)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func iconPNGLocked(size int) ([]byte, error) {
	if data, ok := pngData[size]; ok {
		return data, nil
	}
	img, err := IconImage(size)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := render.NewRasterOn(img.(*image.RGBA)).EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode %dpx icon: %w", size, err)
	}
	pngData[size] = buf.Bytes()
	return pngData[size], nil
}

// IconSizes lists the sizes installers and notifications ask for.
func IconSizes() []int {
	sizes := append([]int(nil), iconSizes...)
	sort.Ints(sizes)
	return sizes
}

// IconPath writes the icon for size under the user cache directory once and
// returns its path. Notification daemons want a file, not bytes.
func IconPath(size int) (string, error) {
	mu.Lock()
	defer mu.Unlock()
	if p, ok := iconPaths[size]; ok {
		return p, nil
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("icon cache dir: %w", err)
	}
	dir = filepath.Join(dir, "shapecanvas")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("icon cache dir: %w", err)
	}
	data, err := iconPNGLocked(size)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("shapecanvas-%d.png", size))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write icon: %w", err)
	}
	iconPaths[size] = path
	return path, nil
}
