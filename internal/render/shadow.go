package render

import (
	"image"
	"image/color"
	"image/draw"
)

// ShadowOptions configures the drop shadow cast by the canvas page onto the
// window backdrop.
type ShadowOptions struct {
	Radius  int
	Offset  image.Point
	Opacity float64
}

// DefaultShadowOptions is a soft shadow down and to the right of the page.
func DefaultShadowOptions() ShadowOptions {
	return ShadowOptions{Radius: 6, Offset: image.Pt(4, 4), Opacity: 0.45}
}

// PageShadow darkens dst beneath page, shifted by opts.Offset and blurred by
// opts.Radius. It draws only the shadow; paint the page on top afterwards.
func PageShadow(dst *image.RGBA, page image.Rectangle, opts ShadowOptions) {
	if dst == nil || page.Empty() || opts.Opacity <= 0 {
		return
	}
	opacity := opts.Opacity
	if opacity > 1 {
		opacity = 1
	}
	radius := opts.Radius
	if radius < 0 {
		radius = 0
	}

	area := page.Inset(-radius).Add(opts.Offset)
	clip := area.Intersect(dst.Bounds())
	if clip.Empty() {
		return
	}

	// Only the part of the page that can influence clip needs a mask.
	maskArea := clip.Inset(-radius)
	mask := image.NewGray(maskArea.Sub(maskArea.Min))
	solid := page.Add(opts.Offset).Intersect(maskArea)
	draw.Draw(mask, solid.Sub(maskArea.Min), image.NewUniform(color.Gray{Y: 255}), image.Point{}, draw.Src)

	blurred := blurGray(mask, radius)
	alpha := uint8(opacity*255 + 0.5)
	draw.DrawMask(dst, clip, image.NewUniform(color.RGBA{0, 0, 0, alpha}), image.Point{}, blurred, clip.Min.Sub(maskArea.Min), draw.Over)
}

// blurGray is a separable box blur using running sums per row and column.
func blurGray(src *image.Gray, radius int) *image.Gray {
	out := image.NewGray(src.Bounds())
	if radius <= 0 {
		copy(out.Pix, src.Pix)
		return out
	}
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	tmp := image.NewGray(src.Bounds())
	sums := make([]int, max(w, h)+1)

	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride:]
		for x := 0; x < w; x++ {
			sums[x+1] = sums[x] + int(row[x])
		}
		for x := 0; x < w; x++ {
			lo, hi := max(x-radius, 0), min(x+radius, w-1)
			tmp.Pix[y*tmp.Stride+x] = uint8((sums[hi+1] - sums[lo]) / (hi - lo + 1))
		}
	}
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			sums[y+1] = sums[y] + int(tmp.Pix[y*tmp.Stride+x])
		}
		for y := 0; y < h; y++ {
			lo, hi := max(y-radius, 0), min(y+radius, h-1)
			out.Pix[y*out.Stride+x] = uint8((sums[hi+1] - sums[lo]) / (hi - lo + 1))
		}
	}
	return out
}
