package appstate

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"log"

	"golang.org/x/exp/shiny/screen"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/example/shapecanvas/internal/document"
	"github.com/example/shapecanvas/internal/geom"
	"github.com/example/shapecanvas/internal/render"
	"github.com/example/shapecanvas/internal/theme"
)

type paintState struct {
	width, height int
	scene         render.Scene
	style         document.Style
	hover         int
	status        string
	message       string
	th            *theme.Theme
	toolbar       *toolbar
}

// pageRect is where the canvas lands inside the canvas area.
func pageRect(c document.Canvas, v geom.Transform) image.Rectangle {
	x0, y0 := v.ToDevice(geom.Point{})
	x1, y1 := v.ToDevice(geom.Pt(c.Width, c.Height))
	return image.Rect(int(x0), int(y0), int(x1+0.5), int(y1+0.5))
}

// composeFrame paints a whole window frame into dst. It returns early when
// ctx is cancelled.
func composeFrame(ctx context.Context, dst *image.RGBA, st paintState) {
	th := st.th
	area := image.Rect(toolbarWidth, 0, st.width, st.height-statusHeight)
	if !area.Empty() {
		canvas := render.NewRaster(area.Dx(), area.Dy())
		canvas.Fill(th.Backdrop)
		page := pageRect(st.scene.Canvas, st.scene.View)
		render.PageShadow(canvas.Image(), page, render.DefaultShadowOptions())
		if ctx.Err() != nil {
			return
		}
		render.Render(canvas, st.scene)
		drawRect(canvas.Image(), page.Inset(-1), th.PageBorder)
		draw.Draw(dst, area, canvas.Image(), image.Point{}, draw.Src)
	}
	if ctx.Err() != nil {
		return
	}

	st.toolbar.draw(dst, st.scene.Tool, st.style, st.hover)

	bar := image.Rect(0, st.height-statusHeight, st.width, st.height)
	draw.Draw(dst, bar, &image.Uniform{th.StatusBackground}, image.Point{}, draw.Src)
	drawLabel(dst, st.status, image.Pt(bar.Min.X+6, bar.Max.Y-5), th.StatusText)

	if st.message != "" {
		drawMessage(dst, st.message, area, th)
	}
}

func drawMessage(dst *image.RGBA, msg string, area image.Rectangle, th *theme.Theme) {
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(th.Foreground), Face: messageFace}
	wmsg := d.MeasureString(msg).Ceil()
	ascent := messageFace.Metrics().Ascent.Ceil()
	descent := messageFace.Metrics().Descent.Ceil()
	px := area.Min.X + (area.Dx()-wmsg)/2
	py := area.Min.Y + (area.Dy()-ascent-descent)/2 + ascent
	rect := image.Rect(px-8, py-ascent-8, px+wmsg+8, py+descent+8)
	bg := th.StatusBackground
	bg.A = 230
	draw.Draw(dst, rect, &image.Uniform{bg}, image.Point{}, draw.Over)
	drawRect(dst, rect, color.RGBA{A: 255})
	d.Dot = fixed.P(px, py)
	d.DrawString(msg)
}

func drawFrame(ctx context.Context, s screen.Screen, w screen.Window, st paintState) {
	if st.width <= 0 || st.height <= 0 {
		return
	}
	b, err := s.NewBuffer(image.Point{st.width, st.height})
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()

	composeFrame(ctx, b.RGBA(), st)
	if ctx.Err() != nil {
		return
	}
	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}
