package appstate

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/mobile/event/key"

	"github.com/example/shapecanvas/internal/document"
	"github.com/example/shapecanvas/internal/shape"
	"github.com/example/shapecanvas/internal/theme"
)

const (
	buttonHeight = 24
	swatchSize   = 16
	swatchStep   = 18
	widthRowH    = 14
	statusHeight = 20
)

// toolbarWidth grows in Main to fit the longest label.
var toolbarWidth = 96

var messageFace font.Face

func init() {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Fatalf("parse font: %v", err)
	}
	messageFace, err = opentype.NewFace(f, &opentype.FaceOptions{Size: 20, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		log.Fatalf("font face: %v", err)
	}
}

// KeyShortcut describes a keyboard combination that triggers an action.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

// KeyboardShortcuts returns the shortcuts associated with an action.
type KeyboardShortcuts interface {
	KeyboardShortcuts() []KeyShortcut
}

type shortcutList []KeyShortcut

func (s shortcutList) KeyboardShortcuts() []KeyShortcut { return []KeyShortcut(s) }

// ctrl matches a control chord whether the driver reports the rune or only
// the key code.
func ctrl(r rune, c key.Code) shortcutList {
	return shortcutList{{Rune: r, Modifiers: key.ModControl}, {Code: c, Modifiers: key.ModControl}}
}

// ButtonState describes the visual state of a button.
type ButtonState int

const (
	StateDefault ButtonState = iota
	StateHover
	StatePressed
)

// Button represents an interactive UI element.
// Activate performs the button's action when clicked.
type Button interface {
	Draw(dst *image.RGBA, state ButtonState)
	Rect() image.Rectangle
	SetRect(r image.Rectangle)
	Activate()
}

// CacheButton wraps a Button whose look never changes and caches each
// rendered state.
type CacheButton struct {
	Button
	cache [3]*image.RGBA
}

var _ Button = (*CacheButton)(nil)

func (cb *CacheButton) Draw(dst *image.RGBA, state ButtonState) {
	if cb.cache[state] == nil {
		rect := cb.Button.Rect()
		img := image.NewRGBA(rect)
		cb.Button.Draw(img, state)
		cb.cache[state] = img
	}
	draw.Draw(dst, cb.Button.Rect(), cb.cache[state], cb.Button.Rect().Min, draw.Src)
}

func (cb *CacheButton) SetRect(r image.Rectangle) {
	if r != cb.Button.Rect() {
		cb.Button.SetRect(r)
		cb.cache = [3]*image.RGBA{}
	}
}

// ActionButton runs onActivate when clicked. ToolButtons are ActionButtons
// bound to a shape kind.
type ActionButton struct {
	label      string
	th         *theme.Theme
	rect       image.Rectangle
	onActivate func()
}

func (b *ActionButton) Draw(dst *image.RGBA, state ButtonState) {
	bg, fg := b.th.ToolbarBackground, b.th.ToolText
	switch state {
	case StateHover:
		bg = mix(b.th.ToolbarBackground, b.th.ToolActive)
	case StatePressed:
		bg, fg = b.th.ToolActive, b.th.ToolTextActive
	}
	draw.Draw(dst, b.rect, &image.Uniform{bg}, image.Point{}, draw.Src)
	drawLabel(dst, b.label, image.Pt(b.rect.Min.X+4, b.rect.Min.Y+16), fg)
}

func (b *ActionButton) Rect() image.Rectangle     { return b.rect }
func (b *ActionButton) SetRect(r image.Rectangle) { b.rect = r }

func (b *ActionButton) Activate() {
	if b.onActivate != nil {
		b.onActivate()
	}
}

// ToolButton selects a drawing tool.
type ToolButton struct {
	ActionButton
	kind shape.Kind
}

// toolbar is the fixed column of controls left of the canvas. Rects are
// assigned once by layout and only read afterwards.
type toolbar struct {
	th       *theme.Theme
	buttons  []*CacheButton
	swatches []image.Rectangle
	fill     image.Rectangle
	widths   []image.Rectangle
}

func toolLabel(k shape.Kind) string {
	name := k.String()
	return fmt.Sprintf("%c:%s", name[0], name)
}

func newToolbar(th *theme.Theme, action func(name string)) *toolbar {
	tb := &toolbar{th: th}
	for _, k := range shape.Kinds() {
		k := k
		tb.buttons = append(tb.buttons, &CacheButton{Button: &ToolButton{
			ActionButton: ActionButton{label: toolLabel(k), th: th, onActivate: func() { action("tool-" + k.String()) }},
			kind:         k,
		}})
	}
	for _, a := range []struct{ label, name string }{
		{"Enter:Done", "finish"},
		{"^Z:Undo", "undo"},
		{"^G:Code", "copy-code"},
		{"^S:Save", "save-png"},
		{"0:Home", "home"},
	} {
		name := a.name
		tb.buttons = append(tb.buttons, &CacheButton{Button: &ActionButton{label: a.label, th: th, onActivate: func() { action(name) }}})
	}
	tb.layout()
	return tb
}

func (tb *toolbar) labels() []string {
	var out []string
	for _, b := range tb.buttons {
		switch v := b.Button.(type) {
		case *ToolButton:
			out = append(out, v.label)
		case *ActionButton:
			out = append(out, v.label)
		}
	}
	return append(out, "Fill: off")
}

func (tb *toolbar) layout() {
	y := 0
	for _, b := range tb.buttons {
		b.SetRect(image.Rect(0, y, toolbarWidth, y+buttonHeight))
		y += buttonHeight
	}

	y += 4
	x := 4
	tb.swatches = tb.swatches[:0]
	for range shape.Palette {
		tb.swatches = append(tb.swatches, image.Rect(x, y, x+swatchSize, y+swatchSize))
		x += swatchStep
		if x+swatchSize > toolbarWidth {
			x = 4
			y += swatchStep
		}
	}
	if x != 4 {
		y += swatchStep
	}

	y += 4
	tb.fill = image.Rect(0, y, toolbarWidth, y+buttonHeight)
	y += buttonHeight

	y += 4
	tb.widths = tb.widths[:0]
	for w := document.MinWidth; w <= document.MaxWidth; w++ {
		tb.widths = append(tb.widths, image.Rect(0, y, toolbarWidth, y+widthRowH))
		y += widthRowH
	}
}

type hitKind int

const (
	hitNone hitKind = iota
	hitButton
	hitSwatch
	hitFill
	hitWidth
)

func (tb *toolbar) hit(p image.Point) (hitKind, int) {
	for i, b := range tb.buttons {
		if p.In(b.Rect()) {
			return hitButton, i
		}
	}
	for i, r := range tb.swatches {
		if p.In(r) {
			return hitSwatch, i
		}
	}
	if p.In(tb.fill) {
		return hitFill, 0
	}
	for i, r := range tb.widths {
		if p.In(r) {
			return hitWidth, i
		}
	}
	return hitNone, 0
}

func (tb *toolbar) draw(dst *image.RGBA, tool shape.Kind, style document.Style, hover int) {
	th := tb.th
	draw.Draw(dst, image.Rect(0, 0, toolbarWidth, dst.Bounds().Max.Y), &image.Uniform{th.ToolbarBackground}, image.Point{}, draw.Src)
	for i, b := range tb.buttons {
		state := StateDefault
		if t, ok := b.Button.(*ToolButton); ok && t.kind == tool {
			state = StatePressed
		} else if i == hover {
			state = StateHover
		}
		b.Draw(dst, state)
	}

	for i, r := range tb.swatches {
		c := shape.Palette[i].Color
		draw.Draw(dst, r, &image.Uniform{c.RGBA()}, image.Point{}, draw.Src)
		drawRect(dst, r, th.Swatch)
		if c == style.Stroke {
			drawRect(dst, r.Inset(-1), th.ToolTextActive)
		}
		if style.FillEnabled && c == style.FillColor {
			dot := image.Rect(r.Min.X+5, r.Min.Y+5, r.Max.X-5, r.Max.Y-5)
			draw.Draw(dst, dot, &image.Uniform{invert(c.RGBA())}, image.Point{}, draw.Src)
		}
	}

	label := "Fill: off"
	bg := th.ToolbarBackground
	if style.FillEnabled {
		label = "Fill: on"
		bg = th.ToolActive
	}
	draw.Draw(dst, tb.fill, &image.Uniform{bg}, image.Point{}, draw.Src)
	sw := image.Rect(tb.fill.Max.X-20, tb.fill.Min.Y+4, tb.fill.Max.X-4, tb.fill.Max.Y-4)
	draw.Draw(dst, sw, &image.Uniform{style.FillColor.RGBA()}, image.Point{}, draw.Src)
	drawRect(dst, sw, th.Swatch)
	drawLabel(dst, label, image.Pt(tb.fill.Min.X+4, tb.fill.Min.Y+16), th.ToolText)

	for i, r := range tb.widths {
		w := document.MinWidth + i
		if w == style.Width {
			draw.Draw(dst, r, &image.Uniform{th.ToolActive}, image.Point{}, draw.Src)
		}
		drawLabel(dst, fmt.Sprintf("%d", w), image.Pt(4, r.Max.Y-2), th.ToolText)
		mid := (r.Min.Y + r.Max.Y) / 2
		band := image.Rect(24, mid-(w+1)/2, toolbarWidth-6, mid-(w+1)/2+w)
		draw.Draw(dst, band, &image.Uniform{style.Stroke.RGBA()}, image.Point{}, draw.Src)
	}
}

func drawLabel(dst *image.RGBA, s string, dot image.Point, c color.RGBA) {
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(c), Face: basicfont.Face7x13, Dot: fixed.P(dot.X, dot.Y)}
	d.DrawString(s)
}

// drawRect outlines r with a one pixel border inside r.
func drawRect(dst *image.RGBA, r image.Rectangle, c color.RGBA) {
	u := &image.Uniform{c}
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
}

func mix(a, b color.RGBA) color.RGBA {
	return color.RGBA{uint8((int(a.R) + int(b.R)) / 2), uint8((int(a.G) + int(b.G)) / 2), uint8((int(a.B) + int(b.B)) / 2), 255}
}

func invert(c color.RGBA) color.RGBA {
	return color.RGBA{255 - c.R, 255 - c.G, 255 - c.B, 255}
}
