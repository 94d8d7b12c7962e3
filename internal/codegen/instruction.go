// Package codegen turns committed shapes into a standalone rendering program.
// Generation produces an instruction list; turning that list into source
// text is a separate step so other back ends can consume the same list.
package codegen

import (
	"fmt"
	"strings"

	"github.com/example/shapecanvas/internal/document"
	"github.com/example/shapecanvas/internal/shape"
)

// Op names one drawing call of the generated program.
type Op int

const (
	OpSetColor Op = iota
	OpSetStroke
	OpDrawLine
	OpDrawRect
	OpDrawOval
	OpDrawPolygon
	OpFillRect
	OpFillOval
	OpFillPolygon
)

var opNames = [...]string{
	OpSetColor:    "setColor",
	OpSetStroke:   "setStroke",
	OpDrawLine:    "drawLine",
	OpDrawRect:    "drawRect",
	OpDrawOval:    "drawOval",
	OpDrawPolygon: "drawPolygon",
	OpFillRect:    "fillRect",
	OpFillOval:    "fillOval",
	OpFillPolygon: "fillPolygon",
}

func (o Op) String() string {
	if o < 0 || int(o) >= len(opNames) {
		return fmt.Sprintf("Op(%d)", int(o))
	}
	return opNames[o]
}

// Instruction is one call with its parameters. Which fields are set depends
// on Op:
//
//	OpSetColor              Color
//	OpSetStroke             Width
//	OpDrawLine              Args = x1, y1, x2, y2
//	OpDrawRect..OpFillOval  Args = x, y, w, h
//	OpDrawPolygon, OpFillPolygon  Xs, Ys
type Instruction struct {
	Op    Op
	Color shape.RGB
	Width int
	Args  []int
	Xs    []int
	Ys    []int
}

func (in Instruction) String() string {
	switch in.Op {
	case OpSetColor:
		return fmt.Sprintf("%s %s", in.Op, in.Color.Hex())
	case OpSetStroke:
		return fmt.Sprintf("%s %d", in.Op, in.Width)
	case OpDrawPolygon, OpFillPolygon:
		return fmt.Sprintf("%s %v %v", in.Op, in.Xs, in.Ys)
	}
	return fmt.Sprintf("%s %s", in.Op, joinInts(in.Args))
}

// Program is a generated drawing: window setup plus the paint instructions.
type Program struct {
	Width        int
	Height       int
	Background   shape.RGB
	Instructions []Instruction
}

// Generate emits, per shape in paint order: the stroke color, the stroke
// width, the outline, then the fill. When fill and stroke share a color the
// second color change is left out. Nothing is shared between shapes.
func Generate(shapes []shape.Shape, canvas document.Canvas) Program {
	p := Program{Width: canvas.Width, Height: canvas.Height, Background: canvas.Background}
	for _, s := range shapes {
		p.Instructions = append(p.Instructions, forShape(s)...)
	}
	return p
}

func forShape(s shape.Shape) []Instruction {
	out := []Instruction{
		{Op: OpSetColor, Color: s.Stroke},
		{Op: OpSetStroke, Width: s.Width},
	}
	box := s.Bounds()
	boxArgs := []int{box.X, box.Y, box.W, box.H}
	var xs, ys []int
	if s.Kind == shape.Polygon {
		xs = make([]int, len(s.Vertices))
		ys = make([]int, len(s.Vertices))
		for i, v := range s.Vertices {
			xs[i], ys[i] = v.X, v.Y
		}
	}
	var fill Instruction
	switch s.Kind {
	case shape.Line:
		out = append(out, Instruction{Op: OpDrawLine, Args: []int{s.Start.X, s.Start.Y, s.End.X, s.End.Y}})
	case shape.Rectangle:
		out = append(out, Instruction{Op: OpDrawRect, Args: boxArgs})
		fill = Instruction{Op: OpFillRect, Args: boxArgs}
	case shape.Oval:
		out = append(out, Instruction{Op: OpDrawOval, Args: boxArgs})
		fill = Instruction{Op: OpFillOval, Args: boxArgs}
	case shape.Polygon:
		out = append(out, Instruction{Op: OpDrawPolygon, Xs: xs, Ys: ys})
		fill = Instruction{Op: OpFillPolygon, Xs: xs, Ys: ys}
	}
	if !s.Filled() {
		return out
	}
	if *s.Fill != s.Stroke {
		out = append(out, Instruction{Op: OpSetColor, Color: *s.Fill})
	}
	return append(out, fill)
}

func joinInts(v []int) string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, ", ")
}
