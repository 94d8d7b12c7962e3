package codegen

import (
	"embed"
	"fmt"
	"io"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var javaTmpl = template.Must(template.New("").ParseFS(templateFS, "templates/*.tmpl"))

// Statement renders a single instruction as a Java2D call on g2d.
func Statement(in Instruction) string {
	switch in.Op {
	case OpSetColor:
		return fmt.Sprintf("g2d.setColor(new Color(%d, %d, %d));", in.Color.R, in.Color.G, in.Color.B)
	case OpSetStroke:
		return fmt.Sprintf("g2d.setStroke(new BasicStroke(%d));", in.Width)
	case OpDrawPolygon, OpFillPolygon:
		return fmt.Sprintf("g2d.%s(new int[] {%s}, new int[] {%s}, %d);", in.Op, joinInts(in.Xs), joinInts(in.Ys), len(in.Xs))
	}
	return fmt.Sprintf("g2d.%s(%s);", in.Op, joinInts(in.Args))
}

type javaView struct {
	Program
	Statements []string
}

// WriteTo writes the program as a Swing application that opens a fixed-size
// window and paints the instructions in order.
func (p Program) WriteTo(w io.Writer) (int64, error) {
	view := javaView{Program: p, Statements: make([]string, len(p.Instructions))}
	for i, in := range p.Instructions {
		view.Statements[i] = Statement(in)
	}
	cw := &countingWriter{w: w}
	if err := javaTmpl.ExecuteTemplate(cw, "java2d.tmpl", view); err != nil {
		return cw.n, fmt.Errorf("render program: %w", err)
	}
	return cw.n, nil
}

// String returns the same text WriteTo produces.
func (p Program) String() string {
	var sb strings.Builder
	if _, err := p.WriteTo(&sb); err != nil {
		return err.Error()
	}
	return sb.String()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(b []byte) (int, error) {
	n, err := c.w.Write(b)
	c.n += int64(n)
	return n, err
}
