package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/example/shapecanvas/internal/shape"
)

type colorsCmd struct {
	*root
	fs  *flag.FlagSet
	all bool
	out io.Writer
}

func (c *colorsCmd) FlagSet() *flag.FlagSet { return c.fs }

func parseColorsCmd(args []string, r *root) (*colorsCmd, error) {
	fs := flag.NewFlagSet("colors", flag.ExitOnError)
	c := &colorsCmd{root: r, fs: fs, out: os.Stdout}
	fs.BoolVar(&c.all, "all", false, "also list every SVG color name the commands accept")
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *colorsCmd) Run() error {
	tw := tabwriter.NewWriter(c.out, 0, 8, 2, ' ', 0)
	for _, p := range shape.Palette {
		fmt.Fprintf(tw, "%s\t%s\n", p.Name, p.Color.Hex())
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if !c.all {
		return nil
	}
	fmt.Fprintln(c.out)
	for _, name := range shape.ColorNames() {
		col, err := shape.ParseColor(name)
		if err != nil {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\n", name, col.Hex())
	}
	return tw.Flush()
}
