package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/example/shapecanvas/internal/session"
)

type runCmd struct {
	*root
	fs       *flag.FlagSet
	commands commandList
	codePath string
	pngPath  string
	pdfPath  string
	copyKind string

	in  io.Reader
	out io.Writer
}

func (c *runCmd) FlagSet() *flag.FlagSet { return c.fs }

func parseRunCmd(args []string, r *root) (*runCmd, error) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	c := &runCmd{root: r, fs: fs, in: os.Stdin, out: os.Stdout}
	fs.Var(&c.commands, "e", "command to run after the scripts (repeatable)")
	fs.StringVar(&c.codePath, "code", "", "write the generated program here (- for stdout)")
	fs.StringVar(&c.pngPath, "png", "", "write the drawing as PNG")
	fs.StringVar(&c.pdfPath, "pdf", "", "write the drawing as PDF")
	fs.StringVar(&c.copyKind, "to-clipboard", "", "copy code or image to the clipboard when done")
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	switch c.copyKind {
	case "", "code", "image":
	default:
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (c *runCmd) Run() error {
	sess := c.newSession(c.out)
	scripts := c.fs.Args()
	if len(scripts) == 0 && len(c.commands) == 0 {
		scripts = []string{"-"}
	}
	for _, name := range scripts {
		if err := c.runScript(sess, name); err != nil {
			return err
		}
	}
	for _, cmd := range c.commands {
		if err := sess.Exec(cmd); err != nil {
			return fmt.Errorf("-e %q: %w", cmd, err)
		}
	}
	return c.export(sess)
}

func (c *runCmd) runScript(sess *session.Session, name string) error {
	if name == "-" {
		if err := sess.Run(c.in); err != nil {
			return fmt.Errorf("stdin: %w", err)
		}
		return nil
	}
	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("open script: %w", err)
	}
	defer f.Close()
	if err := sess.Run(f); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// export writes the requested outputs. With none requested the program goes
// to stdout.
func (c *runCmd) export(sess *session.Session) error {
	if c.codePath == "" && c.pngPath == "" && c.pdfPath == "" && c.copyKind == "" {
		c.codePath = "-"
	}
	if c.codePath == "-" {
		if err := sess.WriteCode(c.out); err != nil {
			return fmt.Errorf("write code: %w", err)
		}
	} else if c.codePath != "" {
		if err := sess.Save("code", c.codePath); err != nil {
			return err
		}
	}
	if c.pngPath != "" {
		if err := sess.Save("png", c.pngPath); err != nil {
			return err
		}
	}
	if c.pdfPath != "" {
		if err := sess.Save("pdf", c.pdfPath); err != nil {
			return err
		}
	}
	if c.copyKind != "" {
		if err := sess.Copy(c.copyKind); err != nil {
			return err
		}
	}
	return nil
}
