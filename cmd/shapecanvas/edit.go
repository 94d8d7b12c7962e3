package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/example/shapecanvas/internal/appstate"
)

type editCmd struct {
	*root
	fs       *flag.FlagSet
	script   string
	commands commandList
	dir      string
	name     string
}

func (e *editCmd) FlagSet() *flag.FlagSet { return e.fs }

func parseEditCmd(args []string, r *root) (*editCmd, error) {
	fs := flag.NewFlagSet("edit", flag.ExitOnError)
	e := &editCmd{root: r, fs: fs}
	saveDir := "."
	if r.config != nil && r.config.SaveDir != "" {
		saveDir = r.config.SaveDir
	}
	fs.StringVar(&e.script, "script", "", "command file to run before the window opens")
	fs.Var(&e.commands, "e", "command to run before the window opens (repeatable)")
	fs.StringVar(&e.dir, "dir", saveDir, "directory for files saved from the window")
	fs.StringVar(&e.name, "name", "drawing", "base name for saved PNG and PDF files")
	fs.Usage = usageFunc(e)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, &UsageError{of: e}
	}
	return e, nil
}

func (e *editCmd) Run() error {
	sess := e.newSession(os.Stdout)
	if e.script != "" {
		f, err := os.Open(e.script)
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		err = sess.Run(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", e.script, err)
		}
	}
	for _, c := range e.commands {
		if err := sess.Exec(c); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return fmt.Errorf("create save dir: %w", err)
	}
	app := appstate.New(
		appstate.WithSession(sess),
		appstate.WithTheme(e.activeTheme),
		appstate.WithSaveDir(e.dir),
		appstate.WithBaseName(e.name),
		appstate.WithTitle("Shape Canvas"),
	)
	app.Run()
	return nil
}
