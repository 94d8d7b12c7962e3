package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/example/shapecanvas/internal/clipboard"
	"github.com/example/shapecanvas/internal/config"
	"github.com/example/shapecanvas/internal/document"
	"github.com/example/shapecanvas/internal/geom"
	"github.com/example/shapecanvas/internal/notify"
	"github.com/example/shapecanvas/internal/session"
	"github.com/example/shapecanvas/internal/theme"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs          *flag.FlagSet
	program     string
	notifier    *notify.Notifier
	config      *config.Config
	exportAlert bool
	copyAlert   bool
	themeName   string
	activeTheme *theme.Theme
	clip        session.Clipboard
}

func (r *root) Program() string {
	return r.program
}

func (r *root) subcommand(name string) *root {
	program := strings.TrimSpace(strings.Join([]string{r.program, name}, " "))
	return &root{
		program:     program,
		notifier:    r.notifier,
		config:      r.config,
		exportAlert: r.exportAlert,
		copyAlert:   r.copyAlert,
		themeName:   r.themeName,
		activeTheme: r.activeTheme,
		clip:        r.clip,
	}
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func newRoot() *root {
	loader := config.NewLoader(version, configPathOverride)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}

	r := &root{
		fs:       flag.NewFlagSet("shapecanvas", flag.ExitOnError),
		program:  "shapecanvas",
		notifier: notify.New(notify.LoadPreferences()),
		config:   cfg,
		clip:     clipboard.System{},
	}
	r.fs.BoolVar(&r.exportAlert, "notify-export", cfg.Notify.Export, "show a desktop notification after writing code, PNG or PDF output")
	r.fs.BoolVar(&r.copyAlert, "notify-copy", cfg.Notify.Copy, "show a desktop notification after copying to the clipboard")

	// Precedence: CLI > Env > Config > Default. The flag stays empty so
	// resolveTheme can tell whether it was given.
	r.fs.StringVar(&r.themeName, "theme", "", "window color theme ("+strings.Join(theme.EmbeddedNames(), ", ")+", or a file path)")
	r.fs.Usage = usageFunc(r)
	return r
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	if r.fs.NArg() < 1 {
		return &UsageError{of: r}
	}
	if r.notifier != nil {
		r.notifier.Enable(notify.EventExport, r.exportAlert)
		r.notifier.Enable(notify.EventCopy, r.copyAlert)
	}
	r.activeTheme = r.resolveTheme()

	cmdName := r.fs.Arg(0)
	subArgs := r.fs.Args()[1:]

	var (
		cmd runnable
		err error
	)
	switch cmdName {
	case "edit":
		cmd, err = parseEditCmd(subArgs, r.subcommand(cmdName))
	case "run":
		cmd, err = parseRunCmd(subArgs, r.subcommand(cmdName))
	case "interactive":
		cmd, err = parseInteractiveCmd(subArgs, r.subcommand(cmdName))
	case "colors":
		cmd, err = parseColorsCmd(subArgs, r.subcommand(cmdName))
	case "config":
		cmd, err = parseConfigCmd(subArgs, r.subcommand(cmdName))
	case "version":
		cmd = &versionCmd{r: r, out: os.Stdout}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

// resolveTheme picks the window theme from the flag, SHAPECANVAS_THEME or
// the config, falling back to the default theme with a warning.
func (r *root) resolveTheme() *theme.Theme {
	name := r.themeName
	if name == "" {
		name = os.Getenv("SHAPECANVAS_THEME")
	}
	if name == "" && r.config != nil {
		name = r.config.Theme
	}
	var custom map[string]*theme.Theme
	if r.config != nil {
		custom = r.config.Themes
	}
	t, err := theme.NewLoader(custom).Load(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load theme '%s': %v. using default.\n", name, err)
		return theme.Default()
	}
	return t
}

// newSession builds a session seeded from the configuration. Command output
// goes to out.
func (r *root) newSession(out io.Writer) *session.Session {
	cfg := r.config
	if cfg == nil {
		cfg = config.New()
	}
	doc := document.New(document.WithCanvas(cfg.Canvas()), document.WithStyle(cfg.Style()))
	view := geom.NewTransform(cfg.TransformOptions()...)
	opts := []session.Option{
		session.WithDocument(doc),
		session.WithView(view),
		session.WithOutput(out),
		session.WithSaveListener(r.notifyExport),
		session.WithCopyListener(r.notifyCopy),
	}
	if r.clip != nil {
		opts = append(opts, session.WithClipboard(r.clip))
	}
	return session.New(opts...)
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (r *root) notifyExport(kind, path string) {
	if r == nil || r.notifier == nil {
		return
	}
	r.notifier.Export(kind, path)
}

func (r *root) notifyCopy(kind string) {
	if r == nil || r.notifier == nil {
		return
	}
	r.notifier.Copy(kind)
}
