package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/example/shapecanvas/internal/config"
)

type configCmd struct {
	*root
	fs   *flag.FlagSet
	path string
	out  io.Writer
}

func (c *configCmd) FlagSet() *flag.FlagSet { return c.fs }

func parseConfigCmd(args []string, r *root) (*configCmd, error) {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	c := &configCmd{root: r, fs: fs, out: os.Stdout}
	fs.StringVar(&c.path, "path", "", "file written by save (default: the loaded config file, else "+config.DefaultPath()+")")
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *configCmd) Run() error {
	args := c.fs.Args()
	if len(args) < 1 {
		return &UsageError{of: c}
	}
	switch args[0] {
	case "print":
		_, err := io.WriteString(c.out, c.current().String())
		return err
	case "save":
		return c.runSave()
	default:
		return fmt.Errorf("unknown config command: %s", args[0])
	}
}

func (c *configCmd) current() *config.Config {
	if c.root.config == nil {
		return config.New()
	}
	return c.root.config
}

func (c *configCmd) runSave() error {
	path := c.path
	if path == "" {
		path = config.NewLoader(version, configPathOverride).GetConfigPath()
	}
	if path == "" {
		path = config.DefaultPath()
	}
	if err := config.Save(c.current(), path); err != nil {
		return fmt.Errorf("failed to save config to %s: %w", path, err)
	}
	fmt.Fprintf(c.out, "Config saved to %s\n", path)
	return nil
}
