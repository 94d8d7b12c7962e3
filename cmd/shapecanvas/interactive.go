package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/example/shapecanvas/internal/session"
)

type interactiveCmd struct {
	*root
	fs       *flag.FlagSet
	commands commandList

	in     io.Reader
	out    io.Writer
	errOut io.Writer
	prompt string
}

func (i *interactiveCmd) FlagSet() *flag.FlagSet { return i.fs }

func parseInteractiveCmd(args []string, r *root) (*interactiveCmd, error) {
	fs := flag.NewFlagSet("interactive", flag.ExitOnError)
	i := &interactiveCmd{root: r, fs: fs, in: os.Stdin, out: os.Stdout, errOut: os.Stderr, prompt: "> "}
	fs.Var(&i.commands, "e", "command to run before the prompt (repeatable)")
	fs.Usage = usageFunc(i)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return i, nil
}

func (i *interactiveCmd) Run() error {
	sess := i.newSession(i.out)
	for _, c := range i.commands {
		if err := sess.Exec(c); err != nil {
			return err
		}
	}
	fmt.Fprintf(i.out, "session %s. type help for commands, exit to quit.\n", sess.ID[:8])
	scanner := bufio.NewScanner(i.in)
	for {
		fmt.Fprint(i.out, i.prompt)
		if !scanner.Scan() {
			break
		}
		if done := i.execLine(sess, scanner.Text()); done {
			return nil
		}
	}
	return scanner.Err()
}

// execLine runs one typed line and reports whether the user asked to leave.
// Command errors are printed and the prompt continues.
func (i *interactiveCmd) execLine(sess *session.Session, line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "exit", "quit":
		return true
	}
	if err := sess.Exec(line); err != nil {
		fmt.Fprintf(i.errOut, "error: %v\n", err)
	}
	return false
}
