//go:build darwin

package platform

import (
	"fmt"
	"os/exec"
)

// Notify shows a Notification Center banner. terminal-notifier is preferred
// when installed since it can show the icon; osascript is the fallback.
func Notify(title, body string, opts Options) error {
	if path, err := exec.LookPath("terminal-notifier"); err == nil {
		args := []string{"-title", title, "-subtitle", opts.appName(), "-message", body, "-group", opts.appName()}
		if opts.IconPath != "" {
			args = append(args, "-contentImage", opts.IconPath)
		}
		if err := exec.Command(path, args...).Run(); err != nil {
			return fmt.Errorf("terminal-notifier: %w", err)
		}
		return nil
	}
	script := fmt.Sprintf("display notification %q with title %q subtitle %q", body, title, opts.appName())
	if err := exec.Command("osascript", "-e", script).Run(); err != nil {
		return fmt.Errorf("osascript: %w", err)
	}
	return nil
}
