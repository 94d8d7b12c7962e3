//go:build !linux && !darwin && !windows

package platform

import (
	"fmt"
	"runtime"
)

// Notify reports ErrUnsupported; there is no notification service to reach.
func Notify(title, body string, opts Options) error {
	return fmt.Errorf("%s notification %q: %w", runtime.GOOS, title, ErrUnsupported)
}
