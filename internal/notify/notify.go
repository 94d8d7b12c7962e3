// Package notify raises desktop notifications when a drawing leaves the
// editor, either exported to a file or copied to the clipboard.
package notify

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/shapecanvas/assets"
	"github.com/example/shapecanvas/internal/platform"
)

// Event identifies a notification trigger.
type Event string

const (
	// EventExport fires when code, PNG or PDF output is written to disk.
	EventExport Event = "export"
	// EventCopy fires when code or an image is copied to the clipboard.
	EventCopy Event = "copy"
)

// EventPreference describes formatting for a notification event.
type EventPreference struct {
	Template string
}

// Preferences describes notification behaviour loaded from configuration.
type Preferences struct {
	Title  string
	Events map[Event]EventPreference
}

// DefaultPreferences returns the default notification settings.
func DefaultPreferences() Preferences {
	return Preferences{
		Title: "Shape Canvas",
		Events: map[Event]EventPreference{
			EventExport: {Template: "Exported %s"},
			EventCopy:   {Template: "Copied %s to clipboard"},
		},
	}
}

// LoadPreferences reads overrides from SHAPECANVAS_NOTIFY_* variables.
func LoadPreferences() Preferences {
	prefs := DefaultPreferences()
	if v := strings.TrimSpace(os.Getenv("SHAPECANVAS_NOTIFY_TITLE")); v != "" {
		prefs.Title = v
	}
	apply := func(key string, event Event) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			prefs.Events[event] = EventPreference{Template: v}
		}
	}
	apply("SHAPECANVAS_NOTIFY_EXPORT_TEXT", EventExport)
	apply("SHAPECANVAS_NOTIFY_COPY_TEXT", EventCopy)
	return prefs
}

// Notifier sends OS-level notifications for enabled events.
type Notifier struct {
	prefs   Preferences
	enabled map[Event]bool
	send    func(title, body string, opts platform.Options) error
	icon    func() string
}

// New creates a new Notifier using the provided preferences. All events start
// disabled.
func New(prefs Preferences) *Notifier {
	cloned := Preferences{Title: prefs.Title, Events: make(map[Event]EventPreference, len(prefs.Events))}
	for k, v := range prefs.Events {
		cloned.Events[k] = v
	}
	return &Notifier{prefs: cloned, enabled: make(map[Event]bool), send: platform.Notify, icon: appIcon}
}

// Enable toggles the notifier for the provided event.
func (n *Notifier) Enable(event Event, enabled bool) {
	if n == nil {
		return
	}
	if n.enabled == nil {
		n.enabled = make(map[Event]bool)
	}
	n.enabled[event] = enabled
}

// Enabled reports whether event will produce a notification.
func (n *Notifier) Enabled(event Event) bool {
	if n == nil || n.enabled == nil {
		return false
	}
	return n.enabled[event]
}

// Export announces a written file. kind is code, png or pdf; PNG files are
// offered to the notification center as the icon.
func (n *Notifier) Export(kind, path string) {
	if !n.Enabled(EventExport) {
		return
	}
	detail := strings.TrimSpace(path)
	opts := platform.Options{}
	if abs, err := filepath.Abs(path); err == nil {
		detail = abs
		if kind == "png" {
			if _, statErr := os.Stat(abs); statErr == nil {
				opts.IconPath = abs
			}
		}
	}
	if opts.IconPath == "" {
		opts.IconPath = n.iconPath()
	}
	n.dispatch(EventExport, fmt.Sprintf("%s %s", describe(kind), detail), opts)
}

// Copy announces a clipboard write. kind is code or image.
func (n *Notifier) Copy(kind string) {
	if !n.Enabled(EventCopy) {
		return
	}
	n.dispatch(EventCopy, describe(kind), platform.Options{IconPath: n.iconPath()})
}

func (n *Notifier) iconPath() string {
	if n.icon == nil {
		return ""
	}
	return n.icon()
}

func appIcon() string {
	path, err := assets.IconPath(64)
	if err != nil {
		log.Printf("notification icon: %v", err)
		return ""
	}
	return path
}

func describe(kind string) string {
	switch kind {
	case "code":
		return "generated code"
	case "png", "image":
		return "drawing image"
	case "pdf":
		return "drawing PDF"
	case "":
		return "drawing"
	}
	return kind
}

func (n *Notifier) dispatch(event Event, detail string, opts platform.Options) {
	template := strings.TrimSpace(n.prefs.Events[event].Template)
	if template == "" {
		return
	}
	body := strings.TrimSpace(fmt.Sprintf(template, strings.TrimSpace(detail)))
	if body == "" {
		return
	}
	if err := n.send(n.prefs.Title, body, opts); err != nil {
		log.Printf("notification %s: %v", event, err)
	}
}
