package platform

import (
	"errors"
	"time"
)

// DefaultAppName identifies the application to the notification service.
const DefaultAppName = "shapecanvas"

// ErrUnsupported is returned where the platform has no notification service.
var ErrUnsupported = errors.New("desktop notifications not supported")

// DefaultTimeout is how long a notification stays visible when the platform
// honours a timeout.
const DefaultTimeout = 5 * time.Second

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// IconPath, when non-empty, points to an image file the notification center
	// should display with the notification if supported by the platform.
	IconPath string
	AppName  string
	Timeout  time.Duration
}

func (o Options) appName() string {
	if o.AppName == "" {
		return DefaultAppName
	}
	return o.AppName
}

func (o Options) timeoutMillis() int32 {
	if o.Timeout <= 0 {
		return int32(DefaultTimeout / time.Millisecond)
	}
	return int32(o.Timeout / time.Millisecond)
}
