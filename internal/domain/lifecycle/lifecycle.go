// Package lifecycle holds shared start/stop settings for long running components.
package lifecycle

import "time"

// DefaultTimeout bounds graceful start and shutdown hooks.
const DefaultTimeout = 10 * time.Second
