// Package lifecycle holds shared startup and shutdown settings.
package lifecycle

import "time"

// DefaultTimeout bounds startup checks and graceful shutdown of servers and clients.
const DefaultTimeout = 10 * time.Second
