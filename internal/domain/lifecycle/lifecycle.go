// Package lifecycle holds shared constants for component startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup/shutdown of long-lived components
// (HTTP server drain, database pool close).
const DefaultTimeout = 10 * time.Second
