// Package lifecycle holds shared timing constants for component startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown and startup probes such as the initial database ping.
const DefaultTimeout = 10 * time.Second
