// Package lifecycle holds process-wide lifecycle settings shared by fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every start and stop hook.
const DefaultTimeout = 15 * time.Second
