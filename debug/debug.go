// Package debug exposes the runtime debug switch.
package debug

import "os"

// EnvVar enables debug mode when set to "1".
const EnvVar = "PICKERS_DEBUG"

// Enabled returns true if debug mode is active (PICKERS_DEBUG=1).
func Enabled() bool {
	return os.Getenv(EnvVar) == "1"
}
