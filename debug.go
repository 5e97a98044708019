package rowan

import "log"

// globalDebug mirrors the most recently set debug flag so that components
// without a Scene pointer can check it cheaply. Only valid with a single
// Scene; multiple Scenes with differing debug modes will reflect whichever
// called SetDebugMode last.
var globalDebug bool

// SetDebugMode enables or disables verbose logging: location enter/exit
// messages, successful resource builds, and dropped transition requests.
// Reload failures are always logged regardless of this flag.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// debugf logs a diagnostic only when debug mode is enabled.
func debugf(format string, args ...any) {
	if globalDebug {
		log.Printf("rowan: "+format, args...)
	}
}

// errorf logs a diagnostic unconditionally. Used for reload and build
// failures, which are recovered locally and never surfaced to callers.
func errorf(format string, args ...any) {
	log.Printf("rowan: "+format, args...)
}
