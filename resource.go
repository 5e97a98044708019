package rowan

import (
	"fmt"
	"os"
)

// Reloadable is a resource whose backing data can be rebuilt from disk while
// the process runs. Shader and Texture implement it; the Scene polls every
// tracked Reloadable once per frame, before anything renders.
type Reloadable interface {
	// CheckReload rebuilds the resource if any of its source files changed
	// on disk since the last check. It reports whether a reload happened.
	// Every failure mode is non-fatal: the previous resource stays bound
	// and usable, and diagnostics go to the log, not the return value.
	CheckReload() bool
}

// readSource reads one source file and rejects empty content. An empty
// shader or image file is always a half-written save, never a valid input.
func readSource(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rowan: failed to read %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("rowan: %s is empty", path)
	}
	return data, nil
}
