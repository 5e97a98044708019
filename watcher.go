package rowan

import (
	"os"
	"time"
)

// FileWatcher tracks one or more file paths and their last-observed
// modification timestamps. It answers "has anything changed" on demand;
// nothing polls in the background.
//
// Change detection compares timestamps for equality, not ordering, so a file
// restored from backup (older mtime) still counts as changed. Timestamp
// resolution is filesystem-dependent.
type FileWatcher struct {
	paths    []string
	modTimes []time.Time
}

// WatchFiles creates a watcher over the given paths, recording each file's
// current modification time. A path that cannot be stat'd records the zero
// time, so the watcher reports a change as soon as the file appears.
func WatchFiles(paths ...string) *FileWatcher {
	w := &FileWatcher{
		paths:    make([]string, len(paths)),
		modTimes: make([]time.Time, len(paths)),
	}
	copy(w.paths, paths)
	for i, path := range paths {
		w.modTimes[i] = modTime(path)
	}
	return w
}

// modTime returns the file's modification time, or the zero time if the
// file cannot be stat'd.
func modTime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}

// HasChanged reports whether any tracked file's modification time differs
// from the last recorded value. It never mutates the recorded timestamps;
// call Refresh after a successful rebuild to accept the new state.
func (w *FileWatcher) HasChanged() bool {
	for i, path := range w.paths {
		if !modTime(path).Equal(w.modTimes[i]) {
			return true
		}
	}
	return false
}

// Refresh re-stats every tracked file and records the current modification
// times. Called by the owning resource only after a rebuild succeeds, so a
// failed reload keeps reporting HasChanged until the file is fixed.
func (w *FileWatcher) Refresh() {
	for i, path := range w.paths {
		w.modTimes[i] = modTime(path)
	}
}

// Paths returns the watched file paths. The returned slice MUST NOT be
// mutated.
func (w *FileWatcher) Paths() []string {
	return w.paths
}
