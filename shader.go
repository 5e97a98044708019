package rowan

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Shader owns a compiled Kage shader plus the source paths it was built
// from. A shader is built from one or two source files; with two, the first
// is a shared prelude (uniform declarations, helper functions) and the
// second the main body, concatenated in order before compilation.
//
// The handle returned by Kage is always either nil (construction failed) or
// a fully compiled, immediately usable shader. CheckReload never exposes a
// partially built state: the new shader is compiled completely before the
// swap, and the old one is deallocated only after.
type Shader struct {
	paths   []string
	watcher *FileWatcher
	shader  *ebiten.Shader
}

// NewShader compiles a Kage shader from the given source files and starts
// watching them for changes. At least one path is required.
func NewShader(paths ...string) (*Shader, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("rowan: shader needs at least one source path")
	}
	s := &Shader{
		paths:   paths,
		watcher: WatchFiles(paths...),
	}
	compiled, err := compileShader(paths)
	if err != nil {
		return nil, err
	}
	s.shader = compiled
	debugf("shader compiled from %v", paths)
	return s, nil
}

// compileShader reads every source file fresh and compiles the concatenated
// result. It either returns a complete shader or an error; no partial state
// escapes.
func compileShader(paths []string) (*ebiten.Shader, error) {
	sources := make([][]byte, len(paths))
	for i, path := range paths {
		data, err := readSource(path)
		if err != nil {
			return nil, err
		}
		sources[i] = data
	}

	src := bytes.Join(sources, []byte("\n"))
	compiled, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("rowan: shader compilation failed (%v): %w", paths, err)
	}
	return compiled, nil
}

// CheckReload rebuilds the shader if any source file changed on disk.
// On failure the previous shader stays bound and the recorded timestamps
// are left untouched, so the next check tries again.
func (s *Shader) CheckReload() bool {
	if !s.watcher.HasChanged() {
		return false
	}

	compiled, err := compileShader(s.paths)
	if err != nil {
		errorf("shader reload failed, keeping previous program: %v", err)
		return false
	}

	// Swap first, release after: the handle is valid at every instant.
	old := s.shader
	s.shader = compiled
	if old != nil {
		old.Deallocate()
	}
	s.watcher.Refresh()
	debugf("shader reloaded from %v", s.paths)
	return true
}

// Kage returns the compiled shader handle for use with
// ebiten.DrawRectShaderOptions and friends. Valid until the next successful
// CheckReload swaps it; fetch it each frame rather than caching it.
func (s *Shader) Kage() *ebiten.Shader {
	return s.shader
}

// Paths returns the watched source file paths.
func (s *Shader) Paths() []string {
	return s.paths
}

// Dispose releases the compiled shader. The Shader must not be used after.
func (s *Shader) Dispose() {
	if s.shader != nil {
		s.shader.Deallocate()
		s.shader = nil
	}
}
