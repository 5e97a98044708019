package rowan

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // register decoders for the formats tilesets ship in
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
)

// Texture owns a GPU-resident image plus the source path it was decoded
// from. Sprites and tile grids hold non-owning references to a Texture they
// do not manage; a Texture stays valid as long as the scene that created it
// is alive.
type Texture struct {
	path    string
	watcher *FileWatcher
	img     *ebiten.Image
	width   int
	height  int
}

// NewTexture decodes the image file at path, uploads it, and starts
// watching the file for changes.
func NewTexture(path string) (*Texture, error) {
	t := &Texture{
		path:    path,
		watcher: WatchFiles(path),
	}
	img, err := decodeTexture(path)
	if err != nil {
		return nil, err
	}
	t.img = img
	t.width = img.Bounds().Dx()
	t.height = img.Bounds().Dy()
	debugf("texture loaded: %s (%dx%d)", path, t.width, t.height)
	return t, nil
}

// decodeTexture reads the file fresh, decodes the pixels, and uploads them.
// Decode happens entirely before upload, so a malformed file never produces
// a handle.
func decodeTexture(path string) (*ebiten.Image, error) {
	data, err := readSource(path)
	if err != nil {
		return nil, err
	}
	decoded, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("rowan: failed to decode %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(decoded), nil
}

// CheckReload rebuilds the texture if the source file changed on disk.
// On failure the previous image stays bound and the recorded timestamp is
// left untouched, so the next check tries again.
func (t *Texture) CheckReload() bool {
	if !t.watcher.HasChanged() {
		return false
	}

	img, err := decodeTexture(t.path)
	if err != nil {
		errorf("texture reload failed, keeping previous image: %v", err)
		return false
	}

	old := t.img
	t.img = img
	t.width = img.Bounds().Dx()
	t.height = img.Bounds().Dy()
	if old != nil {
		old.Deallocate()
	}
	t.watcher.Refresh()
	debugf("texture reloaded: %s (%dx%d)", t.path, t.width, t.height)
	return true
}

// Image returns the uploaded image handle. Valid until the next successful
// CheckReload swaps it; fetch it each frame rather than caching it.
func (t *Texture) Image() *ebiten.Image {
	return t.img
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int {
	return t.width
}

// Height returns the texture height in pixels.
func (t *Texture) Height() int {
	return t.height
}

// Path returns the watched source file path.
func (t *Texture) Path() string {
	return t.path
}

// Dispose releases the uploaded image. The Texture must not be used after.
func (t *Texture) Dispose() {
	if t.img != nil {
		t.img.Deallocate()
		t.img = nil
	}
}
