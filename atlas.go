package parallax

import (
	"encoding/json"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// TextureRegion describes a sub-rectangle within the atlas image.
// Value type, immutable once the scene is built.
type TextureRegion struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"w"`
	Height int `yaml:"h"`
}

// Bounds returns the region as an image.Rectangle.
func (r TextureRegion) Bounds() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Empty reports whether the region has no area.
func (r TextureRegion) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Atlas holds the shared source image and its named regions.
type Atlas struct {
	// Image is the backing atlas image. Owned by the Atlas and released by
	// Dispose.
	Image   *ebiten.Image
	regions map[string]TextureRegion
}

// NewAtlas wraps an already-loaded image with a region table. The table is
// copied.
func NewAtlas(img *ebiten.Image, regions map[string]TextureRegion) *Atlas {
	a := &Atlas{Image: img, regions: make(map[string]TextureRegion, len(regions))}
	for name, r := range regions {
		a.regions[name] = r
	}
	return a
}

// Region returns the TextureRegion registered under name.
func (a *Atlas) Region(name string) (TextureRegion, bool) {
	r, ok := a.regions[name]
	return r, ok
}

// SubImage returns the part of the atlas image covered by r.
func (a *Atlas) SubImage(r TextureRegion) *ebiten.Image {
	return a.Image.SubImage(r.Bounds()).(*ebiten.Image)
}

// Dispose releases the atlas image. Safe to call more than once.
func (a *Atlas) Dispose() {
	if a.Image != nil {
		a.Image.Deallocate()
		a.Image = nil
	}
}

// fits reports whether r lies entirely inside the atlas image.
func (a *Atlas) fits(r TextureRegion) bool {
	if a.Image == nil {
		return false
	}
	return r.Bounds().In(a.Image.Bounds())
}

// LoadAtlasImage reads and decodes the image at path. Any failure is reported
// as an *AssetLoadError.
func LoadAtlasImage(path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, &AssetLoadError{Path: path, Err: err}
	}
	return img, nil
}

// --- TexturePacker hash format ---

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame jsonRect `json:"frame"`
}

// ParseRegionsJSON reads a TexturePacker hash-format document
// ({"frames": {"name": {"frame": {x, y, w, h}}}}) into a region table.
// Rotated and trimmed frames are not supported and are read as plain rects.
func ParseRegionsJSON(data []byte) (map[string]TextureRegion, error) {
	var doc struct {
		Frames map[string]jsonFrame `json:"frames"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parallax: failed to parse atlas JSON: %w", err)
	}
	if doc.Frames == nil {
		return nil, fmt.Errorf("parallax: atlas JSON has no \"frames\" key")
	}
	regions := make(map[string]TextureRegion, len(doc.Frames))
	for name, f := range doc.Frames {
		regions[name] = TextureRegion{X: f.Frame.X, Y: f.Frame.Y, Width: f.Frame.W, Height: f.Frame.H}
	}
	return regions, nil
}
