package parallax

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the top-level object: the shared atlas, one camera and a fixed
// list of layers painted back to front. Layers are never added or removed
// after construction.
type Scene struct {
	cfg     Config
	atlas   *Atlas
	layers  []*Layer
	camera  *Camera
	clock   Clock
	exitKey ebiten.Key

	lastTick time.Duration
	ticks    uint64

	drawOp ebiten.DrawImageOptions
	tiles  []Rect

	debug   bool
	showHUD bool
	stats   debugStats

	// ScreenshotDir is where Screenshot writes PNG files. Defaults to
	// "screenshots".
	ScreenshotDir   string
	screenshotQueue []string
	testRunner      *TestRunner
	quit            bool
}

// NewScene builds a scene from cfg over an already-loaded atlas. The scene
// takes ownership of the atlas and releases it in Close. A nil clock uses
// the system monotonic clock.
func NewScene(cfg Config, atlas *Atlas, clock Clock) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if atlas == nil || atlas.Image == nil {
		return nil, &ConfigError{Field: "atlas", Reason: "no atlas image"}
	}
	if clock == nil {
		clock = NewSystemClock()
	}
	key, _ := cfg.exitKey()
	now := clock.Now()

	s := &Scene{
		cfg:           cfg,
		atlas:         atlas,
		clock:         clock,
		exitKey:       key,
		lastTick:      now,
		layers:        make([]*Layer, 0, len(cfg.Layers)),
		tiles:         make([]Rect, 0, tileCount),
		ScreenshotDir: "screenshots",
	}
	s.camera = newSceneCamera(cfg.Camera)

	for i, lc := range cfg.Layers {
		region, ok := atlas.Region(lc.Region)
		if !ok {
			return nil, &ConfigError{Field: fmt.Sprintf("layers[%d].region", i), Reason: fmt.Sprintf("unknown region %q", lc.Region)}
		}
		if region.Empty() || !atlas.fits(region) {
			return nil, &ConfigError{Field: fmt.Sprintf("layers[%d].region", i), Reason: fmt.Sprintf("region %q is empty or outside the atlas image", lc.Region)}
		}
		s.layers = append(s.layers, newLayer(lc, region, float64(cfg.Frame.Height), now))
	}
	return s, nil
}

func newSceneCamera(cc CameraConfig) *Camera {
	cam := NewCamera(cc.ScrollSpeed)
	if r := cc.Ramp; r != nil {
		fn, _ := EaseFunc(r.Ease)
		cam.ScrollSpeed = r.From
		cam.RampTo(cc.ScrollSpeed, float32(r.Seconds), fn)
	}
	return cam
}

func newLayer(lc LayerConfig, region TextureRegion, frameHeight float64, now time.Duration) *Layer {
	l := &Layer{
		Name:      lc.Name,
		Region:    region,
		BaselineY: lc.BaselineY,
	}
	if l.Name == "" {
		l.Name = lc.Region
	}
	if lc.Scroll != nil {
		l.Scroll = &ScrollState{SpeedRatio: lc.Scroll.SpeedRatio}
	}
	if oc := lc.Overlay; oc != nil {
		o := NewOverlay(oc.VerticalSpeed, 0, oc.EnterDelay, oc.Dwell, now)
		o.Hold = oc.Hold
		if oc.StartY != nil {
			o.Y = *oc.StartY
		} else {
			o.Y = o.restY(frameHeight)
		}
		l.Overlay = o
	}
	return l
}

// LoadScene loads the atlas image and region table named by cfg and builds
// the scene with the system clock. If scene construction fails after the
// image was loaded, the image is released before returning.
func LoadScene(cfg Config) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	regions, err := cfg.regions()
	if err != nil {
		return nil, err
	}
	img, err := LoadAtlasImage(cfg.Atlas.Image)
	if err != nil {
		return nil, err
	}
	atlas := NewAtlas(img, regions)
	s, err := NewScene(cfg, atlas, nil)
	if err != nil {
		atlas.Dispose()
		return nil, err
	}
	return s, nil
}

// Close releases the atlas image. The scene must not be drawn afterwards.
func (s *Scene) Close() {
	s.atlas.Dispose()
}

// Config returns the configuration the scene was built from.
func (s *Scene) Config() Config {
	return s.cfg
}

// Camera returns the scene's camera.
func (s *Scene) Camera() *Camera {
	return s.camera
}

// Layers returns the layers in paint order. The returned slice MUST NOT be
// mutated.
func (s *Scene) Layers() []*Layer {
	return s.layers
}

// Layer returns the first layer with the given name, or nil.
func (s *Scene) Layer(name string) *Layer {
	for _, l := range s.layers {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// Ticks returns the number of completed Update calls.
func (s *Scene) Ticks() uint64 {
	return s.ticks
}

// SetDebugMode enables or disables debug mode. When enabled, overlay phase
// changes are logged and per-frame timing stats are printed to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// SetShowHUD toggles the on-screen FPS and layer state readout.
func (s *Scene) SetShowHUD(enabled bool) {
	s.showHUD = enabled
}

// Update advances the scene by one tick: the camera first, then every layer.
// Layers do not depend on each other.
func (s *Scene) Update() {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	now := s.clock.Now()
	dt := now - s.lastTick
	s.lastTick = now

	s.camera.update(float32(dt.Seconds()))
	for _, l := range s.layers {
		if l.update(s.camera, s.cfg.Frame, now) && s.debug {
			log.Printf("parallax: layer %q overlay entered %s at y=%.1f", l.Name, l.Overlay.Phase(), l.Overlay.Y)
		}
	}
	s.ticks++

	if s.testRunner != nil {
		s.testRunner.step(s)
	}

	if s.debug {
		s.stats.updateTime = time.Since(t0)
	}
}

// Draw clears the frame and paints every layer in order, later layers
// covering earlier ones.
func (s *Scene) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.stats.drawCalls = s.paint(screen)

	if s.showHUD {
		s.drawHUD(screen)
	}
	if s.debug {
		s.stats.drawTime = time.Since(t0)
		s.debugLog(s.stats)
	}
	s.flushScreenshots(screen)
}

// drawTarget is the part of *ebiten.Image that paint writes to.
type drawTarget interface {
	Fill(clr color.Color)
	DrawImage(img *ebiten.Image, options *ebiten.DrawImageOptions)
}

// paint fills dst with the clear color and draws every layer's tiles back
// to front, each region stretched to the frame size. Returns the number of
// DrawImage calls.
func (s *Scene) paint(dst drawTarget) int {
	dst.Fill(s.cfg.ClearColor.toRGBA())

	drawCalls := 0
	fw, fh := float64(s.cfg.Frame.Width), float64(s.cfg.Frame.Height)
	for _, l := range s.layers {
		src := s.atlas.SubImage(l.Region)
		sx := fw / float64(l.Region.Width)
		sy := fh / float64(l.Region.Height)

		s.tiles = l.appendTiles(s.tiles[:0], s.cfg.Frame)
		for _, t := range s.tiles {
			s.drawOp.GeoM.Reset()
			s.drawOp.GeoM.Scale(sx, sy)
			s.drawOp.GeoM.Translate(math.Floor(t.X), math.Floor(t.Y))
			dst.DrawImage(src, &s.drawOp)
			drawCalls++
		}
	}
	return drawCalls
}
