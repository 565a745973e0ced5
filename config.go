package parallax

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// Defaults used by DefaultConfig and as the starting point for ParseConfig.
const (
	DefaultTitle       = "Glacial Mountains - Parallax Example"
	DefaultFrameWidth  = 768
	DefaultFrameHeight = 432
	DefaultExitKey     = "Escape"
	DefaultAtlasImage  = "rsc/glacial_mountains_textures.png"
)

// Config is the immutable description of a scene: frame geometry, atlas,
// camera and the ordered layer list. It replaces package-level constants so
// several scenes (and tests) can use independent geometries.
type Config struct {
	Title      string        `yaml:"title"`
	Frame      Size          `yaml:"frame"`
	ClearColor Color         `yaml:"clear_color"`
	ExitKey    string        `yaml:"exit_key"`
	Atlas      AtlasConfig   `yaml:"atlas"`
	Camera     CameraConfig  `yaml:"camera"`
	Layers     []LayerConfig `yaml:"layers"`
}

// AtlasConfig locates the atlas image and its regions. Regions listed inline
// override those read from RegionsJSON.
type AtlasConfig struct {
	Image       string                   `yaml:"image"`
	RegionsJSON string                   `yaml:"regions_json"`
	Regions     map[string]TextureRegion `yaml:"regions"`
}

// CameraConfig sets the camera's per-tick scroll speed. With Ramp set the
// camera starts at Ramp.From and eases to ScrollSpeed.
type CameraConfig struct {
	ScrollSpeed float64     `yaml:"scroll_speed"`
	Ramp        *RampConfig `yaml:"ramp"`
}

// RampConfig describes a startup speed ramp.
type RampConfig struct {
	From    float64 `yaml:"from"`
	Seconds float64 `yaml:"seconds"`
	Ease    string  `yaml:"ease"`
}

// LayerConfig describes one layer. Scroll and Overlay are independent and
// both optional.
type LayerConfig struct {
	Name      string         `yaml:"name"`
	Region    string         `yaml:"region"`
	BaselineY float64        `yaml:"baseline_y"`
	Scroll    *ScrollConfig  `yaml:"scroll"`
	Overlay   *OverlayConfig `yaml:"overlay"`
}

// ScrollConfig enables horizontal parallax for a layer.
type ScrollConfig struct {
	SpeedRatio float64 `yaml:"speed_ratio"`
}

// OverlayConfig enables the timed vertical animation for a layer.
// StartY defaults to one frame height off-screen on the entering side.
type OverlayConfig struct {
	VerticalSpeed float64       `yaml:"vertical_speed"`
	StartY        *float64      `yaml:"start_y"`
	EnterDelay    time.Duration `yaml:"enter_delay"`
	Dwell         time.Duration `yaml:"dwell"`
	Hold          bool          `yaml:"hold"`
}

// glacialRegions is the region table of the glacial mountains atlas.
func glacialRegions() map[string]TextureRegion {
	const w, h = 384, 216
	return map[string]TextureRegion{
		"bg_clouds":   {X: 0, Y: 0, Width: w, Height: h},
		"mountains":   {X: 384, Y: 0, Width: w, Height: h},
		"fg_clouds_2": {X: 0, Y: 216, Width: w, Height: h},
		"fg_clouds_1": {X: 384, Y: 216, Width: w, Height: h},
		"credits":     {X: 384, Y: 432, Width: w, Height: h},
	}
}

func baseConfig() Config {
	return Config{
		Title:      DefaultTitle,
		Frame:      Size{Width: DefaultFrameWidth, Height: DefaultFrameHeight},
		ClearColor: DefaultClearColor,
		ExitKey:    DefaultExitKey,
		Atlas:      AtlasConfig{Image: DefaultAtlasImage},
		Camera:     CameraConfig{ScrollSpeed: 4},
	}
}

func scroll(ratio float64) *ScrollConfig { return &ScrollConfig{SpeedRatio: ratio} }

// DefaultConfig returns the glacial mountains scene: four parallax layers and
// a credits banner that cycles in from the bottom and out through the top.
func DefaultConfig() Config {
	cfg := baseConfig()
	cfg.Atlas.Regions = glacialRegions()
	cfg.Layers = []LayerConfig{
		{Name: "bg_clouds", Region: "bg_clouds", Scroll: scroll(0.15)},
		{Name: "mountains", Region: "mountains", Scroll: scroll(0.25)},
		{Name: "credits", Region: "credits", Overlay: &OverlayConfig{
			VerticalSpeed: -2,
			EnterDelay:    2 * time.Second,
			Dwell:         3 * time.Second,
		}},
		{Name: "fg_clouds_2", Region: "fg_clouds_2", Scroll: scroll(0.50)},
		{Name: "fg_clouds_1", Region: "fg_clouds_1", Scroll: scroll(0.75)},
	}
	return cfg
}

// CreditsConfig returns the simpler variant of the scene in which every layer
// scrolls and the credits banner slides up once after two seconds and stays.
func CreditsConfig() Config {
	cfg := DefaultConfig()
	cfg.Layers = []LayerConfig{
		{Name: "bg_clouds", Region: "bg_clouds", Scroll: scroll(0.15)},
		{Name: "mountains", Region: "mountains", Scroll: scroll(0.25)},
		{Name: "credits", Region: "credits", Scroll: scroll(0), Overlay: &OverlayConfig{
			VerticalSpeed: -2,
			EnterDelay:    2 * time.Second,
			Hold:          true,
		}},
		{Name: "fg_clouds_2", Region: "fg_clouds_2", Scroll: scroll(0.50)},
		{Name: "fg_clouds_1", Region: "fg_clouds_1", Scroll: scroll(0.75)},
	}
	return cfg
}

// ParseConfig decodes a YAML scene description on top of the defaults
// (title, 768x432 frame, sky blue clear color, Escape to exit, camera speed
// 4). Unknown keys are rejected. The result is validated.
func ParseConfig(data []byte) (Config, error) {
	cfg := baseConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parallax: failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a YAML scene description from path. Relative atlas paths
// are resolved against the directory containing the file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("parallax: failed to read config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, err
	}
	dir := filepath.Dir(path)
	cfg.Atlas.Image = resolvePath(dir, cfg.Atlas.Image)
	cfg.Atlas.RegionsJSON = resolvePath(dir, cfg.Atlas.RegionsJSON)
	return cfg, nil
}

func resolvePath(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// Validate checks the configuration for values no scene can be built from.
// Region names are checked later against the atlas by NewScene.
func (c *Config) Validate() error {
	if c.Frame.Width <= 0 || c.Frame.Height <= 0 {
		return &ConfigError{Field: "frame", Reason: fmt.Sprintf("size %dx%d is not positive", c.Frame.Width, c.Frame.Height)}
	}
	if _, err := c.exitKey(); err != nil {
		return &ConfigError{Field: "exit_key", Reason: err.Error()}
	}
	if !finite(c.Camera.ScrollSpeed) {
		return &ConfigError{Field: "camera.scroll_speed", Reason: "not a finite number"}
	}
	if r := c.Camera.Ramp; r != nil {
		if r.Seconds < 0 || !finite(r.Seconds) || !finite(r.From) {
			return &ConfigError{Field: "camera.ramp", Reason: "from and seconds must be finite, seconds non-negative"}
		}
		if _, ok := EaseFunc(r.Ease); !ok {
			return &ConfigError{Field: "camera.ramp.ease", Reason: fmt.Sprintf("unknown easing %q", r.Ease)}
		}
	}
	if len(c.Layers) == 0 {
		return &ConfigError{Field: "layers", Reason: "at least one layer is required"}
	}
	for i, l := range c.Layers {
		field := fmt.Sprintf("layers[%d]", i)
		if l.Region == "" {
			return &ConfigError{Field: field + ".region", Reason: "missing region name"}
		}
		if l.Scroll != nil && !finite(l.Scroll.SpeedRatio) {
			return &ConfigError{Field: field + ".scroll.speed_ratio", Reason: "not a finite number"}
		}
		if o := l.Overlay; o != nil {
			if o.VerticalSpeed == 0 || !finite(o.VerticalSpeed) {
				return &ConfigError{Field: field + ".overlay.vertical_speed", Reason: "must be a non-zero finite number"}
			}
			if o.EnterDelay < 0 || o.Dwell < 0 {
				return &ConfigError{Field: field + ".overlay", Reason: "enter_delay and dwell must not be negative"}
			}
		}
	}
	return nil
}

// exitKey resolves ExitKey to an ebiten key using ebiten's own key names.
func (c *Config) exitKey() (ebiten.Key, error) {
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(c.ExitKey)); err != nil {
		return 0, err
	}
	return k, nil
}

// regions merges the RegionsJSON table (if any) with the inline regions.
func (c *Config) regions() (map[string]TextureRegion, error) {
	out := make(map[string]TextureRegion)
	if c.Atlas.RegionsJSON != "" {
		data, err := os.ReadFile(c.Atlas.RegionsJSON)
		if err != nil {
			return nil, &AssetLoadError{Path: c.Atlas.RegionsJSON, Err: err}
		}
		parsed, err := ParseRegionsJSON(data)
		if err != nil {
			return nil, &AssetLoadError{Path: c.Atlas.RegionsJSON, Err: err}
		}
		for name, r := range parsed {
			out[name] = r
		}
	}
	for name, r := range c.Atlas.Regions {
		out[name] = r
	}
	return out, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
