package parallax

import "fmt"

// AssetLoadError reports that the atlas image could not be read or decoded.
// Err carries the backend diagnostic.
type AssetLoadError struct {
	Path string
	Err  error
}

func (e *AssetLoadError) Error() string {
	return fmt.Sprintf("parallax: failed to load asset %s: %v", e.Path, e.Err)
}

func (e *AssetLoadError) Unwrap() error { return e.Err }

// ContextInitError reports that the window or graphics loop failed to start.
type ContextInitError struct {
	Err error
}

func (e *ContextInitError) Error() string {
	return fmt.Sprintf("parallax: graphics context: %v", e.Err)
}

func (e *ContextInitError) Unwrap() error { return e.Err }

// SurfaceCreationError reports that no drawable surface of the requested
// size could be created.
type SurfaceCreationError struct {
	Width, Height int
}

func (e *SurfaceCreationError) Error() string {
	return fmt.Sprintf("parallax: cannot create %dx%d surface", e.Width, e.Height)
}

// ConfigError reports an invalid scene configuration. Field names the
// offending entry, for example "layers[2].overlay.vertical_speed".
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("parallax: invalid config %s: %s", e.Field, e.Reason)
}
