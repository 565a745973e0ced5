package parallax

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// quitRequested reports whether the frame loop should stop. Only three
// inputs are consumed: the configured exit key, a window close request and
// a quit queued through InjectQuit or a test script. Everything else is
// ignored.
func (s *Scene) quitRequested() bool {
	if s.quit {
		return true
	}
	if inpututil.IsKeyJustPressed(s.exitKey) {
		return true
	}
	return ebiten.IsWindowBeingClosed()
}

// ExitKey returns the key that ends the frame loop.
func (s *Scene) ExitKey() ebiten.Key {
	return s.exitKey
}
