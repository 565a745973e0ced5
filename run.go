package parallax

import "github.com/hajimehoshi/ebiten/v2"

// RunConfig holds window options for Run.
type RunConfig struct {
	// ShowFPS draws the FPS/TPS and layer state readout.
	ShowFPS bool
	// Debug enables Scene debug mode.
	Debug bool
	// Script, when non-nil, drives the scene unattended.
	Script *TestRunner
}

// Run opens a window sized to the scene's frame and runs the frame loop
// until the exit key is pressed, the window is closed or a quit is
// injected. Each presented frame performs exactly one Update and one Draw;
// pacing comes from vsync alone.
//
// Run does not close the scene; the caller owns it.
func Run(scene *Scene, cfg RunConfig) error {
	frame := scene.cfg.Frame
	if frame.Width <= 0 || frame.Height <= 0 {
		return &SurfaceCreationError{Width: frame.Width, Height: frame.Height}
	}

	ebiten.SetWindowTitle(scene.cfg.Title)
	ebiten.SetWindowSize(frame.Width, frame.Height)
	ebiten.SetVsyncEnabled(true)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetWindowClosingHandled(true)

	scene.SetShowHUD(cfg.ShowFPS)
	scene.SetDebugMode(cfg.Debug)
	if cfg.Script != nil {
		scene.SetTestRunner(cfg.Script)
	}

	if err := ebiten.RunGame(&game{scene: scene}); err != nil {
		return &ContextInitError{Err: err}
	}
	return nil
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene *Scene
}

func (g *game) Update() error {
	if g.scene.quitRequested() {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *game) Layout(_, _ int) (int, int) {
	f := g.scene.cfg.Frame
	return f.Width, f.Height
}
