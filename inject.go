package parallax

// InjectQuit asks the frame loop to stop before the next tick, exactly as if
// the exit key had been pressed.
func (s *Scene) InjectQuit() {
	s.quit = true
}

// QuitPending reports whether a quit has been injected.
func (s *Scene) QuitPending() bool {
	return s.quit
}
