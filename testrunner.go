package parallax

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep is one entry of a run script as written in the file.
type scriptStep struct {
	Action string `yaml:"action"`
	Label  string `yaml:"label,omitempty"`
	Frames int    `yaml:"frames,omitempty"`
}

type script struct {
	Steps []scriptStep `yaml:"steps"`
}

type scriptAction uint8

const (
	actionWait scriptAction = iota
	actionScreenshot
	actionQuit
)

var scriptActions = map[string]scriptAction{
	"wait":       actionWait,
	"screenshot": actionScreenshot,
	"quit":       actionQuit,
}

// runnerStep is a validated script entry.
type runnerStep struct {
	action scriptAction
	label  string
	frames int
}

// TestRunner plays a scripted sequence of waits, screenshots and a final
// quit across frames, for unattended visual checks of a scene. Attach it
// with SetTestRunner.
//
// Scripts are YAML (JSON is accepted too):
//
//	steps:
//	  - {action: wait, frames: 120}
//	  - {action: screenshot, label: credits-in}
//	  - {action: quit}
type TestRunner struct {
	queue []runnerStep
	// idle is the number of ticks left in the current wait.
	idle int
}

// LoadTestScript parses a run script and returns a TestRunner ready to be
// attached to a Scene.
func LoadTestScript(data []byte) (*TestRunner, error) {
	var sc script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	queue := make([]runnerStep, len(sc.Steps))
	for i, st := range sc.Steps {
		a, ok := scriptActions[st.Action]
		if !ok {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
		queue[i] = runnerStep{action: a, label: st.Label, frames: st.Frames}
	}
	return &TestRunner{queue: queue}, nil
}

// SetTestRunner attaches a TestRunner to the scene. It runs once at the end
// of every Scene.Update.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether the script has run to completion.
func (r *TestRunner) Done() bool {
	return len(r.queue) == 0 && r.idle == 0
}

// step consumes one tick: either one tick of the current wait or the next
// queued step. A wait of N frames occupies the tick that starts it plus N-1
// more.
func (r *TestRunner) step(s *Scene) {
	if r.idle > 0 {
		r.idle--
		return
	}
	if len(r.queue) == 0 {
		return
	}
	next := r.queue[0]
	r.queue = r.queue[1:]

	switch next.action {
	case actionWait:
		r.idle = max(next.frames-1, 0)
	case actionScreenshot:
		s.Screenshot(next.label)
	case actionQuit:
		s.InjectQuit()
	}
}
