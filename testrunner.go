package marquee

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// testStep represents a single action in a gesture script.
type testStep struct {
	Action string  `yaml:"action"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	DX     float64 `yaml:"dx,omitempty"`
	DY     float64 `yaml:"dy,omitempty"`
	FromX  float64 `yaml:"fromX,omitempty"`
	FromY  float64 `yaml:"fromY,omitempty"`
	ToX    float64 `yaml:"toX,omitempty"`
	ToY    float64 `yaml:"toY,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
}

// testScript is the top-level structure for a gesture script.
type testScript struct {
	Steps []testStep `yaml:"steps"`
}

var validActions = map[string]bool{
	"press": true, "move": true, "release": true,
	"wheel": true, "drag": true, "wait": true,
}

// TestRunner sequences injected pointer input across frames for automated
// demos and visual checks. Attach to a Document via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a YAML (or JSON) gesture script and returns a
// TestRunner ready to be attached to a Document.
//
//	steps:
//	  - {action: press, x: 10, y: 10}
//	  - {action: move, x: 120, y: 90}
//	  - {action: wait, frames: 30}
//	  - {action: release, x: 120, y: 90}
func LoadTestScript(data []byte) (*TestRunner, error) {
	var script testScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !validActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the document. The runner's step
// method is called from Document.Update before timers fire each frame.
func (d *Document) SetTestRunner(runner *TestRunner) {
	d.testRunner = runner
}

// Done reports whether all steps in the script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *TestRunner) step(d *Document) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(d.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		d.InjectPress(st.X, st.Y)
	case "move":
		d.InjectMove(st.X, st.Y)
	case "release":
		d.InjectRelease(st.X, st.Y)
	case "wheel":
		d.InjectWheel(st.X, st.Y, st.DX, st.DY)
	case "drag":
		d.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(d.injectQueue) == 0 {
		r.done = true
	}
}
