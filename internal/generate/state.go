package generate

// State is the generate flow state
type State int

const (
	StateIdle State = iota
	StateGenerating
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateGenerating:
		return "generating"
	default:
		return "unknown"
	}
}

// Machine tracks the generate flow. The zero value is Idle.
//
// Machine is a value type so it can live inside Bubble Tea models:
// transitions return the new machine instead of mutating the receiver.
type Machine struct {
	state State
	run   int // incremented on every Start
}

// State returns the current state
func (m Machine) State() State {
	return m.state
}

// Generating reports whether a run is active
func (m Machine) Generating() bool {
	return m.state == StateGenerating
}

// Run returns the id of the most recent run. Completions carrying an
// older id belong to a cancelled run and should be ignored.
func (m Machine) Run() int {
	return m.run
}

// Start moves Idle to Generating and allocates a new run id.
// It fails with ErrAlreadyGenerating while a run is active.
func (m Machine) Start() (Machine, error) {
	if m.state == StateGenerating {
		return m, ErrAlreadyGenerating
	}
	m.state = StateGenerating
	m.run++
	return m, nil
}

// Finish moves back to Idle. It is unconditional: success, failure and
// cancellation all end the run.
func (m Machine) Finish() Machine {
	m.state = StateIdle
	return m
}

// Current reports whether run is the active run.
func (m Machine) Current(run int) bool {
	return m.state == StateGenerating && run == m.run
}
