package membership

import (
	"fmt"

	"github.com/felixgeelhaar/statekit"
)

// Status is the lifecycle state of a client's membership.
type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
	StatusCancelled Status = "cancelled"
)

// IsValid returns true if the status is a recognized lifecycle state.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusSuspended, StatusCancelled:
		return true
	default:
		return false
	}
}

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// Lifecycle events.
const (
	EventSuspend    = "suspend"
	EventReactivate = "reactivate"
	EventCancel     = "cancel"
)

// StatusMachine validates membership lifecycle transitions. Suspension is
// only reachable from active; reactivation applies to any inactive state
// once the debt drops below the plan ceiling; cancellation of an already
// inactive membership is not a transition.
type StatusMachine struct {
	interpreter *statekit.Interpreter[statusContext]
}

type statusContext struct {
	ClientID string
}

// NewStatusMachine builds a machine starting in the given state.
func NewStatusMachine(initial Status, clientID string) (*StatusMachine, error) {
	builder := statekit.NewMachine[statusContext]("membership-status").
		WithInitial(statekit.StateID(initial)).
		WithContext(statusContext{ClientID: clientID})

	builder.State(statekit.StateID(StatusActive)).
		On(EventSuspend).Target(statekit.StateID(StatusSuspended)).
		On(EventCancel).Target(statekit.StateID(StatusCancelled)).
		Done()

	builder.State(statekit.StateID(StatusSuspended)).
		On(EventReactivate).Target(statekit.StateID(StatusActive)).
		Done()

	builder.State(statekit.StateID(StatusCancelled)).
		On(EventReactivate).Target(statekit.StateID(StatusActive)).
		Done()

	machine, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build status machine: %w", err)
	}

	interpreter := statekit.NewInterpreter(machine)
	interpreter.Start()

	return &StatusMachine{interpreter: interpreter}, nil
}

// Transition attempts the given lifecycle event.
func (m *StatusMachine) Transition(event string) error {
	before := m.Current()
	m.interpreter.Send(statekit.Event{Type: statekit.EventType(event)})
	after := m.Current()

	if before != after {
		return nil
	}
	return fmt.Errorf("the action '%s' is not allowed while the membership is '%s'", event, before)
}

// Current returns the machine's current status.
func (m *StatusMachine) Current() Status {
	return Status(m.interpreter.State().Value)
}
