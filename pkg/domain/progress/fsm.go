package progress

import (
	"fmt"

	"github.com/felixgeelhaar/statekit"
)

// State constants for statekit integration. These must remain untyped string
// constants for statekit.StateID compatibility and are kept in sync with the
// TopicStatus values in status.go.
const (
	StatePending    = "pending"
	StateInProgress = "in_progress"
	StateDone       = "done"
	StateSkipped    = "skipped"
)

func init() {
	stateMap := map[string]TopicStatus{
		StatePending:    StatusPending,
		StateInProgress: StatusInProgress,
		StateDone:       StatusDone,
		StateSkipped:    StatusSkipped,
	}
	for fsmState, status := range stateMap {
		if fsmState != string(status) {
			panic(fmt.Sprintf("FSM state %q does not match TopicStatus %q - constants are out of sync", fsmState, status))
		}
	}
}

// TopicContext carries per-topic state data.
type TopicContext struct {
	TopicID string
}

// TopicStateMachine enforces the valid completion transitions for one topic.
type TopicStateMachine struct {
	interpreter *statekit.Interpreter[TopicContext]
}

// NewTopicStateMachine builds a machine starting in initialState.
func NewTopicStateMachine(initialState string, topicID string) (*TopicStateMachine, error) {
	builder := statekit.NewMachine[TopicContext]("topic-progress").
		WithInitial(statekit.StateID(initialState)).
		WithContext(TopicContext{TopicID: topicID})

	builder.State(StatePending).
		On("start").Target(StateInProgress).
		On("skip").Target(StateSkipped).
		Done()

	builder.State(StateInProgress).
		On("complete").Target(StateDone).
		On("stop").Target(StatePending).
		On("skip").Target(StateSkipped).
		Done()

	builder.State(StateDone).
		On("reopen").Target(StatePending).
		Done()

	builder.State(StateSkipped).
		On("reopen").Target(StatePending).
		Done()

	machine, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build state machine: %w", err)
	}

	interpreter := statekit.NewInterpreter(machine)
	interpreter.Start()

	return &TopicStateMachine{interpreter: interpreter}, nil
}

// Transition attempts to apply an event. If the machine stays in place the
// event was not valid for the current state.
func (sm *TopicStateMachine) Transition(event string) error {
	before := sm.Current()
	sm.interpreter.Send(statekit.Event{Type: statekit.EventType(event)})
	after := sm.Current()

	if before != after {
		return nil
	}
	return fmt.Errorf("the action '%s' is not allowed while the topic is '%s'", event, before)
}

// Current returns the current state id.
func (sm *TopicStateMachine) Current() string {
	return string(sm.interpreter.State().Value)
}

// CurrentStatus returns the current state as a TopicStatus value object.
func (sm *TopicStateMachine) CurrentStatus() TopicStatus {
	return TopicStatus(sm.Current())
}

// CanTransition checks if the given event is valid for the current state.
func (sm *TopicStateMachine) CanTransition(event string) bool {
	return sm.CurrentStatus().CanTransitionWith(event)
}

// ValidEvents returns the valid events for the current state.
func (sm *TopicStateMachine) ValidEvents() []string {
	return sm.CurrentStatus().ValidEvents()
}
