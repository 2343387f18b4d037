package model

import (
	"fmt"

	"github.com/pkg/errors"
)

// StateKind tags the case held by a DisplayState
type StateKind int

const (
	// StateLoading means the fetch has not resolved yet
	StateLoading StateKind = iota

	// StateReady means the character list is available
	StateReady

	// StateError means the fetch failed; only a message is kept
	StateError
)

// ErrIllegalTransition is returned when a transition other than
// Loading→Ready or Loading→Error is attempted.
var ErrIllegalTransition = errors.New("illegal display state transition")

// String returns the string representation of StateKind
func (k StateKind) String() string {
	switch k {
	case StateLoading:
		return "Loading"
	case StateReady:
		return "Ready"
	case StateError:
		return "Error"
	default:
		return "Unknown"
	}
}

// DisplayState is a tagged variant: exactly one of Loading, Ready(list)
// or Error(message) holds. The zero value is Loading.
type DisplayState struct {
	kind       StateKind
	characters []Character
	message    string
}

// Loading returns the initial state
func Loading() DisplayState {
	return DisplayState{kind: StateLoading}
}

// Ready returns the state holding the fetched characters.
// A nil list is normalized to an empty one.
func Ready(characters []Character) DisplayState {
	list := make([]Character, len(characters))
	copy(list, characters)
	return DisplayState{kind: StateReady, characters: list}
}

// Failed returns the error state with a user-facing message
func Failed(message string) DisplayState {
	return DisplayState{kind: StateError, message: message}
}

// Kind returns the case held by the state
func (s DisplayState) Kind() StateKind {
	return s.kind
}

// Characters returns a copy of the list held by a Ready state, nil otherwise
func (s DisplayState) Characters() []Character {
	if s.kind != StateReady {
		return nil
	}
	list := make([]Character, len(s.characters))
	copy(list, s.characters)
	return list
}

// Len returns the number of characters held by a Ready state
func (s DisplayState) Len() int {
	if s.kind != StateReady {
		return 0
	}
	return len(s.characters)
}

// Message returns the message held by an Error state, "" otherwise
func (s DisplayState) Message() string {
	if s.kind != StateError {
		return ""
	}
	return s.message
}

// IsSettled returns true once the state left Loading
func (s DisplayState) IsSettled() bool {
	return s.kind == StateReady || s.kind == StateError
}

// Transition validates a move from s to next and returns next.
// Transitions are one-way: only Loading→Ready and Loading→Error are allowed.
func (s DisplayState) Transition(next DisplayState) (DisplayState, error) {
	if s.kind != StateLoading || !next.IsSettled() {
		return s, errors.Wrap(ErrIllegalTransition, fmt.Sprintf("%s -> %s", s.kind, next.kind))
	}
	return next, nil
}
