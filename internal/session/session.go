// Package session owns the display state for one application lifetime and
// runs the character fetch exactly once, on mount.
package session

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ytget/character-viewer/internal/fetch"
	"github.com/ytget/character-viewer/internal/model"
)

// Session drives the Loading → Ready | Error transition
type Session struct {
	fetcher        fetch.Fetcher
	failureMessage string
	l              logrus.FieldLogger

	mount sync.Once
	done  chan struct{}

	stateMutex sync.RWMutex
	state      model.DisplayState
	onUpdate   func(model.DisplayState) // callback for UI updates
}

// New creates a session in the Loading state. failureMessage is the fixed,
// localized text shown when the fetch fails.
func New(fetcher fetch.Fetcher, failureMessage string, l logrus.FieldLogger) *Session {
	return &Session{
		fetcher:        fetcher,
		failureMessage: failureMessage,
		l:              l,
		done:           make(chan struct{}),
		state:          model.Loading(),
	}
}

// SetUpdateCallback sets the callback invoked after the state transition.
// It runs on the fetch goroutine.
func (s *Session) SetUpdateCallback(callback func(model.DisplayState)) {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()
	s.onUpdate = callback
}

// State returns the current display state
func (s *Session) State() model.DisplayState {
	s.stateMutex.RLock()
	defer s.stateMutex.RUnlock()
	return s.state
}

// Done is closed once the state has settled
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Mount starts the fetch in the background. Only the first call per session
// has an effect.
func (s *Session) Mount(ctx context.Context) {
	s.mount.Do(func() {
		s.l.Debugf("Mounting session, fetching characters.")
		go s.load(ctx)
	})
}

// load runs the fetch and settles the state
func (s *Session) load(ctx context.Context) {
	characters, err := s.fetcher.FetchCharacters(ctx)
	if err != nil {
		s.l.WithError(err).Errorf("Unable to fetch characters.")
		s.settle(model.Failed(s.failureMessage))
		return
	}

	s.l.Debugf("Loaded [%d] characters.", len(characters))
	s.settle(model.Ready(characters))
}

// settle applies the one-way transition and notifies the listener
func (s *Session) settle(next model.DisplayState) {
	s.stateMutex.Lock()
	state, err := s.state.Transition(next)
	if err != nil {
		s.stateMutex.Unlock()
		s.l.WithError(err).Warnf("Ignoring display state change.")
		return
	}
	s.state = state
	callback := s.onUpdate
	s.stateMutex.Unlock()

	close(s.done)

	if callback != nil {
		callback(state)
	}
}
