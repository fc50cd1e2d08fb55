package auth

import (
	"context"
	"sync"

	"wedump/internal/domain/entity"
	"wedump/internal/util"
)

// SessionState is the provider-side current identity with its change stream.
type SessionState struct {
	mu        sync.RWMutex
	current   *entity.Identity
	listeners *util.Emitter[*entity.Identity]
}

// NewSessionState returns a signed-out state.
func NewSessionState() *SessionState {
	return &SessionState{listeners: util.NewEmitter[*entity.Identity]()}
}

// Current returns a copy of the signed-in identity, or nil.
func (s *SessionState) Current() *entity.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current.Clone()
}

// Set replaces the identity and reports it to every listener, nil meaning signed out.
func (s *SessionState) Set(ctx context.Context, identity *entity.Identity) {
	s.mu.Lock()
	s.current = identity.Clone()
	s.mu.Unlock()

	s.listeners.Emit(ctx, identity.Clone())
}

// OnStateChanged registers fn and returns its disposer.
func (s *SessionState) OnStateChanged(fn func(ctx context.Context, identity *entity.Identity)) func() {
	return s.listeners.Subscribe(fn)
}
