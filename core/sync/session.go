package sync

import (
	gosync "sync"

	"github.com/google/uuid"
)

// Session is the caller-owned context for reconciliation passes. It holds
// the outstanding import errors per entity identity and the in-flight set.
// Safe for concurrent passes over different identities; running two passes
// for the same identity at once is a caller error.
type Session struct {
	id string

	mu       gosync.Mutex
	errors   map[string][]*ImportError
	inFlight map[string]bool
}

// NewSession returns an empty session with a fresh identifier.
func NewSession() *Session {
	return &Session{
		id:       uuid.NewString(),
		errors:   make(map[string][]*ImportError),
		inFlight: make(map[string]bool),
	}
}

// ID returns the session identifier, used for log correlation.
func (s *Session) ID() string {
	return s.id
}

// IsImporting reports whether a pass for the identity is currently running.
func (s *Session) IsImporting(identity string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight[identity]
}

// Errors returns a copy of the outstanding errors for the identity without
// clearing them.
func (s *Session) Errors(identity string) []*ImportError {
	s.mu.Lock()
	defer s.mu.Unlock()
	errs := s.errors[identity]
	out := make([]*ImportError, len(errs))
	copy(out, errs)
	return out
}

// Drain returns the outstanding errors for the identity and resets them.
// Callers must drain after an import completes to discover partial
// failures; a pass with zero successes still resolves successfully.
func (s *Session) Drain(identity string) []*ImportError {
	s.mu.Lock()
	defer s.mu.Unlock()
	errs := s.errors[identity]
	delete(s.errors, identity)
	return errs
}

// DrainAll returns and resets the outstanding errors for every identity.
func (s *Session) DrainAll() map[string][]*ImportError {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.errors
	s.errors = make(map[string][]*ImportError)
	return out
}

func (s *Session) setInFlight(identity string, importing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight[identity] = importing
}

// appendErrors adds a pass's local error list to the aggregator. Additive:
// errors from earlier passes for the same identity are kept until drained.
func (s *Session) appendErrors(identity string, errs []*ImportError) {
	if len(errs) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors[identity] = append(s.errors[identity], errs...)
}
