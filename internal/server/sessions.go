package server

import (
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/care-finder/internal/intake"
)

// session pairs a conversation with the mutex that serializes its events.
// A Conversation accepts one user event at a time; concurrent requests for
// the same id must queue, not interleave.
type session struct {
	mu   sync.Mutex
	conv *intake.Conversation
}

// advance feeds one answer to the conversation and reports the resulting
// step, as a single atomic event.
func (s *session) advance(answer string) (intake.Turn, intake.Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	turn, err := s.conv.Advance(answer)
	return turn, s.conv.Step(), err
}

// sessionRegistry holds active intake sessions keyed by session id.
// Sessions live in memory only; a restart drops them.
type sessionRegistry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*session
}

func newSessionRegistry() *sessionRegistry {
	return &sessionRegistry{
		sessions: make(map[uuid.UUID]*session),
	}
}

func (r *sessionRegistry) create(conv *intake.Conversation) uuid.UUID {
	id := uuid.New()
	r.mu.Lock()
	r.sessions[id] = &session{conv: conv}
	r.mu.Unlock()
	return id
}

func (r *sessionRegistry) get(id uuid.UUID) (*session, bool) {
	r.mu.RLock()
	sess, ok := r.sessions[id]
	r.mu.RUnlock()
	return sess, ok
}

func (r *sessionRegistry) delete(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return false
	}
	delete(r.sessions, id)
	return true
}

func (r *sessionRegistry) len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
