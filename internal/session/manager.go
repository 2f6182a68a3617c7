package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/pixil98/go-oceania/internal/telemetry"
)

// Manager is the registry of live sessions and the broadcast fan-out. Each
// delivery goes through Session.Send, so one slow client never blocks the
// rest.
type Manager struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	metrics  *telemetry.Metrics
}

func NewManager(metrics *telemetry.Metrics) *Manager {
	return &Manager{
		sessions: map[uuid.UUID]*Session{},
		metrics:  metrics,
	}
}

// Add registers a session, replacing any session already bound to the same
// identity. The replaced session is closed; its connection belongs to a
// client that has since reconnected.
func (m *Manager) Add(s *Session) {
	m.mu.Lock()
	old := m.sessions[s.id]
	m.sessions[s.id] = s
	count := len(m.sessions)
	m.mu.Unlock()

	if old != nil {
		old.replaced.Store(true)
		old.close()
	}
	m.metrics.Sessions.Set(float64(count))
}

// Remove drops a session from the registry if it is still the one bound to
// its identity.
func (m *Manager) Remove(s *Session) {
	m.mu.Lock()
	if m.sessions[s.id] == s {
		delete(m.sessions, s.id)
	}
	count := len(m.sessions)
	m.mu.Unlock()

	m.metrics.Sessions.Set(float64(count))
}

// SendTo queues an encoded event for the session bound to an identity. It
// reports whether such a session exists. Deliveries share the session's
// outbound queue with broadcasts, so a SendTo followed by a Broadcast
// reaches the client in that order.
func (m *Manager) SendTo(id uuid.UUID, payload []byte) bool {
	m.mu.RLock()
	s := m.sessions[id]
	m.mu.RUnlock()

	if s == nil {
		return false
	}
	s.Send(payload)
	return true
}

// Count returns the number of registered sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Broadcast fans an encoded event out to every session.
func (m *Manager) Broadcast(payload []byte) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, s := range m.sessions {
		s.Send(payload)
	}
}

// BroadcastExcept fans an encoded event out to every session but one.
func (m *Manager) BroadcastExcept(id uuid.UUID, payload []byte) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for sid, s := range m.sessions {
		if sid == id {
			continue
		}
		s.Send(payload)
	}
}
