package store

import (
	"sync"

	"github.com/interview-prep/backend/internal/models"
)

// Memory is an in-process SessionStore backed by a mutex-guarded map.
// Operations across different sessions are independent; per-session
// serialization of mutations is the caller's responsibility.
type Memory struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

func NewMemory() *Memory {
	return &Memory{sessions: make(map[string]*models.Session)}
}

func (m *Memory) Get(id string) (*models.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	session, ok := m.sessions[id]
	return session, ok
}

func (m *Memory) Put(session *models.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.ID] = session
}

func (m *Memory) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Len returns the number of stored sessions.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
