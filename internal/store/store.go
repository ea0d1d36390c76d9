// Package store provides session persistence behind a storage-agnostic interface.
package store

import "github.com/interview-prep/backend/internal/models"

// SessionStore persists interview sessions. The in-memory implementation keeps
// sessions for the lifetime of the process; the interface exists so a
// persistent backend can be swapped in without touching the core.
type SessionStore interface {
	// Get retrieves a session by id. The second return value reports whether
	// the session exists.
	Get(id string) (*models.Session, bool)

	// Put inserts or replaces a session.
	Put(session *models.Session)

	// Delete removes a session. Deleting a missing session is a no-op.
	Delete(id string)
}
