package storage

import "context"

// SessionData represents the persisted session document.
//
// Invariant: Username and Token are set together on login and cleared
// together on logout. ClientID identifies the install (not the user); it
// is generated when absent and persisted with the next login.
type SessionData struct {
	Username string `json:"username"`
	Token    string `json:"token"`
	ClientID string `json:"client_id"`
}

// SessionStorage defines interface for storing session data on client
type SessionStorage interface {
	// SaveSession stores the session document, replacing any previous one
	SaveSession(ctx context.Context, session *SessionData) error

	// GetSession retrieves the stored session document.
	// Returns ErrSessionNotFound if no session exists or the stored
	// document is unreadable.
	GetSession(ctx context.Context) (*SessionData, error)

	// DeleteSession removes the stored session document (logout).
	// Deleting an absent session is not an error.
	DeleteSession(ctx context.Context) error
}
