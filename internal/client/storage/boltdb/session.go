package boltdb

import (
	"context"
	"fmt"

	"github.com/iudanet/storefront/internal/client/storage"
)

var sessionKey = []byte("current")

// SaveSession stores the session document
func (s *Storage) SaveSession(ctx context.Context, session *storage.SessionData) error {
	if session == nil {
		return fmt.Errorf("session data is nil")
	}
	return s.saveDocument(bucketSession, sessionKey, session)
}

// GetSession retrieves the stored session document.
// Missing and unreadable documents both map to ErrSessionNotFound: a
// corrupt session degrades to "not logged in", never to a fatal error.
func (s *Storage) GetSession(ctx context.Context) (*storage.SessionData, error) {
	session := &storage.SessionData{}

	found, err := s.loadDocument(bucketSession, sessionKey, session)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, storage.ErrSessionNotFound
	}

	return session, nil
}

// DeleteSession removes the stored session document (logout).
// Deleting an absent session is a no-op.
func (s *Storage) DeleteSession(ctx context.Context) error {
	return s.deleteDocument(bucketSession, sessionKey)
}
