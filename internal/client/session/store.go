// Package session owns the client's authentication state: the username
// and the opaque token recorded after a successful login against the
// remote API. "Authenticated" means exactly "a non-empty token is
// stored"; the token is never inspected or re-validated.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/iudanet/storefront/internal/client/storage"
)

// Store persists the session through the client storage layer. User and
// token are always written together on login and removed together on
// logout.
type Store struct {
	storage storage.SessionStorage
}

// New creates a new session store.
func New(sessionStorage storage.SessionStorage) *Store {
	return &Store{storage: sessionStorage}
}

// Login records the authenticated user and the opaque token returned by
// the remote API. The install's client id is carried over from a previous
// session when one exists.
func (s *Store) Login(ctx context.Context, username, token string) error {
	clientID, err := s.ClientID(ctx)
	if err != nil {
		return err
	}

	session := &storage.SessionData{
		Username: username,
		Token:    token,
		ClientID: clientID,
	}
	if err := s.storage.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// Logout removes the persisted session: user and token are cleared
// together. Logging out while not logged in is a no-op.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.storage.DeleteSession(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// IsAuthed reports whether a non-empty token is stored. This is the only
// definition of "authenticated" the client has.
func (s *Store) IsAuthed(ctx context.Context) (bool, error) {
	session, err := s.storage.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return false, nil
		}
		return false, err
	}

	return session.Token != "", nil
}

// Current returns the stored session.
// Returns storage.ErrSessionNotFound when not logged in.
func (s *Store) Current(ctx context.Context) (*storage.SessionData, error) {
	return s.storage.GetSession(ctx)
}

// ClientID возвращает существующий client id или создает новый.
// Идентификатор различает установки клиента (не пользователей) и попадает
// в хранилище вместе с ближайшим login.
func (s *Store) ClientID(ctx context.Context) (string, error) {
	session, err := s.storage.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return uuid.New().String(), nil
		}
		return "", fmt.Errorf("failed to get session: %w", err)
	}

	if session.ClientID != "" {
		return session.ClientID, nil
	}

	// Пустой client id (база ранней версии): создаем новый
	return uuid.New().String(), nil
}
