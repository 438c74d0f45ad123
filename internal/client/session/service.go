package session

import (
	"context"
	"fmt"

	"github.com/iudanet/storefront/internal/client/api"
	"github.com/iudanet/storefront/internal/validation"
	pkgapi "github.com/iudanet/storefront/pkg/api"
)

// Service предоставляет функции авторизации поверх удаленного API.
// Сервис не проверяет подлинность учетных данных сам: он записывает
// исход внешнего вызова логина.
type Service struct {
	apiClient *api.Client
	store     *Store
}

// NewService создает новый сервис авторизации
func NewService(apiClient *api.Client, store *Store) *Service {
	return &Service{
		apiClient: apiClient,
		store:     store,
	}
}

// LoginResult содержит результат авторизации
type LoginResult struct {
	Username string // username, набранный пользователем
	Token    string // непрозрачный токен, как его вернул сервер
}

// Login выполняет аутентификацию пользователя и сохраняет сессию.
// Любой отказ сервера (4xx) означает неуспешный логин; локальное
// состояние при этом не меняется.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	// Валидация до любого сетевого вызова
	if err := validation.ValidateCredentials(username, password); err != nil {
		return nil, err
	}

	resp, err := s.apiClient.Login(ctx, pkgapi.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	// API возвращает только токен, профиля нет: запоминаем набранный
	// username вместе с токеном
	if err := s.store.Login(ctx, username, resp.Token); err != nil {
		return nil, err
	}

	return &LoginResult{Username: username, Token: resp.Token}, nil
}

// Logout удаляет локальную сессию. Удаленный API не имеет понятия
// сессии, поэтому уведомлять его не о чем.
func (s *Service) Logout(ctx context.Context) error {
	return s.store.Logout(ctx)
}
