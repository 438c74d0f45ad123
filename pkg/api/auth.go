package api

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Username string `json:"username"` // username пользователя
	Password string `json:"password"` // пароль (проверяется только удаленным API)
}

// TokenResponse представляет ответ с токеном доступа.
// Токен непрозрачный: клиент хранит его как есть и никогда не разбирает.
type TokenResponse struct {
	Token string `json:"token"`
}
