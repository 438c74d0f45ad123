package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/iudanet/storefront/internal/models"
	"github.com/iudanet/storefront/pkg/api"
)

// ErrNotFound indicates that the remote API answered 404; for product
// lookups, that the catalog has no product with the requested id. Callers
// distinguish it from transport errors with errors.Is.
var ErrNotFound = errors.New("not found on remote catalog")

// Client представляет HTTP клиент для взаимодействия с каталогом
type Client struct {
	httpClient *http.Client
	baseURL    string
	clientID   string
}

// NewClient создает новый API клиент.
// clientID идентифицирует установку и отправляется в заголовке X-Client-Id.
func NewClient(baseURL, clientID string) *Client {
	return &Client{
		baseURL:  baseURL,
		clientID: clientID,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				return nil
			},
		},
	}
}

// ListProducts возвращает полный список товаров каталога
func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var resp []models.Product
	if err := c.doRequest(ctx, http.MethodGet, "/products", nil, &resp); err != nil {
		return nil, fmt.Errorf("list products request failed: %w", err)
	}
	return resp, nil
}

// GetProduct возвращает один товар по id.
// Возвращает ErrNotFound если каталог не знает такого id.
func (c *Client) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var resp models.Product
	path := "/products/" + url.PathEscape(id)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get product request failed: %w", err)
	}
	return &resp, nil
}

// ListCategories возвращает список названий категорий
func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	var resp []string
	if err := c.doRequest(ctx, http.MethodGet, "/products/categories", nil, &resp); err != nil {
		return nil, fmt.Errorf("list categories request failed: %w", err)
	}
	return resp, nil
}

// CreateProduct отправляет новый товар в каталог.
// Ответ сервера носит характер подтверждения: источником истины для
// созданного товара остается локальное хранилище клиента.
func (c *Client) CreateProduct(ctx context.Context, req api.CreateProductRequest) (*api.CreateProductResponse, error) {
	var resp api.CreateProductResponse
	if err := c.doRequest(ctx, http.MethodPost, "/products", req, &resp); err != nil {
		return nil, fmt.Errorf("create product request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя.
// Любой 4xx ответ означает неуспешный логин.
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.clientID != "" {
		req.Header.Set("X-Client-Id", c.clientID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Error)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
