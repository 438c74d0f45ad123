package validation

import (
	"fmt"
	"strconv"
	"strings"
)

// ProductForm содержит поля формы создания товара до какой-либо обработки.
// Price хранится строкой: валидация сама разбирает пользовательский ввод.
type ProductForm struct {
	Title       string
	Description string
	Price       string
	Category    string
	Image       string
}

// ValidateProductForm проверяет поля формы создания товара.
// Валидация выполняется полностью до любого сетевого вызова: при ошибке
// запрос к API не отправляется вообще.
func ValidateProductForm(form ProductForm) (float64, error) {
	if strings.TrimSpace(form.Title) == "" {
		return 0, fmt.Errorf("title is required")
	}
	if strings.TrimSpace(form.Description) == "" {
		return 0, fmt.Errorf("description is required")
	}
	if strings.TrimSpace(form.Price) == "" {
		return 0, fmt.Errorf("price is required")
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(form.Price), 64)
	if err != nil || price <= 0 {
		return 0, fmt.Errorf("price must be a positive number")
	}

	if form.Category == "" {
		return 0, fmt.Errorf("category is required")
	}
	if strings.TrimSpace(form.Image) == "" {
		return 0, fmt.Errorf("image URL is required")
	}

	return price, nil
}

// ValidateCredentials проверяет, что имя пользователя и пароль не пустые.
// Подлинность учетных данных проверяет только удаленный API.
func ValidateCredentials(username, password string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("username is required")
	}
	if strings.TrimSpace(password) == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}
