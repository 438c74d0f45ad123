package api

// CreateProductRequest представляет тело запроса POST /products
type CreateProductRequest struct {
	Title       string  `json:"title"`       // название товара
	Description string  `json:"description"` // описание
	Category    string  `json:"category"`    // категория (одна из GET /products/categories)
	Image       string  `json:"image"`       // URL изображения
	Price       float64 `json:"price"`       // цена, строго положительная
}

// CreateProductResponse представляет ответ сервера на создание товара.
// Содержимое носит характер подтверждения: клиент синтезирует собственную
// локальную копию товара и не использует этот ответ как источник истины.
type CreateProductResponse struct {
	ID    any    `json:"id,omitempty"`
	Title string `json:"title,omitempty"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
