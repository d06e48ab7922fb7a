package dto

// PaginatedResponse envelope estándar de listados: items + total de filas
// que cumplen el filtro (antes de paginar) + página 1-indexada + tamaño.
type PaginatedResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Size  int `json:"size"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse cuerpo de respuesta con solo un mensaje.
type MessageResponse struct {
	Message string `json:"message"`
}
