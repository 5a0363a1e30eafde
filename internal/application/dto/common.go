package dto

import "github.com/go-playground/validator/v10"

// validate instancia compartida; los tags viven en los structs de request.
var validate = validator.New()

// Validate valida un request contra sus tags. Retorna el error crudo del
// validador; los casos de uso lo traducen a domain.ErrInvalidInput.
func Validate(s any) error {
	return validate.Struct(s)
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse ack simple con mensaje humano.
type MessageResponse struct {
	Message string `json:"message"`
}
