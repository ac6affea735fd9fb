package dto

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate проверяет теги `validate` у запроса.
func Validate(v any) error {
	return validate.Struct(v)
}

// ValidationFields раскладывает ошибку валидатора в поле -> тег для ответа клиенту.
func ValidationFields(err error) map[string]string {
	fields := make(map[string]string)

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fields[strings.ToLower(fe.Field())] = fe.Tag()
		}
	}
	return fields
}

type ErrorResponse struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func NewValidationError(err error) ErrorResponse {
	return ErrorResponse{
		Message: "invalid request",
		Fields:  ValidationFields(err),
	}
}
