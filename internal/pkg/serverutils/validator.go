package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationError carries a user-facing message for a failed request body.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateRequest runs struct tag validation and flattens the field errors
// into a single readable message.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return &ValidationError{Message: "invalid request body"}
	}

	parts := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		parts = append(parts, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
	}
	return &ValidationError{Message: strings.Join(parts, "; ")}
}
