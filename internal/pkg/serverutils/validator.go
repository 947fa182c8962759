package serverutils

import (
	"fmt"

	"jarvis-assistant-be/pkg/apperrors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest checks a DTO against its validate tags and folds failures
// into the validation error class.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	return nil
}
