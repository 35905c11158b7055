package config

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	facetErrors "github.com/facetui/facet/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// A font stack is a comma-separated list of non-empty family names.
		_ = v.RegisterValidation("font_stack", func(fl validator.FieldLevel) bool {
			for _, family := range strings.Split(fl.Field().String(), ",") {
				if strings.TrimSpace(family) == "" {
					return false
				}
			}
			return true
		})

		validateInst = v
	})

	return validateInst
}

// Validate performs schema validation on the settings document.
func Validate(settings *Settings) error {
	if settings == nil {
		return facetErrors.NewValidationError("settings", "settings are nil", nil)
	}

	if err := validatorInstance().Struct(settings); err != nil {
		return convertValidationError(err)
	}

	return nil
}

func convertValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrs) == 0 {
		return facetErrors.NewValidationError("settings", err.Error(), err)
	}

	first := validationErrs[0]
	field := strings.ToLower(first.Namespace())
	message := "failed rule " + first.Tag()
	return facetErrors.NewValidationError(field, message, err)
}
