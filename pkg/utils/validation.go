package utils

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// as mensagens usam o nome do campo no JSON
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	return v
}

// ValidateStruct aplica as tags validate da struct
func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// ValidationMessages converte o erro do validator em mensagens legíveis por campo
func ValidationMessages(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		if err == nil {
			return nil
		}
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		messages = append(messages, getValidationErrorMessage(fieldErr))
	}
	return messages
}

// HasValidationTag indica se alguma regra com a tag informada falhou
func HasValidationTag(err error, tag string) bool {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return false
	}

	for _, fieldErr := range validationErrors {
		if fieldErr.Tag() == tag {
			return true
		}
	}
	return false
}

func getValidationErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required", "required_if":
		return err.Field() + " is required"
	case "email":
		return err.Field() + " must be a valid email"
	case "url":
		return err.Field() + " must be a valid URL"
	case "min":
		return err.Field() + " must be at least " + err.Param() + " characters"
	case "gte":
		return err.Field() + " must be greater than or equal to " + err.Param()
	case "oneof":
		return err.Field() + " must be one of: " + err.Param()
	default:
		return err.Field() + " is invalid"
	}
}
