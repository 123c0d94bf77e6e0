package web

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// getValidator returns the shared validator instance. Field names in
// error messages come from the json tag, not the Go field name.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// validateStruct runs struct tag validation and returns a map of field
// name to human-readable message, or nil when the value is valid.
func validateStruct(v any) map[string]string {
	err := getValidator().Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = translateError(fe)
	}
	return fields
}

// translateError converts a validator.FieldError to a readable message.
func translateError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "min":
		return fmt.Sprintf("must have at least %s items", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters or items", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be %s or greater", fe.Param())
	case "lte":
		return fmt.Sprintf("must be %s or less", fe.Param())
	case "datetime":
		return fmt.Sprintf("must be a date in %s format", strings.ReplaceAll(fe.Param(), "2006-01-02", "YYYY-MM-DD"))
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
