package helper

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// NewValidator: validator dengan nama field mengikuti tag json.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// FieldErrors mengubah validator.ValidationErrors jadi map field → pesan.
func FieldErrors(err error) map[string]string {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(ve))
	for _, fe := range ve {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			out[field] = field + " is required"
		case "min":
			out[field] = field + " must be at least " + fe.Param() + " characters"
		case "max":
			out[field] = field + " must be at most " + fe.Param() + " characters"
		case "oneof":
			out[field] = field + " must be one of: " + fe.Param()
		case "datetime":
			out[field] = field + " must match format " + fe.Param()
		case "uuid", "uuid4":
			out[field] = field + " must be a valid id"
		default:
			out[field] = field + " is invalid"
		}
	}
	return out
}

// ValidationError: 400 dengan detail field (validator.v10), atau pesan generic.
func ValidationError(c *fiber.Ctx, err error) error {
	if fields := FieldErrors(err); fields != nil {
		return JsonValidationError(c, fields)
	}
	return JsonError(c, fiber.StatusBadRequest, err.Error())
}
