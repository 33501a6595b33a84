package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var Validate = validator.New()

// ValidateStruct runs the shared validator and, on failure, writes the standard
// 422 envelope. Returns nil when the struct is valid.
func ValidateStruct(c *fiber.Ctx, s any) error {
	if err := Validate.Struct(s); err != nil {
		ve, ok := err.(validator.ValidationErrors)
		if !ok {
			return JsonError(c, fiber.StatusBadRequest, "invalid input")
		}
		fieldErrors := make(map[string][]string, len(ve))
		for _, fe := range ve {
			fieldErrors[fe.Field()] = append(fieldErrors[fe.Field()], fe.Tag())
		}
		return JsonValidationError(c, fieldErrors)
	}
	return nil
}
