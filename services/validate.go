package services

import (
	"log"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// 10-digit US phone, optional parens/dashes/dots/spaces.
var phoneRegex = regexp.MustCompile(`^\(?[0-9]{3}\)?[-. ]?[0-9]{3}[-. ]?[0-9]{4}$`)

// 5-digit ZIP or ZIP+4.
var zipRegex = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

func init() {
	mustRegister("usphone", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})
	mustRegister("uszip", func(fl validator.FieldLevel) bool {
		return zipRegex.MatchString(fl.Field().String())
	})
}

func mustRegister(tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		log.Fatalf("Failed to register %q validator: %v", tag, err)
	}
}

// ValidateStruct runs the struct's validate tags and converts the first
// failure into a ValidationError with the client-facing message.
func ValidateStruct(value interface{}) error {
	err := validate.Struct(value)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return NewValidationError("Invalid request body")
	}
	return NewValidationError(fieldErrorMessage(verrs[0]))
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "All required fields must be provided"
	case "email":
		return "Invalid email format"
	case "usphone":
		return "Invalid US phone number"
	case "uszip":
		return "Invalid ZIP code"
	case "oneof":
		if fe.StructField() == "GuestOf" {
			return "Guest Of must be Bride, Groom, or Both"
		}
		return "Attending must be Yes or No"
	case "min", "max":
		return "Children must be a number between 0 and 2"
	}
	return "Invalid value for " + fe.StructField()
}
