package main

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/hirewire/jobboard/app/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterValidation("password_strength", validatePasswordStrength)
}

// validatePasswordStrength is a custom validator that checks if password has:
// - At least one uppercase letter
// - At least one lowercase letter
// - At least one number
// The length floor is enforced separately by the min tag.
func validatePasswordStrength(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	hasUpper := false
	hasLower := false
	hasNumber := false

	for _, char := range password {
		if unicode.IsUpper(char) {
			hasUpper = true
		}
		if unicode.IsLower(char) {
			hasLower = true
		}
		if unicode.IsNumber(char) {
			hasNumber = true
		}

		if hasUpper && hasLower && hasNumber {
			return true
		}
	}

	return hasUpper && hasLower && hasNumber
}

// validateRequest validates a request DTO and returns formatted error
func validateRequest(req interface{}) *errors.AppError {
	if err := validate.Struct(req); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

// formatValidationErrors formats validator errors into user-friendly messages
func formatValidationErrors(err error) *errors.AppError {
	var messages []string

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			messages = append(messages, formatFieldError(fieldError))
		}
	} else {
		return errors.NewInvalidInput(err.Error())
	}

	return errors.NewInvalidInput(strings.Join(messages, "; "))
}

// formatFieldError formats a single field validation error
func formatFieldError(fe validator.FieldError) string {
	field := fe.Field()
	tag := fe.Tag()

	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "password_strength":
		return fmt.Sprintf("%s must contain at least one uppercase letter, one lowercase letter, and one number", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// sanitizeInput trims whitespace, strips control characters, and caps length
// in runes. preserveSpecialChars keeps everything printable intact, which is
// what passwords need.
func sanitizeInput(input string, maxLength int, preserveSpecialChars bool) string {
	input = strings.TrimSpace(input)
	input = strings.ReplaceAll(input, "\x00", "")

	if preserveSpecialChars {
		if maxLength > 0 && utf8.RuneCountInString(input) > maxLength {
			runes := []rune(input)
			input = string(runes[:maxLength])
		}
		return input
	}

	var builder strings.Builder
	for _, r := range input {
		if unicode.IsPrint(r) {
			builder.WriteRune(r)
		}
	}
	input = builder.String()

	if maxLength > 0 && utf8.RuneCountInString(input) > maxLength {
		runes := []rune(input)
		input = string(runes[:maxLength])
	}

	return input
}

// sanitizeEmail trims and lowercases an email. Lowercasing here fixes the
// case policy for the whole system: stored emails, the uniqueness index, and
// login lookups all see the lowercase form.
func sanitizeEmail(email string, maxLength int) string {
	email = sanitizeInput(email, maxLength, false)
	return strings.ToLower(email)
}
