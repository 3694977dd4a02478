package dto

import (
	"github.com/go-playground/validator/v10"

	"github.com/pawararyan169/job-portal/internal/domain"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
}

// runValidator applies struct-tag rules after the required-field pass.
// Tag failures surface as invalid_field with the offending field name.
func runValidator(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		fe := verrs[0]
		return domain.ErrInvalidField(fieldJSONName(fe.Field()), fe.Tag())
	}
	return domain.ErrInternal(err)
}

// fieldJSONName maps exported struct field names to their wire names.
func fieldJSONName(field string) string {
	switch field {
	case "Email":
		return "email"
	case "Name":
		return "name"
	case "Password":
		return "password"
	case "ConfirmPassword":
		return "confirmPassword"
	case "Title":
		return "title"
	case "Company":
		return "company"
	default:
		return field
	}
}
