package validator

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate checks a struct's `validate` tags and returns a field-to-tag
// map of the failures, or nil when the value is clean.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	out := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		out[fe.Field()] = fe.Tag()
	}
	return out
}
