package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// owner/name with both parts non-empty and no whitespace.
	_ = v.RegisterValidation("repo_slug", func(fl validator.FieldLevel) bool {
		owner, name, ok := strings.Cut(fl.Field().String(), "/")
		return ok && owner != "" && name != "" &&
			!strings.Contains(name, "/") &&
			!strings.ContainsAny(owner+name, " \t\r\n")
	})
	return v
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
