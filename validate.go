package tirocks

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// validate is a package-level singleton; validator caches struct metadata.
var validate = validator.New()

// ValidateConfig checks cfg against its validation tags. The first failing
// field is reported as a *ConfigError.
func ValidateConfig(cfg Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return &ConfigError{Field: fieldErrs[0].Field(), Err: fieldErrs[0]}
	}
	return &ConfigError{Err: err}
}
