package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	emailPattern     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneCharPattern = regexp.MustCompile(`^[\d\s\-\+\(\)]+$`)
)

func registerRules(v *validator.Validate) error {
	// local-part@domain.tld, nothing stricter
	if err := v.RegisterValidation("custom_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	}); err != nil {
		return err
	}

	// digits, spaces and ()+- only, with at least 10 digits overall
	if err := v.RegisterValidation("phone_digits", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if !phoneCharPattern.MatchString(value) {
			return false
		}
		digits := 0
		for _, r := range value {
			if r >= '0' && r <= '9' {
				digits++
			}
		}
		return digits >= 10
	}); err != nil {
		return err
	}

	if err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		return err
	}

	return nil
}
