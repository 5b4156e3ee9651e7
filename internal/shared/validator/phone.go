package validator

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// phoneRegex accepts Korean mobile numbers with or without separators, and
// with an optional +82 country prefix for members registering from abroad:
// 010-1234-5678, 01012345678, +82-10-1234-5678.
var phoneRegex = regexp.MustCompile(`^(?:\+82-?1|01)[0-9]-?[0-9]{3,4}-?[0-9]{4}$`)

// ValidatePhone backs the "phone" binding tag on member and inquiry requests.
func ValidatePhone(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(strings.TrimSpace(fl.Field().String()))
}
