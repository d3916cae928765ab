package service

import (
	"strings"
	"unicode/utf16"

	"taskflow/internal/core/domain"
)

const minPasswordLength = 6

// ValidateRegistration checks the shape of a registration request without
// touching storage. Checks run in a fixed order and stop at the first
// failure: missing fields, email shape, password confirmation, password
// length.
func ValidateRegistration(name, email, password, confirmPassword string) error {
	if isBlank(name) || isBlank(email) || isBlank(password) || isBlank(confirmPassword) {
		return domain.ErrMissingFields
	}
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return domain.ErrInvalidEmail
	}
	if password != confirmPassword {
		return domain.ErrPasswordMismatch
	}
	if passwordLength(password) < minPasswordLength {
		return domain.ErrWeakPassword
	}
	return nil
}

// ValidateLoginCredentials rejects blank login input with the same error
// used for unknown users.
func ValidateLoginCredentials(email, password string) error {
	if isBlank(email) || isBlank(password) {
		return domain.ErrInvalidCredentials
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// passwordLength counts UTF-16 code units, so a character outside the
// Basic Multilingual Plane counts twice.
func passwordLength(password string) int {
	return len(utf16.Encode([]rune(password)))
}
