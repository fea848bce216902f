package service

import (
	"unicode"

	"blaze-custody/pkg/apperror"
)

const minPasswordLen = 8

// ValidatePasswordStrength requires at least eight characters mixing
// upper case, lower case, digits and symbols.
func ValidatePasswordStrength(password string) error {
	if len([]rune(password)) < minPasswordLen {
		return apperror.ErrWeakPassword("must be at least 8 characters")
	}

	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}

	switch {
	case !upper:
		return apperror.ErrWeakPassword("needs an upper case letter")
	case !lower:
		return apperror.ErrWeakPassword("needs a lower case letter")
	case !digit:
		return apperror.ErrWeakPassword("needs a digit")
	case !symbol:
		return apperror.ErrWeakPassword("needs a symbol")
	}
	return nil
}
