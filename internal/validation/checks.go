package validation

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Required fails when the value is empty after trimming.
func Required(msg string) Check {
	return func(value string) string {
		if value == "" {
			return msg
		}
		return ""
	}
}

// MinLen fails when the value is shorter than n characters. Empty values
// also fail, matching the chained not-empty/min-length contract.
func MinLen(n int, msg string) Check {
	return func(value string) string {
		if utf8.RuneCountInString(value) < n {
			return msg
		}
		return ""
	}
}

// MaxLen fails when the value is longer than n characters.
func MaxLen(n int, msg string) Check {
	return func(value string) string {
		if utf8.RuneCountInString(value) > n {
			return msg
		}
		return ""
	}
}

// Email fails when the value is not a plausible email address.
func Email(msg string) Check {
	return func(value string) string {
		if !emailRegex.MatchString(value) {
			return msg
		}
		return ""
	}
}

// OneOf fails unless the value is a member of the allowed set.
func OneOf(allowed []string, msg string) Check {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(value string) string {
		if _, ok := set[value]; !ok {
			return msg
		}
		return ""
	}
}

// Equals fails unless the value matches other exactly.
func Equals(other string, msg string) Check {
	return func(value string) string {
		if value != other {
			return msg
		}
		return ""
	}
}

// StrongPassword requires at least 8 characters with at least one lowercase
// letter, one uppercase letter, one digit, and one symbol.
func StrongPassword(msg string) Check {
	return func(value string) string {
		var lower, upper, digit, symbol bool
		for _, r := range value {
			switch {
			case unicode.IsLower(r):
				lower = true
			case unicode.IsUpper(r):
				upper = true
			case unicode.IsDigit(r):
				digit = true
			default:
				symbol = true
			}
		}
		if utf8.RuneCountInString(value) < 8 || !lower || !upper || !digit || !symbol {
			return msg
		}
		return ""
	}
}
