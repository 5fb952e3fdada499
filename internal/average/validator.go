package average

import (
	"strings"
	"unicode/utf8"
)

// ValidateInput checks the arguments of an average computation.
// Codes are compared case-insensitively since both end up upper-cased in the series name.
func ValidateInput(weeks int, from, to string) error {
	var reason error
	switch {
	case weeks <= 0:
		reason = ErrWindowNotPositive
	case strings.EqualFold(from, to):
		reason = ErrSameCodes
	case utf8.RuneCountInString(from) != 3 || utf8.RuneCountInString(to) != 3:
		reason = ErrCodeLength
	default:
		return nil
	}
	return &InvalidInputError{Reason: reason, Weeks: weeks, From: from, To: to}
}
