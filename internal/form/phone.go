package form

import "strings"

// FormatPhone normalizes arbitrary input into the progressive US display
// format used by the contact form's phone field:
//
//	0-3 digits  -> DDD
//	4-6 digits  -> (DDD) DDD
//	7-10 digits -> (DDD) DDD-DDDD
//
// Non-digits are stripped and input is capped at 10 digits, which also
// makes the function idempotent on its own output.
func FormatPhone(value string) string {
	var digits strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
			if digits.Len() == 10 {
				break
			}
		}
	}
	d := digits.String()

	switch {
	case len(d) <= 3:
		return d
	case len(d) <= 6:
		return "(" + d[:3] + ") " + d[3:]
	default:
		return "(" + d[:3] + ") " + d[3:6] + "-" + d[6:]
	}
}
