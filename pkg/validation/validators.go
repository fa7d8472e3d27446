package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Loose email shape: a non-space run, an @, a non-space run, a dot, a
// non-space run. Deliberately permissive — it is a spam-reduction
// heuristic, not an RFC validator, and it must accept everything the
// site's client-side check accepts.
var emailRegex = regexp.MustCompile(`\S+@\S+\.\S+`)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("intake_email", IntakeEmail)
}

// ValidEmail reports whether v passes the loose email shape check. Shared
// by the server-side intake validation and the terminal form client so the
// two cannot drift.
func ValidEmail(v string) bool {
	return emailRegex.MatchString(v)
}

// IntakeEmail adapts ValidEmail for struct tag usage.
func IntakeEmail(fl validator.FieldLevel) bool {
	return ValidEmail(fl.Field().String())
}
