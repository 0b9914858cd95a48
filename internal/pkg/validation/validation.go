package validation

import "regexp"

// emailRe matches the permissive "something@something.tld" shape used by the
// login form; real deliverability is not this layer's problem.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// IsValidReportingPeriod checks a consumption report period. Years before
// 2000 are treated as data-entry mistakes.
func IsValidReportingPeriod(year, month int) bool {
	return year >= 2000 && year <= 2100 && month >= 1 && month <= 12
}

// OneOf reports whether v is one of the allowed enum values.
func OneOf(v string, allowed ...string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
