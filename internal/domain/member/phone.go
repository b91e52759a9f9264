package member

import (
	"regexp"
	"strings"

	"github.com/docterbee/membership-system/internal/httperr"
)

// Registered numbers must be stored in local format: a leading "0" followed
// by 9-13 digits. Country-code variants are rejected rather than rewritten
// so the stored value always matches what is printed on the card.
var localPhonePattern = regexp.MustCompile(`^0[0-9]{9,13}$`)

// NormalizePhone strips the whitespace users paste in with their number.
func NormalizePhone(raw string) string {
	return strings.ReplaceAll(strings.TrimSpace(raw), " ", "")
}

// ValidateLocalPhone checks a normalized number against the local format.
func ValidateLocalPhone(phone string) error {
	if strings.HasPrefix(phone, "+62") || strings.HasPrefix(phone, "62") {
		return httperr.Validation("phone_not_local",
			"Phone number must start with 0, not a country code. Please use the local format.")
	}
	if !localPhonePattern.MatchString(phone) {
		return httperr.Validation("invalid_phone_format",
			"Phone number must start with 0 and contain 10-14 digits. Please try again.")
	}
	return nil
}

// DigitsOnly reduces a number to its digits, for fuzzy lookups that must
// tolerate "+62 812-xxx" style input.
func DigitsOnly(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
