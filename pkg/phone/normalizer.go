package phone

import (
	"fmt"

	"github.com/nyaruka/phonenumbers"
)

// Normalize parses a phone number and returns it in E.164 format.
// The subscription activation flow stores the entity phone this way so the
// "call now" surfaces never have to guess the dialing prefix.
func Normalize(raw, countryCode string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("phone number cannot be empty")
	}

	if countryCode == "" {
		countryCode = "US"
	}

	parsed, err := phonenumbers.Parse(raw, countryCode)
	if err != nil {
		return "", fmt.Errorf("failed to parse phone number: %w", err)
	}

	if !phonenumbers.IsValidNumber(parsed) {
		return "", fmt.Errorf("invalid phone number: %s", raw)
	}

	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}

// IsLikelyMobile reports whether the number is a mobile (or mobile-capable)
// line. WhatsApp touches warn when the stored entity phone is a landline.
func IsLikelyMobile(e164 string) bool {
	parsed, err := phonenumbers.Parse(e164, "")
	if err != nil {
		return false
	}

	switch phonenumbers.GetNumberType(parsed) {
	case phonenumbers.MOBILE, phonenumbers.FIXED_LINE_OR_MOBILE:
		return true
	}
	return false
}
