// Package mapper reshapes raw form submissions into the payload the
// customer API expects.
package mapper

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"solar-lead-webhook/pkg/models"
)

var nonPhoneChars = regexp.MustCompile(`[^\d+]`)

// SplitStreet separates a combined "street house number" value. The last
// whitespace-separated token is taken as the house number if it starts with
// a digit; otherwise the whole value is the street.
func SplitStreet(v string) (street, houseNumber string) {
	s := strings.TrimSpace(v)
	if s == "" {
		return "", ""
	}
	parts := strings.Fields(s)
	if len(parts) >= 2 {
		last := parts[len(parts)-1]
		if r, _ := utf8.DecodeRuneInString(last); unicode.IsDigit(r) {
			return strings.Join(parts[:len(parts)-1], " "), last
		}
	}
	return s, ""
}

// CleanPhone strips everything but digits and plus signs.
func CleanPhone(v string) string {
	return nonPhoneChars.ReplaceAllString(v, "")
}

// MapLead extracts the contact fields of a submission into the customer
// API's lead schema. The result is sparse: fields without a value are
// omitted entirely. "housnumber" is the downstream schema's spelling.
func MapLead(sub models.Submission) map[string]string {
	street, houseNumber := SplitStreet(sub.Street)
	lead := map[string]string{
		"first_name": sub.FirstName,
		"last_name":  sub.LastName,
		"email":      sub.Email,
		"phone":      CleanPhone(sub.Phone),
		"street":     street,
		"housnumber": houseNumber,
		"postcode":   strings.TrimSpace(string(sub.Zipcode)),
		"city":       sub.City,
		"country":    "de",
	}
	return compact(lead)
}

// compact drops entries with empty values so the lead stays a sparse map.
func compact(m map[string]string) map[string]string {
	for k, v := range m {
		if v == "" {
			delete(m, k)
		}
	}
	return m
}
