// Package normalize turns free-text survey answers into the canonical
// vocabulary the customer API expects. Every function is total: input that
// cannot be normalized yields the empty string rather than an error.
package normalize

import (
	"strings"
	"unicode"
)

// Numeric validates a numeric answer such as a roof area and rewrites
// thousands dots and decimal commas into plain decimal notation. Input that
// is not purely digits after trimming yields "".
func Numeric(v string) string {
	s := strings.TrimSpace(v)
	if s == "" {
		return ""
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return ""
		}
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	return s
}

var propertyTypes = map[string]struct{}{
	"Einfamilienhaus":        {},
	"Zweifamilienhaus":       {},
	"Mehrfamilienhaus":       {},
	"Firmengebäude":          {},
	"Freilandfläche":         {},
	"Garage":                 {},
	"Carport":                {},
	"Scheune/Landwirtschaft": {},
	"Lagerhalle":             {},
	"Industrie":              {},
}

// PropertyType maps a free-text installation site onto one of the supported
// property categories, falling back to substring heuristics for the synonyms
// the form is known to produce.
func PropertyType(v string) string {
	raw := strings.ToLower(strings.TrimSpace(v))
	if raw == "" {
		return ""
	}

	if _, ok := propertyTypes[raw]; ok {
		return raw
	}

	switch {
	case strings.Contains(raw, "hallen") || strings.Contains(raw, "gewerbeobjekt"):
		return "Lagerhalle"
	case strings.Contains(raw, "firma") || strings.Contains(raw, "büro"):
		return "Firmengebäude"
	case strings.Contains(raw, "industrie"):
		return "Industrie"
	case strings.Contains(raw, "ein") && strings.Contains(raw, "zwei"):
		return "Einfamilienhaus"
	}

	return ""
}

var roofAgeLabels = map[string]struct{}{
	"Erst in Planung":     {},
	"Gerade erst gebaut":  {},
	"Jünger als 30 Jahre": {},
	"Älter als 30 Jahre":  {},
}

// RoofAge maps a roof age answer onto the canonical age brackets. Answers
// already phrased as a canonical bracket pass through verbatim.
func RoofAge(v string) string {
	raw := strings.TrimSpace(v)
	s := strings.ToLower(raw)
	if s == "" {
		return ""
	}

	if _, ok := roofAgeLabels[raw]; ok {
		return raw
	}

	switch {
	case strings.Contains(s, "nach 1990"):
		return "Jünger als 30 Jahre"
	case strings.Contains(s, "vor 1990"):
		return "Älter als 30 Jahre"
	case strings.Contains(s, "fast neu") || s == "neu":
		return "Gerade erst gebaut"
	}

	return ""
}

// RoofMaterial canonicalizes the two material spellings the customer API is
// picky about and passes everything else through trimmed.
func RoofMaterial(v string) string {
	raw := strings.TrimSpace(v)
	switch strings.ToLower(raw) {
	case "blech":
		return "Blech/Trapezblech"
	case "dachziegel":
		return "Dachziegel"
	}
	return raw
}

var orientations = map[string]string{
	"sued":      "Süd",
	"süd":       "Süd",
	"sued-ost":  "Süd-Ost",
	"sued-west": "Süd-West",
}

// Orientation resolves ASCII spellings of compass orientations to the
// canonical umlaut form. Unknown values pass through trimmed.
func Orientation(v string) string {
	raw := strings.TrimSpace(v)
	if raw == "" {
		return ""
	}
	key := strings.ReplaceAll(strings.ToLower(raw), " ", "")
	if canonical, ok := orientations[key]; ok {
		return canonical
	}
	return raw
}

var (
	yesAnswers = map[string]struct{}{"ja": {}, "true": {}, "1": {}, "yes": {}, "y": {}}
	noAnswers  = map[string]struct{}{"nein": {}, "false": {}, "0": {}, "no": {}, "n": {}}
)

// YesNo maps the many shapes a yes/no/unsure answer arrives in onto the
// three canonical labels. Unrecognized answers yield "".
func YesNo(v string) string {
	s := strings.ToLower(strings.TrimSpace(v))
	if s == "" {
		return ""
	}
	if _, ok := yesAnswers[s]; ok {
		return "Ja"
	}
	if _, ok := noAnswers[s]; ok {
		return "Nein"
	}
	if strings.Contains(s, "nicht sicher") || strings.Contains(s, "unsicher") {
		return "Noch nicht sicher"
	}
	switch v {
	case "Ja", "Nein", "Noch nicht sicher":
		return v
	}
	return ""
}
