package models

import "encoding/json"

// Submission represents one raw lead as posted by the survey form. Questions
// is a flat map: most entries are keyed by the full German question text,
// the roof detail entries by short labels.
type Submission struct {
	FirstName string            `json:"first_name"`
	LastName  string            `json:"last_name"`
	Email     string            `json:"email"`
	Phone     string            `json:"phone"`
	Street    string            `json:"street"`
	Zipcode   Zipcode           `json:"zipcode"`
	City      string            `json:"city"`
	Questions map[string]string `json:"questions"`
}

// Zipcode accepts both string and number encodings, since the form is not
// consistent about how it serializes the field.
type Zipcode string

// UnmarshalJSON implements json.Unmarshaler.
func (z *Zipcode) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*z = Zipcode(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*z = Zipcode(n.String())
	return nil
}

// LeadPayload is the unit sent to the customer API.
type LeadPayload struct {
	Lead           map[string]string `json:"lead"`
	Product        Product           `json:"product"`
	LeadAttributes map[string]string `json:"lead_attributes"`
}

// Product identifies the product line a lead belongs to.
type Product struct {
	Name string `json:"name"`
}
