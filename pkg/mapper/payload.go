package mapper

import "solar-lead-webhook/pkg/models"

// ProductName is the one product line this receiver handles.
const ProductName = "Solaranlagen"

// MapAttributes normalizes every recognized question present in the flat
// questions map. Questions that were not asked, or whose answer normalizes
// to nothing, are omitted.
func MapAttributes(questions map[string]string) map[string]string {
	attrs := make(map[string]string)
	for _, q := range Registry {
		answer, ok := questions[q.Text]
		if !ok {
			continue
		}
		if v := q.Normalize(answer); v != "" {
			attrs[q.Attribute] = v
		}
	}
	return attrs
}

// BuildLeadPayload assembles the outbound payload for one submission. It
// performs no validation; callers gate submissions first.
func BuildLeadPayload(sub models.Submission) models.LeadPayload {
	return models.LeadPayload{
		Lead:           MapLead(sub),
		Product:        models.Product{Name: ProductName},
		LeadAttributes: MapAttributes(sub.Questions),
	}
}
