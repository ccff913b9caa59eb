package mapper

import (
	"strings"

	"solar-lead-webhook/pkg/normalize"
)

// Survey question keys as they arrive from the form. The earlier questions
// are keyed by their full German display text, the roof detail questions by
// short labels; both styles share the flat questions map.
const (
	QuestionRoofType     = "Welche Dachform haben Sie auf Ihrem Haus?"
	QuestionConsumption  = "Wie hoch schätzen Sie ihren Stromverbrauch?"
	QuestionOwner        = "Sind Sie Eigentümer der Immobilie?"
	QuestionPropertyType = "Wo möchten Sie die Solaranlage installieren?"
	QuestionRoofAge      = "Wie alt ist Ihr Dach?"
	QuestionRoofArea     = "Dachfläche"
	QuestionRoofMaterial = "Dachmaterial"
	QuestionOrientation  = "Dachausrichtung"
	QuestionStorage      = "Stromspeicher gewünscht"
)

// Question binds one survey question to the lead attribute it produces and
// the normalizer applied to its answer. An empty normalizer result means the
// attribute is omitted.
type Question struct {
	Text      string
	Attribute string
	Normalize func(string) string
}

// Registry lists every question the attribute mapper recognizes. Supporting
// a new question is an entry here, not a new code path.
var Registry = []Question{
	{QuestionRoofType, "solar_roof_type", strings.TrimSpace},
	{QuestionConsumption, "solar_energy_consumption", strings.TrimSpace},
	// The funnel only shows the ownership question to property owners, so
	// its presence is recorded as confirmation regardless of the answer.
	{QuestionOwner, "owner", func(string) string { return "Ja" }},
	{QuestionPropertyType, "solar_property_type", normalize.PropertyType},
	{QuestionRoofAge, "solar_roof_age", normalize.RoofAge},
	{QuestionRoofArea, "solar_area", normalize.Numeric},
	{QuestionRoofMaterial, "solar_roof_material", normalize.RoofMaterial},
	{QuestionOrientation, "solar_south_location", normalize.Orientation},
	{QuestionStorage, "solar_power_storage", normalize.YesNo},
}
