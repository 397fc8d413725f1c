// Package locale maps address country codes to the internal locale tags used
// throughout the directory, and locale tags back to the reference codes that
// filter the provider catalog.
package locale

// Locale is the internal country/region classification derived from an
// address country code.
type Locale string

const (
	GB              Locale = "GB"
	NorthernIreland Locale = "Northern Ireland"
	Ireland         Locale = "Ireland"
	USA             Locale = "USA"
)

// FromCountry maps an ISO-ish country code to a Locale. Unrecognised or empty
// codes fall back to GB, the baseline market.
func FromCountry(countryCode string) Locale {
	switch countryCode {
	case "us":
		return USA
	case "ie":
		return Ireland
	case "ni":
		return NorthernIreland
	case "gb", "uk":
		return GB
	default:
		return GB
	}
}

// ReferenceCode returns the catalog filter code for the locale. Unknown
// locales collapse to "uk", matching the FromCountry baseline so that
// FromCountry followed by ReferenceCode is stable for every country code.
func (l Locale) ReferenceCode() string {
	switch l {
	case USA:
		return "us"
	case Ireland:
		return "ie"
	case NorthernIreland:
		return "ni"
	case GB:
		return "uk"
	default:
		return "uk"
	}
}

// CountryOption is one selectable country of operation.
type CountryOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// CountryGroup groups country options for display.
type CountryGroup struct {
	Label   string          `json:"label"`
	Options []CountryOption `json:"options"`
}

// CountryGroups lists the countries an organisation or location may operate
// in. The primary markets are the ones the provider catalog is localised for.
var CountryGroups = []CountryGroup{
	{
		Label: "Primary Markets",
		Options: []CountryOption{
			{Value: "gb", Label: "United Kingdom (England, Scotland & Wales)"},
			{Value: "ni", Label: "Northern Ireland"},
			{Value: "ie", Label: "Ireland"},
			{Value: "us", Label: "United States"},
		},
	},
	{
		Label: "Other",
		Options: []CountryOption{
			{Value: "au", Label: "Australia"},
			{Value: "ca", Label: "Canada"},
			{Value: "nz", Label: "New Zealand"},
			{Value: "fr", Label: "France"},
			{Value: "de", Label: "Germany"},
		},
	},
}
