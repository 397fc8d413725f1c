package onboarding

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Field names used by the step-1 validation gate. Clients send these on blur
// and receive them back as keys of the error map on submit.
const (
	FieldOrganisationName  = "organisation_name"
	FieldOrganisationPhone = "organisation_phone"
	FieldOrganisationURL   = "organisation_url"
	FieldContactFirstName  = "contact_first_name"
	FieldContactLastName   = "contact_last_name"
	FieldContactEmail      = "contact_email"
	FieldContactPhone      = "contact_phone"
	FieldAddressLine1      = "address_line1"
	FieldPostalCode        = "postal_code"
	FieldCountry           = "country"
)

const maxOrganisationNameLen = 200

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// looseURLPattern accepts anything with a dot separating two non-space runs;
// the field is a web address, not a strict URL.
var looseURLPattern = regexp.MustCompile(`^[^\s]+\.[^\s]+`)

// ValidateStep1Field checks a single step-1 field value, as invoked on field
// blur. An empty return means the value is acceptable.
func ValidateStep1Field(field, value string) string {
	trimmed := strings.TrimSpace(value)
	switch field {
	case FieldOrganisationName:
		if trimmed == "" {
			return "Organisation name is required"
		}
		if utf8.RuneCountInString(value) > maxOrganisationNameLen {
			return "Maximum 200 characters"
		}
	case FieldOrganisationPhone:
		if trimmed == "" {
			return "Organisation phone number is required"
		}
	case FieldOrganisationURL:
		if trimmed != "" && !looseURLPattern.MatchString(trimmed) {
			return "Must be a valid URL"
		}
	case FieldContactFirstName:
		if trimmed == "" {
			return "First name is required"
		}
	case FieldContactLastName:
		if trimmed == "" {
			return "Last name is required"
		}
	case FieldContactEmail:
		if trimmed == "" {
			return "Email is required"
		}
		if !emailPattern.MatchString(trimmed) {
			return "Invalid email format"
		}
	case FieldContactPhone:
		if trimmed == "" {
			return "Phone number is required"
		}
	case FieldAddressLine1:
		if trimmed == "" {
			return "Address line 1 is required"
		}
	case FieldPostalCode:
		if trimmed == "" {
			return "Postcode is required"
		}
	case FieldCountry:
		if trimmed == "" {
			return "Country is required"
		}
	}
	return ""
}

// ValidateStep1 checks every step-1 field and returns a field → message map.
// An empty map means the step may be submitted.
func ValidateStep1(org OrganisationDraft, contact ContactDraft) map[string]string {
	values := map[string]string{
		FieldOrganisationName:  org.Name,
		FieldOrganisationPhone: org.Phone,
		FieldOrganisationURL:   org.URL,
		FieldContactFirstName:  contact.FirstName,
		FieldContactLastName:   contact.LastName,
		FieldContactEmail:      contact.Email,
		FieldContactPhone:      contact.Phone,
		FieldAddressLine1:      org.Address.Line1,
		FieldPostalCode:        org.Address.PostalCode,
		FieldCountry:           org.Address.Country,
	}

	errs := make(map[string]string)
	for field, value := range values {
		if msg := ValidateStep1Field(field, value); msg != "" {
			errs[field] = msg
		}
	}
	return errs
}

// ValidateLocation checks one location draft for "Complete Setup". The
// returned messages are in a fixed order for stable display.
func ValidateLocation(d LocationDraft) []string {
	var errs []string
	if strings.TrimSpace(d.Name) == "" {
		errs = append(errs, "Location name is required")
	}
	if strings.TrimSpace(d.Address.Line1) == "" {
		errs = append(errs, "Address line 1 is required")
	}
	if strings.TrimSpace(d.Address.PostalCode) == "" {
		errs = append(errs, "Postcode is required")
	}
	if d.CountryOfOperation == "" {
		errs = append(errs, "Country of operation is required")
	}
	if len(d.Selection.CategoryIDs) == 0 {
		errs = append(errs, "At least one provider category is required")
	}
	return errs
}

// ValidateLocations checks every draft. It returns the per-index error lists
// and the first failing index, or -1 when all drafts pass. The first failing
// index is the draft the client should expand.
func ValidateLocations(drafts []LocationDraft) (map[int][]string, int) {
	errs := make(map[int][]string)
	first := -1
	for i, d := range drafts {
		if locErrs := ValidateLocation(d); len(locErrs) > 0 {
			errs[i] = locErrs
			if first == -1 {
				first = i
			}
		}
	}
	return errs, first
}

// ValidateContact checks an ad-hoc key contact before it is created.
func ValidateContact(c ContactDraft) map[string]string {
	errs := make(map[string]string)
	if msg := ValidateStep1Field(FieldContactFirstName, c.FirstName); msg != "" {
		errs[FieldContactFirstName] = msg
	}
	if msg := ValidateStep1Field(FieldContactLastName, c.LastName); msg != "" {
		errs[FieldContactLastName] = msg
	}
	if msg := ValidateStep1Field(FieldContactEmail, c.Email); msg != "" {
		errs[FieldContactEmail] = msg
	}
	if msg := ValidateStep1Field(FieldContactPhone, c.Phone); msg != "" {
		errs[FieldContactPhone] = msg
	}
	return errs
}
