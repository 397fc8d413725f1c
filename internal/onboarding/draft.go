package onboarding

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/caredir/caredir/internal/locale"
)

// Address is the shared postal shape for organisations and locations.
type Address struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// OrganisationDraft is the in-memory organisation being entered in step 1.
type OrganisationDraft struct {
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	URL     string  `json:"url,omitempty"`
	Address Address `json:"address"`
}

// ContactDraft is the primary contact being entered in step 1, or an ad-hoc
// key contact added during step 2.
type ContactDraft struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// LocationDraft is one location being entered in step 2. PersistedID is set
// once the location has been created so that a retry after a later failure
// does not create it again.
type LocationDraft struct {
	Name               string     `json:"name"`
	URL                string     `json:"url,omitempty"`
	Address            Address    `json:"address"`
	CountryOfOperation string     `json:"country_of_operation"`
	KeyContactID       *uuid.UUID `json:"key_contact_id,omitempty"`
	Selection          Selection  `json:"selection"`
	PersistedID        *uuid.UUID `json:"persisted_id,omitempty"`
}

// Locale derives the location's locale tag from its country of operation.
func (d *LocationDraft) Locale() locale.Locale {
	return locale.FromCountry(d.CountryOfOperation)
}

// CopyFromOrganisation prefills the draft's address, URL, and key contact
// from the step-1 organisation. Offered for the first location only.
func (d *LocationDraft) CopyFromOrganisation(org OrganisationDraft, primaryContactID *uuid.UUID) {
	d.Address = org.Address
	d.CountryOfOperation = org.Address.Country
	d.URL = org.URL
	d.KeyContactID = primaryContactID
}

var ordinalLabels = []string{
	"First", "Second", "Third", "Fourth", "Fifth",
	"Sixth", "Seventh", "Eighth", "Ninth", "Tenth",
}

// LocationLabel returns the display label for the draft at the given index:
// "First Location" through "Tenth Location", then "Location 11" and so on.
func LocationLabel(index int) string {
	if index >= 0 && index < len(ordinalLabels) {
		return ordinalLabels[index] + " Location"
	}
	return fmt.Sprintf("Location %d", index+1)
}
