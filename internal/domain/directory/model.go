package directory

import (
	"time"

	"github.com/google/uuid"
)

// Person maps to the person table. Everyone entered through intake becomes a
// person: primary contacts and location key contacts alike, distinguished by
// their roles.
type Person struct {
	ID        uuid.UUID `db:"id" json:"id"`
	FirstName string    `db:"first_name" json:"first_name"`
	LastName  string    `db:"last_name" json:"last_name"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	Roles     []string  `db:"roles" json:"roles"`
	Language  string    `db:"language" json:"language"`
	Deleted   bool      `db:"deleted" json:"deleted"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
	CreatedBy uuid.UUID `db:"created_by" json:"created_by"`
	UpdatedBy uuid.UUID `db:"updated_by" json:"updated_by"`
}

// FullName is the display name used in contact pickers.
func (p *Person) FullName() string {
	if p.FirstName == "" {
		return p.LastName
	}
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// Organisation maps to the organisation table.
type Organisation struct {
	ID               uuid.UUID `db:"id" json:"id"`
	Name             string    `db:"name" json:"name"`
	Phone            string    `db:"phone" json:"phone"`
	URL              string    `db:"url" json:"url,omitempty"`
	AddressLine1     string    `db:"address_line1" json:"address_line1"`
	AddressLine2     string    `db:"address_line2" json:"address_line2,omitempty"`
	City             string    `db:"city" json:"city,omitempty"`
	State            string    `db:"state" json:"state,omitempty"`
	PostalCode       string    `db:"postal_code" json:"postal_code"`
	Country          string    `db:"country" json:"country"`
	PrimaryContactID uuid.UUID `db:"primary_contact_id" json:"primary_contact_id"`
	Deleted          bool      `db:"deleted" json:"deleted"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
	CreatedBy        uuid.UUID `db:"created_by" json:"created_by"`
	UpdatedBy        uuid.UUID `db:"updated_by" json:"updated_by"`
}

// Location maps to the location table. The selection columns hold the
// provider classification chosen during intake; Locale is derived from the
// country of operation and stored denormalised for filtering.
type Location struct {
	ID                 uuid.UUID  `db:"id" json:"id"`
	Name               string     `db:"name" json:"name"`
	URL                string     `db:"url" json:"url,omitempty"`
	AddressLine1       string     `db:"address_line1" json:"address_line1"`
	AddressLine2       string     `db:"address_line2" json:"address_line2,omitempty"`
	City               string     `db:"city" json:"city,omitempty"`
	State              string     `db:"state" json:"state,omitempty"`
	PostalCode         string     `db:"postal_code" json:"postal_code"`
	Country            string     `db:"country" json:"country"`
	CountryOfOperation string     `db:"country_of_operation" json:"country_of_operation"`
	Locale             string     `db:"locale" json:"locale"`
	OrganisationID     uuid.UUID  `db:"organisation_id" json:"organisation_id"`
	KeyContactID       *uuid.UUID `db:"key_contact_id" json:"key_contact_id,omitempty"`
	CategoryIDs        []string   `db:"category_ids" json:"category_ids"`
	SubcategoryIDs     []string   `db:"subcategory_ids" json:"subcategory_ids"`
	CareServiceIDs     []string   `db:"care_service_ids" json:"care_service_ids"`
	Deleted            bool       `db:"deleted" json:"deleted"`
	CreatedAt          time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at" json:"updated_at"`
	CreatedBy          uuid.UUID  `db:"created_by" json:"created_by"`
	UpdatedBy          uuid.UUID  `db:"updated_by" json:"updated_by"`
}
