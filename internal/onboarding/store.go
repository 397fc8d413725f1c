package onboarding

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/caredir/caredir/internal/locale"
)

// Audit is the metadata block stamped on every persisted entity.
type Audit struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedBy uuid.UUID `json:"created_by"`
	UpdatedBy uuid.UUID `json:"updated_by"`
}

// PersonPayload is the wire shape for creating a person.
type PersonPayload struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Roles     []string
	Language  string
	Deleted   bool
}

// PersonRecord is a persisted person as returned by the directory.
type PersonRecord struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
}

// OrganisationPayload is the wire shape for creating or updating an
// organisation.
type OrganisationPayload struct {
	Name             string
	Phone            string
	URL              string
	Address          Address
	PrimaryContactID uuid.UUID
	Deleted          bool
	Audit            Audit
}

// OrganisationRecord is a persisted organisation.
type OrganisationRecord struct {
	ID uuid.UUID `json:"id"`
}

// LocationPayload is the wire shape for creating a location.
type LocationPayload struct {
	Name               string
	URL                string
	Address            Address
	CountryOfOperation string
	Locale             locale.Locale
	OrganisationID     uuid.UUID
	KeyContactID       *uuid.UUID
	Selection          Selection
	Deleted            bool
	Audit              Audit
}

// LocationRecord is a persisted location.
type LocationRecord struct {
	ID uuid.UUID `json:"id"`
}

// Directory is the persistence boundary the orchestrator drives. Each call
// either fully persists the entity and returns it with its assigned ID, or
// fails; the orchestrator treats any failure as retryable and surfaces a
// generic step-level message.
type Directory interface {
	CreatePerson(ctx context.Context, p PersonPayload) (*PersonRecord, error)
	CreateOrganisation(ctx context.Context, o OrganisationPayload) (*OrganisationRecord, error)
	UpdateOrganisation(ctx context.Context, id uuid.UUID, o OrganisationPayload) (*OrganisationRecord, error)
	CreateLocation(ctx context.Context, l LocationPayload) (*LocationRecord, error)
}
