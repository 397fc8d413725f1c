package directory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/caredir/caredir/internal/locale"
)

const (
	defaultRole     = "team_member"
	defaultLanguage = "en"
)

type Service struct {
	persons       PersonRepository
	organisations OrganisationRepository
	locations     LocationRepository
}

func NewService(persons PersonRepository, organisations OrganisationRepository, locations LocationRepository) *Service {
	return &Service{persons: persons, organisations: organisations, locations: locations}
}

// -- Persons --

func (s *Service) CreatePerson(ctx context.Context, p *Person) error {
	if p.Email == "" {
		return fmt.Errorf("email is required")
	}
	if len(p.Roles) == 0 {
		p.Roles = []string{defaultRole}
	}
	if p.Language == "" {
		p.Language = defaultLanguage
	}
	return s.persons.Create(ctx, p)
}

func (s *Service) GetPerson(ctx context.Context, id uuid.UUID) (*Person, error) {
	return s.persons.GetByID(ctx, id)
}

func (s *Service) UpdatePerson(ctx context.Context, p *Person) error {
	if p.Email == "" {
		return fmt.Errorf("email is required")
	}
	return s.persons.Update(ctx, p)
}

func (s *Service) DeletePerson(ctx context.Context, id uuid.UUID) error {
	return s.persons.Delete(ctx, id)
}

func (s *Service) ListPersons(ctx context.Context, limit, offset int) ([]*Person, int, error) {
	return s.persons.List(ctx, limit, offset)
}

// -- Organisations --

func (s *Service) CreateOrganisation(ctx context.Context, o *Organisation) error {
	if o.Name == "" {
		return fmt.Errorf("name is required")
	}
	if o.PrimaryContactID == uuid.Nil {
		return fmt.Errorf("primary contact is required")
	}
	return s.organisations.Create(ctx, o)
}

func (s *Service) GetOrganisation(ctx context.Context, id uuid.UUID) (*Organisation, error) {
	return s.organisations.GetByID(ctx, id)
}

func (s *Service) UpdateOrganisation(ctx context.Context, o *Organisation) error {
	if o.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.organisations.Update(ctx, o)
}

func (s *Service) DeleteOrganisation(ctx context.Context, id uuid.UUID) error {
	return s.organisations.Delete(ctx, id)
}

func (s *Service) ListOrganisations(ctx context.Context, limit, offset int) ([]*Organisation, int, error) {
	return s.organisations.List(ctx, limit, offset)
}

// -- Locations --

func (s *Service) CreateLocation(ctx context.Context, l *Location) error {
	if l.Name == "" {
		return fmt.Errorf("name is required")
	}
	if l.OrganisationID == uuid.Nil {
		return fmt.Errorf("organisation is required")
	}
	if l.Locale == "" {
		l.Locale = string(locale.FromCountry(l.CountryOfOperation))
	}
	defaultSelectionArrays(l)
	return s.locations.Create(ctx, l)
}

// defaultSelectionArrays keeps the classification columns non-null: a nil
// slice would reach Postgres as NULL instead of an empty array.
func defaultSelectionArrays(l *Location) {
	if l.CategoryIDs == nil {
		l.CategoryIDs = []string{}
	}
	if l.SubcategoryIDs == nil {
		l.SubcategoryIDs = []string{}
	}
	if l.CareServiceIDs == nil {
		l.CareServiceIDs = []string{}
	}
}

func (s *Service) GetLocation(ctx context.Context, id uuid.UUID) (*Location, error) {
	return s.locations.GetByID(ctx, id)
}

func (s *Service) UpdateLocation(ctx context.Context, l *Location) error {
	if l.Name == "" {
		return fmt.Errorf("name is required")
	}
	if l.Locale == "" {
		l.Locale = string(locale.FromCountry(l.CountryOfOperation))
	}
	defaultSelectionArrays(l)
	return s.locations.Update(ctx, l)
}

func (s *Service) DeleteLocation(ctx context.Context, id uuid.UUID) error {
	return s.locations.Delete(ctx, id)
}

func (s *Service) ListLocations(ctx context.Context, limit, offset int) ([]*Location, int, error) {
	return s.locations.List(ctx, limit, offset)
}

func (s *Service) ListOrganisationLocations(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]*Location, int, error) {
	return s.locations.ListByOrganisation(ctx, orgID, limit, offset)
}
