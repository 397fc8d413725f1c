package directory

import (
	"context"

	"github.com/google/uuid"

	"github.com/caredir/caredir/internal/onboarding"
)

// WizardAdapter exposes the directory service as the persistence boundary
// the intake wizard drives.
type WizardAdapter struct {
	svc *Service
}

func NewWizardAdapter(svc *Service) *WizardAdapter {
	return &WizardAdapter{svc: svc}
}

var _ onboarding.Directory = (*WizardAdapter)(nil)

func (a *WizardAdapter) CreatePerson(ctx context.Context, p onboarding.PersonPayload) (*onboarding.PersonRecord, error) {
	person := &Person{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Phone:     p.Phone,
		Roles:     p.Roles,
		Language:  p.Language,
	}
	if err := a.svc.CreatePerson(ctx, person); err != nil {
		return nil, err
	}
	return &onboarding.PersonRecord{
		ID:        person.ID,
		FirstName: person.FirstName,
		LastName:  person.LastName,
		Email:     person.Email,
		Phone:     person.Phone,
	}, nil
}

func (a *WizardAdapter) CreateOrganisation(ctx context.Context, o onboarding.OrganisationPayload) (*onboarding.OrganisationRecord, error) {
	org := organisationFromPayload(o)
	org.CreatedBy = o.Audit.CreatedBy
	org.UpdatedBy = o.Audit.UpdatedBy
	if err := a.svc.CreateOrganisation(ctx, org); err != nil {
		return nil, err
	}
	return &onboarding.OrganisationRecord{ID: org.ID}, nil
}

func (a *WizardAdapter) UpdateOrganisation(ctx context.Context, id uuid.UUID, o onboarding.OrganisationPayload) (*onboarding.OrganisationRecord, error) {
	org := organisationFromPayload(o)
	org.ID = id
	org.UpdatedBy = o.Audit.UpdatedBy
	if err := a.svc.UpdateOrganisation(ctx, org); err != nil {
		return nil, err
	}
	return &onboarding.OrganisationRecord{ID: id}, nil
}

func (a *WizardAdapter) CreateLocation(ctx context.Context, l onboarding.LocationPayload) (*onboarding.LocationRecord, error) {
	loc := &Location{
		Name:               l.Name,
		URL:                l.URL,
		AddressLine1:       l.Address.Line1,
		AddressLine2:       l.Address.Line2,
		City:               l.Address.City,
		State:              l.Address.State,
		PostalCode:         l.Address.PostalCode,
		Country:            l.Address.Country,
		CountryOfOperation: l.CountryOfOperation,
		Locale:             string(l.Locale),
		OrganisationID:     l.OrganisationID,
		KeyContactID:       l.KeyContactID,
		CategoryIDs:        l.Selection.CategoryIDs,
		SubcategoryIDs:     l.Selection.SubcategoryIDs,
		CareServiceIDs:     l.Selection.CareServiceIDs,
		CreatedBy:          l.Audit.CreatedBy,
		UpdatedBy:          l.Audit.UpdatedBy,
	}
	if err := a.svc.CreateLocation(ctx, loc); err != nil {
		return nil, err
	}
	return &onboarding.LocationRecord{ID: loc.ID}, nil
}

func organisationFromPayload(o onboarding.OrganisationPayload) *Organisation {
	return &Organisation{
		Name:             o.Name,
		Phone:            o.Phone,
		URL:              o.URL,
		AddressLine1:     o.Address.Line1,
		AddressLine2:     o.Address.Line2,
		City:             o.Address.City,
		State:            o.Address.State,
		PostalCode:       o.Address.PostalCode,
		Country:          o.Address.Country,
		PrimaryContactID: o.PrimaryContactID,
	}
}
