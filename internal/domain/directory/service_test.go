package directory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/caredir/caredir/internal/onboarding"
)

// -- Mock Repositories --

type mockPersonRepo struct {
	persons map[uuid.UUID]*Person
}

func newMockPersonRepo() *mockPersonRepo {
	return &mockPersonRepo{persons: make(map[uuid.UUID]*Person)}
}

func (m *mockPersonRepo) Create(_ context.Context, p *Person) error {
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()
	m.persons[p.ID] = p
	return nil
}

func (m *mockPersonRepo) GetByID(_ context.Context, id uuid.UUID) (*Person, error) {
	p, ok := m.persons[id]
	if !ok || p.Deleted {
		return nil, fmt.Errorf("not found")
	}
	return p, nil
}

func (m *mockPersonRepo) Update(_ context.Context, p *Person) error {
	if _, ok := m.persons[p.ID]; !ok {
		return fmt.Errorf("not found")
	}
	m.persons[p.ID] = p
	return nil
}

func (m *mockPersonRepo) Delete(_ context.Context, id uuid.UUID) error {
	if p, ok := m.persons[id]; ok {
		p.Deleted = true
	}
	return nil
}

func (m *mockPersonRepo) List(_ context.Context, limit, offset int) ([]*Person, int, error) {
	var result []*Person
	for _, p := range m.persons {
		if !p.Deleted {
			result = append(result, p)
		}
	}
	return result, len(result), nil
}

type mockOrganisationRepo struct {
	orgs map[uuid.UUID]*Organisation
}

func newMockOrganisationRepo() *mockOrganisationRepo {
	return &mockOrganisationRepo{orgs: make(map[uuid.UUID]*Organisation)}
}

func (m *mockOrganisationRepo) Create(_ context.Context, o *Organisation) error {
	o.ID = uuid.New()
	o.CreatedAt = time.Now()
	o.UpdatedAt = time.Now()
	m.orgs[o.ID] = o
	return nil
}

func (m *mockOrganisationRepo) GetByID(_ context.Context, id uuid.UUID) (*Organisation, error) {
	o, ok := m.orgs[id]
	if !ok || o.Deleted {
		return nil, fmt.Errorf("not found")
	}
	return o, nil
}

func (m *mockOrganisationRepo) Update(_ context.Context, o *Organisation) error {
	if _, ok := m.orgs[o.ID]; !ok {
		return fmt.Errorf("not found")
	}
	m.orgs[o.ID] = o
	return nil
}

func (m *mockOrganisationRepo) Delete(_ context.Context, id uuid.UUID) error {
	if o, ok := m.orgs[id]; ok {
		o.Deleted = true
	}
	return nil
}

func (m *mockOrganisationRepo) List(_ context.Context, limit, offset int) ([]*Organisation, int, error) {
	var result []*Organisation
	for _, o := range m.orgs {
		if !o.Deleted {
			result = append(result, o)
		}
	}
	return result, len(result), nil
}

type mockLocationRepo struct {
	locs map[uuid.UUID]*Location
}

func newMockLocationRepo() *mockLocationRepo {
	return &mockLocationRepo{locs: make(map[uuid.UUID]*Location)}
}

func (m *mockLocationRepo) Create(_ context.Context, l *Location) error {
	l.ID = uuid.New()
	l.CreatedAt = time.Now()
	l.UpdatedAt = time.Now()
	m.locs[l.ID] = l
	return nil
}

func (m *mockLocationRepo) GetByID(_ context.Context, id uuid.UUID) (*Location, error) {
	l, ok := m.locs[id]
	if !ok || l.Deleted {
		return nil, fmt.Errorf("not found")
	}
	return l, nil
}

func (m *mockLocationRepo) Update(_ context.Context, l *Location) error {
	if _, ok := m.locs[l.ID]; !ok {
		return fmt.Errorf("not found")
	}
	m.locs[l.ID] = l
	return nil
}

func (m *mockLocationRepo) Delete(_ context.Context, id uuid.UUID) error {
	if l, ok := m.locs[id]; ok {
		l.Deleted = true
	}
	return nil
}

func (m *mockLocationRepo) List(_ context.Context, limit, offset int) ([]*Location, int, error) {
	var result []*Location
	for _, l := range m.locs {
		if !l.Deleted {
			result = append(result, l)
		}
	}
	return result, len(result), nil
}

func (m *mockLocationRepo) ListByOrganisation(_ context.Context, orgID uuid.UUID, limit, offset int) ([]*Location, int, error) {
	var result []*Location
	for _, l := range m.locs {
		if !l.Deleted && l.OrganisationID == orgID {
			result = append(result, l)
		}
	}
	return result, len(result), nil
}

// -- Tests --

func newTestService() *Service {
	return NewService(newMockPersonRepo(), newMockOrganisationRepo(), newMockLocationRepo())
}

func TestCreatePerson_Defaults(t *testing.T) {
	svc := newTestService()

	p := &Person{FirstName: "Aoife", LastName: "Byrne", Email: "aoife@example.com"}
	if err := svc.CreatePerson(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID == uuid.Nil {
		t.Error("expected ID to be set")
	}
	if len(p.Roles) != 1 || p.Roles[0] != "team_member" {
		t.Errorf("expected default role team_member, got %v", p.Roles)
	}
	if p.Language != "en" {
		t.Errorf("expected default language en, got %s", p.Language)
	}
}

func TestCreatePerson_EmailRequired(t *testing.T) {
	svc := newTestService()

	p := &Person{FirstName: "Aoife"}
	if err := svc.CreatePerson(context.Background(), p); err == nil {
		t.Error("expected error for missing email")
	}
}

func TestCreatePerson_KeepsExplicitRoles(t *testing.T) {
	svc := newTestService()

	p := &Person{Email: "a@example.com", Roles: []string{"primary_contact"}}
	if err := svc.CreatePerson(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Roles) != 1 || p.Roles[0] != "primary_contact" {
		t.Errorf("explicit roles must survive, got %v", p.Roles)
	}
}

func TestCreateOrganisation_RequiresPrimaryContact(t *testing.T) {
	svc := newTestService()

	o := &Organisation{Name: "Sunrise Care Group"}
	if err := svc.CreateOrganisation(context.Background(), o); err == nil {
		t.Error("expected error for missing primary contact")
	}

	o.PrimaryContactID = uuid.New()
	if err := svc.CreateOrganisation(context.Background(), o); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteOrganisation_SoftDelete(t *testing.T) {
	svc := newTestService()

	o := &Organisation{Name: "Sunrise Care Group", PrimaryContactID: uuid.New()}
	svc.CreateOrganisation(context.Background(), o)

	if err := svc.DeleteOrganisation(context.Background(), o.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.GetOrganisation(context.Background(), o.ID); err == nil {
		t.Error("deleted organisation must not be readable")
	}
	if _, total, _ := svc.ListOrganisations(context.Background(), 20, 0); total != 0 {
		t.Errorf("deleted organisation must not be listed, got %d", total)
	}
}

func TestCreateLocation_DerivesLocale(t *testing.T) {
	svc := newTestService()

	l := &Location{Name: "Main Clinic", OrganisationID: uuid.New(), CountryOfOperation: "ie"}
	if err := svc.CreateLocation(context.Background(), l); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Locale != "Ireland" {
		t.Errorf("expected locale Ireland, got %s", l.Locale)
	}
}

func TestCreateLocation_DefaultsSelectionArrays(t *testing.T) {
	svc := newTestService()

	l := &Location{Name: "Main Clinic", OrganisationID: uuid.New(), CountryOfOperation: "gb"}
	if err := svc.CreateLocation(context.Background(), l); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.CategoryIDs == nil || l.SubcategoryIDs == nil || l.CareServiceIDs == nil {
		t.Errorf("selection arrays must default to empty, got %v/%v/%v",
			l.CategoryIDs, l.SubcategoryIDs, l.CareServiceIDs)
	}
}

func TestListOrganisationLocations(t *testing.T) {
	svc := newTestService()

	orgID := uuid.New()
	svc.CreateLocation(context.Background(), &Location{Name: "A", OrganisationID: orgID})
	svc.CreateLocation(context.Background(), &Location{Name: "B", OrganisationID: orgID})
	svc.CreateLocation(context.Background(), &Location{Name: "C", OrganisationID: uuid.New()})

	_, total, err := svc.ListOrganisationLocations(context.Background(), orgID, 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 2 {
		t.Errorf("expected 2 locations, got %d", total)
	}
}

// -- Wizard adapter --

func TestWizardAdapter_RoundTrip(t *testing.T) {
	svc := newTestService()
	adapter := NewWizardAdapter(svc)

	person, err := adapter.CreatePerson(context.Background(), onboarding.PersonPayload{
		FirstName: "Aoife", LastName: "Byrne", Email: "aoife@example.com",
		Roles: []string{"primary_contact"}, Language: "en",
	})
	if err != nil {
		t.Fatalf("create person: %v", err)
	}

	org, err := adapter.CreateOrganisation(context.Background(), onboarding.OrganisationPayload{
		Name: "Sunrise Care Group", PrimaryContactID: person.ID,
		Address: onboarding.Address{Line1: "1 High Street", PostalCode: "SW1A 1AA", Country: "gb"},
	})
	if err != nil {
		t.Fatalf("create organisation: %v", err)
	}

	loc, err := adapter.CreateLocation(context.Background(), onboarding.LocationPayload{
		Name: "Main Clinic", OrganisationID: org.ID, CountryOfOperation: "gb", Locale: "GB",
		Address:   onboarding.Address{Line1: "1 High Street", PostalCode: "SW1A 1AA", Country: "gb"},
		Selection: onboarding.Selection{CategoryIDs: []string{"long_term_care"}},
	})
	if err != nil {
		t.Fatalf("create location: %v", err)
	}

	stored, err := svc.GetLocation(context.Background(), loc.ID)
	if err != nil {
		t.Fatalf("get location: %v", err)
	}
	if stored.OrganisationID != org.ID {
		t.Error("location must reference the organisation")
	}
	if stored.Locale != "GB" {
		t.Errorf("expected locale GB, got %s", stored.Locale)
	}
	if len(stored.CategoryIDs) != 1 || stored.CategoryIDs[0] != "long_term_care" {
		t.Errorf("selection must persist, got %v", stored.CategoryIDs)
	}
}

func TestWizardAdapter_UpdateOrganisation(t *testing.T) {
	svc := newTestService()
	adapter := NewWizardAdapter(svc)

	org, err := adapter.CreateOrganisation(context.Background(), onboarding.OrganisationPayload{
		Name: "Sunrise Care Group", PrimaryContactID: uuid.New(),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := adapter.UpdateOrganisation(context.Background(), org.ID, onboarding.OrganisationPayload{
		Name: "Renamed Care Group", PrimaryContactID: uuid.New(),
	}); err != nil {
		t.Fatalf("update: %v", err)
	}

	stored, err := svc.GetOrganisation(context.Background(), org.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Name != "Renamed Care Group" {
		t.Errorf("expected renamed organisation, got %s", stored.Name)
	}
}
