package onboarding

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/caredir/caredir/internal/locale"
	"github.com/caredir/caredir/internal/reference"
)

// Step identifies the wizard step a session is on.
type Step int

const (
	StepOrganisation Step = 1
	StepLocations    Step = 2
)

const (
	RolePrimaryContact = "primary_contact"
	RoleTeamMember     = "team_member"

	defaultLanguage = "en"
)

// ValidationError carries per-field messages for the organisation step.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

// LocationValidationError carries per-location messages for the locations
// step. FirstInvalid is the index of the first draft with problems so the
// caller can bring it into view.
type LocationValidationError struct {
	PerLocation  map[int][]string
	FirstInvalid int
}

func (e *LocationValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d location(s)", len(e.PerLocation))
}

// PersistError wraps a directory failure with the generic message shown to
// the caller. The underlying error stays server-side.
type PersistError struct {
	Message string
	Err     error
}

func (e *PersistError) Error() string { return e.Message }
func (e *PersistError) Unwrap() error { return e.Err }

// Session is one in-flight wizard run. Persisted IDs are tracked on the
// session (person, organisation) and per draft (LocationDraft.PersistedID) so
// a retry after a partial failure updates instead of duplicating.
type Session struct {
	mu sync.Mutex

	ID        uuid.UUID `json:"id"`
	Step      Step      `json:"step"`
	Completed bool      `json:"completed"`

	Organisation OrganisationDraft `json:"organisation"`
	Contact      ContactDraft      `json:"contact"`
	Locations    []LocationDraft   `json:"locations"`

	// People holds everyone persisted during this run, primary contact
	// first, so location drafts can pick a key contact.
	People []PersonRecord `json:"people"`

	PersonID       *uuid.UUID `json:"person_id,omitempty"`
	OrganisationID *uuid.UUID `json:"organisation_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// MarshalJSON renders the session under its lock, so a handler response is a
// consistent snapshot even while another request mutates the drafts.
func (s *Session) MarshalJSON() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	type snapshot Session
	return json.Marshal((*snapshot)(s))
}

// Service orchestrates wizard sessions against the directory. The clock is
// injectable for tests.
type Service struct {
	dir     Directory
	catalog *reference.Catalog
	engine  *Engine
	now     func() time.Time
}

func NewService(dir Directory, catalog *reference.Catalog) *Service {
	return &Service{
		dir:     dir,
		catalog: catalog,
		engine:  NewEngine(catalog),
		now:     time.Now,
	}
}

// NewSession starts a fresh run on the organisation step with a single empty
// location draft ready for step two.
func (s *Service) NewSession() *Session {
	return &Session{
		ID:        uuid.New(),
		Step:      StepOrganisation,
		Locations: []LocationDraft{{}},
		CreatedAt: s.now().UTC(),
	}
}

// UpdateOrganisation replaces the step-one drafts.
func (s *Service) UpdateOrganisation(sess *Session, org OrganisationDraft, contact ContactDraft) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.Organisation = org
	sess.Contact = contact
}

// SubmitOrganisation validates step one and persists the primary contact and
// the organisation, then advances to the locations step. The person is
// created at most once per session; the organisation is created on the first
// successful pass and updated on later passes (after Back, or after a failed
// first attempt that got as far as creating it).
func (s *Service) SubmitOrganisation(ctx context.Context, sess *Session, actor uuid.UUID) error {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if fields := ValidateStep1(sess.Organisation, sess.Contact); len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	if sess.PersonID == nil {
		person, err := s.dir.CreatePerson(ctx, PersonPayload{
			FirstName: sess.Contact.FirstName,
			LastName:  sess.Contact.LastName,
			Email:     sess.Contact.Email,
			Phone:     sess.Contact.Phone,
			Roles:     []string{RolePrimaryContact},
			Language:  defaultLanguage,
		})
		if err != nil {
			return &PersistError{Message: "Failed to save organisation details. Please try again.", Err: err}
		}
		sess.PersonID = &person.ID
		sess.People = append(sess.People, *person)
	}

	now := s.now().UTC()
	payload := OrganisationPayload{
		Name:             sess.Organisation.Name,
		Phone:            sess.Organisation.Phone,
		URL:              sess.Organisation.URL,
		Address:          sess.Organisation.Address,
		PrimaryContactID: *sess.PersonID,
		Audit:            Audit{CreatedAt: now, UpdatedAt: now, CreatedBy: actor, UpdatedBy: actor},
	}

	if sess.OrganisationID != nil {
		payload.Audit.CreatedAt = time.Time{} // preserved by the store on update
		payload.Audit.CreatedBy = uuid.Nil
		if _, err := s.dir.UpdateOrganisation(ctx, *sess.OrganisationID, payload); err != nil {
			return &PersistError{Message: "Failed to save organisation details. Please try again.", Err: err}
		}
	} else {
		org, err := s.dir.CreateOrganisation(ctx, payload)
		if err != nil {
			return &PersistError{Message: "Failed to save organisation details. Please try again.", Err: err}
		}
		sess.OrganisationID = &org.ID
	}

	sess.Step = StepLocations
	return nil
}

// Back returns to the organisation step without touching persisted state.
func (s *Service) Back(sess *Session) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.Step = StepOrganisation
}

// AddLocation appends an empty draft and returns its index.
func (s *Service) AddLocation(sess *Session) int {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.Locations = append(sess.Locations, LocationDraft{})
	return len(sess.Locations) - 1
}

// RemoveLocation drops the draft at i. The last remaining draft cannot be
// removed; a draft that already persisted cannot be removed either.
func (s *Service) RemoveLocation(sess *Session, i int) error {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if i < 0 || i >= len(sess.Locations) {
		return fmt.Errorf("no location at index %d", i)
	}
	if len(sess.Locations) == 1 {
		return fmt.Errorf("at least one location is required")
	}
	if sess.Locations[i].PersistedID != nil {
		return fmt.Errorf("location already saved")
	}
	sess.Locations = append(sess.Locations[:i], sess.Locations[i+1:]...)
	return nil
}

// UpdateLocation replaces the draft at i, keeping its persisted ID and
// pruning selections that no longer apply when the country changed.
func (s *Service) UpdateLocation(sess *Session, i int, d LocationDraft) error {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if i < 0 || i >= len(sess.Locations) {
		return fmt.Errorf("no location at index %d", i)
	}
	prev := sess.Locations[i]
	d.PersistedID = prev.PersistedID
	if d.CountryOfOperation != prev.CountryOfOperation {
		d.Selection = s.engine.PruneForLocale(d.Selection, d.Locale().ReferenceCode())
	}
	sess.Locations[i] = d
	return nil
}

// CopyOrganisationIntoLocation prefills the draft at i from the organisation
// step, wiring the primary contact as key contact.
func (s *Service) CopyOrganisationIntoLocation(sess *Session, i int) error {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if i < 0 || i >= len(sess.Locations) {
		return fmt.Errorf("no location at index %d", i)
	}
	sess.Locations[i].CopyFromOrganisation(sess.Organisation, sess.PersonID)
	return nil
}

// ToggleCategory flips a provider category on the draft at i, cascading
// deselection per the selection engine.
func (s *Service) ToggleCategory(sess *Session, i int, categoryID string) error {
	return s.toggle(sess, i, func(sel Selection) Selection {
		return s.engine.ToggleCategory(sel, categoryID)
	})
}

// ToggleSubcategory flips a subcategory on the draft at i.
func (s *Service) ToggleSubcategory(sess *Session, i int, subcategoryID string, checked bool) error {
	return s.toggle(sess, i, func(sel Selection) Selection {
		return s.engine.ToggleSubcategory(sel, subcategoryID, checked)
	})
}

// ToggleCareService flips a care service on the draft at i.
func (s *Service) ToggleCareService(sess *Session, i int, serviceID string, checked bool) error {
	return s.toggle(sess, i, func(sel Selection) Selection {
		return s.engine.ToggleCareService(sel, serviceID, checked)
	})
}

func (s *Service) toggle(sess *Session, i int, fn func(Selection) Selection) error {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if i < 0 || i >= len(sess.Locations) {
		return fmt.Errorf("no location at index %d", i)
	}
	sess.Locations[i].Selection = fn(sess.Locations[i].Selection)
	return nil
}

// AvailableCareServices lists the services offerable by the draft at i given
// its selections and locale.
func (s *Service) AvailableCareServices(sess *Session, i int) ([]reference.CareService, error) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if i < 0 || i >= len(sess.Locations) {
		return nil, fmt.Errorf("no location at index %d", i)
	}
	d := sess.Locations[i]
	return s.engine.AvailableCareServices(d.Selection, d.Locale().ReferenceCode()), nil
}

// AddKeyContact persists an additional person mid-wizard so they can be
// picked as a location's key contact.
func (s *Service) AddKeyContact(ctx context.Context, sess *Session, c ContactDraft) (*PersonRecord, error) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if fields := ValidateContact(c); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}
	person, err := s.dir.CreatePerson(ctx, PersonPayload{
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		Roles:     []string{RoleTeamMember},
		Language:  defaultLanguage,
	})
	if err != nil {
		return nil, &PersistError{Message: "Failed to add contact. Please try again.", Err: err}
	}
	sess.People = append(sess.People, *person)
	return person, nil
}

// Complete validates every location draft and persists them in order,
// stopping at the first failure. Drafts persisted on an earlier attempt are
// skipped, so a retry only touches what is still outstanding.
func (s *Service) Complete(ctx context.Context, sess *Session, actor uuid.UUID) error {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.OrganisationID == nil {
		return fmt.Errorf("organisation step not submitted")
	}

	perLocation, first := ValidateLocations(sess.Locations)
	if len(perLocation) > 0 {
		return &LocationValidationError{PerLocation: perLocation, FirstInvalid: first}
	}

	for i := range sess.Locations {
		d := &sess.Locations[i]
		if d.PersistedID != nil {
			continue
		}
		now := s.now().UTC()
		loc, err := s.dir.CreateLocation(ctx, LocationPayload{
			Name:               d.Name,
			URL:                d.URL,
			Address:            d.Address,
			CountryOfOperation: d.CountryOfOperation,
			Locale:             locale.FromCountry(d.CountryOfOperation),
			OrganisationID:     *sess.OrganisationID,
			KeyContactID:       d.KeyContactID,
			Selection:          d.Selection.Normalized(),
			Audit:              Audit{CreatedAt: now, UpdatedAt: now, CreatedBy: actor, UpdatedBy: actor},
		})
		if err != nil {
			return &PersistError{
				Message: "Failed to save locations. Please try again.",
				Err:     err,
			}
		}
		d.PersistedID = &loc.ID
	}

	sess.Completed = true
	return nil
}
