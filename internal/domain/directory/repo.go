package directory

import (
	"context"

	"github.com/google/uuid"
)

// Deletes are soft everywhere: Delete flips the deleted flag and reads only
// return live rows.

type PersonRepository interface {
	Create(ctx context.Context, p *Person) error
	GetByID(ctx context.Context, id uuid.UUID) (*Person, error)
	Update(ctx context.Context, p *Person) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Person, int, error)
}

type OrganisationRepository interface {
	Create(ctx context.Context, o *Organisation) error
	GetByID(ctx context.Context, id uuid.UUID) (*Organisation, error)
	Update(ctx context.Context, o *Organisation) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Organisation, int, error)
}

type LocationRepository interface {
	Create(ctx context.Context, l *Location) error
	GetByID(ctx context.Context, id uuid.UUID) (*Location, error)
	Update(ctx context.Context, l *Location) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Location, int, error)
	ListByOrganisation(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]*Location, int, error)
}
