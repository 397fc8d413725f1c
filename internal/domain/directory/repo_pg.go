package directory

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/caredir/caredir/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

func conn(ctx context.Context, pool *pgxpool.Pool) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return pool
}

// -- Person --

type personRepoPG struct{ pool *pgxpool.Pool }

func NewPersonRepoPG(pool *pgxpool.Pool) PersonRepository {
	return &personRepoPG{pool: pool}
}

const personCols = `id, first_name, last_name, email, phone, roles, language,
	deleted, created_at, updated_at, created_by, updated_by`

func scanPerson(row pgx.Row) (*Person, error) {
	var p Person
	err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Email, &p.Phone, &p.Roles, &p.Language,
		&p.Deleted, &p.CreatedAt, &p.UpdatedAt, &p.CreatedBy, &p.UpdatedBy)
	return &p, err
}

func (r *personRepoPG) Create(ctx context.Context, p *Person) error {
	p.ID = uuid.New()
	return conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO person (id, first_name, last_name, email, phone, roles, language, created_by, updated_by)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING created_at, updated_at`,
		p.ID, p.FirstName, p.LastName, p.Email, p.Phone, p.Roles, p.Language, p.CreatedBy, p.UpdatedBy).
		Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *personRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Person, error) {
	return scanPerson(conn(ctx, r.pool).QueryRow(ctx,
		`SELECT `+personCols+` FROM person WHERE id = $1 AND NOT deleted`, id))
}

func (r *personRepoPG) Update(ctx context.Context, p *Person) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE person SET first_name=$2, last_name=$3, email=$4, phone=$5, roles=$6, language=$7,
			updated_at=NOW(), updated_by=$8
		WHERE id = $1 AND NOT deleted`,
		p.ID, p.FirstName, p.LastName, p.Email, p.Phone, p.Roles, p.Language, p.UpdatedBy)
	return err
}

func (r *personRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := conn(ctx, r.pool).Exec(ctx,
		`UPDATE person SET deleted = TRUE, updated_at = NOW() WHERE id = $1`, id)
	return err
}

func (r *personRepoPG) List(ctx context.Context, limit, offset int) ([]*Person, int, error) {
	q := conn(ctx, r.pool)
	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM person WHERE NOT deleted`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := q.Query(ctx, `SELECT `+personCols+` FROM person WHERE NOT deleted
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, rows.Err()
}

// -- Organisation --

type organisationRepoPG struct{ pool *pgxpool.Pool }

func NewOrganisationRepoPG(pool *pgxpool.Pool) OrganisationRepository {
	return &organisationRepoPG{pool: pool}
}

const organisationCols = `id, name, phone, url, address_line1, address_line2, city, state,
	postal_code, country, primary_contact_id,
	deleted, created_at, updated_at, created_by, updated_by`

func scanOrganisation(row pgx.Row) (*Organisation, error) {
	var o Organisation
	err := row.Scan(&o.ID, &o.Name, &o.Phone, &o.URL, &o.AddressLine1, &o.AddressLine2, &o.City, &o.State,
		&o.PostalCode, &o.Country, &o.PrimaryContactID,
		&o.Deleted, &o.CreatedAt, &o.UpdatedAt, &o.CreatedBy, &o.UpdatedBy)
	return &o, err
}

func (r *organisationRepoPG) Create(ctx context.Context, o *Organisation) error {
	o.ID = uuid.New()
	return conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO organisation (id, name, phone, url, address_line1, address_line2, city, state,
			postal_code, country, primary_contact_id, created_by, updated_by)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		RETURNING created_at, updated_at`,
		o.ID, o.Name, o.Phone, o.URL, o.AddressLine1, o.AddressLine2, o.City, o.State,
		o.PostalCode, o.Country, o.PrimaryContactID, o.CreatedBy, o.UpdatedBy).
		Scan(&o.CreatedAt, &o.UpdatedAt)
}

func (r *organisationRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Organisation, error) {
	return scanOrganisation(conn(ctx, r.pool).QueryRow(ctx,
		`SELECT `+organisationCols+` FROM organisation WHERE id = $1 AND NOT deleted`, id))
}

func (r *organisationRepoPG) Update(ctx context.Context, o *Organisation) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE organisation SET name=$2, phone=$3, url=$4, address_line1=$5, address_line2=$6,
			city=$7, state=$8, postal_code=$9, country=$10, primary_contact_id=$11,
			updated_at=NOW(), updated_by=$12
		WHERE id = $1 AND NOT deleted`,
		o.ID, o.Name, o.Phone, o.URL, o.AddressLine1, o.AddressLine2,
		o.City, o.State, o.PostalCode, o.Country, o.PrimaryContactID, o.UpdatedBy)
	return err
}

func (r *organisationRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := conn(ctx, r.pool).Exec(ctx,
		`UPDATE organisation SET deleted = TRUE, updated_at = NOW() WHERE id = $1`, id)
	return err
}

func (r *organisationRepoPG) List(ctx context.Context, limit, offset int) ([]*Organisation, int, error) {
	q := conn(ctx, r.pool)
	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM organisation WHERE NOT deleted`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := q.Query(ctx, `SELECT `+organisationCols+` FROM organisation WHERE NOT deleted
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Organisation
	for rows.Next() {
		o, err := scanOrganisation(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, o)
	}
	return items, total, rows.Err()
}

// -- Location --

type locationRepoPG struct{ pool *pgxpool.Pool }

func NewLocationRepoPG(pool *pgxpool.Pool) LocationRepository {
	return &locationRepoPG{pool: pool}
}

const locationCols = `id, name, url, address_line1, address_line2, city, state, postal_code, country,
	country_of_operation, locale, organisation_id, key_contact_id,
	category_ids, subcategory_ids, care_service_ids,
	deleted, created_at, updated_at, created_by, updated_by`

func scanLocation(row pgx.Row) (*Location, error) {
	var l Location
	err := row.Scan(&l.ID, &l.Name, &l.URL, &l.AddressLine1, &l.AddressLine2, &l.City, &l.State,
		&l.PostalCode, &l.Country,
		&l.CountryOfOperation, &l.Locale, &l.OrganisationID, &l.KeyContactID,
		&l.CategoryIDs, &l.SubcategoryIDs, &l.CareServiceIDs,
		&l.Deleted, &l.CreatedAt, &l.UpdatedAt, &l.CreatedBy, &l.UpdatedBy)
	return &l, err
}

func (r *locationRepoPG) Create(ctx context.Context, l *Location) error {
	l.ID = uuid.New()
	return conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO location (id, name, url, address_line1, address_line2, city, state, postal_code, country,
			country_of_operation, locale, organisation_id, key_contact_id,
			category_ids, subcategory_ids, care_service_ids, created_by, updated_by)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
		RETURNING created_at, updated_at`,
		l.ID, l.Name, l.URL, l.AddressLine1, l.AddressLine2, l.City, l.State, l.PostalCode, l.Country,
		l.CountryOfOperation, l.Locale, l.OrganisationID, l.KeyContactID,
		l.CategoryIDs, l.SubcategoryIDs, l.CareServiceIDs, l.CreatedBy, l.UpdatedBy).
		Scan(&l.CreatedAt, &l.UpdatedAt)
}

func (r *locationRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Location, error) {
	return scanLocation(conn(ctx, r.pool).QueryRow(ctx,
		`SELECT `+locationCols+` FROM location WHERE id = $1 AND NOT deleted`, id))
}

func (r *locationRepoPG) Update(ctx context.Context, l *Location) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE location SET name=$2, url=$3, address_line1=$4, address_line2=$5, city=$6, state=$7,
			postal_code=$8, country=$9, country_of_operation=$10, locale=$11, key_contact_id=$12,
			category_ids=$13, subcategory_ids=$14, care_service_ids=$15,
			updated_at=NOW(), updated_by=$16
		WHERE id = $1 AND NOT deleted`,
		l.ID, l.Name, l.URL, l.AddressLine1, l.AddressLine2, l.City, l.State,
		l.PostalCode, l.Country, l.CountryOfOperation, l.Locale, l.KeyContactID,
		l.CategoryIDs, l.SubcategoryIDs, l.CareServiceIDs, l.UpdatedBy)
	return err
}

func (r *locationRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := conn(ctx, r.pool).Exec(ctx,
		`UPDATE location SET deleted = TRUE, updated_at = NOW() WHERE id = $1`, id)
	return err
}

func (r *locationRepoPG) List(ctx context.Context, limit, offset int) ([]*Location, int, error) {
	return r.list(ctx, `WHERE NOT deleted`, nil, limit, offset)
}

func (r *locationRepoPG) ListByOrganisation(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]*Location, int, error) {
	return r.list(ctx, `WHERE NOT deleted AND organisation_id = $3`, []interface{}{orgID}, limit, offset)
}

func (r *locationRepoPG) list(ctx context.Context, where string, extra []interface{}, limit, offset int) ([]*Location, int, error) {
	q := conn(ctx, r.pool)
	var total int
	countArgs := extra
	countWhere := where
	if len(extra) > 0 {
		// The count query has no limit/offset, so the extra arg is $1.
		countWhere = `WHERE NOT deleted AND organisation_id = $1`
	}
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM location `+countWhere, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	args := append([]interface{}{limit, offset}, extra...)
	rows, err := q.Query(ctx, `SELECT `+locationCols+` FROM location `+where+`
		ORDER BY created_at ASC LIMIT $1 OFFSET $2`, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, l)
	}
	return items, total, rows.Err()
}
