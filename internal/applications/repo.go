package applications

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound     = errors.New("application not found")
	ErrDuplicateCPF = errors.New("cpf already has an open application")
)

type Repo struct {
	pg *pgxpool.Pool
}

func NewRepo(pg *pgxpool.Pool) *Repo {
	return &Repo{pg: pg}
}

const applicationColumns = `
  id, full_name, cpf, phone, email, city, state,
  vehicle_types, experience_years, availability, schedule,
  owns_vehicle, cargo_experience, available_for_travel, accepted_terms,
  status, status_note, reviewed_by, reviewed_at,
  created_at, updated_at`

func (r *Repo) Create(ctx context.Context, n NewApplication) (*Application, error) {
	const q = `
INSERT INTO applications (
  full_name, cpf, phone, email, city, state,
  vehicle_types, experience_years, availability, schedule,
  owns_vehicle, cargo_experience, available_for_travel, accepted_terms,
  status, created_at, updated_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, 'pendente', now(), now())
RETURNING` + applicationColumns

	a, err := scanApplication(r.pg.QueryRow(ctx, q,
		n.FullName, n.CPF, n.Phone, n.Email, n.City, n.State,
		n.VehicleTypes, n.ExperienceYears, n.Availability, n.Schedule,
		n.OwnsVehicle, n.CargoExperience, n.AvailableForTravel, n.AcceptedTerms,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.SQLState() == "23505" {
			return nil, ErrDuplicateCPF
		}
		return nil, err
	}
	return a, nil
}

func (r *Repo) FindByID(ctx context.Context, id uuid.UUID) (*Application, error) {
	const q = `SELECT` + applicationColumns + `
FROM applications
WHERE id = $1
LIMIT 1`
	return scanApplication(r.pg.QueryRow(ctx, q, id))
}

// ListFilter narrows the admin listing. Zero values mean "no filter".
type ListFilter struct {
	From         *time.Time // inclusive lower bound on created_at
	To           *time.Time // inclusive upper bound on created_at
	Status       string
	Availability string
	VehicleType  string // membership in the vehicle_types array
	Limit        int
	Offset       int
}

// List returns applications newest first. Date, status and availability
// filters run in SQL; the vehicle-type membership filter (and pagination,
// when that filter is active) runs in memory over the SQL result.
func (r *Repo) List(ctx context.Context, f ListFilter) ([]*Application, error) {
	q, args, inMemory := buildListQuery(f)

	rows, err := r.pg.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if inMemory {
		list = filterByVehicleType(list, f.VehicleType)
		list = paginate(list, f.Limit, f.Offset)
	}
	if list == nil {
		list = []*Application{}
	}
	return list, nil
}

// buildListQuery renders the full listing query. When the vehicle-type filter
// is active, pagination is left to the caller (inMemory=true) and no
// LIMIT/OFFSET is emitted. Limit 0 means unlimited, Offset 0 means no skip.
func buildListQuery(f ListFilter) (string, []interface{}, bool) {
	q := `SELECT` + applicationColumns + `
FROM applications`
	where, args := buildListWhere(f)
	q += where + `
ORDER BY created_at DESC`

	inMemory := f.VehicleType != ""
	if !inMemory {
		if f.Limit > 0 {
			args = append(args, f.Limit)
			q += ` LIMIT $` + itoa(len(args))
		}
		if f.Offset > 0 {
			args = append(args, f.Offset)
			q += ` OFFSET $` + itoa(len(args))
		}
	}
	return q, args, inMemory
}

// buildListWhere renders the SQL-side filters (date range, status, availability).
func buildListWhere(f ListFilter) (string, []interface{}) {
	var conds []string
	var args []interface{}
	if f.From != nil {
		args = append(args, *f.From)
		conds = append(conds, "created_at >= $"+itoa(len(args)))
	}
	if f.To != nil {
		args = append(args, *f.To)
		conds = append(conds, "created_at <= $"+itoa(len(args)))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, "status = $"+itoa(len(args)))
	}
	if f.Availability != "" {
		args = append(args, f.Availability)
		conds = append(conds, "availability = $"+itoa(len(args)))
	}
	if len(conds) == 0 {
		return "", args
	}
	out := "\nWHERE " + conds[0]
	for _, c := range conds[1:] {
		out += " AND " + c
	}
	return out, args
}

func filterByVehicleType(list []*Application, want string) []*Application {
	var out []*Application
	for _, a := range list {
		for _, v := range a.VehicleTypes {
			if v == want {
				out = append(out, a)
				break
			}
		}
	}
	return out
}

func paginate(list []*Application, limit, offset int) []*Application {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}

func itoa(n int) string { return strconv.Itoa(n) }

// StatusUpdate carries one review decision.
type StatusUpdate struct {
	Status     string
	StatusNote *string
	ReviewedBy uuid.UUID
}

// UpdateStatus sets the status (any state is reachable from any state) and
// stamps reviewer and review time.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, u StatusUpdate) error {
	const q = `
UPDATE applications
SET status = $2,
    status_note = $3,
    reviewed_by = $4,
    reviewed_at = now(),
    updated_at = now()
WHERE id = $1`
	tag, err := r.pg.Exec(ctx, q, id, u.Status, u.StatusNote, u.ReviewedBy)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CountByStatus returns the five-bucket aggregation in one query.
func (r *Repo) CountByStatus(ctx context.Context) (*Stats, error) {
	const q = `
SELECT
  count(*),
  count(*) FILTER (WHERE status = 'pendente'),
  count(*) FILTER (WHERE status = 'em_analise'),
  count(*) FILTER (WHERE status = 'aprovado'),
  count(*) FILTER (WHERE status = 'rejeitado')
FROM applications`
	var s Stats
	err := r.pg.QueryRow(ctx, q).Scan(&s.Total, &s.Pendente, &s.EmAnalise, &s.Aprovado, &s.Rejeitado)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func scanApplication(row pgx.Row) (*Application, error) {
	var a Application
	err := row.Scan(
		&a.ID, &a.FullName, &a.CPF, &a.Phone, &a.Email, &a.City, &a.State,
		&a.VehicleTypes, &a.ExperienceYears, &a.Availability, &a.Schedule,
		&a.OwnsVehicle, &a.CargoExperience, &a.AvailableForTravel, &a.AcceptedTerms,
		&a.Status, &a.StatusNote, &a.ReviewedBy, &a.ReviewedAt,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}
