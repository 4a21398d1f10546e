package admins

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound               = errors.New("admin not found")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
)

type Repo struct {
	pg *pgxpool.Pool
}

func NewRepo(pg *pgxpool.Pool) *Repo {
	return &Repo{pg: pg}
}

func (r *Repo) FindByEmail(ctx context.Context, email string) (*Admin, error) {
	const q = `
SELECT id, email, name, password_hash, role, created_at, updated_at
FROM admins
WHERE email = $1
LIMIT 1`
	return scanAdmin(r.pg.QueryRow(ctx, q, strings.ToLower(strings.TrimSpace(email))))
}

func (r *Repo) FindByID(ctx context.Context, id uuid.UUID) (*Admin, error) {
	const q = `
SELECT id, email, name, password_hash, role, created_at, updated_at
FROM admins
WHERE id = $1
LIMIT 1`
	return scanAdmin(r.pg.QueryRow(ctx, q, id))
}

func (r *Repo) Create(ctx context.Context, email, name, passwordHash, role string) (uuid.UUID, error) {
	const q = `
INSERT INTO admins (email, name, password_hash, role, created_at, updated_at)
VALUES ($1, $2, $3, $4, now(), now())
RETURNING id`
	var id uuid.UUID
	err := r.pg.QueryRow(ctx, q, strings.ToLower(strings.TrimSpace(email)), name, passwordHash, role).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.SQLState() == "23505" {
			return uuid.Nil, ErrEmailAlreadyRegistered
		}
		return uuid.Nil, err
	}
	return id, nil
}

func scanAdmin(row pgx.Row) (*Admin, error) {
	var a Admin
	err := row.Scan(&a.ID, &a.Email, &a.Name, &a.PasswordHash, &a.Role, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}
