// Migrations in Go; order fixed by the list below. All Up functions live in up.go.
// schema_version is created by the first migration.
package migrations

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/transrodar/backend/internal/config"
)

// Runner applies the migrations in order.
type Runner struct {
	pool *pgxpool.Pool
	seed config.Seed
}

// NewRunner builds a runner for the given pool; seed configures the initial admin.
func NewRunner(pool *pgxpool.Pool, seed config.Seed) *Runner {
	return &Runner{pool: pool, seed: seed}
}

// Up applies every migration in order.
func (r *Runner) Up(ctx context.Context) error {
	for i, m := range migrationList {
		if err := m.Up(ctx, r); err != nil {
			return fmt.Errorf("migration %d (%s): %w", i, m.Name, err)
		}
	}
	return nil
}

type migration struct {
	Name string
	Up   func(ctx context.Context, r *Runner) error
}

// Migration list: order matters.
var migrationList = []migration{
	{Name: "create_form_options", Up: upFormOptions},
	{Name: "create_admins_table", Up: upAdmins},
	{Name: "create_applications_table", Up: upApplications},
	{Name: "seed_initial_admin", Up: upSeedAdmin},
}
