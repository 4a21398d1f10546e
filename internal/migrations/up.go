// All migrations in one file; order fixed by the list in migrations.go.
package migrations

import (
	"context"
	"errors"
	"fmt"

	"github.com/transrodar/backend/internal/admins"
	"github.com/transrodar/backend/internal/util"
)

// 1 — schema_version + form_options (the form enumerations)
func upFormOptions(ctx context.Context, r *Runner) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INT PRIMARY KEY,
			name    TEXT NOT NULL,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS form_options (
			id         SMALLSERIAL PRIMARY KEY,
			kind       TEXT NOT NULL,
			code       TEXT NOT NULL,
			label      TEXT NOT NULL,
			sort_order SMALLINT NOT NULL DEFAULT 0,
			UNIQUE (kind, code)
		)
	`)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO form_options (kind, code, label, sort_order) VALUES
			('vehicle_type', 'moto',     'Moto',             1),
			('vehicle_type', 'carro',    'Carro',            2),
			('vehicle_type', 'van',      'Van',              3),
			('vehicle_type', 'caminhao', 'Caminhão',         4),
			('vehicle_type', 'onibus',   'Ônibus',           5),
			('availability', 'imediata', 'Imediata',         1),
			('availability', '15_dias',  'Em até 15 dias',   2),
			('availability', '30_dias',  'Em até 30 dias',   3),
			('schedule',     'manha',    'Manhã',            1),
			('schedule',     'tarde',    'Tarde',            2),
			('schedule',     'noite',    'Noite',            3),
			('schedule',     'integral', 'Período integral', 4)
		ON CONFLICT (kind, code) DO NOTHING
	`)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO schema_version (version, name) VALUES (1, 'create_form_options')
		ON CONFLICT (version) DO NOTHING
	`)
	return err
}

// 2 — admins
func upAdmins(ctx context.Context, r *Runner) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS admins (
			id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email         TEXT NOT NULL UNIQUE,
			name          TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			role          TEXT NOT NULL DEFAULT 'user' CHECK (role IN ('admin', 'user')),
			created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO schema_version (version, name) VALUES (2, 'create_admins_table')
		ON CONFLICT (version) DO NOTHING
	`)
	return err
}

// 3 — applications
func upApplications(ctx context.Context, r *Runner) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS applications (
			id                   UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			full_name            TEXT NOT NULL,
			cpf                  TEXT NOT NULL,
			phone                TEXT NOT NULL,
			email                TEXT NOT NULL,
			city                 TEXT NOT NULL,
			state                CHAR(2) NOT NULL,
			vehicle_types        JSONB NOT NULL DEFAULT '[]',
			experience_years     SMALLINT NOT NULL DEFAULT 0 CHECK (experience_years >= 0 AND experience_years <= 60),
			availability         TEXT NOT NULL CHECK (availability IN ('imediata', '15_dias', '30_dias')),
			schedule             TEXT NOT NULL CHECK (schedule IN ('manha', 'tarde', 'noite', 'integral')),
			owns_vehicle         BOOLEAN NOT NULL DEFAULT false,
			cargo_experience     BOOLEAN NOT NULL DEFAULT false,
			available_for_travel BOOLEAN NOT NULL DEFAULT false,
			accepted_terms       BOOLEAN NOT NULL DEFAULT false,
			status               TEXT NOT NULL DEFAULT 'pendente' CHECK (status IN ('pendente', 'em_analise', 'aprovado', 'rejeitado')),
			status_note          TEXT,
			reviewed_by          UUID REFERENCES admins(id),
			reviewed_at          TIMESTAMPTZ,
			created_at           TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at           TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return err
	}
	// one open (non-rejected) application per CPF
	_, err = r.pool.Exec(ctx, `
		CREATE UNIQUE INDEX IF NOT EXISTS applications_cpf_open_uniq
		ON applications (cpf) WHERE status <> 'rejeitado'
	`)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		CREATE INDEX IF NOT EXISTS applications_created_at_idx ON applications (created_at DESC)
	`)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		CREATE INDEX IF NOT EXISTS applications_status_idx ON applications (status)
	`)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO schema_version (version, name) VALUES (3, 'create_applications_table')
		ON CONFLICT (version) DO NOTHING
	`)
	return err
}

// 4 — initial admin from env, only when the table is empty
func upSeedAdmin(ctx context.Context, r *Runner) error {
	if r.seed.AdminEmail == "" || r.seed.AdminPassword == "" {
		return nil
	}
	if err := util.ValidatePassword(r.seed.AdminPassword); err != nil {
		return fmt.Errorf("seed admin password: %w", err)
	}
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM admins`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hash, err := util.HashPassword(r.seed.AdminPassword)
	if err != nil {
		return err
	}
	_, err = admins.NewRepo(r.pool).Create(ctx, r.seed.AdminEmail, r.seed.AdminName, hash, "admin")
	if err != nil && !errors.Is(err, admins.ErrEmailAlreadyRegistered) {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO schema_version (version, name) VALUES (4, 'seed_initial_admin')
		ON CONFLICT (version) DO NOTHING
	`)
	return err
}
