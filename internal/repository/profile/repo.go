// Package profile persists search profiles in Postgres.
package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/saintgiong/discovery/internal/domain"
	domprof "github.com/saintgiong/discovery/internal/domain/profile"
)

// pool is the consumer interface over pgxpool (ISP).
type pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

var _ pool = (*pgxpool.Pool)(nil)

// Repo implements the search profile repository over Postgres. A profile row
// holds the scalar criteria; required skills live in a child table and load
// with every read.
type Repo struct {
	pool pool
}

// New creates a profile repository.
func New(p pool) *Repo {
	return &Repo{pool: p}
}

const schema = `
CREATE TABLE IF NOT EXISTS search_profiles (
	id               UUID PRIMARY KEY,
	company_id       UUID NOT NULL,
	salary_min       DOUBLE PRECISION,
	salary_max       DOUBLE PRECISION,
	highest_degree   TEXT,
	employment_types TEXT NOT NULL DEFAULT '',
	country          TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS search_profiles_company_idx ON search_profiles (company_id);

CREATE TABLE IF NOT EXISTS search_profile_skills (
	profile_id UUID NOT NULL REFERENCES search_profiles (id) ON DELETE CASCADE,
	skill_id   BIGINT NOT NULL,
	PRIMARY KEY (profile_id, skill_id)
);
`

// EnsureSchema creates the profile tables if they do not exist.
func (r *Repo) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure profile schema: %w", err)
	}
	return nil
}

// Create inserts a profile and its required skills in one transaction.
func (r *Repo) Create(ctx context.Context, p domprof.Profile) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO search_profiles
			   (id, company_id, salary_min, salary_max, highest_degree, employment_types, country)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			p.ID(), p.CompanyID(), p.SalaryMin(), p.SalaryMax(),
			degreeName(p), p.EmploymentTypes().String(), p.Country(),
		)
		if err != nil {
			return fmt.Errorf("insert profile: %w", err)
		}
		return insertSkills(ctx, tx, p)
	})
}

// Update replaces a profile and its required skills in one transaction.
func (r *Repo) Update(ctx context.Context, p domprof.Profile) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE search_profiles
			 SET company_id = $2, salary_min = $3, salary_max = $4,
			     highest_degree = $5, employment_types = $6, country = $7
			 WHERE id = $1`,
			p.ID(), p.CompanyID(), p.SalaryMin(), p.SalaryMax(),
			degreeName(p), p.EmploymentTypes().String(), p.Country(),
		)
		if err != nil {
			return fmt.Errorf("update profile: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrProfileNotFound
		}

		if _, err := tx.Exec(ctx,
			`DELETE FROM search_profile_skills WHERE profile_id = $1`, p.ID(),
		); err != nil {
			return fmt.Errorf("clear profile skills: %w", err)
		}
		return insertSkills(ctx, tx, p)
	})
}

// Get returns a profile by id.
func (r *Repo) Get(ctx context.Context, id uuid.UUID) (domprof.Profile, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, company_id, salary_min, salary_max, highest_degree, employment_types, country
		 FROM search_profiles WHERE id = $1`, id,
	)
	rec, err := scanProfileRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domprof.Profile{}, domain.ErrProfileNotFound
		}
		return domprof.Profile{}, fmt.Errorf("get profile: %w", err)
	}

	skills, err := r.loadSkills(ctx, []uuid.UUID{id})
	if err != nil {
		return domprof.Profile{}, err
	}
	return rec.toDomain(skills[id]), nil
}

// Delete removes a profile; skills cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM search_profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

// ListByCompany returns all profiles owned by one company.
func (r *Repo) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domprof.Profile, error) {
	return r.ListByCompanies(ctx, []uuid.UUID{companyID})
}

// ListByCompanies returns all profiles owned by any of the given companies.
func (r *Repo) ListByCompanies(ctx context.Context, companyIDs []uuid.UUID) ([]domprof.Profile, error) {
	if len(companyIDs) == 0 {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, company_id, salary_min, salary_max, highest_degree, employment_types, country
		 FROM search_profiles WHERE company_id = ANY($1)`, companyIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("query profiles: %w", err)
	}
	defer rows.Close()

	var recs []profileRow
	var ids []uuid.UUID
	for rows.Next() {
		rec, err := scanProfileRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		recs = append(recs, rec)
		ids = append(ids, rec.id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate profiles: %w", err)
	}

	skills, err := r.loadSkills(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]domprof.Profile, len(recs))
	for i, rec := range recs {
		out[i] = rec.toDomain(skills[rec.id])
	}
	return out, nil
}

func (r *Repo) loadSkills(ctx context.Context, profileIDs []uuid.UUID) (map[uuid.UUID][]int64, error) {
	if len(profileIDs) == 0 {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx,
		`SELECT profile_id, skill_id FROM search_profile_skills WHERE profile_id = ANY($1)`,
		profileIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("query profile skills: %w", err)
	}
	defer rows.Close()

	out := make(map[uuid.UUID][]int64)
	for rows.Next() {
		var pid uuid.UUID
		var sid int64
		if err := rows.Scan(&pid, &sid); err != nil {
			return nil, fmt.Errorf("scan profile skill: %w", err)
		}
		out[pid] = append(out[pid], sid)
	}
	return out, rows.Err()
}

func (r *Repo) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func insertSkills(ctx context.Context, tx pgx.Tx, p domprof.Profile) error {
	for _, sid := range p.SkillIDs() {
		if _, err := tx.Exec(ctx,
			`INSERT INTO search_profile_skills (profile_id, skill_id) VALUES ($1, $2)`,
			p.ID(), sid,
		); err != nil {
			return fmt.Errorf("insert profile skill %d: %w", sid, err)
		}
	}
	return nil
}
