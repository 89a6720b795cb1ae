package profile

import (
	"strings"

	"github.com/google/uuid"

	"github.com/saintgiong/discovery/internal/domain/degree"
	"github.com/saintgiong/discovery/internal/domain/employment"
	domprof "github.com/saintgiong/discovery/internal/domain/profile"
)

// profileRow mirrors one search_profiles row before hydration.
type profileRow struct {
	id              uuid.UUID
	companyID       uuid.UUID
	salaryMin       *float64
	salaryMax       *float64
	highestDegree   *string
	employmentTypes string
	country         string
}

// scanner abstracts pgx.Row and pgx.Rows for shared scanning.
type scanner interface {
	Scan(dest ...any) error
}

func scanProfileRow(s scanner) (profileRow, error) {
	var rec profileRow
	err := s.Scan(
		&rec.id, &rec.companyID, &rec.salaryMin, &rec.salaryMax,
		&rec.highestDegree, &rec.employmentTypes, &rec.country,
	)
	return rec, err
}

// toDomain hydrates a domain profile. Unknown stored enum names degrade to
// an unset dimension rather than failing the read.
func (rec profileRow) toDomain(skillIDs []int64) domprof.Profile {
	var deg *degree.Type
	if rec.highestDegree != nil {
		if d, err := degree.Parse(*rec.highestDegree); err == nil {
			deg = &d
		}
	}

	var types employment.Set
	if rec.employmentTypes != "" {
		if s, err := employment.ParseSet(strings.Split(rec.employmentTypes, ",")); err == nil {
			types = s
		}
	}

	return domprof.Reconstruct(
		rec.id, rec.companyID,
		rec.salaryMin, rec.salaryMax,
		deg, types, rec.country, skillIDs,
	)
}

func degreeName(p domprof.Profile) *string {
	if p.HighestDegree() == nil {
		return nil
	}
	n := p.HighestDegree().String()
	return &n
}
