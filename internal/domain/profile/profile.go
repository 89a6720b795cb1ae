// Package profile holds the search profile aggregate: a company's
// declarative hiring criteria used for ad-hoc search and passive matching.
package profile

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/saintgiong/discovery/internal/domain/degree"
	"github.com/saintgiong/discovery/internal/domain/employment"
)

// Profile is the search profile aggregate (immutable value object). Every
// criteria dimension is optional; an unset dimension means "no constraint".
type Profile struct {
	id              uuid.UUID
	companyID       uuid.UUID
	salaryMin       *float64
	salaryMax       *float64
	highestDegree   *degree.Type
	employmentTypes employment.Set
	country         string
	skillIDs        map[int64]struct{}
}

// New validates and creates a Profile with a generated id.
func New(
	companyID uuid.UUID,
	salaryMin, salaryMax *float64,
	highestDegree *degree.Type,
	employmentTypes employment.Set,
	country string,
	skillIDs []int64,
) (Profile, error) {
	if companyID == uuid.Nil {
		return Profile{}, fmt.Errorf("company id is required")
	}
	if salaryMin != nil && *salaryMin < 0 {
		return Profile{}, fmt.Errorf("salary min must be zero or positive")
	}
	if salaryMax != nil && *salaryMax < 0 {
		return Profile{}, fmt.Errorf("salary max must be zero or positive")
	}
	if salaryMin != nil && salaryMax != nil && *salaryMin > *salaryMax {
		return Profile{}, fmt.Errorf("salary min %g exceeds salary max %g", *salaryMin, *salaryMax)
	}

	return Profile{
		id:              uuid.New(),
		companyID:       companyID,
		salaryMin:       salaryMin,
		salaryMax:       salaryMax,
		highestDegree:   highestDegree,
		employmentTypes: employmentTypes,
		country:         country,
		skillIDs:        skillSet(skillIDs),
	}, nil
}

// Reconstruct creates a Profile without validation (storage hydration).
func Reconstruct(
	id, companyID uuid.UUID,
	salaryMin, salaryMax *float64,
	highestDegree *degree.Type,
	employmentTypes employment.Set,
	country string,
	skillIDs []int64,
) Profile {
	return Profile{
		id:              id,
		companyID:       companyID,
		salaryMin:       salaryMin,
		salaryMax:       salaryMax,
		highestDegree:   highestDegree,
		employmentTypes: employmentTypes,
		country:         country,
		skillIDs:        skillSet(skillIDs),
	}
}

// ID returns the profile identifier.
func (p Profile) ID() uuid.UUID { return p.id }

// CompanyID returns the owning company.
func (p Profile) CompanyID() uuid.UUID { return p.companyID }

// SalaryMin returns the optional lower salary bound.
func (p Profile) SalaryMin() *float64 { return p.salaryMin }

// SalaryMax returns the optional upper salary bound.
func (p Profile) SalaryMax() *float64 { return p.salaryMax }

// HighestDegree returns the optional required degree classification.
func (p Profile) HighestDegree() *degree.Type { return p.highestDegree }

// EmploymentTypes returns the required employment-type bitmask.
func (p Profile) EmploymentTypes() employment.Set { return p.employmentTypes }

// Country returns the optional target country.
func (p Profile) Country() string { return p.country }

// SkillIDs returns the required skill ids in ascending order.
func (p Profile) SkillIDs() []int64 {
	out := make([]int64, 0, len(p.skillIDs))
	for id := range p.skillIDs {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// RequiresSkills reports whether the skill dimension is constrained.
func (p Profile) RequiresSkills() bool { return len(p.skillIDs) > 0 }

// RequiresSkill reports whether the given skill id is required.
func (p Profile) RequiresSkill(id int64) bool {
	_, ok := p.skillIDs[id]
	return ok
}

func skillSet(ids []int64) map[int64]struct{} {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
