// Package match decides whether a candidate satisfies a search profile.
package match

import (
	"strings"

	"github.com/saintgiong/discovery/internal/domain/candidate"
	"github.com/saintgiong/discovery/internal/domain/profile"
)

// Evaluator is the pure matching predicate. It holds no state and performs
// no IO; the same inputs always produce the same verdict.
type Evaluator struct{}

// New creates an evaluator.
func New() *Evaluator {
	return &Evaluator{}
}

// Matches reports whether the candidate satisfies every constrained
// dimension of the profile. An unset dimension never rejects. Salary is not
// evaluated: candidate documents carry no salary figure to compare against.
func (e *Evaluator) Matches(p profile.Profile, c *candidate.Document) bool {
	if !countryMatches(p, c) {
		return false
	}
	if !degreeMatches(p, c) {
		return false
	}
	if !employmentMatches(p, c) {
		return false
	}
	return skillsMatch(p, c)
}

func countryMatches(p profile.Profile, c *candidate.Document) bool {
	if p.Country() == "" {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(p.Country()), strings.TrimSpace(c.Country))
}

// degreeMatches requires at least one education entry whose degree text
// contains the required classification name.
func degreeMatches(p profile.Profile, c *candidate.Document) bool {
	if p.HighestDegree() == nil {
		return true
	}
	for _, edu := range c.Educations {
		if p.HighestDegree().Satisfies(edu.Degree) {
			return true
		}
	}
	return false
}

// employmentMatches requires the candidate's inferred signals to cover every
// required employment type.
func employmentMatches(p profile.Profile, c *candidate.Document) bool {
	if p.EmploymentTypes().IsEmpty() {
		return true
	}
	return c.EmploymentSignals().ContainsAll(p.EmploymentTypes())
}

// skillsMatch requires the profile's skill set to be a subset of the
// candidate's skills.
func skillsMatch(p profile.Profile, c *candidate.Document) bool {
	if !p.RequiresSkills() {
		return true
	}
	for _, id := range p.SkillIDs() {
		if !c.HasSkill(id) {
			return false
		}
	}
	return true
}
