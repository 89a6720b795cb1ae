package search

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	errPageNumber = errors.New("page number must be zero or positive")
	errPageSize   = errors.New("page size must be at least 1")
)

// ExperienceFilter selects candidates by work-experience presence.
type ExperienceFilter string

const (
	// ExperienceUnset leaves the dimension unconstrained.
	ExperienceUnset ExperienceFilter = ""
	// ExperienceNone matches candidates with no work experience.
	ExperienceNone ExperienceFilter = "NONE"
	// ExperienceAny matches candidates with at least one work experience.
	ExperienceAny ExperienceFilter = "ANY"
)

// ParseExperienceFilter resolves a case-insensitive filter name.
func ParseExperienceFilter(s string) (ExperienceFilter, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return ExperienceUnset, nil
	case string(ExperienceNone):
		return ExperienceNone, nil
	case string(ExperienceAny):
		return ExperienceAny, nil
	default:
		return ExperienceUnset, fmt.Errorf("unknown work experience filter %q", s)
	}
}

// Request is a partially-specified candidate search. Every field is
// optional; absent fields contribute no clause. When no location is
// supplied the location dimension stays unconstrained; the composer never
// injects a default country.
type Request struct {
	Name            string
	Keyword         string
	Location        string
	LocationCountry bool // Location names a country rather than a city
	EducationLevels []string
	SkillIDs        []int64
	Experience      ExperienceFilter
}

// Compose builds a single boolean query from the supplied inputs, so callers
// never special-case which filters were present. Composition is pure and
// deterministic; zero supplied inputs compose to a match-all query.
func Compose(req Request) Query {
	var must []Clause

	if name := strings.TrimSpace(req.Name); name != "" {
		must = append(must, FuzzyText(name, FieldFirstName, FieldLastName))
	}

	if kw := strings.TrimSpace(req.Keyword); kw != "" {
		// A keyword hit in the biography, in any work-experience entry, or
		// in any education entry counts.
		must = append(must, OrGroup(
			FuzzyText(kw, FieldBiography, FieldAboutMe),
			FuzzyText(kw, FieldExperienceText),
			FuzzyText(kw, FieldEducationText),
		))
	}

	if loc := strings.TrimSpace(req.Location); loc != "" {
		field := FieldCity
		if req.LocationCountry {
			field = FieldCountry
		}
		must = append(must, Tag(field, loc))
	}

	if len(req.EducationLevels) > 0 {
		levels := make([]string, len(req.EducationLevels))
		for i, l := range req.EducationLevels {
			levels[i] = strings.ToUpper(strings.TrimSpace(l))
		}
		must = append(must, AnyTag(FieldDegrees, levels...))
	}

	if len(req.SkillIDs) > 0 {
		ids := make([]string, len(req.SkillIDs))
		for i, id := range req.SkillIDs {
			ids[i] = strconv.FormatInt(id, 10)
		}
		must = append(must, AnyTag(FieldSkillIDs, ids...))
	}

	switch req.Experience {
	case ExperienceNone:
		must = append(must, CountExactly(FieldExperienceCount, 0))
	case ExperienceAny:
		must = append(must, CountAtLeast(FieldExperienceCount, 1))
	case ExperienceUnset:
	}

	return NewQuery(must...)
}
