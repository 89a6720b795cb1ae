// Package candidate holds the searchable representation of one applicant's
// profile as carried by lifecycle events and stored in the document index.
package candidate

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/saintgiong/discovery/internal/domain/employment"
)

// Document is a full snapshot of a candidate profile. Lifecycle events carry
// complete snapshots, so an update replaces the stored document rather than
// merging into it.
type Document struct {
	ApplicantID uuid.UUID
	FirstName   string
	LastName    string
	Phone       string
	Address     string
	City        string
	Biography   string
	AboutMe     string
	AvatarURL   string
	Country     string

	Educations      []Education
	WorkExperiences []WorkExperience
	SkillIDs        []int64
	SkillNames      []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Education is one education entry, embedded in a Document.
type Education struct {
	InstitutionName string
	Degree          string
	GPA             *float64
	Description     string
	StartDate       *time.Time
	EndDate         *time.Time
	IsCurrent       bool
}

// WorkExperience is one employment history entry, embedded in a Document.
type WorkExperience struct {
	CompanyName string
	Position    string
	Description string
	Country     string
	StartDate   *time.Time
	EndDate     *time.Time
	IsCurrent   bool
}

// Validate checks the document invariants: the applicant id must be set,
// timestamps must be monotonic, and GPA values must stay in the 0-4 scale.
func (d *Document) Validate() error {
	if d.ApplicantID == uuid.Nil {
		return fmt.Errorf("applicant id is required")
	}
	if !d.CreatedAt.IsZero() && !d.UpdatedAt.IsZero() && d.UpdatedAt.Before(d.CreatedAt) {
		return fmt.Errorf("updatedAt %s precedes createdAt %s", d.UpdatedAt, d.CreatedAt)
	}
	for i, e := range d.Educations {
		if e.GPA != nil && (*e.GPA < 0 || *e.GPA > 4) {
			return fmt.Errorf("education %d: gpa %g out of range [0, 4]", i, *e.GPA)
		}
	}
	return nil
}

// HasSkill reports whether the candidate declares the given skill id.
func (d *Document) HasSkill(id int64) bool {
	for _, s := range d.SkillIDs {
		if s == id {
			return true
		}
	}
	return false
}

// EmploymentSignals derives the candidate's employment-type signals from the
// work experience history. A candidate with no history signals FRESHER;
// otherwise each entry contributes the type its position and description
// text suggest, defaulting to FULL_TIME.
func (d *Document) EmploymentSignals() employment.Set {
	if len(d.WorkExperiences) == 0 {
		return employment.NewSet(employment.Fresher)
	}

	var signals employment.Set
	for _, w := range d.WorkExperiences {
		signals = signals.With(classifyExperience(w))
	}
	return signals
}

func classifyExperience(w WorkExperience) employment.Type {
	text := strings.ToLower(w.Position + " " + w.Description)
	switch {
	case strings.Contains(text, "intern"):
		return employment.Internship
	case strings.Contains(text, "part-time") || strings.Contains(text, "part time"):
		return employment.PartTime
	case strings.Contains(text, "contract") || strings.Contains(text, "freelance"):
		return employment.Contract
	case strings.Contains(text, "fresher"):
		return employment.Fresher
	default:
		return employment.FullTime
	}
}
