package candidate

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/saintgiong/discovery/internal/domain/employment"
)

func validDocument() *Document {
	now := time.Now()
	return &Document{
		ApplicantID: uuid.New(),
		FirstName:   "An",
		LastName:    "Nguyen",
		City:        "Hanoi",
		Country:     "Vietnam",
		CreatedAt:   now.Add(-time.Hour),
		UpdatedAt:   now,
	}
}

func TestValidate_RequiresApplicantID(t *testing.T) {
	doc := validDocument()
	doc.ApplicantID = uuid.Nil
	if err := doc.Validate(); err == nil {
		t.Fatal("nil applicant id must fail")
	}
}

func TestValidate_TimestampOrder(t *testing.T) {
	doc := validDocument()
	doc.UpdatedAt = doc.CreatedAt.Add(-time.Minute)
	if err := doc.Validate(); err == nil {
		t.Fatal("updatedAt before createdAt must fail")
	}

	doc = validDocument()
	doc.CreatedAt = time.Time{}
	if err := doc.Validate(); err != nil {
		t.Errorf("missing createdAt must pass: %v", err)
	}
}

func TestValidate_GPABounds(t *testing.T) {
	gpa := func(v float64) *float64 { return &v }

	doc := validDocument()
	doc.Educations = []Education{{Degree: "Bachelor of Science", GPA: gpa(3.6)}}
	if err := doc.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	doc.Educations = append(doc.Educations, Education{Degree: "Master", GPA: gpa(4.5)})
	err := doc.Validate()
	if err == nil {
		t.Fatal("gpa above 4 must fail")
	}
	if !strings.Contains(err.Error(), "education 1") {
		t.Errorf("error should name the offending entry: %v", err)
	}

	doc.Educations[1].GPA = gpa(-0.1)
	if err := doc.Validate(); err == nil {
		t.Error("negative gpa must fail")
	}
}

func TestHasSkill(t *testing.T) {
	doc := validDocument()
	doc.SkillIDs = []int64{2, 5}

	if !doc.HasSkill(5) {
		t.Error("expected skill 5")
	}
	if doc.HasSkill(8) {
		t.Error("unexpected skill 8")
	}
}

func TestEmploymentSignals_NoHistoryIsFresher(t *testing.T) {
	doc := validDocument()

	signals := doc.EmploymentSignals()
	if !signals.Has(employment.Fresher) {
		t.Error("expected FRESHER signal")
	}
	if signals.Has(employment.FullTime) {
		t.Error("unexpected FULL_TIME signal")
	}
}

func TestEmploymentSignals_Classification(t *testing.T) {
	cases := []struct {
		name string
		exp  WorkExperience
		want employment.Type
	}{
		{"plain history defaults to full-time", WorkExperience{Position: "Software Engineer"}, employment.FullTime},
		{"intern position", WorkExperience{Position: "Backend Intern"}, employment.Internship},
		{"internship in description", WorkExperience{Position: "Engineer", Description: "summer internship"}, employment.Internship},
		{"part-time hyphenated", WorkExperience{Position: "Part-Time Barista"}, employment.PartTime},
		{"part time spaced", WorkExperience{Description: "worked part time on weekends"}, employment.PartTime},
		{"contract", WorkExperience{Position: "Contract Developer"}, employment.Contract},
		{"freelance counts as contract", WorkExperience{Description: "freelance projects"}, employment.Contract},
		{"fresher program", WorkExperience{Position: "Fresher Developer"}, employment.Fresher},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := validDocument()
			doc.WorkExperiences = []WorkExperience{tc.exp}
			if signals := doc.EmploymentSignals(); !signals.Has(tc.want) {
				t.Errorf("signals = %v, want %v", signals, tc.want)
			}
		})
	}
}

func TestEmploymentSignals_AccumulateAcrossHistory(t *testing.T) {
	doc := validDocument()
	doc.WorkExperiences = []WorkExperience{
		{Position: "Backend Intern"},
		{Position: "Software Engineer"},
	}

	signals := doc.EmploymentSignals()
	if !signals.Has(employment.Internship) || !signals.Has(employment.FullTime) {
		t.Errorf("signals = %v, want internship and full-time", signals)
	}
}
