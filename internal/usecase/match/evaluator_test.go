package match

import (
	"testing"

	"github.com/google/uuid"

	"github.com/saintgiong/discovery/internal/domain/candidate"
	"github.com/saintgiong/discovery/internal/domain/degree"
	"github.com/saintgiong/discovery/internal/domain/employment"
	"github.com/saintgiong/discovery/internal/domain/profile"
)

func testProfile(
	t *testing.T,
	deg *degree.Type,
	types employment.Set,
	country string,
	skillIDs []int64,
) profile.Profile {
	t.Helper()
	return profile.Reconstruct(uuid.New(), uuid.New(), nil, nil, deg, types, country, skillIDs)
}

func testCandidate() *candidate.Document {
	return &candidate.Document{
		ApplicantID: uuid.New(),
		FirstName:   "An",
		Country:     "VIETNAM",
		SkillIDs:    []int64{2, 5, 8},
		Educations: []candidate.Education{
			{InstitutionName: "HUST", Degree: "Bachelor of Science"},
		},
		WorkExperiences: []candidate.WorkExperience{
			{CompanyName: "Acme", Position: "Software Engineer"},
		},
	}
}

func TestMatches_UnconstrainedProfileMatchesEveryone(t *testing.T) {
	e := New()
	p := testProfile(t, nil, 0, "", nil)

	if !e.Matches(p, testCandidate()) {
		t.Error("unconstrained profile must match")
	}
	if !e.Matches(p, &candidate.Document{ApplicantID: uuid.New()}) {
		t.Error("unconstrained profile must match an empty candidate")
	}
}

func TestMatches_Country(t *testing.T) {
	e := New()
	c := testCandidate()

	if !e.Matches(testProfile(t, nil, 0, "vietnam", nil), c) {
		t.Error("country comparison must be case-insensitive")
	}
	if e.Matches(testProfile(t, nil, 0, "SINGAPORE", nil), c) {
		t.Error("different country must reject")
	}
}

func TestMatches_Degree(t *testing.T) {
	e := New()
	c := testCandidate()

	deg := degree.Bachelor
	if !e.Matches(testProfile(t, &deg, 0, "", nil), c) {
		t.Error("'Bachelor of Science' must satisfy BACHELOR")
	}

	master := degree.Master
	if e.Matches(testProfile(t, &master, 0, "", nil), c) {
		t.Error("candidate without a master degree must reject")
	}

	noEdu := testCandidate()
	noEdu.Educations = nil
	if e.Matches(testProfile(t, &deg, 0, "", nil), noEdu) {
		t.Error("candidate without education must reject a degree constraint")
	}
}

func TestMatches_SkillSubset(t *testing.T) {
	e := New()
	c := testCandidate() // skills {2, 5, 8}

	if !e.Matches(testProfile(t, nil, 0, "", []int64{2, 5}), c) {
		t.Error("required {2,5} is a subset of {2,5,8}, must match")
	}
	if e.Matches(testProfile(t, nil, 0, "", []int64{2, 5, 9}), c) {
		t.Error("required skill 9 is missing, must reject")
	}
}

func TestMatches_SkillMonotonicity(t *testing.T) {
	// Adding skills to a candidate never turns a match into a non-match.
	e := New()
	p := testProfile(t, nil, 0, "", []int64{2, 5})

	c := testCandidate()
	if !e.Matches(p, c) {
		t.Fatal("baseline must match")
	}

	c.SkillIDs = append(c.SkillIDs, 11, 13)
	if !e.Matches(p, c) {
		t.Error("extra candidate skills must not break the match")
	}
}

func TestMatches_Employment(t *testing.T) {
	e := New()

	fullTime := employment.NewSet(employment.FullTime)
	if !e.Matches(testProfile(t, nil, fullTime, "", nil), testCandidate()) {
		t.Error("software engineer history must signal FULL_TIME")
	}

	fresher := employment.NewSet(employment.Fresher)
	noHistory := testCandidate()
	noHistory.WorkExperiences = nil
	if !e.Matches(testProfile(t, nil, fresher, "", nil), noHistory) {
		t.Error("no work history must signal FRESHER")
	}
	if e.Matches(testProfile(t, nil, fullTime, "", nil), noHistory) {
		t.Error("no work history must not signal FULL_TIME")
	}

	intern := testCandidate()
	intern.WorkExperiences = []candidate.WorkExperience{{Position: "Backend Intern"}}
	internship := employment.NewSet(employment.Internship)
	if !e.Matches(testProfile(t, nil, internship, "", nil), intern) {
		t.Error("intern history must signal INTERNSHIP")
	}

	both := employment.NewSet(employment.FullTime, employment.Internship)
	if e.Matches(testProfile(t, nil, both, "", nil), intern) {
		t.Error("profile requiring both types must reject a candidate signalling only one")
	}
}

func TestMatches_AllDimensionsTogether(t *testing.T) {
	e := New()
	deg := degree.Bachelor
	p := testProfile(t, &deg, employment.NewSet(employment.FullTime), "VIETNAM", []int64{2})

	if !e.Matches(p, testCandidate()) {
		t.Error("candidate satisfying every dimension must match")
	}

	wrongCountry := testCandidate()
	wrongCountry.Country = "JAPAN"
	if e.Matches(p, wrongCountry) {
		t.Error("one failing dimension must reject")
	}
}
