package profile

import (
	"testing"

	"github.com/google/uuid"

	"github.com/saintgiong/discovery/internal/domain/degree"
	"github.com/saintgiong/discovery/internal/domain/employment"
)

func f(v float64) *float64 { return &v }

func TestNew_RequiresCompany(t *testing.T) {
	_, err := New(uuid.Nil, nil, nil, nil, 0, "", nil)
	if err == nil {
		t.Fatal("nil company id must fail")
	}
}

func TestNew_SalaryBounds(t *testing.T) {
	company := uuid.New()

	if _, err := New(company, f(-1), nil, nil, 0, "", nil); err == nil {
		t.Error("negative min must fail")
	}
	if _, err := New(company, nil, f(-1), nil, 0, "", nil); err == nil {
		t.Error("negative max must fail")
	}
	if _, err := New(company, f(5000), f(3000), nil, 0, "", nil); err == nil {
		t.Error("min above max must fail")
	}
	if _, err := New(company, f(3000), f(3000), nil, 0, "", nil); err != nil {
		t.Errorf("equal bounds must pass: %v", err)
	}
	if _, err := New(company, f(3000), nil, nil, 0, "", nil); err != nil {
		t.Errorf("single bound must pass: %v", err)
	}
}

func TestNew_GeneratesID(t *testing.T) {
	p, err := New(uuid.New(), nil, nil, nil, 0, "Vietnam", []int64{5, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID() == uuid.Nil {
		t.Error("expected a generated id")
	}
	if p.Country() != "Vietnam" {
		t.Errorf("country = %q", p.Country())
	}
}

func TestSkillIDs_SortedAndDeduplicated(t *testing.T) {
	p, err := New(uuid.New(), nil, nil, nil, 0, "", []int64{8, 2, 5, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ids := p.SkillIDs()
	if len(ids) != 3 || ids[0] != 2 || ids[1] != 5 || ids[2] != 8 {
		t.Errorf("skill ids = %v, want [2 5 8]", ids)
	}
	if !p.RequiresSkills() {
		t.Error("expected RequiresSkills")
	}
	if !p.RequiresSkill(5) || p.RequiresSkill(7) {
		t.Error("skill membership wrong")
	}
}

func TestRequiresSkills_EmptyDimension(t *testing.T) {
	p, err := New(uuid.New(), nil, nil, nil, 0, "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.RequiresSkills() {
		t.Error("empty skill set must not constrain")
	}
}

func TestReconstruct_PreservesFields(t *testing.T) {
	id, company := uuid.New(), uuid.New()
	deg := degree.Master
	types := employment.NewSet(employment.FullTime, employment.Contract)

	p := Reconstruct(id, company, f(1000), f(2000), &deg, types, "Vietnam", []int64{2})

	if p.ID() != id || p.CompanyID() != company {
		t.Error("identity not preserved")
	}
	if *p.SalaryMin() != 1000 || *p.SalaryMax() != 2000 {
		t.Error("salary bounds not preserved")
	}
	if *p.HighestDegree() != degree.Master {
		t.Error("degree not preserved")
	}
	if !p.EmploymentTypes().Has(employment.Contract) {
		t.Error("employment types not preserved")
	}
}
