// Package profile manages the lifecycle of company search profiles.
package profile

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/saintgiong/discovery/internal/domain"
	"github.com/saintgiong/discovery/internal/domain/degree"
	"github.com/saintgiong/discovery/internal/domain/employment"
	domprof "github.com/saintgiong/discovery/internal/domain/profile"
	"github.com/saintgiong/discovery/internal/domain/validate"
)

// Service handles search profile CRUD.
type Service struct {
	repo Repository
}

// New creates a profile service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Input carries the criteria for a profile write. Enum dimensions arrive as
// names and are resolved here; every dimension is optional.
type Input struct {
	CompanyID       uuid.UUID
	MinSalary       *float64
	MaxSalary       *float64
	HighestDegree   string
	EmploymentTypes []string
	Country         string
	SkillIDs        []int64
}

// SalaryMin implements validate.HasSalaryRange.
func (in Input) SalaryMin() *float64 { return in.MinSalary }

// SalaryMax implements validate.HasSalaryRange.
func (in Input) SalaryMax() *float64 { return in.MaxSalary }

// Create validates the input and stores a new profile.
func (s *Service) Create(ctx context.Context, in Input) (domprof.Profile, error) {
	p, err := s.toDomain(in, uuid.Nil)
	if err != nil {
		return domprof.Profile{}, err
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return domprof.Profile{}, fmt.Errorf("create profile: %w", err)
	}
	return p, nil
}

// Update validates the input and replaces an existing profile.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in Input) (domprof.Profile, error) {
	if id == uuid.Nil {
		return domprof.Profile{}, fmt.Errorf("%w: profile id is required", domain.ErrValidation)
	}

	p, err := s.toDomain(in, id)
	if err != nil {
		return domprof.Profile{}, err
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return domprof.Profile{}, fmt.Errorf("update profile: %w", err)
	}
	return p, nil
}

// Get returns a profile by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (domprof.Profile, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return domprof.Profile{}, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

// Delete removes a profile.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}

// ListByCompany returns all profiles of one company.
func (s *Service) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domprof.Profile, error) {
	if companyID == uuid.Nil {
		return nil, fmt.Errorf("%w: company id is required", domain.ErrValidation)
	}
	profiles, err := s.repo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return profiles, nil
}

// toDomain resolves enum names and builds the validated aggregate. A zero
// existingID means a fresh profile with a generated id.
func (s *Service) toDomain(in Input, existingID uuid.UUID) (domprof.Profile, error) {
	if err := validate.SalaryRange(in); err != nil {
		return domprof.Profile{}, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	var deg *degree.Type
	if in.HighestDegree != "" {
		d, err := degree.Parse(in.HighestDegree)
		if err != nil {
			return domprof.Profile{}, fmt.Errorf("%w: %w", domain.ErrValidation, err)
		}
		deg = &d
	}

	types, err := employment.ParseSet(in.EmploymentTypes)
	if err != nil {
		return domprof.Profile{}, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	p, err := domprof.New(in.CompanyID, in.MinSalary, in.MaxSalary, deg, types, in.Country, in.SkillIDs)
	if err != nil {
		return domprof.Profile{}, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	if existingID != uuid.Nil {
		p = domprof.Reconstruct(
			existingID, p.CompanyID(), p.SalaryMin(), p.SalaryMax(),
			p.HighestDegree(), p.EmploymentTypes(), p.Country(), p.SkillIDs(),
		)
	}
	return p, nil
}
