// Package search exposes ad-hoc candidate discovery over the document index.
package search

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/saintgiong/discovery/internal/domain"
	domcand "github.com/saintgiong/discovery/internal/domain/candidate"
	"github.com/saintgiong/discovery/internal/domain/country"
	domsearch "github.com/saintgiong/discovery/internal/domain/search"
)

// Service composes boolean queries from partial requests and runs them
// against the candidate index.
type Service struct {
	repo            Repository
	countries       *country.Table
	defaultPageSize int
	maxPageSize     int
}

// New creates a search service.
func New(repo Repository) *Service {
	return &Service{
		repo:            repo,
		countries:       country.Default(),
		defaultPageSize: 20,
		maxPageSize:     100,
	}
}

// WithPagination configures page size limits.
func (s *Service) WithPagination(defaultPageSize, maxPageSize int) *Service {
	if defaultPageSize > 0 {
		s.defaultPageSize = defaultPageSize
	}
	if maxPageSize > 0 {
		s.maxPageSize = maxPageSize
	}
	return s
}

// Result is one page of candidate hits.
type Result struct {
	Candidates []domcand.Document
	Total      int
	Page       domsearch.Page
}

// Search composes the request into a query and returns one page of hits.
// An empty request matches every candidate.
func (s *Service) Search(ctx context.Context, req domsearch.Request, page domsearch.Page) (*Result, error) {
	if page.Size == 0 {
		page.Size = s.defaultPageSize
	}
	if page.Size > s.maxPageSize {
		page.Size = s.maxPageSize
	}
	if err := page.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	// Clients may name a country by ISO code; the index stores display names.
	if req.LocationCountry {
		if name, ok := s.countries.Canonical(req.Location); ok {
			req.Location = name
		}
	}

	q := domsearch.Compose(req)

	docs, total, err := s.repo.Search(ctx, q, page)
	if err != nil {
		return nil, fmt.Errorf("search candidates: %w", err)
	}

	return &Result{Candidates: docs, Total: total, Page: page}, nil
}

// Get returns a single candidate document by applicant id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (domcand.Document, error) {
	if id == uuid.Nil {
		return domcand.Document{}, fmt.Errorf("%w: applicant id is required", domain.ErrValidation)
	}
	doc, err := s.repo.Get(ctx, id)
	if err != nil {
		return domcand.Document{}, fmt.Errorf("get candidate: %w", err)
	}
	return doc, nil
}
