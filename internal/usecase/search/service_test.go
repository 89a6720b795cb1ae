package search

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/saintgiong/discovery/internal/domain"
	domcand "github.com/saintgiong/discovery/internal/domain/candidate"
	domsearch "github.com/saintgiong/discovery/internal/domain/search"
)

type mockRepo struct {
	getFn    func(ctx context.Context, id uuid.UUID) (domcand.Document, error)
	searchFn func(ctx context.Context, q domsearch.Query, page domsearch.Page) ([]domcand.Document, int, error)
}

func (m *mockRepo) Get(ctx context.Context, id uuid.UUID) (domcand.Document, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return domcand.Document{}, domain.ErrCandidateNotFound
}

func (m *mockRepo) Search(ctx context.Context, q domsearch.Query, page domsearch.Page) ([]domcand.Document, int, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, q, page)
	}
	return nil, 0, nil
}

func TestSearch_EmptyRequestComposesMatchAll(t *testing.T) {
	repo := &mockRepo{}
	var gotQuery domsearch.Query
	repo.searchFn = func(_ context.Context, q domsearch.Query, _ domsearch.Page) ([]domcand.Document, int, error) {
		gotQuery = q
		return nil, 0, nil
	}

	svc := New(repo)
	if _, err := svc.Search(context.Background(), domsearch.Request{}, domsearch.Page{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !gotQuery.IsMatchAll() {
		t.Error("empty request must compose to match-all")
	}
}

func TestSearch_DefaultAndMaxPageSize(t *testing.T) {
	repo := &mockRepo{}
	var gotPage domsearch.Page
	repo.searchFn = func(_ context.Context, _ domsearch.Query, page domsearch.Page) ([]domcand.Document, int, error) {
		gotPage = page
		return nil, 0, nil
	}

	svc := New(repo)

	if _, err := svc.Search(context.Background(), domsearch.Request{}, domsearch.Page{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPage.Size != 20 {
		t.Errorf("default page size = %d, want 20", gotPage.Size)
	}

	if _, err := svc.Search(context.Background(), domsearch.Request{}, domsearch.Page{Size: 5000}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPage.Size != 100 {
		t.Errorf("clamped page size = %d, want 100", gotPage.Size)
	}
}

func TestSearch_InvalidPage(t *testing.T) {
	svc := New(&mockRepo{})
	_, err := svc.Search(context.Background(), domsearch.Request{}, domsearch.Page{Number: -1, Size: 10})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestSearch_PassesComposedClauses(t *testing.T) {
	repo := &mockRepo{}
	var gotQuery domsearch.Query
	repo.searchFn = func(_ context.Context, q domsearch.Query, _ domsearch.Page) ([]domcand.Document, int, error) {
		gotQuery = q
		return []domcand.Document{{ApplicantID: uuid.New()}}, 1, nil
	}

	svc := New(repo)
	res, err := svc.Search(context.Background(), domsearch.Request{
		Name:     "an nguyen",
		SkillIDs: []int64{2, 5},
	}, domsearch.Page{Size: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gotQuery.Must()) != 2 {
		t.Errorf("clauses = %d, want 2", len(gotQuery.Must()))
	}
	if res.Total != 1 || len(res.Candidates) != 1 {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestSearch_NormalizesCountryCode(t *testing.T) {
	repo := &mockRepo{}
	var gotQuery domsearch.Query
	repo.searchFn = func(_ context.Context, q domsearch.Query, _ domsearch.Page) ([]domcand.Document, int, error) {
		gotQuery = q
		return nil, 0, nil
	}

	svc := New(repo)
	_, err := svc.Search(context.Background(), domsearch.Request{
		Location:        "VN",
		LocationCountry: true,
	}, domsearch.Page{Size: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	must := gotQuery.Must()
	if len(must) != 1 {
		t.Fatalf("clauses = %d, want 1", len(must))
	}
	if vals := must[0].Values(); len(vals) != 1 || vals[0] != "Vietnam" {
		t.Errorf("country clause values = %v, want [Vietnam]", vals)
	}
}

func TestGet_RequiresID(t *testing.T) {
	svc := New(&mockRepo{})
	_, err := svc.Get(context.Background(), uuid.Nil)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestGet_NotFoundPassesThrough(t *testing.T) {
	svc := New(&mockRepo{})
	_, err := svc.Get(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrCandidateNotFound) {
		t.Fatalf("expected ErrCandidateNotFound, got %v", err)
	}
}
