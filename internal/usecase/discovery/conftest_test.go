package discovery

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/saintgiong/discovery/internal/domain"
	domcand "github.com/saintgiong/discovery/internal/domain/candidate"
	domprof "github.com/saintgiong/discovery/internal/domain/profile"
	"github.com/saintgiong/discovery/internal/usecase/match"
)

type mockIndexer struct {
	upsertFn func(ctx context.Context, doc *domcand.Document) (domain.UpsertOutcome, error)
	deleteFn func(ctx context.Context, id uuid.UUID) error
}

func (m *mockIndexer) Upsert(ctx context.Context, doc *domcand.Document) (domain.UpsertOutcome, error) {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, doc)
	}
	return domain.UpsertCreated, nil
}

func (m *mockIndexer) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockDirectory struct {
	fn func(ctx context.Context) ([]uuid.UUID, error)
}

func (m *mockDirectory) EligibleCompanies(ctx context.Context) ([]uuid.UUID, error) {
	if m.fn != nil {
		return m.fn(ctx)
	}
	return nil, nil
}

type mockProfiles struct {
	fn func(ctx context.Context, companyIDs []uuid.UUID) ([]domprof.Profile, error)
}

func (m *mockProfiles) ListByCompanies(ctx context.Context, companyIDs []uuid.UUID) ([]domprof.Profile, error) {
	if m.fn != nil {
		return m.fn(ctx, companyIDs)
	}
	return nil, nil
}

type notified struct {
	result   domain.MatchResult
	isUpdate bool
}

type mockNotifier struct {
	mu    sync.Mutex
	fn    func(ctx context.Context, m domain.MatchResult, isUpdate bool) error
	calls []notified
}

func (m *mockNotifier) Notify(ctx context.Context, r domain.MatchResult, isUpdate bool) error {
	m.mu.Lock()
	m.calls = append(m.calls, notified{result: r, isUpdate: isUpdate})
	m.mu.Unlock()
	if m.fn != nil {
		return m.fn(ctx, r, isUpdate)
	}
	return nil
}

func (m *mockNotifier) notifications() []notified {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]notified(nil), m.calls...)
}

type fixtures struct {
	indexer   *mockIndexer
	companies *mockDirectory
	profiles  *mockProfiles
	notifier  *mockNotifier
}

func newTestCoordinator(t *testing.T) (*Coordinator, *fixtures) {
	t.Helper()
	f := &fixtures{
		indexer:   &mockIndexer{},
		companies: &mockDirectory{},
		profiles:  &mockProfiles{},
		notifier:  &mockNotifier{},
	}
	c := New(f.indexer, f.companies, f.profiles, match.New(), f.notifier, zap.NewNop()).
		WithRetry(2, time.Millisecond)
	return c, f
}

func vietnamCandidate(t *testing.T) *domcand.Document {
	t.Helper()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	return &domcand.Document{
		ApplicantID: uuid.New(),
		FirstName:   "An",
		Country:     "Vietnam",
		SkillIDs:    []int64{2, 6},
		Educations:  []domcand.Education{{Degree: "Bachelor of Engineering"}},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func profileFor(t *testing.T, companyID uuid.UUID, country string, skillIDs []int64) domprof.Profile {
	t.Helper()
	return domprof.Reconstruct(uuid.New(), companyID, nil, nil, nil, 0, country, skillIDs)
}
