package discovery

import (
	"context"

	"github.com/google/uuid"

	"github.com/saintgiong/discovery/internal/domain"
	domcand "github.com/saintgiong/discovery/internal/domain/candidate"
	domprof "github.com/saintgiong/discovery/internal/domain/profile"
)

// Indexer writes candidate documents to the document index.
type Indexer interface {
	Upsert(ctx context.Context, doc *domcand.Document) (domain.UpsertOutcome, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CompanyDirectory resolves the companies eligible to receive matches.
type CompanyDirectory interface {
	EligibleCompanies(ctx context.Context) ([]uuid.UUID, error)
}

// ProfileReader loads search profiles in bulk.
type ProfileReader interface {
	ListByCompanies(ctx context.Context, companyIDs []uuid.UUID) ([]domprof.Profile, error)
}

// Evaluator is the matching predicate.
type Evaluator interface {
	Matches(p domprof.Profile, c *domcand.Document) bool
}

// Notifier dispatches one match notification. Fire-and-forget: no reply is
// expected beyond the error.
type Notifier interface {
	Notify(ctx context.Context, m domain.MatchResult, isUpdate bool) error
}
