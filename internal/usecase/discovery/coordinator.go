// Package discovery orchestrates the per-event matching pipeline: index the
// candidate, fetch eligible companies and their profiles, evaluate, notify.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/saintgiong/discovery/internal/domain"
	domcand "github.com/saintgiong/discovery/internal/domain/candidate"
	domprof "github.com/saintgiong/discovery/internal/domain/profile"
)

// Coordinator processes candidate lifecycle events. It is stateless across
// events: delivery and redelivery semantics belong to the broker. Handler
// errors wrapping ErrValidation are permanent; anything else asks the broker
// to redeliver.
type Coordinator struct {
	indexer   Indexer
	companies CompanyDirectory
	profiles  ProfileReader
	evaluator Evaluator
	notifier  Notifier
	log       *zap.Logger

	retryAttempts int
	retryBase     time.Duration
}

// New creates a coordinator.
func New(
	indexer Indexer,
	companies CompanyDirectory,
	profiles ProfileReader,
	evaluator Evaluator,
	notifier Notifier,
	log *zap.Logger,
) *Coordinator {
	return &Coordinator{
		indexer:       indexer,
		companies:     companies,
		profiles:      profiles,
		evaluator:     evaluator,
		notifier:      notifier,
		log:           log,
		retryAttempts: 3,
		retryBase:     100 * time.Millisecond,
	}
}

// WithRetry configures bounded retry for the outbound calls.
func (c *Coordinator) WithRetry(attempts int, base time.Duration) *Coordinator {
	if attempts > 0 {
		c.retryAttempts = attempts
	}
	if base > 0 {
		c.retryBase = base
	}
	return c
}

// HandleCreated indexes a new candidate and runs a matching pass.
func (c *Coordinator) HandleCreated(ctx context.Context, doc *domcand.Document) error {
	return c.handleUpsert(ctx, doc, false)
}

// HandleUpdated replaces an indexed candidate and runs a matching pass.
func (c *Coordinator) HandleUpdated(ctx context.Context, doc *domcand.Document) error {
	return c.handleUpsert(ctx, doc, true)
}

// HandleDeleted removes the candidate from the index. No match evaluation
// runs on delete; a replayed delete for an already-removed document is
// acknowledged rather than retried.
func (c *Coordinator) HandleDeleted(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("%w: applicant id is required", domain.ErrValidation)
	}

	if err := c.indexer.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrCandidateNotFound) {
			c.log.Info("delete for unknown candidate, ignoring",
				zap.String("applicantId", id.String()))
			return nil
		}
		return fmt.Errorf("delete candidate %s: %w", id, err)
	}
	return nil
}

// handleUpsert is the create/update pipeline. Indexing failures propagate so
// the broker redelivers; every later stage is isolated and only logged. The
// pass attempts at most one notification per (candidate, profile, company)
// triple because each stored profile is evaluated exactly once.
func (c *Coordinator) handleUpsert(ctx context.Context, doc *domcand.Document, isUpdate bool) error {
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	outcome, err := c.indexer.Upsert(ctx, doc)
	if err != nil {
		return fmt.Errorf("index candidate %s: %w", doc.ApplicantID, err)
	}
	if outcome == domain.UpsertSkippedStale {
		// A fresher snapshot is already indexed; matching on this one
		// would notify companies with outdated data.
		c.log.Info("stale snapshot, skipping matching pass",
			zap.String("applicantId", doc.ApplicantID.String()))
		return nil
	}

	companyIDs, err := c.fetchCompanies(ctx)
	if err != nil {
		c.log.Warn("eligible companies unavailable, skipping matching pass",
			zap.String("applicantId", doc.ApplicantID.String()),
			zap.Error(err))
		return nil
	}
	if len(companyIDs) == 0 {
		return nil
	}

	profiles, err := c.fetchProfiles(ctx, companyIDs)
	if err != nil {
		c.log.Warn("profile fetch failed, skipping matching pass",
			zap.String("applicantId", doc.ApplicantID.String()),
			zap.Error(err))
		return nil
	}

	c.evaluateAndNotify(ctx, doc, profiles, isUpdate)
	return nil
}

func (c *Coordinator) fetchCompanies(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := withRetry(ctx, c.retryAttempts, c.retryBase, func(ctx context.Context) error {
		var err error
		ids, err = c.companies.EligibleCompanies(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, err)
	}
	return ids, nil
}

func (c *Coordinator) fetchProfiles(ctx context.Context, companyIDs []uuid.UUID) (
	[]domprof.Profile, error,
) {
	var out []domprof.Profile
	err := withRetry(ctx, c.retryAttempts, c.retryBase, func(ctx context.Context) error {
		profiles, err := c.profiles.ListByCompanies(ctx, companyIDs)
		if err != nil {
			return err
		}
		out = profiles
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, err)
	}
	return out, nil
}

// evaluateAndNotify runs the pure evaluator over every profile and dispatches
// one notification per match. A failed dispatch is logged and the pass
// continues; on shutdown the remaining attempts are abandoned.
func (c *Coordinator) evaluateAndNotify(
	ctx context.Context,
	doc *domcand.Document,
	profiles []domprof.Profile,
	isUpdate bool,
) {
	for _, p := range profiles {
		if ctx.Err() != nil {
			c.log.Info("shutting down, abandoning remaining notifications",
				zap.String("applicantId", doc.ApplicantID.String()))
			return
		}

		if !c.evaluator.Matches(p, doc) {
			continue
		}

		result := domain.MatchResult{
			CandidateID: doc.ApplicantID,
			ProfileID:   p.ID(),
			CompanyID:   p.CompanyID(),
		}

		err := withRetry(ctx, c.retryAttempts, c.retryBase, func(ctx context.Context) error {
			return c.notifier.Notify(ctx, result, isUpdate)
		})
		if err != nil {
			c.log.Warn("match notification failed",
				zap.String("applicantId", result.CandidateID.String()),
				zap.String("profileId", result.ProfileID.String()),
				zap.String("companyId", result.CompanyID.String()),
				zap.Error(err))
			continue
		}

		c.log.Info("match notified",
			zap.String("applicantId", result.CandidateID.String()),
			zap.String("profileId", result.ProfileID.String()),
			zap.String("companyId", result.CompanyID.String()),
			zap.Bool("isUpdate", isUpdate))
	}
}
