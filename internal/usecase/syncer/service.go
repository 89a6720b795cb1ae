// Package syncer re-seeds the candidate index from the upstream applicant
// system, recovering from missed lifecycle events.
package syncer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/saintgiong/discovery/internal/domain"
	domcand "github.com/saintgiong/discovery/internal/domain/candidate"
)

// UpstreamReader fetches the full applicant snapshot set.
type UpstreamReader interface {
	FetchApplicants(ctx context.Context) ([]domcand.Document, error)
}

// Indexer writes candidate documents to the document index.
type Indexer interface {
	Upsert(ctx context.Context, doc *domcand.Document) (domain.UpsertOutcome, error)
}

// Service runs a full re-sync pass. Individual document failures are logged
// and skipped so one bad record cannot abort the pass.
type Service struct {
	upstream UpstreamReader
	indexer  Indexer
	log      *zap.Logger
}

// New creates a sync service.
func New(upstream UpstreamReader, indexer Indexer, log *zap.Logger) *Service {
	return &Service{upstream: upstream, indexer: indexer, log: log}
}

// Stats summarizes one sync pass.
type Stats struct {
	Fetched int
	Created int
	Updated int
	Skipped int
}

// Sync fetches every upstream applicant and upserts it into the index.
// Last-write-wins in the gateway keeps a concurrent, fresher lifecycle event
// from being clobbered by the snapshot.
func (s *Service) Sync(ctx context.Context) (Stats, error) {
	docs, err := s.upstream.FetchApplicants(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("fetch applicants: %w", err)
	}

	stats := Stats{Fetched: len(docs)}
	for i := range docs {
		if ctx.Err() != nil {
			return stats, ctx.Err()
		}

		doc := &docs[i]
		if err := doc.Validate(); err != nil {
			stats.Skipped++
			s.log.Warn("skipping invalid applicant snapshot",
				zap.String("applicantId", doc.ApplicantID.String()),
				zap.Error(err))
			continue
		}

		outcome, err := s.indexer.Upsert(ctx, doc)
		if err != nil {
			stats.Skipped++
			s.log.Warn("applicant sync upsert failed",
				zap.String("applicantId", doc.ApplicantID.String()),
				zap.Error(err))
			continue
		}
		switch outcome {
		case domain.UpsertCreated:
			stats.Created++
		case domain.UpsertReplaced:
			stats.Updated++
		default:
			// The index already holds a fresher document.
			stats.Skipped++
		}
	}

	s.log.Info("applicant sync pass finished",
		zap.Int("fetched", stats.Fetched),
		zap.Int("created", stats.Created),
		zap.Int("updated", stats.Updated),
		zap.Int("skipped", stats.Skipped))
	return stats, nil
}
