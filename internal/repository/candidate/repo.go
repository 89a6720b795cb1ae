// Package candidate persists candidate documents in the search index.
package candidate

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/google/uuid"

	"github.com/saintgiong/discovery/internal/db"
	"github.com/saintgiong/discovery/internal/domain"
	domcand "github.com/saintgiong/discovery/internal/domain/candidate"
	"github.com/saintgiong/discovery/internal/domain/search"
)

// KeyPrefix prefixes every candidate hash key.
const KeyPrefix = "discovery:candidates:"

// IndexName is the FT index over candidate hashes.
const IndexName = "discovery:candidates:idx"

// store is the consumer interface for candidate documents (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGet(ctx context.Context, key, field string) (string, error)
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	IndexExists(ctx context.Context, name string) (bool, error)
	Search(ctx context.Context, q *db.SearchQuery) (*db.SearchResult, error)
}

// Repo implements the candidate index gateway over a hash store with FT
// search. Index creation is idempotent and lazy: the first operation that
// needs the index creates it, and a creation failure is retried on the next
// operation rather than latched.
type Repo struct {
	store store

	mu    sync.Mutex
	ready bool
}

// New creates a candidate repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// EnsureIndex creates the candidate index if it does not exist yet.
// Concurrent callers observe exactly one creation attempt at a time.
func (r *Repo) EnsureIndex(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ready {
		return nil
	}

	exists, err := r.store.IndexExists(ctx, IndexName)
	if err != nil {
		return indexErr("probe index", err)
	}
	if !exists {
		if err := r.store.CreateIndex(ctx, indexDefinition()); err != nil && !errors.Is(err, db.ErrIndexExists) {
			return indexErr("create index", err)
		}
	}

	r.ready = true
	return nil
}

// Upsert writes a candidate document, creating or replacing its hash.
// A document older than the stored one is skipped (last write wins by
// updatedAt) and the outcome reports the skip so callers can short-circuit
// work derived from the stale snapshot.
func (r *Repo) Upsert(ctx context.Context, doc *domcand.Document) (domain.UpsertOutcome, error) {
	if err := r.EnsureIndex(ctx); err != nil {
		return domain.UpsertSkippedStale, err
	}

	key := docKey(doc.ApplicantID)

	storedAt, err := r.store.HGet(ctx, key, search.FieldUpdatedAt)
	exists := true
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			return domain.UpsertSkippedStale, indexErr("hget "+key, err)
		}
		exists = false
	}

	if exists {
		if stored, perr := strconv.ParseInt(storedAt, 10, 64); perr == nil {
			if stored >= doc.UpdatedAt.UnixNano() {
				return domain.UpsertSkippedStale, nil
			}
		}
	}

	fields, err := buildHashFields(doc)
	if err != nil {
		return domain.UpsertSkippedStale, err
	}
	if err := r.store.HSet(ctx, key, fields); err != nil {
		return domain.UpsertSkippedStale, indexErr("hset "+key, err)
	}

	if exists {
		return domain.UpsertReplaced, nil
	}
	return domain.UpsertCreated, nil
}

// Get returns a candidate document by applicant ID.
func (r *Repo) Get(ctx context.Context, id uuid.UUID) (domcand.Document, error) {
	key := docKey(id)

	m, err := r.store.HGetAll(ctx, key)
	if err != nil {
		return domcand.Document{}, indexErr("hgetall "+key, err)
	}
	if len(m) == 0 {
		return domcand.Document{}, domain.ErrCandidateNotFound
	}

	return parseHashFields(m)
}

// Delete removes a candidate document. Deleting an absent document is an
// error so callers can distinguish replayed deletes.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	key := docKey(id)

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return indexErr("check exists "+key, err)
	}
	if !exists {
		return domain.ErrCandidateNotFound
	}

	if err := r.store.Del(ctx, key); err != nil {
		return indexErr("del "+key, err)
	}
	return nil
}

// Search runs a composed query with pagination and returns the matching
// documents plus the total hit count.
func (r *Repo) Search(ctx context.Context, q search.Query, page search.Page) ([]domcand.Document, int, error) {
	if err := page.Validate(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	if err := r.EnsureIndex(ctx); err != nil {
		return nil, 0, err
	}

	result, err := r.store.Search(ctx, &db.SearchQuery{
		IndexName:    IndexName,
		Query:        q,
		Offset:       page.Offset(),
		Limit:        page.Size,
		ReturnFields: []string{docField},
	})
	if err != nil {
		return nil, 0, indexErr("search candidates", err)
	}

	docs := make([]domcand.Document, 0, len(result.Entries))
	for _, entry := range result.Entries {
		doc, err := parseHashFields(entry.Fields)
		if err != nil {
			continue
		}
		docs = append(docs, doc)
	}

	return docs, result.Total, nil
}

func docKey(id uuid.UUID) string {
	return KeyPrefix + id.String()
}

// indexErr marks a store failure as an index transport error so callers can
// distinguish it from not-found and validation outcomes.
func indexErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrIndexUnavailable, op, err)
}
