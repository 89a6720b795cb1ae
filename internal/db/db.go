// Package db defines the storage contract for the document index and the
// event streams. Consumers depend on the narrow sub-interfaces; the facade
// is wired once at the composition root.
package db

import (
	"context"
	"time"
)

// Store is the main database facade combining all sub-interfaces.
//
//nolint:interfacebloat // facade by design -- consumers use narrow sub-interfaces (ISP)
type Store interface {
	Pinger
	HashStore
	IndexManager
	Searcher
	Streamer
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HashStore provides hash-based key-value operations.
type HashStore interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGet(ctx context.Context, key, field string) (string, error)
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// IndexManager provides FT index lifecycle operations.
type IndexManager interface {
	CreateIndex(ctx context.Context, def *IndexDefinition) error
	DropIndex(ctx context.Context, name string) error
	IndexExists(ctx context.Context, name string) (bool, error)
}

// Searcher executes structured queries over an FT index.
type Searcher interface {
	Search(ctx context.Context, q *SearchQuery) (*SearchResult, error)
}

// Streamer provides stream operations for the event feed.
type Streamer interface {
	XAdd(ctx context.Context, stream string, values map[string]string) (string, error)
	XGroupCreate(ctx context.Context, stream, group string) error
	// XReadGroup reads up to count messages per stream for the consumer.
	// id ">" delivers new messages; "0" replays the consumer's pending
	// backlog. A block of zero returns immediately.
	XReadGroup(
		ctx context.Context, group, consumer, id string,
		streams []string, count int64, block time.Duration,
	) ([]StreamMessage, error)
	XAck(ctx context.Context, stream, group string, ids ...string) error
}
