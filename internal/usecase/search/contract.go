package search

import (
	"context"

	"github.com/google/uuid"

	domcand "github.com/saintgiong/discovery/internal/domain/candidate"
	domsearch "github.com/saintgiong/discovery/internal/domain/search"
)

// Repository defines the index gateway contract for candidate search.
type Repository interface {
	Get(ctx context.Context, id uuid.UUID) (domcand.Document, error)
	Search(ctx context.Context, q domsearch.Query, page domsearch.Page) (
		docs []domcand.Document, total int, err error,
	)
}
