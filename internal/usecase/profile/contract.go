package profile

import (
	"context"

	"github.com/google/uuid"

	domprof "github.com/saintgiong/discovery/internal/domain/profile"
)

// Repository defines the storage contract for search profiles.
type Repository interface {
	Create(ctx context.Context, p domprof.Profile) error
	Update(ctx context.Context, p domprof.Profile) error
	Get(ctx context.Context, id uuid.UUID) (domprof.Profile, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domprof.Profile, error)
}
