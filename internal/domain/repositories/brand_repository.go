package repositories

import (
	"context"

	"github.com/google/uuid"
	"brand-connector.backend/internal/domain/entities"
)

// BrandRepository defines brand profile operations
type BrandRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Brand, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Brand, error)
	// GetOrCreateByUserID returns the user's brand, inserting an empty one
	// under id when none exists yet.
	GetOrCreateByUserID(ctx context.Context, userID, id uuid.UUID) (*entities.Brand, error)
	Update(ctx context.Context, brand *entities.Brand) error
	// Filter returns matching brands joined with their owners and the total
	// number of matches before paging.
	Filter(ctx context.Context, filter entities.BrandFilter) ([]*entities.BrandListing, int64, error)
}
