package repositories

import (
	"context"

	"github.com/google/uuid"
	"brand-connector.backend/internal/domain/entities"
)

// InfluencerRepository defines influencer profile operations
type InfluencerRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Influencer, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Influencer, error)
	// GetOrCreateByUserID returns the user's influencer profile, inserting a
	// default one when none exists yet.
	GetOrCreateByUserID(ctx context.Context, userID uuid.UUID) (*entities.Influencer, error)
	Update(ctx context.Context, influencer *entities.Influencer) error
	// MarkVerified sets verified=true; there is no operation that clears it.
	MarkVerified(ctx context.Context, id uuid.UUID) (*entities.Influencer, error)
	Filter(ctx context.Context, filter entities.InfluencerFilter) ([]*entities.InfluencerListing, int64, error)
}
