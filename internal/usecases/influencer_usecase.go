package usecases

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"brand-connector.backend/internal/domain/entities"
	domainerrors "brand-connector.backend/internal/domain/errors"
	"brand-connector.backend/internal/domain/repositories"
	"brand-connector.backend/pkg/logger"
)

// InfluencerUsecase handles influencer profile business logic
type InfluencerUsecase struct {
	influencerRepo repositories.InfluencerRepository
	userRepo       repositories.UserRepository
	uow            repositories.UnitOfWork
}

// NewInfluencerUsecase creates a new influencer usecase
func NewInfluencerUsecase(
	influencerRepo repositories.InfluencerRepository,
	userRepo repositories.UserRepository,
	uow repositories.UnitOfWork,
) *InfluencerUsecase {
	return &InfluencerUsecase{
		influencerRepo: influencerRepo,
		userRepo:       userRepo,
		uow:            uow,
	}
}

// UpdateProfile upserts the caller's influencer profile
func (u *InfluencerUsecase) UpdateProfile(ctx context.Context, user *entities.User, input *entities.InfluencerUpdateInput) (*entities.Influencer, error) {
	if user.Role != entities.RoleInfluencer {
		return nil, domainerrors.Forbidden("only influencers can update influencer profiles")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var influencer *entities.Influencer
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		inf, err := u.influencerRepo.GetOrCreateByUserID(ctx, user.ID)
		if err != nil {
			return err
		}
		if err := input.ApplyTo(inf); err != nil {
			return err
		}
		if err := u.influencerRepo.Update(ctx, inf); err != nil {
			return err
		}
		if err := syncOwner(ctx, u.userRepo, user.ID, input.UserChanges()); err != nil {
			return err
		}
		influencer = inf
		return nil
	})
	if err != nil {
		return nil, err
	}
	return influencer, nil
}

// VerifyReach marks an influencer as verified. Repeating the call is a no-op.
func (u *InfluencerUsecase) VerifyReach(ctx context.Context, user *entities.User, influencerID uuid.UUID) (*entities.Influencer, error) {
	if user.Role != entities.RoleBrand {
		return nil, domainerrors.Forbidden("only brand users can request verification")
	}

	inf, err := u.influencerRepo.MarkVerified(ctx, influencerID)
	if err != nil {
		return nil, err
	}
	logger.Info(ctx, "Influencer reach verified",
		zap.String("influencer_id", influencerID.String()),
		zap.String("verified_by", user.ID.String()),
	)
	return inf, nil
}

// Filter lists influencers matching every non-empty filter field
func (u *InfluencerUsecase) Filter(ctx context.Context, filter entities.InfluencerFilter) ([]*entities.InfluencerListing, int64, error) {
	return u.influencerRepo.Filter(ctx, filter)
}

// Trending lists influencers by descending reach, optionally narrowed by tag
// and location.
func (u *InfluencerUsecase) Trending(ctx context.Context, tag, location string, limit, offset int) ([]entities.TrendingInfluencer, int64, error) {
	items, total, err := u.influencerRepo.Filter(ctx, entities.InfluencerFilter{
		Tag:         tag,
		Location:    location,
		SortByReach: true,
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		return nil, 0, err
	}

	out := make([]entities.TrendingInfluencer, 0, len(items))
	for _, item := range items {
		out = append(out, item.Trending())
	}
	return out, total, nil
}
