package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"brand-connector.backend/internal/domain/entities"
	domainerrors "brand-connector.backend/internal/domain/errors"
	"brand-connector.backend/internal/domain/repositories"
	"brand-connector.backend/pkg/logger"
)

// BrandUsecase handles brand profile business logic
type BrandUsecase struct {
	brandRepo repositories.BrandRepository
	userRepo  repositories.UserRepository
	uow       repositories.UnitOfWork
}

// NewBrandUsecase creates a new brand usecase
func NewBrandUsecase(
	brandRepo repositories.BrandRepository,
	userRepo repositories.UserRepository,
	uow repositories.UnitOfWork,
) *BrandUsecase {
	return &BrandUsecase{
		brandRepo: brandRepo,
		userRepo:  userRepo,
		uow:       uow,
	}
}

// UpdateProfile upserts the caller's brand profile
func (u *BrandUsecase) UpdateProfile(ctx context.Context, user *entities.User, input *entities.BrandUpdateInput) (*entities.Brand, error) {
	return u.upsert(ctx, user, uuid.Nil, input)
}

// UpdateProfileByID upserts the brand with the given id. The brand is created
// for the caller when it does not exist yet; a brand owned by someone else
// cannot be touched.
func (u *BrandUsecase) UpdateProfileByID(ctx context.Context, user *entities.User, brandID uuid.UUID, input *entities.BrandUpdateInput) (*entities.Brand, error) {
	if brandID == uuid.Nil {
		return nil, domainerrors.BadRequest("invalid brand id")
	}
	return u.upsert(ctx, user, brandID, input)
}

func (u *BrandUsecase) upsert(ctx context.Context, user *entities.User, brandID uuid.UUID, input *entities.BrandUpdateInput) (*entities.Brand, error) {
	if user.Role != entities.RoleBrand {
		return nil, domainerrors.Forbidden("only brand users can update brand profiles")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var brand *entities.Brand
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		if brandID != uuid.Nil {
			existing, err := u.brandRepo.GetByID(ctx, brandID)
			if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
				return err
			}
			if existing != nil && existing.UserID != user.ID {
				logger.Warn(ctx, "Brand update by non-owner",
					zap.String("brand_id", brandID.String()),
					zap.String("user_id", user.ID.String()),
				)
				return domainerrors.Forbidden("cannot update another brand")
			}
		}

		b, err := u.brandRepo.GetOrCreateByUserID(ctx, user.ID, brandID)
		if err != nil {
			return err
		}
		if brandID != uuid.Nil && b.ID != brandID {
			return domainerrors.NotFound("brand not found")
		}

		if err := input.ApplyTo(b); err != nil {
			return err
		}
		if err := u.brandRepo.Update(ctx, b); err != nil {
			return err
		}
		if err := syncOwner(ctx, u.userRepo, user.ID, input.UserChanges()); err != nil {
			return err
		}
		brand = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return brand, nil
}

// Filter lists brands matching every non-empty filter field
func (u *BrandUsecase) Filter(ctx context.Context, filter entities.BrandFilter) ([]*entities.BrandListing, int64, error) {
	return u.brandRepo.Filter(ctx, filter)
}

// Suggestions lists brands sharing the influencer's tag and location
func (u *BrandUsecase) Suggestions(ctx context.Context, user *entities.User) ([]*entities.BrandListing, error) {
	if user.Role != entities.RoleInfluencer {
		return nil, domainerrors.Forbidden("only influencers can access suggestions")
	}
	filter := entities.BrandFilter{
		Tag:      user.Tag.String,
		Location: user.Location.String,
	}
	items, _, err := u.brandRepo.Filter(ctx, filter)
	return items, err
}
