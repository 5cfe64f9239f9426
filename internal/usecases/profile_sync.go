package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"brand-connector.backend/internal/domain/entities"
	domainerrors "brand-connector.backend/internal/domain/errors"
	"brand-connector.backend/internal/domain/repositories"
)

// syncOwner mirrors profile fields onto the owning user so that matching,
// which reads User.tag and User.location, sees the latest edit.
func syncOwner(ctx context.Context, userRepo repositories.UserRepository, userID uuid.UUID, changes entities.UserChanges) error {
	if changes.Empty() {
		return nil
	}

	user, err := userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if changes.Email.Valid && changes.Email.String != user.Email {
		other, err := userRepo.GetByEmail(ctx, changes.Email.String)
		if err == nil && other.ID != user.ID {
			return domainerrors.Conflict("email already registered")
		}
		if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
			return err
		}
	}

	if !changes.ApplyTo(user) {
		return nil
	}
	if err := userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return domainerrors.Conflict("email already registered")
		}
		return err
	}
	return nil
}
