package repositories

import (
	"context"

	"github.com/google/uuid"
	"brand-connector.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	// Update persists name, email, tag and location
	Update(ctx context.Context, user *entities.User) error
}
