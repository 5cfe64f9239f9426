package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"brand-connector.backend/internal/domain/entities"
	domainerrors "brand-connector.backend/internal/domain/errors"
	"brand-connector.backend/internal/domain/repositories"
	"brand-connector.backend/pkg/crypto"
	"brand-connector.backend/pkg/jwt"
	"brand-connector.backend/pkg/logger"
)

// TokenType is the token_type reported with every issued access token
const TokenType = "bearer"

var hashPassword = crypto.HashPassword

// AuthUsecase handles authentication business logic
type AuthUsecase struct {
	userRepo   repositories.UserRepository
	jwtService *jwt.JWTService
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo repositories.UserRepository, jwtService *jwt.JWTService) *AuthUsecase {
	return &AuthUsecase{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Signup registers a new user
func (u *AuthUsecase) Signup(ctx context.Context, input *entities.SignupInput) (*entities.User, error) {
	role, ok := entities.ParseRole(input.Role)
	if !ok {
		return nil, domainerrors.BadRequest("role must be one of: brand, influencer")
	}
	if len(input.Password) > crypto.MaxPasswordBytes {
		return nil, domainerrors.BadRequest("password must be at most 72 bytes")
	}
	email := strings.TrimSpace(input.Email)

	// Check if email already exists
	_, err := u.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, domainerrors.Conflict("email already registered")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := hashPassword(input.Password)
	if err != nil {
		if errors.Is(err, crypto.ErrPasswordTooLong) {
			return nil, domainerrors.BadRequest("password must be at most 72 bytes")
		}
		return nil, err
	}

	user := &entities.User{
		Name:         input.Name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
	}
	if input.Tag != "" {
		user.Tag.SetValid(input.Tag)
	}
	if input.Location != "" {
		user.Location.SetValid(input.Location)
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict("email already registered")
		}
		return nil, err
	}

	logger.Info(ctx, "User signed up", zap.String("user_id", user.ID.String()), zap.String("role", string(role)))
	return user, nil
}

// Login authenticates a user and issues an access token
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, strings.TrimSpace(input.Email))
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			logger.Warn(ctx, "Login for unknown email")
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		logger.Warn(ctx, "Login with wrong password", zap.String("user_id", user.ID.String()))
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := u.jwtService.GenerateAccessToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		AccessToken: token,
		TokenType:   TokenType,
		ExpiresIn:   int64(u.jwtService.Expiry().Seconds()),
	}, nil
}

// Authenticate resolves a bearer token to its user. Expired, forged and
// orphaned tokens all fail the same way.
func (u *AuthUsecase) Authenticate(ctx context.Context, token string) (*entities.User, error) {
	claims, err := u.jwtService.ValidateToken(token)
	if err != nil {
		return nil, domainerrors.Unauthorized("invalid or expired token")
	}
	userID, err := claims.UserID()
	if err != nil {
		return nil, domainerrors.Unauthorized("invalid or expired token")
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.Unauthorized("user not found")
		}
		return nil, err
	}
	return user, nil
}

// GetUserByID gets a user by ID
func (u *AuthUsecase) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}
