package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"summary-share/apperrors"
	"summary-share/cmd/api/auth"
	"summary-share/models"
	"summary-share/repositories"
)

// AuthService implements registration, login and token refresh on top of
// the user repository and the JWT manager.
type AuthService struct {
	users repositories.UserRepository
	jwt   *auth.JWTManager
}

func NewAuthService(users repositories.UserRepository, jwt *auth.JWTManager) *AuthService {
	return &AuthService{users: users, jwt: jwt}
}

// Register creates an account plus its profile and issues a token pair.
// Duplicate usernames or emails are rejected.
func (s *AuthService) Register(ctx context.Context, email, username, password string) (*models.User, *auth.TokenPair, error) {
	existing, err := s.users.GetByUsernameOrEmail(ctx, username, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, apperrors.ErrInternal.WithCause(err)
	}
	if existing != nil {
		return nil, nil, apperrors.ErrValidation.WithMessage("user already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, apperrors.ErrInternal.WithCause(err)
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, nil, apperrors.ErrValidation.WithMessage("failed to create user").WithCause(err)
	}

	tokens, err := s.jwt.Sign(user.ID)
	if err != nil {
		return nil, nil, apperrors.ErrInternal.WithCause(err)
	}
	return user, tokens, nil
}

// Login authenticates by username or email. An unknown account is a not
// found error; a wrong password is an authorization error.
func (s *AuthService) Login(ctx context.Context, username, email, password string) (*models.User, *auth.TokenPair, error) {
	user, err := s.users.GetByUsernameOrEmail(ctx, username, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrNotFound.WithMessage("user not found")
		}
		return nil, nil, apperrors.ErrInternal.WithCause(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, apperrors.ErrAuthorization.WithMessage("incorrect password")
	}

	tokens, err := s.jwt.Sign(user.ID)
	if err != nil {
		return nil, nil, apperrors.ErrInternal.WithCause(err)
	}
	return user, tokens, nil
}

// Refresh verifies a refresh token and issues a fresh token pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	userID, err := s.jwt.Parse(refreshToken, auth.TokenTypeRefresh)
	if err != nil {
		return nil, apperrors.ErrAuthorization.WithMessage("invalid refresh token")
	}

	// The account may have been deleted since the token was issued.
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound.WithMessage("user not found")
		}
		return nil, apperrors.ErrInternal.WithCause(err)
	}

	tokens, err := s.jwt.Sign(userID)
	if err != nil {
		return nil, apperrors.ErrInternal.WithCause(err)
	}
	return tokens, nil
}

// Profile loads an account with its reaction id sets.
func (s *AuthService) Profile(ctx context.Context, userID uint) (*models.User, *repositories.ReactionIDs, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrNotFound.WithMessage("user data not found")
		}
		return nil, nil, apperrors.ErrInternal.WithCause(err)
	}

	reactions, err := s.users.GetReactionIDs(ctx, userID)
	if err != nil {
		return nil, nil, apperrors.ErrInternal.WithCause(err)
	}
	return user, reactions, nil
}

// DeleteAccount removes the account; the profile and all authored
// summaries cascade with it.
func (s *AuthService) DeleteAccount(ctx context.Context, userID uint) error {
	if err := s.users.Delete(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound.WithMessage("user not found")
		}
		return apperrors.ErrInternal.WithCause(err)
	}
	return nil
}
