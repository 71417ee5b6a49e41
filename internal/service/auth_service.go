package service

import (
	"context"
	"log/slog"

	"github.com/adisurya/fintrack/internal/auth"
	"github.com/adisurya/fintrack/internal/models"
)

// AuthService implements user registration and login on top of an
// Authenticator, issuing JWTs for authenticated sessions.
type AuthService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	users         auth.UserStorage
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, users auth.UserStorage, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		users:         users,
		logger:        logger,
	}
}

// Register creates a new user account and returns the user with a
// session token.
func (s *AuthService) Register(ctx context.Context, email, displayName, password string) (*models.User, string, error) {
	s.logger.Info("Register request", "email", email)

	user, err := s.authenticator.Register(ctx, email, displayName, password)
	if err != nil {
		s.logger.Warn("Registration failed", "email", email, "error", err)
		return nil, "", err
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, "", err
	}

	s.logger.Info("User registered", "user_id", user.ID, "email", user.Email)
	return user, token, nil
}

// Login authenticates a user and returns the user with a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	s.logger.Info("Login request", "email", email)

	user, err := s.authenticator.Authenticate(ctx, email, password)
	if err != nil {
		s.logger.Warn("Login failed", "email", email, "error", err)
		return nil, "", err
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, "", err
	}

	s.logger.Info("User logged in", "user_id", user.ID, "email", user.Email)
	return user, token, nil
}

// CurrentUser returns the full account for an authenticated user ID.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to load current user", "user_id", userID, "error", err)
		return nil, err
	}
	if user == nil {
		// Token outlived the account.
		return nil, auth.ErrInvalidCredentials
	}
	return user, nil
}
