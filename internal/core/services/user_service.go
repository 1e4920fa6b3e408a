package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/utils"
	"github.com/google/uuid"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// CreateUser registers a local user. Username and email must both be unused.
func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	if err := s.ensureUnused(ctx, req.Username, req.Email); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password", slog.String("username", req.Username))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		UserID:           uuid.NewString(),
		Username:         req.Username,
		Email:            req.Email,
		PasswordHash:     hash,
		AuthProvider:     domain.ProviderLocal,
		RegistrationDate: time.Now().UTC(),
		Roles:            []domain.Role{domain.RoleUser},
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("username", req.Username))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *userService) ensureUnused(ctx context.Context, username, email string) error {
	if _, err := s.userRepo.FindUserByUsername(ctx, username); err == nil {
		return fmt.Errorf("%w: username %s is taken", apperrors.ErrDuplicate, username)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to check username: %w", err)
	}
	if _, err := s.userRepo.FindUserByEmail(ctx, email); err == nil {
		return fmt.Errorf("%w: email %s is already registered", apperrors.ErrDuplicate, email)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to check email: %w", err)
	}
	return nil
}

// FindOrCreateOAuthUser links a provider sign-in to the user with the same email,
// registering a new user on first sign-in.
func (s *userService) FindOrCreateOAuthUser(ctx context.Context, name, email string, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	existing, err := s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}

	username := name
	if username == "" {
		username = email
	}
	if _, err := s.userRepo.FindUserByUsername(ctx, username); err == nil {
		username = email
	}

	user := domain.User{
		UserID:           uuid.NewString(),
		Username:         username,
		Email:            email,
		AuthProvider:     provider,
		ProviderUserID:   providerUserID,
		RegistrationDate: time.Now().UTC(),
		Roles:            []domain.Role{domain.RoleUser},
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save OAuth user", slog.String("provider", string(provider)))
		return nil, fmt.Errorf("failed to create oauth user: %w", err)
	}
	s.LogInfo(ctx, "OAuth user registered", slog.String("user_id", user.UserID), slog.String("provider", string(provider)))
	return &user, nil
}

// AuthenticateUser verifies a username/password pair.
func (s *userService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user.PasswordHash == "" || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	users, err := s.userRepo.FindUsers(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *userService) CountUsers(ctx context.Context) (int64, error) {
	count, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
