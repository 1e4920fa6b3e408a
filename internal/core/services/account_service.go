package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/google/uuid"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	userRepo    portsrepo.UserReader
}

// NewAccountService creates a new account service.
func NewAccountService(repo portsrepo.AccountRepositoryFacade, userRepo portsrepo.UserReader) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: repo, userRepo: userRepo}
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	if !req.AccountType.IsValid() {
		return nil, apperrors.NewValidationError("unknown account type " + string(req.AccountType))
	}
	if req.InitialBalance.IsNegative() {
		return nil, apperrors.NewValidationError("initial balance must not be negative")
	}
	if !domain.FitsMoneyScale(req.InitialBalance) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("initial balance must have at most %d decimal places", domain.MoneyScale))
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		UserID:      userID,
		Name:        req.Name,
		Currency:    strings.ToUpper(req.Currency),
		AccountType: req.AccountType,
		Balance:     req.InitialBalance,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account",
			slog.String("account_id", account.AccountID),
			slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_id", account.AccountID),
		slog.String("user_id", userID))
	return &account, nil
}

// GetAccountByID returns the account if userID owns it. Other users' accounts are not found.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string, userID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if account.UserID != userID {
		s.LogDebug(ctx, "Account requested by non-owner",
			slog.String("account_id", accountID),
			slog.String("user_id", userID))
		return nil, apperrors.NewNotFoundError("account", accountID)
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccountsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// SearchAccounts scopes the search to userID's own accounts unless the caller is an
// admin, so another user's email yields NotFound.
func (s *accountService) SearchAccounts(ctx context.Context, filter domain.AccountFilter, userID string) ([]domain.Account, error) {
	filter.UserEmail = strings.TrimSpace(filter.UserEmail)
	if filter.UserEmail == "" {
		return nil, apperrors.NewValidationError("userEmail is required")
	}
	if filter.MinBalance != nil && filter.MaxBalance != nil && filter.MinBalance.GreaterThan(*filter.MaxBalance) {
		return nil, apperrors.NewValidationError("minBalance must not exceed maxBalance")
	}

	caller, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to search accounts: %w", err)
	}
	filter.OwnerID = ""
	if !caller.HasRole(domain.RoleAdmin) {
		filter.OwnerID = userID
	}

	accounts, err := s.accountRepo.SearchAccounts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search accounts: %w", err)
	}
	if len(accounts) == 0 {
		return nil, apperrors.NewNotFoundError("accounts", "matching "+filter.UserEmail)
	}
	return accounts, nil
}
