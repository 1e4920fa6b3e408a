package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// transactionService posts and reverses transactions. Every balance change happens inside
// one database transaction holding the account row lock.
type transactionService struct {
	BaseService
	txnRepo      portsrepo.TransactionRepositoryWithTx
	accountRepo  portsrepo.AccountRepositoryFacade
	categoryRepo portsrepo.CategoryReader
	now          func() time.Time
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithClock overrides the clock used for transaction dates and audit fields.
func WithClock(now func() time.Time) TransactionServiceOption {
	return func(s *transactionService) {
		s.now = now
	}
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(
	txnRepo portsrepo.TransactionRepositoryWithTx,
	accountRepo portsrepo.AccountRepositoryFacade,
	categoryRepo portsrepo.CategoryReader,
	options ...TransactionServiceOption,
) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		txnRepo:      txnRepo,
		accountRepo:  accountRepo,
		categoryRepo: categoryRepo,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// inTx runs fn inside a database transaction and commits when fn succeeds.
func (s *transactionService) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := s.txnRepo.Begin(ctx)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			if rbErr := s.txnRepo.Rollback(ctx, tx); rbErr != nil {
				s.LogError(ctx, rbErr, "Failed to roll back transaction")
			}
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := s.txnRepo.Commit(ctx, tx); err != nil {
		return err
	}
	committed = true
	return nil
}

// CreateTransaction validates the request, records the transaction and applies its signed
// amount to the account balance.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("amount must be greater than zero")
	}
	if !domain.FitsMoneyScale(req.Amount) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("amount must have at most %d decimal places", domain.MoneyScale))
	}
	if !req.Type.IsValid() {
		return nil, apperrors.NewValidationError("unknown operation type " + string(req.Type))
	}

	var created domain.Transaction
	err := s.inTx(ctx, func(tx pgx.Tx) error {
		account, err := s.accountRepo.FindAccountByIDForUpdate(ctx, tx, req.AccountID)
		if err != nil {
			return err
		}
		if account.UserID != userID {
			return apperrors.NewNotFoundError("account", req.AccountID)
		}

		category, err := s.categoryRepo.FindCategoryByID(ctx, req.CategoryID)
		if err != nil {
			return err
		}
		if category.Type != req.Type {
			return apperrors.NewConflictError(fmt.Sprintf("type mismatch: category %s is %s, transaction is %s", category.CategoryID, category.Type, req.Type))
		}
		if req.Type == domain.Expense && !account.CanWithdraw(req.Amount) {
			return apperrors.NewConflictError(fmt.Sprintf("insufficient funds: balance %s, amount %s", account.Balance.StringFixed(2), req.Amount.StringFixed(2)))
		}

		now := s.now().UTC()
		created = domain.Transaction{
			TransactionID: uuid.NewString(),
			Amount:        req.Amount,
			Date:          now.Truncate(time.Second),
			Description:   req.Description,
			Type:          req.Type,
			UserID:        account.UserID,
			AccountID:     account.AccountID,
			CategoryID:    category.CategoryID,
		}
		if err := s.txnRepo.SaveTransactionInTx(ctx, tx, created); err != nil {
			return err
		}
		newBalance := account.Balance.Add(created.SignedAmount())
		return s.accountRepo.UpdateAccountBalanceInTx(ctx, tx, account.AccountID, newBalance, userID, now)
	})
	if err != nil {
		s.LogDebug(ctx, "Transaction rejected",
			slog.String("account_id", req.AccountID),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", created.TransactionID),
		slog.String("account_id", created.AccountID),
		slog.String("type", string(created.Type)))
	return &created, nil
}

// DeleteTransaction removes a transaction and reverses its effect on the account balance.
func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string, userID string) error {
	err := s.inTx(ctx, func(tx pgx.Tx) error {
		txn, err := s.txnRepo.FindTransactionByIDForUpdate(ctx, tx, transactionID)
		if err != nil {
			return err
		}
		if txn.UserID != userID {
			return apperrors.NewNotFoundError("transaction", transactionID)
		}

		account, err := s.accountRepo.FindAccountByIDForUpdate(ctx, tx, txn.AccountID)
		if err != nil {
			return err
		}
		if err := s.txnRepo.DeleteTransactionInTx(ctx, tx, txn.TransactionID); err != nil {
			return err
		}
		newBalance := account.Balance.Sub(txn.SignedAmount())
		return s.accountRepo.UpdateAccountBalanceInTx(ctx, tx, account.AccountID, newBalance, userID, s.now().UTC())
	})
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	if txn.UserID != userID {
		return nil, apperrors.NewNotFoundError("transaction", transactionID)
	}
	return txn, nil
}

// ListTransactionsByAccount returns a page of the caller's account history, newest first.
func (s *transactionService) ListTransactionsByAccount(ctx context.Context, accountID string, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if account.UserID != userID {
		return nil, apperrors.NewNotFoundError("account", accountID)
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	txns, nextToken, err := s.txnRepo.ListTransactionsByAccountID(ctx, accountID, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    nextToken,
	}, nil
}
