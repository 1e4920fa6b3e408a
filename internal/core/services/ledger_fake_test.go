package services_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// fakeLedger is an in-memory store for the transaction engine. Begin takes a global lock
// held until Commit or Rollback, standing in for the account row lock, and Rollback
// restores the state captured by Begin.
type fakeLedger struct {
	scope sync.Mutex // held for the lifetime of a database transaction
	mu    sync.Mutex

	accounts     map[string]domain.Account
	categories   map[string]domain.Category
	transactions map[string]domain.Transaction

	snapAccounts     map[string]domain.Account
	snapTransactions map[string]domain.Transaction

	// failOn makes the named method fail with the given error.
	failOn map[string]error

	commits   int
	rollbacks int
}

var (
	_ portsrepo.TransactionRepositoryWithTx = (*fakeLedger)(nil)
	_ portsrepo.AccountRepositoryFacade     = (*fakeLedger)(nil)
	_ portsrepo.CategoryReader              = (*fakeLedger)(nil)
)

func newFakeLedger() *fakeLedger {
	return &fakeLedger{
		accounts:     map[string]domain.Account{},
		categories:   map[string]domain.Category{},
		transactions: map[string]domain.Transaction{},
		failOn:       map[string]error{},
	}
}

func (l *fakeLedger) addAccount(id, userID, balance string) {
	l.accounts[id] = domain.Account{
		AccountID:   id,
		UserID:      userID,
		Name:        id,
		Currency:    "USD",
		AccountType: domain.Cash,
		Balance:     decimal.RequireFromString(balance),
	}
}

func (l *fakeLedger) addCategory(id string, typ domain.OperationType) {
	l.categories[id] = domain.Category{CategoryID: id, Name: id, Type: typ}
}

func (l *fakeLedger) balance(accountID string) decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.accounts[accountID].Balance
}

func (l *fakeLedger) transactionCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.transactions)
}

// signedSum is the balance an account must hold on top of its opening balance.
func (l *fakeLedger) signedSum(accountID string) decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	sum := decimal.Zero
	for _, t := range l.transactions {
		if t.AccountID == accountID {
			sum = sum.Add(t.SignedAmount())
		}
	}
	return sum
}

func (l *fakeLedger) fail(method string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.failOn[method]
}

// --- TransactionManager ---

func (l *fakeLedger) Begin(ctx context.Context) (pgx.Tx, error) {
	if err := l.fail("Begin"); err != nil {
		return nil, err
	}
	l.scope.Lock()
	l.mu.Lock()
	defer l.mu.Unlock()
	l.snapAccounts = make(map[string]domain.Account, len(l.accounts))
	for k, v := range l.accounts {
		l.snapAccounts[k] = v
	}
	l.snapTransactions = make(map[string]domain.Transaction, len(l.transactions))
	for k, v := range l.transactions {
		l.snapTransactions[k] = v
	}
	return nil, nil
}

func (l *fakeLedger) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := l.fail("Commit"); err != nil {
		return err
	}
	l.mu.Lock()
	l.snapAccounts, l.snapTransactions = nil, nil
	l.commits++
	l.mu.Unlock()
	l.scope.Unlock()
	return nil
}

func (l *fakeLedger) Rollback(ctx context.Context, tx pgx.Tx) error {
	l.mu.Lock()
	l.accounts, l.transactions = l.snapAccounts, l.snapTransactions
	l.snapAccounts, l.snapTransactions = nil, nil
	l.rollbacks++
	l.mu.Unlock()
	l.scope.Unlock()
	return nil
}

// --- AccountRepositoryFacade ---

func (l *fakeLedger) SaveAccount(ctx context.Context, account domain.Account) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.accounts[account.AccountID] = account
	return nil
}

func (l *fakeLedger) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, ok := l.accounts[accountID]
	if !ok {
		return nil, apperrors.NewNotFoundError("account", accountID)
	}
	return &a, nil
}

func (l *fakeLedger) ListAccountsByUser(ctx context.Context, userID string) ([]domain.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []domain.Account
	for _, a := range l.accounts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (l *fakeLedger) SearchAccounts(ctx context.Context, filter domain.AccountFilter) ([]domain.Account, error) {
	return nil, nil
}

func (l *fakeLedger) FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.Account, error) {
	if err := l.fail("FindAccountByIDForUpdate"); err != nil {
		return nil, err
	}
	return l.FindAccountByID(ctx, accountID)
}

func (l *fakeLedger) UpdateAccountBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, balance decimal.Decimal, userID string, now time.Time) error {
	if err := l.fail("UpdateAccountBalanceInTx"); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	a, ok := l.accounts[accountID]
	if !ok {
		return apperrors.NewNotFoundError("account", accountID)
	}
	a.Balance = balance
	a.LastUpdatedAt = now
	a.LastUpdatedBy = userID
	l.accounts[accountID] = a
	return nil
}

// --- CategoryReader ---

func (l *fakeLedger) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	c, ok := l.categories[categoryID]
	if !ok {
		return nil, apperrors.NewNotFoundError("category", categoryID)
	}
	return &c, nil
}

func (l *fakeLedger) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return nil, nil
}

func (l *fakeLedger) SearchCategories(ctx context.Context, filter domain.CategoryFilter) ([]domain.Category, error) {
	return nil, nil
}

// --- TransactionRepositoryFacade ---

func (l *fakeLedger) SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	if err := l.fail("SaveTransactionInTx"); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.transactions[txn.TransactionID] = txn
	return nil
}

func (l *fakeLedger) FindTransactionByIDForUpdate(ctx context.Context, tx pgx.Tx, transactionID string) (*domain.Transaction, error) {
	return l.FindTransactionByID(ctx, transactionID)
}

func (l *fakeLedger) DeleteTransactionInTx(ctx context.Context, tx pgx.Tx, transactionID string) error {
	if err := l.fail("DeleteTransactionInTx"); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.transactions[transactionID]; !ok {
		return apperrors.NewNotFoundError("transaction", transactionID)
	}
	delete(l.transactions, transactionID)
	return nil
}

func (l *fakeLedger) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	t, ok := l.transactions[transactionID]
	if !ok {
		return nil, apperrors.NewNotFoundError("transaction", transactionID)
	}
	return &t, nil
}

func (l *fakeLedger) ListTransactionsByAccountID(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []domain.Transaction
	for _, t := range l.transactions {
		if t.AccountID == accountID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TransactionID > out[j].TransactionID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil, nil
}

func (l *fakeLedger) ListAllTransactions(ctx context.Context) ([]domain.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]domain.Transaction, 0, len(l.transactions))
	for _, t := range l.transactions {
		out = append(out, t)
	}
	return out, nil
}

func (l *fakeLedger) FindTransactionsByUserAndCategoryAndDateBetween(ctx context.Context, userID, categoryID string, start, end time.Time) ([]domain.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []domain.Transaction
	for _, t := range l.transactions {
		if t.UserID == userID && t.CategoryID == categoryID && !t.Date.Before(start) && !t.Date.After(end) {
			out = append(out, t)
		}
	}
	return out, nil
}
