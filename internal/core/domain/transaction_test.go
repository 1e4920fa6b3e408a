package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_SignedAmount(t *testing.T) {
	tests := []struct {
		name        string
		transaction domain.Transaction
		want        decimal.Decimal
	}{
		{
			name:        "income adds to balance",
			transaction: domain.Transaction{Amount: decimal.RequireFromString("250.50"), Type: domain.Income},
			want:        decimal.RequireFromString("250.50"),
		},
		{
			name:        "expense subtracts from balance",
			transaction: domain.Transaction{Amount: decimal.RequireFromString("1000.00"), Type: domain.Expense},
			want:        decimal.RequireFromString("-1000.00"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.transaction.SignedAmount()
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestAccount_CanWithdraw(t *testing.T) {
	acc := domain.Account{Balance: decimal.RequireFromString("1000.00")}
	assert.True(t, acc.CanWithdraw(decimal.RequireFromString("1000.00")))
	assert.True(t, acc.CanWithdraw(decimal.RequireFromString("999.99")))
	assert.False(t, acc.CanWithdraw(decimal.RequireFromString("1000.01")))
}

func TestOperationType_IsValid(t *testing.T) {
	assert.True(t, domain.Income.IsValid())
	assert.True(t, domain.Expense.IsValid())
	assert.False(t, domain.OperationType("TRANSFER").IsValid())
	assert.False(t, domain.OperationType("").IsValid())
}

func TestBudget_Range(t *testing.T) {
	b := domain.Budget{
		PeriodStart: time.Date(2023, 10, 1, 15, 4, 5, 0, time.UTC),
		PeriodEnd:   time.Date(2023, 10, 31, 0, 0, 0, 0, time.UTC),
	}
	start, end := b.Range()
	assert.Equal(t, time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2023, 10, 31, 23, 59, 59, 0, time.UTC), end)
}

func TestBudget_IsExceeded(t *testing.T) {
	b := domain.Budget{AmountLimit: decimal.RequireFromString("500.00")}
	assert.True(t, b.IsExceeded(decimal.RequireFromString("600.00")))
	assert.False(t, b.IsExceeded(decimal.RequireFromString("500.00")), "equal to the limit is not exceeded")
	assert.False(t, b.IsExceeded(decimal.Zero))
}

func TestReportStatus_IsTerminal(t *testing.T) {
	assert.False(t, domain.ReportCreated.IsTerminal())
	assert.True(t, domain.ReportCompleted.IsTerminal())
	assert.True(t, domain.ReportError.IsTerminal())
}

func TestFitsMoneyScale(t *testing.T) {
	tests := []struct {
		amount string
		want   bool
	}{
		{"1000", true},
		{"0.0001", true},
		{"12.340000", true},
		{"0.00005", false},
		{"-3.14159", false},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.FitsMoneyScale(decimal.RequireFromString(tt.amount)))
		})
	}
}
