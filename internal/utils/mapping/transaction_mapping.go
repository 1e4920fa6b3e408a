package mapping

import (
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		Amount:        d.Amount,
		Date:          d.Date,
		Description:   toNullString(d.Description),
		Type:          string(d.Type),
		UserID:        d.UserID,
		AccountID:     d.AccountID,
		CategoryID:    d.CategoryID,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		Amount:        m.Amount,
		Date:          m.Date,
		Description:   fromNullString(m.Description),
		Type:          domain.OperationType(m.Type),
		UserID:        m.UserID,
		AccountID:     m.AccountID,
		CategoryID:    m.CategoryID,
	}
}
