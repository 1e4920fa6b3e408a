package mapping

import (
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/models"
)

func ToModelBudget(d domain.Budget) models.Budget {
	return models.Budget{
		BudgetID:    d.BudgetID,
		Name:        d.Name,
		AmountLimit: d.AmountLimit,
		PeriodStart: d.PeriodStart,
		PeriodEnd:   d.PeriodEnd,
		UserID:      d.UserID,
		CategoryID:  d.CategoryID,
	}
}

func ToDomainBudget(m models.Budget) domain.Budget {
	return domain.Budget{
		BudgetID:    m.BudgetID,
		Name:        m.Name,
		AmountLimit: m.AmountLimit,
		PeriodStart: m.PeriodStart,
		PeriodEnd:   m.PeriodEnd,
		UserID:      m.UserID,
		CategoryID:  m.CategoryID,
	}
}
