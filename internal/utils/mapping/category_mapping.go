package mapping

import (
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/models"
)

func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID:  d.CategoryID,
		Name:        d.Name,
		Description: toNullString(d.Description),
		Type:        string(d.Type),
		ColorCode:   toNullString(d.ColorCode),
	}
}

func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID:  m.CategoryID,
		Name:        m.Name,
		Description: fromNullString(m.Description),
		Type:        domain.OperationType(m.Type),
		ColorCode:   fromNullString(m.ColorCode),
	}
}
