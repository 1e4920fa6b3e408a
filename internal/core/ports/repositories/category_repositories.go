package repositories

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// CategoryReader defines read operations for category data
type CategoryReader interface {
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	// SearchCategories returns the categories matching every non-nil predicate of the filter.
	SearchCategories(ctx context.Context, filter domain.CategoryFilter) ([]domain.Category, error)
}

// CategoryWriter defines write operations for category data
type CategoryWriter interface {
	SaveCategory(ctx context.Context, category domain.Category) error
}

// CategoryRepositoryFacade combines all category-related repository interfaces
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
