package services

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/dto"
)

// CategorySvcFacade defines operations on shared categories.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	// SearchCategories filters by optional type, color code and name fragment.
	SearchCategories(ctx context.Context, filter domain.CategoryFilter) ([]domain.Category, error)
}
