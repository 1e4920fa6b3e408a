package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/google/uuid"
)

// ColorCodePattern is the accepted form of a category color: #RGB or #RRGGBB.
var ColorCodePattern = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

const minNamePartLength = 2

type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new category service.
func NewCategoryService(repo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: repo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	if !req.Type.IsValid() {
		return nil, apperrors.NewValidationError("unknown operation type " + string(req.Type))
	}
	if req.ColorCode != "" && !ColorCodePattern.MatchString(req.ColorCode) {
		return nil, apperrors.NewValidationError("invalid color code " + req.ColorCode)
	}

	category := domain.Category{
		CategoryID:  uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Type:        req.Type,
		ColorCode:   req.ColorCode,
	}
	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category", slog.String("name", category.Name))
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	s.LogInfo(ctx, "Category created", slog.String("category_id", category.CategoryID))
	return &category, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// SearchCategories normalizes the filter before querying. An empty result is not found.
func (s *categoryService) SearchCategories(ctx context.Context, filter domain.CategoryFilter) ([]domain.Category, error) {
	if filter.Type != nil && !filter.Type.IsValid() {
		return nil, apperrors.NewValidationError("unknown operation type " + string(*filter.Type))
	}
	if filter.ColorCode != nil && !ColorCodePattern.MatchString(*filter.ColorCode) {
		return nil, apperrors.NewValidationError("invalid color code " + *filter.ColorCode)
	}
	if filter.NamePart != nil {
		trimmed := strings.TrimSpace(*filter.NamePart)
		if len([]rune(trimmed)) < minNamePartLength {
			return nil, apperrors.NewValidationError(fmt.Sprintf("namePart must have at least %d characters", minNamePartLength))
		}
		filter.NamePart = &trimmed
	}

	categories, err := s.categoryRepo.SearchCategories(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search categories: %w", err)
	}
	if len(categories) == 0 {
		return nil, apperrors.NewNotFoundError("categories", "matching filter")
	}
	return categories, nil
}
