package dto

import "github.com/SscSPs/finance_tracker/internal/core/domain"

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	Name        string               `json:"name" binding:"required,max=100"`
	Description string               `json:"description"`
	Type        domain.OperationType `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	ColorCode   string               `json:"colorCode" binding:"omitempty,colorcode"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID  string               `json:"categoryID"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Type        domain.OperationType `json:"type"`
	ColorCode   string               `json:"colorCode"`
}

// SearchCategoriesParams defines the optional filters of a category search.
type SearchCategoriesParams struct {
	Type      *string `form:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
	ColorCode *string `form:"colorCode" binding:"omitempty,colorcode"`
	NamePart  *string `form:"namePart"`
}

// ListCategoriesResponse wraps a list of categories.
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:  c.CategoryID,
		Name:        c.Name,
		Description: c.Description,
		Type:        c.Type,
		ColorCode:   c.ColorCode,
	}
}

func ToListCategoriesResponse(categories []domain.Category) ListCategoriesResponse {
	res := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		res[i] = ToCategoryResponse(&c)
	}
	return ListCategoriesResponse{Categories: res}
}
