package handlers

import (
	"net/http"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

type categoryHandler struct {
	categoryService portssvc.CategorySvcFacade
}

func registerCategoryRoutes(rg *gin.RouterGroup, categoryService portssvc.CategorySvcFacade) {
	h := &categoryHandler{categoryService: categoryService}

	categories := rg.Group("/categories")
	{
		categories.POST("", h.createCategory)
		categories.GET("", h.listCategories)
		categories.GET("/search", h.searchCategories)
		categories.GET("/:categoryID", h.getCategory)
	}
}

// createCategory godoc
// @Summary Create a category
// @Tags categories
// @Accept  json
// @Produce  json
// @Param   category body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /categories [post]
func (h *categoryHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, logger, err)
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// getCategory godoc
// @Summary Get a category by ID
// @Tags categories
// @Produce  json
// @Param   categoryID path string true "Category ID"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /categories/{categoryID} [get]
func (h *categoryHandler) getCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	category, err := h.categoryService.GetCategoryByID(c.Request.Context(), c.Param("categoryID"))
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// listCategories godoc
// @Summary List categories
// @Tags categories
// @Produce  json
// @Success 200 {object} dto.ListCategoriesResponse
// @Security BearerAuth
// @Router /categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListCategoriesResponse(categories))
}

// searchCategories godoc
// @Summary Search categories
// @Description All filters are optional. namePart matches case-insensitively and needs at least two characters.
// @Tags categories
// @Produce  json
// @Param   type query string false "INCOME or EXPENSE"
// @Param   colorCode query string false "Hex color such as #FFAA00"
// @Param   namePart query string false "Name fragment"
// @Success 200 {object} dto.ListCategoriesResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "No categories matched"
// @Security BearerAuth
// @Router /categories/search [get]
func (h *categoryHandler) searchCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.SearchCategoriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithBindError(c, logger, err)
		return
	}

	filter := domain.CategoryFilter{
		ColorCode: params.ColorCode,
		NamePart:  params.NamePart,
	}
	if params.Type != nil {
		t := domain.OperationType(*params.Type)
		filter.Type = &t
	}

	categories, err := h.categoryService.SearchCategories(c.Request.Context(), filter)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListCategoriesResponse(categories))
}
