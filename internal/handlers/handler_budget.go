package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

func registerBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade) {
	h := &budgetHandler{budgetService: budgetService}

	budgets := rg.Group("/budgets")
	{
		budgets.POST("", h.createBudget)
		budgets.GET("", h.listBudgets)
		budgets.GET("/:budgetID", h.getBudget)
		budgets.GET("/:budgetID/status", h.getBudgetStatus)
	}
}

// createBudget godoc
// @Summary Create a budget
// @Description Caps spending in one category over an inclusive date period.
// @Tags budgets
// @Accept  json
// @Produce  json
// @Param   budget body dto.CreateBudgetRequest true "Budget details"
// @Success 201 {object} dto.BudgetResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Security BearerAuth
// @Router /budgets [post]
func (h *budgetHandler) createBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, logger, err)
		return
	}
	userID, ok := currentUserID(c, logger)
	if !ok {
		return
	}

	budget, err := h.budgetService.CreateBudget(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToBudgetResponse(budget))
}

// listBudgets godoc
// @Summary List the caller's budgets
// @Tags budgets
// @Produce  json
// @Success 200 {object} dto.ListBudgetsResponse
// @Security BearerAuth
// @Router /budgets [get]
func (h *budgetHandler) listBudgets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUserID(c, logger)
	if !ok {
		return
	}

	budgets, err := h.budgetService.ListBudgets(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListBudgetsResponse(budgets))
}

// getBudget godoc
// @Summary Get a budget by ID
// @Tags budgets
// @Produce  json
// @Param   budgetID path string true "Budget ID"
// @Success 200 {object} dto.BudgetResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /budgets/{budgetID} [get]
func (h *budgetHandler) getBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUserID(c, logger)
	if !ok {
		return
	}

	budget, err := h.budgetService.GetBudgetByID(c.Request.Context(), c.Param("budgetID"), userID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget))
}

// getBudgetStatus godoc
// @Summary Evaluate a budget
// @Description Sums the category's transactions in the budget period and reports whether the limit is exceeded.
// @Tags budgets
// @Produce  json
// @Param   budgetID path string true "Budget ID"
// @Success 200 {object} dto.BudgetStatusResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /budgets/{budgetID}/status [get]
func (h *budgetHandler) getBudgetStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUserID(c, logger)
	if !ok {
		return
	}

	status, err := h.budgetService.GetBudgetStatus(c.Request.Context(), c.Param("budgetID"), userID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetStatusResponse(status))
}
