package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService     portssvc.AccountSvcFacade
	transactionService portssvc.TransactionSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade, ts portssvc.TransactionSvcFacade) *accountHandler {
	return &accountHandler{
		accountService:     as,
		transactionService: ts,
	}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade, transactionService portssvc.TransactionSvcFacade) {
	h := newAccountHandler(accountService, transactionService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/search", h.searchAccounts)
		accounts.GET("/:accountID", h.getAccount)
		accounts.GET("/:accountID/transactions", h.listTransactionsByAccount)
	}
}

// createAccount godoc
// @Summary Create a new account
// @Description Creates a new account owned by the caller
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to create account"
// @Security BearerAuth
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, logger, err)
		return
	}

	userID, ok := currentUserID(c, logger)
	if !ok {
		return
	}

	logger.Info("Received request to create account", slog.String("account_name", req.Name), slog.String("currency", req.Currency))

	newAccount, err := h.accountService.CreateAccount(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	logger.Info("Account created successfully", slog.String("account_id", newAccount.AccountID))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(newAccount))
}

// getAccount godoc
// @Summary Get an account by ID
// @Description Retrieves an account owned by the caller
// @Tags accounts
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve account"
// @Security BearerAuth
// @Router /accounts/{accountID} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	userID, ok := currentUserID(c, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("account_id", accountID))

	account, err := h.accountService.GetAccountByID(c.Request.Context(), accountID, userID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary List the caller's accounts
// @Tags accounts
// @Produce  json
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list accounts"
// @Security BearerAuth
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUserID(c, logger)
	if !ok {
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListAccountResponse(accounts))
}

// searchAccounts godoc
// @Summary Search accounts by owner email and balance range
// @Description Bounds are inclusive; minBalance may not exceed maxBalance.
// @Tags accounts
// @Produce  json
// @Param   userEmail query string true "Owner email"
// @Param   minBalance query string false "Minimum balance"
// @Param   maxBalance query string false "Maximum balance"
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Failure 404 {object} dto.ErrorResponse "No accounts matched"
// @Security BearerAuth
// @Router /accounts/search [get]
func (h *accountHandler) searchAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := currentUserID(c, logger)
	if !ok {
		return
	}

	var params dto.SearchAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithBindError(c, logger, err)
		return
	}

	filter := domain.AccountFilter{UserEmail: params.UserEmail}
	var err error
	if filter.MinBalance, err = parseOptionalDecimal("minBalance", params.MinBalance); err != nil {
		respondWithError(c, logger, err)
		return
	}
	if filter.MaxBalance, err = parseOptionalDecimal("maxBalance", params.MaxBalance); err != nil {
		respondWithError(c, logger, err)
		return
	}

	accounts, err := h.accountService.SearchAccounts(c.Request.Context(), filter, userID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListAccountResponse(accounts))
}

// listTransactionsByAccount godoc
// @Summary List an account's transactions
// @Description Newest first, paginated with an opaque nextToken.
// @Tags accounts
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid pagination parameters"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Security BearerAuth
// @Router /accounts/{accountID}/transactions [get]
func (h *accountHandler) listTransactionsByAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	userID, ok := currentUserID(c, logger)
	if !ok {
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithBindError(c, logger, err)
		return
	}
	logger = logger.With(slog.String("account_id", accountID))

	page, err := h.transactionService.ListTransactionsByAccount(c.Request.Context(), accountID, userID, params)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func parseOptionalDecimal(name string, raw *string) (*decimal.Decimal, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(*raw)
	if err != nil {
		return nil, apperrors.NewValidationError(name + " must be a decimal number")
	}
	return &d, nil
}
