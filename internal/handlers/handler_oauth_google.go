package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// googleOAuthHandler signs users in with a Google authorization code.
type googleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
	userService        portssvc.UserSvcFacade
	tokenService       portssvc.TokenSvcFacade
}

func newGoogleOAuthHandler(
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade,
	userService portssvc.UserSvcFacade,
	tokenService portssvc.TokenSvcFacade,
) *googleOAuthHandler {
	return &googleOAuthHandler{
		googleOAuthService: googleOAuthService,
		userService:        userService,
		tokenService:       tokenService,
	}
}

// exchangeCodeGoogle handles the authorization code the frontend received from Google.
// It exchanges the code, validates the ID token, finds or creates the user
// and returns an application JWT.
// @Summary Exchange a Google authorization code for an access token
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   code body dto.ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid authorization code"
// @Failure 401 {object} dto.ErrorResponse "Invalid Google ID token"
// @Failure 404 {object} dto.ErrorResponse "Google sign-in is not configured"
// @Failure 504 {object} dto.ErrorResponse "Google could not be reached"
// @Router /auth/google/exchange-code [post]
func (h *googleOAuthHandler) exchangeCodeGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	if h.googleOAuthService == nil || !h.googleOAuthService.IsConfigured() {
		respondWithError(c, logger, apperrors.NewNotFoundError("route", c.Request.URL.Path))
		return
	}

	var req dto.ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, logger, err)
		return
	}

	oauth2Token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, req.Code)
	if err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "invalid_grant") || strings.Contains(msg, "bad request") {
			respondWithError(c, logger, apperrors.NewBadRequestError("Invalid or expired authorization code"))
			return
		}
		logger.Error("Failed to exchange authorization code with Google", slog.String("error", err.Error()))
		respondWithError(c, logger, apperrors.NewAppError(http.StatusGatewayTimeout, "Failed to communicate with Google", err))
		return
	}

	idTokenString, ok := oauth2Token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		respondWithError(c, logger, apperrors.NewInternalServerError("ID token missing from Google response"))
		return
	}

	payload, err := h.googleOAuthService.ValidateGoogleIDToken(ctx, idTokenString)
	if err != nil {
		respondWithError(c, logger, apperrors.NewUnauthorizedError("Invalid Google ID token"))
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" || payload.Subject == "" {
		logger.Error("Essential claims missing from Google ID token", slog.Any("claims", payload.Claims))
		respondWithError(c, logger, apperrors.NewInternalServerError("Essential user information missing from Google token"))
		return
	}

	user, err := h.userService.FindOrCreateOAuthUser(ctx, name, email, domain.ProviderGoogle, payload.Subject)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	token, expiresAt, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	logger.Info("User signed in with Google", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, ExpiresAt: expiresAt})
}
