package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/middleware"

	"github.com/gin-gonic/gin"
)

// userHandler handles HTTP requests related to users.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

// newUserHandler creates a new userHandler.
func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{
		userService: us,
	}
}

// registerUserRoutes registers all user-related routes.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := rg.Group("/users")
	{
		users.GET("", h.listUsers)       // Admin only
		users.GET("/me", h.getMe)        // Caller
		users.GET("/:userID", h.getUser) // Own or admin
	}
}

// listUsers godoc
// @Summary List users
// @Description Retrieves a paginated list of users. Requires the ADMIN role.
// @Tags users
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListUsersResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users [get]
func (h *userHandler) listUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	callerID, ok := currentUserID(c, logger)
	if !ok {
		return
	}

	var params dto.ListUsersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithBindError(c, logger, err)
		return
	}

	if err := h.requireRole(c.Request.Context(), callerID, domain.RoleAdmin); err != nil {
		respondWithError(c, logger, err)
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListUserResponse(users))
}

// getUser godoc
// @Summary Get a user by ID
// @Description Users may read their own profile; admins may read any profile.
// @Tags users
// @Produce  json
// @Param   userID path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/{userID} [get]
func (h *userHandler) getUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	callerID, ok := currentUserID(c, logger)
	if !ok {
		return
	}
	targetID := c.Param("userID")
	logger = logger.With(slog.String("target_user_id", targetID))

	if targetID != callerID {
		if err := h.requireRole(c.Request.Context(), callerID, domain.RoleAdmin); err != nil {
			respondWithError(c, logger, err)
			return
		}
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), targetID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// getMe godoc
// @Summary Get the current user
// @Tags users
// @Produce  json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/me [get]
func (h *userHandler) getMe(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	callerID, ok := currentUserID(c, logger)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), callerID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *userHandler) requireRole(ctx context.Context, userID string, role domain.Role) error {
	caller, err := h.userService.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if !caller.HasRole(role) {
		return apperrors.ErrForbidden
	}
	return nil
}
