package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"recipeshare/internal/auth"
	"recipeshare/internal/model"
	"recipeshare/internal/service"
)

// UserHandler serves the signed-in user's profile.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// ProfileResponse is the signed-in user and the recipes they own.
type ProfileResponse struct {
	User    model.PublicUser `json:"user"`
	Recipes []model.Recipe   `json:"recipes"`
}

// GetProfile godoc
// @Summary Current user's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ProfileResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /user/profile [get]
func (h *UserHandler) GetProfile(c echo.Context) error {
	profile, err := h.svc.Profile(c.Request().Context(), auth.UserIDFromContext(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, ProfileResponse{
		User:    profile.User.Public(),
		Recipes: profile.Recipes,
	})
}
