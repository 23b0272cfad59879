package handler

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"recipeshare/internal/auth"
	"recipeshare/internal/errors"
	"recipeshare/internal/model"
	"recipeshare/internal/service"
)

// RecipeHandler handles recipe endpoints.
type RecipeHandler struct {
	recipeService service.RecipeService
}

// NewRecipeHandler creates a new recipe handler.
func NewRecipeHandler(recipeService service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

// MessageResponse carries a human readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// ListRecipes godoc
// @Summary List recipes
// @Description Filters compose with AND. Results keep insertion order.
// @Tags recipes
// @Produce json
// @Param category query string false "Exact category, or All"
// @Param maxTime query int false "Maximum cooking time in minutes"
// @Param search query string false "Case-insensitive match on title or ingredients"
// @Success 200 {array} model.Recipe
// @Router /recipes [get]
func (h *RecipeHandler) ListRecipes(c echo.Context) error {
	filter := model.RecipeFilter{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
	}
	if raw := c.QueryParam("maxTime"); raw != "" {
		maxTime, ok := leadingInt(raw)
		if !ok {
			// No cooking time compares below a non-number.
			return c.JSON(http.StatusOK, []model.Recipe{})
		}
		filter.MaxTime = &maxTime
	}

	recipes, err := h.recipeService.List(c.Request().Context(), filter)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, recipes)
}

// GetRecipe godoc
// @Summary Get recipe by id
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} model.Recipe
// @Failure 404 {object} errors.ErrorResponse
// @Router /recipes/{id} [get]
func (h *RecipeHandler) GetRecipe(c echo.Context) error {
	id, ok := recipeID(c)
	if !ok {
		return serviceError(c, errors.ErrRecipeNotFound)
	}

	recipe, err := h.recipeService.Get(c.Request().Context(), id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, recipe)
}

// CreateRecipe godoc
// @Summary Submit a recipe
// @Description ingredients and instructions accept an array or a single string
// @Description (comma separated and newline separated respectively).
// @Tags recipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.RecipeInput true "Recipe fields"
// @Success 201 {object} model.Recipe
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /recipes [post]
func (h *RecipeHandler) CreateRecipe(c echo.Context) error {
	var input model.RecipeInput
	if err := c.Bind(&input); err != nil {
		return invalidBody()
	}

	recipe, err := h.recipeService.Create(c.Request().Context(), input, auth.UserIDFromContext(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, recipe)
}

// DeleteRecipe godoc
// @Summary Delete one of your recipes
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recipes/{id} [delete]
func (h *RecipeHandler) DeleteRecipe(c echo.Context) error {
	id, ok := recipeID(c)
	if !ok {
		return serviceError(c, errors.ErrRecipeNotFound)
	}

	if err := h.recipeService.Delete(c.Request().Context(), id, auth.UserIDFromContext(c)); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Recipe deleted successfully"})
}

func recipeID(c echo.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// leadingInt reads the integer at the start of s ("30min" is 30), skipping
// leading whitespace. ok is false when s does not start with a number.
func leadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		if s[0] == '-' {
			return math.MinInt, true
		}
		return math.MaxInt, true
	}
	return n, true
}
