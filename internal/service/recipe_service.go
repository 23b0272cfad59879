package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"recipeshare/internal/cache"
	apperrors "recipeshare/internal/errors"
	"recipeshare/internal/metrics"
	"recipeshare/internal/model"
	"recipeshare/internal/repository"
)

// RecipeService exposes recipe browsing, submission and deletion.
type RecipeService interface {
	List(ctx context.Context, filter model.RecipeFilter) ([]model.Recipe, error)
	Get(ctx context.Context, id uint) (*model.Recipe, error)
	Create(ctx context.Context, input model.RecipeInput, ownerID uint) (*model.Recipe, error)
	Delete(ctx context.Context, id, requesterID uint) error
	ListByOwner(ctx context.Context, userID uint) ([]model.Recipe, error)
}

type recipeService struct {
	recipes repository.RecipeRepository
	users   repository.UserRepository
	cache   *cache.Client
	metrics metrics.Recorder
	now     func() time.Time
}

// NewRecipeService builds a RecipeService. cache may be nil.
func NewRecipeService(recipes repository.RecipeRepository, users repository.UserRepository, cache *cache.Client, recorder metrics.Recorder) RecipeService {
	if recorder == nil {
		recorder = metrics.Noop{}
	}
	return &recipeService{
		recipes: recipes,
		users:   users,
		cache:   cache,
		metrics: recorder,
		now:     time.Now,
	}
}

func (s *recipeService) List(ctx context.Context, filter model.RecipeFilter) ([]model.Recipe, error) {
	recipes, err := s.recipes.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	if recipes == nil {
		recipes = []model.Recipe{}
	}
	return recipes, nil
}

func (s *recipeService) Get(ctx context.Context, id uint) (*model.Recipe, error) {
	if cached := s.cache.GetRecipe(ctx, id); cached != nil {
		return cached, nil
	}

	recipe, err := s.recipes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.SetRecipe(ctx, recipe)
	return recipe, nil
}

// Create validates a submission, fills defaults and stores it under ownerID.
// Free-text ingredients are comma separated, free-text instructions are
// one step per line with blank lines skipped.
func (s *recipeService) Create(ctx context.Context, input model.RecipeInput, ownerID uint) (*model.Recipe, error) {
	title := strings.TrimSpace(input.Title)
	category := strings.TrimSpace(input.Category)
	ingredients := input.Ingredients.Split(",")
	instructions := input.Instructions.SplitNonBlank("\n")

	switch {
	case title == "":
		return nil, fmt.Errorf("title: %w", apperrors.ErrValidation)
	case len(ingredients) == 0:
		return nil, fmt.Errorf("ingredients: %w", apperrors.ErrValidation)
	case len(instructions) == 0:
		return nil, fmt.Errorf("instructions: %w", apperrors.ErrValidation)
	case category == "":
		return nil, fmt.Errorf("category: %w", apperrors.ErrValidation)
	case input.CookingTime <= 0:
		return nil, fmt.Errorf("cookingTime: %w", apperrors.ErrValidation)
	}

	if _, err := s.users.FindByID(ctx, ownerID); err != nil {
		return nil, err
	}

	recipe := &model.Recipe{
		Title:        title,
		Description:  input.Description,
		Ingredients:  ingredients,
		Instructions: instructions,
		Category:     category,
		CookingTime:  int(input.CookingTime),
		Difficulty:   orDefault(input.Difficulty, model.DefaultDifficulty),
		Rating:       0,
		Image:        orDefault(input.Image, model.DefaultImage),
		UserID:       ownerID,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.recipes.Create(ctx, recipe); err != nil {
		return nil, fmt.Errorf("create recipe: %w", err)
	}

	// Overwrite any entry left under this id by an earlier store.
	s.cache.SetRecipe(ctx, recipe)
	s.metrics.RecordRecipeCreated()
	return recipe, nil
}

// Delete removes a recipe if requesterID owns it.
func (s *recipeService) Delete(ctx context.Context, id, requesterID uint) error {
	recipe, err := s.recipes.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if recipe.UserID != requesterID {
		return apperrors.ErrForbidden
	}

	if err := s.recipes.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.InvalidateRecipe(ctx, id)
	s.metrics.RecordRecipeDeleted()
	return nil
}

func (s *recipeService) ListByOwner(ctx context.Context, userID uint) ([]model.Recipe, error) {
	recipes, err := s.recipes.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user recipes: %w", err)
	}
	if recipes == nil {
		recipes = []model.Recipe{}
	}
	return recipes, nil
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
