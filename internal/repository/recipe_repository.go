package repository

import (
	"context"
	"errors"
	"sync"

	"gorm.io/gorm"

	apperrors "recipeshare/internal/errors"
	"recipeshare/internal/model"
)

// RecipeRepository defines persistence operations for recipes.
// Listings are returned in insertion order.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *model.Recipe) error
	FindByID(ctx context.Context, id uint) (*model.Recipe, error)
	List(ctx context.Context, filter model.RecipeFilter) ([]model.Recipe, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Recipe, error)
	Delete(ctx context.Context, id uint) error
}

type memoryRecipeRepository struct {
	mu      sync.RWMutex
	recipes []model.Recipe
	// nextID only grows, so ids of deleted recipes are never handed out again.
	nextID uint
}

// NewMemoryRecipeRepository builds a process-local repository.
func NewMemoryRecipeRepository() RecipeRepository {
	return &memoryRecipeRepository{nextID: 1}
}

func (r *memoryRecipeRepository) Create(_ context.Context, recipe *model.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	recipe.ID = r.nextID
	r.nextID++
	r.recipes = append(r.recipes, *recipe)
	return nil
}

func (r *memoryRecipeRepository) FindByID(_ context.Context, id uint) (*model.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.recipes {
		if r.recipes[i].ID == id {
			recipe := r.recipes[i]
			return &recipe, nil
		}
	}
	return nil, apperrors.ErrRecipeNotFound
}

func (r *memoryRecipeRepository) List(_ context.Context, filter model.RecipeFilter) ([]model.Recipe, error) {
	return r.collect(filter.Matches), nil
}

func (r *memoryRecipeRepository) ListByUser(_ context.Context, userID uint) ([]model.Recipe, error) {
	return r.collect(func(recipe *model.Recipe) bool { return recipe.UserID == userID }), nil
}

func (r *memoryRecipeRepository) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.recipes {
		if r.recipes[i].ID == id {
			r.recipes = append(r.recipes[:i], r.recipes[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrRecipeNotFound
}

func (r *memoryRecipeRepository) collect(keep func(*model.Recipe) bool) []model.Recipe {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Recipe, 0, len(r.recipes))
	for i := range r.recipes {
		if keep(&r.recipes[i]) {
			out = append(out, r.recipes[i])
		}
	}
	return out
}

type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository builds a GORM-backed repository.
func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) Create(ctx context.Context, recipe *model.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) FindByID(ctx context.Context, id uint) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := r.db.WithContext(ctx).First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// List pushes the category and time filters down to SQL and applies the
// free-text search in Go, since ingredients are stored as serialized JSON.
func (r *recipeRepository) List(ctx context.Context, filter model.RecipeFilter) ([]model.Recipe, error) {
	query := r.db.WithContext(ctx).Order("id")
	if filter.Category != "" && filter.Category != model.AllCategories {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.MaxTime != nil {
		query = query.Where("cooking_time <= ?", *filter.MaxTime)
	}

	var recipes []model.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, err
	}

	out := make([]model.Recipe, 0, len(recipes))
	for i := range recipes {
		if filter.Matches(&recipes[i]) {
			out = append(out, recipes[i])
		}
	}
	return out, nil
}

func (r *recipeRepository) ListByUser(ctx context.Context, userID uint) ([]model.Recipe, error) {
	recipes := []model.Recipe{}
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Recipe{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrRecipeNotFound
	}
	return nil
}
