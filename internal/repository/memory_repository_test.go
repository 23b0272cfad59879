package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "recipeshare/internal/errors"
	"recipeshare/internal/model"
)

func intPtr(v int) *int { return &v }

func TestMemoryUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	alice := &model.User{Username: "alice", Email: "a@x.com", PasswordHash: "h1"}
	bob := &model.User{Username: "bob", Email: "b@x.com", PasswordHash: "h2"}
	require.NoError(t, repo.Create(ctx, alice))
	require.NoError(t, repo.Create(ctx, bob))
	assert.Equal(t, uint(1), alice.ID)
	assert.Equal(t, uint(2), bob.ID)

	got, err := repo.FindByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "bob", got.Username)

	got, err = repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, uint(1), got.ID)

	_, err = repo.FindByEmail(ctx, "A@x.com")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	got, err = repo.FindByEmailOrUsername(ctx, "other@x.com", "bob")
	require.NoError(t, err)
	assert.Equal(t, uint(2), got.ID)

	_, err = repo.FindByEmailOrUsername(ctx, "other@x.com", "Bob")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	_, err = repo.FindByID(ctx, 99)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func seedRecipes(t *testing.T, repo RecipeRepository) {
	t.Helper()
	ctx := context.Background()
	for _, r := range []model.Recipe{
		{Title: "Chocolate Chip Cookies", Ingredients: []string{"flour", "chocolate chips"}, Category: "Desserts", CookingTime: 30, UserID: 1},
		{Title: "Avocado Toast", Ingredients: []string{"bread", "1 avocado"}, Category: "Breakfast", CookingTime: 10, UserID: 1},
		{Title: "Guacamole", Ingredients: []string{"Avocados", "lime"}, Category: "Snacks", CookingTime: 15, UserID: 2},
		{Title: "Pancakes", Ingredients: []string{"flour", "milk"}, Category: "Breakfast", CookingTime: 20, UserID: 2},
	} {
		recipe := r
		require.NoError(t, repo.Create(ctx, &recipe))
	}
}

func titles(recipes []model.Recipe) []string {
	out := make([]string, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, r.Title)
	}
	return out
}

func TestMemoryRecipeRepository_List(t *testing.T) {
	repo := NewMemoryRecipeRepository()
	seedRecipes(t, repo)

	tests := []struct {
		name   string
		filter model.RecipeFilter
		want   []string
	}{
		{"no filter keeps insertion order", model.RecipeFilter{}, []string{"Chocolate Chip Cookies", "Avocado Toast", "Guacamole", "Pancakes"}},
		{"all category", model.RecipeFilter{Category: "All"}, []string{"Chocolate Chip Cookies", "Avocado Toast", "Guacamole", "Pancakes"}},
		{"exact category", model.RecipeFilter{Category: "Breakfast"}, []string{"Avocado Toast", "Pancakes"}},
		{"category is case sensitive", model.RecipeFilter{Category: "breakfast"}, []string{}},
		{"max time inclusive", model.RecipeFilter{MaxTime: intPtr(15)}, []string{"Avocado Toast", "Guacamole"}},
		{"search title or ingredient", model.RecipeFilter{Search: "avo"}, []string{"Avocado Toast", "Guacamole"}},
		{"search ingredient only", model.RecipeFilter{Search: "MILK"}, []string{"Pancakes"}},
		{"filters compose", model.RecipeFilter{Category: "Breakfast", MaxTime: intPtr(15), Search: "avo"}, []string{"Avocado Toast"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.List(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(got))
		})
	}
}

func TestMemoryRecipeRepository_DeleteDoesNotReuseIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRecipeRepository()
	seedRecipes(t, repo)

	require.NoError(t, repo.Delete(ctx, 4))
	assert.ErrorIs(t, repo.Delete(ctx, 4), apperrors.ErrRecipeNotFound)

	_, err := repo.FindByID(ctx, 4)
	assert.ErrorIs(t, err, apperrors.ErrRecipeNotFound)

	next := &model.Recipe{Title: "Soup", Category: "Dinner", CookingTime: 10, UserID: 1}
	require.NoError(t, repo.Create(ctx, next))
	assert.Equal(t, uint(5), next.ID)

	mine, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Chocolate Chip Cookies", "Avocado Toast", "Soup"}, titles(mine))

	none, err := repo.ListByUser(ctx, 42)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
