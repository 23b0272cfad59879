// Package seed provides the sample recipes shown on a fresh install.
package seed

import (
	"context"
	"fmt"
	"time"

	"recipeshare/internal/model"
	"recipeshare/internal/repository"
)

// SampleOwnerID owns the sample recipes. On a fresh in-memory store this is
// whoever registers first.
const SampleOwnerID uint = 1

// SampleRecipes returns the built-in sample recipes stamped with createdAt.
func SampleRecipes(createdAt time.Time) []model.Recipe {
	return []model.Recipe{
		{
			Title:       "Chocolate Chip Cookies",
			Description: "Classic homemade chocolate chip cookies",
			Ingredients: []string{"2 cups flour", "1 cup butter", "1 cup sugar", "2 eggs", "1 cup chocolate chips"},
			Instructions: []string{
				"Preheat oven to 375°F",
				"Mix butter and sugar until creamy",
				"Add eggs and vanilla",
				"Mix in flour gradually",
				"Fold in chocolate chips",
				"Bake for 10-12 minutes",
			},
			Category:    "Desserts",
			CookingTime: 30,
			Difficulty:  "Easy",
			Rating:      4.5,
			Image:       "https://via.placeholder.com/400x300?text=Chocolate+Chip+Cookies",
			UserID:      SampleOwnerID,
			CreatedAt:   createdAt,
		},
		{
			Title:       "Avocado Toast",
			Description: "Healthy and delicious avocado toast",
			Ingredients: []string{"2 slices bread", "1 avocado", "Salt", "Pepper", "Lemon juice"},
			Instructions: []string{
				"Toast the bread",
				"Mash the avocado",
				"Add salt, pepper, and lemon juice",
				"Spread on toast",
				"Serve immediately",
			},
			Category:    "Breakfast",
			CookingTime: 10,
			Difficulty:  "Easy",
			Rating:      4.8,
			Image:       "https://via.placeholder.com/400x300?text=Avocado+Toast",
			UserID:      SampleOwnerID,
			CreatedAt:   createdAt,
		},
	}
}

// Recipes inserts the sample recipes into repo and returns how many were added.
func Recipes(ctx context.Context, repo repository.RecipeRepository) (int, error) {
	samples := SampleRecipes(time.Now().UTC())
	for i := range samples {
		if err := repo.Create(ctx, &samples[i]); err != nil {
			return i, fmt.Errorf("seed recipe %q: %w", samples[i].Title, err)
		}
	}
	return len(samples), nil
}
