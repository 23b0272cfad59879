package model

import (
	"strings"
	"time"
)

const (
	// DefaultDifficulty is applied when a submission leaves difficulty empty.
	DefaultDifficulty = "Medium"
	// DefaultImage is applied when a submission leaves image empty.
	DefaultImage = "https://via.placeholder.com/400x300?text=Recipe"
	// AllCategories disables the category filter.
	AllCategories = "All"
)

// Recipe is a user-submitted recipe. Records are never edited in place.
type Recipe struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title" gorm:"size:255;not null"`
	Description  string    `json:"description" gorm:"type:text"`
	Ingredients  []string  `json:"ingredients" gorm:"type:text;serializer:json"`
	Instructions []string  `json:"instructions" gorm:"type:text;serializer:json"`
	Category     string    `json:"category" gorm:"size:100;not null;index"`
	CookingTime  int       `json:"cookingTime" gorm:"not null"`
	Difficulty   string    `json:"difficulty" gorm:"size:50"`
	Rating       float64   `json:"rating"`
	Image        string    `json:"image" gorm:"size:1024"`
	UserID       uint      `json:"userId" gorm:"not null;index"`
	CreatedAt    time.Time `json:"createdAt"`
}

// RecipeFilter narrows a recipe listing. All set options must match.
type RecipeFilter struct {
	Category string
	MaxTime  *int
	Search   string
}

// Matches reports whether r satisfies every option set on f.
func (f RecipeFilter) Matches(r *Recipe) bool {
	if f.Category != "" && f.Category != AllCategories && r.Category != f.Category {
		return false
	}
	if f.MaxTime != nil && r.CookingTime > *f.MaxTime {
		return false
	}
	if f.Search != "" {
		return r.mentions(strings.ToLower(f.Search))
	}
	return true
}

func (r *Recipe) mentions(needle string) bool {
	if strings.Contains(strings.ToLower(r.Title), needle) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing), needle) {
			return true
		}
	}
	return false
}
