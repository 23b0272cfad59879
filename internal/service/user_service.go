package service

import (
	"context"

	"recipeshare/internal/model"
)

// Profile is a user together with the recipes they own.
type Profile struct {
	User    *model.User
	Recipes []model.Recipe
}

// UserService exposes the signed-in user's own data.
type UserService interface {
	Profile(ctx context.Context, userID uint) (*Profile, error)
}

type userService struct {
	auth    AuthService
	recipes RecipeService
}

// NewUserService builds a UserService on top of the auth and recipe services.
func NewUserService(auth AuthService, recipes RecipeService) UserService {
	return &userService{auth: auth, recipes: recipes}
}

// Profile returns errors.ErrUserNotFound when the id no longer resolves,
// e.g. a token issued before the in-memory store was reset.
func (s *userService) Profile(ctx context.Context, userID uint) (*Profile, error) {
	user, err := s.auth.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	recipes, err := s.recipes.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Profile{User: user, Recipes: recipes}, nil
}
