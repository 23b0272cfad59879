package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	apperrors "recipeshare/internal/errors"
	"recipeshare/internal/model"
)

func newGormWithMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

var recipeColumns = []string{
	"id", "title", "description", "ingredients", "instructions", "category",
	"cooking_time", "difficulty", "rating", "image", "user_id", "created_at",
}

func TestRecipeRepository_Create(t *testing.T) {
	db, mock := newGormWithMock(t)
	repo := NewRecipeRepository(db)

	mock.ExpectExec("INSERT INTO `recipes`").WillReturnResult(sqlmock.NewResult(7, 1))

	recipe := &model.Recipe{Title: "Soup", Ingredients: []string{"water"}, Instructions: []string{"boil"}, Category: "Dinner", CookingTime: 10, UserID: 1}
	require.NoError(t, repo.Create(context.Background(), recipe))
	assert.Equal(t, uint(7), recipe.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeRepository_FindByID(t *testing.T) {
	db, mock := newGormWithMock(t)
	repo := NewRecipeRepository(db)

	rows := sqlmock.NewRows(recipeColumns).
		AddRow(3, "Soup", "", `["water","salt"]`, `["boil"]`, "Dinner", 10, "Medium", 0.0, model.DefaultImage, 1, time.Now())
	mock.ExpectQuery("SELECT \\* FROM `recipes`").WillReturnRows(rows)

	recipe, err := repo.FindByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Soup", recipe.Title)
	assert.Equal(t, []string{"water", "salt"}, recipe.Ingredients)
	assert.Equal(t, uint(1), recipe.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newGormWithMock(t)
	repo := NewRecipeRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `recipes`").WillReturnRows(sqlmock.NewRows(recipeColumns))

	_, err := repo.FindByID(context.Background(), 3)
	assert.ErrorIs(t, err, apperrors.ErrRecipeNotFound)
}

func TestRecipeRepository_ListAppliesSearchInGo(t *testing.T) {
	db, mock := newGormWithMock(t)
	repo := NewRecipeRepository(db)

	rows := sqlmock.NewRows(recipeColumns).
		AddRow(1, "Avocado Toast", "", `["bread","avocado"]`, `["toast"]`, "Breakfast", 10, "Easy", 4.8, model.DefaultImage, 1, time.Now()).
		AddRow(4, "Pancakes", "", `["flour","milk"]`, `["fry"]`, "Breakfast", 15, "Easy", 0.0, model.DefaultImage, 2, time.Now())
	mock.ExpectQuery("SELECT \\* FROM `recipes` WHERE category = \\? AND cooking_time <= \\?").
		WithArgs("Breakfast", 15).
		WillReturnRows(rows)

	maxTime := 15
	got, err := repo.List(context.Background(), model.RecipeFilter{Category: "Breakfast", MaxTime: &maxTime, Search: "AVO"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Avocado Toast", got[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeRepository_Delete(t *testing.T) {
	db, mock := newGormWithMock(t)
	repo := NewRecipeRepository(db)

	mock.ExpectExec("DELETE FROM `recipes`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM `recipes`").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), 3))
	assert.ErrorIs(t, repo.Delete(context.Background(), 3), apperrors.ErrRecipeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmailOrUsername(t *testing.T) {
	db, mock := newGormWithMock(t)
	repo := NewUserRepository(db)

	rows := sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at"}).
		AddRow(2, "alice", "a@x.com", "hash", time.Now())
	mock.ExpectQuery("SELECT \\* FROM `users` WHERE \\(?email = \\? OR username = \\?\\)?").
		WillReturnRows(rows)
	mock.ExpectQuery("SELECT \\* FROM `users`").WillReturnRows(sqlmock.NewRows([]string{"id"}))

	user, err := repo.FindByEmailOrUsername(context.Background(), "a@x.com", "alice")
	require.NoError(t, err)
	assert.Equal(t, uint(2), user.ID)

	_, err = repo.FindByEmail(context.Background(), "nobody@x.com")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserTable_CaseSensitiveIdentity(t *testing.T) {
	db, mock := newGormWithMock(t)

	mock.ExpectExec("CREATE TABLE `users` \\(.*" +
		"`username` varchar\\(255\\) COLLATE utf8mb4_bin NOT NULL.*" +
		"`email` varchar\\(255\\) COLLATE utf8mb4_bin NOT NULL.*" +
		"UNIQUE INDEX `idx_users_(username|email)`").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, db.Migrator().CreateTable(&model.User{}))
	assert.NoError(t, mock.ExpectationsWereMet())
}
