package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/models"
)

func newTestRecipeRepo(t *testing.T) (*recipeRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &recipeRepository{
		DB: &DB{
			DB:                 db,
			driver:             DriverPostgres,
			errorClassificator: NewPostgresErrorClassifier(),
			logger:             l,
		},
		logger: l,
	}
	return repo, mock, db
}

var recipeColumns = []string{"recipe_id", "user_id", "title", "instructions", "minutes_to_complete", "created_at"}

func TestGetAllRecipes_Success(t *testing.T) {
	repo, mock, db := newTestRecipeRepo(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM recipes").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(recipeColumns).
			AddRow(1, 7, "Soup", "Boil water", 20, now).
			AddRow(2, 7, "Toast", "Toast bread", 5, now))

	recipes, err := repo.GetAllRecipes(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recipes) != 2 {
		t.Fatalf("expected 2 recipes, got %d", len(recipes))
	}
	if recipes[0].Title != "Soup" || recipes[0].MinutesToComplete != 20 {
		t.Errorf("first recipe fields did not round-trip: %+v", recipes[0])
	}
}

func TestGetAllRecipes_Empty(t *testing.T) {
	repo, mock, db := newTestRecipeRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM recipes").
		WithArgs(int64(8)).
		WillReturnRows(sqlmock.NewRows(recipeColumns))

	recipes, err := repo.GetAllRecipes(context.Background(), 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if recipes == nil {
		t.Fatal("expected an empty slice, got nil")
	}
	if len(recipes) != 0 {
		t.Errorf("expected no recipes, got %d", len(recipes))
	}
}

func TestGetAllRecipes_QueryError(t *testing.T) {
	repo, mock, db := newTestRecipeRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM recipes").
		WithArgs(int64(7)).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.GetAllRecipes(context.Background(), 7)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestGetAllRecipes_ScanError(t *testing.T) {
	repo, mock, db := newTestRecipeRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM recipes").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(recipeColumns).
			AddRow(1, 7, "Soup", "Boil water", "not-a-number", time.Now()))

	_, err := repo.GetAllRecipes(context.Background(), 7)
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected ErrScanningRow, got %v", err)
	}
}

func TestCreateRecipe_Success(t *testing.T) {
	repo, mock, db := newTestRecipeRepo(t)
	defer db.Close()

	recipe := models.Recipe{
		UserID:            7,
		Title:             "Soup",
		Instructions:      "Boil water",
		MinutesToComplete: 20,
	}

	mock.ExpectQuery("INSERT INTO recipes").
		WithArgs(recipe.UserID, recipe.Title, recipe.Instructions, recipe.MinutesToComplete).
		WillReturnRows(sqlmock.NewRows(recipeColumns).
			AddRow(1, 7, "Soup", "Boil water", 20, time.Now()))

	saved, err := repo.CreateRecipe(context.Background(), recipe)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.RecipeID != 1 {
		t.Errorf("expected RecipeID=1, got %d", saved.RecipeID)
	}
	if saved.UserID != 7 {
		t.Errorf("expected UserID=7, got %d", saved.UserID)
	}
}

func TestCreateRecipe_DBError(t *testing.T) {
	repo, mock, db := newTestRecipeRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO recipes").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.CreateRecipe(context.Background(), models.Recipe{UserID: 7, Title: "Soup"})
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected ErrScanningRow, got %v", err)
	}
}
