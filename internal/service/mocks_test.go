package service

import (
	"context"
	"errors"

	"recipekeep/internal/blob"
	"recipekeep/models"
)

// ─────────────────────────────────────────────
// Mock: store.RecipeRepository
// ─────────────────────────────────────────────

type mockRecipeRepository struct {
	getByIDFn      func(ctx context.Context, id int64) (models.Recipe, error)
	getAllFn       func(ctx context.Context) ([]models.Recipe, error)
	createFn       func(ctx context.Context, recipe models.Recipe) (models.Recipe, error)
	updateFieldsFn func(ctx context.Context, id int64, update models.RecipeUpdate) (models.Recipe, error)
	deleteFn       func(ctx context.Context, id int64) error
}

func (m *mockRecipeRepository) GetByID(ctx context.Context, id int64) (models.Recipe, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return models.Recipe{}, nil
}

func (m *mockRecipeRepository) GetAll(ctx context.Context) ([]models.Recipe, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return nil, nil
}

func (m *mockRecipeRepository) Create(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	if m.createFn != nil {
		return m.createFn(ctx, recipe)
	}
	return recipe, nil
}

func (m *mockRecipeRepository) UpdateFields(ctx context.Context, id int64, update models.RecipeUpdate) (models.Recipe, error) {
	if m.updateFieldsFn != nil {
		return m.updateFieldsFn(ctx, id, update)
	}
	return models.Recipe{ID: id}, nil
}

func (m *mockRecipeRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: blob.Storage
// ─────────────────────────────────────────────

type mockBlobStorage struct {
	putFn    func(ctx context.Context, key string, data []byte, contentType string) (string, error)
	getFn    func(ctx context.Context, key string) ([]byte, string, error)
	deleteFn func(ctx context.Context, key string) error
	listFn   func(ctx context.Context, prefix string) ([]blob.ObjectInfo, error)
}

func (m *mockBlobStorage) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if m.putFn != nil {
		return m.putFn(ctx, key, data, contentType)
	}
	return key, nil
}

func (m *mockBlobStorage) Get(ctx context.Context, key string) ([]byte, string, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return nil, "", blob.ErrObjectNotFound
}

func (m *mockBlobStorage) Delete(ctx context.Context, key string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, key)
	}
	return nil
}

func (m *mockBlobStorage) List(ctx context.Context, prefix string) ([]blob.ObjectInfo, error) {
	if m.listFn != nil {
		return m.listFn(ctx, prefix)
	}
	return nil, nil
}

var errStorage = errors.New("storage error")

func ratingPtr(v float64) *float64 { return &v }

func textPtr(v string) *string { return &v }
