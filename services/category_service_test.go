package services

import (
	"context"
	"testing"

	"blog-api/models"
	"blog-api/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateCategory(t *testing.T) {
	repo := newMemoryCategories("News")
	service := NewCategoryService(repo, quietLogger())
	ctx := context.Background()

	category, err := service.CreateCategory(ctx, models.CreateCategoryRequest{Name: "Sports"})
	require.NoError(t, err)
	assert.NotZero(t, category.ID)

	_, err = service.CreateCategory(ctx, models.CreateCategoryRequest{Name: "News"})
	assert.Equal(t, errCategoryExists, err)
}

func TestCreateCategoryStoreConflict(t *testing.T) {
	repo := newMemoryCategories()
	repo.createErr = repositories.MapError(gorm.ErrDuplicatedKey)
	service := NewCategoryService(repo, quietLogger())

	_, err := service.CreateCategory(context.Background(), models.CreateCategoryRequest{Name: "News"})

	assert.Equal(t, errCategoryExists, err)
}

func TestUpdateCategory(t *testing.T) {
	repo := newMemoryCategories("News", "Sports")
	service := NewCategoryService(repo, quietLogger())
	ctx := context.Background()

	updated, err := service.UpdateCategory(ctx, 1, models.UpdateCategoryRequest{Name: "News"})
	require.NoError(t, err)
	assert.Equal(t, "News", updated.Name)

	_, err = service.UpdateCategory(ctx, 1, models.UpdateCategoryRequest{Name: "Sports"})
	assert.Equal(t, errCategoryNameExists, err)

	_, err = service.UpdateCategory(ctx, 9, models.UpdateCategoryRequest{Name: "Ghost"})
	assert.Equal(t, errCategoryNotFound, err)

	repo.updateErr = repositories.MapError(gorm.ErrDuplicatedKey)
	_, err = service.UpdateCategory(ctx, 1, models.UpdateCategoryRequest{Name: "Weather"})
	assert.Equal(t, errCategoryNameExists, err)
}

func TestGetCategoryNotFound(t *testing.T) {
	service := NewCategoryService(newMemoryCategories(), quietLogger())

	_, err := service.GetCategory(context.Background(), 3)

	assert.Equal(t, errCategoryNotFound, err)
}
