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

func TestCreatePost(t *testing.T) {
	posts := newMemoryPosts()
	service := NewPostService(posts, newMemoryCategories("Tech"), quietLogger())

	post, err := service.CreatePost(context.Background(), models.CreatePostRequest{
		Title:      "Hello",
		Content:    "World",
		CategoryID: 1,
		Published:  true,
	}, 7)
	require.NoError(t, err)

	assert.Equal(t, uint(7), post.AuthorID)
	assert.Equal(t, uint(1), post.CategoryID)
	assert.True(t, post.Published)
	assert.Len(t, posts.posts, 1)
}

func TestCreatePostUnknownCategory(t *testing.T) {
	posts := newMemoryPosts()
	service := NewPostService(posts, newMemoryCategories(), quietLogger())

	_, err := service.CreatePost(context.Background(), models.CreatePostRequest{Title: "t", Content: "c", CategoryID: 4}, 1)

	assert.Equal(t, errPostCategoryNotFound, err)
	assert.Empty(t, posts.posts)
}

func TestCreatePostCategoryRemovedBeforeInsert(t *testing.T) {
	posts := newMemoryPosts()
	posts.createErr = repositories.MapError(gorm.ErrForeignKeyViolated)
	service := NewPostService(posts, newMemoryCategories("Tech"), quietLogger())

	_, err := service.CreatePost(context.Background(), models.CreatePostRequest{Title: "t", Content: "c", CategoryID: 1}, 1)

	assert.Equal(t, errPostCategoryNotFound, err)
}

func TestGetPostNotFound(t *testing.T) {
	service := NewPostService(newMemoryPosts(), newMemoryCategories(), quietLogger())

	_, err := service.GetPost(context.Background(), 11)

	assert.Equal(t, errPostNotFound, err)
}
