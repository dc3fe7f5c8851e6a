package services

import (
	"context"
	"fmt"
	"io"

	"blog-api/models"
	"blog-api/repositories"

	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func notFound(what string) error {
	return fmt.Errorf("%w: %s", repositories.ErrNotFound, what)
}

type memoryUsers struct {
	users map[uint]*models.User
	// createErr simulates a write lost to a concurrent request.
	createErr error
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{users: map[uint]*models.User{}}
}

func (m *memoryUsers) Create(_ context.Context, user *models.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	user.ID = uint(len(m.users) + 1)
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *memoryUsers) GetByID(_ context.Context, id uint) (*models.User, error) {
	if user, ok := m.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, notFound("user")
}

func (m *memoryUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, notFound("user")
}

type memoryCategories struct {
	categories map[uint]*models.Category
	createErr  error
	updateErr  error
}

func newMemoryCategories(names ...string) *memoryCategories {
	m := &memoryCategories{categories: map[uint]*models.Category{}}
	for _, name := range names {
		_ = m.Create(context.Background(), &models.Category{Name: name})
	}
	return m
}

func (m *memoryCategories) Create(_ context.Context, category *models.Category) error {
	if m.createErr != nil {
		return m.createErr
	}
	category.ID = uint(len(m.categories) + 1)
	stored := *category
	m.categories[category.ID] = &stored
	return nil
}

func (m *memoryCategories) GetByID(_ context.Context, id uint) (*models.Category, error) {
	if category, ok := m.categories[id]; ok {
		copied := *category
		return &copied, nil
	}
	return nil, notFound("category")
}

func (m *memoryCategories) GetDetail(ctx context.Context, id uint) (*models.Category, error) {
	return m.GetByID(ctx, id)
}

func (m *memoryCategories) GetByName(ctx context.Context, name string) (*models.Category, error) {
	return m.GetByNameExcludingID(ctx, name, 0)
}

func (m *memoryCategories) GetByNameExcludingID(_ context.Context, name string, id uint) (*models.Category, error) {
	for _, category := range m.categories {
		if category.Name == name && category.ID != id {
			copied := *category
			return &copied, nil
		}
	}
	return nil, notFound("category")
}

func (m *memoryCategories) GetList(_ context.Context, _ models.ListParams) ([]models.Category, int64, error) {
	list := make([]models.Category, 0, len(m.categories))
	for _, category := range m.categories {
		list = append(list, *category)
	}
	return list, int64(len(list)), nil
}

func (m *memoryCategories) Update(_ context.Context, category *models.Category) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	stored := *category
	m.categories[category.ID] = &stored
	return nil
}

type memoryPosts struct {
	posts     map[uint]*models.Post
	createErr error
}

func newMemoryPosts() *memoryPosts {
	return &memoryPosts{posts: map[uint]*models.Post{}}
}

func (m *memoryPosts) Create(_ context.Context, post *models.Post) error {
	if m.createErr != nil {
		return m.createErr
	}
	post.ID = uint(len(m.posts) + 1)
	stored := *post
	m.posts[post.ID] = &stored
	return nil
}

func (m *memoryPosts) GetByID(_ context.Context, id uint) (*models.Post, error) {
	if post, ok := m.posts[id]; ok {
		copied := *post
		return &copied, nil
	}
	return nil, notFound("post")
}

func (m *memoryPosts) GetList(_ context.Context, _ models.PostListParams) ([]models.Post, int64, error) {
	list := make([]models.Post, 0, len(m.posts))
	for _, post := range m.posts {
		list = append(list, *post)
	}
	return list, int64(len(list)), nil
}
