package services

import (
	"context"
	"errors"

	"blog-api/models"
	"blog-api/repositories"

	"github.com/sirupsen/logrus"
)

type PostService interface {
	CreatePost(ctx context.Context, req models.CreatePostRequest, authorID uint) (*models.Post, error)
	GetPosts(ctx context.Context, params models.PostListParams) ([]models.Post, int64, error)
	GetPost(ctx context.Context, id uint) (*models.Post, error)
}

type postService struct {
	postRepo     repositories.PostRepository
	categoryRepo repositories.CategoryRepository
	log          *logrus.Logger
}

func NewPostService(postRepo repositories.PostRepository, categoryRepo repositories.CategoryRepository, log *logrus.Logger) PostService {
	return &postService{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		log:          log,
	}
}

var (
	errPostCategoryNotFound = models.ErrorBadRequest{Message: "Category not found"}
	errPostNotFound         = models.ErrorNotFound{Message: "Post not found"}
)

// CreatePost stores a post written by authorID. The category must exist.
func (s *postService) CreatePost(ctx context.Context, req models.CreatePostRequest, authorID uint) (*models.Post, error) {
	categoryID := uint(req.CategoryID)

	if _, err := s.categoryRepo.GetByID(ctx, categoryID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, errPostCategoryNotFound
		}
		return nil, err
	}

	post := &models.Post{
		Title:      req.Title,
		Content:    req.Content,
		Published:  req.Published,
		AuthorID:   authorID,
		CategoryID: categoryID,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		// The category disappeared between the check and the insert.
		if errors.Is(err, repositories.ErrInvalidReference) {
			return nil, errPostCategoryNotFound
		}
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"post_id":   post.ID,
		"author_id": authorID,
	}).Info("Post created")

	// Load the complete post
	return s.postRepo.GetByID(ctx, post.ID)
}

func (s *postService) GetPosts(ctx context.Context, params models.PostListParams) ([]models.Post, int64, error) {
	return s.postRepo.GetList(ctx, params)
}

func (s *postService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, errPostNotFound
		}
		return nil, err
	}
	return post, nil
}
