package services

import (
	"context"
	"errors"

	"blog-api/models"
	"blog-api/repositories"

	"github.com/sirupsen/logrus"
)

type CategoryService interface {
	CreateCategory(ctx context.Context, req models.CreateCategoryRequest) (*models.Category, error)
	GetCategories(ctx context.Context, params models.ListParams) ([]models.Category, int64, error)
	GetCategory(ctx context.Context, id uint) (*models.Category, error)
	UpdateCategory(ctx context.Context, id uint, req models.UpdateCategoryRequest) (*models.Category, error)
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
	log          *logrus.Logger
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, log *logrus.Logger) CategoryService {
	return &categoryService{categoryRepo: categoryRepo, log: log}
}

var (
	errCategoryExists     = models.ErrorConflict{Message: "Category already exists"}
	errCategoryNameExists = models.ErrorConflict{Message: "Category name already exists"}
	errCategoryNotFound   = models.ErrorNotFound{Message: "Category not found"}
)

func (s *categoryService) CreateCategory(ctx context.Context, req models.CreateCategoryRequest) (*models.Category, error) {
	// Advisory only; the unique index decides.
	_, err := s.categoryRepo.GetByName(ctx, req.Name)
	if err == nil {
		return nil, errCategoryExists
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	category := &models.Category{Name: req.Name}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, errCategoryExists
		}
		return nil, err
	}

	s.log.WithField("category_id", category.ID).Info("Category created")
	return category, nil
}

func (s *categoryService) GetCategories(ctx context.Context, params models.ListParams) ([]models.Category, int64, error) {
	return s.categoryRepo.GetList(ctx, params)
}

func (s *categoryService) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, errCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id uint, req models.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, errCategoryNotFound
		}
		return nil, err
	}

	_, err = s.categoryRepo.GetByNameExcludingID(ctx, req.Name, id)
	if err == nil {
		return nil, errCategoryNameExists
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	category.Name = req.Name
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, errCategoryNameExists
		}
		return nil, err
	}

	s.log.WithField("category_id", category.ID).Info("Category updated")
	return category, nil
}
