// services/tag_service.go
package services

import (
	"context"
	"errors"

	"blog-api/models"
	"blog-api/repositories"

	"github.com/sirupsen/logrus"
)

type TagService interface {
	CreateTag(ctx context.Context, req models.CreateTagRequest) (*models.Tag, error)
	GetTags(ctx context.Context, params models.ListParams) ([]models.Tag, int64, error)
	GetTag(ctx context.Context, id uint) (*models.Tag, error)
	UpdateTag(ctx context.Context, id uint, req models.UpdateTagRequest) (*models.Tag, error)
}

type tagService struct {
	tagRepo repositories.TagRepository
	log     *logrus.Logger
}

func NewTagService(tagRepo repositories.TagRepository, log *logrus.Logger) TagService {
	return &tagService{
		tagRepo: tagRepo,
		log:     log,
	}
}

var (
	errTagExists     = models.ErrorConflict{Message: "Tag already exists"}
	errTagNameExists = models.ErrorConflict{Message: "Tag name already exists"}
	errTagNotFound   = models.ErrorNotFound{Message: "Tag not found"}
)

func (s *tagService) CreateTag(ctx context.Context, req models.CreateTagRequest) (*models.Tag, error) {
	// Check if tag already exists
	_, err := s.tagRepo.GetByName(ctx, req.Name)
	if err == nil {
		return nil, errTagExists
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	tag := &models.Tag{Name: req.Name}
	if err := s.tagRepo.Create(ctx, tag); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, errTagExists
		}
		return nil, err
	}

	s.log.WithField("tag_id", tag.ID).Info("Tag created")
	return tag, nil
}

func (s *tagService) GetTags(ctx context.Context, params models.ListParams) ([]models.Tag, int64, error) {
	return s.tagRepo.GetList(ctx, params)
}

func (s *tagService) GetTag(ctx context.Context, id uint) (*models.Tag, error) {
	tag, err := s.tagRepo.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, errTagNotFound
		}
		return nil, err
	}
	return tag, nil
}

func (s *tagService) UpdateTag(ctx context.Context, id uint, req models.UpdateTagRequest) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, errTagNotFound
		}
		return nil, err
	}

	// Another tag may already hold the new name
	_, err = s.tagRepo.GetByNameExcludingID(ctx, req.Name, id)
	if err == nil {
		return nil, errTagNameExists
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	tag.Name = req.Name
	if err := s.tagRepo.Update(ctx, tag); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, errTagNameExists
		}
		return nil, err
	}

	s.log.WithField("tag_id", tag.ID).Info("Tag updated")
	return tag, nil
}
