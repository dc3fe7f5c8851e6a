package repositories

import (
	"context"

	"blog-api/models"

	"gorm.io/gorm"
)

var tagSortColumns = map[string]string{
	"name":      "tags.name",
	"createdAt": "tags.created_at",
	"updatedAt": "tags.updated_at",
}

type TagRepository interface {
	Create(ctx context.Context, tag *models.Tag) error
	GetByID(ctx context.Context, id uint) (*models.Tag, error)
	GetDetail(ctx context.Context, id uint) (*models.Tag, error)
	GetByName(ctx context.Context, name string) (*models.Tag, error)
	GetByNameExcludingID(ctx context.Context, name string, id uint) (*models.Tag, error)
	GetList(ctx context.Context, params models.ListParams) ([]models.Tag, int64, error)
	Update(ctx context.Context, tag *models.Tag) error
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(ctx context.Context, tag *models.Tag) error {
	return MapError(r.db.WithContext(ctx).Create(tag).Error)
}

func (r *tagRepository) GetByID(ctx context.Context, id uint) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.WithContext(ctx).First(&tag, id).Error; err != nil {
		return nil, MapError(err)
	}
	return &tag, nil
}

func (r *tagRepository) GetDetail(ctx context.Context, id uint) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.WithContext(ctx).
		Preload("Posts", orderPostsNewestFirst).
		Preload("Posts.Author", selectUserSummary).
		First(&tag, id).Error
	if err != nil {
		return nil, MapError(err)
	}
	return &tag, nil
}

func (r *tagRepository) GetByName(ctx context.Context, name string) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&tag).Error; err != nil {
		return nil, MapError(err)
	}
	return &tag, nil
}

func (r *tagRepository) GetByNameExcludingID(ctx context.Context, name string, id uint) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		Where("id <> ?", id).
		First(&tag).Error
	if err != nil {
		return nil, MapError(err)
	}
	return &tag, nil
}

func (r *tagRepository) GetList(ctx context.Context, params models.ListParams) ([]models.Tag, int64, error) {
	var tags []models.Tag
	var total int64

	filter := searchScope(params.Search, "tags.name")

	err := r.db.WithContext(ctx).
		Scopes(filter,
			orderScope(tagSortColumns, "tags.id", params.SortBy, params.SortOrder),
			paginateScope(params)).
		Find(&tags).Error
	if err != nil {
		return nil, 0, MapError(err)
	}

	if err := r.db.WithContext(ctx).Model(&models.Tag{}).Scopes(filter).Count(&total).Error; err != nil {
		return nil, 0, MapError(err)
	}

	return tags, total, nil
}

func (r *tagRepository) Update(ctx context.Context, tag *models.Tag) error {
	return MapError(r.db.WithContext(ctx).Save(tag).Error)
}
