package repositories

import (
	"context"

	"blog-api/models"

	"gorm.io/gorm"
)

var categorySortColumns = map[string]string{
	"name":      "categories.name",
	"createdAt": "categories.created_at",
	"updatedAt": "categories.updated_at",
}

const categoryWithPostCount = "categories.*, " +
	"(SELECT COUNT(*) FROM posts WHERE posts.category_id = categories.id) AS post_count"

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uint) (*models.Category, error)
	GetDetail(ctx context.Context, id uint) (*models.Category, error)
	GetByName(ctx context.Context, name string) (*models.Category, error)
	GetByNameExcludingID(ctx context.Context, name string, id uint) (*models.Category, error)
	GetList(ctx context.Context, params models.ListParams) ([]models.Category, int64, error)
	Update(ctx context.Context, category *models.Category) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	return MapError(r.db.WithContext(ctx).Create(category).Error)
}

func (r *categoryRepository) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, MapError(err)
	}
	return &category, nil
}

// GetDetail loads a category with its posts, each post's author summary, and
// the post count.
func (r *categoryRepository) GetDetail(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).
		Select(categoryWithPostCount).
		Preload("Posts", orderPostsNewestFirst).
		Preload("Posts.Author", selectUserSummary).
		Where("categories.id = ?", id).
		First(&category).Error
	if err != nil {
		return nil, MapError(err)
	}
	return &category, nil
}

func (r *categoryRepository) GetByName(ctx context.Context, name string) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&category).Error; err != nil {
		return nil, MapError(err)
	}
	return &category, nil
}

func (r *categoryRepository) GetByNameExcludingID(ctx context.Context, name string, id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		Where("id <> ?", id).
		First(&category).Error
	if err != nil {
		return nil, MapError(err)
	}
	return &category, nil
}

// GetList returns one page of categories, each with its posts and post
// count, and the total number of categories matching the same filter.
func (r *categoryRepository) GetList(ctx context.Context, params models.ListParams) ([]models.Category, int64, error) {
	var categories []models.Category
	var total int64

	filter := searchScope(params.Search, "categories.name")

	err := r.db.WithContext(ctx).
		Select(categoryWithPostCount).
		Preload("Posts", orderPostsNewestFirst).
		Scopes(filter,
			orderScope(categorySortColumns, "categories.id", params.SortBy, params.SortOrder),
			paginateScope(params)).
		Find(&categories).Error
	if err != nil {
		return nil, 0, MapError(err)
	}

	if err := r.db.WithContext(ctx).Model(&models.Category{}).Scopes(filter).Count(&total).Error; err != nil {
		return nil, 0, MapError(err)
	}

	return categories, total, nil
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	return MapError(r.db.WithContext(ctx).Save(category).Error)
}
