package repositories

import (
	"context"

	"blog-api/models"

	"gorm.io/gorm"
)

var postSortColumns = map[string]string{
	"title":     "posts.title",
	"createdAt": "posts.created_at",
	"updatedAt": "posts.updated_at",
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	GetList(ctx context.Context, params models.PostListParams) ([]models.Post, int64, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return MapError(r.db.WithContext(ctx).Omit("Author", "Category", "Tags").Create(post).Error)
}

// GetByID loads a post with its author summary, category summary and tags.
func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).
		Scopes(withPostRelations).
		First(&post, id).Error
	if err != nil {
		return nil, MapError(err)
	}
	return &post, nil
}

// GetList returns one page of posts and the total number of posts matching
// the same filter.
func (r *postRepository) GetList(ctx context.Context, params models.PostListParams) ([]models.Post, int64, error) {
	var posts []models.Post
	var total int64

	filter := postFilterScope(params)

	err := r.db.WithContext(ctx).
		Scopes(filter,
			withPostRelations,
			orderScope(postSortColumns, "posts.id", params.SortBy, params.SortOrder),
			paginateScope(params.ListParams)).
		Find(&posts).Error
	if err != nil {
		return nil, 0, MapError(err)
	}

	if err := r.db.WithContext(ctx).Model(&models.Post{}).Scopes(filter).Count(&total).Error; err != nil {
		return nil, 0, MapError(err)
	}

	return posts, total, nil
}

// postFilterScope is the conjunction of the optional category and published
// filters with the title/content search.
func postFilterScope(params models.PostListParams) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if params.CategoryID != nil {
			db = db.Where("posts.category_id = ?", *params.CategoryID)
		}
		if params.Published != nil {
			db = db.Where("posts.published = ?", *params.Published)
		}
		return searchScope(params.Search, "posts.title", "posts.content")(db)
	}
}

func withPostRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Author", selectUserSummary).
		Preload("Category", selectCategorySummary).
		Preload("Tags")
}
