package repositories

import (
	"gorm.io/gorm"
)

// selectUserSummary limits a preloaded author to its public summary fields.
func selectUserSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "email")
}

// selectCategorySummary limits a preloaded category to its id and name.
func selectCategorySummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name")
}

func orderPostsNewestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("posts.created_at DESC, posts.id DESC")
}
