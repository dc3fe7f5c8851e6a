package models

import (
	"time"
)

type Category struct {
	ID    uint   `json:"id" gorm:"primarykey"`
	Name  string `json:"name" gorm:"uniqueIndex;not null"`
	Posts []Post `json:"posts,omitempty" gorm:"foreignKey:CategoryID"`
	// PostCount is filled by the repository with a correlated subquery.
	PostCount *int64    `json:"postCount,omitempty" gorm:"->;-:migration"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
