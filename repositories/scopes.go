package repositories

import (
	"fmt"
	"strings"

	"blog-api/models"

	"gorm.io/gorm"
)

// likeEscaper escapes LIKE wildcards so a search term matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern returns a lower-cased pattern matching term anywhere in a
// value.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}

// searchScope matches term case-insensitively against any of columns.
func searchScope(term string, columns ...string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if term == "" || len(columns) == 0 {
			return db
		}
		pattern := containsPattern(term)
		conditions := make([]string, 0, len(columns))
		args := make([]interface{}, 0, len(columns))
		for _, column := range columns {
			conditions = append(conditions, fmt.Sprintf(`LOWER(%s) LIKE ? ESCAPE '\'`, column))
			args = append(args, pattern)
		}
		return db.Where("("+strings.Join(conditions, " OR ")+")", args...)
	}
}

func paginateScope(params models.ListParams) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(params.Offset()).Limit(params.Limit)
	}
}

// orderScope orders by the column registered for sortBy in columns, falling
// back to the creation time, then by tiebreak so pages never overlap. Only
// whitelisted columns reach the SQL.
func orderScope(columns map[string]string, tiebreak, sortBy, sortOrder string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		column, ok := columns[sortBy]
		if !ok {
			column = columns[models.DefaultSortBy]
		}
		direction := "DESC"
		if strings.EqualFold(sortOrder, "asc") {
			direction = "ASC"
		}
		return db.Order(fmt.Sprintf("%s %s, %s %s", column, direction, tiebreak, direction))
	}
}
