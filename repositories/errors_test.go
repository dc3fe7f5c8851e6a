package repositories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"record not found", gorm.ErrRecordNotFound, ErrNotFound},
		{"gorm duplicated key", gorm.ErrDuplicatedKey, ErrDuplicate},
		{"postgres unique violation", &pgconn.PgError{Code: "23505"}, ErrDuplicate},
		{"sqlite unique violation", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, ErrDuplicate},
		{"gorm foreign key", gorm.ErrForeignKeyViolated, ErrInvalidReference},
		{"postgres foreign key", &pgconn.PgError{Code: "23503"}, ErrInvalidReference},
		{"sqlite foreign key", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}, ErrInvalidReference},
		{"wrapped driver error", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), ErrDuplicate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := MapError(tt.err)
			assert.ErrorIs(t, mapped, tt.want)
			assert.ErrorIs(t, mapped, tt.err)
		})
	}
}

func TestMapErrorPassThrough(t *testing.T) {
	assert.NoError(t, MapError(nil))

	other := errors.New("connection reset")
	assert.Same(t, other, MapError(other))

	check := &pgconn.PgError{Code: "23514"}
	assert.False(t, IsUniqueViolation(check))
	assert.False(t, IsForeignKeyViolation(check))
}

func TestContainsPatternEscapesWildcards(t *testing.T) {
	assert.Equal(t, "%go%", containsPattern("Go"))
	assert.Equal(t, `%100\%%`, containsPattern("100%"))
	assert.Equal(t, `%snake\_case%`, containsPattern("snake_case"))
	assert.Equal(t, `%a\\b%`, containsPattern(`a\b`))
}
