package models

import (
	"math"
	"strconv"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

type UpdateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

type CreateTagRequest struct {
	Name string `json:"name" validate:"required"`
}

type UpdateTagRequest struct {
	Name string `json:"name" validate:"required"`
}

// CreatePostRequest deliberately has no author field; the author is the
// authenticated caller.
type CreatePostRequest struct {
	Title      string `json:"title" validate:"required"`
	Content    string `json:"content" validate:"required"`
	CategoryID int64  `json:"categoryId" validate:"required,gt=0"`
	Published  bool   `json:"published"`
}

const (
	DefaultPage      = 1
	DefaultLimit     = 10
	DefaultSortBy    = "createdAt"
	DefaultSortOrder = "desc"
)

// ListQuery is the raw query string accepted by the category and tag list
// endpoints. Numbers arrive as strings and are normalized by Params.
type ListQuery struct {
	Page      string `form:"page" json:"page" validate:"omitempty,positive_int"`
	Limit     string `form:"limit" json:"limit" validate:"omitempty,positive_int"`
	Search    string `form:"search" json:"search"`
	SortBy    string `form:"sortBy" json:"sortBy" validate:"omitempty,oneof=name createdAt updatedAt"`
	SortOrder string `form:"sortOrder" json:"sortOrder" validate:"omitempty,oneof=asc desc"`
}

// PostListQuery is the raw query string accepted by the post list endpoint.
type PostListQuery struct {
	Page      string `form:"page" json:"page" validate:"omitempty,positive_int"`
	Limit     string `form:"limit" json:"limit" validate:"omitempty,positive_int"`
	Search    string `form:"search" json:"search"`
	Category  string `form:"category" json:"category" validate:"omitempty,positive_id"`
	Published string `form:"published" json:"published"`
	SortBy    string `form:"sortBy" json:"sortBy" validate:"omitempty,oneof=createdAt updatedAt title"`
	SortOrder string `form:"sortOrder" json:"sortOrder" validate:"omitempty,oneof=asc desc"`
}

type ListParams struct {
	Page      int
	Limit     int
	Search    string
	SortBy    string
	SortOrder string
}

// Offset is the number of rows skipped before the requested page.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

type PostListParams struct {
	ListParams
	CategoryID *uint
	Published  *bool
}

// Params applies defaults. It must only be called on a validated query.
func (q ListQuery) Params() ListParams {
	return ListParams{
		Page:      intOrDefault(q.Page, DefaultPage),
		Limit:     intOrDefault(q.Limit, DefaultLimit),
		Search:    q.Search,
		SortBy:    stringOrDefault(q.SortBy, DefaultSortBy),
		SortOrder: stringOrDefault(q.SortOrder, DefaultSortOrder),
	}
}

// Params applies defaults and turns the optional filters into pointers, nil
// meaning "no filter". It must only be called on a validated query.
func (q PostListQuery) Params() PostListParams {
	params := PostListParams{
		ListParams: ListQuery{
			Page:      q.Page,
			Limit:     q.Limit,
			Search:    q.Search,
			SortBy:    q.SortBy,
			SortOrder: q.SortOrder,
		}.Params(),
	}

	if categoryID, ok := ParseID(q.Category); ok {
		params.CategoryID = &categoryID
	}

	switch q.Published {
	case "true":
		published := true
		params.Published = &published
	case "false":
		published := false
		params.Published = &published
	}

	return params
}

type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
	Limit       int   `json:"limit"`
	HasNext     bool  `json:"hasNext"`
	HasPrev     bool  `json:"hasPrev"`
}

type ListFilters struct {
	Search    *string `json:"search"`
	SortBy    string  `json:"sortBy"`
	SortOrder string  `json:"sortOrder"`
}

type PostListFilters struct {
	ListFilters
	Category  *uint `json:"category"`
	Published *bool `json:"published"`
}

type ListResponse struct {
	Items      interface{} `json:"items"`
	Pagination Pagination  `json:"pagination"`
	Filters    interface{} `json:"filters"`
}

// Filters echoes the normalized list input back to the client.
func (p ListParams) Filters() ListFilters {
	filters := ListFilters{SortBy: p.SortBy, SortOrder: p.SortOrder}
	if p.Search != "" {
		search := p.Search
		filters.Search = &search
	}
	return filters
}

func (p PostListParams) Filters() PostListFilters {
	return PostListFilters{
		ListFilters: p.ListParams.Filters(),
		Category:    p.CategoryID,
		Published:   p.Published,
	}
}

// MaxListValue bounds page and limit so offset and page arithmetic stay
// within int64.
const MaxListValue = math.MaxInt32

// ParseListValue parses a page or limit: decimal digits only, in
// [1, MaxListValue].
func ParseListValue(raw string) (int, bool) {
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n < 1 || n > MaxListValue {
		return 0, false
	}
	return int(n), true
}

// ParseID parses a record id: decimal digits only, in [1, math.MaxInt64].
func ParseID(raw string) (uint, bool) {
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n < 1 || n > math.MaxInt64 {
		return 0, false
	}
	return uint(n), true
}

func intOrDefault(raw string, def int) int {
	if n, ok := ParseListValue(raw); ok {
		return n
	}
	return def
}

func stringOrDefault(raw, def string) string {
	if raw == "" {
		return def
	}
	return raw
}
