package helper

import (
	"blog-api/models"
)

// GeneratePaging builds the pagination block of a list response.
func GeneratePaging(page, limit int, totalRecord int64) models.Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int((totalRecord + int64(limit) - 1) / int64(limit))
	}

	return models.Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  totalRecord,
		Limit:       limit,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
}

// ListResponse assembles items, pagination and the echoed filters.
func ListResponse(items interface{}, params models.ListParams, total int64, filters interface{}) models.ListResponse {
	return models.ListResponse{
		Items:      items,
		Pagination: GeneratePaging(params.Page, params.Limit, total),
		Filters:    filters,
	}
}
