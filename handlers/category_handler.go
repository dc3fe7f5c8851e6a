package handlers

import (
	"net/http"

	"blog-api/helper"
	"blog-api/models"
	"blog-api/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService services.CategoryService
	Helper          *helper.HTTPHelper
}

func NewCategoryHandler(categoryService services.CategoryService, h *helper.HTTPHelper) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, Helper: h}
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req models.CreateCategoryRequest
	if errs := h.Helper.BindJSON(c, &req); errs != nil {
		h.Helper.SendValidationError(c, http.StatusUnprocessableEntity, errs)
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusCreated, category)
}

func (h *CategoryHandler) GetCategories(c *gin.Context) {
	var query models.ListQuery
	if errs := h.Helper.BindQuery(c, &query); errs != nil {
		h.Helper.SendValidationError(c, http.StatusBadRequest, errs)
		return
	}
	params := query.Params()

	categories, total, err := h.categoryService.GetCategories(c.Request.Context(), params)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, helper.ListResponse(categories, params, total, params.Filters()))
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	category, err := h.categoryService.GetCategory(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, category)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateCategoryRequest
	if errs := h.Helper.BindJSON(c, &req); errs != nil {
		h.Helper.SendValidationError(c, http.StatusUnprocessableEntity, errs)
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, category)
}
