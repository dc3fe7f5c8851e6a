package handlers

import (
	"net/http"

	"blog-api/helper"
	"blog-api/models"
	"blog-api/services"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	tagService services.TagService
	Helper     *helper.HTTPHelper
}

func NewTagHandler(tagService services.TagService, h *helper.HTTPHelper) *TagHandler {
	return &TagHandler{tagService: tagService, Helper: h}
}

func (h *TagHandler) CreateTag(c *gin.Context) {
	var req models.CreateTagRequest
	if errs := h.Helper.BindJSON(c, &req); errs != nil {
		h.Helper.SendValidationError(c, http.StatusUnprocessableEntity, errs)
		return
	}

	tag, err := h.tagService.CreateTag(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusCreated, tag)
}

func (h *TagHandler) GetTags(c *gin.Context) {
	var query models.ListQuery
	if errs := h.Helper.BindQuery(c, &query); errs != nil {
		h.Helper.SendValidationError(c, http.StatusBadRequest, errs)
		return
	}
	params := query.Params()

	tags, total, err := h.tagService.GetTags(c.Request.Context(), params)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, helper.ListResponse(tags, params, total, params.Filters()))
}

func (h *TagHandler) GetTag(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	tag, err := h.tagService.GetTag(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, tag)
}

func (h *TagHandler) UpdateTag(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateTagRequest
	if errs := h.Helper.BindJSON(c, &req); errs != nil {
		h.Helper.SendValidationError(c, http.StatusUnprocessableEntity, errs)
		return
	}

	tag, err := h.tagService.UpdateTag(c.Request.Context(), id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, tag)
}
