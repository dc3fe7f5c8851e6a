package handlers

import (
	"net/http"

	"blog-api/helper"
	"blog-api/middleware"
	"blog-api/models"
	"blog-api/services"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postService services.PostService
	Helper      *helper.HTTPHelper
}

func NewPostHandler(postService services.PostService, h *helper.HTTPHelper) *PostHandler {
	return &PostHandler{postService: postService, Helper: h}
}

// CreatePost stores a post authored by the caller. An author sent in the body
// is ignored.
func (h *PostHandler) CreatePost(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		h.Helper.SendError(c, http.StatusUnauthorized, "User not found")
		return
	}

	var req models.CreatePostRequest
	if errs := h.Helper.BindJSON(c, &req); errs != nil {
		h.Helper.SendValidationError(c, http.StatusBadRequest, errs)
		return
	}

	post, err := h.postService.CreatePost(c.Request.Context(), req, user.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusCreated, post)
}

func (h *PostHandler) GetPosts(c *gin.Context) {
	var query models.PostListQuery
	if errs := h.Helper.BindQuery(c, &query); errs != nil {
		h.Helper.SendValidationError(c, http.StatusBadRequest, errs)
		return
	}
	params := query.Params()

	posts, total, err := h.postService.GetPosts(c.Request.Context(), params)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, helper.ListResponse(posts, params.ListParams, total, params.Filters()))
}

func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	post, err := h.postService.GetPost(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, post)
}
