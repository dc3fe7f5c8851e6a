package handlers

import (
	"net/http"

	"blog-api/helper"
	"blog-api/middleware"
	"blog-api/models"
	"blog-api/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService, h *helper.HTTPHelper) *AuthHandler {
	return &AuthHandler{authService: authService, Helper: h}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if errs := h.Helper.BindJSON(c, &req); errs != nil {
		h.Helper.SendValidationError(c, http.StatusBadRequest, errs)
		return
	}

	response, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusCreated, response)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if errs := h.Helper.BindJSON(c, &req); errs != nil {
		h.Helper.SendValidationError(c, http.StatusBadRequest, errs)
		return
	}

	response, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, response)
}

// Me returns the caller resolved by the auth middleware.
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		h.Helper.SendError(c, http.StatusUnauthorized, "User not found")
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, gin.H{"user": user})
}
