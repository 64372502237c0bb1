package handlers

import (
	"net/http"

	"berita-api/helper"
	"berita-api/models"
	"berita-api/services"

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
	if err := bindBody(c, h.Helper.Validator, &req); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	response, err := h.authService.Register(req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusCreated, response)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := bindBody(c, h.Helper.Validator, &req); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	response, err := h.authService.Login(req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, response)
}

func (h *AuthHandler) GetUser(c *gin.Context) {
	userID, ok := helper.ActorID(c)
	if !ok {
		h.Helper.SendUnauthorizedError(c, "Unauthenticated.")
		return
	}

	user, err := h.authService.GetUserByID(userID)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, gin.H{"user": user})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := helper.ActorClaims(c)
	if !ok {
		h.Helper.SendUnauthorizedError(c, "Unauthenticated.")
		return
	}

	if err := h.authService.Logout(claims); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendMessage(c, http.StatusOK, "Logout berhasil")
}
