package handlers

import (
	"net/http"

	"berita-api/helper"
	"berita-api/models"
	"berita-api/services"

	"github.com/gin-gonic/gin"
)

type KomentarHandler struct {
	komentarService services.KomentarService
	Helper          *helper.HTTPHelper
}

func NewKomentarHandler(komentarService services.KomentarService, h *helper.HTTPHelper) *KomentarHandler {
	return &KomentarHandler{komentarService: komentarService, Helper: h}
}

func (h *KomentarHandler) CreateKomentar(c *gin.Context) {
	userID, _ := helper.ActorID(c)

	var req models.KomentarRequest
	if err := bindBody(c, h.Helper.Validator, &req); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	komentar, err := h.komentarService.CreateKomentar(req, userID)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusCreated, gin.H{
		"message":  "Komentar berhasil ditambahkan",
		"komentar": komentar,
	})
}

func (h *KomentarHandler) DeleteKomentar(c *gin.Context) {
	userID, _ := helper.ActorID(c)
	id, ok := helper.ParamID(c, "id")
	if !ok {
		h.Helper.SendNotFoundError(c, "Komentar tidak ditemukan")
		return
	}

	if err := h.komentarService.DeleteKomentar(id, userID); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendMessage(c, http.StatusOK, "Komentar berhasil dihapus")
}
