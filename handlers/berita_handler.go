package handlers

import (
	"errors"
	"net/http"

	"berita-api/helper"
	"berita-api/models"
	"berita-api/services"

	"github.com/gin-gonic/gin"
)

type BeritaHandler struct {
	beritaService services.BeritaService
	Helper        *helper.HTTPHelper
}

func NewBeritaHandler(beritaService services.BeritaService, h *helper.HTTPHelper) *BeritaHandler {
	return &BeritaHandler{beritaService: beritaService, Helper: h}
}

func (h *BeritaHandler) ListBerita(c *gin.Context) {
	beritas, err := h.beritaService.ListBerita()
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, beritas)
}

func (h *BeritaHandler) CreateBerita(c *gin.Context) {
	userID, _ := helper.ActorID(c)

	req, ok := h.bindBerita(c)
	if !ok {
		return
	}

	berita, err := h.beritaService.CreateBerita(req, userID)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusCreated, gin.H{
		"message": "Berita berhasil ditambahkan",
		"berita":  berita,
	})
}

func (h *BeritaHandler) GetBerita(c *gin.Context) {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		h.Helper.SendNotFoundError(c, "Berita tidak ditemukan")
		return
	}

	berita, err := h.beritaService.GetBerita(id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, berita)
}

func (h *BeritaHandler) UpdateBerita(c *gin.Context) {
	userID, _ := helper.ActorID(c)
	id, ok := helper.ParamID(c, "id")
	if !ok {
		h.Helper.SendNotFoundError(c, "Berita tidak ditemukan")
		return
	}

	req, ok := h.bindBerita(c)
	if !ok {
		return
	}

	berita, err := h.beritaService.UpdateBerita(id, req, userID)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, gin.H{
		"message": "Berita berhasil diupdate",
		"berita":  berita,
	})
}

func (h *BeritaHandler) DeleteBerita(c *gin.Context) {
	userID, _ := helper.ActorID(c)
	id, ok := helper.ParamID(c, "id")
	if !ok {
		h.Helper.SendNotFoundError(c, "Berita tidak ditemukan")
		return
	}

	if err := h.beritaService.DeleteBerita(id, userID); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendMessage(c, http.StatusOK, "Berita berhasil dihapus")
}

// bindBerita reads the text fields and, for multipart bodies, the optional
// gambar upload. A gambar sent as a plain value stays in GambarInput and
// fails validation.
func (h *BeritaHandler) bindBerita(c *gin.Context) (models.BeritaRequest, bool) {
	var req models.BeritaRequest
	if err := bindBody(c, h.Helper.Validator, &req); err != nil {
		h.Helper.SendError(c, err)
		return req, false
	}

	file, err := c.FormFile("gambar")
	switch {
	case err == nil:
		req.Gambar = file
		req.GambarInput = ""
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	default:
		h.Helper.SendError(c, errMalformedBody)
		return req, false
	}
	return req, true
}
