package models

import (
	"mime/multipart"
	"strings"
)

type RegisterRequest struct {
	Name     string `json:"name" form:"name" validate:"required,max=255"`
	Email    string `json:"email" form:"email" validate:"required,email,max=255,email_available"`
	Password string `json:"password" form:"password" validate:"required,min=8"`
}

// Trim leaves the password untouched.
func (r *RegisterRequest) Trim() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

func (r *LoginRequest) Trim() {
	r.Email = strings.TrimSpace(r.Email)
}

type AuthResponse struct {
	Message     string `json:"message"`
	User        User   `json:"user"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// BeritaRequest is the body of both create and update. Gambar is read
// from the multipart form by the handler; GambarType and GambarSize are
// filled from the uploaded file before validation and report under the
// "gambar" field. GambarInput holds a gambar sent as anything but a file.
type BeritaRequest struct {
	Judul    string                `json:"judul" form:"judul" validate:"required,max=255"`
	Konten   string                `json:"konten" form:"konten" validate:"required"`
	Kategori string                `json:"kategori" form:"kategori" validate:"required"`
	Gambar   *multipart.FileHeader `json:"-" form:"-" validate:"-"`

	GambarInput Input  `json:"gambar" form:"gambar" label:"gambar" validate:"omitempty,image_mime"`
	GambarType  string `json:"-" form:"-" label:"gambar" validate:"omitempty,image_mime"`
	GambarSize  int64  `json:"-" form:"-" label:"gambar" validate:"max_kb=2048"`
}

func (r *BeritaRequest) Trim() {
	r.Judul = strings.TrimSpace(r.Judul)
	r.Konten = strings.TrimSpace(r.Konten)
	r.Kategori = strings.TrimSpace(r.Kategori)
	r.GambarInput = Input(strings.TrimSpace(string(r.GambarInput)))
}

type KomentarRequest struct {
	BeritaID    Input  `json:"berita_id" form:"berita_id" validate:"required,berita_exists"`
	IsiKomentar string `json:"isi_komentar" form:"isi_komentar" validate:"required"`
}

func (r *KomentarRequest) Trim() {
	r.BeritaID = Input(strings.TrimSpace(string(r.BeritaID)))
	r.IsiKomentar = strings.TrimSpace(r.IsiKomentar)
}
