package models

import (
	"time"
)

// Berita is a published news article. Komentar rows are not removed when
// their berita is deleted.
type Berita struct {
	ID        uint       `json:"id" gorm:"primarykey"`
	UserID    uint       `json:"user_id" gorm:"index;not null"`
	User      *User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Judul     string     `json:"judul" gorm:"size:255;not null"`
	Konten    string     `json:"konten" gorm:"type:text;not null"`
	Kategori  string     `json:"kategori" gorm:"size:255;not null"`
	Gambar    *string    `json:"gambar" gorm:"size:255"`
	Komentar  []Komentar `json:"komentar" gorm:"foreignKey:BeritaID"`
	CreatedAt time.Time  `json:"created_at" gorm:"index"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (Berita) TableName() string {
	return "beritas"
}

func (b *Berita) OwnerID() uint {
	return b.UserID
}

type Komentar struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	UserID      uint      `json:"user_id" gorm:"index;not null"`
	User        *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	BeritaID    uint      `json:"berita_id" gorm:"index;not null"`
	IsiKomentar string    `json:"isi_komentar" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Komentar) TableName() string {
	return "komentars"
}

func (k *Komentar) OwnerID() uint {
	return k.UserID
}
