package repositories

import (
	"berita-api/models"

	"gorm.io/gorm"
)

type KomentarRepository interface {
	Create(komentar *models.Komentar) error
	GetByID(id uint) (*models.Komentar, error)
	GetWithUser(id uint) (*models.Komentar, error)
	Delete(id uint) error
}

type komentarRepository struct {
	db *gorm.DB
}

func NewKomentarRepository(db *gorm.DB) KomentarRepository {
	return &komentarRepository{db: db}
}

func (r *komentarRepository) Create(komentar *models.Komentar) error {
	return r.db.Omit("User").Create(komentar).Error
}

func (r *komentarRepository) GetByID(id uint) (*models.Komentar, error) {
	var komentar models.Komentar
	err := r.db.First(&komentar, id).Error
	return &komentar, err
}

func (r *komentarRepository) GetWithUser(id uint) (*models.Komentar, error) {
	var komentar models.Komentar
	err := r.db.Preload("User").First(&komentar, id).Error
	return &komentar, err
}

func (r *komentarRepository) Delete(id uint) error {
	return r.db.Delete(&models.Komentar{}, id).Error
}
