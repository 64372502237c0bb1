package repositories

import (
	"berita-api/models"

	"gorm.io/gorm"
)

type BeritaRepository interface {
	Create(berita *models.Berita) error
	Save(berita *models.Berita) error
	Delete(id uint) error
	GetByID(id uint) (*models.Berita, error)
	Exists(id uint) (bool, error)
	GetWithRelations(id uint) (*models.Berita, error)
	ListWithRelations() ([]models.Berita, error)
}

type beritaRepository struct {
	db *gorm.DB
}

func NewBeritaRepository(db *gorm.DB) BeritaRepository {
	return &beritaRepository{db: db}
}

func (r *beritaRepository) Create(berita *models.Berita) error {
	return r.db.Omit("User", "Komentar").Create(berita).Error
}

func (r *beritaRepository) Save(berita *models.Berita) error {
	return r.db.Omit("User", "Komentar").Save(berita).Error
}

func (r *beritaRepository) Delete(id uint) error {
	return r.db.Delete(&models.Berita{}, id).Error
}

// GetByID loads the bare row, without owner or comments.
func (r *beritaRepository) GetByID(id uint) (*models.Berita, error) {
	var berita models.Berita
	err := r.db.First(&berita, id).Error
	return &berita, err
}

func (r *beritaRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Berita{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *beritaRepository) GetWithRelations(id uint) (*models.Berita, error) {
	var berita models.Berita
	if err := r.withRelations().First(&berita, id).Error; err != nil {
		return &berita, err
	}
	normalizeKomentar(&berita)
	return &berita, nil
}

func (r *beritaRepository) ListWithRelations() ([]models.Berita, error) {
	beritas := []models.Berita{}
	err := r.withRelations().
		Order("beritas.created_at desc").
		Order("beritas.id desc").
		Find(&beritas).Error
	if err != nil {
		return nil, err
	}
	for i := range beritas {
		normalizeKomentar(&beritas[i])
	}
	return beritas, nil
}

// withRelations batches the owner, the comments and the comment owners
// into one IN query per relation.
func (r *beritaRepository) withRelations() *gorm.DB {
	return r.db.Model(&models.Berita{}).
		Preload("User").
		Preload("Komentar", func(db *gorm.DB) *gorm.DB {
			return db.Order("komentars.created_at asc").Order("komentars.id asc")
		}).
		Preload("Komentar.User")
}

func normalizeKomentar(berita *models.Berita) {
	if berita.Komentar == nil {
		berita.Komentar = []models.Komentar{}
	}
}
