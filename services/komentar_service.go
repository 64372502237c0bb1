package services

import (
	"berita-api/models"
	"berita-api/repositories"
	"berita-api/validation"
)

var errKomentarNotFound = models.ErrorNotFound{Message: "Komentar tidak ditemukan"}

type KomentarService interface {
	CreateKomentar(req models.KomentarRequest, userID uint) (*models.Komentar, error)
	DeleteKomentar(id uint, userID uint) error
}

type komentarService struct {
	komentarRepo repositories.KomentarRepository
	validator    *validation.Validator
	authorizer   Authorizer
}

func NewKomentarService(komentarRepo repositories.KomentarRepository, validator *validation.Validator, authorizer Authorizer) KomentarService {
	return &komentarService{
		komentarRepo: komentarRepo,
		validator:    validator,
		authorizer:   authorizer,
	}
}

// CreateKomentar relies on the berita_exists rule to reject comments on
// missing articles.
func (s *komentarService) CreateKomentar(req models.KomentarRequest, userID uint) (*models.Komentar, error) {
	if err := s.validator.Check(req); err != nil {
		return nil, err
	}

	beritaID, _ := req.BeritaID.Uint()
	komentar := &models.Komentar{
		UserID:      userID,
		BeritaID:    beritaID,
		IsiKomentar: req.IsiKomentar,
	}
	if err := s.komentarRepo.Create(komentar); err != nil {
		return nil, err
	}

	return s.komentarRepo.GetWithUser(komentar.ID)
}

func (s *komentarService) DeleteKomentar(id uint, userID uint) error {
	komentar, err := s.komentarRepo.GetByID(id)
	if err != nil {
		return notFound(err, errKomentarNotFound)
	}

	if !s.authorizer.Authorize(userID, komentar) {
		return models.ErrorForbidden{Message: "Unauthorized"}
	}

	return s.komentarRepo.Delete(komentar.ID)
}
