package services

import (
	"errors"

	"berita-api/models"
	"berita-api/repositories"
	"berita-api/storage"
	"berita-api/validation"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BeritaNamespace is the storage directory for article images.
const BeritaNamespace = "berita"

var errBeritaNotFound = models.ErrorNotFound{Message: "Berita tidak ditemukan"}

type BeritaService interface {
	ListBerita() ([]models.Berita, error)
	CreateBerita(req models.BeritaRequest, userID uint) (*models.Berita, error)
	GetBerita(id uint) (*models.Berita, error)
	UpdateBerita(id uint, req models.BeritaRequest, userID uint) (*models.Berita, error)
	DeleteBerita(id uint, userID uint) error
}

type beritaService struct {
	beritaRepo repositories.BeritaRepository
	storage    storage.Storage
	validator  *validation.Validator
	authorizer Authorizer
	logger     *zap.Logger
}

func NewBeritaService(
	beritaRepo repositories.BeritaRepository,
	store storage.Storage,
	validator *validation.Validator,
	authorizer Authorizer,
	logger *zap.Logger,
) BeritaService {
	return &beritaService{
		beritaRepo: beritaRepo,
		storage:    store,
		validator:  validator,
		authorizer: authorizer,
		logger:     logger,
	}
}

func (s *beritaService) ListBerita() ([]models.Berita, error) {
	return s.beritaRepo.ListWithRelations()
}

func (s *beritaService) CreateBerita(req models.BeritaRequest, userID uint) (*models.Berita, error) {
	if err := s.validate(&req); err != nil {
		return nil, err
	}

	var gambar *string
	if req.Gambar != nil {
		path, err := s.storage.Store(BeritaNamespace, req.Gambar)
		if err != nil {
			return nil, models.ErrorInternalServer{Message: "store gambar", Err: err}
		}
		gambar = &path
	}

	berita := &models.Berita{
		UserID:   userID,
		Judul:    req.Judul,
		Konten:   req.Konten,
		Kategori: req.Kategori,
		Gambar:   gambar,
	}
	if err := s.beritaRepo.Create(berita); err != nil {
		return nil, err
	}

	return s.beritaRepo.GetWithRelations(berita.ID)
}

func (s *beritaService) GetBerita(id uint) (*models.Berita, error) {
	berita, err := s.beritaRepo.GetWithRelations(id)
	if err != nil {
		return nil, notFound(err, errBeritaNotFound)
	}
	return berita, nil
}

// UpdateBerita checks ownership before validating the request. The old
// image is removed before the new one is stored; the two steps and the
// row update are not atomic.
func (s *beritaService) UpdateBerita(id uint, req models.BeritaRequest, userID uint) (*models.Berita, error) {
	berita, err := s.find(id, userID)
	if err != nil {
		return nil, err
	}

	if err := s.validate(&req); err != nil {
		return nil, err
	}

	if req.Gambar != nil {
		if berita.Gambar != nil {
			if err := s.storage.Delete(*berita.Gambar); err != nil {
				return nil, models.ErrorInternalServer{Message: "delete gambar", Err: err}
			}
			s.logger.Debug("replaced berita image", zap.Uint("berita_id", id), zap.String("path", *berita.Gambar))
		}
		path, err := s.storage.Store(BeritaNamespace, req.Gambar)
		if err != nil {
			return nil, models.ErrorInternalServer{Message: "store gambar", Err: err}
		}
		berita.Gambar = &path
	}

	berita.Judul = req.Judul
	berita.Konten = req.Konten
	berita.Kategori = req.Kategori
	if err := s.beritaRepo.Save(berita); err != nil {
		return nil, err
	}

	return s.beritaRepo.GetWithRelations(berita.ID)
}

func (s *beritaService) DeleteBerita(id uint, userID uint) error {
	berita, err := s.find(id, userID)
	if err != nil {
		return err
	}

	if berita.Gambar != nil {
		if err := s.storage.Delete(*berita.Gambar); err != nil {
			return models.ErrorInternalServer{Message: "delete gambar", Err: err}
		}
	}

	if err := s.beritaRepo.Delete(berita.ID); err != nil {
		return err
	}
	s.logger.Info("berita deleted", zap.Uint("berita_id", id), zap.Uint("user_id", userID))
	return nil
}

// find loads the bare row and applies the ownership policy.
func (s *beritaService) find(id uint, userID uint) (*models.Berita, error) {
	berita, err := s.beritaRepo.GetByID(id)
	if err != nil {
		return nil, notFound(err, errBeritaNotFound)
	}
	if !s.authorizer.Authorize(userID, berita) {
		return nil, models.ErrorForbidden{Message: "Unauthorized"}
	}
	return berita, nil
}

func (s *beritaService) validate(req *models.BeritaRequest) error {
	if req.Gambar != nil {
		info, err := storage.Inspect(req.Gambar)
		if err != nil {
			return err
		}
		req.GambarType = info.MIME
		req.GambarSize = info.Size
	}
	return s.validator.Check(*req)
}

func notFound(err error, nf models.ErrorNotFound) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nf
	}
	return err
}
