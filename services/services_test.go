package services

import (
	"sort"

	"berita-api/models"
	"berita-api/repositories"
	"berita-api/storage"
	"berita-api/testutil"
	"berita-api/validation"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// serviceSuite wires every service over a fresh database and disk.
type serviceSuite struct {
	suite.Suite
	db           *gorm.DB
	disk         *storage.PublicDisk
	validator    *validation.Validator
	userRepo     repositories.UserRepository
	tokenRepo    repositories.TokenRepository
	beritaRepo   repositories.BeritaRepository
	komentarRepo repositories.KomentarRepository

	beritaService   BeritaService
	komentarService KomentarService
	authService     AuthService

	owner models.User
	other models.User
}

func (s *serviceSuite) SetupTest() {
	t := s.T()
	s.db = testutil.NewDB(t)

	disk, err := storage.NewPublicDisk(t.TempDir())
	s.Require().NoError(err)
	s.disk = disk

	s.userRepo = repositories.NewUserRepository(s.db)
	s.tokenRepo = repositories.NewTokenRepository(s.db)
	s.beritaRepo = repositories.NewBeritaRepository(s.db)
	s.komentarRepo = repositories.NewKomentarRepository(s.db)

	s.validator, err = validation.New(s.beritaRepo, s.userRepo)
	s.Require().NoError(err)

	s.beritaService = NewBeritaService(s.beritaRepo, s.disk, s.validator, OwnerPolicy{}, zap.NewNop())
	s.komentarService = NewKomentarService(s.komentarRepo, s.validator, OwnerPolicy{})
	s.authService = NewAuthService(s.userRepo, s.tokenRepo, s.validator)

	s.owner = testutil.CreateUser(t, s.db, "Owner", "owner@example.com")
	s.other = testutil.CreateUser(t, s.db, "Other", "other@example.com")
}

// invalidFields returns the request fields named by a validation error.
func (s *serviceSuite) invalidFields(err error) []string {
	var verr models.ErrorValidation
	s.Require().ErrorAs(err, &verr)

	var fields []string
	for field := range verr.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

func (s *serviceSuite) count(model interface{}) int64 {
	var n int64
	s.Require().NoError(s.db.Model(model).Count(&n).Error)
	return n
}

func (s *serviceSuite) pngRequest() models.BeritaRequest {
	return models.BeritaRequest{
		Judul:    "Dengan gambar",
		Konten:   "Body",
		Kategori: "news",
		Gambar:   testutil.FileHeader(s.T(), "gambar", "foto.png", testutil.PNG(s.T())),
	}
}
