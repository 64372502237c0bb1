package services

import (
	"strings"
	"testing"
	"time"

	"berita-api/models"
	"berita-api/testutil"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type BeritaServiceSuite struct {
	serviceSuite
}

func TestBeritaServiceSuite(t *testing.T) {
	suite.Run(t, new(BeritaServiceSuite))
}

func (s *BeritaServiceSuite) create(userID uint) *models.Berita {
	berita, err := s.beritaService.CreateBerita(models.BeritaRequest{
		Judul:    "Test",
		Konten:   "Body",
		Kategori: "news",
	}, userID)
	s.Require().NoError(err)
	return berita
}

func (s *BeritaServiceSuite) TestCreateWithoutImage() {
	berita := s.create(s.owner.ID)

	s.Equal(s.owner.ID, berita.UserID)
	s.Require().NotNil(berita.User)
	s.Equal(s.owner.Email, berita.User.Email)
	s.Nil(berita.Gambar)
	s.NotNil(berita.Komentar)
	s.Empty(berita.Komentar)
	s.Equal("Test", berita.Judul)
	s.Equal("Body", berita.Konten)
	s.Equal("news", berita.Kategori)
}

func (s *BeritaServiceSuite) TestCreateWithImage() {
	berita, err := s.beritaService.CreateBerita(s.pngRequest(), s.owner.ID)
	s.Require().NoError(err)

	s.Require().NotNil(berita.Gambar)
	s.True(strings.HasPrefix(*berita.Gambar, BeritaNamespace+"/"))
	s.True(strings.HasSuffix(*berita.Gambar, ".png"))
	s.True(s.disk.Exists(*berita.Gambar))
}

func (s *BeritaServiceSuite) TestCreateValidation() {
	_, err := s.beritaService.CreateBerita(models.BeritaRequest{}, s.owner.ID)
	s.ElementsMatch([]string{"judul", "konten", "kategori"}, s.invalidFields(err))
	s.Zero(s.count(&models.Berita{}))
}

func (s *BeritaServiceSuite) TestCreateRejectsJudulOver255() {
	_, err := s.beritaService.CreateBerita(models.BeritaRequest{
		Judul:    strings.Repeat("x", 256),
		Konten:   "Body",
		Kategori: "news",
	}, s.owner.ID)
	s.Equal([]string{"judul"}, s.invalidFields(err))
}

func (s *BeritaServiceSuite) TestCreateRejectsNonImageWithoutStoring() {
	req := s.pngRequest()
	req.Gambar = testutil.FileHeader(s.T(), "gambar", "foto.png", []byte("not really a picture"))

	_, err := s.beritaService.CreateBerita(req, s.owner.ID)
	s.Equal([]string{"gambar"}, s.invalidFields(err))
	s.Zero(s.count(&models.Berita{}))
	s.NoDirExists(s.disk.Root() + "/" + BeritaNamespace)
}

func (s *BeritaServiceSuite) TestCreateRejectsImageOver2048KB() {
	big := append(testutil.PNG(s.T()), make([]byte, 2049*1024)...)
	req := s.pngRequest()
	req.Gambar = testutil.FileHeader(s.T(), "gambar", "big.png", big)

	_, err := s.beritaService.CreateBerita(req, s.owner.ID)
	s.Equal([]string{"gambar"}, s.invalidFields(err))
	s.Zero(s.count(&models.Berita{}))
}

func (s *BeritaServiceSuite) TestGet() {
	created := s.create(s.owner.ID)
	_, err := s.komentarService.CreateKomentar(models.KomentarRequest{BeritaID: models.InputID(created.ID), IsiKomentar: "hi"}, s.other.ID)
	s.Require().NoError(err)

	berita, err := s.beritaService.GetBerita(created.ID)
	s.Require().NoError(err)
	s.Equal(s.owner.ID, berita.User.ID)
	s.Require().Len(berita.Komentar, 1)
	s.Equal("hi", berita.Komentar[0].IsiKomentar)
	s.Require().NotNil(berita.Komentar[0].User)
	s.Equal(s.other.ID, berita.Komentar[0].User.ID)
}

func (s *BeritaServiceSuite) TestGetNotFound() {
	_, err := s.beritaService.GetBerita(999)
	s.ErrorAs(err, &models.ErrorNotFound{})
}

func (s *BeritaServiceSuite) TestListNewestFirst() {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i, offset := range []int{2, 0, 3, 1} {
		berita := &models.Berita{
			UserID:    s.owner.ID,
			Judul:     string(rune('a' + i)),
			Konten:    "Body",
			Kategori:  "news",
			CreatedAt: base.Add(time.Duration(offset) * time.Hour),
		}
		s.Require().NoError(s.beritaRepo.Create(berita))
	}

	list, err := s.beritaService.ListBerita()
	s.Require().NoError(err)
	s.Require().Len(list, 4)

	var judul []string
	for _, b := range list {
		judul = append(judul, b.Judul)
		s.NotNil(b.User)
		s.NotNil(b.Komentar)
	}
	s.Equal([]string{"c", "a", "d", "b"}, judul)
}

func (s *BeritaServiceSuite) TestListEmpty() {
	list, err := s.beritaService.ListBerita()
	s.Require().NoError(err)
	s.NotNil(list)
	s.Empty(list)
}

func (s *BeritaServiceSuite) TestUpdateByNonOwner() {
	created := s.create(s.owner.ID)

	_, err := s.beritaService.UpdateBerita(created.ID, models.BeritaRequest{
		Judul:    "Test",
		Konten:   "Body",
		Kategori: "news",
	}, s.other.ID)
	s.ErrorAs(err, &models.ErrorForbidden{})

	unchanged, err := s.beritaRepo.GetByID(created.ID)
	s.Require().NoError(err)
	s.Equal(created.UpdatedAt.Unix(), unchanged.UpdatedAt.Unix())
	s.Equal(s.owner.ID, unchanged.UserID)
}

func (s *BeritaServiceSuite) TestUpdateChecksOwnershipBeforeValidation() {
	created := s.create(s.owner.ID)

	_, err := s.beritaService.UpdateBerita(created.ID, models.BeritaRequest{}, s.other.ID)
	s.ErrorAs(err, &models.ErrorForbidden{})
}

func (s *BeritaServiceSuite) TestUpdateNotFound() {
	_, err := s.beritaService.UpdateBerita(404, models.BeritaRequest{}, s.owner.ID)
	s.ErrorAs(err, &models.ErrorNotFound{})
}

func (s *BeritaServiceSuite) TestUpdateValidation() {
	created := s.create(s.owner.ID)

	_, err := s.beritaService.UpdateBerita(created.ID, models.BeritaRequest{Judul: "only judul"}, s.owner.ID)
	s.ElementsMatch([]string{"konten", "kategori"}, s.invalidFields(err))

	unchanged, err := s.beritaRepo.GetByID(created.ID)
	s.Require().NoError(err)
	s.Equal("Test", unchanged.Judul)
}

func (s *BeritaServiceSuite) TestUpdateWithoutImageKeepsPath() {
	created, err := s.beritaService.CreateBerita(s.pngRequest(), s.owner.ID)
	s.Require().NoError(err)

	updated, err := s.beritaService.UpdateBerita(created.ID, models.BeritaRequest{
		Judul:    "Baru",
		Konten:   "Konten baru",
		Kategori: "sport",
	}, s.owner.ID)
	s.Require().NoError(err)

	s.Equal("Baru", updated.Judul)
	s.Equal("Konten baru", updated.Konten)
	s.Equal("sport", updated.Kategori)
	s.Require().NotNil(updated.Gambar)
	s.Equal(*created.Gambar, *updated.Gambar)
	s.True(s.disk.Exists(*updated.Gambar))
	s.Equal(s.owner.ID, updated.UserID)
}

func (s *BeritaServiceSuite) TestUpdateWithImageReplacesBlob() {
	created, err := s.beritaService.CreateBerita(s.pngRequest(), s.owner.ID)
	s.Require().NoError(err)

	updated, err := s.beritaService.UpdateBerita(created.ID, s.pngRequest(), s.owner.ID)
	s.Require().NoError(err)

	s.Require().NotNil(updated.Gambar)
	s.NotEqual(*created.Gambar, *updated.Gambar)
	s.False(s.disk.Exists(*created.Gambar))
	s.True(s.disk.Exists(*updated.Gambar))
}

func (s *BeritaServiceSuite) TestUpdateAddsFirstImage() {
	created := s.create(s.owner.ID)

	updated, err := s.beritaService.UpdateBerita(created.ID, s.pngRequest(), s.owner.ID)
	s.Require().NoError(err)
	s.Require().NotNil(updated.Gambar)
	s.True(s.disk.Exists(*updated.Gambar))
}

func (s *BeritaServiceSuite) TestDeleteByNonOwner() {
	created, err := s.beritaService.CreateBerita(s.pngRequest(), s.owner.ID)
	s.Require().NoError(err)

	err = s.beritaService.DeleteBerita(created.ID, s.other.ID)
	s.ErrorAs(err, &models.ErrorForbidden{})

	_, err = s.beritaService.GetBerita(created.ID)
	s.NoError(err)
	s.True(s.disk.Exists(*created.Gambar))
}

func (s *BeritaServiceSuite) TestDeleteByOwner() {
	created, err := s.beritaService.CreateBerita(s.pngRequest(), s.owner.ID)
	s.Require().NoError(err)

	s.Require().NoError(s.beritaService.DeleteBerita(created.ID, s.owner.ID))

	s.False(s.disk.Exists(*created.Gambar))
	_, err = s.beritaService.GetBerita(created.ID)
	s.ErrorAs(err, &models.ErrorNotFound{})
}

func (s *BeritaServiceSuite) TestDeleteNotFound() {
	err := s.beritaService.DeleteBerita(404, s.owner.ID)
	s.ErrorAs(err, &models.ErrorNotFound{})
}

func (s *BeritaServiceSuite) TestDeleteLeavesComments() {
	created := s.create(s.owner.ID)
	komentar, err := s.komentarService.CreateKomentar(models.KomentarRequest{BeritaID: models.InputID(created.ID), IsiKomentar: "hi"}, s.other.ID)
	s.Require().NoError(err)

	s.Require().NoError(s.beritaService.DeleteBerita(created.ID, s.owner.ID))

	orphan, err := s.komentarRepo.GetByID(komentar.ID)
	s.Require().NoError(err)
	s.Equal(created.ID, orphan.BeritaID)
}

func (s *BeritaServiceSuite) TestCustomAuthorizer() {
	admin := testutil.CreateUser(s.T(), s.db, "Admin", "admin@example.com")
	allowAdmin := AuthorizerFunc(func(actorID uint, resource Owned) bool {
		return actorID == admin.ID || OwnerPolicy{}.Authorize(actorID, resource)
	})
	service := NewBeritaService(s.beritaRepo, s.disk, s.validator, allowAdmin, zap.NewNop())

	created := s.create(s.owner.ID)
	updated, err := service.UpdateBerita(created.ID, models.BeritaRequest{
		Judul:    "Moderated",
		Konten:   "Body",
		Kategori: "news",
	}, admin.ID)
	s.Require().NoError(err)
	s.Equal("Moderated", updated.Judul)
	s.Equal(s.owner.ID, updated.UserID)

	_, err = service.UpdateBerita(created.ID, models.BeritaRequest{
		Judul:    "Nope",
		Konten:   "Body",
		Kategori: "news",
	}, s.other.ID)
	s.ErrorAs(err, &models.ErrorForbidden{})
}
