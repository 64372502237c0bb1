package repositories

import (
	"time"

	"berita-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TokenRepository interface {
	Revoke(jti string, userID uint, expiresAt time.Time) error
	IsRevoked(jti string) (bool, error)
}

type tokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

// Revoke is idempotent; logging out twice with the same token is not an error.
func (r *tokenRepository) Revoke(jti string, userID uint, expiresAt time.Time) error {
	token := &models.RevokedToken{
		JTI:       jti,
		UserID:    userID,
		ExpiresAt: expiresAt,
	}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(token).Error
}

func (r *tokenRepository) IsRevoked(jti string) (bool, error) {
	var count int64
	err := r.db.Model(&models.RevokedToken{}).Where("jti = ?", jti).Count(&count).Error
	return count > 0, err
}
