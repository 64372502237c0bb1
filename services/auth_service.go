package services

import (
	"errors"
	"time"

	"berita-api/config"
	"berita-api/models"
	"berita-api/repositories"
	"berita-api/validation"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(req models.RegisterRequest) (*models.AuthResponse, error)
	Login(req models.LoginRequest) (*models.AuthResponse, error)
	GetUserByID(id uint) (*models.User, error)
	Logout(claims *models.Claims) error
}

type authService struct {
	userRepo  repositories.UserRepository
	tokenRepo repositories.TokenRepository
	validator *validation.Validator
}

func NewAuthService(userRepo repositories.UserRepository, tokenRepo repositories.TokenRepository, validator *validation.Validator) AuthService {
	return &authService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		validator: validator,
	}
}

func (s *authService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	if err := s.validator.Check(req); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Message:     "Registrasi berhasil",
		User:        *user,
		AccessToken: token,
		TokenType:   "Bearer",
	}, nil
}

func (s *authService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	if err := s.validator.Check(req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorUnauthorized{Message: "Invalid credentials"}
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, models.ErrorUnauthorized{Message: "Invalid credentials"}
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Message:     "Login berhasil",
		User:        *user,
		AccessToken: token,
		TokenType:   "Bearer",
	}, nil
}

func (s *authService) GetUserByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrorNotFound{Message: "User tidak ditemukan"}
	}
	return user, err
}

func (s *authService) Logout(claims *models.Claims) error {
	expiresAt := time.Now().Add(config.JWTExpiration)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	return s.tokenRepo.Revoke(claims.ID, claims.UserID, expiresAt)
}

func (s *authService) generateToken(user *models.User) (string, error) {
	now := time.Now()

	claims := models.Claims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(config.JWTExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}
