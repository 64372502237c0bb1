package middleware

import (
	"strings"

	"berita-api/config"
	"berita-api/helper"
	"berita-api/models"
	"berita-api/repositories"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

// AuthMiddleware verifies the bearer token and stores the actor in the
// context. Every failure is answered with 401.
func AuthMiddleware(h *helper.HTTPHelper, tokenRepo repositories.TokenRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			h.SendUnauthorizedError(c, "Unauthenticated.")
			c.Abort()
			return
		}

		// Ambil token string
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			h.SendUnauthorizedError(c, "Bearer token required")
			c.Abort()
			return
		}

		claims := &models.Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			// Validasi metode signing
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return config.JWTSecret, nil
		})
		if err != nil || !token.Valid {
			h.SendUnauthorizedError(c, "Unauthenticated.")
			c.Abort()
			return
		}

		revoked, err := tokenRepo.IsRevoked(claims.ID)
		if err != nil {
			h.SendInternalError(c, err)
			c.Abort()
			return
		}
		if revoked {
			h.SendUnauthorizedError(c, "Unauthenticated.")
			c.Abort()
			return
		}

		// Simpan data ke context
		c.Set(helper.ContextUserID, claims.UserID)
		c.Set(helper.ContextClaims, claims)

		c.Next()
	}
}
