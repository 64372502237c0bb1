package models

import "github.com/golang-jwt/jwt/v4"

// Claims is the payload of an access token. The registered ID holds the
// token id checked against revoked_tokens.
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}
