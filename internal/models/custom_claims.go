package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// CustomClaims are the JWT claims carried by access tokens. The user ID in
// the claims is the only source of identity for request handling; it is never
// accepted from query parameters or request bodies.
type CustomClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
