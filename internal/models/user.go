package models

import (
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

// User is only persisted in local auth mode; with Firebase the identity
// provider is the source of truth and no user row is kept.
type User struct {
	gorm.Model `json:"-"`
	ID         uint   `json:"id" gorm:"primaryKey"`
	Name       string `json:"name"`
	Email      string `json:"email" gorm:"uniqueIndex"`
	Password   string `json:"-"` // bcrypt hash, never serialized
}

type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Viewer is the identity of the current page load: either resolved from the
// identity provider, or zero-valued for anonymous reads.
type Viewer struct {
	Name  string
	Email string
}

// Authenticated reports whether the viewer carries a provider identity
func (v Viewer) Authenticated() bool {
	return v.Email != ""
}

// DisplayName falls back to the email, mirroring how authors are labelled
func (v Viewer) DisplayName() string {
	if v.Name != "" {
		return v.Name
	}
	if v.Email != "" {
		return v.Email
	}
	return "Anonymous"
}
