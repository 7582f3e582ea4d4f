package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin  = 1
	RoleClient = 3
)

type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name" validate:"required"`
	Lastname     string    `json:"lastname" validate:"required"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"password,omitempty" validate:"required,min=8"`
	Active       bool      `json:"active"`
	RoleID       int       `json:"role_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Claims struct {
	UserID     int
	UserName   string
	UserEmail  string
	UserRoleID int
	jwt.RegisteredClaims
}
