package dto

import (
	"strings"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// RegisterRequest — body POST /api/auth/register
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Name     string `json:"name" validate:"required,min=2,max=100"`
	LastName string `json:"lastName" validate:"required,min=2,max=100"`
	Password string `json:"password" validate:"required,min=8"`
	// Role dicek terhadap constants.RegisterableRoles di service.
	Role string `json:"role" validate:"required"`
}

// Normalize — trim & normalisasi dasar
func (r *RegisterRequest) Normalize() {
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	r.Name = strings.TrimSpace(r.Name)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Role = strings.ToUpper(strings.TrimSpace(r.Role))
}

// LoginRequest — body POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type AuthUserResponse struct {
	UserID   int    `json:"user_id"`
	Name     string `json:"name"`
	LastName string `json:"last_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type LoginResponse struct {
	Token string           `json:"token"`
	User  AuthUserResponse `json:"user"`
}
