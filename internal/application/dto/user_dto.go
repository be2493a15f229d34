package dto

import "time"

// RegisterRequest entrée pour l'inscription.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest entrée pour la connexion.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token JWT accompagné de l'utilisateur connecté.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse sortie d'un utilisateur (jamais le mot de passe).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ResetPasswordRequest demande de réinitialisation par email.
type ResetPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordResponse confirmation de la demande.
// Le token n'est renvoyé qu'en dehors de la production (en production il
// part par email via un canal externe).
type ResetPasswordResponse struct {
	Email      string `json:"email"`
	ResetToken string `json:"resetToken,omitempty"`
}

// ChangePasswordRequest changement de mot de passe d'un utilisateur connecté.
type ChangePasswordRequest struct {
	NewPassword string `json:"newPassword"`
}

// VerifyTokenResponse claims renvoyés par la vérification de token.
type VerifyTokenResponse struct {
	UserID string `json:"uid"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}
