package entity

import "time"

// Rôles valides pour User.
const (
	RoleAdmin       = "admin"
	RoleFournisseur = "fournisseur"
	RoleClient      = "client"
)

// User représente un compte authentifiable.
// ResetToken n'est valorisé qu'entre une demande de réinitialisation
// et son utilisation (usage unique, expiration courte).
type User struct {
	ID             string
	Email          string
	PasswordHash   string // hash bcrypt, jamais le mot de passe en clair
	Name           string
	Role           string // admin, fournisseur, client
	ResetToken     string
	ResetExpiresAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
