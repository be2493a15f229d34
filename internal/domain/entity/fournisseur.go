package entity

import "time"

// Fournisseur représente un fournisseur de matériaux.
// L'email sert aussi à relier un compte utilisateur à son fournisseur
// (résolution du rôle fournisseur par le middleware).
type Fournisseur struct {
	ID          string
	Name        string
	Email       string
	Departement string // département géographique (Ouest, Nord, Sud, ...)
	Phone       string // optionnel
	Address     string // optionnel
	Description string // optionnel
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
