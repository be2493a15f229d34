package dto

import "time"

// CreateFournisseurRequest entrée pour créer un fournisseur.
type CreateFournisseurRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Departement string `json:"departement"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Description string `json:"description"`
}

// UpdateFournisseurRequest entrée pour mettre à jour un fournisseur.
type UpdateFournisseurRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Departement *string `json:"departement"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	Description *string `json:"description"`
}

// FournisseurResponse sortie d'un fournisseur.
type FournisseurResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Departement string    `json:"departement"`
	Phone       string    `json:"phone,omitempty"`
	Address     string    `json:"address,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
