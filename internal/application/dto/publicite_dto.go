package dto

import "time"

// CreatePubliciteRequest entrée pour créer une publicité.
type CreatePubliciteRequest struct {
	Titre       string     `json:"titre"`
	Description string     `json:"description"`
	ImageURL    string     `json:"imageUrl"`
	LienURL     string     `json:"lienUrl"`
	MaterialID  string     `json:"materialId"`
	Active      *bool      `json:"active"` // nil = active par défaut
	DateDebut   *time.Time `json:"dateDebut"`
	DateFin     *time.Time `json:"dateFin"`
}

// UpdatePubliciteRequest entrée pour mettre à jour une publicité.
type UpdatePubliciteRequest struct {
	Titre       *string    `json:"titre"`
	Description *string    `json:"description"`
	ImageURL    *string    `json:"imageUrl"`
	LienURL     *string    `json:"lienUrl"`
	MaterialID  *string    `json:"materialId"`
	DateDebut   *time.Time `json:"dateDebut"`
	DateFin     *time.Time `json:"dateFin"`
}

// PubliciteResponse sortie d'une publicité.
type PubliciteResponse struct {
	ID          string     `json:"id"`
	Titre       string     `json:"titre"`
	Description string     `json:"description,omitempty"`
	ImageURL    string     `json:"imageUrl"`
	LienURL     string     `json:"lienUrl,omitempty"`
	MaterialID  string     `json:"materialId,omitempty"`
	Active      bool       `json:"active"`
	DateDebut   *time.Time `json:"dateDebut,omitempty"`
	DateFin     *time.Time `json:"dateFin,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
