package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMaterialRequest entrée pour créer un matériau.
type CreateMaterialRequest struct {
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	Price         decimal.Decimal `json:"price"`
	Unit          string          `json:"unit"`
	FournisseurID string          `json:"fournisseurId"`
	Stock         int             `json:"stock"`
	Description   string          `json:"description"`
	ImageURL      string          `json:"img"`
}

// UpdateMaterialRequest entrée pour mettre à jour un matériau
// (champs absents = inchangés; le stock passe par PATCH /:id/stock).
type UpdateMaterialRequest struct {
	Name        *string          `json:"name"`
	Type        *string          `json:"type"`
	Price       *decimal.Decimal `json:"price"`
	Unit        *string          `json:"unit"`
	Description *string          `json:"description"`
	ImageURL    *string          `json:"img"`
}

// StockRequest entrée du PATCH de stock.
type StockRequest struct {
	Quantity  int    `json:"quantity"`
	Operation string `json:"operation"` // add | remove | set
}

// StockResponse résultat d'une mutation de stock.
type StockResponse struct {
	ID            string `json:"id"`
	PreviousStock int    `json:"previousStock"`
	NewStock      int    `json:"newStock"`
	Operation     string `json:"operation"`
}

// MaterialResponse sortie d'un matériau.
type MaterialResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	Price         decimal.Decimal `json:"price"`
	Unit          string          `json:"unit"`
	FournisseurID string          `json:"fournisseurId"`
	Stock         int             `json:"stock"`
	Description   string          `json:"description,omitempty"`
	ImageURL      string          `json:"img,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// SearchMaterialsQuery paramètres de la recherche (query string).
type SearchMaterialsQuery struct {
	Q          string `query:"q"`
	Type       string `query:"type"`
	Supplier   string `query:"supplier"`
	MinPrice   string `query:"minPrice"`
	MaxPrice   string `query:"maxPrice"`
	Department string `query:"department"`
}
