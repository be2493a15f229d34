package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unités de mesure acceptées pour un matériau.
var MaterialUnits = []string{"unité", "mètre", "m²", "m³", "kg", "tonne", "sac", "botte", "rouleau"}

// DefaultUnit unité appliquée quand la requête n'en précise pas.
const DefaultUnit = "unité"

// DefaultImageURL image de remplacement quand le matériau n'a pas de photo.
const DefaultImageURL = "https://via.placeholder.com/150"

// Material représente un matériau de construction publié par un fournisseur.
// L'ID est attribué par le store à la création et ne change jamais.
// Le département d'un matériau se déduit transitivement de son fournisseur.
type Material struct {
	ID            string
	Name          string          // requis, ≤ 200 caractères
	Type          string          // catégorie libre (ciment, fer, bois, ...)
	Price         decimal.Decimal // prix unitaire en gourdes, jamais négatif
	Unit          string
	FournisseurID string
	Stock         int    // jamais négatif
	Description   string // optionnelle, ≤ 1000 caractères
	ImageURL      string
	CreatedAt     time.Time
	UpdatedAt     time.Time // rafraîchi à chaque mutation, toujours ≥ CreatedAt
}

// ValidUnit vérifie que l'unité fait partie des valeurs acceptées.
func ValidUnit(u string) bool {
	for _, unit := range MaterialUnits {
		if u == unit {
			return true
		}
	}
	return false
}
