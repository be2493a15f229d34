package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/prixmathaiti/prixmat-api/internal/domain/entity"
)

// SentinelTous valeur de filtre équivalente à « pas de filtre »
// (envoyée par le front pour les listes déroulantes).
const SentinelTous = "Tous"

// Filters critères de recherche de matériaux. Tous les champs sont
// optionnels; les filtres actifs se combinent en ET.
type Filters struct {
	Texte         string           // sous-chaîne insensible à la casse sur Name OU Description
	Type          string           // égalité stricte
	FournisseurID string           // égalité stricte
	PrixMin       *decimal.Decimal // borne inclusive
	PrixMax       *decimal.Decimal // borne inclusive
	Departement   string           // filtre indirect via le département du fournisseur
}

func actif(s string) bool {
	return s != "" && s != SentinelTous
}

// Search filtre la collection de matériaux selon les critères donnés.
// L'ordre d'itération du store est conservé; sans filtre actif la
// collection est renvoyée inchangée. La liste des fournisseurs n'est
// consultée que pour le filtre par département.
func Search(materials []entity.Material, fournisseurs []entity.Fournisseur, f Filters) []entity.Material {
	result := materials

	if actif(f.Texte) {
		terme := strings.ToLower(f.Texte)
		result = retenir(result, func(m entity.Material) bool {
			return strings.Contains(strings.ToLower(m.Name), terme) ||
				strings.Contains(strings.ToLower(m.Description), terme)
		})
	}

	if actif(f.Type) {
		result = retenir(result, func(m entity.Material) bool { return m.Type == f.Type })
	}

	if actif(f.FournisseurID) {
		result = retenir(result, func(m entity.Material) bool { return m.FournisseurID == f.FournisseurID })
	}

	if f.PrixMin != nil {
		result = retenir(result, func(m entity.Material) bool { return m.Price.GreaterThanOrEqual(*f.PrixMin) })
	}

	if f.PrixMax != nil {
		result = retenir(result, func(m entity.Material) bool { return m.Price.LessThanOrEqual(*f.PrixMax) })
	}

	if actif(f.Departement) {
		// D'abord l'ensemble des fournisseurs du département, puis les
		// matériaux dont le fournisseur en fait partie.
		ids := make(map[string]struct{}, len(fournisseurs))
		for _, fr := range fournisseurs {
			if fr.Departement == f.Departement {
				ids[fr.ID] = struct{}{}
			}
		}
		result = retenir(result, func(m entity.Material) bool {
			_, ok := ids[m.FournisseurID]
			return ok
		})
	}

	return result
}

func retenir(materials []entity.Material, garde func(entity.Material) bool) []entity.Material {
	kept := make([]entity.Material, 0, len(materials))
	for _, m := range materials {
		if garde(m) {
			kept = append(kept, m)
		}
	}
	return kept
}
