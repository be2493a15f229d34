package catalog

import "github.com/prixmathaiti/prixmat-api/internal/domain"

// Opérations de stock acceptées.
const (
	StockAdd    = "add"
	StockRemove = "remove"
	StockSet    = "set"
)

// ApplyStockOperation calcule le nouveau stock d'un matériau.
// Fonction de décision pure : l'appelant est responsable de persister le
// résultat de façon atomique (compare-and-swap côté store).
func ApplyStockOperation(current, quantity int, operation string) (int, error) {
	if quantity <= 0 {
		return 0, domain.ErrInvalidQuantity
	}
	switch operation {
	case StockAdd:
		return current + quantity, nil
	case StockRemove:
		if current < quantity {
			return 0, domain.ErrInsufficientStock
		}
		return current - quantity, nil
	case StockSet:
		return quantity, nil
	default:
		return 0, domain.ErrInvalidOperation
	}
}
