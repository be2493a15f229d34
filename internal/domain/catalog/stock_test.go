package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prixmathaiti/prixmat-api/internal/domain"
	"github.com/prixmathaiti/prixmat-api/internal/domain/catalog"
)

func TestApplyStockOperation(t *testing.T) {
	cas := []struct {
		nom       string
		current   int
		quantity  int
		operation string
		attendu   int
		erreur    error
	}{
		{nom: "add", current: 5, quantity: 3, operation: "add", attendu: 8},
		{nom: "remove", current: 5, quantity: 3, operation: "remove", attendu: 2},
		{nom: "remove tout le stock", current: 5, quantity: 5, operation: "remove", attendu: 0},
		{nom: "remove au-delà du stock", current: 5, quantity: 10, operation: "remove", erreur: domain.ErrInsufficientStock},
		{nom: "set écrase la valeur courante", current: 5, quantity: 7, operation: "set", attendu: 7},
		{nom: "quantité nulle", current: 5, quantity: 0, operation: "add", erreur: domain.ErrInvalidQuantity},
		{nom: "quantité négative", current: 5, quantity: -2, operation: "set", erreur: domain.ErrInvalidQuantity},
		{nom: "opération inconnue", current: 5, quantity: 3, operation: "increment", erreur: domain.ErrInvalidOperation},
	}

	for _, c := range cas {
		t.Run(c.nom, func(t *testing.T) {
			stock, err := catalog.ApplyStockOperation(c.current, c.quantity, c.operation)
			if c.erreur != nil {
				assert.ErrorIs(t, err, c.erreur)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.attendu, stock)
		})
	}
}

