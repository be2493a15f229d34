package repository

import (
	"context"

	"github.com/prixmathaiti/prixmat-api/internal/domain/entity"
)

// MaterialRepository définit le port de persistance pour Material (DIP).
// La forme arborescente du store reste un détail d'implémentation :
// le moteur de recherche travaille sur la collection renvoyée par ListAll.
type MaterialRepository interface {
	Create(ctx context.Context, m *entity.Material) error
	GetByID(ctx context.Context, id string) (*entity.Material, error)
	ListAll(ctx context.Context) ([]entity.Material, error)
	ListByFournisseur(ctx context.Context, fournisseurID string) ([]entity.Material, error)
	Update(ctx context.Context, m *entity.Material) error
	// UpdateStock écrit le nouveau stock seulement si le stock courant vaut
	// encore previousStock (compare-and-swap). Renvoie false si une mutation
	// concurrente a gagné la course.
	UpdateStock(ctx context.Context, id string, previousStock, newStock int) (bool, error)
	Delete(ctx context.Context, id string) error
}
