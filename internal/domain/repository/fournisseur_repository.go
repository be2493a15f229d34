package repository

import (
	"context"

	"github.com/prixmathaiti/prixmat-api/internal/domain/entity"
)

// FournisseurRepository définit le port de persistance pour Fournisseur (DIP).
type FournisseurRepository interface {
	Create(ctx context.Context, f *entity.Fournisseur) error
	GetByID(ctx context.Context, id string) (*entity.Fournisseur, error)
	GetByEmail(ctx context.Context, email string) (*entity.Fournisseur, error)
	ListAll(ctx context.Context) ([]entity.Fournisseur, error)
	Update(ctx context.Context, f *entity.Fournisseur) error
	Delete(ctx context.Context, id string) error
}
