package repository

import (
	"context"

	"github.com/prixmathaiti/prixmat-api/internal/domain/entity"
)

// PubliciteRepository définit le port de persistance pour Publicite (DIP).
type PubliciteRepository interface {
	Create(ctx context.Context, p *entity.Publicite) error
	GetByID(ctx context.Context, id string) (*entity.Publicite, error)
	ListAll(ctx context.Context) ([]entity.Publicite, error)
	Update(ctx context.Context, p *entity.Publicite) error
	Delete(ctx context.Context, id string) error
}
