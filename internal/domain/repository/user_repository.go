package repository

import (
	"context"

	"github.com/prixmathaiti/prixmat-api/internal/domain/entity"
)

// UserRepository définit le port de persistance pour User (DIP).
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
}
