package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/prixmathaiti/prixmat-api/internal/domain/entity"
	"github.com/prixmathaiti/prixmat-api/internal/domain/repository"
)

var _ repository.FournisseurRepository = (*FournisseurRepo)(nil)

const fournisseurColumns = `id, name, email, departement, phone, address, description, created_at, updated_at`

// FournisseurRepo implémentation du port FournisseurRepository sur PostgreSQL.
type FournisseurRepo struct {
	q Querier
}

// NewFournisseurRepository construit l'adaptateur de persistance des fournisseurs.
func NewFournisseurRepository(q Querier) *FournisseurRepo {
	return &FournisseurRepo{q: q}
}

// Create persiste un nouveau fournisseur, ID attribué côté store.
func (r *FournisseurRepo) Create(ctx context.Context, f *entity.Fournisseur) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	query := `
		INSERT INTO fournisseurs (` + fournisseurColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		f.ID, f.Name, f.Email, f.Departement, f.Phone, f.Address, f.Description,
		f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert fournisseur: %w", err)
	}
	return nil
}

// GetByID renvoie un fournisseur par ID, nil si absent.
func (r *FournisseurRepo) GetByID(ctx context.Context, id string) (*entity.Fournisseur, error) {
	return r.get(ctx, `SELECT `+fournisseurColumns+` FROM fournisseurs WHERE id = $1`, id)
}

// GetByEmail renvoie le fournisseur rattaché à un email, nil si absent.
// L'email n'étant pas unique, la plus ancienne fiche l'emporte.
// Sert au middleware à résoudre le rôle fournisseur d'un compte connecté.
func (r *FournisseurRepo) GetByEmail(ctx context.Context, email string) (*entity.Fournisseur, error) {
	query := `SELECT ` + fournisseurColumns + ` FROM fournisseurs
		WHERE lower(email) = lower($1) ORDER BY created_at, id LIMIT 1`
	return r.get(ctx, query, strings.TrimSpace(email))
}

func (r *FournisseurRepo) get(ctx context.Context, query string, arg any) (*entity.Fournisseur, error) {
	var f entity.Fournisseur
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&f.ID, &f.Name, &f.Email, &f.Departement, &f.Phone, &f.Address, &f.Description,
		&f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fournisseur: %w", err)
	}
	return &f, nil
}

// ListAll renvoie tous les fournisseurs dans l'ordre de création.
func (r *FournisseurRepo) ListAll(ctx context.Context) ([]entity.Fournisseur, error) {
	rows, err := r.q.Query(ctx, `SELECT `+fournisseurColumns+` FROM fournisseurs ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list fournisseurs: %w", err)
	}
	defer rows.Close()

	var out []entity.Fournisseur
	for rows.Next() {
		var f entity.Fournisseur
		if err := rows.Scan(
			&f.ID, &f.Name, &f.Email, &f.Departement, &f.Phone, &f.Address, &f.Description,
			&f.CreatedAt, &f.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan fournisseur: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// Update réécrit un fournisseur existant.
func (r *FournisseurRepo) Update(ctx context.Context, f *entity.Fournisseur) error {
	query := `
		UPDATE fournisseurs
		SET name = $2, email = $3, departement = $4, phone = $5, address = $6, description = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		f.ID, f.Name, f.Email, f.Departement, f.Phone, f.Address, f.Description, f.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update fournisseur: %w", err)
	}
	return nil
}

// Delete supprime un fournisseur. Ses matériaux ne sont pas touchés.
func (r *FournisseurRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM fournisseurs WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete fournisseur: %w", err)
	}
	return nil
}
