package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/prixmathaiti/prixmat-api/internal/domain/entity"
	"github.com/prixmathaiti/prixmat-api/internal/domain/repository"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

const materialColumns = `id, name, type, price, unit, fournisseur_id, stock, description, image_url, created_at, updated_at`

// MaterialRepo implémentation du port MaterialRepository sur PostgreSQL.
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository construit l'adaptateur de persistance des matériaux.
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

// Create persiste un nouveau matériau. L'identifiant est attribué ici,
// côté store, et reporté sur l'entité.
func (r *MaterialRepo) Create(ctx context.Context, m *entity.Material) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO materials (` + materialColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.Name, m.Type, m.Price, m.Unit, m.FournisseurID, m.Stock,
		m.Description, m.ImageURL, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert material: %w", err)
	}
	return nil
}

// GetByID renvoie un matériau par ID, nil si absent.
func (r *MaterialRepo) GetByID(ctx context.Context, id string) (*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials WHERE id = $1`
	var m entity.Material
	err := r.q.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.Name, &m.Type, &m.Price, &m.Unit, &m.FournisseurID, &m.Stock,
		&m.Description, &m.ImageURL, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material: %w", err)
	}
	return &m, nil
}

// ListAll renvoie toute la collection dans l'ordre de création.
// Le moteur de recherche filtre ensuite en mémoire : l'ordre renvoyé ici
// est l'« ordre source » que la recherche doit préserver.
func (r *MaterialRepo) ListAll(ctx context.Context) ([]entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials ORDER BY created_at, id`
	return r.list(ctx, query)
}

// ListByFournisseur renvoie les matériaux d'un fournisseur.
func (r *MaterialRepo) ListByFournisseur(ctx context.Context, fournisseurID string) ([]entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials WHERE fournisseur_id = $1 ORDER BY created_at, id`
	return r.list(ctx, query, fournisseurID)
}

func (r *MaterialRepo) list(ctx context.Context, query string, args ...any) ([]entity.Material, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()

	var out []entity.Material
	for rows.Next() {
		var m entity.Material
		if err := rows.Scan(
			&m.ID, &m.Name, &m.Type, &m.Price, &m.Unit, &m.FournisseurID, &m.Stock,
			&m.Description, &m.ImageURL, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Update réécrit les champs modifiables d'un matériau (hors stock).
func (r *MaterialRepo) Update(ctx context.Context, m *entity.Material) error {
	query := `
		UPDATE materials
		SET name = $2, type = $3, price = $4, unit = $5, description = $6, image_url = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.Name, m.Type, m.Price, m.Unit, m.Description, m.ImageURL, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update material: %w", err)
	}
	return nil
}

// UpdateStock écrit newStock seulement si le stock courant vaut encore
// previousStock. Une mutation concurrente du même matériau fait échouer
// le swap (0 ligne touchée) au lieu de produire une mise à jour perdue.
func (r *MaterialRepo) UpdateStock(ctx context.Context, id string, previousStock, newStock int) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE materials SET stock = $3, updated_at = now() WHERE id = $1 AND stock = $2`,
		id, previousStock, newStock,
	)
	if err != nil {
		return false, fmt.Errorf("update stock: %w", err)
	}
	return cmd.RowsAffected() == 1, nil
}

// Delete supprime un matériau par ID.
func (r *MaterialRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM materials WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete material: %w", err)
	}
	return nil
}
