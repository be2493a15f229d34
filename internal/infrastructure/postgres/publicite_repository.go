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

var _ repository.PubliciteRepository = (*PubliciteRepo)(nil)

const publiciteColumns = `id, titre, description, image_url, lien_url, material_id, active, date_debut, date_fin, created_at, updated_at`

// PubliciteRepo implémentation du port PubliciteRepository sur PostgreSQL.
type PubliciteRepo struct {
	q Querier
}

// NewPubliciteRepository construit l'adaptateur de persistance des publicités.
func NewPubliciteRepository(q Querier) *PubliciteRepo {
	return &PubliciteRepo{q: q}
}

// Create persiste une nouvelle publicité, ID attribué côté store.
func (r *PubliciteRepo) Create(ctx context.Context, p *entity.Publicite) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	query := `
		INSERT INTO publicites (` + publiciteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Titre, p.Description, p.ImageURL, p.LienURL, p.MaterialID, p.Active,
		p.DateDebut, p.DateFin, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert publicite: %w", err)
	}
	return nil
}

// GetByID renvoie une publicité par ID, nil si absente.
func (r *PubliciteRepo) GetByID(ctx context.Context, id string) (*entity.Publicite, error) {
	query := `SELECT ` + publiciteColumns + ` FROM publicites WHERE id = $1`
	var p entity.Publicite
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Titre, &p.Description, &p.ImageURL, &p.LienURL, &p.MaterialID, &p.Active,
		&p.DateDebut, &p.DateFin, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get publicite: %w", err)
	}
	return &p, nil
}

// ListAll renvoie toutes les publicités, les plus récentes d'abord.
func (r *PubliciteRepo) ListAll(ctx context.Context) ([]entity.Publicite, error) {
	rows, err := r.q.Query(ctx, `SELECT `+publiciteColumns+` FROM publicites ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list publicites: %w", err)
	}
	defer rows.Close()

	var out []entity.Publicite
	for rows.Next() {
		var p entity.Publicite
		if err := rows.Scan(
			&p.ID, &p.Titre, &p.Description, &p.ImageURL, &p.LienURL, &p.MaterialID, &p.Active,
			&p.DateDebut, &p.DateFin, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan publicite: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Update réécrit une publicité existante.
func (r *PubliciteRepo) Update(ctx context.Context, p *entity.Publicite) error {
	query := `
		UPDATE publicites
		SET titre = $2, description = $3, image_url = $4, lien_url = $5, material_id = $6,
		    active = $7, date_debut = $8, date_fin = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Titre, p.Description, p.ImageURL, p.LienURL, p.MaterialID,
		p.Active, p.DateDebut, p.DateFin, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update publicite: %w", err)
	}
	return nil
}

// Delete supprime une publicité par ID.
func (r *PubliciteRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM publicites WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete publicite: %w", err)
	}
	return nil
}
