package usecase

import (
	"context"
	"time"

	"github.com/prixmathaiti/prixmat-api/internal/application/dto"
	"github.com/prixmathaiti/prixmat-api/internal/domain"
	"github.com/prixmathaiti/prixmat-api/internal/domain/catalog"
	"github.com/prixmathaiti/prixmat-api/internal/domain/entity"
	"github.com/prixmathaiti/prixmat-api/internal/domain/repository"
)

// Acteur identité autorisée portée par la requête (issue du middleware).
// FournisseurID n'est valorisé que pour un compte fournisseur.
type Acteur struct {
	Role          string
	FournisseurID string
}

// EstAdmin vrai pour un compte administrateur.
func (a Acteur) EstAdmin() bool { return a.Role == entity.RoleAdmin }

// MaterialUseCase cas d'usage CRUD, recherche et statistiques des matériaux.
type MaterialUseCase struct {
	materials    repository.MaterialRepository
	fournisseurs repository.FournisseurRepository
}

// NewMaterialUseCase construit le cas d'usage.
func NewMaterialUseCase(materials repository.MaterialRepository, fournisseurs repository.FournisseurRepository) *MaterialUseCase {
	return &MaterialUseCase{materials: materials, fournisseurs: fournisseurs}
}

// List renvoie une page de matériaux avec ses métadonnées.
func (uc *MaterialUseCase) List(ctx context.Context, page, limit int) ([]dto.MaterialResponse, int, catalog.Pagination, error) {
	all, err := uc.materials.ListAll(ctx)
	if err != nil {
		return nil, 0, catalog.Pagination{}, err
	}
	pageItems, meta := catalog.Paginate(all, page, limit)
	return toMaterialResponses(pageItems), len(all), meta, nil
}

// GetByID renvoie un matériau, ou ErrNotFound.
func (uc *MaterialUseCase) GetByID(ctx context.Context, id string) (*dto.MaterialResponse, error) {
	m, err := uc.materials.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	out := toMaterialResponse(*m)
	return &out, nil
}

// Search filtre la collection complète selon les critères conjonctifs.
// La liste des fournisseurs n'est chargée que si le filtre département est actif.
func (uc *MaterialUseCase) Search(ctx context.Context, f catalog.Filters) ([]dto.MaterialResponse, error) {
	all, err := uc.materials.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	var fournisseurs []entity.Fournisseur
	if f.Departement != "" && f.Departement != catalog.SentinelTous {
		fournisseurs, err = uc.fournisseurs.ListAll(ctx)
		if err != nil {
			return nil, err
		}
	}
	return toMaterialResponses(catalog.Search(all, fournisseurs, f)), nil
}

// Stats agrège toute la collection en un résumé.
func (uc *MaterialUseCase) Stats(ctx context.Context) (catalog.Stats, error) {
	all, err := uc.materials.ListAll(ctx)
	if err != nil {
		return catalog.Stats{}, err
	}
	return catalog.ComputeStats(all), nil
}

// Create valide et persiste un nouveau matériau.
// Le fournisseur référencé doit exister au moment de la création
// (pas de contrôle référentiel ensuite : supprimer un fournisseur ne cascade pas).
func (uc *MaterialUseCase) Create(ctx context.Context, in dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	if in.Name == "" || len(in.Name) > 200 {
		return nil, domain.ErrInvalidInput
	}
	if in.Type == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.FournisseurID == "" {
		return nil, domain.ErrSupplierNotFound
	}
	if in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Description) > 1000 {
		return nil, domain.ErrInvalidInput
	}
	if in.Unit == "" {
		in.Unit = entity.DefaultUnit
	}
	if !entity.ValidUnit(in.Unit) {
		return nil, domain.ErrInvalidInput
	}
	fournisseur, err := uc.fournisseurs.GetByID(ctx, in.FournisseurID)
	if err != nil {
		return nil, err
	}
	if fournisseur == nil {
		return nil, domain.ErrSupplierNotFound
	}

	img := in.ImageURL
	if img == "" {
		img = entity.DefaultImageURL
	}
	now := time.Now()
	m := &entity.Material{
		Name:          in.Name,
		Type:          in.Type,
		Price:         in.Price,
		Unit:          in.Unit,
		FournisseurID: in.FournisseurID,
		Stock:         in.Stock,
		Description:   in.Description,
		ImageURL:      img,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.materials.Create(ctx, m); err != nil {
		return nil, err
	}
	out := toMaterialResponse(*m)
	return &out, nil
}

// Update modifie un matériau. Réservé à l'admin ou au fournisseur propriétaire.
func (uc *MaterialUseCase) Update(ctx context.Context, id string, acteur Acteur, in dto.UpdateMaterialRequest) (*dto.MaterialResponse, error) {
	m, err := uc.materials.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	if !acteur.EstAdmin() && (acteur.FournisseurID == "" || acteur.FournisseurID != m.FournisseurID) {
		return nil, domain.ErrForbidden
	}

	if in.Name != nil {
		if *in.Name == "" || len(*in.Name) > 200 {
			return nil, domain.ErrInvalidInput
		}
		m.Name = *in.Name
	}
	if in.Type != nil {
		if *in.Type == "" {
			return nil, domain.ErrInvalidInput
		}
		m.Type = *in.Type
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		m.Price = *in.Price
	}
	if in.Unit != nil {
		if !entity.ValidUnit(*in.Unit) {
			return nil, domain.ErrInvalidInput
		}
		m.Unit = *in.Unit
	}
	if in.Description != nil {
		if len(*in.Description) > 1000 {
			return nil, domain.ErrInvalidInput
		}
		m.Description = *in.Description
	}
	if in.ImageURL != nil {
		m.ImageURL = *in.ImageURL
	}
	m.UpdatedAt = time.Now()

	if err := uc.materials.Update(ctx, m); err != nil {
		return nil, err
	}
	out := toMaterialResponse(*m)
	return &out, nil
}

// UpdateStock applique add/remove/set au stock du matériau.
// La décision est pure (catalog.ApplyStockOperation); l'écriture est un
// compare-and-swap sur la valeur précédente : une mutation concurrente du
// même matériau ressort en ErrConflict au lieu d'une mise à jour perdue.
func (uc *MaterialUseCase) UpdateStock(ctx context.Context, id string, in dto.StockRequest) (*dto.StockResponse, error) {
	m, err := uc.materials.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}

	newStock, err := catalog.ApplyStockOperation(m.Stock, in.Quantity, in.Operation)
	if err != nil {
		return nil, err
	}

	swapped, err := uc.materials.UpdateStock(ctx, id, m.Stock, newStock)
	if err != nil {
		return nil, err
	}
	if !swapped {
		return nil, domain.ErrConflict
	}

	return &dto.StockResponse{
		ID:            id,
		PreviousStock: m.Stock,
		NewStock:      newStock,
		Operation:     in.Operation,
	}, nil
}

// Delete supprime un matériau (admin seulement, contrôlé en amont).
func (uc *MaterialUseCase) Delete(ctx context.Context, id string) error {
	m, err := uc.materials.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	return uc.materials.Delete(ctx, id)
}

func toMaterialResponse(m entity.Material) dto.MaterialResponse {
	return dto.MaterialResponse{
		ID:            m.ID,
		Name:          m.Name,
		Type:          m.Type,
		Price:         m.Price,
		Unit:          m.Unit,
		FournisseurID: m.FournisseurID,
		Stock:         m.Stock,
		Description:   m.Description,
		ImageURL:      m.ImageURL,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toMaterialResponses(materials []entity.Material) []dto.MaterialResponse {
	out := make([]dto.MaterialResponse, 0, len(materials))
	for _, m := range materials {
		out = append(out, toMaterialResponse(m))
	}
	return out
}
