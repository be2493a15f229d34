package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/prixmathaiti/prixmat-api/internal/application/dto"
	"github.com/prixmathaiti/prixmat-api/internal/domain"
	"github.com/prixmathaiti/prixmat-api/internal/domain/catalog"
	"github.com/prixmathaiti/prixmat-api/internal/domain/entity"
	"github.com/prixmathaiti/prixmat-api/internal/domain/repository"
)

var telephoneRe = regexp.MustCompile(`^[0-9+\-\s]+$`)

// FournisseurUseCase cas d'usage CRUD des fournisseurs.
type FournisseurUseCase struct {
	fournisseurs repository.FournisseurRepository
	materials    repository.MaterialRepository
}

// NewFournisseurUseCase construit le cas d'usage.
func NewFournisseurUseCase(fournisseurs repository.FournisseurRepository, materials repository.MaterialRepository) *FournisseurUseCase {
	return &FournisseurUseCase{fournisseurs: fournisseurs, materials: materials}
}

// List renvoie une page de fournisseurs.
func (uc *FournisseurUseCase) List(ctx context.Context, page, limit int) ([]dto.FournisseurResponse, int, catalog.Pagination, error) {
	all, err := uc.fournisseurs.ListAll(ctx)
	if err != nil {
		return nil, 0, catalog.Pagination{}, err
	}
	pageItems, meta := catalog.Paginate(all, page, limit)
	out := make([]dto.FournisseurResponse, 0, len(pageItems))
	for _, f := range pageItems {
		out = append(out, toFournisseurResponse(f))
	}
	return out, len(all), meta, nil
}

// GetByID renvoie un fournisseur, ou ErrNotFound.
func (uc *FournisseurUseCase) GetByID(ctx context.Context, id string) (*dto.FournisseurResponse, error) {
	f, err := uc.fournisseurs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	out := toFournisseurResponse(*f)
	return &out, nil
}

// Materials renvoie les matériaux publiés par un fournisseur.
func (uc *FournisseurUseCase) Materials(ctx context.Context, id string) ([]dto.MaterialResponse, error) {
	f, err := uc.fournisseurs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	materials, err := uc.materials.ListByFournisseur(ctx, id)
	if err != nil {
		return nil, err
	}
	return toMaterialResponses(materials), nil
}

// Create valide et persiste un nouveau fournisseur.
func (uc *FournisseurUseCase) Create(ctx context.Context, in dto.CreateFournisseurRequest) (*dto.FournisseurResponse, error) {
	if in.Name == "" || in.Departement == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidEmail(in.Email) {
		return nil, domain.ErrInvalidInput
	}
	if in.Phone != "" && !telephoneRe.MatchString(in.Phone) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	f := &entity.Fournisseur{
		Name:        in.Name,
		Email:       strings.ToLower(in.Email),
		Departement: in.Departement,
		Phone:       in.Phone,
		Address:     in.Address,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.fournisseurs.Create(ctx, f); err != nil {
		return nil, err
	}
	out := toFournisseurResponse(*f)
	return &out, nil
}

// Update modifie un fournisseur existant.
func (uc *FournisseurUseCase) Update(ctx context.Context, id string, in dto.UpdateFournisseurRequest) (*dto.FournisseurResponse, error) {
	f, err := uc.fournisseurs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		f.Name = *in.Name
	}
	if in.Email != nil {
		if !entity.ValidEmail(*in.Email) {
			return nil, domain.ErrInvalidInput
		}
		f.Email = strings.ToLower(*in.Email)
	}
	if in.Departement != nil {
		if *in.Departement == "" {
			return nil, domain.ErrInvalidInput
		}
		f.Departement = *in.Departement
	}
	if in.Phone != nil {
		if *in.Phone != "" && !telephoneRe.MatchString(*in.Phone) {
			return nil, domain.ErrInvalidInput
		}
		f.Phone = *in.Phone
	}
	if in.Address != nil {
		f.Address = *in.Address
	}
	if in.Description != nil {
		f.Description = *in.Description
	}
	f.UpdatedAt = time.Now()

	if err := uc.fournisseurs.Update(ctx, f); err != nil {
		return nil, err
	}
	out := toFournisseurResponse(*f)
	return &out, nil
}

// Delete supprime un fournisseur. Ses matériaux restent en place
// (pas de cascade; la référence n'est validée qu'à la création du matériau).
func (uc *FournisseurUseCase) Delete(ctx context.Context, id string) error {
	f, err := uc.fournisseurs.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if f == nil {
		return domain.ErrNotFound
	}
	return uc.fournisseurs.Delete(ctx, id)
}

func toFournisseurResponse(f entity.Fournisseur) dto.FournisseurResponse {
	return dto.FournisseurResponse{
		ID:          f.ID,
		Name:        f.Name,
		Email:       f.Email,
		Departement: f.Departement,
		Phone:       f.Phone,
		Address:     f.Address,
		Description: f.Description,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}
