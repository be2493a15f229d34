package usecase

import (
	"context"
	"net/url"
	"time"

	"github.com/prixmathaiti/prixmat-api/internal/application/dto"
	"github.com/prixmathaiti/prixmat-api/internal/domain"
	"github.com/prixmathaiti/prixmat-api/internal/domain/entity"
	"github.com/prixmathaiti/prixmat-api/internal/domain/repository"
)

// PubliciteUseCase cas d'usage CRUD et activation des publicités.
type PubliciteUseCase struct {
	publicites repository.PubliciteRepository
	now        func() time.Time
}

// NewPubliciteUseCase construit le cas d'usage.
func NewPubliciteUseCase(publicites repository.PubliciteRepository) *PubliciteUseCase {
	return &PubliciteUseCase{publicites: publicites, now: time.Now}
}

// List renvoie toutes les publicités.
func (uc *PubliciteUseCase) List(ctx context.Context) ([]dto.PubliciteResponse, error) {
	all, err := uc.publicites.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toPubliciteResponses(all), nil
}

// ListActive renvoie les publicités visibles maintenant
// (actives et dans leur fenêtre de diffusion quand elle est définie).
func (uc *PubliciteUseCase) ListActive(ctx context.Context) ([]dto.PubliciteResponse, error) {
	all, err := uc.publicites.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	visibles := make([]entity.Publicite, 0, len(all))
	for _, p := range all {
		if p.VisibleAt(now) {
			visibles = append(visibles, p)
		}
	}
	return toPubliciteResponses(visibles), nil
}

// GetByID renvoie une publicité, ou ErrNotFound.
func (uc *PubliciteUseCase) GetByID(ctx context.Context, id string) (*dto.PubliciteResponse, error) {
	p, err := uc.publicites.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	out := toPubliciteResponse(*p)
	return &out, nil
}

// Create valide et persiste une nouvelle publicité.
func (uc *PubliciteUseCase) Create(ctx context.Context, in dto.CreatePubliciteRequest) (*dto.PubliciteResponse, error) {
	if in.Titre == "" {
		return nil, domain.ErrInvalidInput
	}
	if !urlValide(in.ImageURL) {
		return nil, domain.ErrInvalidInput
	}
	if in.LienURL != "" && !urlValide(in.LienURL) {
		return nil, domain.ErrInvalidInput
	}
	if in.DateDebut != nil && in.DateFin != nil && in.DateFin.Before(*in.DateDebut) {
		return nil, domain.ErrInvalidInput
	}

	active := true
	if in.Active != nil {
		active = *in.Active
	}
	now := uc.now()
	p := &entity.Publicite{
		Titre:       in.Titre,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		LienURL:     in.LienURL,
		MaterialID:  in.MaterialID,
		Active:      active,
		DateDebut:   in.DateDebut,
		DateFin:     in.DateFin,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.publicites.Create(ctx, p); err != nil {
		return nil, err
	}
	out := toPubliciteResponse(*p)
	return &out, nil
}

// Update modifie une publicité existante.
func (uc *PubliciteUseCase) Update(ctx context.Context, id string, in dto.UpdatePubliciteRequest) (*dto.PubliciteResponse, error) {
	p, err := uc.publicites.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	if in.Titre != nil {
		if *in.Titre == "" {
			return nil, domain.ErrInvalidInput
		}
		p.Titre = *in.Titre
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.ImageURL != nil {
		if !urlValide(*in.ImageURL) {
			return nil, domain.ErrInvalidInput
		}
		p.ImageURL = *in.ImageURL
	}
	if in.LienURL != nil {
		if *in.LienURL != "" && !urlValide(*in.LienURL) {
			return nil, domain.ErrInvalidInput
		}
		p.LienURL = *in.LienURL
	}
	if in.MaterialID != nil {
		p.MaterialID = *in.MaterialID
	}
	if in.DateDebut != nil {
		p.DateDebut = in.DateDebut
	}
	if in.DateFin != nil {
		p.DateFin = in.DateFin
	}
	p.UpdatedAt = uc.now()

	if err := uc.publicites.Update(ctx, p); err != nil {
		return nil, err
	}
	out := toPubliciteResponse(*p)
	return &out, nil
}

// SetActive active ou désactive une publicité.
func (uc *PubliciteUseCase) SetActive(ctx context.Context, id string, active bool) (*dto.PubliciteResponse, error) {
	p, err := uc.publicites.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	p.Active = active
	p.UpdatedAt = uc.now()
	if err := uc.publicites.Update(ctx, p); err != nil {
		return nil, err
	}
	out := toPubliciteResponse(*p)
	return &out, nil
}

// Delete supprime une publicité.
func (uc *PubliciteUseCase) Delete(ctx context.Context, id string) error {
	p, err := uc.publicites.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.publicites.Delete(ctx, id)
}

func toPubliciteResponse(p entity.Publicite) dto.PubliciteResponse {
	return dto.PubliciteResponse{
		ID:          p.ID,
		Titre:       p.Titre,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		LienURL:     p.LienURL,
		MaterialID:  p.MaterialID,
		Active:      p.Active,
		DateDebut:   p.DateDebut,
		DateFin:     p.DateFin,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toPubliciteResponses(publicites []entity.Publicite) []dto.PubliciteResponse {
	out := make([]dto.PubliciteResponse, 0, len(publicites))
	for _, p := range publicites {
		out = append(out, toPubliciteResponse(p))
	}
	return out
}

func urlValide(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
