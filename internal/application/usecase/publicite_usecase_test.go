package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prixmathaiti/prixmat-api/internal/application/dto"
	"github.com/prixmathaiti/prixmat-api/internal/application/usecase"
	"github.com/prixmathaiti/prixmat-api/internal/domain"
	"github.com/prixmathaiti/prixmat-api/internal/domain/entity"
)

type memPubliciteRepo struct {
	items []entity.Publicite
}

func (r *memPubliciteRepo) Create(_ context.Context, p *entity.Publicite) error {
	if p.ID == "" {
		p.ID = "p-nouvelle"
	}
	r.items = append(r.items, *p)
	return nil
}

func (r *memPubliciteRepo) GetByID(_ context.Context, id string) (*entity.Publicite, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			p := r.items[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *memPubliciteRepo) ListAll(context.Context) ([]entity.Publicite, error) {
	out := make([]entity.Publicite, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *memPubliciteRepo) Update(_ context.Context, p *entity.Publicite) error {
	for i := range r.items {
		if r.items[i].ID == p.ID {
			r.items[i] = *p
		}
	}
	return nil
}

func (r *memPubliciteRepo) Delete(_ context.Context, id string) error { return nil }

func tptr(t time.Time) *time.Time { return &t }

// ──────────────────────────────────────────────────────────────────────────────
// Visibilité
// ──────────────────────────────────────────────────────────────────────────────

func TestPubliciteVisibleAt(t *testing.T) {
	instant := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	avant := instant.Add(-24 * time.Hour)
	apres := instant.Add(24 * time.Hour)

	cas := []struct {
		nom     string
		pub     entity.Publicite
		visible bool
	}{
		{"inactive", entity.Publicite{Active: false}, false},
		{"active sans fenêtre", entity.Publicite{Active: true}, true},
		{"fenêtre pas encore ouverte", entity.Publicite{Active: true, DateDebut: tptr(apres)}, false},
		{"fenêtre déjà fermée", entity.Publicite{Active: true, DateFin: tptr(avant)}, false},
		{"dans la fenêtre", entity.Publicite{Active: true, DateDebut: tptr(avant), DateFin: tptr(apres)}, true},
		{"début seul, passé", entity.Publicite{Active: true, DateDebut: tptr(avant)}, true},
	}
	for _, c := range cas {
		assert.Equal(t, c.visible, c.pub.VisibleAt(instant), c.nom)
	}
}

func TestListActive_NeSertQueLesVisibles(t *testing.T) {
	passe := time.Now().Add(-48 * time.Hour)
	futur := time.Now().Add(48 * time.Hour)
	repo := &memPubliciteRepo{items: []entity.Publicite{
		{ID: "p1", Titre: "Promo ciment", Active: true},
		{ID: "p2", Titre: "Désactivée", Active: false},
		{ID: "p3", Titre: "Pas encore diffusée", Active: true, DateDebut: tptr(futur)},
		{ID: "p4", Titre: "Campagne expirée", Active: true, DateFin: tptr(passe)},
		{ID: "p5", Titre: "En cours", Active: true, DateDebut: tptr(passe), DateFin: tptr(futur)},
	}}
	uc := usecase.NewPubliciteUseCase(repo)

	out, err := uc.ListActive(context.Background())
	require.NoError(t, err)

	ids := make([]string, 0, len(out))
	for _, p := range out {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"p1", "p5"}, ids)
}

// ──────────────────────────────────────────────────────────────────────────────
// Création et validation
// ──────────────────────────────────────────────────────────────────────────────

func TestCreatePublicite_ActiveParDefaut(t *testing.T) {
	repo := &memPubliciteRepo{}
	uc := usecase.NewPubliciteUseCase(repo)

	out, err := uc.Create(context.Background(), dto.CreatePubliciteRequest{
		Titre:    "Promo fer",
		ImageURL: "https://cdn.prixmat.ht/promo-fer.jpg",
	})
	require.NoError(t, err)
	assert.True(t, out.Active)
	assert.Len(t, repo.items, 1)
}

func TestCreatePublicite_EntreesInvalides(t *testing.T) {
	uc := usecase.NewPubliciteUseCase(&memPubliciteRepo{})
	debut := time.Now()
	fin := debut.Add(-time.Hour)

	cas := []struct {
		nom string
		in  dto.CreatePubliciteRequest
	}{
		{"titre manquant", dto.CreatePubliciteRequest{ImageURL: "https://cdn.prixmat.ht/a.jpg"}},
		{"image manquante", dto.CreatePubliciteRequest{Titre: "Promo"}},
		{"image sans schéma http", dto.CreatePubliciteRequest{Titre: "Promo", ImageURL: "ftp://cdn/a.jpg"}},
		{"lien invalide", dto.CreatePubliciteRequest{Titre: "Promo", ImageURL: "https://cdn.prixmat.ht/a.jpg", LienURL: "pas-une-url"}},
		{"fin avant début", dto.CreatePubliciteRequest{Titre: "Promo", ImageURL: "https://cdn.prixmat.ht/a.jpg", DateDebut: &debut, DateFin: &fin}},
	}
	for _, c := range cas {
		_, err := uc.Create(context.Background(), c.in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, c.nom)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Activation / désactivation
// ──────────────────────────────────────────────────────────────────────────────

func TestSetActive_BasculeEtPersiste(t *testing.T) {
	repo := &memPubliciteRepo{items: []entity.Publicite{
		{ID: "p1", Titre: "Promo ciment", Active: true},
	}}
	uc := usecase.NewPubliciteUseCase(repo)

	out, err := uc.SetActive(context.Background(), "p1", false)
	require.NoError(t, err)
	assert.False(t, out.Active)
	assert.False(t, repo.items[0].Active, "la désactivation doit être persistée")

	actives, err := uc.ListActive(context.Background())
	require.NoError(t, err)
	assert.Empty(t, actives)

	out, err = uc.SetActive(context.Background(), "p1", true)
	require.NoError(t, err)
	assert.True(t, out.Active)
	assert.True(t, repo.items[0].Active)
}

func TestSetActive_Inconnue_RenvoieNotFound(t *testing.T) {
	uc := usecase.NewPubliciteUseCase(&memPubliciteRepo{})

	_, err := uc.SetActive(context.Background(), "absente", true)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
