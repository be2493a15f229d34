package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prixmathaiti/prixmat-api/internal/application/auth"
	"github.com/prixmathaiti/prixmat-api/internal/application/usecase"
	"github.com/prixmathaiti/prixmat-api/internal/domain/entity"
	apphttp "github.com/prixmathaiti/prixmat-api/internal/interfaces/http"
	"github.com/prixmathaiti/prixmat-api/internal/ratelimit"
	"github.com/prixmathaiti/prixmat-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes complémentaires pour assembler le routeur complet
// ──────────────────────────────────────────────────────────────────────────────

type fakePubliciteRepo struct {
	items []entity.Publicite
}

func (r *fakePubliciteRepo) Create(_ context.Context, p *entity.Publicite) error {
	r.items = append(r.items, *p)
	return nil
}

func (r *fakePubliciteRepo) GetByID(_ context.Context, id string) (*entity.Publicite, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			p := r.items[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *fakePubliciteRepo) ListAll(context.Context) ([]entity.Publicite, error) {
	return append([]entity.Publicite(nil), r.items...), nil
}

func (r *fakePubliciteRepo) Update(_ context.Context, p *entity.Publicite) error {
	for i := range r.items {
		if r.items[i].ID == p.ID {
			r.items[i] = *p
		}
	}
	return nil
}

func (r *fakePubliciteRepo) Delete(context.Context, string) error { return nil }

type fakeUserRepo struct {
	parEmail map[string]*entity.User
}

func (r *fakeUserRepo) Create(context.Context, *entity.User) error { return nil }
func (r *fakeUserRepo) GetByID(context.Context, string) (*entity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.parEmail[email], nil
}
func (r *fakeUserRepo) Update(context.Context, *entity.User) error { return nil }

// buildFullRouter assemble l'application complète, routes et middlewares
// compris, sur des dépôts en mémoire.
func buildFullRouter(t *testing.T) *fiber.App {
	t.Helper()

	matRepo := &fakeMaterialRepo{items: materielDeTest()}
	fRepo := &fakeFournisseurRepo{parEmail: map[string]*entity.Fournisseur{}}
	pubRepo := &fakePubliciteRepo{}
	userRepo := &fakeUserRepo{parEmail: map[string]*entity.User{}}

	limiter := ratelimit.New(ratelimit.Config{MaxRequests: 1000, Window: time.Minute})
	t.Cleanup(limiter.Close)

	log := logger.New(logger.Config{Level: "disabled"})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		MaterialUC:    usecase.NewMaterialUseCase(matRepo, fRepo),
		FournisseurUC: usecase.NewFournisseurUseCase(fRepo, matRepo),
		PubliciteUC:   usecase.NewPubliciteUseCase(pubRepo),
		AuthUC: auth.NewAuthUseCase(userRepo, auth.JWTConfig{
			Secret:     testJWTSecret,
			ExpMinutes: testExpMin,
			Issuer:     testIssuer,
		}),
		Fournisseurs: fRepo,
		Limiter:      limiter,
		Log:          log,
		JWTSecret:    testJWTSecret,
		ExposeDetail: true,
	})
	return app
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests du routeur assemblé
// ──────────────────────────────────────────────────────────────────────────────

// La liste des fournisseurs est exposée sous /api/suppliers.
func TestRouter_ListeFournisseurs_SousSuppliers(t *testing.T) {
	app := buildFullRouter(t)

	status, body := getJSON(t, app, "/api/suppliers")

	assert.Equal(t, http.StatusOK, status)
	assert.True(t, body.Success)
}

// Le détail et les matériaux d'un fournisseur vivent sous le même préfixe.
func TestRouter_SousRoutesFournisseur_SousSuppliers(t *testing.T) {
	app := buildFullRouter(t)

	status, _ := getJSON(t, app, "/api/suppliers/absent/materials")
	assert.Equal(t, http.StatusNotFound, status, "fournisseur inconnu → 404, pas route inconnue")

	status, body := getJSON(t, app, "/api/fournisseurs")
	assert.Equal(t, http.StatusNotFound, status, "l'ancien chemin ne doit plus être routé")
	assert.False(t, body.Success)
}

// verify-token s'appelle en POST avec le Bearer token.
func TestRouter_VerifyToken_EnPost(t *testing.T) {
	app := buildFullRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/verify-token", nil)
	req.Header.Set("Authorization", tokenPourRole(t, entity.RoleClient))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_VerifyToken_SansToken_Renvoie401(t *testing.T) {
	app := buildFullRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/verify-token", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Toute route hors catalogue retombe sur l'enveloppe d'erreur 404.
func TestRouter_RouteInconnue_Enveloppe404(t *testing.T) {
	app := buildFullRouter(t)

	status, body := getJSON(t, app, "/api/nimporte-quoi")

	assert.Equal(t, http.StatusNotFound, status)
	assert.False(t, body.Success)
	assert.Equal(t, "Route non trouvée", body.Error)
}
