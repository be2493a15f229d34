package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/prixmathaiti/prixmat-api/internal/application/auth"
	"github.com/prixmathaiti/prixmat-api/internal/application/dto"
	"github.com/prixmathaiti/prixmat-api/internal/application/usecase"
	"github.com/prixmathaiti/prixmat-api/internal/domain/entity"
	"github.com/prixmathaiti/prixmat-api/internal/domain/repository"
	"github.com/prixmathaiti/prixmat-api/internal/infrastructure/metrics"
	"github.com/prixmathaiti/prixmat-api/internal/ratelimit"
	"github.com/prixmathaiti/prixmat-api/pkg/logger"
)

const serviceName = "prixmat-api"

// RouterDeps dépendances pour le routeur.
type RouterDeps struct {
	MaterialUC    *usecase.MaterialUseCase
	FournisseurUC *usecase.FournisseurUseCase
	PubliciteUC   *usecase.PubliciteUseCase
	AuthUC        *auth.AuthUseCase
	Fournisseurs  repository.FournisseurRepository
	Limiter       *ratelimit.Limiter
	Metrics       *metrics.Metrics
	Log           *logger.Logger
	JWTSecret     string
	ExposeDetail  bool
}

// Router enregistre les routes de l'API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(MetricsMiddleware(deps.Metrics))

	// Sondes hors quota et hors /api.
	app.Get("/health", health)
	app.Get("/", index)

	api := app.Group("/api", RateLimitMiddleware(deps.Limiter, deps.Metrics))

	authRequis := AuthMiddleware(deps.JWTSecret)
	admin := RequireRole(entity.RoleAdmin)
	fournisseur := ResolveFournisseur(deps.Fournisseurs)

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log, deps.ExposeDetail)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/verify-token", authRequis, authHandler.VerifyToken)
	authGroup.Post("/reset-password", authHandler.ResetPassword)
	authGroup.Post("/change-password", authRequis, authHandler.ChangePassword)

	// Matériaux (lecture publique, écriture protégée)
	materials := api.Group("/materials")
	materialHandler := NewMaterialHandler(deps.MaterialUC, deps.Log, deps.ExposeDetail)
	materials.Get("/", materialHandler.List)
	materials.Get("/search", materialHandler.Search)
	materials.Get("/stats", materialHandler.Stats)
	materials.Get("/:id", materialHandler.GetByID)
	materials.Post("/", authRequis, fournisseur, materialHandler.Create)
	materials.Put("/:id", authRequis, fournisseur, materialHandler.Update)
	materials.Patch("/:id/stock", authRequis, fournisseur, materialHandler.UpdateStock)
	materials.Delete("/:id", authRequis, admin, materialHandler.Delete)

	// Fournisseurs, exposés sous /suppliers côté API
	// (lecture publique, écriture authentifiée, suppression admin).
	suppliers := api.Group("/suppliers")
	fournisseurHandler := NewFournisseurHandler(deps.FournisseurUC, deps.Log, deps.ExposeDetail)
	suppliers.Get("/", fournisseurHandler.List)
	suppliers.Get("/:id", fournisseurHandler.GetByID)
	suppliers.Get("/:id/materials", fournisseurHandler.Materials)
	suppliers.Post("/", authRequis, fournisseurHandler.Create)
	suppliers.Put("/:id", authRequis, fournisseurHandler.Update)
	suppliers.Delete("/:id", authRequis, admin, fournisseurHandler.Delete)

	// Publicités (lecture publique, gestion admin)
	publicites := api.Group("/publicites")
	publiciteHandler := NewPubliciteHandler(deps.PubliciteUC, deps.Log, deps.ExposeDetail)
	publicites.Get("/", publiciteHandler.List)
	publicites.Get("/active", publiciteHandler.ListActive)
	publicites.Get("/:id", publiciteHandler.GetByID)
	publicites.Post("/", authRequis, admin, publiciteHandler.Create)
	publicites.Put("/:id", authRequis, admin, publiciteHandler.Update)
	publicites.Patch("/:id/activate", authRequis, admin, publiciteHandler.Activate)
	publicites.Patch("/:id/deactivate", authRequis, admin, publiciteHandler.Deactivate)
	publicites.Delete("/:id", authRequis, admin, publiciteHandler.Delete)

	// Route inconnue : enveloppe 404 plutôt que la page par défaut.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Route non trouvée"))
	})
}

func health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   serviceName,
	})
}

func index(c *fiber.Ctx) error {
	return c.JSON(dto.OKMessage("API PrixMat Haïti", fiber.Map{
		"service": serviceName,
		"docs":    "/docs",
		"health":  "/health",
	}))
}
