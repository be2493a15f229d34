package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/prixmathaiti/prixmat-api/internal/application/dto"
	"github.com/prixmathaiti/prixmat-api/internal/domain"
	"github.com/prixmathaiti/prixmat-api/internal/domain/entity"
	"github.com/prixmathaiti/prixmat-api/internal/domain/repository"
	"github.com/prixmathaiti/prixmat-api/pkg/jwt"
)

const (
	localUserID        = "user_id"
	localEmail         = "email"
	localRole          = "role"
	localFournisseurID = "fournisseur_id"
)

// AuthMiddleware vérifie le jeton Bearer et dépose les claims dans le contexte.
func AuthMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Jeton d'authentification manquant"))
		}

		token := strings.TrimPrefix(header, "Bearer ")
		if token == header || token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Format d'autorisation invalide, attendu: Bearer <token>"))
		}

		userID, email, role, err := jwt.Parse(secret, token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Jeton invalide ou expiré"))
		}

		c.Locals(localUserID, userID)
		c.Locals(localEmail, email)
		c.Locals(localRole, role)
		return c.Next()
	}
}

// RequireRole n'autorise que les rôles listés. À placer après AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.Fail("Accès réservé, droits insuffisants"))
	}
}

// ResolveFournisseur retrouve la fiche fournisseur liée à l'email du jeton
// et dépose son identifiant dans le contexte. Les admins passent sans fiche.
func ResolveFournisseur(fournisseurs repository.FournisseurRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetRole(c) == entity.RoleAdmin {
			return c.Next()
		}

		f, err := fournisseurs.GetByEmail(c.UserContext(), GetEmail(c))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Erreur lors de la vérification du fournisseur"))
		}
		if f == nil {
			return c.Status(fiber.StatusForbidden).JSON(dto.Fail(domain.ErrSupplierNotFound.Error()))
		}

		c.Locals(localFournisseurID, f.ID)
		return c.Next()
	}
}

// GetUserID identifiant de l'utilisateur authentifié, "" sinon.
func GetUserID(c *fiber.Ctx) string {
	if v, ok := c.Locals(localUserID).(string); ok {
		return v
	}
	return ""
}

// GetEmail email de l'utilisateur authentifié, "" sinon.
func GetEmail(c *fiber.Ctx) string {
	if v, ok := c.Locals(localEmail).(string); ok {
		return v
	}
	return ""
}

// GetRole rôle porté par le jeton, "" sinon.
func GetRole(c *fiber.Ctx) string {
	if v, ok := c.Locals(localRole).(string); ok {
		return v
	}
	return ""
}

// GetFournisseurID identifiant fournisseur résolu par ResolveFournisseur, "" sinon.
func GetFournisseurID(c *fiber.Ctx) string {
	if v, ok := c.Locals(localFournisseurID).(string); ok {
		return v
	}
	return ""
}
