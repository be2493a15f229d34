package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/prixmathaiti/prixmat-api/internal/application/auth"
	"github.com/prixmathaiti/prixmat-api/internal/application/dto"
	"github.com/prixmathaiti/prixmat-api/pkg/logger"
)

// AuthHandler expose les routes /api/auth.
type AuthHandler struct {
	uc           *auth.AuthUseCase
	log          *logger.Logger
	exposeDetail bool
}

// NewAuthHandler construit le handler d'authentification.
func NewAuthHandler(uc *auth.AuthUseCase, log *logger.Logger, exposeDetail bool) *AuthHandler {
	return &AuthHandler{uc: uc, log: log, exposeDetail: exposeDetail}
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Corps de requête invalide"))
	}

	u, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return writeErreur(c, err, "Erreur lors de l'inscription", h.exposeDetail)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMessage("Utilisateur créé avec succès", u))
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Corps de requête invalide"))
	}

	res, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return writeErreur(c, err, "Erreur lors de la connexion", h.exposeDetail)
	}
	return c.JSON(dto.OKMessage("Connexion réussie", res))
}

// VerifyToken GET /api/auth/verify-token (authentifié).
// Le middleware a déjà validé le jeton; on renvoie les claims.
func (h *AuthHandler) VerifyToken(c *fiber.Ctx) error {
	return c.JSON(dto.OK(dto.VerifyTokenResponse{
		UserID: GetUserID(c),
		Email:  GetEmail(c),
		Role:   GetRole(c),
	}))
}

// ResetPassword POST /api/auth/reset-password
// Réponse identique que l'email existe ou non. Le token n'est renvoyé dans
// le corps qu'en dehors de la production.
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var in dto.ResetPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Corps de requête invalide"))
	}

	token, err := h.uc.ResetPassword(c.UserContext(), in.Email)
	if err != nil {
		return writeErreur(c, err, "Erreur lors de la demande de réinitialisation", h.exposeDetail)
	}

	res := dto.ResetPasswordResponse{Email: in.Email}
	if h.exposeDetail {
		res.ResetToken = token
	}
	return c.JSON(dto.OKMessage("Si le compte existe, un lien de réinitialisation a été envoyé", res))
}

// ChangePassword POST /api/auth/change-password (authentifié).
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Corps de requête invalide"))
	}

	if err := h.uc.ChangePassword(c.UserContext(), GetUserID(c), in); err != nil {
		return writeErreur(c, err, "Erreur lors du changement de mot de passe", h.exposeDetail)
	}
	return c.JSON(dto.OKMessage("Mot de passe modifié avec succès", nil))
}
