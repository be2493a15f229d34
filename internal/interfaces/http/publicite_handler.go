package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/prixmathaiti/prixmat-api/internal/application/dto"
	"github.com/prixmathaiti/prixmat-api/internal/application/usecase"
	"github.com/prixmathaiti/prixmat-api/pkg/logger"
)

// PubliciteHandler expose les routes /api/publicites.
type PubliciteHandler struct {
	uc           *usecase.PubliciteUseCase
	log          *logger.Logger
	exposeDetail bool
}

// NewPubliciteHandler construit le handler des publicités.
func NewPubliciteHandler(uc *usecase.PubliciteUseCase, log *logger.Logger, exposeDetail bool) *PubliciteHandler {
	return &PubliciteHandler{uc: uc, log: log, exposeDetail: exposeDetail}
}

// List GET /api/publicites
func (h *PubliciteHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.UserContext())
	if err != nil {
		h.log.Error().Err(err).Msg("listage des publicités")
		return writeErreur(c, err, "Erreur lors de la récupération des publicités", h.exposeDetail)
	}
	count := len(items)
	return c.JSON(dto.Response{Success: true, Data: items, Count: &count})
}

// ListActive GET /api/publicites/active — publicités visibles à l'instant T.
func (h *PubliciteHandler) ListActive(c *fiber.Ctx) error {
	items, err := h.uc.ListActive(c.UserContext())
	if err != nil {
		return writeErreur(c, err, "Erreur lors de la récupération des publicités actives", h.exposeDetail)
	}
	count := len(items)
	return c.JSON(dto.Response{Success: true, Data: items, Count: &count})
}

// GetByID GET /api/publicites/:id
func (h *PubliciteHandler) GetByID(c *fiber.Ctx) error {
	p, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeErreur(c, err, "Erreur lors de la récupération de la publicité", h.exposeDetail)
	}
	return c.JSON(dto.OK(p))
}

// Create POST /api/publicites (rôle admin).
func (h *PubliciteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePubliciteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Corps de requête invalide"))
	}

	p, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeErreur(c, err, "Erreur lors de la création de la publicité", h.exposeDetail)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMessage("Publicité créée avec succès", p))
}

// Update PUT /api/publicites/:id (rôle admin).
func (h *PubliciteHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePubliciteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Corps de requête invalide"))
	}

	p, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeErreur(c, err, "Erreur lors de la mise à jour de la publicité", h.exposeDetail)
	}
	return c.JSON(dto.OKMessage("Publicité mise à jour avec succès", p))
}

// Activate PATCH /api/publicites/:id/activate (rôle admin).
func (h *PubliciteHandler) Activate(c *fiber.Ctx) error {
	return h.setActive(c, true, "Publicité activée avec succès")
}

// Deactivate PATCH /api/publicites/:id/deactivate (rôle admin).
func (h *PubliciteHandler) Deactivate(c *fiber.Ctx) error {
	return h.setActive(c, false, "Publicité désactivée avec succès")
}

func (h *PubliciteHandler) setActive(c *fiber.Ctx, active bool, message string) error {
	p, err := h.uc.SetActive(c.UserContext(), c.Params("id"), active)
	if err != nil {
		return writeErreur(c, err, "Erreur lors du changement d'état de la publicité", h.exposeDetail)
	}
	return c.JSON(dto.OKMessage(message, p))
}

// Delete DELETE /api/publicites/:id (rôle admin).
func (h *PubliciteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeErreur(c, err, "Erreur lors de la suppression de la publicité", h.exposeDetail)
	}
	return c.JSON(dto.OKMessage("Publicité supprimée avec succès", nil))
}
