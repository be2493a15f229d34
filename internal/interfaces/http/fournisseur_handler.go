package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/prixmathaiti/prixmat-api/internal/application/dto"
	"github.com/prixmathaiti/prixmat-api/internal/application/usecase"
	"github.com/prixmathaiti/prixmat-api/internal/domain/catalog"
	"github.com/prixmathaiti/prixmat-api/pkg/logger"
)

// FournisseurHandler expose les routes /api/suppliers.
type FournisseurHandler struct {
	uc           *usecase.FournisseurUseCase
	log          *logger.Logger
	exposeDetail bool
}

// NewFournisseurHandler construit le handler des fournisseurs.
func NewFournisseurHandler(uc *usecase.FournisseurUseCase, log *logger.Logger, exposeDetail bool) *FournisseurHandler {
	return &FournisseurHandler{uc: uc, log: log, exposeDetail: exposeDetail}
}

// List GET /api/suppliers?page=&limit=
func (h *FournisseurHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", catalog.DefaultLimit)

	items, total, meta, err := h.uc.List(c.UserContext(), page, limit)
	if err != nil {
		h.log.Error().Err(err).Msg("listage des fournisseurs")
		return writeErreur(c, err, "Erreur lors de la récupération des fournisseurs", h.exposeDetail)
	}
	return c.JSON(dto.OKList(items, total, &meta))
}

// GetByID GET /api/suppliers/:id
func (h *FournisseurHandler) GetByID(c *fiber.Ctx) error {
	f, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeErreur(c, err, "Erreur lors de la récupération du fournisseur", h.exposeDetail)
	}
	return c.JSON(dto.OK(f))
}

// Materials GET /api/suppliers/:id/materials
func (h *FournisseurHandler) Materials(c *fiber.Ctx) error {
	items, err := h.uc.Materials(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeErreur(c, err, "Erreur lors de la récupération des matériaux du fournisseur", h.exposeDetail)
	}
	count := len(items)
	return c.JSON(dto.Response{Success: true, Data: items, Count: &count})
}

// Create POST /api/suppliers (authentifié).
func (h *FournisseurHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFournisseurRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Corps de requête invalide"))
	}

	f, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeErreur(c, err, "Erreur lors de la création du fournisseur", h.exposeDetail)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMessage("Fournisseur créé avec succès", f))
}

// Update PUT /api/suppliers/:id (authentifié).
func (h *FournisseurHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateFournisseurRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Corps de requête invalide"))
	}

	f, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeErreur(c, err, "Erreur lors de la mise à jour du fournisseur", h.exposeDetail)
	}
	return c.JSON(dto.OKMessage("Fournisseur mis à jour avec succès", f))
}

// Delete DELETE /api/suppliers/:id (rôle admin).
func (h *FournisseurHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeErreur(c, err, "Erreur lors de la suppression du fournisseur", h.exposeDetail)
	}
	return c.JSON(dto.OKMessage("Fournisseur supprimé avec succès", nil))
}
