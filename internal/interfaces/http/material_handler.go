package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/prixmathaiti/prixmat-api/internal/application/dto"
	"github.com/prixmathaiti/prixmat-api/internal/application/usecase"
	"github.com/prixmathaiti/prixmat-api/internal/domain/catalog"
	"github.com/prixmathaiti/prixmat-api/pkg/logger"
)

// MaterialHandler expose les routes /api/materials.
type MaterialHandler struct {
	uc           *usecase.MaterialUseCase
	log          *logger.Logger
	exposeDetail bool
}

// NewMaterialHandler construit le handler des matériaux.
func NewMaterialHandler(uc *usecase.MaterialUseCase, log *logger.Logger, exposeDetail bool) *MaterialHandler {
	return &MaterialHandler{uc: uc, log: log, exposeDetail: exposeDetail}
}

// List GET /api/materials?page=&limit=
func (h *MaterialHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", catalog.DefaultLimit)

	items, total, meta, err := h.uc.List(c.UserContext(), page, limit)
	if err != nil {
		h.log.Error().Err(err).Msg("listage des matériaux")
		return writeErreur(c, err, "Erreur lors de la récupération des matériaux", h.exposeDetail)
	}
	return c.JSON(dto.OKList(items, total, &meta))
}

// Search GET /api/materials/search?q=&type=&supplier=&minPrice=&maxPrice=&department=
func (h *MaterialHandler) Search(c *fiber.Ctx) error {
	var q dto.SearchMaterialsQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Paramètres de recherche invalides"))
	}

	filtres := catalog.Filters{
		Texte:         q.Q,
		Type:          q.Type,
		FournisseurID: q.Supplier,
		Departement:   q.Department,
	}
	if q.MinPrice != "" {
		min, err := decimal.NewFromString(q.MinPrice)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Le prix minimum doit être un nombre"))
		}
		filtres.PrixMin = &min
	}
	if q.MaxPrice != "" {
		max, err := decimal.NewFromString(q.MaxPrice)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Le prix maximum doit être un nombre"))
		}
		filtres.PrixMax = &max
	}

	items, err := h.uc.Search(c.UserContext(), filtres)
	if err != nil {
		h.log.Error().Err(err).Msg("recherche de matériaux")
		return writeErreur(c, err, "Erreur lors de la recherche", h.exposeDetail)
	}
	count := len(items)
	return c.JSON(dto.Response{Success: true, Data: items, Count: &count})
}

// Stats GET /api/materials/stats
func (h *MaterialHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.uc.Stats(c.UserContext())
	if err != nil {
		h.log.Error().Err(err).Msg("statistiques des matériaux")
		return writeErreur(c, err, "Erreur lors du calcul des statistiques", h.exposeDetail)
	}
	return c.JSON(dto.OK(stats))
}

// GetByID GET /api/materials/:id
func (h *MaterialHandler) GetByID(c *fiber.Ctx) error {
	m, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeErreur(c, err, "Erreur lors de la récupération du matériau", h.exposeDetail)
	}
	return c.JSON(dto.OK(m))
}

// Create POST /api/materials (rôle fournisseur).
// Un fournisseur ne crée que pour sa propre fiche; un admin choisit la sienne.
func (h *MaterialHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Corps de requête invalide"))
	}

	if id := GetFournisseurID(c); id != "" {
		in.FournisseurID = id
	}

	m, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeErreur(c, err, "Erreur lors de la création du matériau", h.exposeDetail)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMessage("Matériau créé avec succès", m))
}

// Update PUT /api/materials/:id (authentifié; admin ou propriétaire).
func (h *MaterialHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Corps de requête invalide"))
	}

	acteur := usecase.Acteur{Role: GetRole(c), FournisseurID: GetFournisseurID(c)}
	m, err := h.uc.Update(c.UserContext(), c.Params("id"), acteur, in)
	if err != nil {
		return writeErreur(c, err, "Erreur lors de la mise à jour du matériau", h.exposeDetail)
	}
	return c.JSON(dto.OKMessage("Matériau mis à jour avec succès", m))
}

// UpdateStock PATCH /api/materials/:id/stock (rôle fournisseur).
func (h *MaterialHandler) UpdateStock(c *fiber.Ctx) error {
	var in dto.StockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Corps de requête invalide"))
	}

	res, err := h.uc.UpdateStock(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeErreur(c, err, "Erreur lors de la mise à jour du stock", h.exposeDetail)
	}
	return c.JSON(dto.OKMessage("Stock mis à jour avec succès", res))
}

// Delete DELETE /api/materials/:id (rôle admin).
func (h *MaterialHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeErreur(c, err, "Erreur lors de la suppression du matériau", h.exposeDetail)
	}
	return c.JSON(dto.OKMessage("Matériau supprimé avec succès", nil))
}
