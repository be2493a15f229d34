package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/prixmathaiti/prixmat-api/internal/application/dto"
	"github.com/prixmathaiti/prixmat-api/internal/domain"
)

// statusFor mappe une erreur de domaine vers un code HTTP.
// Erreurs de validation et de stock : 400; authentification : 401;
// droits : 403; absence : 404; course perdue sur le stock : 409; sinon 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidOperation),
		errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrSupplierNotFound):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// messagePour renvoie le message utilisateur d'une erreur de domaine,
// ou le message générique fourni pour une erreur interne.
func messagePour(err error, generique string) string {
	if statusFor(err) != fiber.StatusInternalServerError {
		return err.Error()
	}
	return generique
}

// writeErreur sérialise une erreur dans l'enveloppe commune.
// Le détail de l'erreur sous-jacente n'est attaché qu'en dehors de la
// production, uniquement pour les 500.
func writeErreur(c *fiber.Ctx, err error, generique string, exposeDetail bool) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError && exposeDetail {
		return c.Status(status).JSON(dto.FailDetail(generique, err.Error()))
	}
	return c.Status(status).JSON(dto.Fail(messagePour(err, generique)))
}
