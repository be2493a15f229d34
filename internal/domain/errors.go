package domain

import "errors"

// Erreurs de domaine (sans dépendances externes).
var (
	ErrNotFound           = errors.New("ressource non trouvée")
	ErrUserNotFound       = errors.New("utilisateur non trouvé")
	ErrEmailAlreadyExists = errors.New("cet email est déjà enregistré")
	ErrInvalidInput       = errors.New("entrée invalide")
	ErrUnauthorized       = errors.New("non autorisé")
	ErrForbidden          = errors.New("accès refusé")
	ErrConflict           = errors.New("conflit avec l'état actuel")
	ErrSupplierNotFound   = errors.New("le fournisseur spécifié n'existe pas")

	// Erreurs des opérations de stock (exposées en 400).
	ErrInvalidQuantity   = errors.New("quantité invalide")
	ErrInvalidOperation  = errors.New("opération invalide")
	ErrInsufficientStock = errors.New("stock insuffisant")
)
