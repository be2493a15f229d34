package catalog

// DefaultLimit taille de page appliquée quand la requête n'en précise pas.
// Valeur unique pour tous les listages de l'API.
const DefaultLimit = 50

// Pagination métadonnées de page renvoyées avec chaque listage.
type Pagination struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// Paginate découpe items[(page-1)*limit : page*limit] et calcule les
// métadonnées. Une page au-delà de la fin renvoie une tranche vide,
// jamais une erreur. page < 1 et limit < 1 retombent sur les défauts.
func Paginate[T any](items []T, page, limit int) ([]T, Pagination) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	total := len(items)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	end := page * limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return items[start:end], Pagination{
		Page:        page,
		Limit:       limit,
		TotalPages:  totalPages,
		HasNextPage: page*limit < total,
		HasPrevPage: start > 0,
	}
}
