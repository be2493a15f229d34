package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/prixmathaiti/prixmat-api/internal/domain/entity"
)

// PriceRange bornes et moyenne des prix du catalogue.
type PriceRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
	Avg decimal.Decimal `json:"avg"`
}

// Stats résumé agrégé de la collection de matériaux.
type Stats struct {
	Total         int             `json:"total"`
	ByType        map[string]int  `json:"byType"`
	ByFournisseur map[string]int  `json:"byFournisseur"`
	PriceRange    PriceRange      `json:"priceRange"`
	TotalValue    decimal.Decimal `json:"totalValue"`
}

// ComputeStats agrège la collection en une seule passe.
// Les matériaux sans prix (prix nul) comptent dans Total mais sont exclus
// de min/max/avg; TotalValue somme prix × stock quand les deux sont définis.
// Collection vide : tous les champs numériques valent zéro, jamais Inf/NaN.
func ComputeStats(materials []entity.Material) Stats {
	stats := Stats{
		ByType:        map[string]int{},
		ByFournisseur: map[string]int{},
		TotalValue:    decimal.Zero,
	}

	var (
		totalPrice decimal.Decimal
		priced     int
	)

	for _, m := range materials {
		stats.Total++

		if m.Type != "" {
			stats.ByType[m.Type]++
		}
		if m.FournisseurID != "" {
			stats.ByFournisseur[m.FournisseurID]++
		}

		if !m.Price.IsPositive() {
			continue
		}
		if priced == 0 {
			stats.PriceRange.Min = m.Price
			stats.PriceRange.Max = m.Price
		} else {
			if m.Price.LessThan(stats.PriceRange.Min) {
				stats.PriceRange.Min = m.Price
			}
			if m.Price.GreaterThan(stats.PriceRange.Max) {
				stats.PriceRange.Max = m.Price
			}
		}
		totalPrice = totalPrice.Add(m.Price)
		priced++

		if m.Stock > 0 {
			stats.TotalValue = stats.TotalValue.Add(m.Price.Mul(decimal.NewFromInt(int64(m.Stock))))
		}
	}

	if priced > 0 {
		stats.PriceRange.Avg = totalPrice.DivRound(decimal.NewFromInt(int64(priced)), 2)
	}

	return stats
}
