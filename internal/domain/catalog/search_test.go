package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prixmathaiti/prixmat-api/internal/domain/catalog"
	"github.com/prixmathaiti/prixmat-api/internal/domain/entity"
)

func materiel(id, name, typ, fournisseurID string, prix float64, stock int) entity.Material {
	return entity.Material{
		ID:            id,
		Name:          name,
		Type:          typ,
		FournisseurID: fournisseurID,
		Price:         decimal.NewFromFloat(prix),
		Stock:         stock,
	}
}

func jeuDEssai() ([]entity.Material, []entity.Fournisseur) {
	materials := []entity.Material{
		materiel("M1", "Ciment Portland", "ciment", "S1", 450, 120),
		materiel("M2", "Fer tor 3/8", "fer", "S2", 310, 80),
		materiel("M3", "Sable de rivière", "granulat", "S1", 95, 0),
		materiel("M4", "Ciment blanc", "ciment", "S2", 780, 15),
	}
	fournisseurs := []entity.Fournisseur{
		{ID: "S1", Name: "Matériaux du Nord", Departement: "Nord"},
		{ID: "S2", Name: "Dépôt Sud", Departement: "Sud"},
	}
	return materials, fournisseurs
}

// Sans filtre actif, la collection est renvoyée inchangée et dans le même ordre.
func TestSearch_SansFiltre_RenvoieToutDansLOrdre(t *testing.T) {
	materials, fournisseurs := jeuDEssai()

	result := catalog.Search(materials, fournisseurs, catalog.Filters{})

	require.Len(t, result, 4)
	for i := range materials {
		assert.Equal(t, materials[i].ID, result[i].ID, "l'ordre source doit être conservé")
	}
}

// La sentinelle "Tous" équivaut à un filtre absent.
func TestSearch_SentinelleTous_EquivautAAbsent(t *testing.T) {
	materials, fournisseurs := jeuDEssai()

	result := catalog.Search(materials, fournisseurs, catalog.Filters{
		Type:          catalog.SentinelTous,
		FournisseurID: catalog.SentinelTous,
		Departement:   catalog.SentinelTous,
	})

	assert.Len(t, result, 4)
}

// Le filtre texte matche Name OU Description, sans tenir compte de la casse.
func TestSearch_Texte_NomOuDescription(t *testing.T) {
	materials, fournisseurs := jeuDEssai()
	materials[1].Description = "Barre d'armature en acier pour béton armé"

	parNom := catalog.Search(materials, fournisseurs, catalog.Filters{Texte: "CIMENT"})
	require.Len(t, parNom, 2)
	assert.Equal(t, "M1", parNom[0].ID)
	assert.Equal(t, "M4", parNom[1].ID)

	parDescription := catalog.Search(materials, fournisseurs, catalog.Filters{Texte: "acier"})
	require.Len(t, parDescription, 1)
	assert.Equal(t, "M2", parDescription[0].ID)
}

// Les filtres sont conjonctifs : un matériau n'est retenu que s'il
// satisfait chaque filtre actif indépendamment.
func TestSearch_FiltresConjonctifs(t *testing.T) {
	materials, fournisseurs := jeuDEssai()

	min := decimal.NewFromInt(400)
	result := catalog.Search(materials, fournisseurs, catalog.Filters{
		Type:    "ciment",
		PrixMin: &min,
	})

	require.Len(t, result, 2)
	for _, m := range result {
		assert.Equal(t, "ciment", m.Type)
		assert.True(t, m.Price.GreaterThanOrEqual(min))
	}
}

// Bornes de prix inclusives.
func TestSearch_BornesPrixInclusives(t *testing.T) {
	materials, fournisseurs := jeuDEssai()

	min := decimal.NewFromInt(310)
	max := decimal.NewFromInt(450)
	result := catalog.Search(materials, fournisseurs, catalog.Filters{PrixMin: &min, PrixMax: &max})

	require.Len(t, result, 2)
	assert.Equal(t, "M1", result[0].ID)
	assert.Equal(t, "M2", result[1].ID)
}

// Filtre département : résolu via l'ensemble des fournisseurs du département.
func TestSearch_ParDepartement(t *testing.T) {
	materials, fournisseurs := jeuDEssai()

	result := catalog.Search(materials, fournisseurs, catalog.Filters{Departement: "Nord"})

	require.Len(t, result, 2)
	for _, m := range result {
		assert.Equal(t, "S1", m.FournisseurID)
	}
}

// Département inconnu : aucun fournisseur, donc aucun matériau.
func TestSearch_DepartementInconnu_RenvoieVide(t *testing.T) {
	materials, fournisseurs := jeuDEssai()

	result := catalog.Search(materials, fournisseurs, catalog.Filters{Departement: "Grand'Anse"})

	assert.Empty(t, result)
}

func TestSearch_ParFournisseur(t *testing.T) {
	materials, fournisseurs := jeuDEssai()

	result := catalog.Search(materials, fournisseurs, catalog.Filters{FournisseurID: "S2"})

	require.Len(t, result, 2)
	assert.Equal(t, "M2", result[0].ID)
	assert.Equal(t, "M4", result[1].ID)
}

func TestSearch_CollectionVide(t *testing.T) {
	result := catalog.Search(nil, nil, catalog.Filters{Texte: "ciment"})
	assert.Empty(t, result)
}
