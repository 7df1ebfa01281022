// internal/catalog/store_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rasmstore/backend/internal/models"
	"github.com/rasmstore/backend/internal/utils"
)

func validProduct(id string) models.Product {
	return models.Product{
		ID:               id,
		Name:             "جهاز " + id,
		Brand:            "Huion",
		Category:         CategoryPenTablets,
		Price:            1000,
		Description:      "وصف طويل بما يكفي لاجتياز التحقق",
		ShortDescription: "وصف قصير",
		Images: []models.ProductImage{
			{URL: "/img/" + id + ".jpg", Alt: id},
		},
		Specifications: []models.ProductSpec{
			{Label: "أ", Value: "1"},
			{Label: "ب", Value: "2"},
			{Label: "ج", Value: "3"},
		},
		KeyFeatures: []string{"ميزة أولى", "ميزة ثانية"},
		InStock:     true,
	}
}

func TestNewStore_SeedIsValid(t *testing.T) {
	store, err := NewStore(Seed())
	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, 3, store.Len())

	// Every seeded record passes the validator on its own.
	for _, p := range store.All() {
		assert.NoError(t, utils.ValidateStruct(&p), "product %s", p.ID)
	}
}

func TestNewStore_EmptyCatalog(t *testing.T) {
	_, err := NewStore(nil)
	assert.Error(t, err)
}

func TestNewStore_ReportsEveryViolation(t *testing.T) {
	bad := validProduct("bad-record")
	bad.Price = 0
	bad.Description = "قصير"
	bad.Specifications = bad.Specifications[:2]

	_, err := NewStore([]models.Product{bad})
	require.Error(t, err)

	// One pass over the error must name all broken fields.
	assert.Contains(t, err.Error(), "bad-record")
	assert.Contains(t, err.Error(), "Price")
	assert.Contains(t, err.Error(), "Description")
	assert.Contains(t, err.Error(), "Specifications")
}

func TestNewStore_DuplicateID(t *testing.T) {
	_, err := NewStore([]models.Product{validProduct("same"), validProduct("same")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate product id")
}

func TestNewStore_RejectsAnonymousRecord(t *testing.T) {
	bad := validProduct("")
	_, err := NewStore([]models.Product{bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record 0")
}

func TestAll_InsertionOrderAndCopy(t *testing.T) {
	products := []models.Product{validProduct("a"), validProduct("b"), validProduct("c")}
	store, err := NewStore(products)
	require.NoError(t, err)

	all := store.All()
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, "b", all[1].ID)
	assert.Equal(t, "c", all[2].ID)

	// Mutating the returned slice must not touch the canonical list.
	all[0] = validProduct("intruder")
	fresh := store.All()
	assert.Equal(t, "a", fresh[0].ID)
}

func TestByID(t *testing.T) {
	store, err := NewStore(Seed())
	require.NoError(t, err)

	for _, want := range store.All() {
		got, ok := store.ByID(want.ID)
		require.True(t, ok, "product %s", want.ID)
		assert.Equal(t, want, got)
	}

	_, ok := store.ByID("nonexistent")
	assert.False(t, ok)
}
