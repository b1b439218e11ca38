package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FactoryPlanner_Go/internal/domain"
)

func TestCatalogHandlers(t *testing.T) {
	router := newFileBackedRouter(t)

	t.Run("items", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/v1/catalog/items", nil)
		require.Equal(t, http.StatusOK, w.Code)

		items := decodeBody[[]domain.Item](t, w)
		require.NotEmpty(t, items)
		for i := 1; i < len(items); i++ {
			assert.Less(t, items[i-1].ID, items[i].ID, "items are sorted by id")
		}
	})

	t.Run("machines", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/v1/catalog/machines", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"id":"machine_smelter"`)
	})

	t.Run("recipes filtered by output", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/v1/catalog/recipes?produces=item_iron_plate&exclude_alternates=true", nil)
		require.Equal(t, http.StatusOK, w.Code)

		recipes := decodeBody[[]domain.Recipe](t, w)
		require.NotEmpty(t, recipes)
		for _, r := range recipes {
			assert.False(t, r.Alternate)
		}
		assert.Equal(t, "recipe_iron_plate", recipes[0].ID)
	})

	t.Run("no matches is an empty list", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/v1/catalog/recipes?machine=machine_unknown", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]\n", w.Body.String())
	})

	t.Run("bad bool", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/v1/catalog/recipes?exclude_alternates=maybe", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("single recipe", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/v1/catalog/recipes/recipe_iron_ingot", nil)
		require.Equal(t, http.StatusOK, w.Code)

		recipe := decodeBody[domain.Recipe](t, w)
		assert.Equal(t, "Iron Ingot", recipe.Name)
		assert.Equal(t, "machine_smelter", recipe.Machine.ID)
	})

	t.Run("unknown recipe", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/v1/catalog/recipes/recipe_nope", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
