package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/FactoryPlanner_Go/internal/catalog"
	"github.com/osse101/FactoryPlanner_Go/internal/domain"
)

// Recipe list query parameters
const (
	QueryMachine           = "machine"
	QueryProduces          = "produces"
	QueryConsumes          = "consumes"
	QueryExcludeAlternates = "exclude_alternates"
)

// CatalogReader is the read side of the catalog. *catalog.Catalog satisfies it.
type CatalogReader interface {
	Items() []domain.Item
	Machines() []domain.Machine
	Recipe(id string) (domain.Recipe, bool)
	FindRecipes(filter catalog.RecipeFilter) []domain.Recipe
}

// CatalogHandler serves the static game data
type CatalogHandler struct {
	catalog CatalogReader
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(c CatalogReader) *CatalogHandler {
	return &CatalogHandler{catalog: c}
}

// ListItems returns every item
// @Summary List items
// @Tags catalog
// @Produce json
// @Success 200 {array} domain.Item
// @Router /api/v1/catalog/items [get]
func (h *CatalogHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.Items())
}

// ListMachines returns every machine
// @Summary List machines
// @Tags catalog
// @Produce json
// @Success 200 {array} domain.Machine
// @Router /api/v1/catalog/machines [get]
func (h *CatalogHandler) ListMachines(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.Machines())
}

// ListRecipes returns the recipes matching the optional filters
// @Summary List recipes
// @Description Filters combine; omitted filters match everything
// @Tags catalog
// @Produce json
// @Param machine query string false "Machine id"
// @Param produces query string false "Item id the recipe outputs"
// @Param consumes query string false "Item id the recipe inputs"
// @Param exclude_alternates query bool false "Hide alternate recipes"
// @Success 200 {array} domain.Recipe
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/catalog/recipes [get]
func (h *CatalogHandler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	excludeAlternates, ok := boolQueryParam(r, w, QueryExcludeAlternates)
	if !ok {
		return
	}

	q := r.URL.Query()
	recipes := h.catalog.FindRecipes(catalog.RecipeFilter{
		MachineID:         q.Get(QueryMachine),
		Produces:          q.Get(QueryProduces),
		Consumes:          q.Get(QueryConsumes),
		ExcludeAlternates: excludeAlternates,
	})
	if recipes == nil {
		recipes = []domain.Recipe{}
	}

	respondJSON(w, http.StatusOK, recipes)
}

// GetRecipe returns a single recipe
// @Summary Get recipe
// @Tags catalog
// @Produce json
// @Param id path string true "Recipe id"
// @Success 200 {object} domain.Recipe
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/catalog/recipes/{id} [get]
func (h *CatalogHandler) GetRecipe(w http.ResponseWriter, r *http.Request) {
	recipe, ok := h.catalog.Recipe(chi.URLParam(r, ParamRecipeID))
	if !ok {
		respondError(w, http.StatusNotFound, ErrMsgRecipeNotFoundError)
		return
	}
	respondJSON(w, http.StatusOK, recipe)
}
