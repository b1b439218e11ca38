package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FactoryPlanner_Go/internal/catalog"
	"github.com/osse101/FactoryPlanner_Go/internal/domain"
	"github.com/osse101/FactoryPlanner_Go/internal/linestore"
	"github.com/osse101/FactoryPlanner_Go/internal/production"
	"github.com/osse101/FactoryPlanner_Go/internal/productionline"
)

func ptr[T any](v T) *T {
	return &v
}

// newTestRouter mounts the API handlers the same way the server does
func newTestRouter(cat CatalogReader, svc productionline.Service) http.Handler {
	r := chi.NewRouter()
	catalogHandler := NewCatalogHandler(cat)
	lineHandler := NewLineHandler(svc)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/catalog/items", catalogHandler.ListItems)
		r.Get("/catalog/machines", catalogHandler.ListMachines)
		r.Get("/catalog/recipes", catalogHandler.ListRecipes)
		r.Get("/catalog/recipes/{id}", catalogHandler.GetRecipe)

		r.Get("/lines", lineHandler.List)
		r.Post("/lines", lineHandler.Create)
		r.Get("/lines/{slug}", lineHandler.Get)
		r.Patch("/lines/{slug}", lineHandler.Rename)
		r.Delete("/lines/{slug}", lineHandler.Delete)
		r.Post("/lines/{slug}/recipes", lineHandler.AddRecipe)
		r.Patch("/lines/{slug}/recipes/{index}", lineHandler.UpdateRecipe)
		r.Delete("/lines/{slug}/recipes/{index}", lineHandler.RemoveRecipe)
		r.Post("/lines/{slug}/recipes/{index}/move", lineHandler.MoveRecipe)
		r.Get("/lines/{slug}/summary", lineHandler.Summary)

		r.Post("/summary", HandleSummarize(svc))
		r.Get("/export", HandleExport(svc))
		r.Put("/import", HandleImport(svc))
	})
	return r
}

// newFileBackedRouter wires the real service to a temp file store
func newFileBackedRouter(t *testing.T) http.Handler {
	t.Helper()
	cat, err := catalog.LoadDefault()
	require.NoError(t, err)
	store := linestore.New(filepath.Join(t.TempDir(), "production_lines.json"))
	svc := productionline.NewService(store, cat, production.NewEngine(cat), productionline.DefaultCacheConfig())
	return newTestRouter(cat, svc)
}

func doRequest(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

// MockService mocks productionline.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) line(args mock.Arguments) (*domain.ProductionLine, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductionLine), args.Error(1)
}

func (m *MockService) CreateLine(ctx context.Context, name string) (*domain.ProductionLine, error) {
	return m.line(m.Called(ctx, name))
}

func (m *MockService) ListLines(ctx context.Context) ([]domain.LineInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LineInfo), args.Error(1)
}

func (m *MockService) GetLine(ctx context.Context, slug string) (*domain.ProductionLine, error) {
	return m.line(m.Called(ctx, slug))
}

func (m *MockService) RenameLine(ctx context.Context, slug, name string) (*domain.ProductionLine, error) {
	return m.line(m.Called(ctx, slug, name))
}

func (m *MockService) DeleteLine(ctx context.Context, slug string) error {
	return m.Called(ctx, slug).Error(0)
}

func (m *MockService) AddRecipe(ctx context.Context, slug, recipeID string) (*domain.ProductionLine, error) {
	return m.line(m.Called(ctx, slug, recipeID))
}

func (m *MockService) UpdateRecipe(ctx context.Context, slug string, index int, clockSpeed *float64, machineCount *int) (*domain.ProductionLine, error) {
	return m.line(m.Called(ctx, slug, index, clockSpeed, machineCount))
}

func (m *MockService) RemoveRecipe(ctx context.Context, slug string, index int) (*domain.ProductionLine, error) {
	return m.line(m.Called(ctx, slug, index))
}

func (m *MockService) MoveRecipe(ctx context.Context, slug string, from, to int) (*domain.ProductionLine, error) {
	return m.line(m.Called(ctx, slug, from, to))
}

func (m *MockService) Summarize(ctx context.Context, slug string) (*production.LineSummary, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*production.LineSummary), args.Error(1)
}

func (m *MockService) SummarizeInstances(ctx context.Context, specs []productionline.InstanceSpec) (*production.LineSummary, error) {
	args := m.Called(ctx, specs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*production.LineSummary), args.Error(1)
}

func (m *MockService) ExportLines(ctx context.Context) ([]domain.ProductionLine, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProductionLine), args.Error(1)
}

func (m *MockService) ImportLines(ctx context.Context, lines []domain.ProductionLine) error {
	return m.Called(ctx, lines).Error(0)
}
