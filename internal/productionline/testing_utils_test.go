package productionline

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FactoryPlanner_Go/internal/catalog"
	"github.com/osse101/FactoryPlanner_Go/internal/domain"
	"github.com/osse101/FactoryPlanner_Go/internal/linestore"
	"github.com/osse101/FactoryPlanner_Go/internal/production"
)

// Recipe ids from the embedded catalog
const (
	recipeIronOre   = "recipe_iron_ore_mining"
	recipeIronIngot = "recipe_iron_ingot"
	recipeIronPlate = "recipe_iron_plate"
)

func defaultCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.LoadDefault()
	require.NoError(t, err)
	return cat
}

// newFileService wires the service to a file store in a temp dir
func newFileService(t *testing.T) (Service, *linestore.Store) {
	t.Helper()
	cat := defaultCatalog(t)
	store := linestore.New(filepath.Join(t.TempDir(), "production_lines.json"))
	return NewService(store, cat, production.NewEngine(cat), DefaultCacheConfig()), store
}

func ptr[T any](v T) *T {
	return &v
}

// MockRepository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]domain.LineInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LineInfo), args.Error(1)
}

// GetBySlug hands out a copy so mutations never reach the configured value
func (m *MockRepository) GetBySlug(ctx context.Context, slug string) (*domain.ProductionLine, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	line := args.Get(0).(*domain.ProductionLine).Clone()
	return &line, args.Error(1)
}

func (m *MockRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, line *domain.ProductionLine) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, line *domain.ProductionLine) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, slug string) error {
	args := m.Called(ctx, slug)
	return args.Error(0)
}

func (m *MockRepository) Load(ctx context.Context) ([]domain.ProductionLine, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProductionLine), args.Error(1)
}

func (m *MockRepository) Save(ctx context.Context, lines []domain.ProductionLine) error {
	args := m.Called(ctx, lines)
	return args.Error(0)
}

func (m *MockRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
