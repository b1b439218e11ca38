package repository

import (
	"context"

	"github.com/osse101/FactoryPlanner_Go/internal/domain"
)

// ProductionLine defines the interface for production line persistence.
// Lines keep their insertion order. Implementations return
// domain.ErrLineNotFound for unknown slugs and domain.ErrDuplicateSlug
// when creating a line whose slug is taken.
type ProductionLine interface {
	// Listing and single-line access
	List(ctx context.Context) ([]domain.LineInfo, error)
	GetBySlug(ctx context.Context, slug string) (*domain.ProductionLine, error)
	SlugExists(ctx context.Context, slug string) (bool, error)

	// Mutations
	Create(ctx context.Context, line *domain.ProductionLine) error
	Update(ctx context.Context, line *domain.ProductionLine) error
	Delete(ctx context.Context, slug string) error

	// Load returns every line in order, Save replaces them all
	Load(ctx context.Context) ([]domain.ProductionLine, error)
	Save(ctx context.Context, lines []domain.ProductionLine) error

	// Ping reports whether the backing store is reachable
	Ping(ctx context.Context) error
}
