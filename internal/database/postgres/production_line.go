package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/FactoryPlanner_Go/internal/domain"
	"github.com/osse101/FactoryPlanner_Go/internal/logger"
	"github.com/osse101/FactoryPlanner_Go/internal/repository"
)

// ProductionLineRepository implements repository.ProductionLine for PostgreSQL
type ProductionLineRepository struct {
	pool *pgxpool.Pool
}

// NewProductionLineRepository creates a new ProductionLineRepository
func NewProductionLineRepository(pool *pgxpool.Pool) *ProductionLineRepository {
	return &ProductionLineRepository{pool: pool}
}

var _ repository.ProductionLine = (*ProductionLineRepository)(nil)

const (
	queryListLines = `
		SELECT l.name, l.slug, COUNT(r.position)
		FROM production_lines l
		LEFT JOIN recipe_instances r ON r.line_slug = l.slug
		GROUP BY l.slug, l.name, l.position
		ORDER BY l.position`

	queryGetLine = `SELECT name FROM production_lines WHERE slug = $1`

	querySlugExists = `SELECT EXISTS (SELECT 1 FROM production_lines WHERE slug = $1)`

	queryAllLines = `SELECT name, slug FROM production_lines ORDER BY position`

	queryLineInstances = `
		SELECT recipe, clock_speed, machine_count
		FROM recipe_instances
		WHERE line_slug = $1
		ORDER BY position`

	queryAllInstances = `
		SELECT r.line_slug, r.recipe, r.clock_speed, r.machine_count
		FROM recipe_instances r
		JOIN production_lines l ON l.slug = r.line_slug
		ORDER BY l.position, r.position`

	queryInsertLine = `INSERT INTO production_lines (slug, name) VALUES ($1, $2)`

	queryUpdateLine = `UPDATE production_lines SET name = $2, updated_at = NOW() WHERE slug = $1`

	queryDeleteLine = `DELETE FROM production_lines WHERE slug = $1`

	queryClearInstances = `DELETE FROM recipe_instances WHERE line_slug = $1`

	queryClearLines = `DELETE FROM production_lines`

	queryInsertInstance = `
		INSERT INTO recipe_instances (line_slug, position, recipe_id, clock_speed, machine_count, recipe)
		VALUES ($1, $2, $3, $4, $5, $6)`
)

// List returns the listing view of every line
func (r *ProductionLineRepository) List(ctx context.Context) ([]domain.LineInfo, error) {
	rows, err := r.pool.Query(ctx, queryListLines)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListLines, err)
	}

	infos, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.LineInfo, error) {
		var info domain.LineInfo
		err := row.Scan(&info.Name, &info.Slug, &info.RecipeCount)
		return info, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListLines, err)
	}
	return infos, nil
}

// GetBySlug returns a single line with its instances
func (r *ProductionLineRepository) GetBySlug(ctx context.Context, slug string) (*domain.ProductionLine, error) {
	line := domain.ProductionLine{Slug: slug}
	if err := r.pool.QueryRow(ctx, queryGetLine, slug).Scan(&line.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrLineNotFound, slug)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetLine, err)
	}

	rows, err := r.pool.Query(ctx, queryLineInstances, slug)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadInstances, err)
	}
	line.Recipes, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.RecipeInstance, error) {
		var (
			raw []byte
			ri  domain.RecipeInstance
		)
		if err := row.Scan(&raw, &ri.ClockSpeed, &ri.MachineCount); err != nil {
			return ri, err
		}
		return ri, decodeRecipe(raw, &ri.Recipe)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadInstances, err)
	}

	return &line, nil
}

// SlugExists reports whether a line uses slug
func (r *ProductionLineRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	if err := r.pool.QueryRow(ctx, querySlugExists, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToCheckSlugInUse, err)
	}
	return exists, nil
}

// Create inserts a new line after all existing ones
func (r *ProductionLineRepository) Create(ctx context.Context, line *domain.ProductionLine) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	if err := insertLine(ctx, tx, line); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// Update replaces the name and instances of an existing line
func (r *ProductionLineRepository) Update(ctx context.Context, line *domain.ProductionLine) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	tag, err := tx.Exec(ctx, queryUpdateLine, line.Slug, line.Name)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateLine, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrLineNotFound, line.Slug)
	}

	if _, err := tx.Exec(ctx, queryClearInstances, line.Slug); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveInstances, err)
	}
	if err := insertInstances(ctx, tx, line); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// Delete removes a line and, by cascade, its instances
func (r *ProductionLineRepository) Delete(ctx context.Context, slug string) error {
	tag, err := r.pool.Exec(ctx, queryDeleteLine, slug)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteLine, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrLineNotFound, slug)
	}
	return nil
}

// Load returns every line in order
func (r *ProductionLineRepository) Load(ctx context.Context) ([]domain.ProductionLine, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly, IsoLevel: pgx.RepeatableRead})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	rows, err := tx.Query(ctx, queryAllLines)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListLines, err)
	}
	lines, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ProductionLine, error) {
		var l domain.ProductionLine
		err := row.Scan(&l.Name, &l.Slug)
		return l, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListLines, err)
	}

	bySlug := make(map[string]int, len(lines))
	for i := range lines {
		lines[i].Recipes = []domain.RecipeInstance{}
		bySlug[lines[i].Slug] = i
	}

	rows, err = tx.Query(ctx, queryAllInstances)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadInstances, err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			slug string
			raw  []byte
			ri   domain.RecipeInstance
		)
		if err := rows.Scan(&slug, &raw, &ri.ClockSpeed, &ri.MachineCount); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadInstances, err)
		}
		if err := decodeRecipe(raw, &ri.Recipe); err != nil {
			return nil, err
		}
		i := bySlug[slug]
		lines[i].Recipes = append(lines[i].Recipes, ri)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadInstances, err)
	}

	return lines, nil
}

// Save replaces every line in a single transaction
func (r *ProductionLineRepository) Save(ctx context.Context, lines []domain.ProductionLine) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	if _, err := tx.Exec(ctx, queryClearLines); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToClearLines, err)
	}
	for i := range lines {
		if err := insertLine(ctx, tx, &lines[i]); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}

	logger.FromContext(ctx).Info(LogMsgLinesReplaced, "lines", len(lines))
	return nil
}

// Ping checks database connectivity
func (r *ProductionLineRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func insertLine(ctx context.Context, tx pgx.Tx, line *domain.ProductionLine) error {
	if _, err := tx.Exec(ctx, queryInsertLine, line.Slug, line.Name); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateSlug, line.Slug)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertLine, err)
	}
	return insertInstances(ctx, tx, line)
}

func insertInstances(ctx context.Context, tx pgx.Tx, line *domain.ProductionLine) error {
	if len(line.Recipes) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for i, ri := range line.Recipes {
		raw, err := json.Marshal(ri.Recipe)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToEncodeRecipe, err)
		}
		batch.Queue(queryInsertInstance, line.Slug, i, ri.ID, ri.ClockSpeed, ri.MachineCount, raw)
	}

	results := tx.SendBatch(ctx, batch)
	for range line.Recipes {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return fmt.Errorf("%s: %w", ErrMsgFailedToSaveInstances, err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveInstances, err)
	}
	return nil
}

func decodeRecipe(raw []byte, recipe *domain.Recipe) error {
	if err := json.Unmarshal(raw, recipe); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDecodeRecipe, err)
	}
	return nil
}
