package productionline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/osse101/FactoryPlanner_Go/internal/concurrency"
	"github.com/osse101/FactoryPlanner_Go/internal/domain"
	"github.com/osse101/FactoryPlanner_Go/internal/logger"
	"github.com/osse101/FactoryPlanner_Go/internal/metrics"
	"github.com/osse101/FactoryPlanner_Go/internal/production"
	"github.com/osse101/FactoryPlanner_Go/internal/repository"
)

// RecipeCatalog resolves recipe ids. *catalog.Catalog satisfies it.
type RecipeCatalog interface {
	Recipe(id string) (domain.Recipe, bool)
}

// InstanceSpec describes a recipe instance for ad-hoc summaries.
// Nil parameters take the instance defaults.
type InstanceSpec struct {
	RecipeID     string   `json:"recipe_id"`
	ClockSpeed   *float64 `json:"clock_speed,omitempty"`
	MachineCount *int     `json:"machine_count,omitempty"`
}

// Service defines the interface for production line operations
type Service interface {
	CreateLine(ctx context.Context, name string) (*domain.ProductionLine, error)
	ListLines(ctx context.Context) ([]domain.LineInfo, error)
	GetLine(ctx context.Context, slug string) (*domain.ProductionLine, error)
	RenameLine(ctx context.Context, slug, name string) (*domain.ProductionLine, error)
	DeleteLine(ctx context.Context, slug string) error

	AddRecipe(ctx context.Context, slug, recipeID string) (*domain.ProductionLine, error)
	UpdateRecipe(ctx context.Context, slug string, index int, clockSpeed *float64, machineCount *int) (*domain.ProductionLine, error)
	RemoveRecipe(ctx context.Context, slug string, index int) (*domain.ProductionLine, error)
	MoveRecipe(ctx context.Context, slug string, from, to int) (*domain.ProductionLine, error)

	Summarize(ctx context.Context, slug string) (*production.LineSummary, error)
	SummarizeInstances(ctx context.Context, specs []InstanceSpec) (*production.LineSummary, error)

	ExportLines(ctx context.Context) ([]domain.ProductionLine, error)
	ImportLines(ctx context.Context, lines []domain.ProductionLine) error
}

type service struct {
	repo    repository.ProductionLine
	catalog RecipeCatalog
	engine  *production.Engine
	cache   *summaryCache
	locks   *concurrency.LockManager

	// storeMu is held exclusively by ImportLines and shared by every
	// per-line operation, so an import never interleaves with one.
	storeMu sync.RWMutex
}

// NewService creates a new production line service
func NewService(repo repository.ProductionLine, catalog RecipeCatalog, engine *production.Engine, cacheCfg CacheConfig) Service {
	return &service{
		repo:    repo,
		catalog: catalog,
		engine:  engine,
		cache:   newSummaryCache(cacheCfg),
		locks:   concurrency.NewLockManager(),
	}
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidLineName, ErrMsgEmptyLineName)
	}
	if utf8.RuneCountInString(name) > MaxLineNameLength {
		return "", fmt.Errorf("%w: "+ErrFmtLineNameTooLong, domain.ErrInvalidLineName, MaxLineNameLength)
	}
	return name, nil
}

// CreateLine stores an empty line. Its slug is derived from the name and
// gets a numeric suffix when already taken.
func (s *service) CreateLine(ctx context.Context, name string) (*domain.ProductionLine, error) {
	log := logger.FromContext(ctx)

	name, err := validateName(name)
	if err != nil {
		return nil, err
	}
	base := Slugify(name)
	if base == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidLineName, ErrMsgEmptySlug)
	}

	s.storeMu.RLock()
	defer s.storeMu.RUnlock()

	for attempt := 1; attempt <= MaxSlugAttempts; attempt++ {
		slug := slugCandidate(base, attempt)

		exists, err := s.repo.SlugExists(ctx, slug)
		if err != nil {
			log.Error(LogMsgRepositoryFailure, "error", err, "slug", slug)
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateLine, err)
		}
		if exists {
			continue
		}

		line := &domain.ProductionLine{Name: name, Slug: slug, Recipes: []domain.RecipeInstance{}}
		err = s.repo.Create(ctx, line)
		if errors.Is(err, domain.ErrDuplicateSlug) {
			// lost a race with a concurrent create
			log.Debug(LogMsgSlugTaken, "slug", slug)
			continue
		}
		if err != nil {
			log.Error(LogMsgRepositoryFailure, "error", err, "slug", slug)
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateLine, err)
		}

		metrics.LinesCreated.Inc()
		log.Info(LogMsgLineCreated, "slug", slug, "name", name)
		return line, nil
	}

	return nil, fmt.Errorf("%w: "+ErrFmtSlugExhausted, domain.ErrDuplicateSlug, base, MaxSlugAttempts)
}

func (s *service) ListLines(ctx context.Context) ([]domain.LineInfo, error) {
	return s.repo.List(ctx)
}

// GetLine returns the line with every instance resolved against the catalog
func (s *service) GetLine(ctx context.Context, slug string) (*domain.ProductionLine, error) {
	return s.loadLine(ctx, slug)
}

func (s *service) loadLine(ctx context.Context, slug string) (*domain.ProductionLine, error) {
	line, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := s.rehydrate(line); err != nil {
		return nil, err
	}
	return line, nil
}

// rehydrate replaces stored recipe fields with the catalog's current
// definition, keyed by recipe id. Only clock speed and machine count are
// owned by the stored record.
func (s *service) rehydrate(line *domain.ProductionLine) error {
	for i := range line.Recipes {
		ri := &line.Recipes[i]
		recipe, ok := s.catalog.Recipe(ri.ID)
		if !ok {
			return fmt.Errorf("%w: %s ("+ErrFmtRehydrateRecipe+")", domain.ErrRecipeNotFound, ri.ID, line.Slug, i)
		}
		ri.Recipe = recipe
		if err := ri.Validate(); err != nil {
			return fmt.Errorf(ErrFmtRehydrateRecipe+": %w", line.Slug, i, err)
		}
	}
	return nil
}

// mutate runs fn on a fresh copy of the line while holding the line's lock,
// persists the result and drops the cached summary.
func (s *service) mutate(ctx context.Context, slug string, fn func(line *domain.ProductionLine) error) (*domain.ProductionLine, error) {
	s.storeMu.RLock()
	defer s.storeMu.RUnlock()
	unlock := s.locks.Lock(slug)
	defer unlock()

	line, err := s.loadLine(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := fn(line); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, line); err != nil {
		logger.FromContext(ctx).Error(LogMsgRepositoryFailure, "error", err, "slug", slug)
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToSaveLine, err)
	}
	s.cache.invalidate(slug)
	return line, nil
}

// RenameLine changes the display name; the slug stays stable
func (s *service) RenameLine(ctx context.Context, slug, name string) (*domain.ProductionLine, error) {
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}
	line, err := s.mutate(ctx, slug, func(line *domain.ProductionLine) error {
		line.Name = name
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info(LogMsgLineRenamed, "slug", slug, "name", name)
	return line, nil
}

func (s *service) DeleteLine(ctx context.Context, slug string) error {
	s.storeMu.RLock()
	defer s.storeMu.RUnlock()
	unlock := s.locks.Lock(slug)
	defer unlock()

	if err := s.repo.Delete(ctx, slug); err != nil {
		return err
	}
	s.cache.invalidate(slug)
	metrics.LinesDeleted.Inc()
	logger.FromContext(ctx).Info(LogMsgLineDeleted, "slug", slug)
	return nil
}

// AddRecipe appends an instance of the recipe at 100% with one machine
func (s *service) AddRecipe(ctx context.Context, slug, recipeID string) (*domain.ProductionLine, error) {
	recipe, ok := s.catalog.Recipe(recipeID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrRecipeNotFound, recipeID)
	}

	line, err := s.mutate(ctx, slug, func(line *domain.ProductionLine) error {
		line.Recipes = append(line.Recipes, domain.NewRecipeInstance(recipe))
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.InstanceMutations.WithLabelValues(metrics.OperationAdd).Inc()
	logger.FromContext(ctx).Info(LogMsgRecipeAdded, "slug", slug, "recipe", recipeID, "index", len(line.Recipes)-1)
	return line, nil
}

// UpdateRecipe changes the clock speed and/or machine count of an
// instance. Nil arguments leave the field as is.
func (s *service) UpdateRecipe(ctx context.Context, slug string, index int, clockSpeed *float64, machineCount *int) (*domain.ProductionLine, error) {
	if clockSpeed == nil && machineCount == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNoUpdateFields)
	}
	// reject bad values before taking the lock
	if clockSpeed != nil {
		if err := domain.ValidateClockSpeed(*clockSpeed); err != nil {
			return nil, err
		}
	}
	if machineCount != nil {
		if err := domain.ValidateMachineCount(*machineCount); err != nil {
			return nil, err
		}
	}

	line, err := s.mutate(ctx, slug, func(line *domain.ProductionLine) error {
		if err := line.CheckIndex(index); err != nil {
			return err
		}
		ri := &line.Recipes[index]
		if clockSpeed != nil {
			if err := ri.SetClockSpeed(*clockSpeed); err != nil {
				return err
			}
		}
		if machineCount != nil {
			if err := ri.SetMachineCount(*machineCount); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.InstanceMutations.WithLabelValues(metrics.OperationUpdate).Inc()
	ri := line.Recipes[index]
	logger.FromContext(ctx).Info(LogMsgRecipeUpdated, "slug", slug, "index", index,
		"clock_speed", ri.ClockSpeed, "machine_count", ri.MachineCount)
	return line, nil
}

func (s *service) RemoveRecipe(ctx context.Context, slug string, index int) (*domain.ProductionLine, error) {
	line, err := s.mutate(ctx, slug, func(line *domain.ProductionLine) error {
		if err := line.CheckIndex(index); err != nil {
			return err
		}
		line.Recipes = append(line.Recipes[:index], line.Recipes[index+1:]...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.InstanceMutations.WithLabelValues(metrics.OperationRemove).Inc()
	logger.FromContext(ctx).Info(LogMsgRecipeRemoved, "slug", slug, "index", index)
	return line, nil
}

// MoveRecipe moves the instance at from so that it ends up at index to,
// shifting the instances in between.
func (s *service) MoveRecipe(ctx context.Context, slug string, from, to int) (*domain.ProductionLine, error) {
	line, err := s.mutate(ctx, slug, func(line *domain.ProductionLine) error {
		if err := line.CheckIndex(from); err != nil {
			return err
		}
		if err := line.CheckIndex(to); err != nil {
			return err
		}
		moved := line.Recipes[from]
		line.Recipes = append(line.Recipes[:from], line.Recipes[from+1:]...)
		line.Recipes = append(line.Recipes[:to], append([]domain.RecipeInstance{moved}, line.Recipes[to:]...)...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.InstanceMutations.WithLabelValues(metrics.OperationMove).Inc()
	logger.FromContext(ctx).Info(LogMsgRecipeMoved, "slug", slug, "from", from, "to", to)
	return line, nil
}

// Summarize returns the item and power summary of a stored line
func (s *service) Summarize(ctx context.Context, slug string) (*production.LineSummary, error) {
	log := logger.FromContext(ctx)

	if cached, ok := s.cache.get(slug); ok {
		log.Debug(LogMsgSummaryCacheHit, "slug", slug)
		return &cached, nil
	}

	// hold the line lock so a concurrent mutation or import cannot be
	// overwritten by a summary of the previous state
	s.storeMu.RLock()
	defer s.storeMu.RUnlock()
	unlock := s.locks.Lock(slug)
	defer unlock()

	if cached, ok := s.cache.get(slug); ok {
		return &cached, nil
	}

	line, err := s.loadLine(ctx, slug)
	if err != nil {
		return nil, err
	}

	summary := s.summarize(line.Recipes, metrics.SourceLine)
	s.cache.put(slug, summary)
	log.Debug(LogMsgSummaryComputed, "slug", slug, "items", len(summary.Items), "net_power", summary.NetPower)
	return &summary, nil
}

// SummarizeInstances summarizes instances that are not stored in a line
func (s *service) SummarizeInstances(ctx context.Context, specs []InstanceSpec) (*production.LineSummary, error) {
	instances := make([]domain.RecipeInstance, 0, len(specs))
	for i, spec := range specs {
		ri, err := s.buildInstance(spec)
		if err != nil {
			return nil, fmt.Errorf(ErrFmtInstanceSpec+": %w", i, err)
		}
		instances = append(instances, ri)
	}

	summary := s.summarize(instances, metrics.SourceAdhoc)
	logger.FromContext(ctx).Debug(LogMsgSummaryComputed, "instances", len(instances), "items", len(summary.Items))
	return &summary, nil
}

func (s *service) buildInstance(spec InstanceSpec) (domain.RecipeInstance, error) {
	recipe, ok := s.catalog.Recipe(spec.RecipeID)
	if !ok {
		return domain.RecipeInstance{}, fmt.Errorf("%w: %s", domain.ErrRecipeNotFound, spec.RecipeID)
	}
	ri := domain.NewRecipeInstance(recipe)
	if spec.ClockSpeed != nil {
		if err := ri.SetClockSpeed(*spec.ClockSpeed); err != nil {
			return domain.RecipeInstance{}, err
		}
	}
	if spec.MachineCount != nil {
		if err := ri.SetMachineCount(*spec.MachineCount); err != nil {
			return domain.RecipeInstance{}, err
		}
	}
	return ri, nil
}

func (s *service) summarize(instances []domain.RecipeInstance, source string) production.LineSummary {
	start := time.Now()
	summary := s.engine.SummarizeLine(instances)
	metrics.SummaryDuration.Observe(time.Since(start).Seconds())
	metrics.SummariesComputed.WithLabelValues(source).Inc()
	return summary
}

// ExportLines returns every stored line in the persistence format
func (s *service) ExportLines(ctx context.Context) ([]domain.ProductionLine, error) {
	lines, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadLine, err)
	}
	for i := range lines {
		if err := s.rehydrate(&lines[i]); err != nil {
			return nil, err
		}
	}
	return lines, nil
}

// ImportLines replaces every stored line. Records are checked against the
// catalog first; nothing is written when any of them is invalid.
func (s *service) ImportLines(ctx context.Context, lines []domain.ProductionLine) error {
	seen := make(map[string]bool, len(lines))
	clean := make([]domain.ProductionLine, len(lines))
	for i, in := range lines {
		line := in.Clone()
		name, err := validateName(line.Name)
		if err != nil {
			return fmt.Errorf(ErrFmtImportLine+": %w", i, err)
		}
		line.Name = name
		if line.Slug == "" {
			return fmt.Errorf(ErrFmtImportLine+": %w: %s", i, domain.ErrInvalidInput, ErrMsgImportMissingSlug)
		}
		if seen[line.Slug] {
			return fmt.Errorf(ErrFmtImportLine+": %w: "+ErrFmtImportDuplicate, i, domain.ErrDuplicateSlug, line.Slug)
		}
		seen[line.Slug] = true
		if err := s.rehydrate(&line); err != nil {
			return fmt.Errorf(ErrFmtImportLine+": %w", i, err)
		}
		clean[i] = line
	}

	s.storeMu.Lock()
	defer s.storeMu.Unlock()

	if err := s.repo.Save(ctx, clean); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveLine, err)
	}
	s.cache.purge()
	logger.FromContext(ctx).Info(LogMsgLinesImported, "count", len(clean))
	return nil
}
