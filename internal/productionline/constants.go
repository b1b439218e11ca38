package productionline

import "time"

// ==================== Line Names ====================

const (
	// MaxLineNameLength bounds production line names in runes
	MaxLineNameLength = 100

	// MaxSlugAttempts bounds the numeric suffixes tried when a slug is taken
	MaxSlugAttempts = 1000

	// SlugSeparator joins words and the collision suffix
	SlugSeparator = "-"
)

// ==================== Summary Cache ====================

const (
	DefaultSummaryCacheSize = 256
	DefaultSummaryCacheTTL  = 10 * time.Minute
)

// ==================== Error Messages ====================

const (
	ErrMsgEmptyLineName      = "name must not be empty"
	ErrFmtLineNameTooLong    = "name exceeds %d characters"
	ErrMsgEmptySlug          = "name has no url-safe characters"
	ErrFmtSlugExhausted      = "no free slug for %q after %d attempts"
	ErrMsgNoUpdateFields     = "at least one of clock_speed or machine_count is required"
	ErrFmtRehydrateRecipe    = "line %q instance %d"
	ErrFmtImportLine         = "import line %d"
	ErrMsgImportMissingSlug  = "slug is required"
	ErrFmtImportDuplicate    = "slug %q appears more than once"
	ErrFmtInstanceSpec       = "instance %d"
	ErrMsgFailedToLoadLine   = "failed to load production line"
	ErrMsgFailedToSaveLine   = "failed to save production line"
	ErrMsgFailedToCreateLine = "failed to create production line"
)

// ==================== Log Messages ====================

const (
	LogMsgLineCreated       = "Production line created"
	LogMsgLineRenamed       = "Production line renamed"
	LogMsgLineDeleted       = "Production line deleted"
	LogMsgRecipeAdded       = "Recipe added to production line"
	LogMsgRecipeUpdated     = "Recipe instance updated"
	LogMsgRecipeRemoved     = "Recipe instance removed"
	LogMsgRecipeMoved       = "Recipe instance moved"
	LogMsgSlugTaken         = "Slug taken, trying next suffix"
	LogMsgSummaryCacheHit   = "Summary served from cache"
	LogMsgSummaryComputed   = "Summary computed"
	LogMsgLinesImported     = "Production lines imported"
	LogMsgRepositoryFailure = "Production line repository call failed"
)
