package catalog

// ==================== Configuration File Names ====================

// Catalog file names, relative to the catalog directory
const (
	ItemsFileName    = "items.json"
	MachinesFileName = "machines.json"
	RecipesFileName  = "recipes.json"
)

// Schema paths inside the embedded schema filesystem
const (
	ItemsSchemaPath    = "schemas/items.schema.json"
	MachinesSchemaPath = "schemas/machines.schema.json"
	RecipesSchemaPath  = "schemas/recipes.schema.json"
)

// ==================== Error Messages ====================

const (
	ErrMsgUnknownMachine = "unknown machine"
	ErrMsgUnknownItem    = "unknown item"
	ErrMsgDuplicateID    = "duplicate id"
	ErrMsgInvalidID      = "invalid id"
	ErrMsgInvalidRate    = "invalid rate"
	ErrMsgPowerMismatch  = "power component does not match machine"
	ErrMsgInvalidConfig  = "invalid catalog configuration"
)

// Format strings used with fmt.Errorf
const (
	ErrFmtReadFileFailed   = "failed to read %s: %w"
	ErrFmtSchemaFailed     = "schema validation failed for %s: %w"
	ErrFmtParseFailed      = "failed to parse %s: %w"
	ErrFmtIDPrefix         = "%w: %q must start with %q"
	ErrFmtDuplicate        = "%w: %q"
	ErrFmtRecipeMachine    = "%w: recipe %q references %q"
	ErrFmtRecipeItem       = "%w: recipe %q references %q"
	ErrFmtRecipeRate       = "%w: recipe %q has rate %v for %q"
	ErrFmtRecipePower      = "%w: recipe %q %s %v MW, machine %q %s %v MW"
	ErrFmtRecipeNoMachine  = "%w: recipe %q has no machine"
	ErrFmtRecipeNoProducts = "%w: recipe %q has no item inputs or outputs"
)
