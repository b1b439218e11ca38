package main

const appName = "planner"

// Flag names
const (
	flagCatalogDir = "catalog-dir"
	flagLogLevel   = "log-level"
	flagFormat     = "format"
	flagFile       = "file"
	flagLine       = "line"
	flagRecipe     = "recipe"
	flagClock      = "clock"
	flagMachines   = "machines"
)

// Catalog listing kinds
const (
	kindItems    = "items"
	kindMachines = "machines"
	kindRecipes  = "recipes"
)

// Error message templates
const (
	errFmtUnknownFormat = "unknown output format: %q (supported values: %v)"
	errFmtUnknownKind   = "unknown catalog kind: %q (supported values: %v)"
	errFmtReadLines     = "failed to read lines from %q: %w"
	errFmtLineNotFound  = "%w: %q in %s"
	errFmtUnknownRecipe = "%w: %s"
)
