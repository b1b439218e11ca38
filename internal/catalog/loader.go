package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/osse101/FactoryPlanner_Go/internal/domain"
	"github.com/osse101/FactoryPlanner_Go/internal/validation"
)

//go:embed data/*.json
var defaultData embed.FS

//go:embed schemas/*.json
var schemaFS embed.FS

// Schemas exposes the embedded catalog JSON schemas
func Schemas() fs.FS {
	return schemaFS
}

// ItemsConfig is the layout of items.json
type ItemsConfig struct {
	Version     string        `json:"version"`
	Description string        `json:"description"`
	Items       []domain.Item `json:"items"`
}

// MachinesConfig is the layout of machines.json
type MachinesConfig struct {
	Version     string           `json:"version"`
	Description string           `json:"description"`
	Machines    []domain.Machine `json:"machines"`
}

// RecipesConfig is the layout of recipes.json
type RecipesConfig struct {
	Version     string      `json:"version"`
	Description string      `json:"description"`
	Recipes     []RecipeDef `json:"recipes"`
}

// RecipeDef is a recipe as written in recipes.json. Power flows are not
// listed; they come from the machine.
type RecipeDef struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Alternate bool      `json:"alternate"`
	Machine   string    `json:"machine"`
	Inputs    []FlowDef `json:"inputs"`
	Outputs   []FlowDef `json:"outputs"`
}

// FlowDef is an item flow of a recipe definition
type FlowDef struct {
	Item string  `json:"item"`
	Rate float64 `json:"rate"`
}

// Loader reads catalog definitions and builds a Catalog
type Loader interface {
	Load(dir string) (*Catalog, error)
	LoadFS(fsys fs.FS) (*Catalog, error)
}

type catalogLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &catalogLoader{
		schemaValidator: validation.NewSchemaValidator(schemaFS),
	}
}

// LoadDefault builds the catalog shipped with the binary
func LoadDefault() (*Catalog, error) {
	data, err := fs.Sub(defaultData, "data")
	if err != nil {
		return nil, err
	}
	return NewLoader().LoadFS(data)
}

// Load reads items.json, machines.json and recipes.json from dir
func (l *catalogLoader) Load(dir string) (*Catalog, error) {
	return l.LoadFS(os.DirFS(dir))
}

// LoadFS reads the catalog files from the root of fsys
func (l *catalogLoader) LoadFS(fsys fs.FS) (*Catalog, error) {
	var items ItemsConfig
	if err := l.decode(fsys, ItemsFileName, ItemsSchemaPath, &items); err != nil {
		return nil, err
	}

	var machines MachinesConfig
	if err := l.decode(fsys, MachinesFileName, MachinesSchemaPath, &machines); err != nil {
		return nil, err
	}

	var recipes RecipesConfig
	if err := l.decode(fsys, RecipesFileName, RecipesSchemaPath, &recipes); err != nil {
		return nil, err
	}

	machineByID := make(map[string]domain.Machine, len(machines.Machines))
	for _, m := range machines.Machines {
		machineByID[m.ID] = m
	}

	built := make([]domain.Recipe, 0, len(recipes.Recipes))
	for _, def := range recipes.Recipes {
		machine, ok := machineByID[def.Machine]
		if !ok {
			return nil, fmt.Errorf(ErrFmtRecipeMachine, ErrUnknownMachine, def.ID, def.Machine)
		}
		built = append(built, BuildRecipe(def, machine))
	}

	return New(items.Items, machines.Machines, built)
}

func (l *catalogLoader) decode(fsys fs.FS, name, schemaPath string, v any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf(ErrFmtReadFileFailed, name, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, schemaPath); err != nil {
		return fmt.Errorf(ErrFmtSchemaFailed, name, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf(ErrFmtParseFailed, name, err)
	}
	return nil
}

// BuildRecipe turns a definition into a domain recipe. The machine's power
// draw is prepended to the inputs and its generation to the outputs.
func BuildRecipe(def RecipeDef, machine domain.Machine) domain.Recipe {
	r := domain.Recipe{
		ID:        def.ID,
		Name:      def.Name,
		Alternate: def.Alternate,
		Machine:   machine,
	}

	if machine.BasePowerConsumption > 0 {
		r.Inputs = append(r.Inputs, domain.PowerComponent(machine.BasePowerConsumption))
	}
	for _, in := range def.Inputs {
		r.Inputs = append(r.Inputs, domain.ItemComponent(in.Item, in.Rate))
	}

	for _, out := range def.Outputs {
		r.Outputs = append(r.Outputs, domain.ItemComponent(out.Item, out.Rate))
	}
	if machine.BasePowerProduction > 0 {
		r.Outputs = append(r.Outputs, domain.PowerComponent(machine.BasePowerProduction))
	}

	return r
}
