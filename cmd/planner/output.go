package main

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/osse101/FactoryPlanner_Go/internal/domain"
	"github.com/osse101/FactoryPlanner_Go/internal/linestore"
)

// Format is an output or input encoding
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

var supportedFormats = []Format{FormatTable, FormatJSON, FormatYAML}

func parseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	for _, supported := range supportedFormats {
		if f == supported {
			return f, nil
		}
	}
	return "", fmt.Errorf(errFmtUnknownFormat, s, supportedFormats)
}

// formatFromPath picks YAML for .yaml/.yml files and JSON otherwise
func formatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// toGeneric round-trips v through JSON so YAML output uses the same keys
// and component encoding as the API.
func toGeneric(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func writeStructured(w io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		generic, err := toGeneric(v)
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(generic); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf(errFmtUnknownFormat, format, supportedFormats)
	}
}

// decodeLines reads production lines in the persistence format. YAML input
// is converted to JSON first so both encodings share the record decoder.
func decodeLines(data []byte, format Format) ([]domain.ProductionLine, error) {
	if format == FormatYAML {
		var generic any
		if err := yaml.Unmarshal(data, &generic); err != nil {
			return nil, err
		}
		converted, err := json.Marshal(generic)
		if err != nil {
			return nil, err
		}
		data = converted
	}
	return linestore.Decode(data)
}

// table writes aligned columns
type table struct {
	tw *tabwriter.Writer
}

func newTable(w io.Writer, headers ...string) *table {
	t := &table{tw: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
	t.row(headers...)
	return t
}

func (t *table) row(cols ...string) {
	fmt.Fprintln(t.tw, strings.Join(cols, "\t"))
}

func (t *table) flush() error {
	return t.tw.Flush()
}

func formatRate(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
