// Package format serializes generated identity records into the output
// formats the CLI and HTTP API offer: json, csv, table, raw, sql,
// markdown, yaml and vcard.
package format

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"shenfen/internal/identity/models"
	dErrors "shenfen/pkg/domain-errors"
)

// Formatter renders a slice of records into one output document.
// Implementations are stateless and safe for concurrent use.
type Formatter interface {
	// Name is the registry key, e.g. "csv".
	Name() string
	// Extension is the file extension used for default output names,
	// without the dot.
	Extension() string
	// Format renders the records, restricted to the given fields.
	Format(recs []*models.IdentityRecord, fields []string) ([]byte, error)
}

var registry = map[string]Formatter{
	"json":     jsonFormatter{},
	"csv":      csvFormatter{},
	"table":    tableFormatter{},
	"raw":      rawFormatter{},
	"sql":      sqlFormatter{},
	"markdown": markdownFormatter{},
	"yaml":     yamlFormatter{},
	"vcard":    vcardFormatter{},
}

// extensions maps file extensions (lower case, no dot) onto registry names
// for output-path detection.
var extensions = map[string]string{
	"json":     "json",
	"csv":      "csv",
	"txt":      "table",
	"text":     "table",
	"sql":      "sql",
	"md":       "markdown",
	"markdown": "markdown",
	"yaml":     "yaml",
	"yml":      "yaml",
	"vcf":      "vcard",
	"vcard":    "vcard",
}

// ByName resolves a formatter from its registry name.
func ByName(name string) (Formatter, error) {
	f, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, dErrors.New(dErrors.CodeBadRequest,
			fmt.Sprintf("unknown output format %q (known: %s)", name, strings.Join(Names(), ", ")))
	}
	return f, nil
}

// Names lists the registered format names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FromPath detects a formatter from an output path's extension. The second
// return is false when the extension is missing or unrecognized.
func FromPath(path string) (Formatter, bool) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	name, ok := extensions[ext]
	if !ok {
		return nil, false
	}
	return registry[name], true
}

// DefaultFileName builds the output name used when the caller gives no
// path, identities_<timestamp>.<ext>.
func DefaultFileName(f Formatter, now time.Time) string {
	return fmt.Sprintf("identities_%s.%s", now.Format("20060102_150405"), f.Extension())
}

// Fields resolves a field selection into the canonical output order.
// An empty selection means every field; unknown names fail so a typo in
// a field list cannot silently drop a column.
func Fields(include []string) ([]string, error) {
	if len(include) == 0 {
		return append([]string(nil), models.FieldOrder...), nil
	}

	want := make(map[string]bool, len(include))
	for _, name := range include {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if _, ok := models.FieldLabels[name]; !ok {
			return nil, dErrors.New(dErrors.CodeBadRequest,
				fmt.Sprintf("unknown field %q", name))
		}
		want[name] = true
	}
	if len(want) == 0 {
		return append([]string(nil), models.FieldOrder...), nil
	}

	fields := make([]string, 0, len(want))
	for _, name := range models.FieldOrder {
		if want[name] {
			fields = append(fields, name)
		}
	}
	return fields, nil
}

// numericFields are rendered unquoted in json, sql and yaml output.
var numericFields = map[string]bool{
	"age":       true,
	"height_cm": true,
	"weight_kg": true,
}
