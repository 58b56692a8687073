package format

import (
	"bytes"
	"strings"

	"shenfen/internal/identity/models"
)

// markdownFormatter renders a pipe table with field-name headers. Pipes
// inside values are escaped so a cell cannot break the row.
type markdownFormatter struct{}

func (markdownFormatter) Name() string      { return "markdown" }
func (markdownFormatter) Extension() string { return "md" }

func (markdownFormatter) Format(recs []*models.IdentityRecord, fields []string) ([]byte, error) {
	if len(recs) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	buf.WriteString("| " + strings.Join(fields, " | ") + " |\n")

	sep := make([]string, len(fields))
	for i := range sep {
		sep[i] = "---"
	}
	buf.WriteString("| " + strings.Join(sep, " | ") + " |\n")

	cells := make([]string, len(fields))
	for _, rec := range recs {
		for i, field := range fields {
			cells[i] = strings.ReplaceAll(rec.FieldValue(field), "|", "\\|")
		}
		buf.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
	return buf.Bytes(), nil
}
