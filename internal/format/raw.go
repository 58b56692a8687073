package format

import (
	"bytes"
	"fmt"
	"strings"

	"shenfen/internal/identity/models"
)

// rawFormatter renders numbered key: value blocks, one per record.
type rawFormatter struct{}

func (rawFormatter) Name() string      { return "raw" }
func (rawFormatter) Extension() string { return "txt" }

func (rawFormatter) Format(recs []*models.IdentityRecord, fields []string) ([]byte, error) {
	var buf bytes.Buffer
	for i, rec := range recs {
		fmt.Fprintf(&buf, "Identity #%d\n", i+1)
		buf.WriteString(strings.Repeat("-", 40))
		buf.WriteString("\n")
		for _, field := range fields {
			fmt.Fprintf(&buf, "  %s: %s\n", field, rec.FieldValue(field))
		}
		buf.WriteString("\n")
	}
	return buf.Bytes(), nil
}
