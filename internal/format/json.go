package format

import (
	"bytes"
	"encoding/json"

	"shenfen/internal/identity/models"
)

// jsonFormatter renders an indented JSON array of objects, keys in the
// canonical field order, numeric fields unquoted.
type jsonFormatter struct{}

func (jsonFormatter) Name() string      { return "json" }
func (jsonFormatter) Extension() string { return "json" }

func (jsonFormatter) Format(recs []*models.IdentityRecord, fields []string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("[")
	for i, rec := range recs {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n  {")
		for j, field := range fields {
			if j > 0 {
				buf.WriteString(",")
			}
			buf.WriteString("\n    ")
			buf.Write(jsonString(field))
			buf.WriteString(": ")
			value := rec.FieldValue(field)
			if numericFields[field] {
				buf.WriteString(value)
			} else {
				buf.Write(jsonString(value))
			}
		}
		buf.WriteString("\n  }")
	}
	if len(recs) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("]\n")
	return buf.Bytes(), nil
}

// jsonString encodes one string literal without escaping HTML characters,
// so Chinese text and user-agent strings stay readable.
func jsonString(s string) []byte {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a plain string cannot fail.
	_ = enc.Encode(s)
	return bytes.TrimRight(buf.Bytes(), "\n")
}
