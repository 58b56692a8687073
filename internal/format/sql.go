package format

import (
	"bytes"
	"fmt"
	"strings"

	"shenfen/internal/identity/models"
)

const sqlTableName = "identities"

// sqlFormatter renders a CREATE TABLE statement followed by one INSERT
// per record. String values escape embedded single quotes by doubling.
type sqlFormatter struct{}

func (sqlFormatter) Name() string      { return "sql" }
func (sqlFormatter) Extension() string { return "sql" }

func (sqlFormatter) Format(recs []*models.IdentityRecord, fields []string) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "CREATE TABLE IF NOT EXISTS %s (\n", sqlTableName)
	for i, field := range fields {
		fmt.Fprintf(&buf, "    %s %s", field, sqlType(field))
		if i < len(fields)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}
	buf.WriteString(");\n")

	if len(recs) > 0 {
		buf.WriteString("\n")
	}

	columns := strings.Join(fields, ", ")
	values := make([]string, len(fields))
	for _, rec := range recs {
		for i, field := range fields {
			value := rec.FieldValue(field)
			if numericFields[field] {
				values[i] = value
			} else {
				values[i] = "'" + strings.ReplaceAll(value, "'", "''") + "'"
			}
		}
		fmt.Fprintf(&buf, "INSERT INTO %s (%s) VALUES (%s);\n",
			sqlTableName, columns, strings.Join(values, ", "))
	}
	return buf.Bytes(), nil
}

func sqlType(field string) string {
	switch field {
	case "age", "height_cm":
		return "INTEGER"
	case "weight_kg":
		return "REAL"
	default:
		return "TEXT"
	}
}
