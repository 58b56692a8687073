package format

import (
	"bytes"
	"encoding/csv"

	"shenfen/internal/identity/models"
	dErrors "shenfen/pkg/domain-errors"
)

// csvFormatter renders a header row of field names followed by one row
// per record. Empty input renders nothing, not a lone header.
type csvFormatter struct{}

func (csvFormatter) Name() string      { return "csv" }
func (csvFormatter) Extension() string { return "csv" }

func (csvFormatter) Format(recs []*models.IdentityRecord, fields []string) ([]byte, error) {
	if len(recs) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(fields); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "write csv header")
	}

	row := make([]string, len(fields))
	for _, rec := range recs {
		for i, field := range fields {
			row[i] = rec.FieldValue(field)
		}
		if err := w.Write(row); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "write csv row")
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "flush csv")
	}
	return buf.Bytes(), nil
}
