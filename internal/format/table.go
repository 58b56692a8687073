package format

import (
	"bytes"
	"strings"

	"github.com/mattn/go-runewidth"

	"shenfen/internal/identity/models"
)

// maxCellWidth caps a column at this display width; longer values are
// truncated with an ellipsis so one user-agent string cannot blow up the
// whole grid.
const maxCellWidth = 30

// tableFormatter renders an aligned text grid with Chinese column labels.
// Column widths count display cells, not runes, so CJK text lines up.
type tableFormatter struct{}

func (tableFormatter) Name() string      { return "table" }
func (tableFormatter) Extension() string { return "txt" }

func (tableFormatter) Format(recs []*models.IdentityRecord, fields []string) ([]byte, error) {
	if len(recs) == 0 {
		return []byte("No identities to display.\n"), nil
	}

	headers := make([]string, len(fields))
	for i, field := range fields {
		if label, ok := models.FieldLabels[field]; ok {
			headers[i] = label
		} else {
			headers[i] = field
		}
	}

	rows := make([][]string, len(recs))
	for i, rec := range recs {
		row := make([]string, len(fields))
		for j, field := range fields {
			row[j] = runewidth.Truncate(rec.FieldValue(field), maxCellWidth, "…")
		}
		rows[i] = row
	}

	widths := make([]int, len(fields))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var buf bytes.Buffer
	writeRule(&buf, widths, '-')
	writeRow(&buf, headers, widths)
	writeRule(&buf, widths, '=')
	for _, row := range rows {
		writeRow(&buf, row, widths)
		writeRule(&buf, widths, '-')
	}
	return buf.Bytes(), nil
}

func writeRule(buf *bytes.Buffer, widths []int, fill byte) {
	for _, w := range widths {
		buf.WriteByte('+')
		buf.WriteString(strings.Repeat(string(fill), w+2))
	}
	buf.WriteString("+\n")
}

func writeRow(buf *bytes.Buffer, cells []string, widths []int) {
	for i, cell := range cells {
		buf.WriteString("| ")
		buf.WriteString(cell)
		buf.WriteString(strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell)+1))
	}
	buf.WriteString("|\n")
}
