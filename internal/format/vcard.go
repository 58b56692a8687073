package format

import (
	"bytes"
	"fmt"
	"strings"

	"shenfen/internal/identity/models"
)

// vcardFormatter renders VERSION:3.0 cards, one per record, separated by
// a blank line. Only contact-shaped fields map onto vCard properties; the
// field selection decides which of them appear.
type vcardFormatter struct{}

func (vcardFormatter) Name() string      { return "vcard" }
func (vcardFormatter) Extension() string { return "vcf" }

func (vcardFormatter) Format(recs []*models.IdentityRecord, fields []string) ([]byte, error) {
	selected := make(map[string]bool, len(fields))
	for _, field := range fields {
		selected[field] = true
	}

	var buf bytes.Buffer
	for i, rec := range recs {
		if i > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString("BEGIN:VCARD\nVERSION:3.0\n")

		var nameParts []string
		if selected["last_name"] && rec.LastName != "" {
			nameParts = append(nameParts, rec.LastName)
		}
		if selected["first_name"] && rec.FirstName != "" {
			nameParts = append(nameParts, rec.FirstName)
		}
		if len(nameParts) > 0 {
			fmt.Fprintf(&buf, "N:%s;;;\n", strings.Join(nameParts, ";"))
			fmt.Fprintf(&buf, "FN:%s\n", strings.Join(nameParts, ""))
		}

		if selected["email"] && rec.Email != "" {
			fmt.Fprintf(&buf, "EMAIL:%s\n", rec.Email)
		}
		if selected["phone"] && rec.Phone != "" {
			fmt.Fprintf(&buf, "TEL:%s\n", rec.Phone)
		}
		if selected["address"] && rec.Address != "" {
			addr := strings.ReplaceAll(rec.Address, ",", "\\,")
			fmt.Fprintf(&buf, "ADR:;;%s;;;;\n", addr)
		}

		buf.WriteString("END:VCARD\n")
	}
	return buf.Bytes(), nil
}
