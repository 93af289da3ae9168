package services

import (
	"fmt"
	"strings"
	"time"
)

// ExportFilename derives the download filename from the current service
// title and date: "orcamento_<title>_<DD-MM-YYYY>.<ext>". Every character
// outside [a-zA-Z0-9] is replaced with "_" and the result is lowercased, so
// accented titles degrade predictably ("Cerca Elétrica" → "cerca_el_trica").
func ExportFilename(title string, now time.Time, ext string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteByte('_')
		}
	}
	return fmt.Sprintf("orcamento_%s_%s.%s", b.String(), now.Format("02-01-2006"), ext)
}
