package card

import "strings"

// SplitAddress breaks an address into rendered lines. measure reports the
// width of a candidate line in the face the address is drawn with; every
// line stays inside maxWidth unless a single rune already exceeds it, in
// which case the line carries that one rune. At most maxLines lines come
// back and text past the last line is dropped. Blank input yields one empty
// line so the caller's layout loop stays uniform.
func SplitAddress(measure func(string) float64, address string, maxWidth float64, maxLines int) []string {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" || maxLines < 1 {
		return []string{""}
	}

	runes := []rune(trimmed)
	lines := make([]string, 0, maxLines)
	start := 0
	for len(lines) < maxLines && start < len(runes) {
		end := start + 1
		for end < len(runes) && measure(string(runes[start:end+1])) <= maxWidth {
			end++
		}
		lines = append(lines, string(runes[start:end]))
		start = end
	}
	return lines
}
