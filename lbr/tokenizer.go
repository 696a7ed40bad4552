package lbr

import "strings"

// SplitFields splits one record line on commas, honoring the format's
// primitive quoting: a '"' toggles whether commas split, and that is
// all it does. Quote characters stay in the returned fields, a doubled
// quote is two toggles, and an unbalanced quote is not an error. Each
// field is trimmed of surrounding whitespace. A trailing accumulator
// is kept only if non-empty, so a trailing comma does not produce an
// empty final field.
func SplitFields(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false
	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
			cur.WriteRune(ch)
		case ch == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(ch)
		}
	}
	if cur.Len() > 0 {
		fields = append(fields, strings.TrimSpace(cur.String()))
	}
	return fields
}
