package ingest

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Source datasets write dates in several shapes; everything is normalized
// to YYYY-MM-DD on the way into the store.
var dateLayouts = []string{
	"2006-01-02",
	"1/2/2006", "01/02/2006",
	"1-2-2006", "01-02-2006",
	"2006/01/02",
	"Jan 2, 2006", "2 Jan 2006",
	"2006-01", "2006",
}

// cleanCell trims whitespace and the UTF-8 byte order mark from a raw
// CSV value.
func cleanCell(s string) string {
	return strings.TrimSpace(strings.TrimPrefix(s, "\uFEFF"))
}

// cleanHeader lower-cases a header name after cleaning it.
func cleanHeader(s string) string {
	return strings.ToLower(cleanCell(s))
}

// cell returns the cleaned value of the named column, or "" when the
// column is absent or the row is short.
func cell(row []string, idx headerIndex, name string) string {
	pos, ok := idx[name]
	if !ok || pos >= len(row) {
		return ""
	}
	return cleanCell(row[pos])
}

// toDate parses a date in any known source layout and reformats it as
// YYYY-MM-DD. Returns false for empty or unparseable input.
func toDate(s string) (string, bool) {
	s = cleanCell(s)
	if s == "" {
		return "", false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}

// toFloat parses a number after stripping thousands separators. Returns
// nil for empty or unparseable input.
func toFloat(s string) *float64 {
	s = strings.ReplaceAll(cleanCell(s), ",", "")
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// toInt parses an integer after stripping thousands separators and any
// trailing decimal part. Returns nil for empty or unparseable input.
func toInt(s string) *int64 {
	s = strings.ReplaceAll(cleanCell(s), ",", "")
	if s == "" {
		return nil
	}
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		s = s[:dot]
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

// optional returns nil for empty strings, a pointer otherwise.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// joinList rewrites a semicolon-separated source value as a comma-joined
// string ("a;b;c" -> "a, b, c"). Values without semicolons pass through.
func joinList(s string) string {
	parts := strings.Split(s, ";")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ", ")
}

// stripListLiteral converts a source-language list literal such as
// "['Fiction', 'Classics']" into "Fiction, Classics". An empty literal
// ("[]") yields "".
func stripListLiteral(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	s = strings.ReplaceAll(s, "'", "")

	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ", ")
}

// round2 rounds to two decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// dedupeKey builds a natural key for in-batch deduplication. Keys are
// lower-cased so duplicates differing only in case collapse to one row.
func dedupeKey(parts ...string) string {
	return strings.ToLower(strings.Join(parts, "|"))
}
