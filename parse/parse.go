package parse

import (
	"strings"

	"github.com/spkg/bom"
)

// Row is one CSV record, keyed by header name.
type Row map[string]string

// Table parses a header-plus-rows comma-separated table into rows keyed
// by the header line. The format is deliberately simple: records are
// split on newlines before any quote handling, so a quoted field cannot
// span lines. Commas inside a double-quoted span do not separate
// fields, and a doubled double-quote inside such a span is a literal
// quote. Field values are whitespace-trimmed and then stripped of one
// surrounding quote layer, if present.
//
// A data line whose field count differs from the header's is dropped
// silently. Input with a header but no data (or no input at all) yields
// no rows; Table never fails.
func Table(data []byte) []Row {
	text := strings.TrimSpace(string(bom.Clean(data)))
	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		return nil
	}

	header := splitLine(lines[0])

	rows := make([]Row, 0, len(lines)-1)
	for _, line := range lines[1:] {
		values := splitLine(line)
		if len(values) != len(header) {
			continue
		}
		row := make(Row, len(header))
		for i, name := range header {
			row[name] = values[i]
		}
		rows = append(rows, row)
	}

	return rows
}

// Splits a single line on commas, honoring double-quoted spans. Quote
// characters are carried through to cleanField, which strips them after
// trimming.
func splitLine(line string) []string {
	fields := []string{}
	var cur strings.Builder

	inQuotes := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				// Escaped quote inside a quoted span.
				cur.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
				cur.WriteByte(c)
			}
		case c == ',' && !inQuotes:
			fields = append(fields, cleanField(cur.String()))
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	fields = append(fields, cleanField(cur.String()))

	return fields
}

func cleanField(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return s
}
