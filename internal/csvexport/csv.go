// Package csvexport serializes admin form submissions to CSV.
//
// The format is fixed by the downstream spreadsheet tooling: the header line
// is emitted verbatim and unquoted, every data field is double-quoted with
// embedded quotes doubled, array values are joined with "; ", and a dotted
// header resolves one level of nesting with a missing value emitted as "".
// The writer is hand-rolled because encoding/csv quotes only when necessary
// and cannot reproduce this byte layout.
package csvexport

import (
	"fmt"
	"strings"
)

// Row is one record to serialize. Nested values sit under their parent key as
// another Row.
type Row = map[string]any

// Marshal renders rows under the given ordered header list. It is a pure
// function: the same rows and headers always produce byte-identical output.
func Marshal(rows []Row, headers []string) string {
	var b strings.Builder

	b.WriteString(strings.Join(headers, ","))
	b.WriteByte('\n')

	for _, row := range rows {
		for i, header := range headers {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(field(row, header))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// field resolves and quotes a single value.
func field(row Row, header string) string {
	value, ok := resolve(row, header)
	if !ok {
		return `""`
	}

	switch v := value.(type) {
	case []string:
		return quote(strings.Join(v, "; "))
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = stringify(item)
		}
		return quote(strings.Join(parts, "; "))
	default:
		return quote(stringify(v))
	}
}

// resolve looks a header path up in the row, following at most one dotted
// level. A missing parent or child reports ok=false.
func resolve(row Row, header string) (any, bool) {
	parent, child, nested := strings.Cut(header, ".")
	if !nested {
		v, ok := row[header]
		return v, ok
	}

	inner, ok := row[parent].(Row)
	if !ok {
		return nil, false
	}
	v, ok := inner[child]
	return v, ok
}

// stringify renders a scalar; nil (and typed nil pointers) become the empty
// string.
func stringify(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case *string:
		if s == nil {
			return ""
		}
		return *s
	default:
		return fmt.Sprint(v)
	}
}

// quote wraps a value in double quotes, doubling any embedded quotes.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
