// Package flatten converts arbitrarily nested detail records into flat rows
// suitable for tabular output. Nested object keys become dotted paths
// ("stats.hp"); list values are kept whole and serialized as JSON text.
package flatten

import (
	"sort"
	"strconv"

	"github.com/goccy/go-json"
)

// Record flattens one record into dotted-path keys with rendered cell values
func Record(record map[string]interface{}) map[string]string {
	flat := make(map[string]string, len(record))
	walk("", record, flat)
	return flat
}

func walk(prefix string, m map[string]interface{}, out map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]interface{}); ok {
			walk(key, nested, out)
			continue
		}
		out[key] = renderCell(v)
	}
}

// renderCell renders one scalar or list value as a CSV cell
func renderCell(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		// JSON numbers decode as float64; integral values must not grow
		// an exponent or a trailing ".0".
		return strconv.FormatFloat(val, 'f', -1, 64)
	case json.Number:
		return val.String()
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(data)
	}
}

// Table holds flattened rows and the union of their columns
type Table struct {
	// Columns is the sorted union of dotted paths across all rows.
	Columns []string
	// Rows preserves the input record order. A row may lack some columns.
	Rows []map[string]string
}

// NewTable flattens a sequence of records and computes the column union.
// Records need not share a schema; rows simply leave unknown columns empty.
func NewTable(records []map[string]interface{}) *Table {
	t := &Table{Rows: make([]map[string]string, 0, len(records))}

	seen := make(map[string]struct{})
	for _, record := range records {
		row := Record(record)
		t.Rows = append(t.Rows, row)
		for col := range row {
			if _, ok := seen[col]; !ok {
				seen[col] = struct{}{}
				t.Columns = append(t.Columns, col)
			}
		}
	}
	sort.Strings(t.Columns)

	return t
}

// Cell returns the value at (row, column), or "" when the row lacks the column
func (t *Table) Cell(row int, column string) string {
	return t.Rows[row][column]
}
