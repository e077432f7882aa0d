// Package ingest decodes the batch input files into untyped tables. Decoders
// stop at structure: column names and string cells. Validation and type
// coercion belong to the normalizer.
package ingest

// RawTable is the decoded but still untyped form of one input file.
type RawTable struct {
	Source  string // file the table came from, for error messages
	Columns []string
	Rows    []RawRow
}

// RawRow is one record plus its 1-based position in the source file, so
// downstream errors can point at the offending record.
type RawRow struct {
	Index  int
	Values map[string]string
}

// HasColumn reports whether the table's header carries the named column.
func (t *RawTable) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}
