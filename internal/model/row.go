package model

// RawRow is one header→value mapping produced by an import collaborator
// (CSV reader, OFX converter). Headers vary by source bank and are resolved
// through per-field preference lists during normalization.
type RawRow map[string]string

// First returns the value of the first header present in the row, even when
// that value is empty. This mirrors statement exports where a bank provides
// a "Debit Amount" column that may legitimately hold an empty cell.
func (r RawRow) First(headers ...string) string {
	for _, h := range headers {
		if value, ok := r[h]; ok {
			return value
		}
	}
	return ""
}

// FirstNonEmpty returns the first non-empty value among the given headers.
func (r RawRow) FirstNonEmpty(headers ...string) string {
	for _, h := range headers {
		if value := r[h]; value != "" {
			return value
		}
	}
	return ""
}
