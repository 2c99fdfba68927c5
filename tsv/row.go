package tsv

// Row holds the tab-separated fields of one row line.
type Row struct {
	fields []string
	err    *SharedError
}

// ParseRow splits text into fields and checks that there are exactly
// expected of them. On a count mismatch the error is recorded but the
// fields are kept. A nil err is replaced by a fresh cell.
func ParseRow(text string, err *SharedError, expected int) *Row {
	if err == nil {
		err = NewSharedError()
	}
	if err.IsSet() {
		return &Row{err: err}
	}
	fields := split(text, fieldSeparator)
	if len(fields) != expected {
		err.set(RowColumnCountMismatch, msgColumnCount)
	}
	return &Row{fields: fields, err: err}
}

// Column returns the field at index i. An index outside the row records an
// error and returns "".
func (r *Row) Column(i int) string {
	if r.err.IsSet() {
		return ""
	}
	if i < 0 || i >= len(r.fields) {
		r.err.set(IndexOutOfBounds, msgOutOfBounds)
		return ""
	}
	return r.fields[i]
}

// Len returns the number of fields, or 0 in the error state.
func (r *Row) Len() int {
	if r.err.IsSet() {
		return 0
	}
	return len(r.fields)
}

func (r *Row) HasErr() bool {
	return r.err.IsSet()
}

func (r *Row) Err() string {
	return r.err.String()
}

// ErrKind returns the kind of the recorded fault, or NoError.
func (r *Row) ErrKind() ErrorKind {
	return r.err.Kind()
}
