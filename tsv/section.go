package tsv

// Section is a cursor over the rows of one section.
type Section struct {
	name    string
	columns []string
	rows    []string
	cur     int
	err     *SharedError
}

// ParseSection parses the text of a single section: a name line, a line of
// tab-separated column names and the row lines that follow.
//
// If err is already set the returned Section is empty and text is not
// looked at. Otherwise every structural check runs against whatever lines
// exist, and a failing check overwrites the message of an earlier one.
// A nil err is replaced by a fresh cell.
func ParseSection(text string, err *SharedError) *Section {
	if err == nil {
		err = NewSharedError()
	}
	s := &Section{cur: -1, err: err}
	if err.IsSet() {
		return s
	}

	lines := split(text, lineSeparator)
	if len(lines) < 3 {
		err.set(SectionTooShort, msgSectionTooShort)
	}
	if len(lines) > 0 {
		s.name = lines[0]
	}
	if s.name == "" {
		err.set(EmptySectionName, msgEmptyName)
	}
	if len(lines) > 1 {
		s.columns = split(lines[1], fieldSeparator)
	}
	if len(s.columns) == 0 {
		err.set(NoColumns, msgNoColumns)
	}
	if len(lines) > 2 {
		s.rows = lines[2:]
	}
	return s
}

// Name returns the section name, or "" in the error state.
func (s *Section) Name() string {
	if s.err.IsSet() {
		return ""
	}
	return s.name
}

// ColumnNames returns the column names in order. Names need not be unique.
// It returns nil in the error state.
func (s *Section) ColumnNames() []string {
	if s.err.IsSet() {
		return nil
	}
	cols := make([]string, len(s.columns))
	copy(cols, s.columns)
	return cols
}

// HasNext reports whether Next would return another row.
func (s *Section) HasNext() bool {
	if s.err.IsSet() {
		return false
	}
	return s.cur+1 < len(s.rows)
}

// Next advances to the next row and parses it against the section's column
// count. Calling Next when HasNext is false records an error.
func (s *Section) Next() *Row {
	if s.err.IsSet() {
		return ParseRow("", s.err, 0)
	}
	if !s.HasNext() {
		s.err.set(AdvancedPastEnd, msgNoNextRow)
		return ParseRow("", s.err, 0)
	}
	s.cur++
	return ParseRow(s.rows[s.cur], s.err, len(s.columns))
}

func (s *Section) HasErr() bool {
	return s.err.IsSet()
}

func (s *Section) Err() string {
	return s.err.String()
}

// ErrKind returns the kind of the recorded fault, or NoError.
func (s *Section) ErrKind() ErrorKind {
	return s.err.Kind()
}
