// Package table reads a whole document through the tsv cursors and keeps
// the result in memory, together with the source line of every section and
// row.
package table

import (
	"fmt"

	"github.com/dhamidi/sectsv/tsv"
)

type Document struct {
	Sections []*Section
}

type Section struct {
	Name    string
	Columns []string
	Rows    []*Row
	Line    int // line of the section name, 1-based
}

type Row struct {
	Values []string
	Line   int
}

// Index returns the position of the first column called name, or -1.
func (s *Section) Index(name string) int {
	for i, c := range s.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Value returns the value of the named column in row, or "" and false if
// the section has no such column.
func (s *Section) Value(row *Row, name string) (string, bool) {
	i := s.Index(name)
	if i < 0 || i >= len(row.Values) {
		return "", false
	}
	return row.Values[i], true
}

// Section returns the first section called name, or nil.
func (d *Document) Section(name string) *Section {
	for _, s := range d.Sections {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// ParseError reports the first structural fault of a document and where it
// was found.
type ParseError struct {
	Line    int
	Section string // name of the last section read successfully, if any
	Kind    tsv.ErrorKind
	Message string
}

func (e *ParseError) Error() string {
	if e.Section != "" {
		return fmt.Sprintf("line %d: section %q: %s", e.Line, e.Section, e.Message)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

type options struct {
	limit int
}

type Option func(*options)

// WithLimit stops reading after n sections. Sections past the limit are
// never validated.
func WithLimit(n int) Option {
	return func(o *options) {
		o.limit = n
	}
}

// Read parses text into a Document. On the first structural fault it
// returns a *ParseError along with the sections read before the fault.
func Read(text string, opts ...Option) (*Document, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	doc := &Document{}
	cursor := tsv.Parse(text)
	line := 1
	lastName := ""

	fail := func(at int) (*Document, error) {
		return doc, &ParseError{
			Line:    at,
			Section: lastName,
			Kind:    cursor.ErrKind(),
			Message: cursor.Err(),
		}
	}

	if cursor.HasErr() {
		return fail(line)
	}

	for cursor.HasNext() {
		if o.limit > 0 && len(doc.Sections) >= o.limit {
			break
		}
		sc := cursor.Next()
		if sc.HasErr() {
			return fail(line)
		}
		section := &Section{
			Name:    sc.Name(),
			Columns: sc.ColumnNames(),
			Line:    line,
		}

		rowLine := line + 2
		for sc.HasNext() {
			rc := sc.Next()
			if rc.HasErr() {
				return fail(rowLine)
			}
			values := make([]string, len(section.Columns))
			for i := range values {
				values[i] = rc.Column(i)
			}
			section.Rows = append(section.Rows, &Row{Values: values, Line: rowLine})
			rowLine++
		}
		doc.Sections = append(doc.Sections, section)
		lastName = section.Name

		// rowLine is now the line after the last row, which is the blank
		// separator line.
		line = rowLine + 1
	}
	return doc, nil
}
