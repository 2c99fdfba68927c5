package tsv

// Document is a cursor over the sections of a document.
type Document struct {
	sections []string
	cur      int
	err      *SharedError
}

// Parse splits text into section texts. No section is validated until it is
// requested with Next. If text holds no sections the returned Document is
// already in the error state.
func Parse(text string) *Document {
	d := &Document{
		sections: split(text, sectionSeparator),
		cur:      -1,
		err:      NewSharedError(),
	}
	if len(d.sections) == 0 {
		d.err.set(NoSections, msgNoSections)
	}
	return d
}

// HasNext reports whether Next would return another section.
func (d *Document) HasNext() bool {
	if d.err.IsSet() {
		return false
	}
	return d.cur+1 < len(d.sections)
}

// Next advances to the next section and parses it. Calling Next when
// HasNext is false records an error. Once the document is in the error state
// the returned Section is empty.
func (d *Document) Next() *Section {
	if d.err.IsSet() {
		return ParseSection("", d.err)
	}
	if !d.HasNext() {
		d.err.set(AdvancedPastEnd, msgNoNextSection)
		return ParseSection("", d.err)
	}
	d.cur++
	return ParseSection(d.sections[d.cur], d.err)
}

// Len returns the number of section texts found by Parse.
func (d *Document) Len() int {
	return len(d.sections)
}

func (d *Document) HasErr() bool {
	return d.err.IsSet()
}

func (d *Document) Err() string {
	return d.err.String()
}

// ErrKind returns the kind of the recorded fault, or NoError.
func (d *Document) ErrKind() ErrorKind {
	return d.err.Kind()
}
