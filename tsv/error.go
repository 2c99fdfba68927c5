package tsv

// ErrorKind classifies a structural fault.
type ErrorKind int

const (
	NoError ErrorKind = iota
	NoSections
	SectionTooShort
	EmptySectionName
	NoColumns
	RowColumnCountMismatch
	IndexOutOfBounds
	AdvancedPastEnd
)

func (k ErrorKind) String() string {
	switch k {
	case NoError:
		return "no error"
	case NoSections:
		return "no sections"
	case SectionTooShort:
		return "section too short"
	case EmptySectionName:
		return "empty section name"
	case NoColumns:
		return "no columns"
	case RowColumnCountMismatch:
		return "row column count mismatch"
	case IndexOutOfBounds:
		return "index out of bounds"
	case AdvancedPastEnd:
		return "advanced past end"
	default:
		return "unknown"
	}
}

const (
	msgNoSections      = "no sections were found in the data"
	msgSectionTooShort = "not enough data to form a full section"
	msgEmptyName       = "empty section name"
	msgNoColumns       = "no columns in this section"
	msgColumnCount     = "incorrect number of columns for row"
	msgOutOfBounds     = "column request out of bounds"
	msgNoNextSection   = "tried to get the next section, but there is none"
	msgNoNextRow       = "tried to get the next row, but there is none"
)

// SharedError is the error cell shared by a Document and every Section and
// Row derived from it. The zero value is a clean cell.
//
// Once set, a SharedError stays set. A later fault overwrites the message,
// so the most recent write in program order is the one reported.
type SharedError struct {
	kind ErrorKind
	msg  string
}

// NewSharedError returns a clean error cell, for parsing a section or row
// outside of a Document.
func NewSharedError() *SharedError {
	return &SharedError{}
}

func (e *SharedError) set(kind ErrorKind, msg string) {
	e.kind = kind
	e.msg = msg
}

// IsSet reports whether a fault has been recorded.
func (e *SharedError) IsSet() bool {
	return e.kind != NoError
}

// Kind returns the last recorded fault, or NoError.
func (e *SharedError) Kind() ErrorKind {
	return e.kind
}

// String returns the message of the last recorded fault, or "".
func (e *SharedError) String() string {
	return e.msg
}
