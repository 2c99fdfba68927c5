package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/sectsv/table"
)

// LineEncoder writes one line per value:
//
//	<section>\t<row>\t<column>=<value>
//
// Rows are numbered from 0 within their section.
type LineEncoder struct {
	w   io.Writer
	doc *table.Document
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(doc *table.Document) error {
	e.doc = doc
	return write(e.w, e)
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	if e.doc == nil {
		return nil, nil
	}
	for _, s := range e.doc.Sections {
		for i, r := range s.Rows {
			for j, v := range r.Values {
				fmt.Fprintf(&sb, "%s\t%d\t%s=%s\n", s.Name, i, s.Columns[j], v)
			}
		}
	}
	return []byte(sb.String()), nil
}
