package format

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dhamidi/sectsv/table"
)

// TextEncoder renders each section as an aligned table under its name.
type TextEncoder struct {
	w   io.Writer
	doc *table.Document
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(doc *table.Document) error {
	e.doc = doc
	return write(e.w, e)
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	if e.doc == nil {
		return nil, nil
	}
	for i, s := range e.doc.Sections {
		if i > 0 {
			buf.WriteString("\n")
		}
		fmt.Fprintf(&buf, "== %s\n", s.Name)
		tw := tabwriter.NewWriter(&buf, 0, 8, 2, ' ', 0)
		header := make([]string, len(s.Columns))
		for j, c := range s.Columns {
			header[j] = strings.ToUpper(c)
		}
		fmt.Fprintln(tw, strings.Join(header, "\t"))
		for _, r := range s.Rows {
			fmt.Fprintln(tw, strings.Join(r.Values, "\t"))
		}
		if err := tw.Flush(); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}
