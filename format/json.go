package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/sectsv/table"
)

type JSONEncoder struct {
	w   io.Writer
	doc *table.Document
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(doc *table.Document) error {
	e.doc = doc
	return write(e.w, e)
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(e.buildDocumentData(), "", "  ")
}

type jsonDocument struct {
	Sections []jsonSection `json:"sections"`
}

type jsonSection struct {
	Name    string     `json:"name"`
	Line    int        `json:"line"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

func (e *JSONEncoder) buildDocumentData() jsonDocument {
	data := jsonDocument{Sections: []jsonSection{}}
	if e.doc == nil {
		return data
	}
	for _, s := range e.doc.Sections {
		section := jsonSection{
			Name:    s.Name,
			Line:    s.Line,
			Columns: s.Columns,
			Rows:    make([][]string, 0, len(s.Rows)),
		}
		for _, r := range s.Rows {
			section.Rows = append(section.Rows, r.Values)
		}
		data.Sections = append(data.Sections, section)
	}
	return data
}
