package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/dhamidi/sectsv/table"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(doc *table.Document) error
}

// Names lists the formats accepted by New.
var Names = []string{"json", "line", "text"}

// New returns the encoder registered under name.
func New(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "json":
		return NewJSONEncoder(w), nil
	case "line":
		return NewLineEncoder(w), nil
	case "text":
		return NewTextEncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", name)
	}
}

func write(w io.Writer, m encoding.TextMarshaler) error {
	text, err := m.MarshalText()
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}
