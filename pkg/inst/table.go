package inst

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	json "github.com/nspcc-dev/go-ordered-json"
)

// Row pairs an opcode key, exactly as written in the source, with its
// instruction.
type Row struct {
	Code        string
	Instruction Instruction
}

// Table holds the rows of one code space in source key order.
type Table []Row

// Document is a decoded Opcodes.json.
type Document struct {
	Unprefixed Table
	CBPrefixed Table
}

// Space returns the table of the given code space.
func (d *Document) Space(s CodeSpace) Table {
	if s == CBPrefixed {
		return d.CBPrefixed
	}
	return d.Unprefixed
}

// Decode reads an Opcodes.json document. Key order of both code space
// objects is kept, since it decides declaration order in the output.
func Decode(r io.Reader) (*Document, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}

	var doc Document
	for _, s := range CodeSpaces() {
		data, ok := raw[s.String()]
		if !ok {
			return nil, fmt.Errorf("document has no %q table", s)
		}
		t, err := decodeTable(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s, err)
		}
		if s == CBPrefixed {
			doc.CBPrefixed = t
		} else {
			doc.Unprefixed = t
		}
	}
	return &doc, nil
}

func decodeTable(data []byte) (Table, error) {
	d := json.NewDecoder(bytes.NewReader(data))
	d.UseOrderedObject()

	var v interface{}
	if err := d.Decode(&v); err != nil {
		return nil, err
	}
	obj, ok := v.(json.OrderedObject)
	if !ok {
		return nil, errors.New("table is not an object")
	}

	var byCode map[string]Instruction
	if err := json.Unmarshal(data, &byCode); err != nil {
		return nil, err
	}

	t := make(Table, 0, len(obj))
	for i := range obj {
		t = append(t, Row{Code: obj[i].Key, Instruction: byCode[obj[i].Key]})
	}
	return t, nil
}
