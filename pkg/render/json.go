package render

import (
	json "github.com/nspcc-dev/go-ordered-json"

	"github.com/oisee/gbopcodes/pkg/inst"
)

type entryJSON struct {
	Code        string         `json:"code"`
	Instruction string         `json:"instruction"`
	Summary     string         `json:"summary"`
	Operands    []inst.Operand `json:"operands"`
	Cycles      []int          `json:"cycles"`
	Flags       inst.Flags     `json:"flags"`
	Bytes       int            `json:"bytes"`
}

// JSON exports catalogs as one object keyed by code space, each holding its
// entries keyed by identifier in declaration order.
func JSON(catalogs ...*inst.Catalog) ([]byte, error) {
	doc := make(json.OrderedObject, 0, len(catalogs))
	for _, c := range catalogs {
		entries := make(json.OrderedObject, 0, c.Len())
		for _, e := range c.Entries() {
			ops := e.Operands
			if ops == nil {
				ops = []inst.Operand{}
			}
			entries = append(entries, json.Member{Key: e.Identifier, Value: entryJSON{
				Code:        e.Code,
				Instruction: e.Instruction,
				Summary:     Summary(e.Instruction, e.Operands),
				Operands:    ops,
				Cycles:      e.Cycles,
				Flags:       e.Flags,
				Bytes:       e.Bytes,
			}})
		}
		doc = append(doc, json.Member{Key: c.Space.String(), Value: entries})
	}
	return json.MarshalIndent(doc, "", "  ")
}
