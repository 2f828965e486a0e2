package inst

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrDuplicateIdentifier is returned when two opcodes of a code space
	// synthesize the same identifier.
	ErrDuplicateIdentifier = errors.New("duplicate identifier")
	// ErrDuplicateOpcode is returned when an opcode value occurs twice.
	ErrDuplicateOpcode = errors.New("duplicate opcode")
	// ErrInvalidOpcode is returned for a key that is not a single-byte number.
	ErrInvalidOpcode = errors.New("invalid opcode")
)

// DuplicatePolicy selects what Build does when an identifier repeats.
type DuplicatePolicy uint8

const (
	DuplicateError   DuplicatePolicy = iota // fail the build
	DuplicateReplace                        // later opcode replaces the earlier entry in place
)

// Entry is the normalized form of one retained instruction.
type Entry struct {
	Identifier  string
	Code        string // opcode literal as written in the source, e.g. "0x3E"
	Value       uint8
	Instruction string // mnemonic text, e.g. "LD"
	Operands    []Operand
	Cycles      []int
	Flags       Flags
	Bytes       int
}

// Catalog is an insertion-ordered mapping from identifier to Entry for one
// code space.
type Catalog struct {
	Space   CodeSpace
	Dropped []string // codes of illegal opcodes that were left out

	entries []Entry
	index   map[string]int
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns the entries in declaration order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Identifiers returns the identifiers in declaration order.
func (c *Catalog) Identifiers() []string {
	out := make([]string, len(c.entries))
	for i := range c.entries {
		out[i] = c.entries[i].Identifier
	}
	return out
}

// Lookup returns the entry with the given identifier.
func (c *Catalog) Lookup(id string) (Entry, bool) {
	i, ok := c.index[id]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Illegal reports whether an identifier names an undefined opcode.
func Illegal(id string) bool {
	return strings.Contains(strings.ToLower(id), "illegal")
}

// Build catalogs a code space table in row order. Illegal opcodes are
// dropped from the unprefixed space only.
func Build(t Table, space CodeSpace, policy DuplicatePolicy) (*Catalog, error) {
	c := &Catalog{
		Space:   space,
		entries: make([]Entry, 0, len(t)),
		index:   make(map[string]int, len(t)),
	}
	owner := make(map[uint8]string, len(t)) // opcode value -> identifier

	for _, row := range t {
		id, err := Identifier(row.Instruction)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", space, row.Code, err)
		}
		if space == Unprefixed && Illegal(id) {
			c.Dropped = append(c.Dropped, row.Code)
			continue
		}

		v, err := strconv.ParseUint(row.Code, 0, 8)
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %q", space, ErrInvalidOpcode, row.Code)
		}
		value := uint8(v)
		if prev, ok := owner[value]; ok {
			return nil, fmt.Errorf("%s: %w: %s is used by %s and %s", space, ErrDuplicateOpcode, row.Code, prev, id)
		}

		e := Entry{
			Identifier:  id,
			Code:        row.Code,
			Value:       value,
			Instruction: row.Instruction.Mnemonic,
			Operands:    row.Instruction.Operands,
			Cycles:      row.Instruction.Cycles,
			Flags:       row.Instruction.Flags,
			Bytes:       row.Instruction.Bytes,
		}

		if i, ok := c.index[id]; ok {
			if policy != DuplicateReplace {
				return nil, fmt.Errorf("%s: %w: %s for %s and %s", space, ErrDuplicateIdentifier, id, c.entries[i].Code, row.Code)
			}
			delete(owner, c.entries[i].Value)
			c.entries[i] = e
		} else {
			c.index[id] = len(c.entries)
			c.entries = append(c.entries, e)
		}
		owner[value] = id
	}
	return c, nil
}
