package inst

// CodeSpace identifies one of the two single-byte opcode numbering domains.
type CodeSpace uint8

const (
	Unprefixed CodeSpace = iota // plain opcodes
	CBPrefixed                  // opcodes following the 0xCB prefix byte

	CodeSpaceCount = 2
)

// CodeSpaces lists every code space in output order.
func CodeSpaces() []CodeSpace {
	return []CodeSpace{Unprefixed, CBPrefixed}
}

// String returns the key the code space is stored under in Opcodes.json.
func (s CodeSpace) String() string {
	switch s {
	case Unprefixed:
		return "unprefixed"
	case CBPrefixed:
		return "cbprefixed"
	}
	return "unknown"
}

// Operand is one argument of an instruction as described by the source table.
type Operand struct {
	Name      string `json:"name"`
	Bytes     *int   `json:"bytes,omitempty"`
	Immediate bool   `json:"immediate"`
	Increment bool   `json:"increment,omitempty"`
	Decrement bool   `json:"decrement,omitempty"`
}

// Indirect reports whether the operand is a memory access through its name.
func (o Operand) Indirect() bool {
	return !o.Immediate
}

// Flags holds the symbolic effect of an instruction on each CPU flag
// ("-" unaffected, "0" reset, "1" set, or the flag name when it depends on
// the result).
type Flags struct {
	Z string `json:"Z"`
	N string `json:"N"`
	H string `json:"H"`
	C string `json:"C"`
}

// Instruction is a raw Opcodes.json record for a single opcode value.
type Instruction struct {
	Mnemonic  string    `json:"mnemonic"`
	Bytes     int       `json:"bytes"`
	Cycles    []int     `json:"cycles"` // branch taken first when there are two
	Operands  []Operand `json:"operands"`
	Immediate bool      `json:"immediate"`
	Flags     Flags     `json:"flags"`
}
