// Package render turns instruction catalogs into source text.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/oisee/gbopcodes/pkg/inst"
)

const indent = "    "

type declaration struct {
	name   string
	header []string
}

// declarations is indexed by code space and never modified.
var declarations = [inst.CodeSpaceCount]declaration{
	inst.Unprefixed: {
		name: "OpCode",
		header: []string{
			"/// List of Instructions OpCodes on GameBoy Specification, this was taken from",
			"/// various places, mostly from:",
			"///",
			"/// [GBDEV Pandocs](https://gbdev.io/pandocs/CPU_Instruction_Set.html)",
			"/// [GBDEV Instruction set table](https://gbdev.io/gb-opcodes/optables/)",
			"/// [GB Programmer Manual](https://archive.org/details/GameBoyProgManVer1.1/page/n114/mode/1up?view=theater&q=instruction)",
		},
	},
	inst.CBPrefixed: {
		name: "CBOpCode",
		header: []string{
			"/// List of Instructions CB prefixed OpCodes on GameBoy Specification, this was",
			"/// taken from various places, mostly from:",
			"///",
			"/// [GBDEV Pandocs](https://gbdev.io/pandocs/CPU_Instruction_Set.html)",
			"/// [GBDEV Instruction set table](https://gbdev.io/gb-opcodes/optables/)",
			"/// [GB Programmer Manual](https://archive.org/details/GameBoyProgManVer1.1/page/n114/mode/1up?view=theater&q=instruction)",
		},
	},
}

// EnumName returns the Zig declaration name used for a code space.
func EnumName(s inst.CodeSpace) string {
	return declarations[s].name
}

// Zig renders a catalog as a documented Zig enum declaration. The result
// has no trailing newline.
func Zig(c *inst.Catalog) string {
	d := declarations[c.Space]

	lines := make([]string, 0, len(d.header)+2+6*c.Len())
	lines = append(lines, d.header...)
	lines = append(lines, fmt.Sprintf("pub const %s = enum(u8) {", d.name))
	for _, e := range c.Entries() {
		lines = appendEntry(lines, e)
	}
	lines = append(lines, "};")

	return strings.Join(lines, "\n")
}

// Document renders the unprefixed and CB-prefixed catalogs as one file
// body, separated by a blank line.
func Document(unprefixed, cbprefixed *inst.Catalog) string {
	return Zig(unprefixed) + "\n\n" + Zig(cbprefixed)
}

func appendEntry(lines []string, e inst.Entry) []string {
	cycles := make([]string, len(e.Cycles))
	for i, c := range e.Cycles {
		cycles[i] = strconv.Itoa(c)
	}
	f := e.Flags

	return append(lines,
		indent+"/// "+Summary(e.Instruction, e.Operands),
		fmt.Sprintf("%s/// Bytes: %d", indent, e.Bytes),
		indent+"/// Cycles: "+strings.Join(cycles, ", "),
		indent+"/// Flags:",
		fmt.Sprintf("%s/// Z: %s, N: %s, H: %s, C: %s", indent, f.Z, f.N, f.H, f.C),
		fmt.Sprintf("%s%s = %s,", indent, e.Identifier, e.Code),
	)
}

// Summary returns the assembly-like line documenting an instruction, e.g.
// "LD [HL-], A". Indirect operands are bracketed and carry a trailing + or -
// for post increment or decrement.
func Summary(mnemonic string, ops []inst.Operand) string {
	if len(ops) == 0 {
		return mnemonic
	}

	parts := make([]string, len(ops))
	for i, op := range ops {
		var b strings.Builder
		if op.Indirect() {
			b.WriteByte('[')
		}
		b.WriteString(inst.Display(op))
		if op.Increment {
			b.WriteByte('+')
		}
		if op.Decrement {
			b.WriteByte('-')
		}
		if op.Indirect() {
			b.WriteByte(']')
		}
		parts[i] = b.String()
	}
	return mnemonic + " " + strings.Join(parts, ", ")
}
