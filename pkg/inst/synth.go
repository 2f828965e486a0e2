package inst

import (
	"fmt"
	"strings"
)

// Identifier synthesizes the enumeration identifier of an instruction: the
// capitalized mnemonic followed by every operand fragment in order, each
// suffixed with "Mem" when indirect, then "Add" or "Sub" for post
// increment or decrement. The suffix order is fixed; changing it would
// rename (or collide) existing identifiers.
func Identifier(in Instruction) (string, error) {
	var b strings.Builder

	base, err := word(in.Mnemonic)
	if err != nil {
		return "", fmt.Errorf("mnemonic: %w", err)
	}
	b.WriteString(base)

	for i, op := range in.Operands {
		frag, err := Name(op)
		if err != nil {
			return "", fmt.Errorf("%s operand %d: %w", in.Mnemonic, i, err)
		}
		b.WriteString(frag)
		if op.Indirect() {
			b.WriteString("Mem")
		}
		if op.Increment {
			b.WriteString("Add")
		}
		if op.Decrement {
			b.WriteString("Sub")
		}
	}
	return b.String(), nil
}
