package inst

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFixture(t *testing.T) *Document {
	t.Helper()
	f, err := os.Open("testdata/opcodes.json")
	require.NoError(t, err)
	defer f.Close()

	doc, err := Decode(f)
	require.NoError(t, err)
	return doc
}

func TestDecodeKeepsKeyOrder(t *testing.T) {
	doc := loadFixture(t)

	var codes []string
	for _, row := range doc.Unprefixed {
		codes = append(codes, row.Code)
	}
	// 0x20 follows 0x3E in the fixture on purpose.
	assert.Equal(t, []string{
		"0x00", "0x01", "0x02", "0x22", "0x2A", "0x32", "0x3A", "0x3E", "0x20",
		"0xCB", "0xD3", "0xE0", "0xE2", "0xE3", "0xEA", "0xF8", "0xFF",
	}, codes)

	require.Len(t, doc.CBPrefixed, 4)
	assert.Equal(t, "0x7C", doc.Space(CBPrefixed)[2].Code)
}

func TestDecodeInstruction(t *testing.T) {
	doc := loadFixture(t)

	jr := doc.Unprefixed[8]
	require.Equal(t, "0x20", jr.Code)
	assert.Equal(t, "JR", jr.Instruction.Mnemonic)
	assert.Equal(t, 2, jr.Instruction.Bytes)
	assert.Equal(t, []int{12, 8}, jr.Instruction.Cycles)
	require.Len(t, jr.Instruction.Operands, 2)
	require.NotNil(t, jr.Instruction.Operands[1].Bytes)
	assert.Equal(t, 1, *jr.Instruction.Operands[1].Bytes)
	assert.Nil(t, jr.Instruction.Operands[0].Bytes)

	ld := doc.Unprefixed[5]
	assert.True(t, ld.Instruction.Operands[0].Indirect())
	assert.True(t, ld.Instruction.Operands[0].Decrement)
	assert.Equal(t, Flags{Z: "0", N: "0", H: "H", C: "C"}, doc.Unprefixed[15].Instruction.Flags)
}

func TestDecodeErrors(t *testing.T) {
	tests := map[string]string{
		"malformed":       `{"unprefixed": {`,
		"missing cb":      `{"unprefixed": {}}`,
		"missing plain":   `{"cbprefixed": {}}`,
		"table not obj":   `{"unprefixed": [], "cbprefixed": {}}`,
		"bad instruction": `{"unprefixed": {"0x00": {"bytes": "one"}}, "cbprefixed": {}}`,
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(data))
			require.Error(t, err)
		})
	}
}
