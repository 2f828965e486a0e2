package inst

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestName(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		// Immediate classes.
		{"n16", "Imm16"},
		{"a16", "Imm16"},
		{"n8", "Imm8"},
		{"a8", "Imm8"},
		{"e8", "Imm8"},
		{"PREFIX", "CbPrefix"},
		// Literal addresses.
		{"$38", "38h"},
		{"$00", "00h"},
		{"$FF", "FFh"},
		// Registers, conditions and bit indexes.
		{"bc", "Bc"},
		{"HL", "Hl"},
		{"A", "A"},
		{"NZ", "Nz"},
		{"7", "7"},
	}

	for _, tc := range tests {
		t.Run(tc.token, func(t *testing.T) {
			got, err := Name(Operand{Name: tc.token, Immediate: true})
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNameUnknownToken(t *testing.T) {
	for _, token := range []string{"", "SP+e8", "(HL)", "$", "$xyz", "HL-"} {
		_, err := Name(Operand{Name: token})
		assert.ErrorIs(t, err, ErrUnknownToken, "token %q", token)
	}
}

func TestDisplay(t *testing.T) {
	tests := map[string]string{
		"n16": "Imm16",
		"a8":  "Imm8",
		"$08": "08h",
		"HL":  "HL",
		"NC":  "NC",
	}
	for token, want := range tests {
		assert.Equal(t, want, Display(Operand{Name: token}), "token %q", token)
	}
}
