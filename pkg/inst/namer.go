package inst

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrUnknownToken is returned for a token that is neither an immediate
// class, a literal address nor a plain register/mnemonic word.
var ErrUnknownToken = errors.New("unknown token")

// immediates folds immediate-class tokens to the name used in identifiers.
// 8-bit immediates, zero-page addresses and signed offsets are all one byte
// to a decoder and share a name.
var immediates = map[string]string{
	"n16":    "Imm16",
	"a16":    "Imm16",
	"n8":     "Imm8",
	"a8":     "Imm8",
	"e8":     "Imm8",
	"PREFIX": "CbPrefix",
}

var (
	literalRe = regexp.MustCompile(`^\$([0-9A-Fa-f]+)$`)
	wordRe    = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
)

// Name returns the identifier fragment for an operand token.
func Name(op Operand) (string, error) {
	if s, ok := immediates[op.Name]; ok {
		return s, nil
	}
	if m := literalRe.FindStringSubmatch(op.Name); m != nil {
		return m[1] + "h", nil
	}
	return capitalize(op.Name)
}

// Display returns the fragment used for an operand in documentation. It
// differs from Name only in leaving register and condition tokens as they
// are written in the table.
func Display(op Operand) string {
	if s, ok := immediates[op.Name]; ok {
		return s
	}
	if m := literalRe.FindStringSubmatch(op.Name); m != nil {
		return m[1] + "h"
	}
	return op.Name
}

// word names a mnemonic, which may itself be a reserved token.
func word(s string) (string, error) {
	if r, ok := immediates[s]; ok {
		return r, nil
	}
	return capitalize(s)
}

func capitalize(s string) (string, error) {
	if !wordRe.MatchString(s) {
		return "", fmt.Errorf("%w: %q", ErrUnknownToken, s)
	}
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[n:]), nil
}
