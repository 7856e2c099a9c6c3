// Package encode maps nucleotide symbols to the small-integer alphabet the
// sequence classifier consumes: A→1, C→2, G→3, T→4 (case-insensitive).
// Zero is reserved as the padding sentinel, so no symbol maps to it.
package encode

import "fmt"

// codes is a 256-entry lookup; zero means "not encodable".
var codes [256]int

func init() {
	codes['A'], codes['a'] = 1, 1
	codes['C'], codes['c'] = 2, 2
	codes['G'], codes['g'] = 3, 3
	codes['T'], codes['t'] = 4, 4
}

// UnknownSymbolError reports the first symbol outside {A,C,G,T} met during
// encoding. Encoding ambiguity codes would silently corrupt a trained model,
// so this is a hard failure; strip ambiguous bases upstream (see clean).
type UnknownSymbolError struct {
	Pos    int
	Symbol byte
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("encode: symbol %q at position %d is not in the A/C/G/T alphabet", e.Symbol, e.Pos)
}

// Seq encodes a nucleotide sequence. The output has the same length as the
// input and position i of the output corresponds to position i of the input.
func Seq(seq []byte) ([]int, error) {
	out := make([]int, len(seq))
	for i, b := range seq {
		c := codes[b]
		if c == 0 {
			return nil, &UnknownSymbolError{Pos: i, Symbol: b}
		}
		out[i] = c
	}
	return out, nil
}

// String is the convenience form of Seq for string-typed sequences.
func String(seq string) ([]int, error) { return Seq([]byte(seq)) }
