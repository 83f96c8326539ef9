package machine

// Instruction is one of the eight brainfuck operations. Instructions carry
// no operands; the variant alone determines the effect.
type Instruction byte

const (
	OpRight Instruction = iota // > move data pointer right
	OpLeft                     // < move data pointer left
	OpInc                      // + increment current cell
	OpDec                      // - decrement current cell
	OpOut                      // . emit current cell as one byte
	OpIn                       // , read one byte into current cell
	OpLoopStart                // [ jump past matching ] when cell is zero
	OpLoopEnd                  // ] jump back to matching [ when cell is non-zero
)

// FromSymbol maps a source character to its instruction. ok is false for
// every character outside the eight-symbol alphabet.
func FromSymbol(c byte) (Instruction, bool) {
	switch c {
	case '>':
		return OpRight, true
	case '<':
		return OpLeft, true
	case '+':
		return OpInc, true
	case '-':
		return OpDec, true
	case '.':
		return OpOut, true
	case ',':
		return OpIn, true
	case '[':
		return OpLoopStart, true
	case ']':
		return OpLoopEnd, true
	}
	return 0, false
}

// Symbol returns the source character for the instruction.
func (op Instruction) Symbol() byte {
	switch op {
	case OpRight:
		return '>'
	case OpLeft:
		return '<'
	case OpInc:
		return '+'
	case OpDec:
		return '-'
	case OpOut:
		return '.'
	case OpIn:
		return ','
	case OpLoopStart:
		return '['
	case OpLoopEnd:
		return ']'
	}
	return '?'
}

func (op Instruction) String() string {
	return string(op.Symbol())
}
