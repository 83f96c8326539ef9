// Package lexer turns brainfuck source text into an instruction sequence.
// Everything outside the eight-symbol alphabet is comment by definition and
// is dropped, so lexing never fails.
package lexer

import "gobf/pkg/machine"

// Lex filters source down to its recognized symbols, preserving their
// relative order. Non-program text yields a shorter (possibly empty)
// sequence.
func Lex(source string) []machine.Instruction {
	program := make([]machine.Instruction, 0, len(source))
	for i := 0; i < len(source); i++ {
		if op, ok := machine.FromSymbol(source[i]); ok {
			program = append(program, op)
		}
	}
	return program
}
