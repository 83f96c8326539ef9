package machine

import (
	"errors"
	"fmt"
)

var (
	ErrUnmatchedLoopOpen  = errors.New("unmatched '['")
	ErrUnmatchedLoopClose = errors.New("unmatched ']'")
)

// JumpTable maps each loop instruction's program index to the index of its
// bracket partner. The table is symmetric: if jumps[a] == b then
// jumps[b] == a, and the '[' index is always the smaller of the pair.
type JumpTable map[int]int

// ResolveJumps scans the program once and pairs every '[' with its matching
// ']' using a bracket stack, so the executor can look jump targets up in
// O(1). An unbalanced program returns a nil table and an error wrapping
// ErrUnmatchedLoopOpen or ErrUnmatchedLoopClose; execution must not start
// on such a program.
func ResolveJumps(program []Instruction) (JumpTable, error) {
	jumps := make(JumpTable)
	var stack []int

	for i, op := range program {
		switch op {
		case OpLoopStart:
			stack = append(stack, i)
		case OpLoopEnd:
			if len(stack) == 0 {
				return nil, fmt.Errorf("instruction %d: %w", i, ErrUnmatchedLoopClose)
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			jumps[open] = i
			jumps[i] = open
		}
	}

	if len(stack) > 0 {
		return nil, fmt.Errorf("instruction %d: %w", stack[len(stack)-1], ErrUnmatchedLoopOpen)
	}
	return jumps, nil
}
