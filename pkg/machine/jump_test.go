package machine

import (
	"errors"
	"testing"
)

// lexRaw maps source text straight to instructions without resolving loops.
func lexRaw(src string) []Instruction {
	var prog []Instruction
	for i := 0; i < len(src); i++ {
		if op, ok := FromSymbol(src[i]); ok {
			prog = append(prog, op)
		}
	}
	return prog
}

func TestResolveJumpsNested(t *testing.T) {
	jumps, err := ResolveJumps(lexRaw("[[][]]"))
	if err != nil {
		t.Fatalf("ResolveJumps: %v", err)
	}

	want := JumpTable{0: 5, 5: 0, 1: 2, 2: 1, 3: 4, 4: 3}
	if len(jumps) != len(want) {
		t.Fatalf("expected %d entries, got %d: %v", len(want), len(jumps), jumps)
	}
	for from, to := range want {
		if jumps[from] != to {
			t.Errorf("jumps[%d] = %d, want %d", from, jumps[from], to)
		}
	}
}

func TestResolveJumpsSymmetric(t *testing.T) {
	prog := lexRaw("++[>[-]<[[]]-]")
	jumps, err := ResolveJumps(prog)
	if err != nil {
		t.Fatalf("ResolveJumps: %v", err)
	}

	for from, to := range jumps {
		if back, ok := jumps[to]; !ok || back != from {
			t.Errorf("mapping not symmetric: jumps[%d]=%d but jumps[%d]=%d", from, to, to, back)
		}
	}
	for i, op := range prog {
		if op != OpLoopStart {
			continue
		}
		to := jumps[i]
		if to <= i || prog[to] != OpLoopEnd {
			t.Errorf("loop-open %d must map to a later ']', got %d", i, to)
		}
	}
}

func TestResolveJumpsCoversEveryBracket(t *testing.T) {
	prog := lexRaw("+[>[+]][-]")
	jumps, err := ResolveJumps(prog)
	if err != nil {
		t.Fatalf("ResolveJumps: %v", err)
	}
	for i, op := range prog {
		if op != OpLoopStart && op != OpLoopEnd {
			continue
		}
		if _, ok := jumps[i]; !ok {
			t.Errorf("bracket at %d has no jump entry", i)
		}
	}
}

func TestResolveJumpsUnmatchedOpen(t *testing.T) {
	jumps, err := ResolveJumps(lexRaw("[[]"))
	if !errors.Is(err, ErrUnmatchedLoopOpen) {
		t.Fatalf("expected ErrUnmatchedLoopOpen, got %v", err)
	}
	if jumps != nil {
		t.Errorf("expected nil table on failure, got %v", jumps)
	}
}

func TestResolveJumpsUnmatchedClose(t *testing.T) {
	for _, src := range []string{"]", "[]]", "+]["} {
		jumps, err := ResolveJumps(lexRaw(src))
		if !errors.Is(err, ErrUnmatchedLoopClose) {
			t.Errorf("%q: expected ErrUnmatchedLoopClose, got %v", src, err)
		}
		if jumps != nil {
			t.Errorf("%q: expected nil table on failure, got %v", src, jumps)
		}
	}
}

func TestResolveJumpsNoLoops(t *testing.T) {
	jumps, err := ResolveJumps(lexRaw("+-<>.,"))
	if err != nil {
		t.Fatalf("ResolveJumps: %v", err)
	}
	if len(jumps) != 0 {
		t.Errorf("expected empty table, got %v", jumps)
	}
}
