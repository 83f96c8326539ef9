package machine

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// TapeSize is the number of memory cells available to a program.
const TapeSize = 30000

var (
	ErrPointerOutOfBounds = errors.New("data pointer out of bounds")
	ErrInputExhausted     = errors.New("input exhausted")

	// ErrNoInput may be returned by a Machine's Input reader to signal that
	// no byte is available yet. The machine parks in the Waiting state
	// instead of failing; stepping resumes the read once the source has
	// data. Sources that block (files, stdin) never need it.
	ErrNoInput = errors.New("no input available")
)

// Machine executes a resolved brainfuck program against a fixed-size byte
// tape. It owns all runtime state; one Machine runs one program, and
// instances are not safe for concurrent use.
type Machine struct {
	Tape []byte
	Ptr  int
	PC   int

	Halted  bool
	Waiting bool
	Steps   int

	// Input supplies bytes for ',' instructions. If nil, os.Stdin is used.
	Input io.Reader
	// Output receives one byte per '.' instruction. If nil, os.Stdout is used.
	Output io.Writer

	// ZeroOnEOF selects the input-exhaustion policy: when true, a ','
	// executed after end of input stores 0; when false (the default),
	// the machine fails with ErrInputExhausted.
	ZeroOnEOF bool

	program []Instruction
	jumps   JumpTable

	inBuf  [1]byte
	outBuf [1]byte
}

// New creates a machine for a program and its resolved jump table, with a
// zeroed tape and the data pointer at cell 0.
func New(program []Instruction, jumps JumpTable) *Machine {
	return &Machine{
		Tape:    make([]byte, TapeSize),
		program: program,
		jumps:   jumps,
	}
}

func (m *Machine) inputSource() io.Reader {
	if m.Input != nil {
		return m.Input
	}
	return os.Stdin
}

func (m *Machine) outputSink() io.Writer {
	if m.Output != nil {
		return m.Output
	}
	return os.Stdout
}

// Program returns the instruction sequence the machine was created with.
func (m *Machine) Program() []Instruction {
	return m.program
}

// readByte reads exactly one input byte, retrying short reads. ErrNoInput
// and io.EOF propagate to the dispatch loop.
func (m *Machine) readByte() (byte, error) {
	for {
		n, err := m.inputSource().Read(m.inBuf[:])
		if n > 0 {
			return m.inBuf[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}

// Step executes the instruction at PC and reports whether the program has
// halted. A step that cannot obtain input from an ErrNoInput source sets
// Waiting and leaves PC (and the step count) untouched.
func (m *Machine) Step() (bool, error) {
	if m.Halted {
		return true, nil
	}
	if m.PC >= len(m.program) {
		m.Halted = true
		return true, nil
	}

	switch m.program[m.PC] {
	case OpRight:
		if m.Ptr+1 >= len(m.Tape) {
			return false, fmt.Errorf("instruction %d: %w", m.PC, ErrPointerOutOfBounds)
		}
		m.Ptr++

	case OpLeft:
		if m.Ptr == 0 {
			return false, fmt.Errorf("instruction %d: %w", m.PC, ErrPointerOutOfBounds)
		}
		m.Ptr--

	case OpInc:
		m.Tape[m.Ptr]++

	case OpDec:
		m.Tape[m.Ptr]--

	case OpOut:
		m.outBuf[0] = m.Tape[m.Ptr]
		if _, err := m.outputSink().Write(m.outBuf[:]); err != nil {
			return false, fmt.Errorf("instruction %d: write output: %w", m.PC, err)
		}

	case OpIn:
		b, err := m.readByte()
		switch {
		case err == nil:
			m.Tape[m.Ptr] = b
			m.Waiting = false
		case errors.Is(err, ErrNoInput):
			m.Waiting = true
			return false, nil
		case errors.Is(err, io.EOF):
			if !m.ZeroOnEOF {
				return false, fmt.Errorf("instruction %d: %w", m.PC, ErrInputExhausted)
			}
			m.Tape[m.Ptr] = 0
		default:
			return false, fmt.Errorf("instruction %d: read input: %w", m.PC, err)
		}

	case OpLoopStart:
		if m.Tape[m.Ptr] == 0 {
			m.PC = m.jumps[m.PC]
		}

	case OpLoopEnd:
		if m.Tape[m.Ptr] != 0 {
			m.PC = m.jumps[m.PC]
		}
	}

	// A taken jump lands on the instruction after the bracket partner.
	m.PC++
	m.Steps++
	if m.PC >= len(m.program) {
		m.Halted = true
	}
	return m.Halted, nil
}

// RunUntilDone steps until the program halts, parks waiting for input, or
// fails. A nil return with Waiting set means the input source had no byte
// available; callers that feed input incrementally resume by stepping again.
func (m *Machine) RunUntilDone() error {
	for {
		done, err := m.Step()
		if err != nil {
			return err
		}
		if done || m.Waiting {
			return nil
		}
	}
}

// RunSteps executes at most n instructions and reports whether the program
// halted within that budget. Used to bound non-terminating programs.
func (m *Machine) RunSteps(n int) (bool, error) {
	for i := 0; i < n; i++ {
		done, err := m.Step()
		if err != nil || done {
			return done, err
		}
		if m.Waiting {
			return false, nil
		}
	}
	return m.Halted, nil
}

// Execute runs a resolved program to completion against the given byte
// source and sink.
func Execute(program []Instruction, jumps JumpTable, in io.Reader, out io.Writer) error {
	m := New(program, jumps)
	m.Input = in
	m.Output = out
	return m.RunUntilDone()
}
