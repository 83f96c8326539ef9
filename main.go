//go:build !js

package main

import (
	_ "embed"
	"flag"
	"fmt"
	"os"

	"gobf/pkg/lexer"
	"gobf/pkg/machine"
)

//go:embed examples/hello.bf
var helloProgram string

func main() {
	inPath := flag.String("in", "", "brainfuck source file path")
	expr := flag.String("e", "", "inline brainfuck program text")
	eofZero := flag.Bool("eof-zero", false, "store 0 on ',' at end of input instead of failing")
	maxSteps := flag.Int("max-steps", 0, "abort after this many instructions (0 = unlimited)")
	flag.Parse()

	if *inPath != "" && *expr != "" {
		fmt.Fprintln(os.Stderr, "use either -in or -e, not both")
		os.Exit(2)
	}

	source := helloProgram
	switch {
	case *expr != "":
		source = *expr
	case *inPath != "":
		data, err := os.ReadFile(*inPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read source file %q: %v\n", *inPath, err)
			os.Exit(1)
		}
		source = string(data)
	}

	program := lexer.Lex(source)
	jumps, err := machine.ResolveJumps(program)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid program: %v\n", err)
		os.Exit(1)
	}

	m := machine.New(program, jumps)
	m.ZeroOnEOF = *eofZero

	if *maxSteps > 0 {
		done, err := m.RunSteps(*maxSteps)
		if err != nil {
			fmt.Fprintf(os.Stderr, "runtime error: %v\n", err)
			os.Exit(1)
		}
		if !done {
			fmt.Fprintf(os.Stderr, "program did not halt within %d steps\n", *maxSteps)
			os.Exit(1)
		}
		return
	}

	if err := m.RunUntilDone(); err != nil {
		fmt.Fprintf(os.Stderr, "runtime error: %v\n", err)
		os.Exit(1)
	}
}
