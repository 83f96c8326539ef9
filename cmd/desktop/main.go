package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"gobf/pkg/grid"
	"gobf/pkg/lexer"
	"gobf/pkg/machine"
	"gobf/pkg/peripherals"
)

// defaultProgram echoes typed characters back to the output pane, which makes
// the Waiting state and the keyboard queue visible without loading a file.
const defaultProgram = ",[.,]"

const (
	stepsPerFrame = 5000

	tapeCells = 256
	tapeCols  = 16
	cellW     = 26
	cellH     = 16

	tapeX = 8
	tapeY = 40

	screenW = 440
	screenH = 460
)

// outputPane collects program output for on-screen display.
type outputPane struct {
	data []byte
}

func (p *outputPane) Write(b []byte) (int, error) {
	p.data = append(p.data, b...)
	return len(b), nil
}

// Tail returns the last n bytes of output.
func (p *outputPane) Tail(n int) string {
	if len(p.data) <= n {
		return string(p.data)
	}
	return string(p.data[len(p.data)-n:])
}

type Game struct {
	vm     *machine.Machine
	keys   *peripherals.Keyboard
	out    outputPane
	runErr error
}

func newGame(source string) (*Game, error) {
	program := lexer.Lex(source)
	jumps, err := machine.ResolveJumps(program)
	if err != nil {
		return nil, err
	}

	g := &Game{
		vm:   machine.New(program, jumps),
		keys: peripherals.NewKeyboard(),
	}
	g.vm.Input = g.keys
	g.vm.Output = &g.out
	return g, nil
}

// stepFrame runs the machine for at most stepsPerFrame instructions, stopping
// early on halt, error, or an input wait with no keys queued.
func (g *Game) stepFrame() {
	for i := 0; i < stepsPerFrame; i++ {
		if g.runErr != nil || g.vm.Halted {
			return
		}
		if g.vm.Waiting && g.keys.Len() == 0 {
			return
		}
		if _, err := g.vm.Step(); err != nil {
			g.runErr = err
			return
		}
	}
}

func (g *Game) Update() error {
	for _, r := range ebiten.AppendInputChars(nil) {
		if r > 0 && r < 128 {
			g.keys.Push(byte(r))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.keys.Push(10) // ASCII newline
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.keys.Push(8) // ASCII backspace
	}

	g.stepFrame()
	return nil
}

func (g *Game) status() string {
	switch {
	case g.runErr != nil:
		return fmt.Sprintf("error: %v", g.runErr)
	case g.vm.Halted:
		return "halted"
	case g.vm.Waiting:
		return "waiting for input"
	default:
		return "running"
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("pc %d/%d  ptr %d  steps %d", g.vm.PC, len(g.vm.Program()), g.vm.Ptr, g.vm.Steps), tapeX, 4)
	ebitenutil.DebugPrintAt(screen, g.status(), tapeX, 18)

	// Tape window: the first tapeCells cells as hex, pointer cell highlighted.
	face := basicfont.Face7x13
	for i := 0; i < tapeCells && i < len(g.vm.Tape); i++ {
		col, row := grid.CellCoords(i, tapeCols)
		px := tapeX + col*cellW
		py := tapeY + row*cellH

		if i == g.vm.Ptr {
			ebitenutil.DrawRect(screen, float64(px-2), float64(py-1), cellW-4, cellH-2, color.RGBA{0x2d, 0x7f, 0x2d, 0xff})
		}
		text.Draw(screen, fmt.Sprintf("%02X", g.vm.Tape[i]), face, px, py+12, color.White)
	}

	outY := tapeY + (tapeCells/tapeCols)*cellH + 12
	ebitenutil.DebugPrintAt(screen, "output:", tapeX, outY)
	ebitenutil.DebugPrintAt(screen, g.out.Tail(600), tapeX, outY+16)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

func main() {
	inPath := flag.String("in", "", "brainfuck source file path (default: interactive echo)")
	flag.Parse()

	source := defaultProgram
	if *inPath != "" {
		data, err := os.ReadFile(*inPath)
		if err != nil {
			log.Fatalf("Failed to read source file: %v", err)
		}
		source = string(data)
	}

	game, err := newGame(source)
	if err != nil {
		log.Fatalf("Invalid program: %v", err)
	}

	ebiten.SetWindowSize(screenW*2, screenH*2)
	ebiten.SetWindowTitle("gobf tape")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
