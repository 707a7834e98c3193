package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"

	"github.com/mudassir0002/CD-Project/pkg/compiler"
	"github.com/mudassir0002/CD-Project/pkg/highlight"
	"github.com/mudassir0002/CD-Project/pkg/stepper"
	"github.com/mudassir0002/CD-Project/pkg/tac"
	"github.com/mudassir0002/CD-Project/pkg/utils"
)

// demoSource is shown when no input file is given.
const demoSource = `if (a<5)
{
c = b+d
d = i+j
}
else
{
d = a+b
k = x+y
}`

const (
	screenW = 640
	screenH = 480

	srcPaneX  = 16
	tacPaneX  = 336
	paneTop   = 32
	statusY   = screenH - 20
	delayStep = 100 * time.Millisecond
)

// lineH is derived from the monospace face the debug printer uses, so the
// cursor markers line up with the text rows.
var lineH = basicfont.Face7x13.Height + 3

type Game struct {
	st   *stepper.Stepper
	src  *highlight.Map
	prog tac.Program
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.st.Playing() {
			g.st.Pause()
		} else {
			g.st.Play()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.st.Pause()
		g.st.Next()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.st.Pause()
		g.st.Prev()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.st.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.st.SetDelay(g.st.Delay() + delayStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.st.SetDelay(g.st.Delay() - delayStep)
	}

	g.st.Tick(time.Now())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, "SOURCE", srcPaneX, 8)
	ebitenutil.DebugPrintAt(screen, "THREE-ADDRESS CODE", tacPaneX, 8)

	current, hasCurrent := g.st.Current()

	srcLine := 0
	if hasCurrent {
		if ln, ok := g.src.LineFor(current); ok {
			srcLine = ln
		}
	}

	for i, line := range g.src.Lines() {
		y := paneTop + i*lineH
		if i+1 == srcLine {
			ebitenutil.DebugPrintAt(screen, ">", srcPaneX-10, y)
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%3d  %s", i+1, line), srcPaneX, y)
	}

	for i, ins := range g.prog {
		y := paneTop + i*lineH
		if hasCurrent && i == g.st.Pos() {
			ebitenutil.DebugPrintAt(screen, ">", tacPaneX-10, y)
		}
		ebitenutil.DebugPrintAt(screen, ins.String(), tacPaneX, y)
	}

	state := "paused"
	if g.st.Playing() {
		state = "playing"
	} else if g.st.Done() {
		state = "done"
	}
	status := fmt.Sprintf("[space] play/pause  [</>] step  [r] reset  [^/v] speed   %s, delay %v",
		state, g.st.Delay())
	ebitenutil.DebugPrintAt(screen, status, srcPaneX, statusY)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

func main() {
	src := demoSource
	if len(os.Args) > 1 {
		loaded, err := utils.ReadSource(os.Args[1], os.Stdin)
		if err != nil {
			log.Fatalf("failed to read source file: %v", err)
		}
		src = loaded
	}
	if compiler.IsBlank(src) {
		log.Fatal("no source code given")
	}

	prog := compiler.Compile(src)

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("TAC Stepper")

	game := &Game{
		st:   stepper.New(prog),
		src:  highlight.New(src, prog),
		prog: prog,
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
