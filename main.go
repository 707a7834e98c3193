//go:build !js

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/tebeka/atexit"

	"github.com/mudassir0002/CD-Project/pkg/compiler"
	"github.com/mudassir0002/CD-Project/pkg/highlight"
	"github.com/mudassir0002/CD-Project/pkg/stepper"
	"github.com/mudassir0002/CD-Project/pkg/tac"
	"github.com/mudassir0002/CD-Project/pkg/utils"
)

// consoleListener prints each playback step together with the source line it
// was generated from.
type consoleListener struct {
	src *highlight.Map
}

func (c *consoleListener) OnStep(ins tac.Instruction, pos int) {
	printStep(c.src, ins)
}

func (c *consoleListener) OnFinished() {
	fmt.Println("-- end of program --")
}

func printStep(m *highlight.Map, ins tac.Instruction) {
	if ln, ok := m.LineFor(ins); ok {
		fmt.Printf("%-24s  <- line %d\n", ins.String(), ln)
		return
	}
	fmt.Println(ins.String())
}

func main() {
	inPath := flag.String("in", "", "input source file path (default: stdin)")
	outPath := flag.String("out", "", "output listing file path (default: stdout)")
	play := flag.Bool("play", false, "step through the generated code in the terminal")
	delay := flag.Duration("delay", stepper.DefaultDelay, "delay between automatic steps")
	showSrc := flag.Bool("src", false, "echo the numbered source before the listing")
	flag.Parse()

	src, err := utils.ReadSource(*inPath, os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read source: %v\n", err)
		atexit.Exit(1)
	}

	// The translator itself accepts anything; blank input is rejected here at
	// the boundary so the user gets a message instead of a bare END.
	if compiler.IsBlank(src) {
		fmt.Fprintln(os.Stderr, "no source code given")
		atexit.Exit(1)
	}

	prog := compiler.Compile(src)

	if *showSrc {
		for i, line := range compiler.SplitLines(src) {
			fmt.Printf("%3d | %s\n", i+1, line)
		}
		fmt.Println()
	}

	if *play {
		runPlayback(src, prog, *delay)
		atexit.Exit(0)
	}

	listing := prog.String()
	if *outPath == "" {
		fmt.Print(listing)
		atexit.Exit(0)
	}
	if err := os.WriteFile(*outPath, []byte(listing), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write %q: %v\n", *outPath, err)
		atexit.Exit(1)
	}
	atexit.Exit(0)
}

// runPlayback animates the program in the terminal, one instruction per delay
// interval.
func runPlayback(src string, prog tac.Program, delay time.Duration) {
	m := highlight.New(src, prog)

	st := stepper.New(prog)
	st.SetDelay(delay)
	st.SetListener(&consoleListener{src: m})

	// OnStep only fires on movement, so show the first instruction up front.
	if ins, ok := st.Current(); ok {
		printStep(m, ins)
	}
	st.Play()

	// Playback stops itself one delay after the final instruction, which also
	// fires the finished notification.
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	for st.Playing() {
		st.Tick(<-ticker.C)
	}
}
