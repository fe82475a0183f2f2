// fenview is a small terminal viewer for chess positions: it parses a
// FEN string and prints the board, or re-emits the canonical FEN.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/notation"
)

const programVersion = "0.1.0"

var (
	plain   = flag.Bool("plain", false, "Plain ASCII output instead of the colored board")
	emitFEN = flag.Bool("fen", false, "Print the canonical FEN string instead of the board")
	version = flag.Bool("version", false, "Print version and exit")
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: fenview [options] [FEN]\n\n")
	fmt.Fprintf(os.Stderr, "Renders the position given in FEN, or the starting position\n")
	fmt.Fprintf(os.Stderr, "when no FEN is supplied. The six FEN fields may be passed as\n")
	fmt.Fprintf(os.Stderr, "separate arguments or as one quoted string.\n\nOptions:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Printf("fenview version %s\n", programVersion)
		os.Exit(0)
	}

	fen := notation.InitialFEN
	if flag.NArg() > 0 {
		fen = strings.Join(flag.Args(), " ")
	}

	board, err := notation.ParseFEN(fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fenview: %v\n", err)
		os.Exit(1)
	}

	switch {
	case *emitFEN:
		fmt.Println(notation.WriteFEN(board))
	case *plain:
		fmt.Print(notation.RenderPlain(board))
	default:
		fmt.Print(notation.Render(board))
	}
}
