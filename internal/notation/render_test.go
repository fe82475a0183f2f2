package notation_test

import (
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/lgbarn/chesscore-go/internal/notation"
	"github.com/lgbarn/chesscore-go/internal/testutil"
)

func TestRenderPlainInitialPosition(t *testing.T) {
	board := notation.NewInitialBoard()

	want := strings.Join([]string{
		"  +-----------------+",
		"8 | r n b q k b n r |",
		"7 | p p p p p p p p |",
		"6 | . . . . . . . . |",
		"5 | . . . . . . . . |",
		"4 | . . . . . . . . |",
		"3 | . . . . . . . . |",
		"2 | P P P P P P P P |",
		"1 | R N B Q K B N R |",
		"  +-----------------+",
		"    a b c d e f g h",
		"",
	}, "\n")

	testutil.AssertEqual(t, notation.RenderPlain(board), want)
}

func TestRenderPlainMidgamePosition(t *testing.T) {
	board := testutil.MustParseFEN(t,
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3")

	got := notation.RenderPlain(board)
	testutil.AssertContains(t, got, "4 | . . . . P . . . |")
	testutil.AssertContains(t, got, "6 | . . n . . . . . |")
	testutil.AssertContains(t, got, "3 | . . . . . N . . |")
}

func TestRenderInitialPosition(t *testing.T) {
	// Pin the colour toggle so output does not depend on the terminal.
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	board := notation.NewInitialBoard()
	got := notation.Render(board)

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	testutil.AssertEqual(t, len(lines), 9, "eight ranks plus file labels")
	testutil.AssertContains(t, lines[0], "8")
	testutil.AssertContains(t, lines[0], "♜")
	testutil.AssertContains(t, lines[0], "♚")
	testutil.AssertContains(t, lines[7], "1")
	testutil.AssertContains(t, lines[7], "♖")
	testutil.AssertContains(t, lines[7], "♔")
	testutil.AssertContains(t, lines[8], "a")
	testutil.AssertContains(t, lines[8], "h")
}

func TestRendersAreReadOnlyAndDeterministic(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	fen := "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R b kq - 3 17"
	board := testutil.MustParseFEN(t, fen)

	first := notation.Render(board)
	firstPlain := notation.RenderPlain(board)

	testutil.AssertEqual(t, notation.WriteFEN(board), fen, "rendering must not mutate the board")
	testutil.AssertEqual(t, notation.Render(board), first, "colored render is deterministic")
	testutil.AssertEqual(t, notation.RenderPlain(board), firstPlain, "plain render is deterministic")
}
