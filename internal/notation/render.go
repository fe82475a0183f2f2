package notation

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

var (
	darkSquare  = color.New(color.FgBlack, color.BgRed)
	lightSquare = color.New(color.FgBlack, color.BgWhite)
	boardLabel  = color.New(color.Bold)
)

// Render returns a checkerboard-shaded rendering of the position with
// figurine glyphs, intended for an interactive terminal. It only reads
// the board and produces the same output for the same state. Colour
// escape sequences follow the global color.NoColor setting.
func Render(board *chess.Board) string {
	var sb strings.Builder
	for row := chess.Hedge; row < chess.Hedge+chess.BoardSize; row++ {
		rank := chess.Hedge + chess.BoardSize - row
		sb.WriteString(boardLabel.Sprintf(" %d ", rank))
		for col := chess.Hedge; col < chess.Hedge+chess.BoardSize; col++ {
			cell := fmt.Sprintf(" %s ", chess.Glyph(board.Squares[row][col], chess.StyleUnicode))
			if (row+col)%2 == 0 {
				sb.WriteString(darkSquare.Sprint(cell))
			} else {
				sb.WriteString(lightSquare.Sprint(cell))
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   ")
	for file := byte('a'); file <= 'h'; file++ {
		sb.WriteString(boardLabel.Sprintf(" %c ", file))
	}
	sb.WriteByte('\n')
	return sb.String()
}

// RenderPlain returns an ASCII rendering with rank and file labels,
// suitable for logs and golden tests. Empty squares render as ".".
func RenderPlain(board *chess.Board) string {
	var sb strings.Builder
	sb.WriteString("  +-----------------+\n")
	for row := chess.Hedge; row < chess.Hedge+chess.BoardSize; row++ {
		rank := chess.Hedge + chess.BoardSize - row
		fmt.Fprintf(&sb, "%d |", rank)
		for col := chess.Hedge; col < chess.Hedge+chess.BoardSize; col++ {
			sq := board.Squares[row][col]
			if chess.IsEmpty(sq) {
				sb.WriteString(" .")
			} else {
				sb.WriteByte(' ')
				sb.WriteString(chess.Glyph(sq, chess.StyleASCII))
			}
		}
		sb.WriteString(" |\n")
	}
	sb.WriteString("  +-----------------+\n")
	sb.WriteString("    a b c d e f g h\n")
	return sb.String()
}
