package chess

import "fmt"

// Board dimensions. The playing surface occupies rows and columns
// Hedge..Hedge+BoardSize-1 of the grid; the two-cell hedge around it is
// permanently OffBoard so that direction-stepping move generation can
// detect the edge of the board without bounds checks.
const (
	BoardSize = 8
	Hedge     = 2
	GridSize  = Hedge + BoardSize + Hedge
)

// Board represents a chess position together with the game-state fields
// that ride alongside it.
//
// The grid is row-major with row Hedge = rank 8 and column Hedge =
// file a, matching the top-to-bottom order of FEN piece placement.
type Board struct {
	// The board squares with a hedge of 2 around the playing surface.
	Squares [GridSize][GridSize]Square

	// Who has the next move.
	ToMove Colour

	// The half-move clock since the last pawn move or capture, and the
	// full-move number (starts at 1, incremented after Black's move).
	HalfmoveClock  uint
	FullmoveNumber uint

	// Is an en passant capture possible? If so EPRow and EPCol hold the
	// square that was passed over.
	EnPassant bool
	EPRow     int
	EPCol     int

	// Castling rights as declared by the position. Parsing does not
	// check them against rook placement; the move-application layer is
	// trusted to keep them correct during play.
	WKingside  bool
	WQueenside bool
	BKingside  bool
	BQueenside bool

	// Keep track of where the two kings are for check detection.
	WKingRow int
	WKingCol int
	BKingRow int
	BKingCol int

	// Total material value per colour, maintained incrementally.
	WMaterial int
	BMaterial int

	// Text of the last move played, if any.
	LastMove string
}

// NewBoard creates an empty board: every playing square Empty, every
// hedge square OffBoard, White to move, move number 1.
func NewBoard() *Board {
	b := &Board{
		ToMove:         White,
		FullmoveNumber: 1,
	}
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			if OnBoard(row, col) {
				b.Squares[row][col] = Empty
			} else {
				b.Squares[row][col] = OffBoard
			}
		}
	}
	return b
}

// OnBoard reports whether grid indices address a playing-surface square.
func OnBoard(row, col int) bool {
	return row >= Hedge && row < Hedge+BoardSize &&
		col >= Hedge && col < Hedge+BoardSize
}

// At returns the square value at the given grid indices. Indices
// outside the grid entirely are treated as off board.
func (b *Board) At(row, col int) Square {
	if row < 0 || row >= GridSize || col < 0 || col >= GridSize {
		return OffBoard
	}
	return b.Squares[row][col]
}

// PieceAt returns the square value at an algebraic square name such as
// "e4". Malformed names yield OffBoard.
func (b *Board) PieceAt(square string) Square {
	row, col, ok := AlgebraicToBoard(square)
	if !ok {
		return OffBoard
	}
	return b.Squares[row][col]
}

// KingLocation returns the cached grid location of a colour's king.
func (b *Board) KingLocation(colour Colour) (row, col int) {
	if colour == White {
		return b.WKingRow, b.WKingCol
	}
	return b.BKingRow, b.BKingCol
}

// Material returns the cached material sum for a colour.
func (b *Board) Material(colour Colour) int {
	if colour == White {
		return b.WMaterial
	}
	return b.BMaterial
}

// EnPassantSquare returns the algebraic name of the en passant target
// square, or "" when none is set.
func (b *Board) EnPassantSquare() string {
	if !b.EnPassant {
		return ""
	}
	name, ok := BoardToAlgebraic(b.EPRow, b.EPCol)
	if !ok {
		return ""
	}
	return name
}

// ValidateKings checks the exactly-one-king invariant: each colour has
// a unique king on the playing surface and the cached location points
// at it. Positions that fail this are not legal game states, though
// bare placement strings without kings still decode.
func (b *Board) ValidateKings() error {
	wCount, bCount := 0, 0
	var wRow, wCol, bRow, bCol int
	for row := Hedge; row < Hedge+BoardSize; row++ {
		for col := Hedge; col < Hedge+BoardSize; col++ {
			sq := b.Squares[row][col]
			if !IsKing(sq) {
				continue
			}
			if colour, _ := ColourOf(sq); colour == White {
				wCount++
				wRow, wCol = row, col
			} else {
				bCount++
				bRow, bCol = row, col
			}
		}
	}
	if wCount != 1 {
		return fmt.Errorf("want exactly one white king, got %d", wCount)
	}
	if bCount != 1 {
		return fmt.Errorf("want exactly one black king, got %d", bCount)
	}
	if wRow != b.WKingRow || wCol != b.WKingCol {
		return fmt.Errorf("white king cache (%d,%d) does not match board (%d,%d)",
			b.WKingRow, b.WKingCol, wRow, wCol)
	}
	if bRow != b.BKingRow || bCol != b.BKingCol {
		return fmt.Errorf("black king cache (%d,%d) does not match board (%d,%d)",
			b.BKingRow, b.BKingCol, bRow, bCol)
	}
	return nil
}

// Clone returns a fully independent copy of the board. The grid and all
// scalar fields are value-copied, so concurrent mutation of distinct
// clones needs no synchronization.
func (b *Board) Clone() *Board {
	clone := *b
	return &clone
}
