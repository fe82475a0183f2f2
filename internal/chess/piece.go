// Package chess provides the board representation for a chess engine:
// a packed square encoding, a sentinel-bordered mailbox grid, and
// coordinate conversion between grid indices and algebraic square names.
package chess

// Square is the packed value stored in one board cell. Bit 7 carries the
// colour (1 = white), bits 0-2 carry the piece kind. Zero is an empty
// square; the all-ones value marks a cell outside the playing surface.
type Square uint8

const (
	colourMask Square = 0x80
	kindMask   Square = 0x07
)

// Reserved square values. Both are compared with full-byte equality,
// never through the kind mask.
const (
	Empty    Square = 0x00
	OffBoard Square = 0xFF
)

// Piece kinds. The codes are contiguous from 1 so that no kind matches
// the low bits of Empty (0) or OffBoard (7), which keeps the kind
// predicates safe to call on either without a prior emptiness check.
const (
	Pawn   Square = 1
	Knight Square = 2
	Bishop Square = 3
	Rook   Square = 4
	Queen  Square = 5
	King   Square = 6
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// bit returns the colour bit used in the packed square encoding.
func (c Colour) bit() Square {
	if c == White {
		return colourMask
	}
	return 0
}

// Encode packs a colour and a piece kind into a square value.
// The kind must be one of the six piece constants.
func Encode(colour Colour, kind Square) Square {
	return colour.bit() | kind
}

// W encodes a white piece.
func W(kind Square) Square {
	return Encode(White, kind)
}

// B encodes a black piece.
func B(kind Square) Square {
	return Encode(Black, kind)
}

// ColourOf reports the colour of the piece on a square. The second
// result is false for Empty and OffBoard, where colour is meaningless.
func ColourOf(sq Square) (Colour, bool) {
	if sq == Empty || sq == OffBoard {
		return Black, false
	}
	if sq&colourMask != 0 {
		return White, true
	}
	return Black, true
}

// KindOf reports the piece kind on a square. The second result is false
// for Empty and OffBoard.
func KindOf(sq Square) (Square, bool) {
	if sq == Empty || sq == OffBoard {
		return 0, false
	}
	return sq & kindMask, true
}

// IsPawn reports whether the square holds a pawn of either colour.
func IsPawn(sq Square) bool {
	return sq&kindMask == Pawn
}

// IsKnight reports whether the square holds a knight of either colour.
func IsKnight(sq Square) bool {
	return sq&kindMask == Knight
}

// IsBishop reports whether the square holds a bishop of either colour.
func IsBishop(sq Square) bool {
	return sq&kindMask == Bishop
}

// IsRook reports whether the square holds a rook of either colour.
func IsRook(sq Square) bool {
	return sq&kindMask == Rook
}

// IsQueen reports whether the square holds a queen of either colour.
func IsQueen(sq Square) bool {
	return sq&kindMask == Queen
}

// IsKing reports whether the square holds a king of either colour.
func IsKing(sq Square) bool {
	return sq&kindMask == King
}

// IsEmpty reports whether the square is an empty playing square.
func IsEmpty(sq Square) bool {
	return sq == Empty
}

// IsOutsideBoard reports whether the square is a border sentinel.
func IsOutsideBoard(sq Square) bool {
	return sq == OffBoard
}

// Relative piece values on the conventional centipawn scale. The sums
// cached on the board use these constants.
const (
	PawnValue   = 100
	KnightValue = 320
	BishopValue = 330
	RookValue   = 500
	QueenValue  = 900
	KingValue   = 20000
)

var kindValues = [...]int{0, PawnValue, KnightValue, BishopValue, RookValue, QueenValue, KingValue}

// MaterialValue returns the relative value of the piece on a square,
// or 0 for Empty and OffBoard.
func MaterialValue(sq Square) int {
	kind, ok := KindOf(sq)
	if !ok {
		return 0
	}
	return kindValues[kind]
}

// GlyphStyle selects the character set used by Glyph.
type GlyphStyle int

const (
	// StyleUnicode renders figurine chess symbols.
	StyleUnicode GlyphStyle = iota
	// StyleASCII renders letters, uppercase for white and lowercase for black.
	StyleASCII
)

var unicodeGlyphs = map[Square]string{
	W(Pawn): "♙", W(Knight): "♘", W(Bishop): "♗", W(Rook): "♖", W(Queen): "♕", W(King): "♔",
	B(Pawn): "♟", B(Knight): "♞", B(Bishop): "♝", B(Rook): "♜", B(Queen): "♛", B(King): "♚",
}

var asciiGlyphs = map[Square]string{
	W(Pawn): "P", W(Knight): "N", W(Bishop): "B", W(Rook): "R", W(Queen): "Q", W(King): "K",
	B(Pawn): "p", B(Knight): "n", B(Bishop): "b", B(Rook): "r", B(Queen): "q", B(King): "k",
}

// Glyph returns a single printable glyph for a square: a piece symbol or
// letter, or a blank space for an empty square. Callers are expected to
// pass playing-surface values; the border sentinel renders as "?" so a
// misuse is visible rather than silent.
func Glyph(sq Square, style GlyphStyle) string {
	if sq == Empty {
		return " "
	}
	if sq == OffBoard {
		return "?"
	}
	glyphs := unicodeGlyphs
	if style == StyleASCII {
		glyphs = asciiGlyphs
	}
	if g, ok := glyphs[sq]; ok {
		return g
	}
	return "?"
}
