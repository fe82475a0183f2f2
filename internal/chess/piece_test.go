package chess

import "testing"

func TestPiecesRecognized(t *testing.T) {
	t.Run("colours", func(t *testing.T) {
		for _, kind := range []Square{Pawn, Knight, Bishop, Rook, Queen, King} {
			if c, ok := ColourOf(W(kind)); !ok || c != White {
				t.Errorf("ColourOf(W(%d)) = %v, %v; want White, true", kind, c, ok)
			}
			if c, ok := ColourOf(B(kind)); !ok || c != Black {
				t.Errorf("ColourOf(B(%d)) = %v, %v; want Black, true", kind, c, ok)
			}
		}
	})

	t.Run("colour of empty and sentinel is meaningless", func(t *testing.T) {
		if _, ok := ColourOf(Empty); ok {
			t.Error("ColourOf(Empty) ok = true; want false")
		}
		if _, ok := ColourOf(OffBoard); ok {
			t.Error("ColourOf(OffBoard) ok = true; want false")
		}
	})

	t.Run("kind predicates", func(t *testing.T) {
		tests := []struct {
			name string
			pred func(Square) bool
			kind Square
		}{
			{"pawn", IsPawn, Pawn},
			{"knight", IsKnight, Knight},
			{"bishop", IsBishop, Bishop},
			{"rook", IsRook, Rook},
			{"queen", IsQueen, Queen},
			{"king", IsKing, King},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if !tt.pred(W(tt.kind)) {
					t.Errorf("predicate false for white %s", tt.name)
				}
				if !tt.pred(B(tt.kind)) {
					t.Errorf("predicate false for black %s", tt.name)
				}
				other := Pawn
				if tt.kind == Pawn {
					other = Rook
				}
				if tt.pred(W(other)) {
					t.Errorf("predicate true for wrong kind %d", other)
				}
			})
		}
	})

	t.Run("predicates safe on empty and sentinel", func(t *testing.T) {
		preds := []func(Square) bool{IsPawn, IsKnight, IsBishop, IsRook, IsQueen, IsKing}
		for i, pred := range preds {
			if pred(Empty) {
				t.Errorf("predicate %d true for Empty", i)
			}
			if pred(OffBoard) {
				t.Errorf("predicate %d true for OffBoard", i)
			}
		}
	})

	t.Run("reserved values", func(t *testing.T) {
		if !IsEmpty(Empty) {
			t.Error("IsEmpty(Empty) = false")
		}
		if IsEmpty(W(King)) {
			t.Error("IsEmpty(white king) = true")
		}
		if !IsOutsideBoard(OffBoard) {
			t.Error("IsOutsideBoard(OffBoard) = false")
		}
		if IsOutsideBoard(Empty) {
			t.Error("IsOutsideBoard(Empty) = true")
		}
		if IsOutsideBoard(W(King)) {
			t.Error("IsOutsideBoard(white king) = true")
		}
	})
}

// The sentinel must never collide with any encodable piece, and its kind
// bits must not alias a real kind, or masked predicates would misfire on
// the border.
func TestSentinelDistinctFromAllPieces(t *testing.T) {
	for _, colour := range []Colour{White, Black} {
		for kind := Pawn; kind <= King; kind++ {
			sq := Encode(colour, kind)
			if sq == OffBoard {
				t.Errorf("Encode(%v, %d) == OffBoard", colour, kind)
			}
			if sq == Empty {
				t.Errorf("Encode(%v, %d) == Empty", colour, kind)
			}
			if OffBoard&kindMask == kind {
				t.Errorf("sentinel kind bits alias kind %d", kind)
			}
		}
	}
}

func TestKindOf(t *testing.T) {
	if kind, ok := KindOf(B(Queen)); !ok || kind != Queen {
		t.Errorf("KindOf(black queen) = %d, %v; want Queen, true", kind, ok)
	}
	if _, ok := KindOf(Empty); ok {
		t.Error("KindOf(Empty) ok = true; want false")
	}
	if _, ok := KindOf(OffBoard); ok {
		t.Error("KindOf(OffBoard) ok = true; want false")
	}
}

func TestMaterialValue(t *testing.T) {
	tests := []struct {
		name string
		sq   Square
		want int
	}{
		{"white pawn", W(Pawn), PawnValue},
		{"black knight", B(Knight), KnightValue},
		{"white bishop", W(Bishop), BishopValue},
		{"black rook", B(Rook), RookValue},
		{"white queen", W(Queen), QueenValue},
		{"black king", B(King), KingValue},
		{"empty", Empty, 0},
		{"off board", OffBoard, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaterialValue(tt.sq); got != tt.want {
				t.Errorf("MaterialValue(%#x) = %d; want %d", tt.sq, got, tt.want)
			}
		})
	}
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		name  string
		sq    Square
		style GlyphStyle
		want  string
	}{
		{"white king unicode", W(King), StyleUnicode, "♔"},
		{"black king unicode", B(King), StyleUnicode, "♚"},
		{"white pawn unicode", W(Pawn), StyleUnicode, "♙"},
		{"black rook unicode", B(Rook), StyleUnicode, "♜"},
		{"white queen ascii", W(Queen), StyleASCII, "Q"},
		{"black queen ascii", B(Queen), StyleASCII, "q"},
		{"white knight ascii", W(Knight), StyleASCII, "N"},
		{"black bishop ascii", B(Bishop), StyleASCII, "b"},
		{"empty unicode", Empty, StyleUnicode, " "},
		{"empty ascii", Empty, StyleASCII, " "},
		{"sentinel", OffBoard, StyleUnicode, "?"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Glyph(tt.sq, tt.style); got != tt.want {
				t.Errorf("Glyph(%#x, %v) = %q; want %q", tt.sq, tt.style, got, tt.want)
			}
		})
	}
}

func TestColourStringOpposite(t *testing.T) {
	if White.String() != "White" || Black.String() != "Black" {
		t.Errorf("Colour.String() = %q, %q", White.String(), Black.String())
	}
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Colour.Opposite() is not an involution")
	}
}
