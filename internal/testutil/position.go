package testutil

import (
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/notation"
)

// MustParseFEN parses a FEN string into a board, failing the test on error.
func MustParseFEN(t *testing.T, fen string) *chess.Board {
	t.Helper()
	board, err := notation.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q) error = %v", fen, err)
	}
	return board
}

// InitialBoard returns a fresh standard starting position.
func InitialBoard(t *testing.T) *chess.Board {
	t.Helper()
	return MustParseFEN(t, notation.InitialFEN)
}
