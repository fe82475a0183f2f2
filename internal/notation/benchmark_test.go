package notation_test

import (
	"testing"

	"github.com/lgbarn/chesscore-go/internal/notation"
)

func BenchmarkParseFEN(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := notation.ParseFEN(notation.InitialFEN); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkWriteFEN(b *testing.B) {
	board := notation.NewInitialBoard()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = notation.WriteFEN(board)
	}
}

func BenchmarkRenderPlain(b *testing.B) {
	board := notation.NewInitialBoard()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = notation.RenderPlain(board)
	}
}
