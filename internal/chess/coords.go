package chess

// AlgebraicToBoard converts a two-character algebraic square name such
// as "e4" into grid indices. It accepts exactly a file letter 'a'-'h'
// followed by a rank digit '1'-'8'; anything else yields ok == false.
// Rank 8 maps to row Hedge, rank 1 to the bottommost playing row.
func AlgebraicToBoard(text string) (row, col int, ok bool) {
	if len(text) != 2 {
		return 0, 0, false
	}
	file, rank := text[0], text[1]
	if file < 'a' || file > 'h' {
		return 0, 0, false
	}
	if rank < '1' || rank > '8' {
		return 0, 0, false
	}
	col = Hedge + int(file-'a')
	row = Hedge + BoardSize - int(rank-'0')
	// Well-formed input cannot land on the hedge, but a square name must
	// never resolve to a border cell.
	if !OnBoard(row, col) {
		return 0, 0, false
	}
	return row, col, true
}

// BoardToAlgebraic converts playing-surface grid indices back to an
// algebraic square name. Indices outside the playing surface yield
// ok == false rather than a plausible-looking label.
func BoardToAlgebraic(row, col int) (string, bool) {
	if !OnBoard(row, col) {
		return "", false
	}
	file := byte('a' + col - Hedge)
	rank := byte('0' + Hedge + BoardSize - row)
	return string([]byte{file, rank}), true
}
