// Package hashing provides position hashing for chess board states:
// a Zobrist-style hash over the packed square codes and game-state
// fields, and a repetition table keyed on it.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// zobristSeed fixes the key table so hashes are stable across runs.
const zobristSeed = 0x5eed1e57

var (
	// pieceKeys is indexed by playing-surface row, column, and the
	// piece index from pieceIndex.
	pieceKeys  [chess.BoardSize][chess.BoardSize][12]uint64
	sideKey    uint64
	castleKeys [4]uint64
	epFileKeys [chess.BoardSize]uint64
)

func init() {
	rng := rand.New(rand.NewSource(zobristSeed))
	for row := range pieceKeys {
		for col := range pieceKeys[row] {
			for p := range pieceKeys[row][col] {
				pieceKeys[row][col][p] = rng.Uint64()
			}
		}
	}
	sideKey = rng.Uint64()
	for i := range castleKeys {
		castleKeys[i] = rng.Uint64()
	}
	for i := range epFileKeys {
		epFileKeys[i] = rng.Uint64()
	}
}

// pieceIndex maps a packed square value to 0-11: the six white pieces
// then the six black pieces.
func pieceIndex(sq chess.Square) int {
	kind, _ := chess.KindOf(sq)
	colour, _ := chess.ColourOf(sq)
	idx := int(kind) - 1
	if colour == chess.Black {
		idx += 6
	}
	return idx
}

// Hash returns the Zobrist hash of a position. Two boards hash equal
// exactly when their placement, side to move, castling rights, and
// en passant file agree.
func Hash(board *chess.Board) uint64 {
	var h uint64
	for row := chess.Hedge; row < chess.Hedge+chess.BoardSize; row++ {
		for col := chess.Hedge; col < chess.Hedge+chess.BoardSize; col++ {
			sq := board.Squares[row][col]
			if chess.IsEmpty(sq) {
				continue
			}
			h ^= pieceKeys[row-chess.Hedge][col-chess.Hedge][pieceIndex(sq)]
		}
	}
	if board.ToMove == chess.White {
		h ^= sideKey
	}
	if board.WKingside {
		h ^= castleKeys[0]
	}
	if board.WQueenside {
		h ^= castleKeys[1]
	}
	if board.BKingside {
		h ^= castleKeys[2]
	}
	if board.BQueenside {
		h ^= castleKeys[3]
	}
	if board.EnPassant {
		h ^= epFileKeys[board.EPCol-chess.Hedge]
	}
	return h
}

// WeakHash returns a fast multiplicative hash of the placement and side
// to move, used as a secondary check alongside Hash.
func WeakHash(board *chess.Board) uint64 {
	var h uint64
	multiplier := uint64(31)
	for row := chess.Hedge; row < chess.Hedge+chess.BoardSize; row++ {
		for col := chess.Hedge; col < chess.Hedge+chess.BoardSize; col++ {
			h = h*multiplier + uint64(board.Squares[row][col])
		}
	}
	return h*multiplier + uint64(board.ToMove)
}

// RepetitionTable counts how often each position has occurred, for
// threefold-repetition detection by an external search. It is not safe
// for concurrent use; see ThreadSafeRepetitionTable.
type RepetitionTable struct {
	counts map[uint64]int
}

// NewRepetitionTable creates an empty repetition table.
func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{counts: make(map[uint64]int)}
}

// Add records an occurrence of the position and returns the new count.
func (t *RepetitionTable) Add(board *chess.Board) int {
	h := Hash(board)
	t.counts[h]++
	return t.counts[h]
}

// Count returns how many times the position has been recorded.
func (t *RepetitionTable) Count(board *chess.Board) int {
	return t.counts[Hash(board)]
}

// Remove forgets one occurrence of the position, for unwinding a
// search line. Removing an unrecorded position is a no-op.
func (t *RepetitionTable) Remove(board *chess.Board) {
	h := Hash(board)
	if t.counts[h] <= 1 {
		delete(t.counts, h)
		return
	}
	t.counts[h]--
}

// Reset clears the table.
func (t *RepetitionTable) Reset() {
	t.counts = make(map[uint64]int)
}
