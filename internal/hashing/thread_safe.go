package hashing

import (
	"sync"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// ThreadSafeRepetitionTable wraps RepetitionTable with mutex protection
// for concurrent access from parallel search workers.
type ThreadSafeRepetitionTable struct {
	table *RepetitionTable
	mu    sync.RWMutex
}

// NewThreadSafeRepetitionTable creates a new thread-safe table.
func NewThreadSafeRepetitionTable() *ThreadSafeRepetitionTable {
	return &ThreadSafeRepetitionTable{table: NewRepetitionTable()}
}

// Add atomically records an occurrence and returns the new count.
func (t *ThreadSafeRepetitionTable) Add(board *chess.Board) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Add(board)
}

// Count returns how many times the position has been recorded.
func (t *ThreadSafeRepetitionTable) Count(board *chess.Board) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.Count(board)
}

// Remove forgets one occurrence of the position.
func (t *ThreadSafeRepetitionTable) Remove(board *chess.Board) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.table.Remove(board)
}

// Reset clears the table.
func (t *ThreadSafeRepetitionTable) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.table.Reset()
}
