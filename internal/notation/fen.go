// Package notation converts board states to and from textual position
// notation: FEN decoding and encoding, and terminal-oriented renders.
package notation

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenErr builds a decode error carrying the failing field and text.
func fenErr(field, value, msg string) error {
	return &errors.FENError{Err: errors.ErrInvalidFEN, Field: field, Value: value, Msg: msg}
}

// pieceFromFENChar converts a FEN placement character to a packed
// square value. Uppercase letters are white, lowercase black.
func pieceFromFENChar(c byte) (chess.Square, bool) {
	var kind chess.Square
	switch unicode.ToUpper(rune(c)) {
	case 'P':
		kind = chess.Pawn
	case 'N':
		kind = chess.Knight
	case 'B':
		kind = chess.Bishop
	case 'R':
		kind = chess.Rook
	case 'Q':
		kind = chess.Queen
	case 'K':
		kind = chess.King
	default:
		return chess.Empty, false
	}
	colour := chess.White
	if c >= 'a' && c <= 'z' {
		colour = chess.Black
	}
	return chess.Encode(colour, kind), true
}

// ParseFEN parses a six-field FEN string into a fully populated board
// state. On any failure it returns a descriptive error and no board;
// it never guesses or substitutes defaults for malformed fields.
func ParseFEN(fen string) (*chess.Board, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, fenErr("count", fen,
			fmt.Sprintf("want 6 space-separated fields, got %d", len(fields)))
	}

	board := chess.NewBoard()

	if err := parseSideToMove(board, fields[1]); err != nil {
		return nil, err
	}
	if err := parseClocks(board, fields[4], fields[5]); err != nil {
		return nil, err
	}
	if err := parsePlacement(board, fields[0]); err != nil {
		return nil, err
	}
	if err := parseCastling(board, fields[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, fields[3]); err != nil {
		return nil, err
	}

	return board, nil
}

// parsePlacement parses the piece placement field, filling the grid and
// the cached king locations and material sums as pieces are placed.
func parsePlacement(board *chess.Board, placement string) error {
	rankGroups := strings.Split(placement, "/")
	if len(rankGroups) != chess.BoardSize {
		return fenErr("placement", placement,
			fmt.Sprintf("want 8 rank groups, got %d", len(rankGroups)))
	}

	whiteKings, blackKings := 0, 0
	for i, group := range rankGroups {
		row := chess.Hedge + i
		col := chess.Hedge
		end := chess.Hedge + chess.BoardSize

		for j := 0; j < len(group); j++ {
			c := group[j]
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				if col > end {
					return fenErr("placement", group, "rank overflow")
				}
				continue
			}
			if col >= end {
				return fenErr("placement", group, "rank overflow")
			}
			sq, ok := pieceFromFENChar(c)
			if !ok {
				return fenErr("placement", string(c), "unrecognized character")
			}
			board.Squares[row][col] = sq

			colour, _ := chess.ColourOf(sq)
			if colour == chess.White {
				board.WMaterial += chess.MaterialValue(sq)
			} else {
				board.BMaterial += chess.MaterialValue(sq)
			}
			if chess.IsKing(sq) {
				if colour == chess.White {
					whiteKings++
					board.WKingRow, board.WKingCol = row, col
				} else {
					blackKings++
					board.BKingRow, board.BKingCol = row, col
				}
			}
			col++
		}
		if col != end {
			return fenErr("placement", group, "incomplete rank")
		}
	}

	// A duplicated king would leave the location cache pointing at only
	// one of them. Absent kings are tolerated here so that bare
	// placement strings decode; Board.ValidateKings enforces presence.
	if whiteKings > 1 {
		return fenErr("placement", placement,
			fmt.Sprintf("want at most one white king, got %d", whiteKings))
	}
	if blackKings > 1 {
		return fenErr("placement", placement,
			fmt.Sprintf("want at most one black king, got %d", blackKings))
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, field string) error {
	switch field {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return fenErr("side to move", field, `want "w" or "b"`)
	}
	return nil
}

// parseCastling parses the castling availability field. Only the four
// standard flag characters and "-" are accepted; the flags are not
// validated against king or rook placement.
func parseCastling(board *chess.Board, field string) error {
	if field == "-" {
		return nil
	}
	if field == "" {
		return fenErr("castling", field, "empty field")
	}
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case 'K':
			board.WKingside = true
		case 'Q':
			board.WQueenside = true
		case 'k':
			board.BKingside = true
		case 'q':
			board.BQueenside = true
		default:
			return fenErr("castling", field, "unrecognized character")
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *chess.Board, field string) error {
	if field == "-" {
		return nil
	}
	row, col, ok := chess.AlgebraicToBoard(field)
	if !ok {
		return &errors.FENError{
			Err:   errors.ErrInvalidSquare,
			Field: "en passant",
			Value: field,
			Msg:   "not a square name",
		}
	}
	board.EnPassant = true
	board.EPRow, board.EPCol = row, col
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(board *chess.Board, halfText, fullText string) error {
	half, err := strconv.ParseUint(halfText, 10, 32)
	if err != nil {
		return fenErr("halfmove clock", halfText, "want a non-negative integer")
	}
	full, err := strconv.ParseUint(fullText, 10, 32)
	if err != nil {
		return fenErr("fullmove number", fullText, "want a non-negative integer")
	}
	board.HalfmoveClock = uint(half)
	board.FullmoveNumber = uint(full)
	return nil
}

// WriteFEN converts a board to its canonical FEN string. It is the
// field-for-field inverse of ParseFEN for every accepted input.
func WriteFEN(board *chess.Board) string {
	var sb strings.Builder

	writePlacement(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	writeCastling(&sb, board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", board.HalfmoveClock, board.FullmoveNumber)

	return sb.String()
}

// writePlacement writes the piece placement field to the builder.
func writePlacement(sb *strings.Builder, board *chess.Board) {
	for row := chess.Hedge; row < chess.Hedge+chess.BoardSize; row++ {
		emptyCount := 0
		for col := chess.Hedge; col < chess.Hedge+chess.BoardSize; col++ {
			sq := board.Squares[row][col]
			if chess.IsEmpty(sq) {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteString(chess.Glyph(sq, chess.StyleASCII))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.Hedge+chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move field to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastling writes the castling availability field to the builder.
func writeCastling(sb *strings.Builder, board *chess.Board) {
	hasCastling := false
	if board.WKingside {
		sb.WriteByte('K')
		hasCastling = true
	}
	if board.WQueenside {
		sb.WriteByte('Q')
		hasCastling = true
	}
	if board.BKingside {
		sb.WriteByte('k')
		hasCastling = true
	}
	if board.BQueenside {
		sb.WriteByte('q')
		hasCastling = true
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the en passant target square field to the builder.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	if name := board.EnPassantSquare(); name != "" {
		sb.WriteString(name)
	} else {
		sb.WriteByte('-')
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board, _ := ParseFEN(InitialFEN)
	return board
}
