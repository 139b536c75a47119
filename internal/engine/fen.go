package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenSuffix holds the en passant field and move counters, which this engine
// does not track.
const fenSuffix = "- 0 1"

// NewBoardFromFEN creates a board from a FEN string. Placement, side to move
// and castling are honoured; en passant and the move counters are ignored.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := checkKings(board); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, parts); err != nil {
		return nil, err
	}
	markMovedPieces(board)

	return board, nil
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return board
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	rank := chess.BoardSize - 1
	file := 0

	for _, c := range positions {
		switch {
		case c == '/':
			if file != chess.BoardSize {
				return fmt.Errorf("rank %d has %d files: %w", rank+1, file, errors.ErrInvalidFEN)
			}
			rank--
			file = 0
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			kind, ok := chess.KindFromLetter(byte(c))
			if !ok {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			sq := chess.Sq(file, rank)
			if !sq.Valid() {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}
			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			board.Place(kind, colour, sq)
			file++
		}
		if file > chess.BoardSize || rank < 0 {
			return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
		}
	}
	if rank != 0 || file != chess.BoardSize {
		return fmt.Errorf("incomplete piece placement %q: %w", positions, errors.ErrInvalidFEN)
	}
	return nil
}

// checkKings requires exactly one King per colour.
func checkKings(board *chess.Board) error {
	var kings [2]int
	for _, p := range board.Pieces() {
		if p.Kind == chess.King {
			kings[p.Colour]++
		}
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if kings[colour] != 1 {
			return fmt.Errorf("%d %s kings: %w", kings[colour], colour, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field. A right is only
// granted when the King is on its home square and the Rook on its corner.
func parseCastlingRights(board *chess.Board, parts []string) error {
	board.Castling = chess.CastlingRights{}

	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		colour := chess.White
		if unicode.IsLower(c) {
			colour = chess.Black
		}
		var side chess.CastleSide
		switch unicode.ToLower(c) {
		case 'k':
			side = chess.Kingside
		case 'q':
			side = chess.Queenside
		default:
			return fmt.Errorf("invalid castling character: %c: %w", c, errors.ErrInvalidFEN)
		}

		king := board.King(colour)
		if king == nil || king.Square != chess.Sq(4, chess.HomeRank(colour)) {
			continue
		}
		rook := board.PieceAt(chess.Sq(side.CornerFile(), chess.HomeRank(colour)))
		if rook == nil || rook.Kind != chess.Rook || rook.Colour != colour {
			continue
		}
		board.SetRoleRook(colour, side, rook)
		board.Castling[colour][side] = true
	}
	return nil
}

// markMovedPieces derives has-moved flags a FEN string implies: pawns off
// their start rank, kings without rights and rooks without a castling role.
func markMovedPieces(board *chess.Board) {
	for _, p := range board.Pieces() {
		switch p.Kind {
		case chess.Pawn:
			p.HasMoved = p.Square.Rank != chess.HomeRank(p.Colour)+chess.ColourOffset(p.Colour)
		case chess.King:
			p.HasMoved = !board.Castling.Any(p.Colour)
		case chess.Rook:
			_, hasRole := board.RoleOf(p)
			p.HasMoved = !hasRole
		default:
			p.HasMoved = false
		}
	}
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	sb.WriteString(fenSuffix)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	grid := board.Grid()
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := grid[file][rank]
			if piece == nil {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
// A right is shown only while the King and the role Rook are both unmoved.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	letters := [2][2]byte{
		chess.White: {chess.Kingside: 'K', chess.Queenside: 'Q'},
		chess.Black: {chess.Kingside: 'k', chess.Queenside: 'q'},
	}
	hasCastling := false
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, side := range []chess.CastleSide{chess.Kingside, chess.Queenside} {
			if castlingRightHeld(board, colour, side) {
				sb.WriteByte(letters[colour][side])
				hasCastling = true
			}
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

func castlingRightHeld(board *chess.Board, colour chess.Colour, side chess.CastleSide) bool {
	if !board.Castling.Has(colour, side) {
		return false
	}
	king := board.King(colour)
	rook := board.RoleRook(colour, side)
	return king != nil && !king.HasMoved && rook != nil && !rook.HasMoved && board.Contains(rook)
}
