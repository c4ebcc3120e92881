package repl

import (
	"fmt"

	"github.com/chessplay/uciboard/internal/board"
	"github.com/chessplay/uciboard/internal/uci"
)

// ApplyBestMove re-parses a driver's BestMoveResult into the two
// algebraic squares and, if a promotion letter suffix is present,
// temporarily installs a single-shot promotion chooser that returns the
// requested piece for the moving side before restoring b's previous
// chooser.
func ApplyBestMove(b *board.Board, result uci.BestMoveResult) (board.MoveRecord, error) {
	if len(result.Move) < 4 {
		return board.MoveRecord{}, fmt.Errorf("repl: malformed engine move %q", result.Move)
	}
	from, ok1 := board.ParseSquare(result.Move[0:2])
	to, ok2 := board.ParseSquare(result.Move[2:4])
	if !ok1 || !ok2 {
		return board.MoveRecord{}, fmt.Errorf("repl: malformed engine move %q", result.Move)
	}

	if len(result.Move) >= 5 {
		mover := b.SideToMove()
		promoted := promotionFromChar(result.Move[4], mover)
		previous := b.PromotionChooser()
		b.SetPromotionChooser(func(board.Square, board.Square) board.Piece {
			return promoted
		})
		defer b.SetPromotionChooser(previous)
	}

	if !b.ApplyMove(from, to) {
		return board.MoveRecord{}, fmt.Errorf("repl: engine move %q is illegal in the current position", result.Move)
	}
	rec, _ := b.LastMove()
	return rec, nil
}

func promotionFromChar(c byte, color board.Color) board.Piece {
	switch c {
	case 'q':
		return board.NewPiece(board.Queen, color)
	case 'r':
		return board.NewPiece(board.Rook, color)
	case 'b':
		return board.NewPiece(board.Bishop, color)
	case 'n':
		return board.NewPiece(board.Knight, color)
	default:
		return board.NoPiece
	}
}
