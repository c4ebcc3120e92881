package board

// MoveRecord describes one successfully applied move in enough detail to
// render it, replay it over UCI, and reconstruct check/checkmate status.
type MoveRecord struct {
	Piece     Piece
	From, To  Square
	Capture   bool
	EnPassant bool
	CastleK   bool // king-side castle
	CastleQ   bool // queen-side castle
	Promotion bool
	Captured  Piece // NoPiece if Capture is false
	Promoted  Piece // NoPiece if Promotion is false
	Check     bool
	Checkmate bool
}

// UCI renders the move in long algebraic notation with an optional
// promotion-letter suffix, e.g. "e2e4" or "e7e8q".
func (m MoveRecord) UCI() string {
	s := m.From.String() + m.To.String()
	if m.Promotion {
		s += string(m.Promoted.Type().Char())
	}
	return s
}

// PromotionChooser resolves a pawn's promotion piece when it reaches its
// last rank. It must return a piece of the mover's color; any other
// answer (including NoPiece) is treated as "no preference" and overridden
// to a queen.
type PromotionChooser func(from, to Square) Piece

func defaultPromotionChooser(Square, Square) Piece {
	return NoPiece
}
