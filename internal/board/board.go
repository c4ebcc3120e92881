package board

// Board is the single source of truth for the current chess position:
// it accepts tentative moves, validates them under full chess rules,
// updates state, and records reversible history. It owns its grid and
// history uniquely; the promotion chooser is a borrowed callback that
// must remain valid for the Board's lifetime.
type Board struct {
	pos     Position
	hist    history
	chooser PromotionChooser
}

// NewBoard returns a Board in the standard starting position.
func NewBoard() *Board {
	b := &Board{chooser: defaultPromotionChooser}
	pos, err := ParseFEN(StartFEN)
	if err != nil {
		panic("board: start FEN failed to parse: " + err.Error())
	}
	b.pos = pos
	return b
}

// FromFEN replaces the Board's position with the one described by fen.
// On failure the Board is left completely unchanged; on success both
// history stacks are cleared.
func (b *Board) FromFEN(fen string) error {
	pos, err := ParseFEN(fen)
	if err != nil {
		return err
	}
	b.pos = pos
	b.hist.clear()
	return nil
}

// ToFEN renders the Board's current position.
func (b *Board) ToFEN() string {
	return b.pos.ToFEN()
}

// SetPromotionChooser registers the function invoked when a pawn reaches
// its last rank. Passing nil restores the default (always queen).
func (b *Board) SetPromotionChooser(f PromotionChooser) {
	if f == nil {
		f = defaultPromotionChooser
	}
	b.chooser = f
}

// PromotionChooser returns the currently registered chooser, letting a
// caller save it before temporarily overriding it with SetPromotionChooser.
func (b *Board) PromotionChooser() PromotionChooser {
	return b.chooser
}

// ReadSquare is a read-only accessor for rendering: it returns the FEN
// letter for the piece at (row, col), or ' ' if the square is empty or
// out of range.
func (b *Board) ReadSquare(row, col int) byte {
	if row < 0 || row > 7 || col < 0 || col > 7 {
		return ' '
	}
	piece := b.pos.PieceAt(NewSquare(row, col))
	if piece == NoPiece {
		return ' '
	}
	return piece.String()[0]
}

// UCIMoveList returns the long-algebraic move history, suitable for a
// "position startpos moves …" UCI command.
func (b *Board) UCIMoveList() []string {
	moves := make([]string, len(b.hist.moves))
	for i, rec := range b.hist.moves {
		moves[i] = rec.UCI()
	}
	return moves
}

// ApplyMove attempts the move from `from` to `to`. It returns true iff
// the move is fully legal; on false the position is byte-for-byte
// identical to the pre-call state.
func (b *Board) ApplyMove(from, to Square) bool {
	if !from.IsValid() || !to.IsValid() || from == to {
		return false
	}
	mover := b.pos.PieceAt(from)
	if mover == NoPiece || mover.Color() != b.pos.SideToMove {
		return false
	}
	if !pseudoLegal(&b.pos, from, to) {
		return false
	}

	snapshot := b.pos
	rec := applyTentative(&b.pos, from, to, b.chooser)

	mySide := mover.Color()
	king := b.pos.KingSquare(mySide)
	if king == NoSquare || b.pos.kingCount(mySide) != 1 || b.pos.kingCount(mySide.Other()) != 1 {
		b.pos = snapshot
		return false
	}
	if IsAttacked(&b.pos, king, mySide.Other()) {
		b.pos = snapshot
		return false
	}

	if b.pos.SideToMove == Black {
		b.pos.FullmoveNumber++
	}
	b.pos.SideToMove = mySide.Other()

	opponentKing := b.pos.KingSquare(b.pos.SideToMove)
	if opponentKing != NoSquare && IsAttacked(&b.pos, opponentKing, mySide) {
		rec.Check = true
		if !hasLegalReply(&b.pos, b.pos.SideToMove) {
			rec.Checkmate = true
		}
	}

	b.hist.push(rec, snapshot)
	return true
}

// Undo rolls back the most recent successful move, returning its record.
// ok is false if there is no history to undo.
func (b *Board) Undo() (MoveRecord, bool) {
	rec, snapshot, ok := b.hist.pop()
	if !ok {
		return MoveRecord{}, false
	}
	b.pos = snapshot
	return rec, true
}

// InCheck reports whether the side to move is currently in check.
func (b *Board) InCheck() bool {
	king := b.pos.KingSquare(b.pos.SideToMove)
	return king != NoSquare && IsAttacked(&b.pos, king, b.pos.SideToMove.Other())
}

// IsCheckmate reports whether the side to move is in check and has no
// legal reply.
func (b *Board) IsCheckmate() bool {
	return b.InCheck() && !hasLegalReply(&b.pos, b.pos.SideToMove)
}

// IsStalemate reports whether the side to move is not in check but has
// no legal reply. The core never consults this automatically; it is
// exposed for a caller that wants to offer a draw.
func (b *Board) IsStalemate() bool {
	return !b.InCheck() && !hasLegalReply(&b.pos, b.pos.SideToMove)
}

// LastMove returns the most recently applied move record without
// undoing it. ok is false if no move has been applied since the Board
// was created or last loaded from FEN.
func (b *Board) LastMove() (MoveRecord, bool) {
	return b.hist.peek()
}

// SideToMove returns the color to move.
func (b *Board) SideToMove() Color {
	return b.pos.SideToMove
}
