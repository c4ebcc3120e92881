package board

// pseudoLegal reports whether moving the piece on from to to respects
// piece geometry and blockers, ignoring whether it leaves the mover's
// king in check. Castling's extra "squares not attacked" predicates are
// checked here too, since they gate whether the move is even attemptable
// — king safety after a normal move is checked separately by the caller.
func pseudoLegal(pos *Position, from, to Square) bool {
	piece := pos.PieceAt(from)
	if piece == NoPiece {
		return false
	}
	target := pos.PieceAt(to)
	if target != NoPiece && target.Color() == piece.Color() {
		return false
	}

	fr, fc := from.Row(), from.Col()
	tr, tc := to.Row(), to.Col()
	dr, dc := tr-fr, tc-fc

	switch piece.Type() {
	case Pawn:
		return pseudoLegalPawn(pos, from, to, piece.Color(), dr, dc)
	case Knight:
		ar, ac := abs(dr), abs(dc)
		return (ar == 1 && ac == 2) || (ar == 2 && ac == 1)
	case Bishop:
		return abs(dr) == abs(dc) && dr != 0 && pathClear(pos, fr, fc, tr, tc)
	case Rook:
		return (dr == 0) != (dc == 0) && pathClear(pos, fr, fc, tr, tc)
	case Queen:
		straight := (dr == 0) != (dc == 0)
		diagonal := dr != 0 && abs(dr) == abs(dc)
		return (straight || diagonal) && pathClear(pos, fr, fc, tr, tc)
	case King:
		if abs(dr) <= 1 && abs(dc) <= 1 && (dr != 0 || dc != 0) {
			return true
		}
		return dr == 0 && abs(dc) == 2 && castlingPseudoLegal(pos, from, to, piece.Color())
	default:
		return false
	}
}

func pseudoLegalPawn(pos *Position, from, to Square, c Color, dr, dc int) bool {
	dir := 1
	startRow := 1
	if c == White {
		dir = -1
		startRow = 6
	}

	if dc == 0 {
		if dr == dir {
			return pos.PieceAt(to) == NoPiece
		}
		if dr == 2*dir && from.Row() == startRow {
			between := NewSquare(from.Row()+dir, from.Col())
			return pos.PieceAt(between) == NoPiece && pos.PieceAt(to) == NoPiece
		}
		return false
	}

	if abs(dc) == 1 && dr == dir {
		if target := pos.PieceAt(to); target != NoPiece && target.Color() != c {
			return true
		}
		// En-passant: the destination may be empty if it is the
		// current en-passant target.
		return to == pos.EnPassant
	}
	return false
}

// castlingPseudoLegal checks the extra predicates a castling attempt
// needs beyond "king moves two files": the right must be set, the
// squares between king and rook must be empty, and the king's current,
// crossed, and destination squares must not be attacked.
func castlingPseudoLegal(pos *Position, from, to Square, c Color) bool {
	homeRow := 7
	if c == Black {
		homeRow = 0
	}
	if from.Row() != homeRow || from.Col() != 4 || to.Row() != homeRow {
		return false
	}
	kingSide := to.Col() == 6
	if !kingSide && to.Col() != 2 {
		return false
	}
	if !pos.Castling.Has(c, kingSide) {
		return false
	}

	rookCol := 7
	if !kingSide {
		rookCol = 0
	}
	rookSq := NewSquare(homeRow, rookCol)
	if pos.PieceAt(rookSq) != NewPiece(Rook, c) {
		return false
	}

	lo, hi := from.Col(), rookCol
	if lo > hi {
		lo, hi = hi, lo
	}
	for col := lo + 1; col < hi; col++ {
		if pos.PieceAt(NewSquare(homeRow, col)) != NoPiece {
			return false
		}
	}

	crossCol := 5
	if !kingSide {
		crossCol = 3
	}
	enemy := c.Other()
	for _, col := range []int{from.Col(), crossCol, to.Col()} {
		if IsAttacked(pos, NewSquare(homeRow, col), enemy) {
			return false
		}
	}
	return true
}

// applyTentative carries out phases 4-10 of the legality algorithm on an
// already pseudo-legal from/to pair: it performs the capture/en-passant/
// castling bookkeeping, invokes resolvePromotion when a pawn reaches its
// last rank (a nil resolvePromotion promotes to a queen), updates castling
// rights, sets or clears the en-passant target, and resets or increments
// the halfmove clock. It does not check king safety (phase 8), advance
// the fullmove number, or flip the side to move (phase 11) — callers that
// want a fully applied move do those after calling this.
func applyTentative(pos *Position, from, to Square, resolvePromotion PromotionChooser) MoveRecord {
	piece := pos.PieceAt(from)
	color := piece.Color()
	rec := MoveRecord{Piece: piece, From: from, To: to, Captured: NoPiece, Promoted: NoPiece}

	isEnPassant := piece.Type() == Pawn && to == pos.EnPassant && pos.PieceAt(to) == NoPiece && from.Col() != to.Col()
	isCastle := piece.Type() == King && abs(int(to.Col())-int(from.Col())) == 2

	if isEnPassant {
		dir := 1
		if color == White {
			dir = -1
		}
		capSq := NewSquare(to.Row()-dir, to.Col())
		rec.Captured = pos.PieceAt(capSq)
		rec.Capture = true
		rec.EnPassant = true
		pos.clearSquare(capSq)
	} else if captured := pos.PieceAt(to); captured != NoPiece {
		rec.Captured = captured
		rec.Capture = true
	}

	pos.clearSquare(from)
	pos.setPiece(to, piece)

	if isCastle {
		kingSide := to.Col() > from.Col()
		homeRow := from.Row()
		rookFrom, rookTo := NewSquare(homeRow, 7), NewSquare(homeRow, 5)
		if !kingSide {
			rookFrom, rookTo = NewSquare(homeRow, 0), NewSquare(homeRow, 3)
		}
		rook := pos.PieceAt(rookFrom)
		pos.clearSquare(rookFrom)
		pos.setPiece(rookTo, rook)
		if kingSide {
			rec.CastleK = true
		} else {
			rec.CastleQ = true
		}
	}

	lastRank := 7
	if color == White {
		lastRank = 0
	}
	if piece.Type() == Pawn && to.Row() == lastRank {
		chosen := NoPiece
		if resolvePromotion != nil {
			chosen = resolvePromotion(from, to)
		}
		if chosen == NoPiece || chosen.Color() != color || chosen.Type() == Pawn || chosen.Type() == King {
			chosen = NewPiece(Queen, color)
		}
		pos.setPiece(to, chosen)
		rec.Promotion = true
		rec.Promoted = chosen
	}

	updateCastlingRights(pos, from, to, rec)

	if piece.Type() == Pawn && abs(int(to.Row())-int(from.Row())) == 2 {
		skipped := NewSquare((from.Row()+to.Row())/2, from.Col())
		pos.EnPassant = skipped
	} else {
		pos.EnPassant = NoSquare
	}

	if piece.Type() == Pawn || rec.Capture {
		pos.HalfmoveClock = 0
	} else {
		pos.HalfmoveClock++
	}

	return rec
}

func updateCastlingRights(pos *Position, from, to Square, rec MoveRecord) {
	if rec.Piece.Type() == King {
		pos.Castling = pos.Castling.Clear(rec.Piece.Color())
		return
	}
	clearIfRookHome := func(sq Square) {
		row, col := sq.Row(), sq.Col()
		if col != 0 && col != 7 {
			return
		}
		switch {
		case row == 7 && col == 7:
			pos.Castling = pos.Castling.ClearOne(White, true)
		case row == 7 && col == 0:
			pos.Castling = pos.Castling.ClearOne(White, false)
		case row == 0 && col == 7:
			pos.Castling = pos.Castling.ClearOne(Black, true)
		case row == 0 && col == 0:
			pos.Castling = pos.Castling.ClearOne(Black, false)
		}
	}
	clearIfRookHome(from)
	clearIfRookHome(to)
}

// hasLegalReply reports whether color has at least one legal move in
// pos. It is the O(64*64) scan §4.1/§9 describe: every piece, every
// destination, pseudo-legal first, then a tentative apply and a king-
// safety rollback test. Promotion during the scan always promotes to
// queen — the legality question does not depend on the choice.
func hasLegalReply(pos *Position, color Color) bool {
	for from := Square(0); from < 64; from++ {
		piece := pos.Grid[from]
		if piece == NoPiece || piece.Color() != color {
			continue
		}
		for to := Square(0); to < 64; to++ {
			if from == to || !pseudoLegal(pos, from, to) {
				continue
			}
			trial := *pos
			applyTentative(&trial, from, to, alwaysQueen)
			king := trial.KingSquare(color)
			if king != NoSquare && !IsAttacked(&trial, king, color.Other()) {
				return true
			}
		}
	}
	return false
}

func alwaysQueen(from, to Square) Piece {
	return NoPiece // applyTentative overrides NoPiece to a queen of the mover's color
}
