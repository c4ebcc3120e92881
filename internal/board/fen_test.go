package board

import "testing"

func TestParseFENStartpos(t *testing.T) {
	pos, err := ParseFEN(StartFEN)
	if err != nil {
		t.Fatalf("ParseFEN(StartFEN) failed: %v", err)
	}
	if got := pos.ToFEN(); got != StartFEN {
		t.Errorf("round trip mismatch: got %q want %q", got, StartFEN)
	}
	if pos.SideToMove != White {
		t.Errorf("side to move = %v, want White", pos.SideToMove)
	}
	if pos.Castling != AllCastling {
		t.Errorf("castling = %v, want all", pos.Castling)
	}
}

func TestParseFENErrors(t *testing.T) {
	cases := []struct {
		name   string
		fen    string
		reason FENErrorReason
	}{
		{"too few fields", "8/8/8/8/8/8/8/8 w - - 0", FieldCount},
		{"too few ranks", "8/8/8/8/8/8/8 w KQkq - 0 1", RankCount},
		{"rank file sum too low", "7/8/8/8/8/8/8/8 w KQkq - 0 1", RankFileSum},
		{"rank file sum too high", "9/8/8/8/8/8/8/8 w KQkq - 0 1", RankFileSum},
		{"unknown piece", "xxxxxxxx/8/8/8/8/8/8/8 w KQkq - 0 1", UnknownPiece},
		{"bad active color", "8/8/8/8/8/8/8/8 x KQkq - 0 1", BadActiveColor},
		{"bad castling", "8/8/8/8/8/8/8/8 w XYZ - 0 1", BadCastling},
		{"bad en passant", "8/8/8/8/8/8/8/8 w KQkq z9 0 1", BadEnPassant},
		{"bad halfmove", "8/8/8/8/8/8/8/8 w KQkq - x 1", BadMoveCounter},
		{"bad fullmove", "8/8/8/8/8/8/8/8 w KQkq - 0 x", BadMoveCounter},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseFEN(c.fen)
			if err == nil {
				t.Fatalf("expected error, got nil")
			}
			invalid, ok := err.(*InvalidFEN)
			if !ok {
				t.Fatalf("expected *InvalidFEN, got %T", err)
			}
			if invalid.Reason != c.reason {
				t.Errorf("reason = %v, want %v", invalid.Reason, c.reason)
			}
		})
	}
}

func TestSquareRoundTrip(t *testing.T) {
	cases := []struct {
		s   string
		row int
		col int
	}{
		{"a8", 0, 0},
		{"h8", 0, 7},
		{"a1", 7, 0},
		{"h1", 7, 7},
		{"e4", 4, 4},
	}
	for _, c := range cases {
		sq, ok := ParseSquare(c.s)
		if !ok {
			t.Fatalf("ParseSquare(%q) failed", c.s)
		}
		if sq.Row() != c.row || sq.Col() != c.col {
			t.Errorf("ParseSquare(%q) = row %d col %d, want row %d col %d", c.s, sq.Row(), sq.Col(), c.row, c.col)
		}
		if got := sq.String(); got != c.s {
			t.Errorf("Square(%d).String() = %q, want %q", sq, got, c.s)
		}
	}
}

func TestParseSquareRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "e", "e44", "4e", "i1", "a9", "a0"} {
		if _, ok := ParseSquare(s); ok {
			t.Errorf("ParseSquare(%q) unexpectedly succeeded", s)
		}
	}
}
