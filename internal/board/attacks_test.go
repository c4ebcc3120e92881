package board

import "testing"

func sq(t *testing.T, s string) Square {
	t.Helper()
	q, ok := ParseSquare(s)
	if !ok {
		t.Fatalf("bad square %q", s)
	}
	return q
}

func TestIsAttackedRookStraightLine(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if !IsAttacked(&pos, sq(t, "a8"), White) {
		t.Errorf("rook on a1 should attack a8 along an open file")
	}
	if IsAttacked(&pos, sq(t, "b8"), White) {
		t.Errorf("rook on a1 should not attack b8")
	}
}

func TestIsAttackedBlockedByPieceInPath(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/P7/8/8/R3K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if IsAttacked(&pos, sq(t, "a8"), White) {
		t.Errorf("rook on a1 should not attack a8 through its own pawn on a4")
	}
}

func TestIsAttackedBishopDiagonal(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/8/8/4K2B w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if !IsAttacked(&pos, sq(t, "a8"), White) {
		t.Errorf("bishop on h1 should attack a8 along the long diagonal")
	}
}

func TestIsAttackedKnightLShape(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/8/8/4K1N1 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if !IsAttacked(&pos, sq(t, "e2"), White) {
		t.Errorf("knight on g1 should attack e2")
	}
	if !IsAttacked(&pos, sq(t, "f3"), White) {
		t.Errorf("knight on g1 should attack f3")
	}
	if IsAttacked(&pos, sq(t, "g3"), White) {
		t.Errorf("knight on g1 should not attack g3")
	}
}

func TestIsAttackedPawnCapturesNotPush(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/4P3/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if IsAttacked(&pos, sq(t, "e4"), White) {
		t.Errorf("pawn attacks diagonally, not straight ahead")
	}
	if !IsAttacked(&pos, sq(t, "d4"), White) {
		t.Errorf("white pawn on e3 should attack d4")
	}
	if !IsAttacked(&pos, sq(t, "f4"), White) {
		t.Errorf("white pawn on e3 should attack f4")
	}
}

func TestIsAttackedKingAdjacent(t *testing.T) {
	pos, err := ParseFEN("8/8/8/8/4k3/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if !IsAttacked(&pos, sq(t, "e3"), Black) {
		t.Errorf("king on e4 should attack adjacent square e3")
	}
	if IsAttacked(&pos, sq(t, "e2"), Black) {
		t.Errorf("king on e4 should not attack e2, two squares away")
	}
}

func TestPseudoLegalMatchesAttackGeometryForSlidingPieces(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/8/8/4K2R w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	from := sq(t, "h1")
	if !pseudoLegal(&pos, from, sq(t, "h8")) {
		t.Errorf("rook on h1 should be able to reach h8 on an empty file")
	}
	if pseudoLegal(&pos, from, sq(t, "g2")) {
		t.Errorf("rook on h1 cannot move diagonally")
	}
	h8 := sq(t, "h8")
	if !attacksSquare(&pos, from, Rook, h8.Row(), h8.Col()) {
		t.Errorf("attacksSquare(h1, Rook, h8) should be true, matching pseudoLegal")
	}
	if attacksSquare(&pos, from, Rook, from.Row(), from.Col()) {
		t.Errorf("a piece does not attack its own square")
	}
}
