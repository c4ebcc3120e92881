package repl

import "testing"

func TestParseCommandWords(t *testing.T) {
	cases := map[string]CommandKind{
		"undo": Undo, "U": Undo,
		"fen": FEN, "FEN": FEN,
		"reset": Reset, "R": Reset,
		"help": Help, "?": Help,
		"quit": Quit, "Q": Quit,
	}
	for input, want := range cases {
		got, err := ParseCommand(input)
		if err != nil {
			t.Fatalf("ParseCommand(%q) returned error: %v", input, err)
		}
		if got.Kind != want {
			t.Errorf("ParseCommand(%q).Kind = %v, want %v", input, got.Kind, want)
		}
	}
}

func TestParseCommandMoveSeparators(t *testing.T) {
	for _, input := range []string{"e2 e4", "e2-e4", "e2,e4", "e2e4"} {
		cmd, err := ParseCommand(input)
		if err != nil {
			t.Fatalf("ParseCommand(%q) returned error: %v", input, err)
		}
		if cmd.Kind != Move {
			t.Fatalf("ParseCommand(%q).Kind = %v, want Move", input, cmd.Kind)
		}
		if cmd.From.String() != "e2" || cmd.To.String() != "e4" {
			t.Errorf("ParseCommand(%q) = from %v to %v, want e2/e4", input, cmd.From, cmd.To)
		}
	}
}

func TestParseCommandRejectsMalformed(t *testing.T) {
	for _, input := range []string{"", "   ", "e2e9", "4ee2", "notacommand", "e2"} {
		if _, err := ParseCommand(input); err == nil {
			t.Errorf("ParseCommand(%q) expected an error", input)
		}
	}
}

func TestParseCommandIsCaseInsensitiveForWordsOnly(t *testing.T) {
	if _, err := ParseCommand("UNDO"); err != nil {
		t.Errorf("ParseCommand(%q) should accept any case for command words: %v", "UNDO", err)
	}
	// Square tokens are case-sensitive per FEN convention; uppercase files
	// are not valid algebraic notation.
	if _, err := ParseCommand("E2E4"); err == nil {
		t.Errorf("ParseCommand(%q) should reject uppercase square tokens", "E2E4")
	}
}
