// Package repl parses the interactive command surface into structured
// operations. It performs no I/O: the loop that reads lines, renders
// the board, and prompts for promotion choices lives outside this
// package and dispatches on the Command tag this parser returns.
package repl

import (
	"fmt"
	"strings"

	"github.com/chessplay/uciboard/internal/board"
)

// CommandKind tags which variant of Command ParseCommand produced.
type CommandKind int

const (
	Move CommandKind = iota
	Undo
	FEN
	Reset
	Help
	Quit
)

// Command is the parsed form of one REPL input line.
type Command struct {
	Kind CommandKind
	From board.Square // valid only when Kind == Move
	To   board.Square // valid only when Kind == Move
}

// ParseCommand turns one line of user input into a Command. The move
// grammar accepts the two squares separated by a space, a hyphen, a
// comma, or concatenated into one four-character token (e2e4). Command
// words (undo/u, fen, reset/r, help/?, quit/q) are matched
// case-insensitively; square tokens are matched case-sensitively, per
// FEN convention, through the same parser the Board uses.
func ParseCommand(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Command{}, fmt.Errorf("repl: empty command")
	}

	switch strings.ToLower(line) {
	case "undo", "u":
		return Command{Kind: Undo}, nil
	case "fen":
		return Command{Kind: FEN}, nil
	case "reset", "r":
		return Command{Kind: Reset}, nil
	case "help", "?":
		return Command{Kind: Help}, nil
	case "quit", "q":
		return Command{Kind: Quit}, nil
	}

	from, to, ok := parseMoveTokens(line)
	if !ok {
		return Command{}, fmt.Errorf("repl: unrecognized command %q", line)
	}
	fromSq, ok1 := board.ParseSquare(from)
	toSq, ok2 := board.ParseSquare(to)
	if !ok1 || !ok2 {
		return Command{}, fmt.Errorf("repl: invalid square in %q", line)
	}
	return Command{Kind: Move, From: fromSq, To: toSq}, nil
}

// parseMoveTokens splits a move command into its two square tokens,
// accepting a separating space, hyphen, comma, or no separator at all
// (a single four-character token).
func parseMoveTokens(line string) (from, to string, ok bool) {
	for _, sep := range []string{" ", "-", ","} {
		if idx := strings.Index(line, sep); idx >= 0 {
			return line[:idx], line[idx+len(sep):], true
		}
	}
	if len(line) == 4 {
		return line[:2], line[2:], true
	}
	return "", "", false
}
