// Command repl is a minimal terminal driver for the board and UCI
// packages: it reads one line at a time, parses it with repl.ParseCommand,
// and dispatches to the Board or the engine driver. Rendering is a plain
// FEN-rank printout; a real terminal UI is out of scope here.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/chessplay/uciboard/internal/board"
	"github.com/chessplay/uciboard/internal/config"
	"github.com/chessplay/uciboard/internal/logging"
	"github.com/chessplay/uciboard/internal/repl"
	"github.com/chessplay/uciboard/internal/uci"
)

var enginePath = flag.String("engine", "", "path to the UCI engine executable (overrides stored/env config)")

func main() {
	flag.Parse()

	logger := logging.NewApexLogger("repl")

	store := config.Open(logger)
	defer store.Close()

	cfg, err := store.Load(config.EngineConfig{Path: *enginePath})
	if err != nil {
		logger.Printf("repl: %v, continuing with %+v", err, cfg)
	}

	driver := uci.New(uci.Config{
		Path:             cfg.Path,
		MoveTime:         cfg.MoveTime,
		HandshakeTimeout: cfg.MoveTime,
		StartOptions:     cfg.StartOptions,
		Logger:           logger,
	})

	ctx := context.Background()
	if err := driver.Start(ctx); err != nil {
		log.Fatalf("repl: could not start engine %q: %v", cfg.Path, err)
	}
	defer driver.Stop(ctx)

	if err := store.Save(cfg); err != nil {
		logger.Printf("repl: could not persist config: %v", err)
	}

	b := board.NewBoard()
	runLoop(ctx, b, driver)
}

func runLoop(ctx context.Context, b *board.Board, driver *uci.Driver) {
	printBoard(b)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		cmd, err := repl.ParseCommand(scanner.Text())
		if err != nil {
			fmt.Println(err)
			continue
		}

		switch cmd.Kind {
		case repl.Quit:
			return
		case repl.Help:
			printHelp()
		case repl.FEN:
			fmt.Println(b.ToFEN())
		case repl.Reset:
			*b = *board.NewBoard()
			driver.NewGame(ctx)
			printBoard(b)
		case repl.Undo:
			if _, ok := b.Undo(); !ok {
				fmt.Println("nothing to undo")
			}
			printBoard(b)
		case repl.Move:
			handleMove(ctx, b, driver, cmd)
		}
	}
}

func handleMove(ctx context.Context, b *board.Board, driver *uci.Driver, cmd repl.Command) {
	if !b.ApplyMove(cmd.From, cmd.To) {
		fmt.Println("illegal move")
		return
	}
	printBoard(b)

	if b.IsCheckmate() {
		fmt.Println("checkmate")
		return
	}

	driver.PositionFromMoves(ctx, b.UCIMoveList())
	result, ok := driver.BestMove(ctx)
	if !ok {
		fmt.Println("engine did not respond")
		return
	}

	if _, err := repl.ApplyBestMove(b, result); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("engine plays %s\n", result.Move)
	printBoard(b)

	if b.IsCheckmate() {
		fmt.Println("checkmate")
	}
}

func printHelp() {
	fmt.Println("commands: <from> <to> (e.g. e2e4), undo/u, fen, reset/r, help/?, quit/q")
}

func printBoard(b *board.Board) {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sb.WriteByte(b.ReadSquare(row, col))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	fmt.Print(sb.String())
}
