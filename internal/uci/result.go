package uci

import (
	"strconv"
	"strings"
)

// BestMoveResult is the parsed outcome of a "go movetime" request: the
// chosen move in long algebraic form, an optional ponder move, and at
// most one of a centipawn or mate-in-plies score — whichever "info"
// line reported a score last wins, and reporting one clears the other.
type BestMoveResult struct {
	Move      string
	Ponder    string
	ScoreCP   *int
	ScoreMate *int
}

func parseBestMoveLine(line string) BestMoveResult {
	fields := strings.Fields(line)
	var result BestMoveResult
	for i := 0; i < len(fields); i++ {
		switch fields[i] {
		case "bestmove":
			if i+1 < len(fields) {
				result.Move = fields[i+1]
				i++
			}
		case "ponder":
			if i+1 < len(fields) {
				result.Ponder = fields[i+1]
				i++
			}
		}
	}
	return result
}

// applyScoreFromInfo scans buffered "info ..." lines, in arrival order,
// for "score cp <n>" or "score mate <n>" pairs. The two are mutually
// exclusive on the result: whichever kind was seen most recently wins,
// and seeing one clears the other.
func applyScoreFromInfo(result *BestMoveResult, lines []string) {
	for _, line := range lines {
		fields := strings.Fields(line)
		for i := 0; i+2 < len(fields); i++ {
			if fields[i] != "score" {
				continue
			}
			v, err := strconv.Atoi(fields[i+2])
			if err != nil {
				continue
			}
			switch fields[i+1] {
			case "cp":
				result.ScoreCP = &v
				result.ScoreMate = nil
			case "mate":
				result.ScoreMate = &v
				result.ScoreCP = nil
			}
		}
	}
}
