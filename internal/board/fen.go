package board

import (
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a six-field FEN string into a Position. It returns an
// *InvalidFEN describing exactly which field failed; the caller (Board)
// is responsible for leaving its prior state untouched on error.
func ParseFEN(fen string) (Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return Position{}, &InvalidFEN{Reason: FieldCount, Detail: fen}
	}

	pos := emptyPosition()

	if err := parsePlacement(&pos, fields[0]); err != nil {
		return Position{}, err
	}

	switch fields[1] {
	case "w":
		pos.SideToMove = White
	case "b":
		pos.SideToMove = Black
	default:
		return Position{}, &InvalidFEN{Reason: BadActiveColor, Detail: fields[1]}
	}

	castling, err := parseCastling(fields[2])
	if err != nil {
		return Position{}, err
	}
	pos.Castling = castling

	if fields[3] == "-" {
		pos.EnPassant = NoSquare
	} else if sq, ok := ParseSquare(fields[3]); ok {
		pos.EnPassant = sq
	} else {
		return Position{}, &InvalidFEN{Reason: BadEnPassant, Detail: fields[3]}
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return Position{}, &InvalidFEN{Reason: BadMoveCounter, Detail: fields[4]}
	}
	pos.HalfmoveClock = halfmove

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove < 1 {
		return Position{}, &InvalidFEN{Reason: BadMoveCounter, Detail: fields[5]}
	}
	pos.FullmoveNumber = fullmove

	return pos, nil
}

func parsePlacement(pos *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return &InvalidFEN{Reason: RankCount, Detail: placement}
	}

	for row, rankStr := range ranks {
		col := 0
		for _, ch := range rankStr {
			if col > 7 {
				return &InvalidFEN{Reason: RankFileSum, Detail: rankStr}
			}
			// A '9' is counted as a nine-file run, so the sum check
			// rejects it as RankFileSum rather than as a piece letter.
			if ch >= '1' && ch <= '9' {
				col += int(ch - '0')
				continue
			}
			piece := PieceFromChar(byte(ch))
			if piece == NoPiece {
				return &InvalidFEN{Reason: UnknownPiece, Detail: string(ch)}
			}
			pos.setPiece(NewSquare(row, col), piece)
			col++
		}
		if col != 8 {
			return &InvalidFEN{Reason: RankFileSum, Detail: rankStr}
		}
	}
	return nil
}

func parseCastling(s string) (CastlingRights, error) {
	if s == "-" {
		return NoCastling, nil
	}
	var cr CastlingRights
	for _, ch := range s {
		switch ch {
		case 'K':
			cr.WhiteKingSide = true
		case 'Q':
			cr.WhiteQueenSide = true
		case 'k':
			cr.BlackKingSide = true
		case 'q':
			cr.BlackQueenSide = true
		default:
			return NoCastling, &InvalidFEN{Reason: BadCastling, Detail: s}
		}
	}
	return cr, nil
}

// ToFEN renders pos as a six-field FEN string.
func (p *Position) ToFEN() string {
	var sb strings.Builder

	for row := 0; row < 8; row++ {
		empty := 0
		for col := 0; col < 8; col++ {
			piece := p.Grid[NewSquare(row, col)]
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if row < 7 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(p.Castling.String())

	sb.WriteByte(' ')
	sb.WriteString(p.EnPassant.String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.FullmoveNumber))

	return sb.String()
}
