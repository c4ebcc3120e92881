package uci

import (
	"strconv"
	"strings"
)

// OptionType tags which variant of engine-advertised option an Option
// carries.
type OptionType int

const (
	OptionUnknown OptionType = iota
	OptionSpin
	OptionCheck
	OptionCombo
	OptionButton
	OptionText
)

func (t OptionType) String() string {
	switch t {
	case OptionSpin:
		return "spin"
	case OptionCheck:
		return "check"
	case OptionCombo:
		return "combo"
	case OptionButton:
		return "button"
	case OptionText:
		return "string"
	default:
		return "unknown"
	}
}

// Option is the parsed form of one "option name ... type ..." line an
// engine advertises during handshake.
type Option struct {
	Name    string
	Type    OptionType
	Default string
	Min     int
	Max     int
	Vars    []string
	Current string
	Raw     string // original line content; always set, load-bearing for OptionUnknown
}

// ParseOption parses the text following the leading "option " keyword.
// Malformed lines (no "name", no "type", or a "type" token the driver
// does not recognize) yield an OptionUnknown descriptor retaining the
// raw text rather than an error — one unrecognized option line must
// never abort a handshake.
func ParseOption(line string) Option {
	fields := strings.Fields(line)
	nameIdx := indexOf(fields, "name")
	typeIdx := indexOf(fields, "type")
	if nameIdx == -1 || typeIdx == -1 || typeIdx <= nameIdx+1 {
		return Option{Raw: line}
	}

	name := strings.Join(fields[nameIdx+1:typeIdx], " ")
	rest := fields[typeIdx+1:]
	if len(rest) == 0 {
		return Option{Raw: line}
	}

	opt := Option{Name: name, Raw: line}
	switch rest[0] {
	case "spin":
		opt.Type = OptionSpin
	case "check":
		opt.Type = OptionCheck
	case "combo":
		opt.Type = OptionCombo
	case "button":
		opt.Type = OptionButton
	case "string":
		opt.Type = OptionText
	default:
		return Option{Raw: line}
	}

	var vars []string
	i := 1
	for i < len(rest) {
		switch rest[i] {
		case "default":
			i++
			start := i
			for i < len(rest) && rest[i] != "min" && rest[i] != "max" && rest[i] != "var" {
				i++
			}
			opt.Default = strings.Join(rest[start:i], " ")
		case "min":
			i++
			if i < len(rest) {
				opt.Min, _ = strconv.Atoi(rest[i])
				i++
			}
		case "max":
			i++
			if i < len(rest) {
				opt.Max, _ = strconv.Atoi(rest[i])
				i++
			}
		case "var":
			i++
			start := i
			for i < len(rest) && rest[i] != "var" {
				i++
			}
			vars = append(vars, strings.Join(rest[start:i], " "))
		default:
			i++
		}
	}

	opt.Vars = vars
	opt.Current = opt.Default
	if opt.Type == OptionCombo && opt.Current == "" && len(vars) > 0 {
		opt.Current = vars[0]
	}
	return opt
}

func indexOf(fields []string, target string) int {
	for i, f := range fields {
		if f == target {
			return i
		}
	}
	return -1
}
