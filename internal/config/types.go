package config

import "time"

// EngineConfig describes how to spawn and talk to a UCI engine process.
type EngineConfig struct {
	// Path is the engine executable. Required; checked for existence and
	// executability when the driver starts.
	Path string
	// MoveTime is the per-request timeout used for both the handshake
	// and "go movetime".
	MoveTime time.Duration
	// StartOptions are setoption pairs applied immediately after the
	// handshake completes.
	StartOptions map[string]string
}

// DefaultEngineConfig returns the compiled-in fallback used when no
// override, environment variable, or persisted value supplies a field.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Path:     "stockfish",
		MoveTime: 1000 * time.Millisecond,
	}
}

// BoardConfig carries rendering metrics and colors consumed only by the
// terminal renderer. The core never interprets these; they are opaque
// key/value pairs so the renderer's shape can evolve independently of
// the settings store.
type BoardConfig struct {
	Metrics map[string]string
}
