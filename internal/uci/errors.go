package uci

import "errors"

var (
	// ErrEngineUnavailable means the configured executable is missing,
	// unreadable, or failed to spawn.
	ErrEngineUnavailable = errors.New("uci: engine unavailable")
	// ErrEngineTimeout means a sentinel line was not observed within the
	// request's deadline. The driver remains usable afterward.
	ErrEngineTimeout = errors.New("uci: timed out waiting for engine response")
	// ErrEngineExited means the engine process exited while a request
	// was pending. The driver transitions to Terminated.
	ErrEngineExited = errors.New("uci: engine process exited")
)
