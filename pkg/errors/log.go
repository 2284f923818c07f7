package errors

import (
	"fmt"
	"os"
)

// LogHandler is a Handler that logs errors to stderr.
// It is the host log surface for advisory diagnostics; nothing in the
// framework recovers based on what gets logged here.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
}

// HandleError logs a RosterError to stderr.
func (h *LogHandler) HandleError(err *RosterError) {
	if err == nil {
		return
	}
	if h.Verbose {
		fmt.Fprintf(os.Stderr, "[roster error] %s [%s]", err.Op, err.Kind)
		if err.Index >= 0 {
			fmt.Fprintf(os.Stderr, " index=%d", err.Index)
		}
		fmt.Fprintf(os.Stderr, ": %v\n", err.Err)
	} else {
		fmt.Fprintf(os.Stderr, "[roster error] %s: %v\n", err.Op, err.Err)
	}
}

// HandlePanic logs a PanicError to stderr.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Op != "" {
		fmt.Fprintf(os.Stderr, "[roster panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(os.Stderr, "[roster panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", err.StackTrace)
	}
}

// HandleBindError logs a BindError to stderr.
func (h *LogHandler) HandleBindError(err *BindError) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "[roster bind error] %s\n", err.Error())
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", err.StackTrace)
	}
}
