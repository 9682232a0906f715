package core

import "io"

// DebugWriter is a function type for writing debug messages, one line per call
type DebugWriter func(string)

// LineWriter adapts w (a UART, a buffer) to a DebugWriter.
// Each message is terminated with "\r\n"; write errors are dropped.
func LineWriter(w io.Writer) DebugWriter {
	return func(s string) {
		w.Write([]byte(s))
		w.Write([]byte("\r\n"))
	}
}
