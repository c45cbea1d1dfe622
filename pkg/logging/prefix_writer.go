package logging

import (
	"bytes"
	"io"
)

// PrefixWriter wraps an io.Writer and prepends a prefix to every line.
// Partial lines are buffered until their newline arrives so a prefix is
// never emitted in the middle of a line.
type PrefixWriter struct {
	prefix  []byte
	out     io.Writer
	pending bytes.Buffer
}

// NewPrefixWriter creates a new PrefixWriter.
func NewPrefixWriter(prefix string, w io.Writer) *PrefixWriter {
	return &PrefixWriter{
		prefix: []byte(prefix),
		out:    w,
	}
}

// Write implements io.Writer. The returned count always covers the whole
// input on success because unfinished lines stay in the internal buffer.
func (pw *PrefixWriter) Write(p []byte) (int, error) {
	if _, err := pw.pending.Write(p); err != nil {
		return 0, err
	}

	for {
		i := bytes.IndexByte(pw.pending.Bytes(), '\n')
		if i < 0 {
			break
		}

		line := pw.pending.Next(i + 1)

		if _, err := pw.out.Write(pw.prefix); err != nil {
			return 0, err
		}
		if _, err := pw.out.Write(line); err != nil {
			return 0, err
		}
	}

	return len(p), nil
}
