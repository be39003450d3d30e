package render

import (
	"io"
	"strings"
)

// Sink is an append-only text destination with two primitives. Output is
// written incrementally with no rollback; a failed conversion leaves a
// valid prefix behind.
type Sink interface {
	// Append writes text as-is.
	Append(text string)

	// AppendLine writes text followed by a newline.
	AppendLine(text string)
}

// StreamSink writes straight through to an io.Writer, unbuffered. The first
// write error is retained and later appends become no-ops.
type StreamSink struct {
	w   io.Writer
	err error
}

// NewStreamSink returns a sink writing to w.
func NewStreamSink(w io.Writer) *StreamSink {
	return &StreamSink{w: w}
}

// Append writes text as-is.
func (s *StreamSink) Append(text string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, text)
}

// AppendLine writes text followed by a newline.
func (s *StreamSink) AppendLine(text string) {
	s.Append(text + "\n")
}

// Err returns the first write error encountered, if any.
func (s *StreamSink) Err() error {
	return s.err
}

// BufferSink collects output in memory.
type BufferSink struct {
	b strings.Builder
}

// Append writes text as-is.
func (s *BufferSink) Append(text string) {
	s.b.WriteString(text)
}

// AppendLine writes text followed by a newline.
func (s *BufferSink) AppendLine(text string) {
	s.b.WriteString(text)
	s.b.WriteByte('\n')
}

// String returns everything appended so far.
func (s *BufferSink) String() string {
	return s.b.String()
}
