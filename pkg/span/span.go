package span

import (
	"fmt"
	"strings"
)

// Position represents a range within the buffer, identified by start and end indexes.
// End is exclusive.
type Position struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the position.
func (p Position) Len() int {
	return p.End - p.Start
}

// Span represents one `{cond && (...)}` candidate located in a buffer.
// Offsets are only valid against the buffer the span was found in.
type Span struct {
	Trigger   Position // `{cond && (`, from the opening brace through the opening paren
	Condition string   // trimmed text between `{` and `&&`
	Content   Position // inner text between `(` and its matching `)`
	End       int      // offset just past the closing `}`
}

// Tail closes a ternary opened by Head.
const Tail = "\n) : null}"

// Head renders the opening of the ternary: `{cond ? (` and a newline.
// Together with the inner content and Tail it replaces the whole span.
func (s *Span) Head() string {
	var b strings.Builder
	b.Grow(len(s.Condition) + 6)
	b.WriteByte('{')
	b.WriteString(s.Condition)
	b.WriteString(" ? (\n")
	return b.String()
}

// String returns a short description of the span for log output.
func (s *Span) String() string {
	return fmt.Sprintf("{%s && (...)} at %d", s.Condition, s.Trigger.Start)
}
