package rewrite

import (
	"strings"

	"go.uber.org/zap"

	"fixand/internal/parser"
	"fixand/pkg/span"
)

// PairParens returns, for every '(' in buf, the index of the ')' that brings
// the depth counted from it back to zero, or -1 if buf ends first. Entries for
// other bytes are -1. Quotes and comments are not special: every paren counts.
func PairParens(buf string) []int {
	pairs := make([]int, len(buf))
	var open []int
	for i := 0; i < len(buf); i++ {
		pairs[i] = -1
		switch buf[i] {
		case '(':
			open = append(open, i)
		case ')':
			if n := len(open); n > 0 {
				pairs[open[n-1]] = i
				open = open[:n-1]
			}
		}
	}
	return pairs
}

// scanner walks one buffer left to right in a single pass.
//
// A rewrite never adds or removes a paren or brace, so pairs, computed once
// over the input, stays valid for the text being produced. Closing tails of
// open rewrites are kept on closes, innermost last, and emitted when the
// cursor reaches them.
type scanner struct {
	buf    string
	pairs  []int
	logger *zap.Logger

	out      strings.Builder
	cursor   int
	closes   []int
	rewrites int
	skipped  int
}

func newScanner(buf string, logger *zap.Logger) *scanner {
	return &scanner{buf: buf, logger: logger}
}

func (s *scanner) run() string {
	// Fast path: nothing to do, hand back the input as is.
	if !parser.HasTrigger(s.buf) {
		return s.buf
	}
	s.pairs = PairParens(s.buf)
	s.out.Grow(len(s.buf) + len(s.buf)/8)

	for {
		sp, ok := parser.FindTrigger(s.buf, s.cursor)
		if !ok {
			break
		}
		s.copyUntil(sp.Trigger.Start)
		if !s.locate(&sp) {
			// Not the pattern; step past the brace and keep looking.
			s.copyUntil(sp.Trigger.Start + 1)
			continue
		}
		s.open(sp)
	}

	s.copyUntil(len(s.buf))
	return s.out.String()
}

// copyUntil copies input up to limit, emitting pending closing tails on the way.
func (s *scanner) copyUntil(limit int) {
	for n := len(s.closes); n > 0 && s.closes[n-1] < limit; n = len(s.closes) {
		at := s.closes[n-1]
		s.closes = s.closes[:n-1]
		s.out.WriteString(s.buf[s.cursor:at])
		s.out.WriteString(span.Tail)
		s.cursor = at + 2
	}
	if limit > s.cursor {
		s.out.WriteString(s.buf[s.cursor:limit])
		s.cursor = limit
	}
}

// closeFor returns the ')' matching the '(' at openAt if it is directly followed by '}'.
func (s *scanner) closeFor(openAt int) (int, string) {
	at := s.pairs[openAt]
	switch {
	case at < 0:
		return -1, "unbalanced parentheses"
	case at+1 >= len(s.buf) || s.buf[at+1] != '}':
		return -1, "no closing brace after expression"
	}
	return at, ""
}

// locate fills in the content range and end of sp. It reports false when the
// candidate has unbalanced parens or the matching ')' is not followed by '}'.
func (s *scanner) locate(sp *span.Span) bool {
	closeAt, reason := s.closeFor(sp.Trigger.End - 1)
	if closeAt < 0 {
		s.skip(sp, reason)
		return false
	}
	sp.Content = span.Position{Start: sp.Trigger.End, End: closeAt}
	sp.End = closeAt + 2
	return true
}

// open emits the ternary head for sp. The new head can itself form a trigger
// with the brace-free text that follows it; such follow-on triggers fold into
// the condition until none is left.
func (s *scanner) open(sp span.Span) {
	s.closes = append(s.closes, sp.Content.End)
	s.converted(&sp)

	for {
		prefix, end, ok := parser.LeadingTrigger(s.buf, sp.Content.Start)
		if !ok {
			break
		}
		next := span.Span{
			Trigger:   span.Position{Start: sp.Trigger.Start, End: end},
			Condition: strings.TrimSpace(sp.Condition + " ? (\n" + prefix),
		}
		if !s.locate(&next) {
			break
		}
		s.closes = append(s.closes, next.Content.End)
		s.converted(&next)
		sp = next
	}

	s.out.WriteString(sp.Head())
	s.cursor = sp.Content.Start
}

func (s *scanner) converted(sp *span.Span) {
	s.rewrites++
	s.logger.Debug("rewrote conditional",
		zap.String("condition", sp.Condition),
		zap.Int("offset", sp.Trigger.Start),
		zap.Int("content_len", sp.Content.Len()),
	)
}

func (s *scanner) skip(sp *span.Span, reason string) {
	s.skipped++
	s.logger.Debug("skipped candidate",
		zap.Stringer("span", sp),
		zap.String("reason", reason),
	)
}
