package parser

import (
	"regexp"
	"strings"

	"fixand/pkg/span"
)

// triggerRe matches the head of a conditional-rendering candidate.
// Group 1: condition text, lazily captured so trailing whitespace falls to \s*.
// The condition may not contain braces, so a match never spans two expressions.
var triggerRe = regexp.MustCompile(`\{([^{}]+?)\s*&&\s*\(`)

// leadingRe matches a trigger tail at the very start of a brace-free stretch.
var leadingRe = regexp.MustCompile(`^([^{}]*?)\s*&&\s*\(`)

// FindTrigger returns the first trigger in buf starting at or after from.
// Only Trigger and Condition are populated; locating the content is left to the caller.
func FindTrigger(buf string, from int) (span.Span, bool) {
	if from < 0 {
		from = 0
	}
	if from >= len(buf) {
		return span.Span{}, false
	}

	loc := triggerRe.FindStringSubmatchIndex(buf[from:])
	if loc == nil {
		return span.Span{}, false
	}

	return span.Span{
		Trigger: span.Position{
			Start: from + loc[0],
			End:   from + loc[1],
		},
		Condition: strings.TrimSpace(buf[from+loc[2] : from+loc[3]]),
	}, true
}

// LeadingTrigger reports whether buf, read from offset from, continues with
// `... && (` before reaching any brace. It returns the text in front of the
// operator and the offset just past the '('.
func LeadingTrigger(buf string, from int) (prefix string, end int, ok bool) {
	if from < 0 || from >= len(buf) {
		return "", 0, false
	}
	stretch := buf[from:]
	if i := strings.IndexAny(stretch, "{}"); i >= 0 {
		stretch = stretch[:i]
	}

	loc := leadingRe.FindStringSubmatchIndex(stretch)
	if loc == nil {
		return "", 0, false
	}
	return stretch[loc[2]:loc[3]], from + loc[1], true
}

// HasTrigger reports whether buf contains any trigger at all.
func HasTrigger(buf string) bool {
	return triggerRe.MatchString(buf)
}
