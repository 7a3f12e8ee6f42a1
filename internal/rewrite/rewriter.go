package rewrite

import "go.uber.org/zap"

// PatternRewriter turns `{cond && (...)}` expressions into `{cond ? (...) : null}`.
type PatternRewriter interface {
	// Rewrite returns content with every target pattern converted.
	// Content without a target pattern is returned unchanged.
	Rewrite(content string) Result
}

// Result describes the outcome of one Rewrite call.
type Result struct {
	Content  string // transformed buffer
	Rewrites int    // patterns converted, nested ones included
	Skipped  int    // candidates with unbalanced parens or no closing brace

	original string
}

// Changed reports whether Content differs from the input.
func (r Result) Changed() bool {
	return r.Content != r.original
}

// Option configures a Rewriter.
type Option func(*Rewriter)

// WithLogger sets the logger used for per-candidate debug output.
func WithLogger(l *zap.Logger) Option {
	return func(rw *Rewriter) {
		if l != nil {
			rw.logger = l
		}
	}
}

// Rewriter is the default PatternRewriter. It holds no state between calls.
type Rewriter struct {
	logger *zap.Logger
}

var _ PatternRewriter = (*Rewriter)(nil)

// New constructs a Rewriter.
func New(opts ...Option) *Rewriter {
	rw := &Rewriter{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(rw)
	}
	return rw
}

// Rewrite implements PatternRewriter.
func (rw *Rewriter) Rewrite(content string) Result {
	s := newScanner(content, rw.logger)
	out := s.run()
	return Result{
		Content:  out,
		Rewrites: s.rewrites,
		Skipped:  s.skipped,
		original: content,
	}
}

// FixAndPattern rewrites content with a default Rewriter.
func FixAndPattern(content string) string {
	return New().Rewrite(content).Content
}
