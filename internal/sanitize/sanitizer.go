package sanitize

import (
	"fmt"
	"log/slog"
	"regexp"
)

// Strategy is one way of sanitizing an HTML string. Implementations are
// interchangeable; the Sanitizer owns the fallback chain and is the only
// place that knows about degradation between them.
type Strategy interface {
	Name() string
	Sanitize(html string) (string, error)
}

// Sanitizer is the public entry point for cleaning rich-text HTML. It tries
// its strategies in order and, when every one fails, strips all markup as a
// last resort. Sanitize never panics and never returns an error.
type Sanitizer struct {
	policy      *Policy
	chain       []Strategy
	logger      *slog.Logger
	textualOnly bool
}

// Option configures a Sanitizer at construction time.
type Option func(*Sanitizer)

// WithPolicy replaces the default policy.
func WithPolicy(p *Policy) Option {
	return func(s *Sanitizer) { s.policy = p }
}

// WithLogger sets the logger used for fallback diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Sanitizer) { s.logger = l }
}

// TextualOnly drops the structured strategy, leaving only the regex-based
// pass. It mirrors environments where no tree parser is available and is
// mainly useful for exercising the degraded path.
func TextualOnly() Option {
	return func(s *Sanitizer) { s.textualOnly = true }
}

// New builds a Sanitizer with the default policy and the full strategy
// chain: structured mode first, textual mode as fallback. The chain is
// built after all options run, so option order does not matter.
func New(opts ...Option) *Sanitizer {
	s := &Sanitizer{
		policy: DefaultPolicy(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.textualOnly {
		s.chain = []Strategy{NewPatternStrategy(s.policy)}
	} else {
		s.chain = []Strategy{NewTreeStrategy(s.policy), NewPatternStrategy(s.policy)}
	}
	return s
}

// Policy returns the frozen policy this sanitizer enforces.
func (s *Sanitizer) Policy() *Policy { return s.policy }

// Sanitize cleans input under the policy. Strategy failures are logged and
// fall through to the next strategy; if the whole chain fails the result is
// input with every <...> construct removed.
func (s *Sanitizer) Sanitize(input string) string {
	for _, st := range s.chain {
		out, err := runStrategy(st, input)
		if err != nil {
			s.logger.Warn("sanitize strategy failed, falling back",
				"strategy", st.Name(), "error", err)
			continue
		}
		return out
	}
	s.logger.Warn("all sanitize strategies failed, stripping tags")
	return StripTags(input)
}

// runStrategy shields the chain from a misbehaving strategy: a panic is
// converted into an error so the facade can fall back.
func runStrategy(st Strategy, input string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("strategy %s panicked: %v", st.Name(), r)
		}
	}()
	return st.Sanitize(input)
}

var tagRe = regexp.MustCompile(`<[^>]*>`)

// StripTags removes every <...> construct, leaving only text content. It is
// the last-resort output of the fallback chain.
func StripTags(input string) string {
	return tagRe.ReplaceAllString(input, "")
}
