// SPDX-License-Identifier: MIT
package lexer

// REF: https://github.com/sqlfluff/sqlfluff/blob/main/src/sqlfluff/core/parser/lexer.py
// REF: https://gitlab.com/fisherprime/go-ddbms/-/blob/master/internal/v1/lexer.go

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
)

type (
	// Scanner converts source text into Tokens using a RuleTable.
	//
	// A Scanner holds no per-scan state & is safe for concurrent use.
	Scanner struct {
		cfg Config
	}

	// ScanError reports the position at which no rule matched.
	ScanError struct {
		// Near holds the unscanned source from Pos, truncated to at most nearLimit bytes.
		Near string
		Pos  int
	}

	// emitFunc receives scanned Tokens, returning false halts the scan.
	emitFunc func(Token) bool
)

const (
	nearLimit     = 20
	defBufferSize = 10
)

// Lexing errors.
var (
	ErrUnknownTokens = errors.New("unknown tokens")
	ErrScanHalted    = errors.New("scan halted")
)

var defScanner = New()

// New creates a new Scanner.
func New(opts ...Option) *Scanner {
	s := &Scanner{cfg: *DefaultConfig()}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Scan tokenizes source using the package's default Scanner.
func Scan(source string) ([]Token, error) { return defScanner.Scan(source) }

// Config obtains a copy of the Scanner's Config.
func (s *Scanner) Config() Config { return s.cfg }

// Rules obtains the Scanner's RuleTable.
func (s *Scanner) Rules() *RuleTable { return s.cfg.Rules }

// Logger obtains the logger.
func (s *Scanner) Logger() logrus.FieldLogger { return s.cfg.Logger }

// Scan tokenizes source, discarding whitespace.
//
// A *ScanError is returned when no rule matches at some position; the Tokens scanned up to that
// point are only returned when the Scanner is configured for best effort.
func (s *Scanner) Scan(source string) (tokens []Token, err error) {
	if tokens, err = s.ScanPartial(source); err != nil && !s.cfg.BestEffort {
		tokens = nil
	}

	return
}

// ScanPartial tokenizes source, returning the Tokens scanned before any failure alongside the
// error.
func (s *Scanner) ScanPartial(source string) (tokens []Token, err error) {
	tokens = make([]Token, 0, defBufferSize)

	err = s.scan(source, func(t Token) bool {
		tokens = append(tokens, t)
		return true
	})
	if err != nil && s.cfg.Debug {
		// Debug operation makes this operation expensive.
		s.cfg.Logger.Debugf("scanned tokens: %s", spew.Sdump(tokens))
	}

	return
}

// Lex tokenizes source, sending Items over the returned channel.
//
// The channel receives an ItemToken Item per Token then a terminal ItemEOF or ItemError Item
// before it is closed. A context.Context is used to terminate the lex operation.
func (s *Scanner) Lex(ctx context.Context, source string) <-chan Item {
	c := make(chan Item, defBufferSize)

	go func() {
		defer close(c)

		err := s.scan(source, func(t Token) bool {
			if ctx.Err() != nil {
				return false
			}

			select {
			case <-ctx.Done():
				return false
			case c <- Item{ID: ItemToken, Token: t}:
				return true
			}
		})
		if errors.Is(err, ErrScanHalted) {
			err = ctx.Err()
		}

		item := Item{ID: ItemEOF}
		if err != nil {
			item = Item{ID: ItemError, Err: err}
		}

		// The receiver may have abandoned a canceled Lex operation.
		select {
		case c <- item:
		case <-ctx.Done():
		}
	}()

	return c
}

// scan drives the matching loop, passing each non-whitespace Token to emit.
func (s *Scanner) scan(source string, emit emitFunc) (err error) {
	rules := s.cfg.Rules

	// marker holds the cursor position at the start of the previous iteration.
	pos, marker := 0, -1
	for pos < len(source) {
		if pos == marker {
			return s.stuck(source, pos)
		}
		marker = pos

		category, length := rules.Match(source[pos:])
		if length < 1 {
			continue
		}

		text := source[pos : pos+length]
		pos += length

		// Ignore white spaces, discard instead of emit.
		if category == CategoryWhitespace {
			continue
		}

		if s.cfg.Debug {
			// Debug operation makes this operation un-inlinable.
			s.cfg.Logger.Debugf("scanner emit: %s (%q)", category, text)
		}

		if !emit(Token{Category: category, Text: text, Pos: pos - length}) {
			return fmt.Errorf("%w at position %d", ErrScanHalted, pos)
		}
	}

	return
}

// stuck builds the ScanError for an unmatched position.
func (s *Scanner) stuck(source string, pos int) error {
	near := source[pos:]
	if len(near) > nearLimit {
		// Avoid splitting a multi-byte rune.
		limit := nearLimit
		for limit > 0 && !utf8.RuneStart(near[limit]) {
			limit--
		}
		near = near[:limit]
	}

	s.cfg.Logger.WithFields(logrus.Fields{"pos": pos, "near": near}).Debug("no rule matched")

	return &ScanError{Pos: pos, Near: near}
}

// Error is the error interface implementation for ScanError.
func (e *ScanError) Error() string {
	return fmt.Sprintf("%v at position %d: %q", ErrUnknownTokens, e.Pos, e.Near)
}

// Unwrap allows matching a ScanError against ErrUnknownTokens.
func (e *ScanError) Unwrap() error { return ErrUnknownTokens }
