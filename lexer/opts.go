// SPDX-License-Identifier: MIT
package lexer

import (
	"github.com/sirupsen/logrus"
)

// Option defines the Scanner functional option type
type Option func(*Scanner)

// WithConfig replaces the Scanner's Config.
//
// Missing entries are populated with defaults.
func WithConfig(cfg Config) Option {
	return func(s *Scanner) {
		cfg.Validate()
		s.cfg = cfg
	}
}

// WithRules configures the rules option.
func WithRules(rules *RuleTable) Option {
	return func(s *Scanner) {
		if rules != nil {
			s.cfg.Rules = rules
		}
	}
}

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(s *Scanner) { s.cfg.Debug = debug } }

// WithBestEffort configures the best effort option.
func WithBestEffort(bestEffort bool) Option {
	return func(s *Scanner) { s.cfg.BestEffort = bestEffort }
}

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Scanner) {
		if logger != nil {
			s.cfg.Logger = logger
		}
	}
}
