// SPDX-License-Identifier: MIT
package lexer

import (
	"github.com/sirupsen/logrus"
)

type (
	// Config defines configuration options for the Scanner's operations.
	Config struct {
		Logger logrus.FieldLogger

		// Rules is the RuleTable used for matching, the package default is used when nil.
		Rules *RuleTable

		Debug bool

		// BestEffort returns the Tokens scanned before a failure alongside the error.
		BestEffort bool
	}
)

// defRules is built once & shared read-only by Scanners lacking a RuleTable.
var defRules = BuildRuleTable()

// DefaultRules obtains the shared default RuleTable.
func DefaultRules() *RuleTable { return defRules }

// DefaultConfig configures the Scanner's Config.
func DefaultConfig() *Config {
	return &Config{
		Logger: logrus.New(),
		Rules:  defRules,
	}
}

// Validate populates missing Config entries with defaults.
func (c *Config) Validate() {
	if c.Rules == nil {
		c.Rules = defRules
	}
	if c.Logger == nil {
		c.Logger = logrus.New()
	}
}
