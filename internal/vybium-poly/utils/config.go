package utils

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// DefaultMaxDegree bounds coefficient storage of a single polynomial
const DefaultMaxDegree = 1 << 20

// Config represents the configuration of a polynomial ring
type Config struct {
	// Storage limit: the highest degree a result may be allocated with
	MaxDegree int

	// Rendering parameters
	Variable      string // symbol of the indeterminate, e.g. "X"
	ImaginaryUnit string // suffix of imaginary literals, e.g. "j"

	// Logging
	LogLevel string // any level accepted by logrus.ParseLevel
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		MaxDegree:     DefaultMaxDegree,
		Variable:      "X",
		ImaginaryUnit: "j",
		LogLevel:      "info",
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.MaxDegree < 0 {
		return fmt.Errorf("max degree must be non-negative, got %d", c.MaxDegree)
	}

	if !isSymbol(c.Variable) {
		return fmt.Errorf("variable must be a single ASCII letter other than 'e' or 'E', got '%s'", c.Variable)
	}

	if !isSymbol(c.ImaginaryUnit) {
		return fmt.Errorf("imaginary unit must be a single ASCII letter other than 'e' or 'E', got '%s'", c.ImaginaryUnit)
	}

	if c.Variable == c.ImaginaryUnit {
		return fmt.Errorf("variable and imaginary unit must differ, both are '%s'", c.Variable)
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	return nil
}

// Level returns the parsed log level, falling back to Info
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// WithMaxDegree sets the storage limit
func (c *Config) WithMaxDegree(degree int) *Config {
	c.MaxDegree = degree
	return c
}

// WithVariable sets the indeterminate symbol
func (c *Config) WithVariable(symbol string) *Config {
	c.Variable = symbol
	return c
}

// WithImaginaryUnit sets the imaginary unit suffix
func (c *Config) WithImaginaryUnit(unit string) *Config {
	c.ImaginaryUnit = unit
	return c
}

// WithLogLevel sets the log level
func (c *Config) WithLogLevel(level string) *Config {
	c.LogLevel = level
	return c
}

// Clone creates a copy of the configuration
func (c *Config) Clone() *Config {
	return &Config{
		MaxDegree:     c.MaxDegree,
		Variable:      c.Variable,
		ImaginaryUnit: c.ImaginaryUnit,
		LogLevel:      c.LogLevel,
	}
}

// isSymbol accepts single ASCII letters that cannot be confused with the
// exponent marker of a float literal.
func isSymbol(s string) bool {
	if len(s) != 1 || s == "e" || s == "E" {
		return false
	}
	b := s[0]
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
