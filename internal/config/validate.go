package config

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
)

// weightSumTolerance absorbs decimal literals such as 0.7 + 0.3.
const weightSumTolerance = 1e-9

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSource(); err != nil {
		return err
	}
	if err := c.validateMatcher(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateSource() error {
	if strings.TrimSpace(c.Source.SummarizeBinary) == "" {
		return errors.New("source.summarize_binary must be set")
	}
	return nil
}

func (c *Config) validateMatcher() error {
	m := c.Matcher
	if m.RelevanceFloor <= 0 || m.RelevanceFloor > 1 {
		return errors.New("matcher.relevance_floor must be greater than 0 and at most 1")
	}
	if m.MaxCandidates <= 0 {
		return errors.New("matcher.max_candidates must be positive")
	}
	if m.WordWeight < 0 || m.WordWeight > 1 {
		return errors.New("matcher.word_weight must be between 0 and 1")
	}
	if m.SequenceWeight < 0 || m.SequenceWeight > 1 {
		return errors.New("matcher.sequence_weight must be between 0 and 1")
	}
	if sum := m.WordWeight + m.SequenceWeight; math.Abs(sum-1) > weightSumTolerance {
		return fmt.Errorf("matcher.word_weight and matcher.sequence_weight must sum to 1 (got %g)", sum)
	}
	return nil
}

func (c *Config) validateOutput() error {
	if !slices.Contains(OutputFormats, c.Output.Format) {
		return fmt.Errorf("output.format must be one of %s (got %q)", strings.Join(OutputFormats, ", "), c.Output.Format)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json (got %q)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error (got %q)", c.Logging.Level)
	}
	return nil
}
