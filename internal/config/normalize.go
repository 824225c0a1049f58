package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeSource()
	c.normalizeOutput()
	return c.normalizeLogging()
}

func (c *Config) normalizeSource() {
	if value, ok := os.LookupEnv(summarizeBinaryEnv); ok && strings.TrimSpace(value) != "" {
		c.Source.SummarizeBinary = value
	}
	c.Source.SummarizeBinary = strings.TrimSpace(c.Source.SummarizeBinary)
	if c.Source.SummarizeBinary == "" {
		c.Source.SummarizeBinary = defaultSummarizeBinary
	}
	args := c.Source.ExtraArgs[:0]
	for _, arg := range c.Source.ExtraArgs {
		if arg = strings.TrimSpace(arg); arg != "" {
			args = append(args, arg)
		}
	}
	c.Source.ExtraArgs = args
}

func (c *Config) normalizeOutput() {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultOutputFormat
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.File) != "" {
		expanded, err := expandPath(strings.TrimSpace(c.Logging.File))
		if err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
		c.Logging.File = expanded
	}
	return nil
}
