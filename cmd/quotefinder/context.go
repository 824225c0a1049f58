package main

import (
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"quotefinder/internal/config"
	"quotefinder/internal/logging"
	"quotefinder/internal/services/summarize"
	"quotefinder/internal/source"
)

type commandContext struct {
	configFlag *string
	verbose    *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error

	runID string
}

func newCommandContext(configFlag *string, verbose *bool) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		verbose:    verbose,
		runID:      uuid.NewString(),
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureLogger builds the run logger on first use. Diagnostics go to the
// command's stderr so stdout only carries results.
func (c *commandContext) ensureLogger(stderr io.Writer) (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		verbose := c.verbose != nil && *c.verbose
		c.logger, c.loggerErr = logging.NewFromConfig(cfg, c.runID, verbose, stderr)
	})
	return c.logger, c.loggerErr
}

// transcriptSource picks a saved transcript when one was given and the
// summarize extractor otherwise.
func (c *commandContext) transcriptSource(cfg *config.Config, transcriptPath string, stdin io.Reader, logger *slog.Logger) source.Source {
	if path := strings.TrimSpace(transcriptPath); path != "" {
		return source.File{Path: path, Stdin: stdin}
	}
	return c.summarizeService(cfg, logger)
}

func (c *commandContext) summarizeService(cfg *config.Config, logger *slog.Logger) *summarize.Service {
	return summarize.NewService(summarize.Config{
		Binary:    cfg.Source.SummarizeBinary,
		ExtraArgs: cfg.Source.ExtraArgs,
	}, logger)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
