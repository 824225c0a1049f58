package summarize

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"quotefinder/internal/deps"
	"quotefinder/internal/logging"
	"quotefinder/internal/services"
)

// DefaultCommand is the extractor executable looked up on PATH.
const DefaultCommand = "summarize"

// Fixed flags requesting plain extracted text with timestamp prefixes.
const (
	ExtractFlag    = "--extract"
	TimestampsFlag = "--timestamps"
)

// Config captures runtime settings for the extractor.
type Config struct {
	// Binary is the executable name or path. Empty uses DefaultCommand.
	Binary string
	// ExtraArgs are appended after the fixed flags.
	ExtraArgs []string
}

// CommandRunner executes name with args and returns captured stdout and stderr.
type CommandRunner func(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)

// Service runs the summarize extractor.
type Service struct {
	cfg           Config
	logger        *slog.Logger
	commandRunner CommandRunner
	lookup        func(deps.Requirement) deps.Status
}

// NewService creates a summarize service with the given configuration.
func NewService(cfg Config, logger *slog.Logger) *Service {
	if strings.TrimSpace(cfg.Binary) == "" {
		cfg.Binary = DefaultCommand
	}
	return &Service{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "summarize"),
		lookup: deps.CheckBinary,
	}
}

// WithCommandRunner sets a custom command runner (for testing). The binary
// availability check is skipped when a runner is installed.
func (s *Service) WithCommandRunner(runner CommandRunner) {
	s.commandRunner = runner
}

// Requirement describes the executable for dependency reporting.
func (s *Service) Requirement() deps.Requirement {
	return deps.SummarizeRequirement(s.cfg.Binary)
}

// Fetch runs the extractor for ref and returns its stdout.
func (s *Service) Fetch(ctx context.Context, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", services.Wrap(services.ErrConfiguration, "summarize", "fetch", "video reference required", nil)
	}

	if s.commandRunner == nil {
		if status := s.lookup(s.Requirement()); !status.Available {
			return "", services.Wrap(services.ErrNotFound, "summarize", "", status.Detail, nil)
		}
	}

	args := s.buildArgs(ref)
	s.logger.Debug("running transcript extractor",
		logging.String("binary", s.cfg.Binary),
		logging.String("args", strings.Join(args, " ")),
	)

	stdout, stderr, err := s.run(ctx, s.cfg.Binary, args...)
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &services.ToolError{
				Tool:     "summarize",
				ExitCode: exitErr.ExitCode(),
				Stderr:   string(stderr),
				Err:      err,
			}
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("summarize: %w", ctxErr)
		}
		return "", services.Wrap(services.ErrExternalTool, "summarize", "run", "", err)
	}

	if diag := strings.TrimSpace(string(stderr)); diag != "" {
		s.logger.Debug("extractor wrote diagnostics", logging.String("stderr", diag))
	}
	s.logger.Debug("transcript fetched", logging.Int("bytes", len(stdout)))
	return string(stdout), nil
}

func (s *Service) buildArgs(ref string) []string {
	args := make([]string, 0, 3+len(s.cfg.ExtraArgs))
	args = append(args, ref, ExtractFlag, TimestampsFlag)
	args = append(args, s.cfg.ExtraArgs...)
	return args
}

// run executes a command, using the custom runner if set.
func (s *Service) run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	if s.commandRunner != nil {
		return s.commandRunner(ctx, name, args...)
	}
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}
