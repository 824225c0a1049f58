package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"quotefinder/internal/config"
	"quotefinder/internal/finder"
	"quotefinder/internal/logging"
	"quotefinder/internal/matcher"
)

const noMatchMessage = "No matches found. Try a shorter quote fragment."

type findOptions struct {
	format     string
	minScore   float64
	limit      int
	transcript string
}

func runFind(cmd *cobra.Command, ctx *commandContext, opts *findOptions, ref, quote string) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	format, err := opts.resolveFormat(cfg)
	if err != nil {
		return err
	}
	policy, err := opts.matcherOptions(cmd, cfg)
	if err != nil {
		return err
	}
	logger, err := ctx.ensureLogger(cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	policy.Logger = logger

	logger.Debug("quotefinder run starting",
		logging.String("ref", ref),
		logging.String("format", format),
		logging.Bool("saved_transcript", strings.TrimSpace(opts.transcript) != ""),
	)

	src := ctx.transcriptSource(cfg, opts.transcript, cmd.InOrStdin(), logger)
	result, err := finder.New(src, matcher.New(policy), logger).Find(cmd.Context(), ref, quote)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		if err := writeJSON(cmd, newFindPayload(result)); err != nil {
			return fmt.Errorf("write json: %w", err)
		}
	case "table":
		if len(result.Matches) == 0 {
			fmt.Fprintln(out, noMatchMessage)
			break
		}
		fmt.Fprintln(out, renderMatchTable(result))
	default:
		if len(result.Matches) == 0 {
			fmt.Fprintln(out, noMatchMessage)
			break
		}
		for _, line := range renderMatchText(result, shouldColorize(out)) {
			fmt.Fprintln(out, line)
		}
	}

	if len(result.Matches) == 0 {
		return errNoMatch
	}
	return nil
}

func (o *findOptions) resolveFormat(cfg *config.Config) (string, error) {
	format := strings.ToLower(strings.TrimSpace(o.format))
	if format == "" {
		format = cfg.Output.Format
	}
	if !slices.Contains(config.OutputFormats, format) {
		return "", fmt.Errorf("--format must be one of %s (got %q)", strings.Join(config.OutputFormats, ", "), o.format)
	}
	return format, nil
}

// matcherOptions starts from the configured policy and applies any flags the
// user set explicitly.
func (o *findOptions) matcherOptions(cmd *cobra.Command, cfg *config.Config) (matcher.Options, error) {
	policy := matcher.Options{
		RelevanceFloor: cfg.Matcher.RelevanceFloor,
		MaxCandidates:  cfg.Matcher.MaxCandidates,
		Weights: matcher.Weights{
			Word:     cfg.Matcher.WordWeight,
			Sequence: cfg.Matcher.SequenceWeight,
		},
	}
	flags := cmd.Flags()
	if flags.Changed("min-score") {
		if o.minScore <= 0 || o.minScore > 1 {
			return policy, fmt.Errorf("--min-score must be greater than 0 and at most 1 (got %g)", o.minScore)
		}
		policy.RelevanceFloor = o.minScore
	}
	if flags.Changed("limit") {
		if o.limit <= 0 {
			return policy, fmt.Errorf("--limit must be positive (got %d)", o.limit)
		}
		policy.MaxCandidates = o.limit
	}
	return policy, nil
}
