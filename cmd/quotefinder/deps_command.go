package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"quotefinder/internal/deps"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "deps",
		Short: "Check that external programs are installed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger(cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			svc := ctx.summarizeService(cfg, logger)
			statuses := deps.CheckBinaries([]deps.Requirement{svc.Requirement()})

			if jsonOutput {
				if err := writeJSON(cmd, statuses); err != nil {
					return fmt.Errorf("write json: %w", err)
				}
			} else {
				stdout := cmd.OutOrStdout()
				colorize := shouldColorize(stdout)
				for _, line := range renderHeading("Dependencies", colorize) {
					fmt.Fprintln(stdout, line)
				}
				for _, line := range dependencyLines(statuses, colorize) {
					fmt.Fprintln(stdout, line)
				}
			}
			if missing := missingRequired(statuses); len(missing) > 0 {
				return fmt.Errorf("missing required dependencies: %s", strings.Join(missing, ", "))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func dependencyLines(statuses []deps.Status, colorize bool) []string {
	lines := make([]string, 0, len(statuses)+1)
	var missing []string
	for _, dep := range statuses {
		if dep.Available {
			detail := "Ready"
			switch {
			case dep.Path != "":
				detail = fmt.Sprintf("Ready (%s)", dep.Path)
			case dep.Command != "":
				detail = fmt.Sprintf("Ready (command: %s)", dep.Command)
			}
			lines = append(lines, renderDepLine(dep.Name, depReady, detail, colorize))
			continue
		}

		detail := strings.TrimSpace(dep.Detail)
		if detail == "" {
			detail = "not available"
		}
		state := depMissing
		if dep.Optional {
			state = depOptionalMissing
		}
		lines = append(lines, renderDepLine(dep.Name, state, detail, colorize))
		missing = append(missing, dep.Name)
	}
	if len(missing) > 0 {
		lines = append(lines, renderDepLine("Missing dependencies", depOptionalMissing, strings.Join(missing, ", "), colorize))
	}
	return lines
}

func missingRequired(statuses []deps.Status) []string {
	var missing []string
	for _, dep := range statuses {
		if !dep.Available && !dep.Optional {
			missing = append(missing, dep.Name)
		}
	}
	return missing
}
