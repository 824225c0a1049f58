package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var verbose bool
	var opts findOptions

	ctx := newCommandContext(&configFlag, &verbose)

	rootCmd := &cobra.Command{
		Use:   "quotefinder [flags] <video-ref> <quote>",
		Short: "Find where a quote is spoken in a video",
		Long: "quotefinder pulls a timestamped transcript for a video, ranks each line\n" +
			"against the quote, and prints the best matches with links that start\n" +
			"playback at the matching moment.",
		Example: `  quotefinder "https://www.youtube.com/watch?v=abc" "the quick brown fox"
  quotefinder --transcript talk.txt "https://youtu.be/abc" "brown fox" --format table`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(cmd, ctx, &opts, args[0], args[1])
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")

	flags := rootCmd.Flags()
	flags.StringVar(&opts.format, "format", "", "Output format: text, table, or json (default from config)")
	flags.Float64Var(&opts.minScore, "min-score", 0, "Minimum score a line needs to be reported (default from config)")
	flags.IntVar(&opts.limit, "limit", 0, "Maximum number of candidates to report (default from config)")
	flags.StringVar(&opts.transcript, "transcript", "", "Read a saved transcript from this file (\"-\" for stdin) instead of running summarize")

	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newDepsCommand(ctx))

	return rootCmd
}
