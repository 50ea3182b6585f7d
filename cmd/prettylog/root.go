package main

import (
	"github.com/spf13/cobra"

	"prettylog/internal/config"
)

type rootFlags struct {
	configPath string
	verbose    bool
	noColor    bool
	noEmoji    bool
	noTime     bool
	logFile    string
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:           "prettylog",
		Short:         "Colorful, emoji-aware console logging",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log at DEBUG instead of INFO")
	rootCmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "Disable ANSI colors")
	rootCmd.PersistentFlags().BoolVar(&flags.noEmoji, "no-emoji", false, "Disable emoji glyphs")
	rootCmd.PersistentFlags().BoolVar(&flags.noTime, "no-time", false, "Hide timestamps")
	rootCmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Secondary plain-text log destination")

	rootCmd.AddCommand(newDemoCommand(flags))
	rootCmd.AddCommand(newStylesCommand())
	rootCmd.AddCommand(newConfigCommand(flags))

	return rootCmd
}

// resolveConfig merges file, environment, and explicitly set flags, in that
// order of increasing precedence.
func resolveConfig(cmd *cobra.Command, flags *rootFlags) (config.Config, error) {
	cfg := config.FromEnv()
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = flags.verbose
	}
	if cmd.Flags().Changed("no-color") {
		cfg.NoColor = flags.noColor
	}
	if cmd.Flags().Changed("no-emoji") {
		cfg.NoEmoji = flags.noEmoji
	}
	if cmd.Flags().Changed("no-time") {
		cfg.NoTime = flags.noTime
	}
	if cmd.Flags().Changed("log-file") {
		cfg.LogFile = flags.logFile
	}
	return cfg, nil
}
