package main

import (
	"errors"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"prettylog/internal/registry"
	"prettylog/internal/term"
)

func newDemoCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Emit one sample log line per severity",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}

			consoleCfg := cfg.Console()
			if !term.IsTerminal(os.Stdout) {
				consoleCfg.UseColor = false
			}

			reg := registry.New()
			defer reg.Close() //nolint:errcheck // best-effort flush on exit
			log, err := reg.Setup("prettylog", registry.Options{
				Verbose: cfg.Verbose,
				Console: consoleCfg,
				LogFile: cfg.LogFile,
			})
			if err != nil {
				return err
			}

			runID := uuid.NewString()
			log.Debug("Debug message", "run_id", runID)
			log.Info("Application started", "run_id", runID)
			log.Success("Process completed")
			log.Warning("Low memory")
			log.Error("Unexpected error", registry.Err(errors.New("connection reset by peer")))
			log.Critical("System crash")
			return nil
		},
	}
}
