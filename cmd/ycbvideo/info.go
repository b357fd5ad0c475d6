package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bft-labs/ycbvideo/internal/cliconfig"
	"github.com/bft-labs/ycbvideo/internal/info"
)

func newInfoCommand(cfg *cliconfig.Config, cfgPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info [DATASET_ROOT]",
		Short: "Report which sequences and frames of the dataset are available",
		Long: `Report which of the expected frame sequences are present under the
dataset root, and which frames of each sequence are complete.

  -v   also list available sequences and complete frames
  -vv  also state when a sequence has no incomplete frames`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				// The positional root counts as an explicit --dataset.
				if err := cmd.Flags().Set("dataset", args[0]); err != nil {
					return err
				}
			}
			if err := loadConfig(cmd, cfg, *cfgPath); err != nil {
				return err
			}

			loader, err := newLoader(*cfg)
			if err != nil {
				return err
			}

			report, err := info.Build(cmd.Context(), loader.Inventory(), info.DefaultExpected())
			if err != nil {
				return fmt.Errorf("inspect dataset: %w", err)
			}
			return info.Write(cmd.OutOrStdout(), report, cfg.Format, cfg.Verbosity)
		},
	}

	cmd.Flags().CountVarP(&cfg.Verbosity, "verbose", "v", "increase report detail (repeatable)")
	cmd.Flags().StringVar(&cfg.Format, "format", cfg.Format, "output format (text, yaml)")
	return cmd
}
