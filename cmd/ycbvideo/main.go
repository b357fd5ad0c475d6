package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/ycbvideo/internal/cliconfig"
	logAdapter "github.com/bft-labs/ycbvideo/pkg/log"
	"github.com/bft-labs/ycbvideo/pkg/ycbvideo"
)

const helpDescription = `
Select and load frames of a YCB-Video style dataset.

A dataset root holds numbered sequences under data/ and an optional
data_syn/ directory of synthetic frames. Frames are chosen with selection
expressions of the form SEQUENCES/FRAMES:

  1/42             frame 000042 of sequence 0001
  [1,2]/[4,3]      frames 000004 and 000003 of sequences 0001 and 0002
  data/*           every frame of every numbered sequence
  40:50:2/::-1     every other sequence from 0040, frames in reverse
  data_syn/1       synthetic frame 000001

Configure via file ($HOME/.ycbvideo/config.toml), YCBVIDEO_* environment
variables, or flags.
`

var exampleUsage = strings.TrimSpace(`
  ycbvideo info /data/ycbvideo -v
  ycbvideo select --dataset /data/ycbvideo '1/*' '2/[2,3,5]'
  ycbvideo select --dataset /data/ycbvideo --file train.txt --shuffle --seed 7
  ycbvideo select --dataset /data/ycbvideo --file train.txt --watch
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log := cliconfig.Logger()
		log.Error().Err(err).Msg("ycbvideo")
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "ycbvideo",
		Short:         "Select and load frames of a YCB-Video style dataset",
		Long:          strings.TrimSpace(helpDescription),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.ycbvideo/config.toml)")
	root.PersistentFlags().StringVar(&cfg.DatasetRoot, "dataset", cfg.DatasetRoot, "dataset root containing data/ and data_syn/")
	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&cfg.RequireMeta, "require-meta", cfg.RequireMeta, "treat frames without a meta file as incomplete")
	root.PersistentFlags().BoolVar(&cfg.RequireSynBoxes, "require-syn-boxes", cfg.RequireSynBoxes, "treat synthetic frames without a box file as incomplete")

	root.AddCommand(
		newInfoCommand(&cfg, &cfgPath),
		newSelectCommand(&cfg, &cfgPath),
	)
	return root
}

// loadConfig layers the config file and the environment under the flags
// the user set on cmd, then validates the result.
func loadConfig(cmd *cobra.Command, cfg *cliconfig.Config, cfgPath string) error {
	cfgFile := cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	} else if !cliconfig.FileExists(cfgFile) {
		return fmt.Errorf("config file not found: %s", cfgFile)
	}

	// Build set of changed flags
	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(cfg, fc, changed); err != nil {
			return err
		}
	}

	// Environment overrides the file but not flags.
	if err := cliconfig.ApplyEnvConfig(cfg, changed); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cliconfig.SetLogLevel(cfg.LogLevel); err != nil {
		return err
	}

	log := cliconfig.Logger()
	log.Debug().Interface("config", cfg).Msg("configuration")
	return nil
}

func newLoader(cfg cliconfig.Config) (*ycbvideo.Loader, error) {
	opts := []ycbvideo.Option{
		ycbvideo.WithLogger(logAdapter.NewZerologAdapterWithLogger(cliconfig.Logger())),
		ycbvideo.WithPolicy(ycbvideo.Policy{
			RequireMeta:           cfg.RequireMeta,
			RequireSyntheticBoxes: cfg.RequireSynBoxes,
		}),
	}
	if cfg.Seed >= 0 {
		opts = append(opts, ycbvideo.WithSeed(uint64(cfg.Seed)))
	}

	loader, err := ycbvideo.New(ycbvideo.Config{DatasetRoot: cfg.DatasetRoot}, opts...)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	return loader, nil
}
