package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bft-labs/ycbvideo/internal/cliconfig"
	logAdapter "github.com/bft-labs/ycbvideo/pkg/log"
	"github.com/bft-labs/ycbvideo/pkg/ycbvideo"
	"github.com/bft-labs/ycbvideo/plugins/selectionwatcher"
)

func newSelectCommand(cfg *cliconfig.Config, cfgPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select [EXPR...]",
		Short: "Resolve selection expressions into frame descriptors",
		Long: `Resolve selection expressions into an ordered list of frames and print
one "<sequence>/<frame>" line per frame.

Expressions are taken from the arguments or, when none are given, from the
file named by --file (one expression per line, relative to the dataset
root). With --load every frame is read from disk and summarized. With
--watch the selection is resolved again whenever the expression file or
the dataset changes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd, cfg, *cfgPath); err != nil {
				return err
			}
			if len(args) > 0 {
				cfg.SelectionFile = ""
			} else if cfg.SelectionFile == "" {
				return fmt.Errorf("no expressions: pass EXPR arguments or --file")
			}

			loader, err := newLoader(*cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			if cfg.Watch {
				return watchSelection(ctx, out, loader, *cfg, args)
			}

			var set *ycbvideo.FrameSet
			if cfg.SelectionFile != "" {
				set, err = loader.FramesFromFile(ctx, cfg.SelectionFile, cfg.Shuffle)
			} else {
				set, err = loader.Frames(ctx, args, cfg.Shuffle)
			}
			if err != nil {
				return err
			}
			return writeSelection(ctx, out, set, *cfg)
		},
	}

	cmd.Flags().StringVarP(&cfg.SelectionFile, "file", "f", cfg.SelectionFile, "file with one selection expression per line")
	cmd.Flags().BoolVar(&cfg.Shuffle, "shuffle", cfg.Shuffle, "shuffle the selected frames")
	cmd.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "shuffle seed (negative picks a random seed)")
	cmd.Flags().BoolVar(&cfg.Load, "load", cfg.Load, "load every selected frame and print a summary line for it")
	cmd.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "resolve again whenever the expression file or the dataset changes")
	cmd.Flags().DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "quiet period before resolving again in watch mode")
	cmd.Flags().StringVar(&cfg.Format, "format", cfg.Format, "output format (text, yaml)")
	return cmd
}

func watchSelection(ctx context.Context, out io.Writer, loader *ycbvideo.Loader, cfg cliconfig.Config, args []string) error {
	log := cliconfig.Logger()

	rounds := 0
	handler := func(set *ycbvideo.FrameSet, err error) {
		// Failures are logged by the watcher.
		if err != nil {
			return
		}
		if cfg.Format == cliconfig.FormatYAML {
			fmt.Fprintln(out, "---")
		} else if rounds > 0 {
			fmt.Fprintln(out)
		}
		rounds++
		if err := writeSelection(ctx, out, set, cfg); err != nil {
			log.Error().Err(err).Msg("write selection")
		}
	}

	w, err := selectionwatcher.New(loader, selectionwatcher.Config{
		ExpressionFile: cfg.SelectionFile,
		Expressions:    args,
		Shuffle:        cfg.Shuffle,
		DebounceDelay:  cfg.Debounce,
	}, handler, selectionwatcher.WithLogger(logAdapter.NewZerologAdapterWithLogger(log)))
	if err != nil {
		return err
	}

	log.Info().Str("dataset", loader.Root()).Msg("watching selection, press Ctrl+C to stop")
	return w.Run(ctx)
}

func writeSelection(ctx context.Context, w io.Writer, set *ycbvideo.FrameSet, cfg cliconfig.Config) error {
	if cfg.Load {
		return loadFrames(ctx, w, set)
	}

	switch cfg.Format {
	case cliconfig.FormatYAML:
		out, err := yaml.Marshal(set.Descriptors())
		if err != nil {
			return fmt.Errorf("marshal descriptors: %w", err)
		}
		_, err = w.Write(out)
		return err
	default:
		for _, d := range set.Descriptors() {
			if _, err := fmt.Fprintln(w, d); err != nil {
				return err
			}
		}
		return nil
	}
}

// loadFrames materializes the selection in order and prints one summary
// line per frame. It stops at the first frame that fails to load.
func loadFrames(ctx context.Context, w io.Writer, set *ycbvideo.FrameSet) error {
	it := set.Iter()
	loaded := 0
	for {
		frame, err := it.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("load frame %d of %d: %w", loaded+1, set.Len(), err)
		}
		loaded++
		if _, err := fmt.Fprintln(w, frameSummary(frame)); err != nil {
			return err
		}
	}

	log := cliconfig.Logger()
	log.Info().Int("frames", loaded).Msg("loaded selection")
	return nil
}

func frameSummary(f ycbvideo.Frame) string {
	boxes := "-"
	if f.Boxes != nil {
		boxes = fmt.Sprint(len(f.Boxes))
	}
	meta := "-"
	if f.Meta != nil {
		meta = fmt.Sprintf("%dB", len(f.Meta))
	}
	return fmt.Sprintf("%s color=%s depth=%s label=%s boxes=%s meta=%s",
		f.Descriptor, size(f.Color), size(f.Depth), size(f.Label), boxes, meta)
}

func size(img image.Image) string {
	if img == nil {
		return "-"
	}
	b := img.Bounds()
	return fmt.Sprintf("%dx%d", b.Dx(), b.Dy())
}
