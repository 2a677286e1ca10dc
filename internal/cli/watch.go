package cli

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/evarisis/actaflow/internal/watcher"
)

func NewWatchCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Process meetings saved into the meetings directory",
		Long:  "Watches the meetings directory and runs the pipeline for every manifest that still has work left, for example projects saved offline with 'record --persist-only'.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := deps.Config
			log := deps.Logger

			if err := os.MkdirAll(cfg.Paths.Meetings, 0755); err != nil {
				return err
			}

			p, err := deps.Pipeline(ctx)
			if err != nil {
				return err
			}

			handler := func(ctx context.Context, dir string) error {
				if !p.Pending(dir) {
					log.Debug(ctx, "Nothing left to do in %s", dir)
					return nil
				}
				report := p.Process(ctx, dir, nil, nil)
				if !report.Success && !report.Partial {
					return errors.New(report.Message)
				}
				log.Info(ctx, "[%s] %s", report.RunID, report.Message)
				return nil
			}

			w, err := watcher.New(cfg.Paths.Meetings, handler, log, cfg.Performance.MaxConcurrent)
			if err != nil {
				return err
			}
			defer w.Stop()

			log.Info(ctx, "Press Ctrl+C to stop")
			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}
