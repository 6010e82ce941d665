package main

import (
	"github.com/spf13/cobra"

	"github.com/dtroode/gophframe/internal/logger"
	"github.com/dtroode/gophframe/internal/storage/blob"
	"github.com/dtroode/gophframe/internal/storage/local"
)

type options struct {
	blobRoot    string
	concurrency int
	logLevel    int
	logFormat   string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "framectl",
		Short:         "Framectl renders product frames and maintains a local blob root",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.blobRoot, "blobs", "./data/blobs", "local blob root")
	cmd.PersistentFlags().IntVar(&opts.concurrency, "concurrency", 8, "parallel blob reads")
	cmd.PersistentFlags().IntVar(&opts.logLevel, "log-level", 4, "slog level (-4 debug, 0 info, 4 warn)")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", logger.FormatTint, "log format: text, json or tint")

	cmd.AddCommand(
		newRenderCmd(opts),
		newBlobCmd(opts),
		newAuditCmd(opts),
	)

	return cmd
}

func (o *options) logger(cmd *cobra.Command) *logger.Logger {
	return logger.NewWithFormat(cmd.ErrOrStderr(), o.logLevel, o.logFormat)
}

func (o *options) blobStore(log *logger.Logger) (*blob.Store, error) {
	backend, err := local.NewStore(o.blobRoot)
	if err != nil {
		return nil, err
	}
	return blob.NewStore(backend, log, o.concurrency), nil
}
