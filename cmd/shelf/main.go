package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/shelf/internal/app"
)

// Set at build time.
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "shelf: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:     "shelf",
		Short:   "Live dashboard over a shared state store",
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.TickEvery < 0 {
				return fmt.Errorf("--tick must not be negative, got %d", opts.TickEvery)
			}
			return app.Run(cmd.Context(), opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.ConfigPath, "config", "", "override config path (optional)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "override prefs path (optional)")
	flags.IntVar(&opts.TickEvery, "tick", 0, "tick interval in seconds (optional, defaults to config or 1s)")
	flags.StringVar(&opts.LogPath, "log", "", "override log file path (optional)")

	return cmd
}
