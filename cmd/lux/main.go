package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tavisk/lux/internal/app"
	"github.com/tavisk/lux/internal/version"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "lux: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:   "lux [dir...]",
		Short: "Terminal image gallery with a lightbox",
		Long: `lux browses image directories as a thumbnail grid and opens
images in an animated lightbox overlay. Directories given as arguments
are scanned in addition to those configured in ~/.config/lux/config.toml.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Dirs = args

			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			return app.Run(ctx, opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path (default ~/.config/lux/config.toml)")
	cmd.Flags().StringVar(&opts.PrefsPath, "prefs", "", "preferences file path (default ~/.config/lux/prefs.toml)")
	cmd.Flags().StringVar(&opts.Theme, "theme", "", "theme name, overrides the saved preference")
	cmd.Flags().StringVar(&opts.LogLevel, "log-level", "", "enable file logging at this level (debug, info, warn, error)")
	cmd.Flags().IntVar(&opts.RescanEvery, "rescan", 0, "library rescan interval in seconds")

	cmd.AddCommand(versionCmd())
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("lux %s (%s)\n", version.Version, version.Commit)
		},
	}
}
