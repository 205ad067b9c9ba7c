// Package cmd provides the Cobra commands of shower.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/shower/internal/domain/build"
	"github.com/bnema/shower/internal/infrastructure/config"
	"github.com/bnema/shower/internal/logging"
	"github.com/bnema/shower/internal/ui/window"
)

var (
	buildInfo build.Info
	onStart   func(ctx context.Context)
	logLevel  string

	rootCmd = &cobra.Command{
		Use:   "shower [url-or-search]",
		Short: "A keyboard-driven minimal browser",
		Long: `Shower - one window, one page, one command line.

Each window is an independent WebKitGTK view with a single line at the
bottom: it shows the address and turns into the command entry on demand.

Command entry:
  example.com        open the address (https is assumed)
  ? rust generics    search the web
  /needle            find on the page

Run without arguments to start on an empty command entry.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runBrowser,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override logging.level (trace, debug, info, warn, error)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, renderer().RenderError(err))
		os.Exit(1)
	}
}

// SetBuildInfo sets the build information (called from main before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

// OnBrowserStart registers a hook run once logging is ready, before the
// first window opens.
func OnBrowserStart(fn func(ctx context.Context)) {
	onStart = fn
}

func runBrowser(cmd *cobra.Command, args []string) error {
	if err := config.Init(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg := config.Get()

	logger, closeLog, err := newLogger(cfg, logLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx := logging.WithContext(cmd.Context(), logger)
	logger.Info().
		Str("version", buildInfo.Version).
		Str("commit", buildInfo.Commit).
		Str("build_date", buildInfo.BuildDate).
		Msg("starting shower")
	if onStart != nil {
		onStart(ctx)
	}

	dirs, err := config.GetXDGDirs()
	if err != nil {
		return fmt.Errorf("resolve directories: %w", err)
	}

	app, err := window.New(&window.Dependencies{
		Ctx:           ctx,
		Config:        cfg,
		ConfigManager: config.GetManager(),
		InitialText:   strings.Join(args, " "),
		DataDir:       dirs.DataHome,
		CacheDir:      dirs.CacheHome,
	})
	if err != nil {
		return fmt.Errorf("create application: %w", err)
	}
	stop := setupSignalHandler(ctx, app)
	defer stop()

	// GTK only sees the program name; arguments are ours.
	if code := app.Run(ctx, os.Args[:1]); code != 0 {
		return fmt.Errorf("browser exited with status %d", code)
	}
	return nil
}

func setupSignalHandler(ctx context.Context, app *window.App) func() {
	log := logging.FromContext(ctx)
	sigCh := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigCh:
			log.Info().Str("signal", sig.String()).Msg("received interrupt, quitting")
			app.Quit()
		case <-done:
		}
	}()
	return func() {
		signal.Stop(sigCh)
		close(done)
	}
}
