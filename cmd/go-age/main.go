package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
	"github.com/tartampluch/go-age/internal/config"
	"github.com/tartampluch/go-age/internal/engine"
	"github.com/tartampluch/go-age/internal/server"
	"github.com/tartampluch/go-age/internal/ui"
)

// main is the application entry point.
// It delegates execution to runMain to ensure that deferred function calls
// (like closing log files) are executed before the process terminates.
// os.Exit() does not run defers, so we must return an integer code first.
func main() {
	os.Exit(runMain())
}

// cliOptions selects the headless mode when a birth date source is given.
type cliOptions struct {
	Birth     string
	Reference string
	VCard     string
}

func (o cliOptions) headless() bool {
	return o.Birth != "" || o.VCard != "" || o.Reference != ""
}

// runMain manages the application lifecycle, argument parsing, and exit codes.
func runMain() int {
	var (
		opts      cliOptions
		debugMode bool
		exitCode  = config.ExitCodeSuccess
	)

	cmd := &cobra.Command{
		Use:           config.CmdUse,
		Short:         config.CmdShort,
		Version:       config.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			exitCode = execute(opts, debugMode)
			return nil
		},
	}
	cmd.SetVersionTemplate(fmt.Sprintf(config.MsgVersionOutput,
		config.AppName,
		config.Version,
		runtime.GOOS,
		runtime.GOARCH,
	))

	cmd.Flags().BoolVar(&debugMode, config.FlagDebug, false, config.FlagDescDebug)
	cmd.Flags().StringVar(&opts.Birth, config.FlagBirth, "", config.FlagDescBirth)
	cmd.Flags().StringVar(&opts.Reference, config.FlagReference, "", config.FlagDescRef)
	cmd.Flags().StringVar(&opts.VCard, config.FlagVCard, "", config.FlagDescVCard)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, config.MsgCLIError, err)
		return config.ExitCodeUsage
	}
	return exitCode
}

// execute runs the GUI, or the headless calculation when a date source was given.
func execute(opts cliOptions, debugMode bool) int {
	// -------------------------------------------------------------------------
	// Logging Initialization
	// -------------------------------------------------------------------------
	// Headless output goes to stdout, so logs move to stderr.
	console := io.Writer(os.Stdout)
	if opts.headless() {
		console = os.Stderr
	}
	logCloser := setupLogging(debugMode, console)
	if logCloser != nil {
		defer func() {
			_ = logCloser.Close() // Best effort close
		}()
	}

	// Create a root context that cancels on SIGINT (Ctrl+C) or SIGTERM.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logStartupInfo()

	if opts.headless() {
		importer := engine.NewImporter(engine.NewHTTPFetcher())
		return runCLI(ctx, opts, importer, engine.RealClock{}, os.Stdout, os.Stderr)
	}

	// -------------------------------------------------------------------------
	// Application Logic
	// -------------------------------------------------------------------------
	if err := run(ctx); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// runCLI prints "years months days<TAB>summary" for the requested dates and returns the exit code.
func runCLI(ctx context.Context, opts cliOptions, importer *engine.Importer, clock engine.Clock, stdout, stderr io.Writer) int {
	birth := opts.Birth
	if birth == "" && opts.VCard != "" {
		c, err := importer.Import(ctx, opts.VCard)
		if err != nil {
			fmt.Fprintf(stderr, config.MsgCLIError, err)
			return config.ExitCodeError
		}
		fmt.Fprintf(stdout, config.MsgCLIContact, c.Name, c.BirthDate)
		birth = c.BirthDate.String()
	}
	if birth == "" {
		fmt.Fprintf(stderr, config.MsgCLIError, errors.New(config.ErrFlagBirthMissing))
		return config.ExitCodeUsage
	}

	ref := opts.Reference
	if ref == "" {
		ref = engine.Today(clock).String()
	}

	res, err := engine.Calculate(ref, birth)
	if err != nil {
		slog.Debug(config.MsgCalcRejected,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyReference, ref,
			config.LogKeyDOB, birth,
			config.LogKeyError, err)
		fmt.Fprintf(stderr, config.MsgCLIError, err)
		return config.ExitCodeError
	}

	fmt.Fprintf(stdout, config.MsgCLIResult, res.Years, res.Months, res.Days, res)
	return config.ExitCodeSuccess
}

// run initializes the Fyne application, wires dependencies, and starts the UI loop.
func run(ctx context.Context) error {
	a := app.NewWithID(config.AppID)

	// Record the version for potential migration logic in future updates.
	a.Preferences().SetString(config.PrefLastRun, config.Version)

	port := a.Preferences().StringWithFallback(config.PrefServerPort, config.DefaultPort)
	srv := server.NewCalendarServer(port)
	importer := engine.NewImporter(engine.NewHTTPFetcher())

	gui := ui.NewAgeApp(a, ctx, srv, importer)

	// Watch for context cancellation to quit the UI gracefully.
	go func() {
		<-ctx.Done()
		slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompMain)
		a.Quit()
	}()

	// Blocks until the main window closes.
	gui.Run()

	return nil
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging configures the default slog logger to write JSON to console
// and to a log file in the user's cache directory.
func setupLogging(debugMode bool, console io.Writer) io.Closer {
	writers := []io.Writer{console}
	var logFile *os.File

	if logPath, err := getLogFilePath(); err == nil {
		// O_TRUNC resets logs on restart to prevent indefinite growth.
		f, err := os.OpenFile(logPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
		if err == nil {
			writers = append(writers, f)
			logFile = f
		} else {
			fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, logPath, err)
		}
	}

	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}

	logger := slog.New(slog.NewJSONHandler(io.MultiWriter(writers...), opts))
	slog.SetDefault(logger)

	if logFile == nil {
		return nil
	}
	return logFile
}

// getLogFilePath determines the platform-specific cache directory for logs.
func getLogFilePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	appDir := filepath.Join(cacheDir, config.AppID)

	// Ensure the directory exists with restricted permissions (700).
	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	return filepath.Join(appDir, config.LogFileName), nil
}
