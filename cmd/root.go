package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/llehouerou/looper/internal/errmsg"
)

// Version information (set via ldflags during build)
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "looper <folder>",
		Short: "Loop audio tracks from a folder in the terminal",
		Long: `looper lists the audio files of one folder (mp3, wav, ogg, flac) and
plays the selected track on an endless loop until you pick another one,
pause, stop or quit.

Settings live in $XDG_CONFIG_HOME/looper/config.toml, created on first run.`,
		Args:    cobra.ExactArgs(1),
		Version: fmt.Sprintf("%s (commit: %s)", version, commit),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Past argument validation, failures are not usage errors
			cmd.SilenceUsage = true
			return run(args[0], opts)
		},
	}
	cmd.SilenceErrors = true

	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/looper/config.toml)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")

	return cmd
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	return execute(newRootCmd(), os.Args[1:])
}

func execute(cmd *cobra.Command, args []string) (code int) {
	logger := setupLogger("error", cmd.ErrOrStderr())
	defer func() {
		if r := recover(); r != nil {
			logger.Error().Str("panic", fmt.Sprint(r)).Msg("unexpected internal error")
			code = 1
		}
	}()

	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		logger.Error().Msg(err.Error())
		return 1
	}
	return 0
}

// failure tags an error with the step that produced it.
type failure struct {
	op  errmsg.Op
	err error
}

func (f *failure) Error() string { return errmsg.Format(f.op, f.err) }

func (f *failure) Unwrap() error { return f.err }

func fail(op errmsg.Op, err error) error {
	if err == nil {
		return nil
	}
	return &failure{op: op, err: err}
}
