package cmd

import (
	"fmt"
	"io"
	"os"

	"portinfo/core/answer"
	"portinfo/core/config"
	"portinfo/core/logger"
	"portinfo/core/options"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	exitOK       = 0
	exitEnv      = 1
	exitArgument = 2
)

// NewRootCmd builds the root command. Parsed flags are stored in opts and
// every record is written through logg.
func NewRootCmd(logg *zap.Logger, opts *options.Config) *cobra.Command {
	*opts = options.Default()

	cmd := &cobra.Command{
		Use:   "portinfo",
		Short: "Report the configured port",
		Long: `portinfo parses a port option and reports it together with a fixed answer.
The port is only printed; nothing listens on it.

Log verbosity is controlled by LOG_LEVEL (trace, debug, info, warn, error).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &options.ArgumentError{Err: fmt.Errorf("unexpected argument %q", args[0])}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logg.Info("arguments parsed")
			logg.Warn("port resolved", zap.Uint16("port", opts.Port))

			out := cmd.OutOrStdout()
			fmt.Fprint(out, "port is "+opts.PortString())

			logg.Error("unexpected condition")

			fmt.Fprint(out, answer.Value())
			return nil
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &options.ArgumentError{Err: err}
	})
	cmd.Flags().VarP(options.NewPortValue(options.DefaultPort, &opts.Port), "port", "p", "port value to report")

	return cmd
}

// Run executes the program against args and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load configuration: %v\n", err)
		return exitEnv
	}

	logg, err := logger.New(&cfg.Log, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to initialize logger: %v\n", err)
		return exitEnv
	}
	defer logg.Sync()
	logg = logger.WithRunID(logg, uuid.NewString())

	// Emitted before parsing; visible only when LOG_LEVEL already enables them.
	logger.Trace(logg, "program running")
	logg.Debug("about to parse arguments")

	if args == nil {
		args = []string{}
	}

	var opts options.Config
	root := NewRootCmd(logg, &opts)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprint(stderr, root.UsageString())
		return exitArgument
	}
	return exitOK
}

// Execute runs the root command against the process arguments and exits.
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}
