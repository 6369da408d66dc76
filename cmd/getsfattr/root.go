package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/partiallyordered/getsfattr"
	"github.com/partiallyordered/getsfattr/internal/config"
)

// Process exit codes.
const (
	exitOK      = 0
	exitFailure = 1 // a file could not be collected
	exitUsage   = 2 // bad flags, arguments or configuration
)

// runError marks a failure of the run itself, as opposed to a usage or
// configuration error. It has already been reported when returned.
type runError struct {
	err error
}

func (e *runError) Error() string { return e.err.Error() }
func (e *runError) Unwrap() error { return e.err }

// cliFlags holds the flags that are not configuration keys.
type cliFlags struct {
	cfgFile    string
	verbose    bool
	showConfig bool
}

// execute runs the command line and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	var re *runError
	if errors.As(err, &re) {
		return exitFailure
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", cmd.CommandPath())
	return exitUsage
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		flags    cliFlags
		encoding getsfattr.Encoding
		order    getsfattr.Order
	)

	cmd := &cobra.Command{
		Use:   "getsfattr [flags] FILE...",
		Short: "Get extended file attributes as JSON",
		Long: `getsfattr reads the extended attributes of every FILE concurrently and
prints them to stdout as a single JSON array:

  [{"file_name":"a.txt","attrs":{"user.note":"AB"}}]

The first file that cannot be read stops the run; the error is printed
to stderr and the exit status is 1. Without --buffered, the array printed
so far is left unterminated in that case.

Every argument is a file name; the command has no subcommands.`,
		Version:       getsfattr.GetVersionInfo().String(),
		Args: func(cmd *cobra.Command, args []string) error {
			if flags.showConfig {
				return cobra.NoArgs(cmd, args)
			}
			return fileArgs(cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}

			if flags.showConfig {
				return showConfig(stdout, cfg)
			}

			logger := config.NewLogger(cfg.Logging, stderr)
			opts, err := cfg.RunOptions(logger)
			if err != nil {
				return err
			}

			out := bufio.NewWriter(stdout)
			runErr := getsfattr.Run(cmd.Context(), out, args, opts...)
			// Flush on failure too: partial output is part of the contract.
			flushErr := out.Flush()

			if runErr != nil {
				fmt.Fprintf(stderr, "Error!: %v\n", runErr)
				return &runError{err: runErr}
			}
			if flushErr != nil {
				fmt.Fprintf(stderr, "Error!: write output: %v\n", flushErr)
				return &runError{err: flushErr}
			}
			return nil
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate(`{{.Name}} version {{.Version}}` + "\n")

	pf := cmd.Flags()
	pf.StringVar(&flags.cfgFile, "config", "", "Configuration file (default "+config.DefaultConfigPath()+")")
	pf.BoolVar(&flags.showConfig, "show-config", false, "Print the effective configuration as YAML and exit")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Log debug records to stderr (same as --log-level debug)")
	pf.VarP(&encoding, "encoding", "e", `Attribute value encoding ("escaped", "base64", "utf8")`)
	pf.Var(&order, "order", `Output order ("input" or "completion")`)
	pf.IntP("concurrency", "j", 0, "Number of files read in parallel (0 for the number of CPUs)")
	pf.Duration("file-timeout", 0, "Maximum time spent on a single file (0 for no limit)")
	pf.Bool("buffered", false, "Print nothing unless every file succeeds")
	pf.String("log-level", "warn", `Log level ("debug", "info", "warn", "error")`)
	pf.String("log-format", "text", `Log format ("text", "json")`)
	return cmd
}

// fileArgs requires at least one non-empty file argument.
func fileArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.MinimumNArgs(1)(cmd, args); err != nil {
		return err
	}
	for i, arg := range args {
		if arg == "" {
			return fmt.Errorf("argument %d: %w", i+1, getsfattr.ErrEmptyFileName)
		}
	}
	return nil
}

func loadConfig(cmd *cobra.Command, flags cliFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.cfgFile, cmd.Flags())
	if err != nil {
		return nil, err
	}
	if flags.verbose {
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}
