// Package cmd implements the justify CLI using Cobra.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gaurav-prasanna/justify/core"
	"github.com/gaurav-prasanna/justify/core/source"
)

// Version will be populated with the git revision at build time.
var Version = "unknown"

// Process exit codes.
const (
	ExitOK            = 0
	ExitUsage         = 1
	ExitInvalidWidth  = 2
	ExitInvalidSource = 3
	ExitNotFound      = 4
	ExitEmptyInput    = 5
	ExitWordTooLong   = 6
	ExitFailure       = 7
)

// usageError marks errors caused by a malformed command line.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// options holds the flag values of a single invocation.
type options struct {
	format     string
	outputDir  string
	html       bool
	delimiters string
	workers    int
	logLevel   string
	timeout    time.Duration
}

var logLevels = map[string]func(*logrus.Logger){
	"none":    func(l *logrus.Logger) { l.SetOutput(io.Discard) },
	"debug":   func(l *logrus.Logger) { l.SetLevel(logrus.DebugLevel) },
	"info":    func(l *logrus.Logger) { l.SetLevel(logrus.InfoLevel) },
	"warning": func(l *logrus.Logger) { l.SetLevel(logrus.WarnLevel) },
	"error":   func(l *logrus.Logger) { l.SetLevel(logrus.ErrorLevel) },
	"fatal":   func(l *logrus.Logger) { l.SetLevel(logrus.FatalLevel) },
}

func getLogLevels() []string {
	levels := make([]string, 0, len(logLevels))
	for k := range logLevels {
		levels = append(levels, k)
	}
	return levels
}

func newRootCmd(stdout io.Writer, log *logrus.Logger) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "justify <width> <file|stdin|url> <path|text|url>",
		Short: "justify — align text flush to both margins",
		Long: `justify packs words greedily into lines of the given width and pads the
gaps between words so every multi-word line is exactly width characters long.
Extra spaces go to the last gap of each line.

Examples:
  justify 20 file notes.txt
  justify 8 stdin "hi this is me vlad"
  justify 60 url https://example.com --format pdf --output_dir ./out`,
		Version:       Version,
		Args:          exactArgs(3),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			fn, ok := logLevels[opts.logLevel]
			if !ok {
				return &usageError{fmt.Errorf("invalid log level '%s', valid log levels are %v", opts.logLevel, getLogLevels())}
			}
			fn(log)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJustify(cmd.Context(), args, opts, stdout, log)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err}
	})
	addFlags(cmd.Flags(), opts)
	return cmd
}

func addFlags(fs *pflag.FlagSet, opts *options) {
	fs.StringVarP(&opts.format, "format", "f", "text", "Output format: text, json or pdf")
	fs.StringVarP(&opts.outputDir, "output_dir", "o", "", "Write output to this directory instead of stdout")
	fs.BoolVar(&opts.html, "html", false, "Treat file or inline input as HTML (url input always is)")
	fs.StringVarP(&opts.delimiters, "delimiters", "d", "", `Regular expression separating words (default " |\n|\t")`)
	fs.IntVarP(&opts.workers, "workers", "w", 1, "Number of lines justified concurrently")
	fs.StringVarP(&opts.logLevel, "loglevel", "L", "info", fmt.Sprintf("Log level. One of %v", getLogLevels()))
	fs.DurationVarP(&opts.timeout, "timeout", "t", 30*time.Second, "Timeout for fetching url input")
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return &usageError{fmt.Errorf("expected %d arguments, got %d\nUsage: %s", n, len(args), cmd.UseLine())}
		}
		return nil
	}
}

// Execute runs the root command and exits with its status code.
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}

// Run executes the CLI with the given arguments and returns the exit code.
// Justified output goes to stdout; diagnostics go to stderr.
func Run(args []string, stdout, stderr io.Writer) int {
	log := logrus.New()
	log.SetOutput(stderr)

	cmd := newRootCmd(stdout, log)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	// A nil slice would make cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}
	cmd.InitDefaultHelpFlag()
	cmd.InitDefaultVersionFlag()
	cmd.SetArgs(separatePositionals(cmd.Flags(), args))

	err := cmd.Execute()
	if err == nil {
		return ExitOK
	}
	log.Error(err)
	return exitCode(err)
}

// exitCode maps an error to its process exit status.
func exitCode(err error) int {
	var (
		usage   *usageError
		tooLong *core.WordTooLongError
	)
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, core.ErrInvalidWidth):
		return ExitInvalidWidth
	case errors.Is(err, source.ErrInvalidSource):
		return ExitInvalidSource
	case errors.Is(err, source.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, core.ErrEmptyInput):
		return ExitEmptyInput
	case errors.As(err, &tooLong):
		return ExitWordTooLong
	case errors.As(err, &usage):
		return ExitUsage
	default:
		return ExitFailure
	}
}

var negativeNumber = regexp.MustCompile(`^-\d+$`)

// separatePositionals keeps dash-leading positionals away from the flag
// parser: a negative width and inline text such as "-x hello" would
// otherwise be read as shorthand flags. When one is found, flags are kept
// in front and every positional moves behind "--" in its original order.
// A dash-leading argument that names a defined flag stays a flag.
func separatePositionals(fs *pflag.FlagSet, args []string) []string {
	var flags, positionals []string
	moved := false
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			positionals = append(positionals, args[i+1:]...)
			break
		}
		if arg == "-" || !strings.HasPrefix(arg, "-") {
			positionals = append(positionals, arg)
			continue
		}
		f := lookupFlag(fs, arg)
		if f == nil && (len(positionals) == 2 || len(positionals) == 0 && negativeNumber.MatchString(arg)) {
			positionals = append(positionals, arg)
			moved = true
			continue
		}
		flags = append(flags, arg)
		if takesSeparateValue(f, arg) && i+1 < len(args) {
			i++
			flags = append(flags, args[i])
		}
	}
	if !moved {
		return args
	}
	out := make([]string, 0, len(flags)+len(positionals)+1)
	out = append(out, flags...)
	out = append(out, "--")
	return append(out, positionals...)
}

// lookupFlag returns the flag named by arg, or nil.
func lookupFlag(fs *pflag.FlagSet, arg string) *pflag.Flag {
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		name, _, _ = strings.Cut(name, "=")
		return fs.Lookup(name)
	}
	if len(arg) < 2 {
		return nil
	}
	return fs.ShorthandLookup(arg[1:2])
}

// takesSeparateValue reports whether the flag in arg consumes the next argument.
func takesSeparateValue(f *pflag.Flag, arg string) bool {
	if f == nil || f.NoOptDefVal != "" {
		return false
	}
	if strings.HasPrefix(arg, "--") {
		return !strings.Contains(arg, "=")
	}
	return len(arg) == 2
}
