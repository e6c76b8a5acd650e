package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

// Context is handed to every command's Run.
type Context struct {
	Out    io.Writer
	Stdin  io.Reader
	Logger *slog.Logger
}

// Grammar is the kong grammar of the trebuchet command.
type Grammar struct {
	LogLevel string `help:"Log level on stderr" enum:"debug,info,warn,error" default:"warn"`

	Sum   SumCmd   `cmd:"" help:"Sum the calibration values of input files"`
	Line  LineCmd  `cmd:"" help:"Print the calibration value of each argument"`
	Vocab VocabCmd `cmd:"" help:"List the spelled-out digits"`
}

// NewLogger returns a text logger writing to w at the given level name.
func NewLogger(level string, w io.Writer) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
}

// Run parses args and executes the selected command.
func Run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer, options ...kong.Option) error {
	options = append([]kong.Option{
		kong.Name("trebuchet"),
		kong.Description("Recover calibration values from lines of text."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
	}, options...)

	grammar := &Grammar{}
	parser, err := kong.New(grammar, options...)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := NewLogger(grammar.LogLevel, stderr)
	slog.SetDefault(logger)

	return ctx.Run(&Context{Out: stdout, Stdin: stdin, Logger: logger})
}

// Main runs the command line of the process and exits on error.
func Main() {
	if err := Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		slog.Error("trebuchet failed", "error", err)
		os.Exit(1)
	}
}
