// Command cellar runs tape programs, checks their loop brackets, and
// translates them to C.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/sarchlab/cellar/api"
	"github.com/sarchlab/cellar/config"
	"github.com/sarchlab/cellar/program"
	"github.com/sarchlab/cellar/terminal"
	"github.com/sarchlab/cellar/verify"
	"github.com/tebeka/atexit"
)

const (
	statusFailure = 1
	statusUsage   = 2
)

type options struct {
	configPath string
	comments   bool
	emit       string
	lint       bool
	eof        string
	logLevel   string
	logFile    string
}

// active is the terminal of the run in progress, restored by the atexit
// handler registered in main.
var active struct {
	sync.Mutex
	term terminal.Terminal
}

func setActive(term terminal.Terminal) {
	active.Lock()
	defer active.Unlock()
	active.term = term
}

func restoreActive() {
	active.Lock()
	defer active.Unlock()
	if active.term != nil {
		_ = active.term.RestoreCooked()
	}
}

// createFile opens the -emit destination.
var createFile = func(name string) (io.WriteCloser, error) {
	return os.Create(name)
}

func main() {
	// Covers atexit.Fatal paths; a second restore is a no-op.
	atexit.Register(restoreActive)
	atexit.Exit(run(os.Args[1:], config.HostPlatform()))
}

func newFlagSet(opts *options, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("cellar", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: cellar [options] [program-file | -]")
		fmt.Fprintf(stderr, "instructions: %s\n", instructionSet())
		fs.PrintDefaults()
	}

	fs.StringVar(&opts.configPath, "config", "", "settings file (default "+config.DefaultPath+" if present)")
	fs.BoolVar(&opts.comments, "c", false, "treat '#' as a line comment (shorthand)")
	fs.BoolVar(&opts.comments, "comments", false, "treat '#' as a line comment")
	fs.StringVar(&opts.emit, "emit", "", "write C source to `path` instead of running (- for stdout)")
	fs.BoolVar(&opts.lint, "lint", false, "report unbalanced loop brackets and exit")
	fs.StringVar(&opts.eof, "eof", "", "value stored by input at end of input: zero, max or keep")
	fs.StringVar(&opts.logLevel, "log-level", "", "trace, debug, info, warn or error")
	fs.StringVar(&opts.logFile, "log-file", "", "write JSON logs to `path`")

	return fs
}

// instructionSet lists every instruction symbol with its mnemonic.
func instructionSet() string {
	var sb strings.Builder

	for i, symbol := range program.DefaultISA.Symbols() {
		op, _ := program.DefaultISA.Lookup(symbol)
		if i > 0 {
			sb.WriteString("  ")
		}
		fmt.Fprintf(&sb, "%c %s", symbol, op)
	}

	return sb.String()
}

// loadConfig layers the settings file under the flags that were given on
// the command line.
func loadConfig(fs *flag.FlagSet, opts options) (config.Config, error) {
	path, required := config.DefaultPath, false
	if opts.configPath != "" {
		path, required = opts.configPath, true
	}

	cfg, err := config.Load(path, required)
	if err != nil {
		return cfg, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "c", "comments":
			cfg.Comments = opts.comments
		case "eof":
			cfg.EOF = opts.eof
		case "log-level":
			cfg.LogLevel = opts.logLevel
		case "log-file":
			cfg.LogFile = opts.logFile
		}
	})

	return cfg, cfg.Validate()
}

func readSource(path string, stdin io.Reader) (name, source string, err error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		return "<stdin>", string(data), err
	}

	data, err := os.ReadFile(path)

	return path, string(data), err
}

func run(args []string, p config.Platform) int {
	var opts options

	fs := newFlagSet(&opts, p.Stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return statusUsage
	}

	if fs.NArg() > 1 {
		fs.Usage()
		return statusUsage
	}

	cfg, err := loadConfig(fs, opts)
	if err != nil {
		fmt.Fprintf(p.Stderr, "cellar: %v\n", err)
		return statusUsage
	}

	logger, closeLog, err := cfg.NewLogger(p)
	if err != nil {
		fmt.Fprintf(p.Stderr, "cellar: opening log file: %v\n", err)
		return statusFailure
	}
	defer closeLog()
	slog.SetDefault(logger)

	path := fs.Arg(0)
	sourceFromStdin := path == "" || path == "-"

	name, source, err := readSource(path, p.Stdin)
	if err != nil {
		fmt.Fprintf(p.Stderr, "cellar: %v\n", err)
		return statusFailure
	}

	if opts.lint {
		return lint(p, name, source, cfg.Comments)
	}

	if opts.emit != "" {
		return emit(p, name, source, cfg, opts.emit)
	}

	return execute(p, name, source, cfg, sourceFromStdin)
}

func lint(p config.Platform, name, source string, comments bool) int {
	issues := verify.RunLint(source, comments)

	if err := verify.WriteReport(p.Stdout, name, issues); err != nil {
		fmt.Fprintf(p.Stderr, "cellar: %v\n", err)
		return statusFailure
	}

	if len(issues) > 0 {
		return statusFailure
	}

	return 0
}

func emit(p config.Platform, name, source string, cfg config.Config, dest string) int {
	driver := api.DriverBuilder{}.
		WithComments(cfg.Comments).
		Build("Emitter")

	if err := driver.Load(source); err != nil {
		fmt.Fprintf(p.Stderr, "cellar: %s: %v\n", name, err)
		return statusFailure
	}

	var err error
	if dest == "-" {
		err = driver.Emit(p.Stdout)
	} else {
		err = emitToFile(driver, dest)
	}

	if err != nil {
		fmt.Fprintf(p.Stderr, "cellar: writing C source: %v\n", err)
		return statusFailure
	}

	slog.Info("Emitted C source", "Program", name, "Dest", dest)

	return 0
}

func emitToFile(driver api.Driver, dest string) error {
	f, err := createFile(dest)
	if err != nil {
		return err
	}

	err = driver.Emit(f)

	return errors.Join(err, f.Close())
}

func execute(
	p config.Platform,
	name, source string,
	cfg config.Config,
	sourceFromStdin bool,
) int {
	term := p.Terminal(sourceFromStdin)
	if c, ok := term.(io.Closer); ok {
		defer c.Close()
	}

	setActive(term)
	defer setActive(nil)

	out := bufio.NewWriter(p.Stdout)
	defer out.Flush()

	driver := api.DriverBuilder{}.
		WithTerminal(term).
		WithOutput(out).
		WithDiagnostics(p.Stderr).
		WithComments(cfg.Comments).
		WithEOF(cfg.EOFPolicy()).
		WithDumpColumns(cfg.DumpColumns).
		Build("Interpreter")

	if err := driver.Load(source); err != nil {
		fmt.Fprintf(p.Stderr, "cellar: %s: %v\n", name, err)
		return statusFailure
	}

	outcome, err := driver.Run()
	if err != nil {
		out.Flush()
		fmt.Fprintf(p.Stderr, "cellar: %v\n", err)
		return statusFailure
	}

	slog.Debug("Run finished",
		"Program", name,
		"Outcome", outcome.Kind.String(),
		"Status", outcome.ExitStatus(),
	)

	if outcome.Kind == api.Interrupted {
		out.Flush()
		fmt.Fprintf(p.Stderr, "\n%s\n", outcome.Reason)
	}

	return outcome.ExitStatus()
}
