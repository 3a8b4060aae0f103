// Command csvbench parses CSV with the strategies under comparison and
// benchmarks them against each other.
//
//	csvbench parse [--strategy=grammar] [--line-break=\n] [--dump] [FILE]
//	csvbench bench [--config=bench.yaml] [--strategy=NAME...] [--input=LINE]
//	csvbench strategies
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"unicode/utf8"

	"github.com/alecthomas/repr"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/shapestone/csvgrammar/internal/bench"
	"github.com/shapestone/csvgrammar/internal/strategy"
	"github.com/shapestone/csvgrammar/pkg/csv"
)

// errParse marks a failure already reported verbatim on stderr.
var errParse = errors.New("parse failed")

type cli struct {
	app     *kingpin.Application
	verbose *bool

	parse struct {
		cmd       *kingpin.CmdClause
		strategy  *string
		comma     *string
		lineBreak *string
		sniff     *bool
		dump      *bool
		file      *string
	}

	bench struct {
		cmd        *kingpin.CmdClause
		config     *string
		strategies *[]string
		input      *string
		repeat     *int
	}

	strategies *kingpin.CmdClause
}

func newCLI() *cli {
	c := &cli{app: kingpin.New("csvbench", "Parse CSV with competing strategies and benchmark them.")}
	c.verbose = c.app.Flag("verbose", "Log at debug level.").Short('v').Bool()

	c.parse.cmd = c.app.Command("parse", "Parse FILE (or stdin) and print the records.")
	c.parse.strategy = c.parse.cmd.Flag("strategy", "Strategy to parse with.").Default("grammar").String()
	c.parse.comma = c.parse.cmd.Flag("comma", "Field separator (grammar only).").Default(",").String()
	c.parse.lineBreak = c.parse.cmd.Flag("line-break", `Record separator with Go escapes, e.g. \r\n (grammar only).`).Default(`\n`).String()
	c.parse.sniff = c.parse.cmd.Flag("sniff", "Guess separator and line break from the input (grammar only).").Bool()
	c.parse.dump = c.parse.cmd.Flag("dump", "Print the records as a Go value instead of CSV.").Bool()
	c.parse.file = c.parse.cmd.Arg("file", "Input file; stdin when omitted.").String()

	c.bench.cmd = c.app.Command("bench", "Benchmark strategies on the configured cases.")
	c.bench.config = c.bench.cmd.Flag("config", "YAML config; built-in cases when the file is missing.").Default("bench.yaml").String()
	c.bench.strategies = c.bench.cmd.Flag("strategy", "Strategy to run (repeatable); all by default.").Strings()
	c.bench.input = c.bench.cmd.Flag("input", "Benchmark this single line instead of the configured cases.").String()
	c.bench.repeat = c.bench.cmd.Flag("repeat", "Lines of --input per case.").Default("1").Int()

	c.strategies = c.app.Command("strategies", "List the registered strategies.")
	return c
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one command and returns the process exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	c := newCLI()
	command, err := c.app.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "csvbench: %v\n", err)
		return 2
	}

	level := slog.LevelInfo
	if *c.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	switch command {
	case c.parse.cmd.FullCommand():
		err = c.runParse(stdin, stdout, stderr)
	case c.bench.cmd.FullCommand():
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = c.runBench(ctx, stdout, logger)
	case c.strategies.FullCommand():
		for _, name := range strategy.Names() {
			fmt.Fprintln(stdout, name)
		}
	}

	if errors.Is(err, errParse) {
		return 1
	}
	if err != nil {
		logger.Error("command failed", "command", command, "error", err)
		return 1
	}
	return 0
}

func (c *cli) runParse(stdin io.Reader, stdout, stderr io.Writer) error {
	data, err := readInput(*c.parse.file, stdin)
	if err != nil {
		return err
	}
	input := string(data)

	opts, err := c.parseOptions(input)
	if err != nil {
		return err
	}

	var doc csv.Document
	if *c.parse.strategy == "grammar" {
		doc, err = csv.ParseWithOptions(input, opts)
	} else {
		if opts != csv.DefaultOptions() {
			return fmt.Errorf("strategy %s only supports the default separator and line break", *c.parse.strategy)
		}
		var s strategy.Strategy
		if s, err = strategy.Lookup(*c.parse.strategy); err != nil {
			return err
		}
		var records [][]string
		records, err = s.Parse(input)
		for _, r := range records {
			doc = append(doc, r)
		}
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return errParse
	}

	if *c.parse.dump {
		fmt.Fprintln(stdout, repr.String(doc.Records(), repr.Indent("  ")))
		return nil
	}
	out, err := csv.RenderWithOptions(doc, csv.WriterOptions(opts))
	if err != nil {
		return err
	}
	_, err = stdout.Write(out)
	return err
}

// parseOptions builds grammar options from the flags, or from the input
// itself with --sniff.
func (c *cli) parseOptions(input string) (csv.Options, error) {
	if *c.parse.sniff {
		return csv.Sniff(input), nil
	}

	comma, size := utf8.DecodeRuneInString(*c.parse.comma)
	if size == 0 || size != len(*c.parse.comma) {
		return csv.Options{}, fmt.Errorf("--comma must be a single character, got %q", *c.parse.comma)
	}
	lineBreak, err := strconv.Unquote(`"` + *c.parse.lineBreak + `"`)
	if err != nil {
		return csv.Options{}, fmt.Errorf("--line-break %q: %w", *c.parse.lineBreak, err)
	}

	opts := csv.Options{Comma: comma, LineBreak: lineBreak}
	if err := opts.Validate(); err != nil {
		return csv.Options{}, err
	}
	return opts, nil
}

func (c *cli) runBench(ctx context.Context, stdout io.Writer, logger *slog.Logger) error {
	cfg, err := bench.LoadConfig(*c.bench.config)
	if err != nil {
		return err
	}
	if len(*c.bench.strategies) > 0 {
		cfg.Strategies = *c.bench.strategies
	}
	if *c.bench.input != "" {
		cfg.Cases = []bench.Case{{Name: "input", Input: *c.bench.input, Repeat: *c.bench.repeat}}
	}

	runner, err := bench.NewRunner(cfg, bench.WithLogger(logger))
	if err != nil {
		return err
	}
	results, err := runner.Run(ctx)
	if err != nil {
		return err
	}
	return bench.WriteReport(stdout, results)
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}
