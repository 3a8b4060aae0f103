package bench

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"testing"

	"github.com/shapestone/csvgrammar/internal/strategy"
)

// BenchmarkFunc measures f. testing.Benchmark is the default.
type BenchmarkFunc func(f func(b *testing.B)) testing.BenchmarkResult

// Result is the measurement of one strategy on one case.
type Result struct {
	Case     string
	Strategy string

	NsPerOp     int64
	BytesPerOp  int64
	AllocsPerOp int64
	Iterations  int

	// Records is the number of records the strategy produced.
	Records int
	// Agrees reports whether the records equal the grammar's.
	Agrees bool
	// Err is set when the strategy rejected the input; nothing is measured then.
	Err error
}

// Runner benchmarks a set of strategies over a set of cases.
type Runner struct {
	strategies []strategy.Strategy
	cases      []Case
	reference  strategy.Strategy
	benchmark  BenchmarkFunc
	logger     *slog.Logger
}

// RunnerOpt configures a Runner.
type RunnerOpt func(r *Runner)

// WithLogger sets the progress logger.
func WithLogger(logger *slog.Logger) RunnerOpt {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithBenchmarkFunc replaces testing.Benchmark.
func WithBenchmarkFunc(fn BenchmarkFunc) RunnerOpt {
	return func(r *Runner) {
		if fn != nil {
			r.benchmark = fn
		}
	}
}

// NewRunner resolves the configured strategies.
func NewRunner(cfg *Config, opts ...RunnerOpt) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	strategies, err := strategy.Select(cfg.Strategies)
	if err != nil {
		return nil, err
	}

	r := &Runner{
		strategies: strategies,
		cases:      cfg.Cases,
		reference:  strategy.Grammar(),
		benchmark:  testing.Benchmark,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Run measures every strategy on every case, in order. It stops between
// measurements once ctx is done.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	results := make([]Result, 0, len(r.cases)*len(r.strategies))

	for _, c := range r.cases {
		data := c.Data()
		want, err := r.reference.Parse(data)
		if err != nil {
			r.logger.Warn("reference grammar rejects case", "case", c.Name, "error", err)
		}
		r.logger.Info("running case", "case", c.Name, "bytes", len(data), "strategies", len(r.strategies))

		for _, s := range r.strategies {
			if err := ctx.Err(); err != nil {
				return results, fmt.Errorf("benchmark cancelled: %w", err)
			}
			results = append(results, r.measure(c.Name, data, want, s))
		}
	}
	return results, nil
}

// measure parses once to check the output, then benchmarks the strategy.
func (r *Runner) measure(caseName, data string, want [][]string, s strategy.Strategy) Result {
	res := Result{Case: caseName, Strategy: s.Name()}

	got, err := s.Parse(data)
	if err != nil {
		r.logger.Warn("strategy rejects input", "case", caseName, "strategy", s.Name(), "error", err)
		res.Err = err
		return res
	}
	res.Records = len(got)
	res.Agrees = sameRecords(got, want)

	br := r.benchmark(func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := s.Parse(data); err != nil {
				b.Fatal(err)
			}
		}
	})
	res.Iterations = br.N
	res.NsPerOp = br.NsPerOp()
	res.BytesPerOp = br.AllocedBytesPerOp()
	res.AllocsPerOp = br.AllocsPerOp()

	r.logger.Debug("measured",
		"case", caseName,
		"strategy", s.Name(),
		"ns_per_op", res.NsPerOp,
		"allocs_per_op", res.AllocsPerOp,
		"agrees", res.Agrees)
	return res
}

// sameRecords compares record lists, treating nil and empty as equal.
func sameRecords(a, b [][]string) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	return reflect.DeepEqual(a, b)
}
