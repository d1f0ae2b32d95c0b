package core

// pipeline.go runs a dataset end to end:
//
//  1. Check arguments and open the inputs (ConfigError on any problem)
//  2. Load one table per input
//  3. Reconcile the tables into records, ascending by ID
//  4. Open one sink per tier, route every record, close every sink
//
// Inputs are loaded before any output is created, so a bad header never
// leaves empty output files behind.

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/JonMunkholm/census2011/internal/logging"
)

// RunOptions configures one pipeline run.
type RunOptions struct {
	Inputs     []string // One path per dataset source, in source order
	OutputStub string   // Outputs are <stub>_<tier>.csv
	Encoding   Encoding // Input encoding; empty means UTF-8
	Sinks      SinkOptions
}

// Pipeline runs the transformation for one dataset.
type Pipeline struct {
	dataset Dataset
}

// NewPipeline validates ds and returns a pipeline for it.
func NewPipeline(ds Dataset) (*Pipeline, error) {
	if err := ds.Check(); err != nil {
		return nil, &ConfigError{Op: "dataset", Err: err}
	}
	return &Pipeline{dataset: ds}, nil
}

// Dataset returns the dataset the pipeline runs.
func (p *Pipeline) Dataset() Dataset { return p.dataset }

// Run executes the pipeline. Row-level problems are reported in the result;
// the returned error is either a *ConfigError or an output I/O failure.
func (p *Pipeline) Run(ctx context.Context, opts RunOptions) (result *RunResult, err error) {
	start := time.Now()
	runID := uuid.New()
	ctx = logging.WithRunID(ctx, runID.String())
	logger := logging.WithFields(ctx, "dataset", p.dataset.Key)

	if err := p.checkOptions(opts); err != nil {
		return nil, err
	}
	enc := opts.Encoding
	if enc == "" {
		enc = EncodingUTF8
	}

	tables := make([]*Table, len(opts.Inputs))
	for i, path := range opts.Inputs {
		table, err := p.loadInput(ctx, i, path, enc)
		if err != nil {
			return nil, err
		}
		tables[i] = table
	}

	merged, err := NewReconciler(p.dataset).Reconcile(ctx, tables...)
	if err != nil {
		return nil, err
	}

	sinks, err := OpenSinks(opts.OutputStub, p.dataset.Tiers, p.dataset.Header(), opts.Sinks)
	if err != nil {
		return nil, &ConfigError{Op: "output", Err: err}
	}
	for _, path := range sinks.Paths() {
		logger.Info("creating output", "path", path)
	}
	defer func() {
		if cerr := sinks.Close(); cerr != nil && err == nil {
			result, err = nil, cerr
		}
		logger.Debug("outputs closed", "count", len(sinks.Paths()))
	}()

	router, err := NewRouter(p.dataset.Tiers, sinks.Sinks())
	if err != nil {
		return nil, err
	}
	for _, rec := range merged.Records {
		if _, err := router.Route(rec); err != nil {
			return nil, err
		}
	}

	result = &RunResult{
		RunID:      runID,
		Dataset:    p.dataset.Key,
		Records:    len(merged.Records),
		Routed:     router.Counts(),
		Unroutable: router.Unroutable(),
		Dropped:    merged.Dropped,
		Gaps:       merged.Gaps,
		Outputs:    sinks.Paths(),
		Duration:   time.Since(start),
	}
	rejected := 0
	for _, t := range tables {
		result.Inputs = append(result.Inputs, t.Stats)
		rejected += t.Stats.Rejected
	}

	logger.Info("run complete",
		"records", result.Records,
		"written", result.Written(),
		"rejected", rejected,
		"gaps", len(result.Gaps),
		"unroutable", result.Unroutable,
		"duration", result.Duration,
	)
	return result, nil
}

// checkOptions validates the argument list before anything is opened.
func (p *Pipeline) checkOptions(opts RunOptions) error {
	if len(opts.Inputs) != len(p.dataset.Sources) {
		return configErrorf("args", "dataset %q takes %d input file(s), got %d",
			p.dataset.Key, len(p.dataset.Sources), len(opts.Inputs))
	}
	if opts.OutputStub == "" {
		return configErrorf("args", "output stub is required")
	}

	var errs []error
	for _, path := range opts.Inputs {
		info, err := os.Stat(path)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("input %s: %w", path, err))
		case !info.Mode().IsRegular():
			errs = append(errs, fmt.Errorf("input %s: not a regular file", path))
		}
	}
	if len(errs) > 0 {
		return &ConfigError{Op: "input", Err: errors.Join(errs...)}
	}
	return nil
}

// loadInput opens and loads the i-th input.
func (p *Pipeline) loadInput(ctx context.Context, i int, path string, enc Encoding) (*Table, error) {
	loader, err := NewTableLoader(p.dataset, i)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &ConfigError{Op: "input", Err: err}
	}
	defer f.Close()

	return loader.Load(ctx, path, f, enc)
}
