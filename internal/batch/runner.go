package batch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"topic-indexer/internal/cache"
	"topic-indexer/internal/diagnostic"
	"topic-indexer/internal/enrich"
	"topic-indexer/internal/marc"
)

var (
	errUnnamedOutput   = fmt.Errorf("%w: output has no name", diagnostic.ErrConfiguration)
	errDuplicateOutput = fmt.Errorf("%w: duplicate output name", diagnostic.ErrConfiguration)
)

// Line is one JSON output line.
type Line struct {
	ID     string              `json:"id"`
	Fields map[string][]string `json:"fields"`
}

// Summary reports the outcome of a run.
type Summary struct {
	Records     int
	Written     int
	Failures    int
	Skipped     []string
	Diagnostics *diagnostic.Diagnostics
	Cache       cache.Stats
}

// Runner evaluates outputs over records.
type Runner struct {
	engine  *enrich.Engine
	outputs []enrich.Output
	workers int
	log     *zap.Logger
}

// NewRunner creates a runner with the given number of workers.
func NewRunner(engine *enrich.Engine, outputs []enrich.Output, workers int, log *zap.Logger) *Runner {
	if workers <= 0 {
		workers = 1
	}

	if log == nil {
		log = zap.NewNop()
	}

	return &Runner{
		engine:  engine,
		outputs: outputs,
		workers: workers,
		log:     log.Named("batch"),
	}
}

// run holds the state shared by the workers of one Run.
type run struct {
	active []enrich.Output

	mu     sync.Mutex
	diags  *diagnostic.Diagnostics
	failed map[string]bool

	records  atomic.Int64
	failures atomic.Int64
}

// Run reads records until the channel is closed and writes one line per
// record to w. It stops early when ctx is cancelled or writing fails.
func (r *Runner) Run(ctx context.Context, records <-chan *marc.Record, w io.Writer) (Summary, error) {
	st := &run{diags: &diagnostic.Diagnostics{}, failed: map[string]bool{}}

	var skipped []string

	seen := make(map[string]bool, len(r.outputs))

	for _, out := range r.outputs {
		err := r.engine.Validate(out, st.diags)

		switch {
		case err != nil:
		case out.Name == "":
			err = errUnnamedOutput
		case seen[out.Name]:
			err = fmt.Errorf("%w %q", errDuplicateOutput, out.Name)
		}

		if err != nil {
			r.log.Error("skipping output", zap.String("output", out.Name), zap.Error(err))
			st.diags.AddWarning(diagnostic.CodeSkipped, "output skipped: "+err.Error(), out.Name, "")
			skipped = append(skipped, out.Name)

			continue
		}

		seen[out.Name] = true
		st.active = append(st.active, out)
	}

	g, gctx := errgroup.WithContext(ctx)
	lines := make(chan Line, r.workers)

	var workers errgroup.Group

	for range r.workers {
		workers.Go(func() error {
			return r.work(gctx, st, records, lines)
		})
	}

	g.Go(func() error {
		defer close(lines)
		return workers.Wait()
	})

	written := 0

	g.Go(func() error {
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)

		for line := range lines {
			if err := enc.Encode(line); err != nil {
				return fmt.Errorf("failed to write record %s: %w", line.ID, err)
			}

			written++
		}

		return nil
	})

	err := g.Wait()

	summary := Summary{
		Records:     int(st.records.Load()),
		Written:     written,
		Failures:    int(st.failures.Load()),
		Skipped:     skipped,
		Diagnostics: st.diags,
		Cache:       r.engine.CacheStats(),
	}

	r.log.Info("run finished",
		zap.Int("records", summary.Records),
		zap.Int("written", summary.Written),
		zap.Int("failures", summary.Failures),
		zap.Strings("skipped", skipped),
		zap.Uint64("cache_hits", summary.Cache.Hits),
		zap.Uint64("cache_computations", summary.Cache.Computations))

	return summary, err
}

func (r *Runner) work(ctx context.Context, st *run, records <-chan *marc.Record, lines chan<- Line) error {
	for {
		var (
			rec *marc.Record
			ok  bool
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case rec, ok = <-records:
			if !ok {
				return nil
			}
		}

		line := r.process(st, rec)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case lines <- line:
		}
	}
}

func (r *Runner) process(st *run, rec *marc.Record) Line {
	st.records.Add(1)

	line := Line{ID: rec.ControlNumber(), Fields: make(map[string][]string, len(st.active))}

	for _, out := range st.active {
		values, err := r.engine.Evaluate(rec, out)
		if err != nil {
			st.failures.Add(1)
			r.reportFailure(st, out, rec, err)

			continue
		}

		if len(values) > 0 {
			line.Fields[out.Name] = values
		}
	}

	return line
}

// reportFailure logs every failure and records one diagnostic per output.
func (r *Runner) reportFailure(st *run, out enrich.Output, rec *marc.Record, err error) {
	r.log.Warn("output failed",
		zap.String("output", out.Name),
		zap.String("record", rec.ControlNumber()),
		zap.Error(err))

	st.mu.Lock()
	defer st.mu.Unlock()

	if st.failed[out.Name] {
		return
	}

	st.failed[out.Name] = true
	st.diags.AddError(diagnostic.CodeExtraction, err.Error(), out.Name, "")
}

// RunDecoder streams records from dec into Run.
func (r *Runner) RunDecoder(ctx context.Context, dec *marc.Decoder, w io.Writer) (Summary, error) {
	g, gctx := errgroup.WithContext(ctx)
	records := make(chan *marc.Record)

	g.Go(func() error {
		defer close(records)

		for {
			rec, err := dec.Decode()
			if errors.Is(err, io.EOF) {
				return nil
			}

			if err != nil {
				return err
			}

			select {
			case records <- rec:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
	})

	var summary Summary

	g.Go(func() error {
		var err error

		summary, err = r.Run(gctx, records, w)

		return err
	})

	err := g.Wait()

	return summary, err
}

// Feed sends recs on a new channel and closes it.
func Feed(ctx context.Context, recs []*marc.Record) <-chan *marc.Record {
	ch := make(chan *marc.Record)

	go func() {
		defer close(ch)

		for _, rec := range recs {
			select {
			case ch <- rec:
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch
}
