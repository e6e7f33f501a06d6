package convert

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/flowcase/canonical"
	"github.com/katalvlaran/flowcase/flow"
	"github.com/katalvlaran/flowcase/judge"
	"github.com/katalvlaran/flowcase/network"
)

// Converter turns judge test cases into canonical files.
// It holds no per-pair state, so one Converter may serve many batches.
type Converter struct {
	store   Store
	log     zerolog.Logger
	workers int
	solver  flow.Solver
	runID   string
}

// Option configures a Converter before use.
type Option func(*Converter)

// WithStore sets the file system; the default is an afs-backed store.
func WithStore(s Store) Option {
	if s == nil {
		panic("convert: WithStore(nil)")
	}
	return func(c *Converter) { c.store = s }
}

// WithLogger sets the logger; the default discards everything.
// Workers log concurrently, so the logger's writer must be safe for
// concurrent use: wrap buffers with zerolog.SyncWriter.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Converter) { c.log = l }
}

// WithWorkers bounds how many pairs of one directory are processed at once.
// Values below 1 mean 1.
func WithWorkers(n int) Option {
	return func(c *Converter) {
		if n < 1 {
			n = 1
		}
		c.workers = n
	}
}

// WithSolver sets the max-flow solver used by VerifyDir; nil keeps Dinic.
func WithSolver(solve flow.Solver) Option {
	return func(c *Converter) {
		if solve != nil {
			c.solver = solve
		}
	}
}

// New creates a Converter. Every Converter gets a run id that tags its logs.
func New(opts ...Option) *Converter {
	c := &Converter{
		log:     zerolog.Nop(),
		workers: 1,
		solver:  flow.Dinic,
		runID:   uuid.NewString(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.store == nil {
		c.store = NewAFSStore(nil)
	}
	c.log = c.log.With().Str("run_id", c.runID).Logger()

	return c
}

// RunID returns the id attached to every log line of this Converter.
func (c *Converter) RunID() string { return c.runID }

// ConvertPair converts one test case. The canonical body is fully built
// before the single write, so a failure never leaves a partial output.
// Errors are *network.FileError values naming the offending file.
func (c *Converter) ConvertPair(ctx context.Context, f judge.Format, p Pair) error {
	ok, err := c.store.Exists(ctx, p.Expected)
	if err != nil {
		return network.AtPath(p.Expected, err)
	}
	if !ok {
		return network.AtPath(p.Input, fmt.Errorf("%w: %s", network.ErrMissingPairedFile, p.Expected))
	}

	input, err := c.store.Read(ctx, p.Input)
	if err != nil {
		return network.AtPath(p.Input, err)
	}
	expected, err := c.store.Read(ctx, p.Expected)
	if err != nil {
		return network.AtPath(p.Expected, err)
	}

	inst, err := judge.Parse(f, input, expected)
	if err != nil {
		return network.AtPath(p.Input, err)
	}
	body, err := canonical.Encode(inst)
	if err != nil {
		return network.AtPath(p.Input, err)
	}

	if err = c.store.Write(ctx, p.Output, body); err != nil {
		return network.AtPath(p.Output, err)
	}
	return nil
}

// ConvertDir converts every test case of format f found in dir.
//
// Pairs are processed by up to WithWorkers goroutines. A failing pair is
// logged and recorded in the report; it never stops the others. The
// returned error is non-nil only when discovery fails or ctx is done.
func (c *Converter) ConvertDir(ctx context.Context, f judge.Format, dir string) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log := c.log.With().Str("format", f.String()).Str("dir", dir).Logger()

	pairs, err := Discover(ctx, c.store, f, dir)
	if err != nil {
		return nil, err
	}
	log.Info().Int("pairs", len(pairs)).Msg("converting directory")

	report := &Report{}
	c.fanOut(ctx, pairs, func(p Pair) {
		if err := c.ConvertPair(ctx, f, p); err != nil {
			log.Error().Err(err).Str("path", p.Input).Msg("conversion failed")
			report.fail(p.Input, err)
			return
		}
		log.Debug().Str("path", p.Input).Str("output", p.Output).Msg("converted")
		report.ok(p.Output)
	})
	report.sort()

	log.Info().
		Int("converted", len(report.Converted)).
		Int("failed", len(report.Failed)).
		Msg("directory done")

	return report, ctx.Err()
}

// fanOut feeds pairs to c.workers goroutines running fn and waits for them.
// Dispatch stops early once ctx is done.
func (c *Converter) fanOut(ctx context.Context, pairs []Pair, fn func(Pair)) {
	queue := make(chan Pair)
	var wg sync.WaitGroup
	for i := 0; i < c.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range queue {
				fn(p)
			}
		}()
	}

dispatch:
	for _, p := range pairs {
		if ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
			break dispatch
		case queue <- p:
		}
	}
	close(queue)
	wg.Wait()
}

// Bundle joins the canonical bodies at paths, in order, into one file at
// out with a single newline between bodies. out must not carry the
// canonical suffix, or later runs would read it back as a test case.
func (c *Converter) Bundle(ctx context.Context, paths []string, out string) error {
	if strings.HasSuffix(out, canonical.Suffix) {
		return fmt.Errorf("convert: bundle %s must not end in %s", out, canonical.Suffix)
	}
	bodies := make([][]byte, 0, len(paths))
	for _, path := range paths {
		body, err := c.store.Read(ctx, path)
		if err != nil {
			return network.AtPath(path, err)
		}
		bodies = append(bodies, body)
	}
	if err := c.store.Write(ctx, out, canonical.Join(bodies...)); err != nil {
		return network.AtPath(out, err)
	}
	c.log.Info().Str("path", out).Int("cases", len(paths)).Msg("bundle written")

	return nil
}
