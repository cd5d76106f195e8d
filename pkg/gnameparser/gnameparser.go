// Package gnameparser parses scientific names and authorship strings into
// structured records.
//
// The parsing itself is pure computation, but pathological inputs exist in
// the wild, so every parse runs on a bounded worker pool under a hard
// wall-clock deadline. Reuse a parser instance as much as possible and do
// not forget to Close it for the workers to shut down properly.
package gnameparser

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gnames/gnameparser/internal/parserpool"
	"github.com/gnames/gnameparser/internal/parsing"
	"github.com/gnames/gnameparser/pkg/config"
	"github.com/gnames/gnameparser/pkg/nametype"
	"github.com/gnames/gnameparser/pkg/nomcode"
	"github.com/gnames/gnameparser/pkg/parsed"
	"github.com/gnames/gnameparser/pkg/rank"
)

// GNameParser parses scientific names.
type GNameParser interface {
	// Parse decomposes a scientific name into a structured record, trying
	// to extract authorships, a conceptual sec reference, remarks and
	// notes on the nomenclatural status.
	//
	// Rank is the rank of the name if known externally; it helps telling
	// infrageneric names from bracket authors. Code is the nomenclatural
	// code the name falls into, Unknown if not known.
	//
	// Strings which are empty, no scientific names, or scientific names
	// that cannot be expressed by the ParsedName record produce an
	// *parsed.UnparsableNameError with the classifier's best-guess
	// NameType. This is the case for all virus names and proper hybrid
	// formulas, so make sure to handle that error.
	Parse(name string, rnk rank.Rank, code nomcode.Code) (parsed.ParsedName, error)

	// ParseAuthorship parses a bare authorship string, including basionym
	// and ex-authors. Failures produce *parsed.UnparsableAuthorshipError.
	ParseAuthorship(text string) (parsed.ParsedAuthorship, error)

	// Configs returns the mutable overrides consulted before parsing.
	Configs() *ParserConfigs

	// Close releases the parser's workers. Idempotent. Parse calls after
	// Close fail with an unparsable error.
	Close()
}

type gnameparser struct {
	timeout time.Duration
	pool    *parserpool.Pool
	configs *ParserConfigs
	closed  atomic.Bool
}

// New creates a parser from the configuration. The worker pool is shared
// across all parser instances; the first instance fixes its size.
func New(cfg *config.Config) GNameParser {
	if cfg == nil {
		cfg = config.New()
	}
	timeout := time.Duration(cfg.TimeoutMillis) * time.Millisecond
	if timeout <= 0 {
		// programmer error: options cannot produce this
		panic("gnameparser: timeout needs to be at least 1ms")
	}
	slog.Debug("Create new name parser", "timeout", timeout)
	return &gnameparser{
		timeout: timeout,
		pool:    acquirePool(cfg.CorePoolSize, cfg.MaxPoolSize, timeout),
		configs: NewParserConfigs(),
	}
}

type parseResult struct {
	pn  parsed.ParsedName
	err error
}

func (p *gnameparser) Parse(name string, rnk rank.Rank, code nomcode.Code) (parsed.ParsedName, error) {
	var zero parsed.ParsedName
	if strings.TrimSpace(name) == "" {
		return zero, &parsed.UnparsableNameError{Type: nametype.NoName, Name: name}
	}
	if p.closed.Load() {
		return zero, &parsed.UnparsableNameError{Type: nametype.Scientific, Name: name}
	}

	if over, ok := p.configs.ForName(name); ok {
		slog.Debug("Manual override found for name", "name", name)
		return over, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	resCh := make(chan parseResult, 1)
	job := parsing.NewNameJob(name, rnk, code)
	task := func() {
		defer func() {
			if r := recover(); r != nil {
				slog.Warn("Panic in parsing job", "name", name, "panic", r)
				resCh <- parseResult{err: &parsed.UnparsableNameError{
					Type: nametype.Scientific, Name: name}}
			}
		}()
		pn, err := job.Run(ctx)
		resCh <- parseResult{pn: pn, err: err}
	}

	if err := p.pool.Submit(task); err != nil {
		slog.Warn("Cannot submit parsing job", "name", name, "error", err)
		return zero, &parsed.UnparsableNameError{Type: nametype.Scientific, Name: name}
	}

	select {
	case res := <-resCh:
		return p.finish(name, res)
	case <-ctx.Done():
		slog.Warn("Parsing timeout for name", "name", name, "timeout", p.timeout)
		return zero, &parsed.UnparsableNameError{Type: nametype.Scientific, Name: name}
	}
}

// finish converts a job result into the public contract: a valid record or
// one of the two unparsable error kinds, never anything else.
func (p *gnameparser) finish(name string, res parseResult) (parsed.ParsedName, error) {
	var zero parsed.ParsedName
	if res.err == nil {
		return res.pn, nil
	}
	var unp *parsed.UnparsableNameError
	if errors.As(res.err, &unp) {
		return zero, unp
	}
	if errors.Is(res.err, context.DeadlineExceeded) ||
		errors.Is(res.err, context.Canceled) {
		// the job observed its cancellation between pipeline steps
		return zero, &parsed.UnparsableNameError{Type: nametype.NoName, Name: name}
	}
	slog.Warn("Unexpected error when parsing name", "name", name, "error", res.err)
	return zero, &parsed.UnparsableNameError{Type: nametype.Scientific, Name: name}
}

func (p *gnameparser) ParseAuthorship(text string) (parsed.ParsedAuthorship, error) {
	var zero parsed.ParsedAuthorship
	if strings.TrimSpace(text) == "" {
		return zero, &parsed.UnparsableAuthorshipError{Text: text}
	}
	if p.closed.Load() {
		return zero, &parsed.UnparsableAuthorshipError{Text: text}
	}

	if over, ok := p.configs.ForAuthorship(text); ok {
		slog.Debug("Manual override found for authorship", "authorship", text)
		return over, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	type authResult struct {
		pa  parsed.ParsedAuthorship
		err error
	}
	resCh := make(chan authResult, 1)
	job := parsing.NewAuthorshipJob(text)
	task := func() {
		defer func() {
			if r := recover(); r != nil {
				slog.Warn("Panic in authorship job", "authorship", text, "panic", r)
				resCh <- authResult{err: &parsed.UnparsableAuthorshipError{Text: text}}
			}
		}()
		pa, err := job.Run(ctx)
		resCh <- authResult{pa: pa, err: err}
	}

	if err := p.pool.Submit(task); err != nil {
		slog.Warn("Cannot submit authorship job", "authorship", text, "error", err)
		return zero, &parsed.UnparsableAuthorshipError{Text: text}
	}

	select {
	case res := <-resCh:
		if res.err == nil {
			return res.pa, nil
		}
		var unp *parsed.UnparsableAuthorshipError
		if errors.As(res.err, &unp) {
			return zero, unp
		}
		return zero, &parsed.UnparsableAuthorshipError{Text: text}
	case <-ctx.Done():
		slog.Warn("Parsing timeout for authorship", "authorship", text)
		return zero, &parsed.UnparsableAuthorshipError{Text: text}
	}
}

func (p *gnameparser) Configs() *ParserConfigs {
	return p.configs
}

func (p *gnameparser) Close() {
	if !p.closed.CompareAndSwap(false, true) {
		return
	}
	slog.Info("Shutting down name parser worker threads")
	releasePool()
}
