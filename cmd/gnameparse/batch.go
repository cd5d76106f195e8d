package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnameparser/pkg/errcode"
	"github.com/gnames/gnameparser/pkg/gnameparser"
	"github.com/gnames/gnameparser/pkg/nomcode"
	"github.com/gnames/gnameparser/pkg/rank"
	"github.com/gnames/gnfmt"
	"golang.org/x/sync/errgroup"
)

// indexed ties a batch result to its input position so output keeps the
// input order regardless of which worker finished first.
type indexed struct {
	pos int
	rec record
}

// parseBatch reads names line by line from a file ('-' for STDIN), parses
// them concurrently and writes records to STDOUT in input order.
func parseBatch(parser gnameparser.GNameParser, path string,
	rankHint rank.Rank, codeHint nomcode.Code) error {
	names, err := readNames(path)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if len(names) == 0 {
		return nil
	}

	timeStart := time.Now()
	results := make([]record, len(names))

	var bar *pb.ProgressBar
	if path != "-" {
		bar = newProgressBar(len(names))
	}

	chIn := make(chan indexed)
	g, ctx := errgroup.WithContext(context.Background())

	g.Go(func() error {
		defer close(chIn)
		for i, name := range names {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case chIn <- indexed{pos: i, rec: record{Verbatim: name}}:
			}
		}
		return nil
	})

	for range cfg.JobsNumber {
		g.Go(func() error {
			for in := range chIn {
				results[in.pos] = parseOne(parser, in.rec.Verbatim,
					rankHint, codeHint)
				if bar != nil {
					bar.Increment()
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return &gn.Error{
			Code: errcode.InputReadError,
			Msg:  "Batch parsing failed",
			Err:  fmt.Errorf("batch parsing: %w", err),
		}
	}
	if bar != nil {
		bar.Finish()
	}

	enc := newEncoder(cfg.Format)
	for _, rec := range results {
		if err := enc.write(os.Stdout, rec); err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
	}

	duration := time.Since(timeStart).Seconds()
	speed := int64(float64(len(names)) / duration)
	gn.Info("Parsed <em>%s</em> names in %s, %s names/sec",
		humanize.Comma(int64(len(names))),
		gnfmt.TimeString(duration),
		humanize.Comma(speed),
	)
	return nil
}

// newProgressBar creates a new progress bar with consistent settings.
func newProgressBar(total int) *pb.ProgressBar {
	bar := pb.Full.Start(total)
	bar.Set("prefix", "Parsing: ")
	bar.Set(pb.CleanOnFinish, true)
	return bar
}

// readNames loads the input names, one per line, skipping blanks.
func readNames(path string) ([]string, error) {
	var f *os.File
	if path == "-" {
		f = os.Stdin
	} else {
		var err error
		f, err = os.Open(path)
		if err != nil {
			return nil, &gn.Error{
				Code: errcode.InputFileError,
				Msg:  "Cannot open input file <em>%s</em>",
				Vars: []any{path},
				Err:  fmt.Errorf("failed to open input: %w", err),
			}
		}
		defer f.Close()
	}

	var names []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		name := strings.TrimSpace(sc.Text())
		if name != "" {
			names = append(names, name)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &gn.Error{
			Code: errcode.InputReadError,
			Msg:  "Cannot read input <em>%s</em>",
			Vars: []any{path},
			Err:  fmt.Errorf("failed to read input: %w", err),
		}
	}
	return names, nil
}
