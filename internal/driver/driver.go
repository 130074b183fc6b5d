// Package driver runs the formatter over files on disk.
package driver

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"

	"yulfmt/internal/dialect"
	"yulfmt/internal/errors"
	"yulfmt/internal/format"
)

var log = commonlog.GetLogger("yulfmt.driver")

// Options configures a driver run.
type Options struct {
	Version string // EVM version name
	Format  format.Options
	Check   bool // report changes without writing
	Write   bool // rewrite changed files in place
	Jobs    int  // parallel workers, GOMAXPROCS when <= 0
	Cache   *Cache
}

// Result captures the outcome of formatting a single input.
type Result struct {
	Path        string
	Source      []byte
	Formatted   []byte // nil when the input had errors
	Changed     bool
	Cached      bool
	Diagnostics []errors.Diagnostic
	Dropped     int   // diagnostics past the configured limit
	Err         error // I/O failure, distinct from diagnostics
}

// Failed reports whether the input could not be formatted.
func (r Result) Failed() bool {
	if r.Err != nil {
		return true
	}
	for _, d := range r.Diagnostics {
		if d.IsError() {
			return true
		}
	}
	return false
}

// FormatPaths formats the given files and directories in parallel.
// Results are returned in the sorted order of CollectFiles. Per-file
// problems are reported in the results; the error is for setup failures
// and cancellation.
func FormatPaths(ctx context.Context, paths []string, opts Options) ([]Result, error) {
	d, err := dialect.Resolve(opts.Version)
	if err != nil {
		return nil, err
	}

	files, err := CollectFiles(ctx, paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoSources
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	log.Debugf("formatting %d files with %d workers", len(files), min(jobs, len(files)))

	// Each worker writes only its own index.
	results := make([]Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = formatFile(path, d, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// FormatReader formats a single input read from r, typically stdin. Nothing is written.
func FormatReader(name string, r io.Reader, opts Options) (Result, error) {
	d, err := dialect.Resolve(opts.Version)
	if err != nil {
		return Result{}, err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return Result{}, fmt.Errorf("read %s: %w", name, err)
	}
	return formatSource(name, data, d, opts), nil
}

func formatFile(path string, d *dialect.Dialect, opts Options) Result {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{Path: path, Err: err}
	}

	res := formatSource(path, data, d, opts)
	if opts.Check || !opts.Write || !res.Changed || res.Formatted == nil {
		return res
	}

	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(path, res.Formatted, mode.Perm()); err != nil {
		res.Err = err
		return res
	}
	log.Infof("formatted %s", path)
	return res
}

func formatSource(name string, data []byte, d *dialect.Dialect, opts Options) Result {
	res := Result{Path: name, Source: data}

	var key Key
	if opts.Cache != nil {
		key = KeyFor(data, d.Name(), opts.Format)
		payload, ok, err := opts.Cache.Get(key)
		switch {
		case err != nil:
			log.Warningf("cache read for %s: %s", name, err)
		case ok:
			res.Formatted = []byte(payload.Formatted)
			res.Changed = !bytes.Equal(data, res.Formatted)
			res.Cached = true
			return res
		}
	}

	out := format.Format(string(data), name, d, opts.Format)
	res.Diagnostics = out.Diagnostics
	res.Dropped = out.Dropped
	if !out.OK {
		return res
	}
	res.Formatted = []byte(out.Text)
	res.Changed = !bytes.Equal(data, res.Formatted)

	// Only clean results are cached so a hit never hides a warning.
	if opts.Cache != nil && len(out.Diagnostics) == 0 {
		err := opts.Cache.Put(key, &CachePayload{
			Version:   d.Name(),
			Indent:    opts.Format.Indent,
			Formatted: out.Text,
		})
		if err != nil {
			log.Warningf("cache write for %s: %s", name, err)
		}
	}
	return res
}

// Summarize counts changed and failed results.
func Summarize(results []Result) (changed, failed int) {
	for _, r := range results {
		if r.Failed() {
			failed++
		} else if r.Changed {
			changed++
		}
	}
	return changed, failed
}
