// Package ingest loads HAR files in the background and publishes the
// resulting dataset to the render loop.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sadopc/hartl/internal/har"
	"github.com/sadopc/hartl/internal/timeline"
)

const resultBuffer = 8

// Result reports the outcome of one load that ran to completion.
type Result struct {
	Path    string
	Entries int
	Bytes   int64
	Elapsed time.Duration
	Err     error
}

// Pipeline runs at most one load at a time. A new Load cancels the one in
// flight; the new worker starts only after the old one has exited, and a
// cancelled worker never publishes.
type Pipeline struct {
	progress *timeline.Progress
	dataset  atomic.Pointer[timeline.Dataset]
	results  chan Result
	active   atomic.Int32

	// runMu is held by the worker that is doing the work.
	runMu sync.Mutex

	mu     sync.Mutex
	cancel context.CancelFunc
	closed bool
	wg     sync.WaitGroup

	readFile func(string) ([]byte, error)
}

// New returns a pipeline reporting progress through progress. The published
// dataset starts out empty.
func New(progress *timeline.Progress) *Pipeline {
	p := &Pipeline{
		progress: progress,
		results:  make(chan Result, resultBuffer),
		readFile: os.ReadFile,
	}
	p.dataset.Store(timeline.NewDataset("", nil))
	return p
}

// Dataset returns the most recently published dataset.
func (p *Pipeline) Dataset() *timeline.Dataset {
	return p.dataset.Load()
}

// Loading reports whether a load is queued or running.
func (p *Pipeline) Loading() bool {
	return p.active.Load() > 0
}

// Poll returns a pending result without blocking.
func (p *Pipeline) Poll() (Result, bool) {
	select {
	case r := <-p.results:
		return r, true
	default:
		return Result{}, false
	}
}

// Load starts loading path and returns immediately.
func (p *Pipeline) Load(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	if p.cancel != nil {
		p.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel

	p.active.Add(1)
	p.wg.Add(1)
	go p.run(ctx, path)
}

// Close cancels the load in flight and waits for every worker to exit.
func (p *Pipeline) Close() {
	p.mu.Lock()
	p.closed = true
	if p.cancel != nil {
		p.cancel()
	}
	p.mu.Unlock()
	p.wg.Wait()
}

func (p *Pipeline) run(ctx context.Context, path string) {
	defer p.wg.Done()
	defer p.active.Add(-1)

	p.runMu.Lock()
	defer p.runMu.Unlock()
	if ctx.Err() != nil {
		return
	}

	start := time.Now()
	log.Printf("ingest: loading %s", path)
	p.progress.SetLabel("Parse har archive file: " + path)
	p.progress.SetTarget(0)

	d, size, err := p.load(ctx, path)
	switch {
	case errors.Is(err, context.Canceled):
		log.Printf("ingest: load of %s superseded", path)
		return
	case err != nil:
		log.Printf("ingest: load of %s failed: %v", path, err)
		p.resetProgress()
		p.report(Result{Path: path, Err: err, Elapsed: time.Since(start)})
		return
	}

	if !p.publish(ctx, d) {
		log.Printf("ingest: load of %s superseded", path)
		return
	}
	if d.Len() == 0 {
		p.resetProgress()
	}
	elapsed := time.Since(start)
	log.Printf("ingest: loaded %d entries from %s in %s", d.Len(), path, elapsed)
	p.report(Result{Path: path, Entries: d.Len(), Bytes: size, Elapsed: elapsed})
}

func (p *Pipeline) load(ctx context.Context, path string) (*timeline.Dataset, int64, error) {
	data, err := p.readFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("reading %s: %w", path, err)
	}
	size := int64(len(data))
	if err := ctx.Err(); err != nil {
		return nil, size, err
	}

	doc, err := har.Decode(data)
	if err != nil {
		return nil, size, err
	}

	n := len(doc.Log.Entries)
	entries := make([]timeline.Entry, 0, n)
	for i, raw := range doc.Log.Entries {
		if err := ctx.Err(); err != nil {
			return nil, size, err
		}
		he, err := har.DecodeEntry(raw)
		if err != nil {
			return nil, size, fmt.Errorf("entry %d: %w", i, err)
		}
		e, err := timeline.NewEntry(he)
		if err != nil {
			return nil, size, fmt.Errorf("entry %d: %w", i, err)
		}
		entries = append(entries, e)
		p.progress.SetLabel(fmt.Sprintf("Loading har... %d/%d", i+1, n))
		p.progress.SetTarget(float64(i+1) / float64(n))
	}

	if err := ctx.Err(); err != nil {
		return nil, size, err
	}
	return timeline.NewDataset(path, entries), size, nil
}

// publish stores d unless ctx was cancelled. Load cancels under mu, so the
// check and the store cannot interleave with a newer Load.
func (p *Pipeline) publish(ctx context.Context, d *timeline.Dataset) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if ctx.Err() != nil {
		return false
	}
	p.dataset.Store(d)
	return true
}

func (p *Pipeline) resetProgress() {
	p.progress.SetLabel(timeline.PlaceholderLabel)
	p.progress.SetTarget(0)
}

// report never blocks a worker; when nobody drains the channel the oldest
// result is dropped.
func (p *Pipeline) report(r Result) {
	for {
		select {
		case p.results <- r:
			return
		default:
		}
		select {
		case <-p.results:
		default:
		}
	}
}
