// Package worker runs quantization requests on a dedicated goroutine.
//
// A Worker mirrors a message-passing execution context: the host posts
// requests and later receives exactly one response per request. Requests are
// processed one at a time in arrival order. A run is never cancelled once
// started; responses to superseded requests are still delivered but marked
// Stale.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ironsheep/pixelart-mcp/internal/dither"
)

// ErrClosed is reported for requests posted after Close.
var ErrClosed = errors.New("worker closed")

type runFunc func(pixels []byte, width, height int, s dither.Settings, opts dither.Options) ([]byte, error)

type job struct {
	seq   uint64
	req   Request
	reply chan<- Response
}

// Worker owns the request queue and the goroutine that drains it.
type Worker struct {
	logger *slog.Logger
	opts   dither.Options
	run    runFunc

	jobs chan job
	seq  atomic.Uint64

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

// New starts a worker. backlog is the number of requests that may wait in the
// queue before Post blocks.
func New(logger *slog.Logger, backlog int, opts dither.Options) *Worker {
	return start(logger, backlog, opts, dither.RunWithOptions)
}

func start(logger *slog.Logger, backlog int, opts dither.Options, run runFunc) *Worker {
	if backlog < 0 {
		backlog = 0
	}
	w := &Worker{
		logger: logger,
		opts:   opts,
		run:    run,
		jobs:   make(chan job, backlog),
		done:   make(chan struct{}),
	}
	go w.loop()
	return w
}

// Post queues req and returns a channel that receives its response.
//
// The request owns req.ImageData until the response arrives; the caller must
// not modify it meanwhile.
func (w *Worker) Post(req Request) <-chan Response {
	reply := make(chan Response, 1)

	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed {
		reply <- Response{Status: StatusError, Message: ErrClosed.Error(), Code: CodeClosed}
		return reply
	}

	seq := w.seq.Add(1)
	w.jobs <- job{seq: seq, req: req, reply: reply}
	return reply
}

// Convert posts req and waits for its response. If ctx ends first Convert
// returns ctx.Err(); the run itself still completes in the background.
func (w *Worker) Convert(ctx context.Context, req Request) (Response, error) {
	reply := w.Post(req)
	select {
	case resp := <-reply:
		return resp, nil
	case <-ctx.Done():
		return Response{}, ctx.Err()
	}
}

// Close stops accepting requests, waits for queued ones to finish and stops
// the worker goroutine. It is safe to call more than once.
func (w *Worker) Close() {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.jobs)
	}
	w.mu.Unlock()
	<-w.done
}

func (w *Worker) loop() {
	defer close(w.done)
	for j := range w.jobs {
		resp := w.process(j.seq, j.req)
		resp.Stale = j.seq < w.seq.Load()
		j.reply <- resp
	}
}

// process runs one request. A panic is turned into an error response so the
// worker keeps serving.
func (w *Worker) process(seq uint64, req Request) (resp Response) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			w.logger.Error("conversion panicked", "seq", seq, "panic", r)
			resp = Response{Seq: seq, Status: StatusError, Message: fmt.Sprintf("internal error: %v", r), Code: CodeInternal}
		}
	}()

	out, err := w.run(req.ImageData, req.Width, req.Height, req.Settings, w.opts)
	if err != nil {
		w.logger.Warn("conversion rejected", "seq", seq, "error", err)
		return Response{Seq: seq, Status: StatusError, Message: err.Error(), Code: codeOf(err)}
	}

	w.logger.Debug("conversion done",
		"seq", seq,
		"width", req.Width,
		"height", req.Height,
		"palette", req.Settings.Palette,
		"dithering", req.Settings.DitheringType,
		"metric", req.Settings.ColorMetric,
		"elapsed", time.Since(start))

	return Response{
		Seq:       seq,
		Status:    StatusSuccess,
		ImageData: out,
		Width:     req.Width,
		Height:    req.Height,
	}
}
