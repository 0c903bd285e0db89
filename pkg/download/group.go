package download

import (
	"context"
	"sync"

	"github.com/glorpus-work/mcget/internal/logger"
)

// Handle identifies a request within the group's current batch. Results of a
// Flush are indexed by it.
type Handle int

// Group owns a set of queued transfers and runs them with bounded
// concurrency. The ceiling caps simultaneously open destination files, which
// is what keeps bulk asset downloads under OS descriptor limits.
//
// A group is created per acquisition run, accumulates requests for one
// logical batch, is flushed at a stage boundary, then reused for the next
// batch. It is not safe for concurrent use by multiple goroutines.
type Group struct {
	client    *Client
	limit     int
	pending   []Request
	completed int
}

// NewGroup creates a transfer group. limit is the concurrency ceiling;
// values below 1 are treated as 1.
func NewGroup(client *Client, limit int) *Group {
	if limit < 1 {
		limit = 1
	}
	return &Group{client: client, limit: limit}
}

// Add queues a request. It never blocks; the transfer starts during Flush.
// The returned handle indexes the request's result in the next Flush.
func (g *Group) Add(req Request) Handle {
	g.pending = append(g.pending, req)
	return Handle(len(g.pending) - 1)
}

// Len returns the number of queued requests.
func (g *Group) Len() int {
	return len(g.pending)
}

// Completed returns the number of transfers finished over the group's
// lifetime, across flushes.
func (g *Group) Completed() int {
	return g.completed
}

// Flush runs every queued request to completion and returns one result per
// request, indexed by the handles Add returned. The calling goroutine blocks
// until the whole batch is done. At most the configured limit of transfers is
// active at any instant; each transfer's checksum step runs exactly once,
// immediately after its body completes, before the slot is released.
//
// An individual transfer's failure is recorded in its result and does not
// abort the rest of the batch; there is no automatic retry. After Flush
// returns the group is empty and reusable.
func (g *Group) Flush(ctx context.Context) []Result {
	batch := g.pending
	g.pending = nil
	if len(batch) == 0 {
		return nil
	}

	results := make([]Result, len(batch))
	slots := make(chan struct{}, g.limit)
	var wg sync.WaitGroup

	for i := range batch {
		wg.Add(1)
		go func(h int) {
			defer wg.Done()
			slots <- struct{}{}
			defer func() { <-slots }()
			results[h] = g.client.Do(ctx, batch[h])
		}(i)
	}
	wg.Wait()

	g.completed += len(batch)
	for _, res := range Failed(results) {
		logger.Warn("transfer failed", logger.Fields{
			"url":   res.Request.URL,
			"label": res.Request.Label,
			"error": res.Err.Error(),
		})
	}
	return results
}
