// Package worker provides background processing for prediction journal writes.
package worker

import (
	"context"
	"log"
	"sync"

	"github.com/charanteja2729/mood-based-song-recommender/internal/core/ports"
)

// Pool writes journal entries off the request path. It implements the
// journal port itself: Record enqueues without blocking, and workers drain
// the queue into the underlying journal. Entries are dropped with a warning
// when the queue is full; the journal is best-effort by contract.
type Pool struct {
	journal ports.Journal
	jobs    chan ports.JournalEntry
	wg      sync.WaitGroup
}

// compile-time interface assertion
var _ ports.Journal = (*Pool)(nil)

// NewPool creates a worker pool writing to journal with the given queue size.
func NewPool(journal ports.Journal, queueSize int) *Pool {
	if queueSize < 1 {
		queueSize = 1
	}
	return &Pool{journal: journal, jobs: make(chan ports.JournalEntry, queueSize)}
}

// Start launches the worker goroutines.
func (p *Pool) Start(workers int) {
	if workers < 1 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for entry := range p.jobs {
				p.process(entry)
			}
		}()
	}
}

// Stop closes the queue and waits for the remaining entries to be written.
func (p *Pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}

// Record queues an entry without blocking the caller.
func (p *Pool) Record(_ context.Context, entry ports.JournalEntry) error {
	select {
	case p.jobs <- entry:
	default:
		log.Printf("WARN worker: journal queue full, dropping entry %s", entry.ID)
	}
	return nil
}

func (p *Pool) process(entry ports.JournalEntry) {
	// Deliberately not the request context: the request is already done.
	if err := p.journal.Record(context.Background(), entry); err != nil {
		log.Printf("WARN worker: failed to journal prediction %s: %v", entry.ID, err)
	}
}
