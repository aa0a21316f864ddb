// Package worker provides a worker pool that scores root moves in parallel.
package worker

import (
	"sort"
	"sync"
)

// WorkItem is one root move to be searched, named by its generation order
// at the root.
type WorkItem struct {
	Index int
}

// ProcessResult is the outcome of searching one root move.
type ProcessResult struct {
	Index      int
	Score      float64
	Nodes      int
	Leaves     int
	Extensions int
}

// ProcessFunc searches a single work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a fixed set of goroutines over submitted work items.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPoolWithOptions creates a pool using functional options.
// Default: 1 worker, buffer size of 10.
func NewPoolWithOptions(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

func (p *Pool) start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		p.resultChan <- p.processFunc(item)
	}
}

// close closes the work channel, waits for the workers and then closes
// the result channel.
func (p *Pool) close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Run submits every item, waits for all of them and returns the results
// sorted by Index, so the caller sees them in submission order whatever
// order the workers finished in. A pool runs once.
func (p *Pool) Run(items []WorkItem) []ProcessResult {
	p.start()
	go func() {
		for _, item := range items {
			p.workChan <- item
		}
		p.close()
	}()

	results := make([]ProcessResult, 0, len(items))
	for r := range p.resultChan {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results
}
