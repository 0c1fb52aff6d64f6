// Package parallel runs independent index-addressed tasks on a fixed set of
// goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a pool of goroutines for fitting batches of fibers.
//
// Each worker owns a queue of task indices and steals from the other queues
// when its own is empty, which keeps workers busy when task costs differ.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
	queues  []chan task
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// task is one index of a ForEach call plus its completion group.
type task struct {
	fn    func(int)
	index int
	wg    *sync.WaitGroup
}

func (t task) run() {
	defer t.wg.Done()
	t.fn(t.index)
}

// NewWorkerPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan task, workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan task, queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	own := p.queues[id]
	for {
		select {
		case <-p.done:
			p.drain(own)
			return
		case t := <-own:
			t.run()
		default:
			if t, ok := p.steal(id); ok {
				t.run()
				continue
			}
			select {
			case <-p.done:
				p.drain(own)
				return
			case t := <-own:
				t.run()
			}
		}
	}
}

func (p *WorkerPool) drain(queue chan task) {
	for {
		select {
		case t := <-queue:
			t.run()
		default:
			return
		}
	}
}

func (p *WorkerPool) steal(id int) (task, bool) {
	for i := range p.workers {
		if i == id {
			continue
		}
		select {
		case t := <-p.queues[i]:
			return t, true
		default:
		}
	}
	return task{}, false
}

// ForEach calls fn(i) for every i in [0, n) across the workers and returns
// when all calls have finished. Calls run concurrently; fn must only touch
// state owned by index i.
//
// On a closed pool ForEach runs the calls on the calling goroutine, so a
// batch never silently loses work.
func (p *WorkerPool) ForEach(n int, fn func(i int)) {
	if n <= 0 || fn == nil {
		return
	}
	if !p.running.Load() {
		for i := range n {
			fn(i)
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(n)
	for i := range n {
		t := task{fn: fn, index: i, wg: &wg}
		select {
		case p.queues[i%p.workers] <- t:
		case <-p.done:
			t.run()
		}
	}
	wg.Wait()
}

// Close stops the workers after the queued tasks have run.
// Close is safe to call multiple times, but must not race with ForEach.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool accepts work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
