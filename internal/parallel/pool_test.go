package parallel

import (
	"runtime"
	"sync/atomic"
	"testing"
	"time"
)

func TestWorkerPool_Create(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
	if !pool.IsRunning() {
		t.Error("Pool should be running after creation")
	}
}

func TestWorkerPool_CreateDefaultWorkers(t *testing.T) {
	for _, n := range []int{0, -5} {
		pool := NewWorkerPool(n)
		if pool.Workers() != runtime.GOMAXPROCS(0) {
			t.Errorf("NewWorkerPool(%d).Workers() = %d, want GOMAXPROCS %d",
				n, pool.Workers(), runtime.GOMAXPROCS(0))
		}
		pool.Close()
	}
}

func TestWorkerPool_ForEach(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	const n = 1000
	out := make([]int, n)
	pool.ForEach(n, func(i int) {
		out[i] = i * i
	})

	for i, v := range out {
		if v != i*i {
			t.Fatalf("out[%d] = %d, want %d", i, v, i*i)
		}
	}
}

func TestWorkerPool_ForEach_Empty(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	called := false
	pool.ForEach(0, func(int) { called = true })
	pool.ForEach(-1, func(int) { called = true })
	pool.ForEach(3, nil)

	if called {
		t.Error("ForEach with no tasks should not call fn")
	}
}

func TestWorkerPool_ForEach_SingleWorker(t *testing.T) {
	pool := NewWorkerPool(1)
	defer pool.Close()

	var counter atomic.Int64
	pool.ForEach(100, func(int) { counter.Add(1) })

	if counter.Load() != 100 {
		t.Errorf("counter = %d, want 100", counter.Load())
	}
}

func TestWorkerPool_ForEach_UnevenTasks(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int64
	pool.ForEach(16, func(i int) {
		// Tasks on worker 0 are slow so the others have to steal.
		if i%4 == 0 {
			time.Sleep(5 * time.Millisecond)
		}
		counter.Add(1)
	})

	if counter.Load() != 16 {
		t.Errorf("counter = %d, want 16", counter.Load())
	}
}

func TestWorkerPool_ForEachAfterClose(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()

	if pool.IsRunning() {
		t.Error("Pool should not be running after Close")
	}

	out := make([]bool, 10)
	pool.ForEach(len(out), func(i int) { out[i] = true })
	for i, ok := range out {
		if !ok {
			t.Errorf("task %d did not run on a closed pool", i)
		}
	}
}

func TestWorkerPool_CloseIdempotent(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()
	pool.Close()
}

func TestWorkerPool_NoGoroutineLeak(t *testing.T) {
	before := runtime.NumGoroutine()

	for range 10 {
		pool := NewWorkerPool(4)
		pool.ForEach(20, func(int) {})
		pool.Close()
	}

	time.Sleep(10 * time.Millisecond)
	if after := runtime.NumGoroutine(); after > before+2 {
		t.Errorf("goroutines: before=%d after=%d, pool leaked workers", before, after)
	}
}

func BenchmarkWorkerPool_ForEach(b *testing.B) {
	pool := NewWorkerPool(0)
	defer pool.Close()

	out := make([]float64, 256)
	b.ReportAllocs()
	for b.Loop() {
		pool.ForEach(len(out), func(i int) { out[i] = float64(i) * 0.5 })
	}
}
