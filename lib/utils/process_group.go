package utils

import (
	"runtime"
	"sync"
	"sync/atomic"
)

type ParallelOptions struct {
	Routines int
}

// ParallelMap runs proc over every element of col using a pool of goroutines.
// The output keeps the order of col. The first error stops the pool and is
// returned.
func ParallelMap[T, O any](col []T, proc func(T) (O, error), opts ...ParallelOptions) ([]O, error) {
	o := ParallelOptions{
		Routines: Max(Min(runtime.GOMAXPROCS(-1), runtime.NumCPU()/2)-1, 1),
	}
	for _, oi := range opts {
		if oi.Routines > 0 {
			o.Routines = oi.Routines
		}
	}

	result := make([]O, len(col))
	if len(col) == 0 {
		return result, nil
	}

	input := make(chan int, len(col))
	for i := range col {
		input <- i
	}
	close(input)

	var wg sync.WaitGroup
	var aborted atomic.Bool
	var firstErr error
	var errOnce sync.Once

	for i := 0; i < Min(o.Routines, len(col)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range input {
				if aborted.Load() {
					return
				}

				output, err := proc(col[idx])
				if err != nil {
					errOnce.Do(func() { firstErr = err })
					aborted.Store(true)
					return
				}

				result[idx] = output
			}
		}()
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	return result, nil
}
