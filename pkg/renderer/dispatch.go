package renderer

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Strategy selects how the pixel grid is distributed over workers. All
// strategies invoke the per-pixel pipeline exactly once per index and
// produce bit-identical buffers for a deterministic scene.
type Strategy int

const (
	// Sequential processes pixels in ascending index order on one goroutine
	Sequential Strategy = iota
	// FixedPartition splits the index range into one contiguous chunk per CPU
	FixedPartition
	// ParallelFor schedules fixed-size spans of the index range across a
	// worker pool
	ParallelFor
)

func (s Strategy) String() string {
	switch s {
	case Sequential:
		return "sequential"
	case FixedPartition:
		return "fixed_partition"
	case ParallelFor:
		return "parallel_for"
	default:
		return "unknown"
	}
}

// ParseStrategy parses a strategy name as produced by String
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "sequential":
		return Sequential, nil
	case "fixed_partition":
		return FixedPartition, nil
	case "parallel_for":
		return ParallelFor, nil
	default:
		return Sequential, errors.Errorf("unknown dispatch strategy %q", name)
	}
}

// Span size handed to each worker by the parallel-for strategy.
const parallelForSpanSize = 4096

// dispatchPixels invokes fn exactly once for every index in [0, numPixels)
// using the given strategy, and blocks until all pixels are processed. The
// first error returned by fn aborts the frame and is propagated; pixels are
// not retried or isolated individually.
func dispatchPixels(strategy Strategy, numPixels int, fn func(index int) error) error {
	if numPixels <= 0 {
		return nil
	}

	switch strategy {
	case FixedPartition:
		return dispatchFixedPartition(numPixels, fn)
	case ParallelFor:
		return dispatchParallelFor(numPixels, fn)
	default:
		return dispatchSequential(numPixels, fn)
	}
}

func dispatchSequential(numPixels int, fn func(index int) error) error {
	for i := 0; i < numPixels; i++ {
		if err := fn(i); err != nil {
			return err
		}
	}
	return nil
}

// dispatchFixedPartition splits the index range into one contiguous chunk
// per available CPU, spreading any remainder one pixel per leading chunk,
// and waits for every chunk to finish.
func dispatchFixedPartition(numPixels int, fn func(index int) error) error {
	numWorkers := runtime.NumCPU()
	if numWorkers > numPixels {
		numWorkers = numPixels
	}

	chunkSize := numPixels / numWorkers
	remainder := numPixels % numWorkers

	var group errgroup.Group
	start := 0
	for worker := 0; worker < numWorkers; worker++ {
		size := chunkSize
		if worker < remainder {
			size++
		}
		chunkStart, chunkEnd := start, start+size
		group.Go(func() error {
			for i := chunkStart; i < chunkEnd; i++ {
				if err := fn(i); err != nil {
					return err
				}
			}
			return nil
		})
		start = chunkEnd
	}
	return group.Wait()
}

type pixelSpan struct {
	start, end int
}

// dispatchParallelFor queues fixed-size spans of the index range on a
// buffered channel and drains it with one worker per CPU. The buffer holds
// every span up front so workers never block a producer.
func dispatchParallelFor(numPixels int, fn func(index int) error) error {
	numSpans := (numPixels + parallelForSpanSize - 1) / parallelForSpanSize
	spans := make(chan pixelSpan, numSpans)
	for start := 0; start < numPixels; start += parallelForSpanSize {
		end := start + parallelForSpanSize
		if end > numPixels {
			end = numPixels
		}
		spans <- pixelSpan{start: start, end: end}
	}
	close(spans)

	numWorkers := runtime.NumCPU()
	var group errgroup.Group
	for worker := 0; worker < numWorkers; worker++ {
		group.Go(func() error {
			for span := range spans {
				for i := span.start; i < span.end; i++ {
					if err := fn(i); err != nil {
						return err
					}
				}
			}
			return nil
		})
	}
	return group.Wait()
}
