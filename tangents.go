package taylor

import (
	"fmt"
	"runtime"
	"sync"
)

// Tangents evaluates many Taylor curves of c at once. For every expansion point
// a in as, it computes the Taylor curve of the given degree about a and samples
// it at a+offset for every element of offsets. Row i of the result belongs to
// as[i].
//
// Expansion points are independent of each other and are processed
// concurrently. The result doesn't depend on the order in which they're
// processed.
func (c Curve) Tangents(as []float64, degree int, offsets []float64) ([][]Point, error) {
	if degree < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeDegree, degree)
	}
	out := make([][]Point, len(as))
	if len(as) == 0 {
		return out, nil
	}

	workers := min(runtime.GOMAXPROCS(0), len(as))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for range workers {
		wg.Go(func() {
			for i := range jobs {
				out[i] = c.tangent(as[i], degree, offsets)
			}
		})
	}
	for i := range as {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return out, nil
}

func (c Curve) tangent(a float64, degree int, offsets []float64) []Point {
	// degree has already been validated.
	tc, _ := c.Taylor(a, degree)
	row := make([]Point, len(offsets))
	for j, off := range offsets {
		row[j] = tc.Eval(a + off)
	}
	return row
}
