package fluid

import (
	"runtime"
	"sync"
)

// parallelRange executes fn for each i in [start,end). The range is split
// among available CPUs. Callers must guarantee that distinct i touch disjoint
// outputs and that all reads see the field as it was at pass entry; every
// solver sweep satisfies this by writing into a separate buffer that is
// swapped in after the pass.
func parallelRange(start, end int, fn func(i int)) {
	total := end - start
	if total <= 0 {
		return
	}
	workers := runtime.GOMAXPROCS(0)
	if workers > total {
		workers = total
	}
	var wg sync.WaitGroup
	chunk := (total + workers - 1) / workers
	for w := 0; w < workers; w++ {
		s := start + w*chunk
		e := s + chunk
		if e > end {
			e = end
		}
		if s >= end {
			break
		}
		wg.Add(1)
		go func(ss, ee int) {
			for i := ss; i < ee; i++ {
				fn(i)
			}
			wg.Done()
		}(s, e)
	}
	wg.Wait()
}
