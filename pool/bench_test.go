package pool_test

import (
	"testing"

	"github.com/katalvlaran/mxjet/pool"
)

// BenchmarkAcquireRelease measures the steady-state recycle path.
func BenchmarkAcquireRelease(b *testing.B) {
	p := pool.New[float64]()
	hs := make([]pool.Handle, 512)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for k := range hs {
			hs[k] = p.Acquire()
		}
		for _, h := range hs {
			if err := p.Release(h); err != nil {
				b.Fatalf("Release: %v", err)
			}
		}
	}
}
