package rel_test

import (
	"testing"

	"github.com/velatiq/unispace/rel"
	"github.com/velatiq/unispace/sets"
)

// benchUniverse builds an n-point carrier with a band relation of the
// given width, a dense-enough workload for composition.
func benchUniverse(n, width int) (*sets.Universe[int], rel.Rel[int]) {
	elems := make([]int, n)
	for i := range elems {
		elems[i] = i
	}
	u := sets.NewUniverse(elems...)
	band := rel.FromPred(u, func(x, y int) bool {
		d := x - y
		if d < 0 {
			d = -d
		}

		return d <= width
	})

	return u, band
}

func BenchmarkCompose(b *testing.B) {
	_, band := benchUniverse(64, 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = rel.Compose(band, band)
	}
}

func BenchmarkSymmetrize(b *testing.B) {
	_, band := benchUniverse(64, 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = rel.Symmetrize(band)
	}
}
