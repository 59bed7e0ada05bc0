// SPDX-License-Identifier: MIT

package labelprop_test

import (
	"testing"

	"github.com/katalvlaran/lvprop/labelprop"
)

func benchmarkPropagate(b *testing.B, parallel bool) {
	x, y, p := randomProblem(b, 42)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res, err := labelprop.Propagate(x, y, p,
			labelprop.WithEpsilon(propEpsilon),
			labelprop.WithParallel(parallel),
		)
		if err != nil {
			b.Fatal(err)
		}
		if !res.Converged() {
			b.Fatalf("propagate: %v after %d iterations", res.Status, res.Iterations)
		}
	}
}

func BenchmarkPropagate_Sequential(b *testing.B) { benchmarkPropagate(b, false) }

func BenchmarkPropagate_Parallel(b *testing.B) { benchmarkPropagate(b, true) }
