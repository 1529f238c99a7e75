// SPDX-License-Identifier: MIT
// Package gem_test provides benchmarks for elimination on dense random
// systems with a deterministic fill.
package gem_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lineq/gem"
	"github.com/katalvlaran/lineq/matrix"
)

var benchSizes = []int{16, 64, 128}

var sinkM *matrix.Matrix

func BenchmarkEliminate(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(1337))
			rows := make([][]float64, n)
			for i := range rows {
				rows[i] = make([]float64, n+1)
				for j := range rows[i] {
					rows[i][j] = rng.Float64()*2 - 1
				}
			}
			src := MustRows(b, rows)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := gem.Eliminate(src.Clone())
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}
