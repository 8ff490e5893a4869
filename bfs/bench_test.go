package bfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/algokit/bfs"
	"github.com/katalvlaran/algokit/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain graph of size N.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	// build a chain of N+1 vertices, N edges
	g := core.NewGraph[string]()
	for i := 0; i < N; i++ {
		g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "v0")
	}
}

// BenchmarkBFS_BinaryTree runs BFS on a complete binary tree of depth D (~2^D−1 nodes).
func BenchmarkBFS_BinaryTree(b *testing.B) {
	const depth = 10 // 2^10 − 1 = 1023 vertices, 1022 edges
	nodeCount := (1 << depth) - 1

	g := core.NewGraph[int]()
	for i := 1; i*2+1 < nodeCount; i++ {
		g.AddEdge(i, i*2)
		g.AddEdge(i, i*2+1)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 1)
	}
}

// BenchmarkShortestPath_Chain measures end-to-end path recovery on a chain.
func BenchmarkShortestPath_Chain(b *testing.B) {
	const N = 10000
	g := core.NewGraph[string]()
	for i := 0; i < N; i++ {
		g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1))
	}
	last := fmt.Sprintf("v%d", N)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.ShortestPath(g, "v0", last)
	}
}
