package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/dfs"
)

// ExampleDFS explores a small file-system-like tree branch by branch.
func ExampleDFS() {
	g := core.NewGraph[string](core.WithDirected(true))
	g.AddEdges("/", "bin", "etc", "home")
	g.AddEdges("home", "ada", "lin")
	g.AddEdge("ada", "notes.txt")

	res, err := dfs.DFS(g, "/")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [/ bin etc home ada notes.txt lin]
}
