package metrics

import (
	"sort"

	"github.com/archfold/hpremc/conformation"
)

// ContactComponents returns the connected components of c's topological
// contact pairs, each as a slice of residue ids in ascending order, via a
// breadth-first walk of the adjacency Contacts implies. Components are
// returned in ascending order of their lowest-numbered residue; a residue
// with no contacts at all forms its own singleton component.
func ContactComponents(c *conformation.Conformation) [][]int {
	n := c.Protein().Len()
	adj := make(map[int][]int, n)
	for _, pair := range c.Contacts() {
		i, j := pair[0], pair[1]
		adj[i] = append(adj[i], j)
		adj[j] = append(adj[j], i)
	}

	visited := make([]bool, n)
	var components [][]int
	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		visited[start] = true
		queue := []int{start}
		comp := []int{start}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, next := range adj[cur] {
				if visited[next] {
					continue
				}
				visited[next] = true
				comp = append(comp, next)
				queue = append(queue, next)
			}
		}
		sort.Ints(comp)
		components = append(components, comp)
	}
	return components
}
