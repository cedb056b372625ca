// Package algorithms provides connectivity analysis over device qubit graphs:
// longest simple chains and longest simple closed chains.
//
// Longest-path search is NP-hard in general. The implementation is a
// branch-and-bound depth-first enumeration, which is the right trade-off here:
// device connectivity graphs have tens of vertices and are usually sparse
// (lines, rings, octagon lattices). Correctness and determinism win over
// asymptotic efficiency at this scale.
package algorithms

import "sort"

// ConnectivityGraph is the read surface chain analysis needs from a device.
type ConnectivityGraph interface {
	NumberQubits() int
	TwoQubitEdges() [][2]int
}

// maxTiedResults caps how many equal-length chains are collected once the
// global upper bound (a chain through every qubit) has been reached. Densely
// connected devices have factorially many Hamiltonian chains; enumerating
// them all is neither feasible nor useful. At least one longest chain is
// always returned and the result stays deterministic.
const maxTiedResults = 1024

// LongestChains returns the maximum-length simple paths through the
// connectivity graph, each reported in its lexicographically smaller
// orientation, sorted lexicographically.
//
// An edgeless graph yields one single-qubit chain per vertex. An empty graph
// yields an empty result.
func LongestChains(g ConnectivityGraph) [][]int {
	n := g.NumberQubits()
	if n == 0 {
		return [][]int{}
	}

	s := &chainSearch{
		n:       n,
		adj:     buildAdjacency(n, g.TwoQubitEdges()),
		visited: make([]bool, n),
	}
	for start := 0; start < n && !s.exhausted; start++ {
		s.extendChain(start)
	}

	sortChains(s.results)
	return s.results
}

// LongestClosedChains returns the maximum-length simple cycles through the
// connectivity graph. Each cycle is reported once, rotated to start at its
// smallest vertex with the smaller of its two orientations, sorted
// lexicographically. An acyclic graph yields an empty result.
func LongestClosedChains(g ConnectivityGraph) [][]int {
	n := g.NumberQubits()
	if n == 0 {
		return [][]int{}
	}

	s := &chainSearch{
		n:       n,
		adj:     buildAdjacency(n, g.TwoQubitEdges()),
		visited: make([]bool, n),
	}
	s.results = [][]int{}
	for start := 0; start < n && !s.exhausted; start++ {
		s.start = start
		s.extendCycle(start)
	}

	sortChains(s.results)
	return s.results
}

type chainSearch struct {
	n       int
	adj     [][]int
	visited []bool
	path    []int
	start   int // cycle search only: minimum vertex of the cycle
	best    int
	results [][]int
	// exhausted is set once the search has proven nothing longer can exist
	// (best spans every qubit) and the tie cap is full.
	exhausted bool
}

func (s *chainSearch) extendChain(v int) {
	if s.exhausted {
		return
	}
	s.visited[v] = true
	s.path = append(s.path, v)

	s.recordChain()

	// Bound: even absorbing every unvisited vertex reachable from here, the
	// branch cannot beat the current best.
	if !s.exhausted && len(s.path)+s.reachableUnvisited(v) >= s.best {
		for _, next := range s.adj[v] {
			if !s.visited[next] {
				s.extendChain(next)
				if s.exhausted {
					break
				}
			}
		}
	}

	s.path = s.path[:len(s.path)-1]
	s.visited[v] = false
}

func (s *chainSearch) recordChain() {
	length := len(s.path)
	if length < s.best {
		return
	}
	if length > s.best {
		s.best = length
		s.results = s.results[:0]
	}
	// Every chain is enumerated in both orientations; keep the smaller one.
	if !chainIsCanonical(s.path) {
		return
	}
	if len(s.results) < maxTiedResults {
		s.results = append(s.results, append([]int(nil), s.path...))
	}
	if s.best == s.n && len(s.results) >= maxTiedResults {
		s.exhausted = true
	}
}

func (s *chainSearch) extendCycle(v int) {
	if s.exhausted {
		return
	}
	s.visited[v] = true
	s.path = append(s.path, v)

	for _, next := range s.adj[v] {
		if next == s.start && len(s.path) >= 3 {
			s.recordCycle()
			if s.exhausted {
				break
			}
			continue
		}
		// Restricting the walk to vertices above the start counts each cycle
		// exactly once, at its minimum vertex.
		if next <= s.start || s.visited[next] {
			continue
		}
		if len(s.path)+s.reachableUnvisited(v) < s.best {
			continue
		}
		s.extendCycle(next)
		if s.exhausted {
			break
		}
	}

	s.path = s.path[:len(s.path)-1]
	s.visited[v] = false
}

func (s *chainSearch) recordCycle() {
	length := len(s.path)
	if length < s.best {
		return
	}
	// Both orientations of a cycle reach this point; keep the one whose
	// second vertex is smaller.
	if s.path[1] > s.path[length-1] {
		return
	}
	if length > s.best {
		s.best = length
		s.results = s.results[:0]
	}
	if len(s.results) < maxTiedResults {
		s.results = append(s.results, append([]int(nil), s.path...))
	}
	if s.best == s.n && len(s.results) >= maxTiedResults {
		s.exhausted = true
	}
}

// reachableUnvisited counts the unvisited vertices reachable from v through
// unvisited vertices. Upper-bounds how much the current path can still grow.
func (s *chainSearch) reachableUnvisited(v int) int {
	seen := make([]bool, s.n)
	queue := make([]int, 0, s.n)
	count := 0
	for _, next := range s.adj[v] {
		if !s.visited[next] && !seen[next] {
			seen[next] = true
			queue = append(queue, next)
			count++
		}
	}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, next := range s.adj[current] {
			if !s.visited[next] && !seen[next] {
				seen[next] = true
				queue = append(queue, next)
				count++
			}
		}
	}
	return count
}

// buildAdjacency converts an edge list into sorted neighbor lists, dropping
// self loops and duplicate edges. Sorted neighbors keep the DFS order, and
// therefore the result order, deterministic.
func buildAdjacency(n int, edges [][2]int) [][]int {
	seen := make(map[[2]int]struct{}, len(edges))
	adj := make([][]int, n)
	for _, e := range edges {
		a, b := e[0], e[1]
		if a == b || a < 0 || b < 0 || a >= n || b >= n {
			continue
		}
		if a > b {
			a, b = b, a
		}
		if _, ok := seen[[2]int{a, b}]; ok {
			continue
		}
		seen[[2]int{a, b}] = struct{}{}
		adj[a] = append(adj[a], b)
		adj[b] = append(adj[b], a)
	}
	for _, neighbors := range adj {
		sort.Ints(neighbors)
	}
	return adj
}

func chainIsCanonical(path []int) bool {
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		if path[i] != path[j] {
			return path[i] < path[j]
		}
	}
	return true
}

func sortChains(chains [][]int) {
	sort.Slice(chains, func(i, j int) bool {
		a, b := chains[i], chains[j]
		for k := 0; k < len(a) && k < len(b); k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return len(a) < len(b)
	})
}
