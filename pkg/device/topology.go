package device

// allToAllEdges connects every distinct qubit pair, as in trapped-ion
// architectures where any two ions can interact.
func allToAllEdges(numberQubits int) [][2]int {
	var edges [][2]int
	for a := 0; a < numberQubits; a++ {
		for b := a + 1; b < numberQubits; b++ {
			edges = append(edges, [2]int{a, b})
		}
	}
	return edges
}

// ringEdges connects qubit i to i+1 with the last qubit wrapping to the first.
func ringEdges(numberQubits int) [][2]int {
	edges := make([][2]int, 0, numberQubits)
	for i := 0; i < numberQubits; i++ {
		edges = append(edges, [2]int{i, (i + 1) % numberQubits})
	}
	return edges
}

// octagonalLatticeEdges builds a rows x cols grid of 8-qubit octagon rings.
// Octagon (r, c) occupies qubits [8*(r*cols+c), 8*(r*cols+c)+8). Horizontally
// adjacent octagons couple through two edges (positions 1-6 and 2-5),
// vertically adjacent octagons through two edges (positions 3-0 and 4-7),
// giving the superconducting lattice shape Rigetti's Aspen family uses.
func octagonalLatticeEdges(rows, cols int) [][2]int {
	base := func(r, c int) int { return 8 * (r*cols + c) }

	var edges [][2]int
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			b := base(r, c)
			for i := 0; i < 8; i++ {
				edges = append(edges, [2]int{b + i, b + (i+1)%8})
			}
			if c+1 < cols {
				right := base(r, c+1)
				edges = append(edges, [2]int{b + 1, right + 6})
				edges = append(edges, [2]int{b + 2, right + 5})
			}
			if r+1 < rows {
				below := base(r+1, c)
				edges = append(edges, [2]int{b + 3, below + 0})
				edges = append(edges, [2]int{b + 4, below + 7})
			}
		}
	}
	return edges
}
