package device

import "sort"

// GenericDevice is a flattened, device-agnostic capability snapshot: the same
// timing tables, connectivity and decoherence data as a hardware variant, with
// no variant identity attached. A compiler backend can consume it without
// knowing device-specific types. It shares no state with its source device.
type GenericDevice struct {
	numberQubits int

	singleQubitGateNames []string
	twoQubitGateNames    []string
	multiQubitGateNames  []string

	singleQubitGates map[string]map[int]float64
	twoQubitGates    map[string]map[edgeKey]float64
	multiQubitGates  map[string]map[string]float64

	edges   []edgeKey
	edgeSet map[edgeKey]struct{}

	decoherenceRates [][]float64
}

// NewGenericDevice creates an empty generic device with the given qubit count:
// no gate vocabulary, no timing entries, no edges, zero decoherence.
func NewGenericDevice(numberQubits int) *GenericDevice {
	rates := make([][]float64, numberQubits)
	for i := range rates {
		rates[i] = make([]float64, numberQubits)
	}
	return &GenericDevice{
		numberQubits:     numberQubits,
		singleQubitGates: make(map[string]map[int]float64),
		twoQubitGates:    make(map[string]map[edgeKey]float64),
		multiQubitGates:  make(map[string]map[string]float64),
		edgeSet:          make(map[edgeKey]struct{}),
		decoherenceRates: rates,
	}
}

func (g *GenericDevice) NumberQubits() int { return g.numberQubits }

func (g *GenericDevice) SingleQubitGateNames() []string {
	return append([]string(nil), g.singleQubitGateNames...)
}

func (g *GenericDevice) TwoQubitGateNames() []string {
	return append([]string(nil), g.twoQubitGateNames...)
}

func (g *GenericDevice) MultiQubitGateNames() []string {
	return append([]string(nil), g.multiQubitGateNames...)
}

func (g *GenericDevice) SingleQubitGateTime(gate string, qubit int) (float64, bool) {
	if qubit < 0 || qubit >= g.numberQubits {
		return 0, false
	}
	times, ok := g.singleQubitGates[gate]
	if !ok {
		return 0, false
	}
	t, ok := times[qubit]
	return t, ok
}

func (g *GenericDevice) TwoQubitGateTime(gate string, control, target int) (float64, bool) {
	if control < 0 || control >= g.numberQubits || target < 0 || target >= g.numberQubits {
		return 0, false
	}
	key := newEdgeKey(control, target)
	if _, ok := g.edgeSet[key]; !ok {
		return 0, false
	}
	times, ok := g.twoQubitGates[gate]
	if !ok {
		return 0, false
	}
	t, ok := times[key]
	return t, ok
}

func (g *GenericDevice) MultiQubitGateTime(gate string, qubits []int) (float64, bool) {
	for _, q := range qubits {
		if q < 0 || q >= g.numberQubits {
			return 0, false
		}
	}
	times, ok := g.multiQubitGates[gate]
	if !ok {
		return 0, false
	}
	t, ok := times[qubitsKey(qubits)]
	return t, ok
}

func (g *GenericDevice) TwoQubitEdges() [][2]int {
	edges := make([][2]int, len(g.edges))
	for i, e := range g.edges {
		edges[i] = [2]int{e.a, e.b}
	}
	return edges
}

// QubitDecoherenceRates returns a copy of the combined rate matrix.
func (g *GenericDevice) QubitDecoherenceRates() [][]float64 {
	rates := make([][]float64, len(g.decoherenceRates))
	for i, row := range g.decoherenceRates {
		rates[i] = append([]float64(nil), row...)
	}
	return rates
}

func (g *GenericDevice) addEdge(a, b int) {
	key := newEdgeKey(a, b)
	if _, ok := g.edgeSet[key]; ok {
		return
	}
	g.edgeSet[key] = struct{}{}
	g.edges = append(g.edges, key)
}

func (g *GenericDevice) sortEdges() {
	sort.Slice(g.edges, func(i, j int) bool {
		if g.edges[i].a != g.edges[j].a {
			return g.edges[i].a < g.edges[j].a
		}
		return g.edges[i].b < g.edges[j].b
	})
}

// setSingleQubitGateTime stores a flattened timing entry, rejecting indices
// that fall outside the generic device.
func (g *GenericDevice) setSingleQubitGateTime(gate string, qubit int, duration float64) error {
	if qubit < 0 || qubit >= g.numberQubits {
		return &DeviceError{Op: "ToGenericDevice", Gate: gate, Qubits: []int{qubit}, Cause: ErrCorruptModel,
			Detail: "single-qubit timing entry references out-of-range qubit"}
	}
	times, ok := g.singleQubitGates[gate]
	if !ok {
		times = make(map[int]float64)
		g.singleQubitGates[gate] = times
	}
	times[qubit] = duration
	return nil
}

func (g *GenericDevice) setTwoQubitGateTime(gate string, a, b int, duration float64) error {
	if a < 0 || a >= g.numberQubits || b < 0 || b >= g.numberQubits || a == b {
		return &DeviceError{Op: "ToGenericDevice", Gate: gate, Qubits: []int{a, b}, Cause: ErrCorruptModel,
			Detail: "two-qubit timing entry references an invalid qubit pair"}
	}
	g.addEdge(a, b)
	times, ok := g.twoQubitGates[gate]
	if !ok {
		times = make(map[edgeKey]float64)
		g.twoQubitGates[gate] = times
	}
	times[newEdgeKey(a, b)] = duration
	return nil
}

// ToGenericDevice flattens the device into an independent GenericDevice
// snapshot. It fails only when an internal table violates the model
// invariants, which indicates a defect upstream rather than bad caller input.
func (m *deviceModel) ToGenericDevice() (*GenericDevice, error) {
	g := NewGenericDevice(m.numberQubits)
	g.singleQubitGateNames = append([]string(nil), m.singleQubitGateNames...)
	g.twoQubitGateNames = append([]string(nil), m.twoQubitGateNames...)
	g.multiQubitGateNames = append([]string(nil), m.multiQubitGateNames...)

	for gate, times := range m.singleQubitGates {
		for qubit, t := range times {
			if err := g.setSingleQubitGateTime(gate, qubit, t); err != nil {
				return nil, err
			}
		}
	}
	for gate, times := range m.twoQubitGates {
		for key, t := range times {
			if err := g.setTwoQubitGateTime(gate, key.a, key.b, t); err != nil {
				return nil, err
			}
		}
	}
	for gate, times := range m.multiQubitGates {
		for key, t := range times {
			qubits, err := parseQubitsKey(key)
			if err != nil {
				return nil, &DeviceError{Op: "ToGenericDevice", Gate: gate, Cause: ErrCorruptModel, Detail: err.Error()}
			}
			for _, q := range qubits {
				if q < 0 || q >= g.numberQubits {
					return nil, &DeviceError{Op: "ToGenericDevice", Gate: gate, Qubits: qubits, Cause: ErrCorruptModel,
						Detail: "multi-qubit timing entry references out-of-range qubit"}
				}
			}
			inner, ok := g.multiQubitGates[gate]
			if !ok {
				inner = make(map[string]float64)
				g.multiQubitGates[gate] = inner
			}
			inner[key] = t
		}
	}

	// Topology edges carry over even when no two-qubit timing entry exists.
	for _, e := range m.edges {
		if e.a < 0 || e.b >= m.numberQubits || e.a == e.b {
			return nil, &DeviceError{Op: "ToGenericDevice", Qubits: []int{e.a, e.b}, Cause: ErrCorruptModel,
				Detail: "connectivity edge references an invalid qubit pair"}
		}
		g.addEdge(e.a, e.b)
	}
	g.sortEdges()

	rates := m.QubitDecoherenceRates()
	g.decoherenceRates = rates

	return g, nil
}
