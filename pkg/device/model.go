// Package device exposes capability descriptors for cloud-accessible quantum
// processors: qubit topology, native gate vocabularies, per-operation gate
// timings and decoherence rates. A compiler backend queries these before
// mapping a circuit onto hardware.
//
// The model is not safe for concurrent mutation. Callers that share a device
// across goroutines must serialize writes (and writes against reads) externally.
package device

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dd0wney/cluso-qdevice/pkg/algorithms"
)

// Device is the capability set shared by every hardware variant.
//
// Timing accessors return (0, false) when the queried operation is not
// supported on the given qubit(s). Absence is a normal outcome, not an error:
// it means "this device cannot execute that operation there".
type Device interface {
	Name() string
	Region() string
	NumberQubits() int

	SingleQubitGateNames() []string
	TwoQubitGateNames() []string
	MultiQubitGateNames() []string

	SingleQubitGateTime(gate string, qubit int) (float64, bool)
	TwoQubitGateTime(gate string, control, target int) (float64, bool)
	ThreeQubitGateTime(gate string, control0, control1, target int) (float64, bool)
	MultiQubitGateTime(gate string, qubits []int) (float64, bool)

	TwoQubitEdges() [][2]int
	QubitDecoherenceRates() [][]float64
	LongestChains() [][]int
	LongestClosedChains() [][]int

	AddDamping(qubit int, rate float64) error
	AddDephasing(qubit int, rate float64) error
	SetSingleQubitGateTime(gate string, qubit int, duration float64) error
	SetTwoQubitGateTime(gate string, control, target int, duration float64) error

	ToGenericDevice() (*GenericDevice, error)
}

// edgeKey is an unordered qubit pair stored with a < b.
type edgeKey struct {
	a, b int
}

func newEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a: a, b: b}
}

// qubitsKey canonicalizes a qubit tuple for the multi-qubit timing table.
// Tuple order is significant for multi-qubit operations.
func qubitsKey(qubits []int) string {
	parts := make([]string, len(qubits))
	for i, q := range qubits {
		parts[i] = strconv.Itoa(q)
	}
	return strings.Join(parts, ":")
}

func parseQubitsKey(key string) ([]int, error) {
	if key == "" {
		return nil, fmt.Errorf("empty qubit tuple")
	}
	parts := strings.Split(key, ":")
	qubits := make([]int, len(parts))
	for i, p := range parts {
		q, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("bad qubit index %q", p)
		}
		qubits[i] = q
	}
	return qubits, nil
}

// deviceModel holds the state shared by all hardware variants. Topology and
// gate vocabularies are fixed at construction; only timing tables and noise
// rates change afterward.
type deviceModel struct {
	name         string
	region       string
	numberQubits int

	singleQubitGateNames []string
	twoQubitGateNames    []string
	multiQubitGateNames  []string

	singleQubitGates map[string]map[int]float64
	twoQubitGates    map[string]map[edgeKey]float64
	multiQubitGates  map[string]map[string]float64

	edges   []edgeKey
	edgeSet map[edgeKey]struct{}

	// Damping and dephasing accumulate separately; the reported decoherence
	// matrix combines them on the diagonal at read time.
	damping   []float64
	dephasing []float64
}

// newDeviceModel builds a model with the given fixed topology and seeds every
// in-vocabulary (gate, qubit) and (gate, edge) timing entry with 1.0, matching
// the calibration-free defaults hardware vendors publish.
func newDeviceModel(name, region string, numberQubits int, single, two, multi []string, edges [][2]int) *deviceModel {
	m := &deviceModel{
		name:                 name,
		region:               region,
		numberQubits:         numberQubits,
		singleQubitGateNames: append([]string(nil), single...),
		twoQubitGateNames:    append([]string(nil), two...),
		multiQubitGateNames:  append([]string(nil), multi...),
		singleQubitGates:     make(map[string]map[int]float64),
		twoQubitGates:        make(map[string]map[edgeKey]float64),
		multiQubitGates:      make(map[string]map[string]float64),
		edgeSet:              make(map[edgeKey]struct{}),
		damping:              make([]float64, numberQubits),
		dephasing:            make([]float64, numberQubits),
	}

	for _, e := range edges {
		key := newEdgeKey(e[0], e[1])
		if _, ok := m.edgeSet[key]; ok {
			continue
		}
		m.edgeSet[key] = struct{}{}
		m.edges = append(m.edges, key)
	}
	sort.Slice(m.edges, func(i, j int) bool {
		if m.edges[i].a != m.edges[j].a {
			return m.edges[i].a < m.edges[j].a
		}
		return m.edges[i].b < m.edges[j].b
	})

	for _, gate := range m.singleQubitGateNames {
		times := make(map[int]float64, numberQubits)
		for q := 0; q < numberQubits; q++ {
			times[q] = 1.0
		}
		m.singleQubitGates[gate] = times
	}
	for _, gate := range m.twoQubitGateNames {
		times := make(map[edgeKey]float64, len(m.edges))
		for _, e := range m.edges {
			times[e] = 1.0
		}
		m.twoQubitGates[gate] = times
	}

	return m
}

func (m *deviceModel) Name() string   { return m.name }
func (m *deviceModel) Region() string { return m.region }

func (m *deviceModel) NumberQubits() int { return m.numberQubits }

func (m *deviceModel) SingleQubitGateNames() []string {
	return append([]string(nil), m.singleQubitGateNames...)
}

func (m *deviceModel) TwoQubitGateNames() []string {
	return append([]string(nil), m.twoQubitGateNames...)
}

func (m *deviceModel) MultiQubitGateNames() []string {
	return append([]string(nil), m.multiQubitGateNames...)
}

// SingleQubitGateTime returns the stored duration for (gate, qubit), or false
// when the gate is outside the vocabulary, the qubit is out of range, or no
// timing entry exists.
func (m *deviceModel) SingleQubitGateTime(gate string, qubit int) (float64, bool) {
	if qubit < 0 || qubit >= m.numberQubits {
		return 0, false
	}
	times, ok := m.singleQubitGates[gate]
	if !ok {
		return 0, false
	}
	t, ok := times[qubit]
	return t, ok
}

// TwoQubitGateTime returns the stored duration for the gate on the unordered
// pair {control, target}. The pair must be a connectivity edge; otherwise the
// result is absent regardless of any stored entry.
func (m *deviceModel) TwoQubitGateTime(gate string, control, target int) (float64, bool) {
	if control < 0 || control >= m.numberQubits || target < 0 || target >= m.numberQubits {
		return 0, false
	}
	key := newEdgeKey(control, target)
	if _, ok := m.edgeSet[key]; !ok {
		return 0, false
	}
	times, ok := m.twoQubitGates[gate]
	if !ok {
		return 0, false
	}
	t, ok := times[key]
	return t, ok
}

func (m *deviceModel) ThreeQubitGateTime(gate string, control0, control1, target int) (float64, bool) {
	return m.MultiQubitGateTime(gate, []int{control0, control1, target})
}

func (m *deviceModel) MultiQubitGateTime(gate string, qubits []int) (float64, bool) {
	for _, q := range qubits {
		if q < 0 || q >= m.numberQubits {
			return 0, false
		}
	}
	times, ok := m.multiQubitGates[gate]
	if !ok {
		return 0, false
	}
	t, ok := times[qubitsKey(qubits)]
	return t, ok
}

// TwoQubitEdges returns the connectivity graph as a list of unordered qubit
// pairs (each reported with the smaller index first), sorted ascending.
func (m *deviceModel) TwoQubitEdges() [][2]int {
	edges := make([][2]int, len(m.edges))
	for i, e := range m.edges {
		edges[i] = [2]int{e.a, e.b}
	}
	return edges
}

// QubitDecoherenceRates returns a fresh square rate matrix of size
// NumberQubits. Diagonal entry q combines the accumulated damping and
// dephasing contributions for qubit q; off-diagonal entries are zero.
func (m *deviceModel) QubitDecoherenceRates() [][]float64 {
	rates := make([][]float64, m.numberQubits)
	for q := 0; q < m.numberQubits; q++ {
		row := make([]float64, m.numberQubits)
		row[q] = m.damping[q] + m.dephasing[q]
		rates[q] = row
	}
	return rates
}

// LongestChains returns the longest sequences of distinct qubits connected by
// consecutive edges. See algorithms.LongestChains for complexity and
// truncation behavior.
func (m *deviceModel) LongestChains() [][]int {
	return algorithms.LongestChains(m)
}

// LongestClosedChains returns the longest simple cycles through the
// connectivity graph, or an empty result when the graph is acyclic.
func (m *deviceModel) LongestClosedChains() [][]int {
	return algorithms.LongestClosedChains(m)
}

func (m *deviceModel) hasEdge(a, b int) bool {
	_, ok := m.edgeSet[newEdgeKey(a, b)]
	return ok
}

func (m *deviceModel) inSingleVocabulary(gate string) bool {
	for _, g := range m.singleQubitGateNames {
		if g == gate {
			return true
		}
	}
	return false
}

func (m *deviceModel) inTwoVocabulary(gate string) bool {
	for _, g := range m.twoQubitGateNames {
		if g == gate {
			return true
		}
	}
	return false
}
