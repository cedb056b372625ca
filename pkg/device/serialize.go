package device

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"

	"gopkg.in/yaml.v3"
)

// snapshotSchemaVersion guards against decoding snapshots written by an
// incompatible release.
const snapshotSchemaVersion = 1

const kindGeneric DeviceKind = "generic"

type singleGateTimeEntry struct {
	Gate  string  `json:"gate" yaml:"gate" validate:"required"`
	Qubit int     `json:"qubit" yaml:"qubit" validate:"min=0"`
	Time  float64 `json:"time" yaml:"time" validate:"gte=0"`
}

type twoGateTimeEntry struct {
	Gate   string  `json:"gate" yaml:"gate" validate:"required"`
	QubitA int     `json:"qubit_a" yaml:"qubit_a" validate:"min=0"`
	QubitB int     `json:"qubit_b" yaml:"qubit_b" validate:"min=0"`
	Time   float64 `json:"time" yaml:"time" validate:"gte=0"`
}

type multiGateTimeEntry struct {
	Gate   string  `json:"gate" yaml:"gate" validate:"required"`
	Qubits []int   `json:"qubits" yaml:"qubits" validate:"min=1,dive,min=0"`
	Time   float64 `json:"time" yaml:"time" validate:"gte=0"`
}

// deviceSnapshot is the self-describing wire form shared by all variants,
// AWSDevice and GenericDevice. Every §3 attribute of the model survives a
// round trip, including the separate damping and dephasing accumulators.
type deviceSnapshot struct {
	SchemaVersion int    `json:"schema_version" yaml:"schema_version" validate:"required"`
	Kind          string `json:"kind" yaml:"kind" validate:"required"`
	Name          string `json:"name,omitempty" yaml:"name,omitempty"`
	Region        string `json:"region,omitempty" yaml:"region,omitempty"`
	NumberQubits  int    `json:"number_qubits" yaml:"number_qubits" validate:"min=0"`

	SingleQubitGateNames []string `json:"single_qubit_gate_names,omitempty" yaml:"single_qubit_gate_names,omitempty"`
	TwoQubitGateNames    []string `json:"two_qubit_gate_names,omitempty" yaml:"two_qubit_gate_names,omitempty"`
	MultiQubitGateNames  []string `json:"multi_qubit_gate_names,omitempty" yaml:"multi_qubit_gate_names,omitempty"`

	SingleQubitGateTimes []singleGateTimeEntry `json:"single_qubit_gate_times,omitempty" yaml:"single_qubit_gate_times,omitempty" validate:"dive"`
	TwoQubitGateTimes    []twoGateTimeEntry    `json:"two_qubit_gate_times,omitempty" yaml:"two_qubit_gate_times,omitempty" validate:"dive"`
	MultiQubitGateTimes  []multiGateTimeEntry  `json:"multi_qubit_gate_times,omitempty" yaml:"multi_qubit_gate_times,omitempty" validate:"dive"`

	Edges [][2]int `json:"edges,omitempty" yaml:"edges,omitempty"`

	// Variant devices persist the two noise accumulators; GenericDevice
	// persists the combined matrix it was flattened with.
	Damping          []float64   `json:"damping,omitempty" yaml:"damping,omitempty" validate:"dive,gte=0"`
	Dephasing        []float64   `json:"dephasing,omitempty" yaml:"dephasing,omitempty" validate:"dive,gte=0"`
	DecoherenceRates [][]float64 `json:"decoherence_rates,omitempty" yaml:"decoherence_rates,omitempty"`
}

func (m *deviceModel) snapshot(kind DeviceKind) *deviceSnapshot {
	s := &deviceSnapshot{
		SchemaVersion:        snapshotSchemaVersion,
		Kind:                 string(kind),
		Name:                 m.name,
		Region:               m.region,
		NumberQubits:         m.numberQubits,
		SingleQubitGateNames: append([]string(nil), m.singleQubitGateNames...),
		TwoQubitGateNames:    append([]string(nil), m.twoQubitGateNames...),
		MultiQubitGateNames:  append([]string(nil), m.multiQubitGateNames...),
		Edges:                m.TwoQubitEdges(),
		Damping:              append([]float64(nil), m.damping...),
		Dephasing:            append([]float64(nil), m.dephasing...),
	}

	for gate, times := range m.singleQubitGates {
		for qubit, t := range times {
			s.SingleQubitGateTimes = append(s.SingleQubitGateTimes, singleGateTimeEntry{Gate: gate, Qubit: qubit, Time: t})
		}
	}
	for gate, times := range m.twoQubitGates {
		for key, t := range times {
			s.TwoQubitGateTimes = append(s.TwoQubitGateTimes, twoGateTimeEntry{Gate: gate, QubitA: key.a, QubitB: key.b, Time: t})
		}
	}
	for gate, times := range m.multiQubitGates {
		for key, t := range times {
			qubits, _ := parseQubitsKey(key)
			s.MultiQubitGateTimes = append(s.MultiQubitGateTimes, multiGateTimeEntry{Gate: gate, Qubits: qubits, Time: t})
		}
	}
	sortSnapshotEntries(s)
	return s
}

// sortSnapshotEntries keeps the wire form deterministic: map iteration order
// must not leak into serialized output.
func sortSnapshotEntries(s *deviceSnapshot) {
	sort.Slice(s.SingleQubitGateTimes, func(i, j int) bool {
		a, b := s.SingleQubitGateTimes[i], s.SingleQubitGateTimes[j]
		if a.Gate != b.Gate {
			return a.Gate < b.Gate
		}
		return a.Qubit < b.Qubit
	})
	sort.Slice(s.TwoQubitGateTimes, func(i, j int) bool {
		a, b := s.TwoQubitGateTimes[i], s.TwoQubitGateTimes[j]
		if a.Gate != b.Gate {
			return a.Gate < b.Gate
		}
		if a.QubitA != b.QubitA {
			return a.QubitA < b.QubitA
		}
		return a.QubitB < b.QubitB
	})
	sort.Slice(s.MultiQubitGateTimes, func(i, j int) bool {
		a, b := s.MultiQubitGateTimes[i], s.MultiQubitGateTimes[j]
		if a.Gate != b.Gate {
			return a.Gate < b.Gate
		}
		return qubitsKey(a.Qubits) < qubitsKey(b.Qubits)
	})
}

// applySnapshot rebuilds the model state from a validated snapshot.
func (m *deviceModel) applySnapshot(s *deviceSnapshot) {
	m.name = s.Name
	m.region = s.Region
	m.numberQubits = s.NumberQubits
	m.singleQubitGateNames = append([]string(nil), s.SingleQubitGateNames...)
	m.twoQubitGateNames = append([]string(nil), s.TwoQubitGateNames...)
	m.multiQubitGateNames = append([]string(nil), s.MultiQubitGateNames...)

	m.singleQubitGates = make(map[string]map[int]float64)
	for _, e := range s.SingleQubitGateTimes {
		times, ok := m.singleQubitGates[e.Gate]
		if !ok {
			times = make(map[int]float64)
			m.singleQubitGates[e.Gate] = times
		}
		times[e.Qubit] = e.Time
	}

	m.twoQubitGates = make(map[string]map[edgeKey]float64)
	for _, e := range s.TwoQubitGateTimes {
		times, ok := m.twoQubitGates[e.Gate]
		if !ok {
			times = make(map[edgeKey]float64)
			m.twoQubitGates[e.Gate] = times
		}
		times[newEdgeKey(e.QubitA, e.QubitB)] = e.Time
	}

	m.multiQubitGates = make(map[string]map[string]float64)
	for _, e := range s.MultiQubitGateTimes {
		times, ok := m.multiQubitGates[e.Gate]
		if !ok {
			times = make(map[string]float64)
			m.multiQubitGates[e.Gate] = times
		}
		times[qubitsKey(e.Qubits)] = e.Time
	}

	m.edges = nil
	m.edgeSet = make(map[edgeKey]struct{})
	for _, e := range s.Edges {
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

	m.damping = make([]float64, s.NumberQubits)
	copy(m.damping, s.Damping)
	m.dephasing = make([]float64, s.NumberQubits)
	copy(m.dephasing, s.Dephasing)
}

func modelOf(d Device) (*deviceModel, DeviceKind, error) {
	switch v := d.(type) {
	case *AWSDevice:
		return modelOf(v.Device)
	case *IonQHarmonyDevice:
		return &v.deviceModel, KindIonQHarmony, nil
	case *IonQAria1Device:
		return &v.deviceModel, KindIonQAria1, nil
	case *OQCLucyDevice:
		return &v.deviceModel, KindOQCLucy, nil
	case *RigettiAspenM3Device:
		return &v.deviceModel, KindRigettiAspenM3, nil
	default:
		return nil, "", &DeviceError{Op: "modelOf", Cause: ErrUnknownDevice,
			Detail: "type is not a catalog variant"}
	}
}

// EncodeDeviceJSON serializes any catalog device (variant or AWSDevice) into
// its self-describing JSON snapshot.
func EncodeDeviceJSON(d Device) ([]byte, error) {
	m, kind, err := modelOf(d)
	if err != nil {
		return nil, err
	}
	return json.Marshal(m.snapshot(kind))
}

// DecodeDeviceJSON restores a device from a JSON snapshot. The snapshot's kind
// tag selects the concrete variant; all other state comes from the snapshot.
func DecodeDeviceJSON(data []byte) (Device, error) {
	var s deviceSnapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, serializationError("DecodeDeviceJSON", err)
	}
	return deviceFromSnapshot(&s)
}

// EncodeDeviceYAML serializes any catalog device into its YAML snapshot.
func EncodeDeviceYAML(d Device) ([]byte, error) {
	m, kind, err := modelOf(d)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(m.snapshot(kind))
}

// DecodeDeviceYAML restores a device from a YAML snapshot.
func DecodeDeviceYAML(data []byte) (Device, error) {
	var s deviceSnapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, serializationError("DecodeDeviceYAML", err)
	}
	return deviceFromSnapshot(&s)
}

func deviceFromSnapshot(s *deviceSnapshot) (Device, error) {
	if err := validateSnapshot(s); err != nil {
		return nil, err
	}
	dev, err := newDeviceOfKind(DeviceKind(s.Kind))
	if err != nil {
		return nil, serializationError("deviceFromSnapshot", fmt.Errorf("kind %q: %w", s.Kind, ErrUnknownDevice))
	}
	m, _, err := modelOf(dev)
	if err != nil {
		return nil, err
	}
	m.applySnapshot(s)
	return dev, nil
}

// DecodeAWSDeviceJSON restores a device from a JSON snapshot and wraps it in
// the catalog sum type.
func DecodeAWSDeviceJSON(data []byte) (*AWSDevice, error) {
	dev, err := DecodeDeviceJSON(data)
	if err != nil {
		return nil, err
	}
	return WrapDevice(dev)
}

// EncodeGenericJSON serializes a GenericDevice snapshot.
func EncodeGenericJSON(g *GenericDevice) ([]byte, error) {
	return json.Marshal(g.snapshot())
}

// DecodeGenericJSON restores a GenericDevice from a JSON snapshot.
func DecodeGenericJSON(data []byte) (*GenericDevice, error) {
	var s deviceSnapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, serializationError("DecodeGenericJSON", err)
	}
	return genericFromSnapshot(&s)
}

// EncodeGenericYAML serializes a GenericDevice snapshot as YAML.
func EncodeGenericYAML(g *GenericDevice) ([]byte, error) {
	return yaml.Marshal(g.snapshot())
}

// DecodeGenericYAML restores a GenericDevice from a YAML snapshot.
func DecodeGenericYAML(data []byte) (*GenericDevice, error) {
	var s deviceSnapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, serializationError("DecodeGenericYAML", err)
	}
	return genericFromSnapshot(&s)
}

func (g *GenericDevice) snapshot() *deviceSnapshot {
	s := &deviceSnapshot{
		SchemaVersion:        snapshotSchemaVersion,
		Kind:                 string(kindGeneric),
		NumberQubits:         g.numberQubits,
		SingleQubitGateNames: append([]string(nil), g.singleQubitGateNames...),
		TwoQubitGateNames:    append([]string(nil), g.twoQubitGateNames...),
		MultiQubitGateNames:  append([]string(nil), g.multiQubitGateNames...),
		Edges:                g.TwoQubitEdges(),
		DecoherenceRates:     g.QubitDecoherenceRates(),
	}
	for gate, times := range g.singleQubitGates {
		for qubit, t := range times {
			s.SingleQubitGateTimes = append(s.SingleQubitGateTimes, singleGateTimeEntry{Gate: gate, Qubit: qubit, Time: t})
		}
	}
	for gate, times := range g.twoQubitGates {
		for key, t := range times {
			s.TwoQubitGateTimes = append(s.TwoQubitGateTimes, twoGateTimeEntry{Gate: gate, QubitA: key.a, QubitB: key.b, Time: t})
		}
	}
	for gate, times := range g.multiQubitGates {
		for key, t := range times {
			qubits, _ := parseQubitsKey(key)
			s.MultiQubitGateTimes = append(s.MultiQubitGateTimes, multiGateTimeEntry{Gate: gate, Qubits: qubits, Time: t})
		}
	}
	sortSnapshotEntries(s)
	return s
}

func genericFromSnapshot(s *deviceSnapshot) (*GenericDevice, error) {
	if DeviceKind(s.Kind) != kindGeneric {
		return nil, serializationError("genericFromSnapshot", fmt.Errorf("kind %q is not a generic device", s.Kind))
	}
	if err := validateSnapshot(s); err != nil {
		return nil, err
	}

	g := NewGenericDevice(s.NumberQubits)
	g.singleQubitGateNames = append([]string(nil), s.SingleQubitGateNames...)
	g.twoQubitGateNames = append([]string(nil), s.TwoQubitGateNames...)
	g.multiQubitGateNames = append([]string(nil), s.MultiQubitGateNames...)

	for _, e := range s.SingleQubitGateTimes {
		times, ok := g.singleQubitGates[e.Gate]
		if !ok {
			times = make(map[int]float64)
			g.singleQubitGates[e.Gate] = times
		}
		times[e.Qubit] = e.Time
	}
	for _, e := range s.TwoQubitGateTimes {
		times, ok := g.twoQubitGates[e.Gate]
		if !ok {
			times = make(map[edgeKey]float64)
			g.twoQubitGates[e.Gate] = times
		}
		times[newEdgeKey(e.QubitA, e.QubitB)] = e.Time
	}
	for _, e := range s.MultiQubitGateTimes {
		times, ok := g.multiQubitGates[e.Gate]
		if !ok {
			times = make(map[string]float64)
			g.multiQubitGates[e.Gate] = times
		}
		times[qubitsKey(e.Qubits)] = e.Time
	}
	for _, e := range s.Edges {
		g.addEdge(e[0], e[1])
	}
	g.sortEdges()

	if s.DecoherenceRates != nil {
		rates := make([][]float64, len(s.DecoherenceRates))
		for i, row := range s.DecoherenceRates {
			rates[i] = append([]float64(nil), row...)
		}
		g.decoherenceRates = rates
	}
	return g, nil
}

// Equal reports structural equality of two catalog devices: same variant kind
// and identical topology, vocabulary, timing tables and noise state.
// AWSDevice wrappers compare equal to the bare variant they hold.
func Equal(a, b Device) bool {
	ma, ka, errA := modelOf(a)
	mb, kb, errB := modelOf(b)
	if errA != nil || errB != nil {
		return false
	}
	if ka != kb {
		return false
	}
	return reflect.DeepEqual(ma.snapshot(ka), mb.snapshot(kb))
}

// Equal reports structural equality with another generic device.
func (g *GenericDevice) Equal(other *GenericDevice) bool {
	if g == nil || other == nil {
		return g == other
	}
	return reflect.DeepEqual(g.snapshot(), other.snapshot())
}
