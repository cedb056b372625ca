package device

// RigettiAspenM3Device describes the 80-qubit Rigetti Aspen-M-3
// superconducting processor: a 2x5 lattice of 8-qubit octagon rings with
// paired couplers between adjacent octagons. Qubits are indexed contiguously
// from 0, unlike the sparse physical labels Rigetti publishes.
type RigettiAspenM3Device struct {
	deviceModel
}

// NewRigettiAspenM3Device creates an Aspen-M-3 descriptor with its fixed
// lattice topology and gate vocabulary.
func NewRigettiAspenM3Device() *RigettiAspenM3Device {
	return &RigettiAspenM3Device{
		deviceModel: *newDeviceModel(
			"arn:aws:braket:us-west-1::device/qpu/rigetti/Aspen-M-3",
			"us-west-1",
			80,
			[]string{"RotateZ", "RotateX"},
			[]string{"ControlledPauliZ", "ControlledPhaseShift", "XY"},
			nil,
			octagonalLatticeEdges(2, 5),
		),
	}
}
