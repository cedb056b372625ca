package device

// OQCLucyDevice describes the 8-qubit OQC Lucy superconducting processor,
// a single ring of coaxmon qubits. Lucy's native two-qubit operation (ECR)
// has no portable gate name, so the two-qubit vocabulary is empty even though
// connectivity edges exist: the ring still matters for chain analysis.
type OQCLucyDevice struct {
	deviceModel
}

// NewOQCLucyDevice creates a Lucy descriptor with its fixed ring topology and
// gate vocabulary.
func NewOQCLucyDevice() *OQCLucyDevice {
	return &OQCLucyDevice{
		deviceModel: *newDeviceModel(
			"arn:aws:braket:eu-west-2::device/qpu/oqc/Lucy",
			"eu-west-2",
			8,
			[]string{"RotateZ", "SqrtPauliX", "PauliX"},
			nil,
			nil,
			ringEdges(8),
		),
	}
}
