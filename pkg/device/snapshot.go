package device

import (
	"github.com/golang/snappy"
)

// EncodeSnapshot produces a snappy-compressed JSON snapshot of a catalog
// device, the form intended for persistence or cross-process transport.
func EncodeSnapshot(d Device) ([]byte, error) {
	data, err := EncodeDeviceJSON(d)
	if err != nil {
		return nil, err
	}
	return snappy.Encode(nil, data), nil
}

// DecodeSnapshot restores a catalog device from a compressed snapshot.
func DecodeSnapshot(data []byte) (Device, error) {
	decoded, err := snappy.Decode(nil, data)
	if err != nil {
		return nil, serializationError("DecodeSnapshot", err)
	}
	return DecodeDeviceJSON(decoded)
}

// EncodeGenericSnapshot produces a compressed snapshot of a GenericDevice.
func EncodeGenericSnapshot(g *GenericDevice) ([]byte, error) {
	data, err := EncodeGenericJSON(g)
	if err != nil {
		return nil, err
	}
	return snappy.Encode(nil, data), nil
}

// DecodeGenericSnapshot restores a GenericDevice from a compressed snapshot.
func DecodeGenericSnapshot(data []byte) (*GenericDevice, error) {
	decoded, err := snappy.Decode(nil, data)
	if err != nil {
		return nil, serializationError("DecodeGenericSnapshot", err)
	}
	return DecodeGenericJSON(decoded)
}
