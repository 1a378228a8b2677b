package dicom

import (
	"encoding/binary"
	"testing"
)

func TestLookupTransferSyntax(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want transferSyntax
	}{
		{"explicit vr little endian", ExplicitVRLittleEndianUID, explicitVRLittleEndian},
		{"implicit vr little endian", ImplicitVRLittleEndianUID, implicitVRLittleEndian},
		{"explicit vr big endian", ExplicitVRBigEndianUID, explicitVRBigEndian},
		{"deflated explicit vr little endian", DeflatedExplicitVRLittleEndianUID, deflatedExplicitVRLittleEndian},
		{"jpeg baseline falls back to explicit little endian", jpegBaselineUID, explicitVRLittleEndian},
		{"unknown uid", "1.2.3.4", explicitVRLittleEndian},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := lookupTransferSyntax(tc.in); got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestExplicitSyntax_ReadValueLength(t *testing.T) {
	tests := []struct {
		name   string
		syntax explicitSyntax
		vr     *VR
		in     []byte
		want   uint32
	}{
		{"16 bit little endian", explicitVRLittleEndian, LOVR, []byte{0x0A, 0x00}, 10},
		{"16 bit big endian", explicitVRBigEndian, LOVR, []byte{0x00, 0x0A}, 10},
		{"32 bit little endian", explicitVRLittleEndian, OBVR, []byte{0x00, 0x00, 0x00, 0x01, 0x00, 0x00}, 256},
		{"32 bit big endian", explicitVRBigEndian, UTVR, []byte{0x00, 0x00, 0x00, 0x00, 0x01, 0x00}, 256},
		{"64 bit numbers have long lengths", explicitVRLittleEndian, SVVR, []byte{0x00, 0x00, 0x08, 0x00, 0x00, 0x00}, 8},
		{"undefined length", explicitVRLittleEndian, SQVR, []byte{0x00, 0x00, 0xFF, 0xFF, 0xFF, 0xFF}, UndefinedLength},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.syntax.readValueLength(dcmReaderFromBytes(tc.in), tc.vr)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestExplicitSyntax_ReadValueLengthTruncated(t *testing.T) {
	if _, err := explicitVRLittleEndian.readValueLength(dcmReaderFromBytes([]byte{0x00, 0x00, 0x01}), OBVR); err == nil {
		t.Fatal("expected an error for a truncated 32 bit length")
	}
}

func TestImplicitSyntax_ReadVR(t *testing.T) {
	vr, err := implicitVRLittleEndian.readVR(dcmReaderFromBytes(nil), TransferSyntaxUIDTag)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vr != UIVR {
		t.Fatalf("got %v, want %v", vr, UIVR)
	}
	if got := implicitVRLittleEndian.byteOrder(); got != binary.LittleEndian {
		t.Fatalf("got %v, want little endian", got)
	}
}
