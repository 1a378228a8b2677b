// Copyright 2026 The DicomParser Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package props

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// fileBuilder writes explicit VR little endian DICOM files for tests
type fileBuilder struct {
	body bytes.Buffer
}

func newFile() *fileBuilder {
	return &fileBuilder{}
}

func (b *fileBuilder) raw(group, element uint16, vr string, value []byte) *fileBuilder {
	writeElement(&b.body, group, element, vr, value)
	return b
}

func (b *fileBuilder) text(group, element uint16, vr, s string) *fileBuilder {
	pad := byte(' ')
	if vr == "UI" {
		pad = 0x00
	}
	v := []byte(s)
	if len(v)%2 == 1 {
		v = append(v, pad)
	}
	return b.raw(group, element, vr, v)
}

func (b *fileBuilder) numbers(group, element uint16, vr string, values interface{}) *fileBuilder {
	var v bytes.Buffer
	_ = binary.Write(&v, binary.LittleEndian, values)
	return b.raw(group, element, vr, v.Bytes())
}

// sequence writes an explicit length sequence of one item holding the given elements
func (b *fileBuilder) sequence(group, element uint16, item *fileBuilder) *fileBuilder {
	var v bytes.Buffer
	_ = binary.Write(&v, binary.LittleEndian, []uint16{0xFFFE, 0xE000})
	_ = binary.Write(&v, binary.LittleEndian, uint32(item.body.Len()))
	v.Write(item.body.Bytes())
	return b.raw(group, element, "SQ", v.Bytes())
}

// unknownSequence writes a UN element of undefined length with one item holding an implicit VR
// ReferencedSOPInstanceUID
func (b *fileBuilder) unknownSequence(group, element uint16) *fileBuilder {
	_ = binary.Write(&b.body, binary.LittleEndian, []uint16{group, element})
	b.body.WriteString("UN")
	_ = binary.Write(&b.body, binary.LittleEndian, uint16(0))
	_ = binary.Write(&b.body, binary.LittleEndian, uint32(0xFFFFFFFF))

	uid := []byte("1.2.840.10008.5.1.4.1.1.4\x00")
	_ = binary.Write(&b.body, binary.LittleEndian, []uint16{0xFFFE, 0xE000})
	_ = binary.Write(&b.body, binary.LittleEndian, uint32(0xFFFFFFFF))
	_ = binary.Write(&b.body, binary.LittleEndian, []uint16{0x0008, 0x1155})
	_ = binary.Write(&b.body, binary.LittleEndian, uint32(len(uid)))
	b.body.Write(uid)
	_ = binary.Write(&b.body, binary.LittleEndian, []uint16{0xFFFE, 0xE00D, 0, 0})
	_ = binary.Write(&b.body, binary.LittleEndian, []uint16{0xFFFE, 0xE0DD, 0, 0})
	return b
}

func (b *fileBuilder) bytes() []byte {
	var meta bytes.Buffer
	writeElement(&meta, 0x0002, 0x0001, "OB", []byte{0x00, 0x01})
	writeElement(&meta, 0x0002, 0x0002, "UI", []byte("1.2.840.10008.5.1.4.1.1.7\x00"))
	writeElement(&meta, 0x0002, 0x0003, "UI", []byte("1.2.3.4"+"\x00"))
	writeElement(&meta, 0x0002, 0x0010, "UI", []byte("1.2.840.10008.1.2.1\x00"))

	var out bytes.Buffer
	out.Write(make([]byte, 128))
	out.WriteString("DICM")
	length := make([]byte, 4)
	binary.LittleEndian.PutUint32(length, uint32(meta.Len()))
	writeElement(&out, 0x0002, 0x0000, "UL", length)
	out.Write(meta.Bytes())
	out.Write(b.body.Bytes())
	return out.Bytes()
}

// write stores the file in a temporary directory and returns its path
func (b *fileBuilder) write(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.dcm")
	require.NoError(t, os.WriteFile(path, b.bytes(), 0o600))
	return path
}

func writeElement(w *bytes.Buffer, group, element uint16, vr string, value []byte) {
	_ = binary.Write(w, binary.LittleEndian, []uint16{group, element})
	w.WriteString(vr)
	switch vr {
	case "OB", "OD", "OF", "OL", "OV", "OW", "SQ", "SV", "UC", "UN", "UR", "UT", "UV":
		_ = binary.Write(w, binary.LittleEndian, uint16(0))
		_ = binary.Write(w, binary.LittleEndian, uint32(len(value)))
	default:
		_ = binary.Write(w, binary.LittleEndian, uint16(len(value)))
	}
	w.Write(value)
}

const studyUID = "1.2.826.0.1.3680043.8.1055.1.20111102150758591.92402465.76095170"

func writeBytes(path string, b []byte) error {
	return os.WriteFile(path, b, 0o600)
}
