// Copyright 2018 Google LLC
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

package dicom

import (
	"encoding/binary"
	"io"
)

// dcmReader reads the fixed size fields of an encoded data set (tags, lengths, VR names) and
// value fields of a known length. Every read goes through a countReader so callers can tell
// how far into the stream an element starts.
type dcmReader struct {
	cr      *countReader
	scratch [4]byte
}

func newDcmReader(r io.Reader) *dcmReader {
	return &dcmReader{cr: &countReader{r: r}}
}

// fixed fills the first n bytes of the scratch buffer. A stream that ends before the first byte
// reports io.EOF, one that ends part way through reports io.ErrUnexpectedEOF.
func (dr *dcmReader) fixed(n int) ([]byte, error) {
	b := dr.scratch[:n]
	if _, err := io.ReadFull(dr.cr, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Tag reads a group number followed by an element number
func (dr *dcmReader) Tag(order binary.ByteOrder) (DataElementTag, error) {
	b, err := dr.fixed(4)
	if err != nil {
		return 0, err
	}
	return NewDataElementTag(order.Uint16(b[:2]), order.Uint16(b[2:])), nil
}

// UInt16 reads a 16-bit unsigned integer
func (dr *dcmReader) UInt16(order binary.ByteOrder) (uint16, error) {
	b, err := dr.fixed(2)
	if err != nil {
		return 0, err
	}
	return order.Uint16(b), nil
}

// UInt32 reads a 32-bit unsigned integer
func (dr *dcmReader) UInt32(order binary.ByteOrder) (uint32, error) {
	b, err := dr.fixed(4)
	if err != nil {
		return 0, err
	}
	return order.Uint32(b), nil
}

// VRName reads the two character VR of an explicit VR element
func (dr *dcmReader) VRName() (string, error) {
	b, err := dr.fixed(vrSize)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Bytes reads a value field of n bytes. The buffer grows with the bytes actually read so a
// corrupt length cannot force a large allocation.
func (dr *dcmReader) Bytes(n int64) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(dr.cr, n))
	if err != nil {
		return nil, err
	}
	if int64(len(b)) != n {
		return nil, io.ErrUnexpectedEOF
	}
	return b, nil
}

// Skip discards n bytes
func (dr *dcmReader) Skip(n int64) error {
	skipped, err := io.CopyN(io.Discard, dr.cr, n)
	if err == io.EOF && skipped > 0 {
		return io.ErrUnexpectedEOF
	}
	return err
}

// Limit returns a dcmReader over the next n bytes of the stream. Reads through it advance the
// parent as well.
func (dr *dcmReader) Limit(n int64) *dcmReader {
	return &dcmReader{cr: limitCountReader(dr.cr, n)}
}

// countReader tracks the offset of the underlying stream. A child made by Limit starts at its
// parent's offset so both report absolute positions.
type countReader struct {
	r         io.Reader
	bytesRead int64
}

func (cr *countReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	cr.bytesRead += int64(n)
	return n, err
}

func limitCountReader(cr *countReader, n int64) *countReader {
	return &countReader{io.LimitReader(cr, n), cr.bytesRead}
}
