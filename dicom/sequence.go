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
	"fmt"
	"io"
	"strings"
)

// Sequence models a DICOM Sequence of Items as defined in
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.5
type Sequence struct {
	Items []*DataSet
}

func (seq *Sequence) String() string {
	return seq.string(0)
}

func (seq *Sequence) string(indentLvl int) string {
	lines := make([]string, 0)
	for _, obj := range seq.Items {
		lines = append(lines, obj.string(indentLvl+1))
	}
	return "\n" + strings.Join(lines, "\n")
}

func (seq *Sequence) append(dataSet *DataSet) {
	seq.Items = append(seq.Items, dataSet)
}

// SequenceIterator represents an iterator over the items of a DICOM Sequence of Items
type SequenceIterator interface {
	// Next returns the next item in the DICOM Sequence of Items. If there is no next item, the error
	// io.EOF is returned. In addition, any previously returned iterators from Next are emptied.
	Next() (DataElementIterator, error)

	// Close discards all remaining items in the iterator. In addition, any previously returned
	// iterators from calls to Next are emptied.
	Close() error
}

func newSequenceIterator(dr *dcmReader, length uint32, metaData dicomMetaData) (SequenceIterator, error) {
	if length == UndefinedLength {
		return &sequenceIterator{dr: dr, metaData: metaData, delimited: true}, nil
	}
	return &sequenceIterator{dr: dr.Limit(int64(length)), metaData: metaData}, nil
}

// sequenceIterator walks the items of a sequence. A sequence of explicit length ends with its
// bytes; a delimited one (undefined length) ends with a Sequence Delimitation Item, and running
// out of input before that is an error.
type sequenceIterator struct {
	dr        *dcmReader
	metaData  dicomMetaData
	item      DataElementIterator
	delimited bool
	done      bool
}

func (it *sequenceIterator) Next() (DataElementIterator, error) {
	if it.done {
		return nil, io.EOF
	}
	if it.item != nil {
		if err := it.item.Close(); err != nil {
			return nil, err
		}
		it.item = nil
	}

	order := it.metaData.syntax.byteOrder()
	tag, err := processItemTag(it.dr, order)
	switch {
	case err == io.EOF && it.delimited:
		return nil, fmt.Errorf("sequence of undefined length ended without a delimitation item")
	case err == io.EOF:
		it.done = true
		return nil, io.EOF
	case err != nil:
		return nil, err
	case tag == SequenceDelimitationItemTag && !it.delimited:
		return nil, fmt.Errorf("unexpected sequence delimitation item in explicit length sequence")
	case tag == SequenceDelimitationItemTag:
		length, err := it.dr.UInt32(order)
		if err != nil {
			return nil, fmt.Errorf("reading 32 bit length of sequence delimitation item: %v", err)
		}
		if length != 0 {
			return nil, fmt.Errorf("wrong length for sequence delimiter. got %v, want 0", length)
		}
		// the delimiter is the last byte of the sequence; reading further would consume the
		// elements that follow it
		it.done = true
		return nil, io.EOF
	}

	length, err := it.dr.UInt32(order)
	if err != nil {
		return nil, fmt.Errorf("reading sequence item length: %v", err)
	}
	if length == UndefinedLength {
		it.item = newDataElementIterator(it.dr, it.metaData)
	} else {
		it.item = newDataElementIterator(it.dr.Limit(int64(length)), it.metaData)
	}
	return it.item, nil
}

// Close discards the remaining items
func (it *sequenceIterator) Close() error {
	for _, err := it.Next(); err != io.EOF; _, err = it.Next() {
		if err != nil {
			return err
		}
	}
	return nil
}

// processItemTag reads the tag opening an item, which must be an Item or a Sequence Delimitation
// Item
func processItemTag(dr *dcmReader, order binary.ByteOrder) (DataElementTag, error) {
	tag, err := dr.Tag(order)
	if err == io.EOF {
		return tag, io.EOF
	}
	if err != nil {
		return tag, fmt.Errorf("reading item tag: %v", err)
	}
	if tag != ItemTag && tag != SequenceDelimitationItemTag {
		return tag, fmt.Errorf("got %v in a sequence, want an item or sequence delimitation item", tag)
	}
	return tag, nil
}
