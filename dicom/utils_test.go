package dicom

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/flate"
)

var sampleBytes = []byte{1, 2, 3, 4}

// tags and UIDs used to build test inputs
const (
	FileMetaInformationVersionTag DataElementTag = 0x00020001
	MediaStorageSOPClassUIDTag    DataElementTag = 0x00020002
	StudyDateTag                  DataElementTag = 0x00080020
	ModalityTag                   DataElementTag = 0x00080060
	ReferencedImageSequenceTag    DataElementTag = 0x00081140
	ReferencedSOPInstanceUIDTag   DataElementTag = 0x00081155
	PatientNameTag                DataElementTag = 0x00100010
	PatientIDTag                  DataElementTag = 0x00100020
	StudyInstanceUIDTag           DataElementTag = 0x0020000D
	RowsTag                       DataElementTag = 0x00280010

	jpegBaselineUID = "1.2.840.10008.1.2.4.50"
)

func dcmReaderFromBytes(data []byte) *dcmReader {
	return newDcmReader(bytes.NewBuffer(data))
}

func metaDataWithSyntax(syntax transferSyntax) dicomMetaData {
	return dicomMetaData{syntax, defaultCharacterRepertoire}
}

// elementEncoder writes data elements in a given transfer syntax. It only exists to build test
// inputs and follows http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1
type elementEncoder struct {
	buf      bytes.Buffer
	order    binary.ByteOrder
	implicit bool
}

func newExplicitEncoder(order binary.ByteOrder) *elementEncoder {
	return &elementEncoder{order: order}
}

func newImplicitEncoder() *elementEncoder {
	return &elementEncoder{order: binary.LittleEndian, implicit: true}
}

func (e *elementEncoder) tag(tag DataElementTag) {
	binary.Write(&e.buf, e.order, tag.GroupNumber())
	binary.Write(&e.buf, e.order, tag.ElementNumber())
}

func (e *elementEncoder) header(tag DataElementTag, vr string, length uint32) {
	e.tag(tag)
	if e.implicit {
		binary.Write(&e.buf, e.order, length)
		return
	}
	e.buf.WriteString(vr)
	switch vr {
	case "OB", "OD", "OF", "OL", "OV", "OW", "SQ", "SV", "UC", "UN", "UR", "UT", "UV":
		binary.Write(&e.buf, e.order, uint16(0))
		binary.Write(&e.buf, e.order, length)
	default:
		binary.Write(&e.buf, e.order, uint16(length))
	}
}

func (e *elementEncoder) element(tag DataElementTag, vr string, value []byte) *elementEncoder {
	e.header(tag, vr, uint32(len(value)))
	e.buf.Write(value)
	return e
}

func (e *elementEncoder) text(tag DataElementTag, vr string, s string) *elementEncoder {
	return e.element(tag, vr, padText(s, ' '))
}

func (e *elementEncoder) uid(tag DataElementTag, s string) *elementEncoder {
	return e.element(tag, "UI", padText(s, 0x00))
}

func (e *elementEncoder) numbers(tag DataElementTag, vr string, values interface{}) *elementEncoder {
	var b bytes.Buffer
	binary.Write(&b, e.order, values)
	return e.element(tag, vr, b.Bytes())
}

// sequence writes an SQ element whose items are the given encoded data sets. When undefined is true
// the sequence and its items use undefined lengths with delimitation items.
func (e *elementEncoder) sequence(tag DataElementTag, undefined bool, items ...[]byte) *elementEncoder {
	var body elementEncoder
	body.order = e.order
	for _, item := range items {
		body.tag(ItemTag)
		if undefined {
			binary.Write(&body.buf, e.order, uint32(UndefinedLength))
			body.buf.Write(item)
			body.tag(ItemDelimitationItemTag)
			binary.Write(&body.buf, e.order, uint32(0))
		} else {
			binary.Write(&body.buf, e.order, uint32(len(item)))
			body.buf.Write(item)
		}
	}
	if undefined {
		body.tag(SequenceDelimitationItemTag)
		binary.Write(&body.buf, e.order, uint32(0))
		e.header(tag, "SQ", UndefinedLength)
	} else {
		e.header(tag, "SQ", uint32(body.buf.Len()))
	}
	e.buf.Write(body.buf.Bytes())
	return e
}

// unknownSequence writes a UN element of undefined length holding the given items. The items are
// encoded as implicit VR little endian whatever the byte order of the enclosing data set.
func (e *elementEncoder) unknownSequence(tag DataElementTag, items ...[]byte) *elementEncoder {
	e.header(tag, "UN", UndefinedLength)
	le := &elementEncoder{order: binary.LittleEndian}
	for _, item := range items {
		le.tag(ItemTag)
		binary.Write(&le.buf, binary.LittleEndian, uint32(UndefinedLength))
		le.buf.Write(item)
		le.tag(ItemDelimitationItemTag)
		binary.Write(&le.buf, binary.LittleEndian, uint32(0))
	}
	le.tag(SequenceDelimitationItemTag)
	binary.Write(&le.buf, binary.LittleEndian, uint32(0))
	e.buf.Write(le.buf.Bytes())
	return e
}

// encapsulatedPixelData writes pixel data of undefined length made of an empty offset table and the
// given fragments
func (e *elementEncoder) encapsulatedPixelData(fragments ...[]byte) *elementEncoder {
	e.header(PixelDataTag, "OB", UndefinedLength)
	le := &elementEncoder{order: binary.LittleEndian}
	le.tag(ItemTag)
	binary.Write(&le.buf, binary.LittleEndian, uint32(0))
	for _, f := range fragments {
		le.tag(ItemTag)
		binary.Write(&le.buf, binary.LittleEndian, uint32(len(f)))
		le.buf.Write(f)
	}
	le.tag(SequenceDelimitationItemTag)
	binary.Write(&le.buf, binary.LittleEndian, uint32(0))
	e.buf.Write(le.buf.Bytes())
	return e
}

func (e *elementEncoder) bytes() []byte {
	return e.buf.Bytes()
}

func padText(s string, pad byte) []byte {
	b := []byte(s)
	if len(b)%2 == 1 {
		b = append(b, pad)
	}
	return b
}

// buildFile returns a DICOM file with a preamble, a file meta group declaring the transfer syntax
// and the given data set bytes
func buildFile(syntaxUID string, dataSet []byte) []byte {
	meta := newExplicitEncoder(binary.LittleEndian).
		element(FileMetaInformationVersionTag, "OB", []byte{0x00, 0x01}).
		uid(MediaStorageSOPClassUIDTag, "1.2.840.10008.5.1.4.1.1.4").
		uid(TransferSyntaxUIDTag, syntaxUID).
		bytes()

	var file bytes.Buffer
	file.Write(make([]byte, 128))
	file.WriteString("DICM")
	file.Write(newExplicitEncoder(binary.LittleEndian).
		numbers(FileMetaInformationGroupLengthTag, "UL", []uint32{uint32(len(meta))}).
		bytes())
	file.Write(meta)

	if syntaxUID == DeflatedExplicitVRLittleEndianUID {
		w, _ := flate.NewWriter(&file, flate.DefaultCompression)
		w.Write(dataSet)
		w.Close()
	} else {
		file.Write(dataSet)
	}
	return file.Bytes()
}

func writeTempFile(t *testing.T, data []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "test.dcm")
	if err := os.WriteFile(p, data, 0o600); err != nil {
		t.Fatalf("writing temp file: %v", err)
	}
	return p
}

const studyUID = "1.2.826.0.1.3680043.8.1055.1.20111102150758591.92402465.76095170"

// sampleDataSet returns a small data set touching every decoding path: text, UI, binary numbers,
// a nested sequence and native pixel data
func sampleDataSet(enc *elementEncoder) []byte {
	item := &elementEncoder{order: enc.order, implicit: enc.implicit}
	item.uid(ReferencedSOPInstanceUIDTag, "1.2.840.10008.5.1.4.1.1.4")

	return enc.
		text(StudyDateTag, "DA", "20111102").
		text(ModalityTag, "CS", "MR").
		sequence(ReferencedImageSequenceTag, false, item.bytes()).
		text(PatientNameTag, "PN", "Doe^John").
		uid(StudyInstanceUIDTag, studyUID).
		numbers(RowsTag, "US", []uint16{512}).
		element(PixelDataTag, "OW", []byte{0x11, 0x11, 0x22, 0x22}).
		bytes()
}
