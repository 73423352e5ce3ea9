package part

import (
	"encoding/binary"
	"io"
)

// HeaderSize is the length of the index field at the beginning of every part file
const HeaderSize int64 = 4

// Header is the fixed size prefix of the part file keeping its order in the source file
type Header struct {
	index uint32 // 4 bytes, little endian
}

func NewHeader(index uint32) *Header {
	return &Header{
		index: index,
	}
}

func (h *Header) Index() uint32 {
	return h.index
}

func (h *Header) Size() int64 {
	return HeaderSize
}

// Load reads the index from the reader. A reader that ends before the header is complete
// returns io.ErrUnexpectedEOF or io.EOF
func (h *Header) Load(reader io.Reader) error {
	var index uint32
	if err := binary.Read(reader, binary.LittleEndian, &index); err != nil {
		return err
	}
	h.index = index

	return nil
}

func (h *Header) Save(writer io.Writer) error {
	return binary.Write(writer, binary.LittleEndian, h.index)
}
