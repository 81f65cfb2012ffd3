package framewire

import (
	"encoding/binary"
	"math"
)

// order resolves a Buffer's declared Endian to the stdlib
// encoding/binary.ByteOrder it matches, the same way the teacher selects
// binary.LittleEndian for every fixed-width field it encodes or decodes
// (utils.go's setFixed/readFixed, fractus_improv.go's writeFixed),
// generalized here to support either byte order instead of hardcoding
// little endian.
func (e Endian) order() binary.ByteOrder {
	if e == LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// WriteBool writes a single byte: 0x00 for false, 0x01 for true.
func (w *Writer) WriteBool(v bool) error {
	if v {
		return w.writeByte(1)
	}
	return w.writeByte(0)
}

// ReadBool reads a single byte and treats any nonzero value as true.
func (r *Reader) ReadBool() (bool, error) {
	b, err := r.readByte()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

// WriteUint8 writes a single unsigned byte.
func (w *Writer) WriteUint8(v uint8) error { return w.writeByte(v) }

// ReadUint8 reads a single unsigned byte.
func (r *Reader) ReadUint8() (uint8, error) { return r.readByte() }

// WriteInt8 writes a single signed byte.
func (w *Writer) WriteInt8(v int8) error { return w.writeByte(byte(v)) }

// ReadInt8 reads a single signed byte.
func (r *Reader) ReadInt8() (int8, error) {
	b, err := r.readByte()
	return int8(b), err
}

// WriteUint16 writes v in the writer's declared endianness.
func (w *Writer) WriteUint16(v uint16) error {
	var buf [2]byte
	w.endian.order().PutUint16(buf[:], v)
	return w.writeBytes(buf[:])
}

// ReadUint16 reads a uint16 in the reader's declared endianness.
func (r *Reader) ReadUint16() (uint16, error) {
	b, err := r.readBytes(2)
	if err != nil {
		return 0, err
	}
	return r.endian.order().Uint16(b), nil
}

// WriteInt16 writes v in the writer's declared endianness.
func (w *Writer) WriteInt16(v int16) error { return w.WriteUint16(uint16(v)) }

// ReadInt16 reads an int16 in the reader's declared endianness.
func (r *Reader) ReadInt16() (int16, error) {
	v, err := r.ReadUint16()
	return int16(v), err
}

// WriteUint32 writes v in the writer's declared endianness.
func (w *Writer) WriteUint32(v uint32) error {
	var buf [4]byte
	w.endian.order().PutUint32(buf[:], v)
	return w.writeBytes(buf[:])
}

// ReadUint32 reads a uint32 in the reader's declared endianness.
func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.readBytes(4)
	if err != nil {
		return 0, err
	}
	return r.endian.order().Uint32(b), nil
}

// WriteInt32 writes v in the writer's declared endianness.
func (w *Writer) WriteInt32(v int32) error { return w.WriteUint32(uint32(v)) }

// ReadInt32 reads an int32 in the reader's declared endianness.
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

// WriteUint64 writes v in the writer's declared endianness.
func (w *Writer) WriteUint64(v uint64) error {
	var buf [8]byte
	w.endian.order().PutUint64(buf[:], v)
	return w.writeBytes(buf[:])
}

// ReadUint64 reads a uint64 in the reader's declared endianness.
func (r *Reader) ReadUint64() (uint64, error) {
	b, err := r.readBytes(8)
	if err != nil {
		return 0, err
	}
	return r.endian.order().Uint64(b), nil
}

// WriteInt64 writes v in the writer's declared endianness.
func (w *Writer) WriteInt64(v int64) error { return w.WriteUint64(uint64(v)) }

// ReadInt64 reads an int64 in the reader's declared endianness.
func (r *Reader) ReadInt64() (int64, error) {
	v, err := r.ReadUint64()
	return int64(v), err
}

// WriteFloat32 writes v's IEEE-754 bit pattern in the writer's declared
// endianness.
func (w *Writer) WriteFloat32(v float32) error { return w.WriteUint32(math.Float32bits(v)) }

// ReadFloat32 reads an IEEE-754 float32 in the reader's declared
// endianness.
func (r *Reader) ReadFloat32() (float32, error) {
	v, err := r.ReadUint32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// WriteFloat64 writes v's IEEE-754 bit pattern in the writer's declared
// endianness.
func (w *Writer) WriteFloat64(v float64) error { return w.WriteUint64(math.Float64bits(v)) }

// ReadFloat64 reads an IEEE-754 float64 in the reader's declared
// endianness.
func (r *Reader) ReadFloat64() (float64, error) {
	v, err := r.ReadUint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}
