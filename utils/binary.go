package utils

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
)

// WriteLUint64 writes a little-endian uint64 to the buffer.
func WriteLUint64(buf *bytes.Buffer, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	buf.Write(b[:])
}

// WriteLInt64 writes a little-endian int64 to the buffer.
func WriteLInt64(buf *bytes.Buffer, v int64) {
	WriteLUint64(buf, uint64(v))
}

// WriteLFloat64 writes a little-endian float64 to the buffer.
func WriteLFloat64(buf *bytes.Buffer, v float64) {
	WriteLUint64(buf, math.Float64bits(v))
}

// WriteLFloat32 writes a little-endian float32 to the buffer.
func WriteLFloat32(buf *bytes.Buffer, v float32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], math.Float32bits(v))
	buf.Write(b[:])
}

// ReadLUint64 reads a little-endian uint64 from the buffer.
func ReadLUint64(buf *bytes.Buffer) (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(buf, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// ReadLInt64 reads a little-endian int64 from the buffer.
func ReadLInt64(buf *bytes.Buffer) (int64, error) {
	v, err := ReadLUint64(buf)
	return int64(v), err
}

// ReadLFloat64 reads a little-endian float64 from the buffer.
func ReadLFloat64(buf *bytes.Buffer) (float64, error) {
	v, err := ReadLUint64(buf)
	return math.Float64frombits(v), err
}

// ReadLFloat32 reads a little-endian float32 from the buffer.
func ReadLFloat32(buf *bytes.Buffer) (float32, error) {
	var b [4]byte
	if _, err := io.ReadFull(buf, b[:]); err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b[:])), nil
}
