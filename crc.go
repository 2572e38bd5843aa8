// Package ccitt implements the CRC-16/CCITT-FALSE checksum and helpers for
// validating data blocks that carry it
package ccitt

import (
	"errors"
	"math"

	"github.com/sigurn/crc16"
)

// Custom error types
var (
	ErrCRCFailed        = errors.New("CRC check failed")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrInvalidSize      = errors.New("invalid size")
)

// InitialValue is the checksum of an empty range
const InitialValue = 0xFFFF

var ccittFalseParams = crc16.Params{
	Poly:   0x1021,
	Init:   InitialValue,
	RefIn:  false,
	RefOut: false,
	XorOut: 0x0000,
	Name:   "CRC-16/CCITT-FALSE",
}

var crcTable = crc16.MakeTable(ccittFalseParams)

// Checksum calculates CRC-16/CCITT-FALSE over data[offset:offset+length].
// The range is clipped to the end of data; an offset at or past the end, or a
// negative offset or length, processes no bytes.
func Checksum(data []byte, offset, length int) uint16 {
	crc := uint32(InitialValue)
	if offset < 0 || length < 0 {
		return uint16(crc)
	}

	end := len(data)
	if length < end-offset {
		end = offset + length
	}

	for i := offset; i < end; i++ {
		crc = ((crc & 0xFFFF) >> 8) | (crc << 8)
		crc ^= uint32(data[i])
		crc ^= (crc & 0xFF) >> 4
		crc ^= (crc << 8) << 4
		crc ^= ((crc & 0xFF) << 4) << 1
	}

	return uint16(crc)
}

// ChecksumRange is Checksum with explicit argument validation
func ChecksumRange(data []byte, offset, length int) (uint16, error) {
	if offset < 0 || length < 0 || offset > math.MaxInt-length {
		return 0, ErrInvalidParameter
	}
	return Checksum(data, offset, length), nil
}

// Sum calculates CRC-16/CCITT-FALSE for the whole buffer using a lookup table
func Sum(data []byte) uint16 {
	return crc16.Checksum(data, crcTable)
}

// NewHash returns an incremental CRC-16/CCITT-FALSE digest
func NewHash() crc16.Hash16 {
	return crc16.New(crcTable)
}
