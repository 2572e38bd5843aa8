package ccitt

import (
	"bytes"
	"fmt"
)

// CRCSize is the length of the checksum trailer of a sealed block
const CRCSize = 2

// Seal returns a copy of payload with its CRC appended in big-endian order
func Seal(payload []byte) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, len(payload)+CRCSize))
	buf.Write(payload)

	if err := writeBinary(buf, Sum(payload)); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Open verifies the CRC trailer of a sealed block and returns its payload.
// The payload shares memory with block.
func Open(block []byte) ([]byte, error) {
	if len(block) < CRCSize {
		return nil, ErrInvalidSize
	}

	payloadSize := len(block) - CRCSize

	var chk uint16
	if err := readBinary(bytes.NewReader(block[payloadSize:]), &chk); err != nil {
		return nil, err
	}

	if crc := Checksum(block, 0, payloadSize); crc != chk {
		return nil, fmt.Errorf("%w: calculated 0x%04X, received 0x%04X", ErrCRCFailed, crc, chk)
	}

	return block[:payloadSize], nil
}

// Verify checks the CRC trailer of a sealed block
func Verify(block []byte) error {
	_, err := Open(block)
	return err
}
