package ccitt

import (
	"encoding/binary"
	"io"
)

// writeBinary writes multiple values to a writer using binary.BigEndian
func writeBinary(w io.Writer, values ...interface{}) error {
	for _, v := range values {
		if err := binary.Write(w, binary.BigEndian, v); err != nil {
			return err
		}
	}
	return nil
}

// readBinary reads multiple values from a reader using binary.BigEndian
func readBinary(r io.Reader, values ...interface{}) error {
	for _, v := range values {
		if err := binary.Read(r, binary.BigEndian, v); err != nil {
			return err
		}
	}
	return nil
}
