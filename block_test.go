package ccitt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeal(t *testing.T) {
	payload := []byte("123456789")
	block, err := Seal(payload)
	require.NoError(t, err)

	assert.Equal(t, append([]byte("123456789"), 0x29, 0xB1), block)
	assert.Equal(t, []byte("123456789"), payload)
}

func TestSeal_Empty(t *testing.T) {
	block, err := Seal(nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xFF}, block)

	payload, err := Open(block)
	require.NoError(t, err)
	assert.Empty(t, payload)
}

func TestOpen(t *testing.T) {
	block := append([]byte("123456789"), 0x29, 0xB1)

	payload, err := Open(block)
	require.NoError(t, err)
	assert.Equal(t, []byte("123456789"), payload)
}

func TestOpen_Errors(t *testing.T) {
	t.Run("too short", func(t *testing.T) {
		_, err := Open([]byte{0x29})
		assert.ErrorIs(t, err, ErrInvalidSize)
	})

	t.Run("corrupted payload", func(t *testing.T) {
		block := append([]byte("123456788"), 0x29, 0xB1)
		_, err := Open(block)
		assert.ErrorIs(t, err, ErrCRCFailed)
	})

	t.Run("corrupted trailer", func(t *testing.T) {
		block := append([]byte("123456789"), 0xB1, 0x29)
		err := Verify(block)
		require.ErrorIs(t, err, ErrCRCFailed)
		assert.Contains(t, err.Error(), "0x29B1")
		assert.Contains(t, err.Error(), "0xB129")
	})
}

func TestVerify_SingleBitFlips(t *testing.T) {
	block, err := Seal([]byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x17, 0xF0})
	require.NoError(t, err)
	require.NoError(t, Verify(block))

	for i := range block {
		for bit := 0; bit < 8; bit++ {
			corrupt := append([]byte(nil), block...)
			corrupt[i] ^= 1 << bit
			assert.ErrorIs(t, Verify(corrupt), ErrCRCFailed, "byte %d bit %d", i, bit)
		}
	}
}
