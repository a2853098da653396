package clientservice

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testKey = "6368616e676520746869732070617373776f726420746f20612073656372657f"

func TestCipherRoundTrip(t *testing.T) {
	cipher, err := NewCipher(testKey)
	assert.NoError(t, err)

	for _, plain := range []string{"hunter2secret", "", "päss wörd with spaces"} {
		encrypted, err := cipher.Encrypt(plain)
		assert.NoError(t, err)
		assert.NotEqual(t, plain, encrypted)

		decrypted, err := cipher.Decrypt(encrypted)
		assert.NoError(t, err)
		assert.Equal(t, plain, decrypted)
	}
}

func TestCipherNonDeterministic(t *testing.T) {
	cipher, err := NewCipher(testKey)
	assert.NoError(t, err)

	first, err := cipher.Encrypt("same-password")
	assert.NoError(t, err)
	second, err := cipher.Encrypt("same-password")
	assert.NoError(t, err)

	// fresh nonce per encryption
	assert.NotEqual(t, first, second)
}

func TestCipherRejectsBadInput(t *testing.T) {
	cipher, err := NewCipher(testKey)
	assert.NoError(t, err)

	_, err = cipher.Decrypt("not base64!!")
	assert.ErrorIs(t, err, ErrInvalidCiphertext)

	_, err = cipher.Decrypt("c2hvcnQ=")
	assert.ErrorIs(t, err, ErrInvalidCiphertext)
}

func TestNewCipherKeyValidation(t *testing.T) {
	_, err := NewCipher("zz")
	assert.Error(t, err)

	_, err = NewCipher(hex.EncodeToString([]byte("too short")))
	assert.Error(t, err)
}
