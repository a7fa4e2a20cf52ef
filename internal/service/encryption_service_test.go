package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAESKey = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func TestAESFieldCipher_InvalidKey(t *testing.T) {
	_, err := NewAESFieldCipher("shortkey")
	assert.Error(t, err)

	_, err = NewAESFieldCipher("0123")
	assert.Error(t, err)
}

func TestAESFieldCipher_RoundTrip(t *testing.T) {
	c, err := NewAESFieldCipher(testAESKey)
	require.NoError(t, err)

	iban := "FR7630004000031234567890143"
	enc, err := c.Encrypt(iban)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(enc, fieldPrefix))
	assert.NotContains(t, enc, iban)

	dec, err := c.Decrypt(enc)
	require.NoError(t, err)
	assert.Equal(t, iban, dec)
}

func TestAESFieldCipher_RandomNonce(t *testing.T) {
	c, err := NewAESFieldCipher(testAESKey)
	require.NoError(t, err)

	a, err := c.Encrypt("11696419")
	require.NoError(t, err)
	b, err := c.Encrypt("11696419")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestAESFieldCipher_LegacyPlaintextPassesThrough(t *testing.T) {
	c, err := NewAESFieldCipher(testAESKey)
	require.NoError(t, err)

	dec, err := c.Decrypt("11696419")
	require.NoError(t, err)
	assert.Equal(t, "11696419", dec)
}

func TestAESFieldCipher_Tampered(t *testing.T) {
	c, err := NewAESFieldCipher(testAESKey)
	require.NoError(t, err)

	enc, err := c.Encrypt("11696419")
	require.NoError(t, err)

	tampered := enc[:len(enc)-2] + "AA"
	if tampered == enc {
		tampered = enc[:len(enc)-2] + "BB"
	}
	_, err = c.Decrypt(tampered)
	assert.Error(t, err)

	_, err = c.Decrypt(fieldPrefix + "!!!")
	assert.Error(t, err)

	_, err = c.Decrypt(fieldPrefix + "AAAA")
	assert.Error(t, err)
}
