package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// fieldPrefix marks values written by AESFieldCipher so plaintext rows
// stored before encryption was enabled are recognized on read.
const fieldPrefix = "enc:v1:"

// AESFieldCipher implements ports.EncryptionService with AES-256-GCM. It
// protects bank account numbers and IBANs at rest.
type AESFieldCipher struct {
	aead cipher.AEAD
}

// NewAESFieldCipher takes a 64-character hex key (32 bytes decoded).
func NewAESFieldCipher(hexKey string) (*AESFieldCipher, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("decoding AES key: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("AES key must be 32 bytes, got %d", len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("creating GCM: %w", err)
	}
	return &AESFieldCipher{aead: aead}, nil
}

// Encrypt returns fieldPrefix + base64(nonce || ciphertext).
func (c *AESFieldCipher) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("generating nonce: %w", err)
	}
	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return fieldPrefix + base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt reverses Encrypt. Values without the prefix are returned as is.
func (c *AESFieldCipher) Decrypt(value string) (string, error) {
	encoded, ok := strings.CutPrefix(value, fieldPrefix)
	if !ok {
		return value, nil
	}
	sealed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("decoding ciphertext: %w", err)
	}
	n := c.aead.NonceSize()
	if len(sealed) < n {
		return "", errors.New("ciphertext too short")
	}
	plaintext, err := c.aead.Open(nil, sealed[:n], sealed[n:], nil)
	if err != nil {
		return "", fmt.Errorf("decrypting: %w", err)
	}
	return string(plaintext), nil
}
