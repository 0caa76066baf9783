package cryptox

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	ErrEmptyKey          = errors.New("cryptox: empty field key material")
	ErrInvalidCiphertext = errors.New("cryptox: invalid ciphertext")
)

// FieldCipher encrypts short text columns (e.g. email) with AES-128-CBC and
// PKCS#7 padding. Output is base64(iv || ciphertext) with a fresh random IV
// per call, so equal plaintexts encrypt differently.
type FieldCipher struct {
	key []byte
}

// NewFieldCipher derives a 16-byte AES key from keyMaterial using SHA-256.
func NewFieldCipher(keyMaterial []byte) (*FieldCipher, error) {
	if len(keyMaterial) == 0 {
		return nil, ErrEmptyKey
	}
	sum := sha256.Sum256(keyMaterial)
	return &FieldCipher{key: sum[:aes.BlockSize]}, nil
}

// LoadFieldKey returns key material from path when set, otherwise from
// envValue. With neither it generates an ephemeral key and reports that
// through ephemeral; data encrypted with it is unreadable after a restart.
func LoadFieldKey(path, envValue string) (material []byte, ephemeral bool, err error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, false, fmt.Errorf("failed to read field key file: %w", err)
		}
		data = bytes.TrimSpace(data)
		if len(data) == 0 {
			return nil, false, ErrEmptyKey
		}
		return data, false, nil
	}

	if envValue != "" {
		return []byte(envValue), false, nil
	}

	material = make([]byte, 32)
	if _, err := rand.Read(material); err != nil {
		return nil, false, fmt.Errorf("failed to generate ephemeral field key: %w", err)
	}
	return material, true, nil
}

// Encrypt returns the base64 ciphertext of plaintext. Blank input yields "".
func (c *FieldCipher) Encrypt(plaintext string) (string, error) {
	if strings.TrimSpace(plaintext) == "" {
		return "", nil
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", fmt.Errorf("failed to create cipher: %w", err)
	}

	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	out := make([]byte, aes.BlockSize+len(padded))
	iv := out[:aes.BlockSize]
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", fmt.Errorf("failed to generate iv: %w", err)
	}

	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out[aes.BlockSize:], padded)
	return base64.StdEncoding.EncodeToString(out), nil
}

// Decrypt reverses Encrypt. Blank input yields "".
func (c *FieldCipher) Decrypt(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	raw, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidCiphertext, err)
	}
	if len(raw) < 2*aes.BlockSize || len(raw)%aes.BlockSize != 0 {
		return "", ErrInvalidCiphertext
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", fmt.Errorf("failed to create cipher: %w", err)
	}

	iv, body := raw[:aes.BlockSize], raw[aes.BlockSize:]
	plain := make([]byte, len(body))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, body)

	plain, err = pkcs7Unpad(plain, aes.BlockSize)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

func pkcs7Pad(b []byte, size int) []byte {
	n := size - len(b)%size
	return append(b, bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(b []byte, size int) ([]byte, error) {
	if len(b) == 0 || len(b)%size != 0 {
		return nil, ErrInvalidCiphertext
	}
	n := int(b[len(b)-1])
	if n == 0 || n > size {
		return nil, ErrInvalidCiphertext
	}
	for _, p := range b[len(b)-n:] {
		if int(p) != n {
			return nil, ErrInvalidCiphertext
		}
	}
	return b[:len(b)-n], nil
}
