// Package vault protects card secrets at rest. Numbers are sealed with
// AES-GCM and indexed with an HMAC so a card can be found by number without
// decrypting every row. CVVs are stored as bcrypt hashes.
package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/hkdf"
)

var (
	ErrShortKey   = errors.New("vault: CARD_ENCRYPTION_KEY must be at least 16 bytes")
	ErrCiphertext = errors.New("vault: malformed ciphertext")
)

type Vault struct {
	aead     cipher.AEAD
	indexKey []byte
	cost     int
}

// New derives the sealing and index keys from secret.
func New(secret string) (*Vault, error) {
	if len(secret) < 16 {
		return nil, ErrShortKey
	}
	sealKey, err := derive(secret, "card-number-seal")
	if err != nil {
		return nil, err
	}
	indexKey, err := derive(secret, "card-number-index")
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(sealKey)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &Vault{aead: aead, indexKey: indexKey, cost: bcrypt.DefaultCost}, nil
}

// WithCost sets the bcrypt cost used for CVVs.
func (v *Vault) WithCost(cost int) *Vault {
	v.cost = cost
	return v
}

func (v *Vault) Seal(plain string) (string, error) {
	nonce := make([]byte, v.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}
	out := v.aead.Seal(nonce, nonce, []byte(plain), nil)
	return base64.StdEncoding.EncodeToString(out), nil
}

func (v *Vault) Open(sealed string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCiphertext, err)
	}
	n := v.aead.NonceSize()
	if len(raw) < n {
		return "", ErrCiphertext
	}
	plain, err := v.aead.Open(nil, raw[:n], raw[n:], nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCiphertext, err)
	}
	return string(plain), nil
}

// Index returns a deterministic lookup key for a card number.
func (v *Vault) Index(number string) string {
	mac := hmac.New(sha256.New, v.indexKey)
	mac.Write([]byte(number))
	return hex.EncodeToString(mac.Sum(nil))
}

func (v *Vault) HashCVV(cvv string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(cvv), v.cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func (v *Vault) CheckCVV(hash, cvv string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(cvv)) == nil
}

func derive(secret, info string) ([]byte, error) {
	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(info)), key); err != nil {
		return nil, err
	}
	return key, nil
}
