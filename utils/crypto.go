package utils

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Personal fields (name, email, gender, birth date) are stored encrypted with
// AES-256-GCM under ENCRYPTION_KEY (64 hex chars). Wire format is
// hex(nonce):hex(ciphertext). Rows written before encryption was introduced
// are plain text; DecryptField passes those through unchanged.

var reHex = regexp.MustCompile(`^[0-9a-f]+$`)

func encryptionKey() ([]byte, error) {
	keyHex := os.Getenv("ENCRYPTION_KEY")
	if keyHex == "" {
		return nil, errors.New("ENCRYPTION_KEY is not set")
	}
	key, err := hex.DecodeString(keyHex)
	if err != nil || len(key) != 32 {
		return nil, errors.New("ENCRYPTION_KEY must be 64 hex characters")
	}
	return key, nil
}

func EncryptField(plain string) (string, error) {
	if plain == "" {
		return "", nil
	}
	key, err := encryptionKey()
	if err != nil {
		return "", err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}
	sealed := gcm.Seal(nil, nonce, []byte(plain), nil)
	return fmt.Sprintf("%s:%s", hex.EncodeToString(nonce), hex.EncodeToString(sealed)), nil
}

func DecryptField(stored string) string {
	if !IsEncrypted(stored) {
		return stored
	}
	key, err := encryptionKey()
	if err != nil {
		return stored
	}
	parts := strings.SplitN(stored, ":", 2)
	nonce, err := hex.DecodeString(parts[0])
	if err != nil {
		return stored
	}
	data, err := hex.DecodeString(parts[1])
	if err != nil {
		return stored
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return stored
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil || len(nonce) != gcm.NonceSize() {
		return stored
	}
	plain, err := gcm.Open(nil, nonce, data, nil)
	if err != nil {
		return stored
	}
	return string(plain)
}

func IsEncrypted(s string) bool {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return false
	}
	return len(parts[0]) == 24 && reHex.MatchString(parts[0]) && reHex.MatchString(parts[1])
}

// HashEmail produces the deterministic lookup key for an email address;
// the address itself is stored encrypted and cannot be queried directly.
func HashEmail(email string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(email))))
	return hex.EncodeToString(sum[:])
}
