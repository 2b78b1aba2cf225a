package utils

import (
	"strings"
	"testing"
)

const testKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func TestEncryptDecryptRoundtrip(t *testing.T) {
	t.Setenv("ENCRYPTION_KEY", testKey)

	plain := "Sebastián Osorio"
	enc, err := EncryptField(plain)
	if err != nil {
		t.Fatalf("EncryptField: %v", err)
	}
	if enc == plain {
		t.Fatal("ciphertext equals plaintext")
	}
	if !IsEncrypted(enc) {
		t.Fatalf("IsEncrypted(%q) = false", enc)
	}
	if got := DecryptField(enc); got != plain {
		t.Fatalf("roundtrip: got %q, want %q", got, plain)
	}
}

func TestEncryptField_RandomNonce(t *testing.T) {
	t.Setenv("ENCRYPTION_KEY", testKey)

	a, err := EncryptField("same input")
	if err != nil {
		t.Fatal(err)
	}
	b, err := EncryptField("same input")
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Fatal("two encryptions of the same input must differ")
	}
}

func TestDecryptField_PlainTextPassthrough(t *testing.T) {
	t.Setenv("ENCRYPTION_KEY", testKey)

	// legacy rows written before field encryption
	for _, s := range []string{"Plain Name", "someone@example.com", "", "a:b"} {
		if got := DecryptField(s); got != s {
			t.Errorf("DecryptField(%q) = %q, want passthrough", s, got)
		}
	}
}

func TestDecryptField_TamperedCiphertext(t *testing.T) {
	t.Setenv("ENCRYPTION_KEY", testKey)

	enc, err := EncryptField("secret")
	if err != nil {
		t.Fatal(err)
	}
	tampered := enc[:len(enc)-2] + "00"
	if tampered == enc {
		tampered = enc[:len(enc)-2] + "11"
	}
	// GCM auth failure falls back to returning the stored value untouched
	if got := DecryptField(tampered); got == "secret" {
		t.Fatal("tampered ciphertext must not decrypt")
	}
}

func TestEncryptField_MissingKey(t *testing.T) {
	t.Setenv("ENCRYPTION_KEY", "")
	if _, err := EncryptField("x"); err == nil {
		t.Fatal("expected error without ENCRYPTION_KEY")
	}
}

func TestHashEmail_Normalizes(t *testing.T) {
	a := HashEmail("User@Example.COM")
	b := HashEmail("  user@example.com ")
	if a != b {
		t.Fatal("hash must be case and whitespace insensitive")
	}
	if len(a) != 64 || !strings.EqualFold(a, strings.ToLower(a)) {
		t.Fatalf("unexpected hash format: %q", a)
	}
}
