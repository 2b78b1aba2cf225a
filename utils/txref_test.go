package utils

import (
	"strings"
	"testing"
)

func TestGenerateTransactionRef(t *testing.T) {
	ref := GenerateTransactionRef(42)
	if !strings.HasPrefix(ref, "HAB-") {
		t.Fatalf("unexpected prefix: %q", ref)
	}
	if !strings.HasSuffix(ref, "42") {
		t.Fatalf("ref should end with user id: %q", ref)
	}
	// HAB- + 6 digit nano part + 3 digit random part + user id
	if len(ref) != len("HAB-")+6+3+2 {
		t.Fatalf("unexpected ref length: %q", ref)
	}
}
