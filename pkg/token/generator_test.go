package token

import (
	"encoding/base64"
	"testing"
)

func TestGenerate(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 3; i++ {
		key, err := Generate()
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}

		raw, err := base64.StdEncoding.DecodeString(key)
		if err != nil {
			t.Fatalf("Generate() returned non-base64 key %q: %v", key, err)
		}
		if len(raw) != DefaultKeyBytes {
			t.Errorf("decoded key length = %d, want %d", len(raw), DefaultKeyBytes)
		}
		if len(key) != 44 {
			t.Errorf("key length = %d, want 44", len(key))
		}

		if seen[key] {
			t.Error("Generate() produced duplicate keys")
		}
		seen[key] = true
	}
}

func TestGenerateWithLength(t *testing.T) {
	tests := []struct {
		name     string
		numBytes int
		wantErr  bool
		wantLen  int
	}{
		{
			name:     "default length",
			numBytes: DefaultKeyBytes,
			wantLen:  44,
		},
		{
			name:     "longer key",
			numBytes: 64,
			wantLen:  88,
		},
		{
			name:     "minimum",
			numBytes: MinKeyBytes,
			wantLen:  24,
		},
		{
			name:     "too short",
			numBytes: MinKeyBytes - 1,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := GenerateWithLength(tt.numBytes)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GenerateWithLength() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && len(key) != tt.wantLen {
				t.Errorf("GenerateWithLength() key length = %d, want %d", len(key), tt.wantLen)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name     string
		provided string
		expected string
		want     bool
	}{
		{"same", "secret-token", "secret-token", true},
		{"different", "secret-token", "secret-tokem", false},
		{"prefix", "secret", "secret-token", false},
		{"empty provided", "", "secret-token", false},
		{"both empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.provided, tt.expected); got != tt.want {
				t.Errorf("Equal(%q, %q) = %v, want %v", tt.provided, tt.expected, got, tt.want)
			}
		})
	}
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint("key-one")
	if len(a) != fingerprintLength {
		t.Errorf("Fingerprint() length = %d, want %d", len(a), fingerprintLength)
	}
	if a != Fingerprint("key-one") {
		t.Error("Fingerprint() not deterministic")
	}
	if a == Fingerprint("key-two") {
		t.Error("Fingerprint() same for different keys")
	}
}

func BenchmarkGenerate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Generate()
	}
}

func BenchmarkEqual(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Equal("benchmark-token-value", "benchmark-token-value")
	}
}
