package codes

import (
	"strings"
	"testing"
)

func TestGenerateAccessCode(t *testing.T) {
	seen := make(map[string]struct{})

	for i := 0; i < 100; i++ {
		code, err := GenerateAccessCode()
		if err != nil {
			t.Fatalf("GenerateAccessCode() error = %v", err)
		}
		if len(code) != AccessCodeLength {
			t.Fatalf("code %q has length %d, want %d", code, len(code), AccessCodeLength)
		}
		for _, r := range code {
			if !strings.ContainsRune(charsetLowerHex, r) {
				t.Fatalf("code %q contains %q outside the charset", code, r)
			}
		}
		seen[code] = struct{}{}
	}

	// 100 draws from a 16^8 space should not collide
	if len(seen) < 95 {
		t.Errorf("expected mostly unique codes, got %d unique of 100", len(seen))
	}
}

func TestGenerateCode(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		charset string
		wantErr bool
	}{
		{"valid", 8, "abc123", false},
		{"zero length", 0, "abc", true},
		{"negative length", -1, "abc", true},
		{"empty charset", 8, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := GenerateCode(tt.length, tt.charset)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GenerateCode() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && len(code) != tt.length {
				t.Errorf("code %q has length %d, want %d", code, len(code), tt.length)
			}
		})
	}
}

func TestNormalizeCode(t *testing.T) {
	if got := NormalizeCode("  3F9A10CC \n"); got != "3f9a10cc" {
		t.Errorf("NormalizeCode() = %q, want %q", got, "3f9a10cc")
	}
}

func TestConfigGenerate(t *testing.T) {
	cfg := Config{AccessCodeLength: 12, Charset: "xyz789"}

	code, err := cfg.Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(code) != 12 {
		t.Errorf("code length = %d, want 12", len(code))
	}

	// Zero-value config falls back to defaults
	code, err = Config{}.Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(code) != AccessCodeLength {
		t.Errorf("default code length = %d, want %d", len(code), AccessCodeLength)
	}
}
