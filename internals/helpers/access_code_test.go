// file: internals/helpers/access_code_test.go
package helper

import "testing"

func TestGenerateAccessCode_Shape(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := GenerateAccessCode()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(code) != AccessCodeLength {
			t.Fatalf("len(%q) = %d, want %d", code, len(code), AccessCodeLength)
		}
		for _, r := range code {
			if !((r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')) {
				t.Fatalf("code %q contains %q outside [A-Z0-9]", code, r)
			}
		}
	}
}

func TestGenerateAccessCode_NotConstant(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := GenerateAccessCode()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		seen[code] = true
	}
	if len(seen) < 2 {
		t.Fatal("50 generated codes collapsed to a single value")
	}
}
