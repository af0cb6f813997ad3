// file: internals/features/exams/service/publish_service_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
)

func TestShareableURL(t *testing.T) {
	id := uuid.MustParse("7a97a6a2-33a8-45a8-9c40-6f2f0b02a0b1")
	got := ShareableURL("https://quiz.example.com", id, "AB12CD34")
	want := "https://quiz.example.com/exam/7a97a6a2-33a8-45a8-9c40-6f2f0b02a0b1?code=AB12CD34"
	if got != want {
		t.Fatalf("ShareableURL = %q, want %q", got, want)
	}
}
