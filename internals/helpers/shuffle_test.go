// file: internals/helpers/shuffle_test.go
package helper

import "testing"

func TestSeededPerm_Deterministic(t *testing.T) {
	a := SeededPerm(20, "exam-1", "student-42")
	b := SeededPerm(20, "exam-1", "student-42")
	if len(a) != 20 || len(b) != 20 {
		t.Fatalf("perm length = %d/%d, want 20", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed parts produced different permutations at %d: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestSeededPerm_IsPermutation(t *testing.T) {
	p := SeededPerm(50, "exam-1", "key")
	seen := make([]bool, 50)
	for _, v := range p {
		if v < 0 || v >= 50 {
			t.Fatalf("index %d out of range", v)
		}
		if seen[v] {
			t.Fatalf("index %d appears twice", v)
		}
		seen[v] = true
	}
}

func TestSeededPerm_KeysDiffer(t *testing.T) {
	a := SeededPerm(30, "exam-1", "student-a")
	b := SeededPerm(30, "exam-1", "student-b")
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different student keys produced identical permutations")
	}
}

func TestSeededPerm_PartBoundariesMatter(t *testing.T) {
	// "ab"+"c" and "a"+"bc" must not collapse to the same seed
	a := SeededPerm(30, "ab", "c")
	b := SeededPerm(30, "a", "bc")
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("part boundaries ignored in seed derivation")
	}
}

func TestSeededPerm_SmallN(t *testing.T) {
	if p := SeededPerm(0, "x"); len(p) != 0 {
		t.Fatalf("n=0: len = %d, want 0", len(p))
	}
	if p := SeededPerm(1, "x"); len(p) != 1 || p[0] != 0 {
		t.Fatalf("n=1: got %v, want [0]", p)
	}
}
