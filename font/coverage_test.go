package font

import "testing"

func TestCoverageSetAddHasLen(t *testing.T) {
	cov := NewCoverageSet()
	if cov.Len() != 0 {
		t.Fatalf("expected empty set, got len %d", cov.Len())
	}
	cov.Add('a')
	cov.Add('b')
	if cov.Len() != 2 {
		t.Fatalf("expected len 2, got %d", cov.Len())
	}
	if !cov.Has('a') || cov.Has('z') {
		t.Fatalf("unexpected membership: Has('a')=%v Has('z')=%v", cov.Has('a'), cov.Has('z'))
	}
}

func TestCoverageSetIsSubsetOf(t *testing.T) {
	small := NewCoverageSet()
	small.Add('a')
	big := NewCoverageSet()
	big.Add('a')
	big.Add('b')

	if !small.IsSubsetOf(big) {
		t.Error("expected small to be a subset of big")
	}
	if big.IsSubsetOf(small) {
		t.Error("expected big not to be a subset of small")
	}
}

func TestCoverageSetUnion(t *testing.T) {
	a := NewCoverageSet()
	a.Add('a')
	b := NewCoverageSet()
	b.Add('b')
	a.Union(b)

	if !a.Has('a') || !a.Has('b') {
		t.Fatalf("expected union to contain both runes, got %+v", a.Sorted())
	}
}

func TestCoverageSetCloneIsIndependent(t *testing.T) {
	a := NewCoverageSet()
	a.Add('a')
	clone := a.Clone()
	clone.Add('b')

	if a.Has('b') {
		t.Error("mutating the clone should not affect the original")
	}
}

func TestCoverageSetSortedOrder(t *testing.T) {
	cov := NewCoverageSet()
	for _, r := range []rune{'c', 'a', 'b'} {
		cov.Add(r)
	}
	sorted := cov.Sorted()
	want := []rune{'a', 'b', 'c'}
	if len(sorted) != len(want) {
		t.Fatalf("expected %d runes, got %d", len(want), len(sorted))
	}
	for i := range want {
		if sorted[i] != want[i] {
			t.Fatalf("expected sorted order %v, got %v", want, sorted)
		}
	}
}
