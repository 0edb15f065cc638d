package font

import "testing"

func TestFaceBookAddAndFindByFamily(t *testing.T) {
	book := NewFaceBook()
	primary := makeFace(0, false, false, SpacingProportional, WidthNormal, WeightNormal, SlantUpright, false, SerifSans, 'a')
	primary.Family = "Noto Sans"
	fallback := makeFace(1, true, false, SpacingProportional, WidthNormal, WeightNormal, SlantUpright, false, SerifUnknown, '😀')
	fallback.Family = "Noto Color Emoji"

	book.Add(primary, fallback)

	if book.Len() != 2 {
		t.Fatalf("expected 2 faces, got %d", book.Len())
	}
	found := book.FindByFamily("noto sans")
	if len(found) != 1 || found[0].ID != 0 {
		t.Fatalf("expected to find primary by normalized family, got %+v", found)
	}
}

func TestFaceBookBuildFallbackSetPutsPrimaryFirst(t *testing.T) {
	book := NewFaceBook()
	primary := makeFace(0, false, false, SpacingProportional, WidthNormal, WeightNormal, SlantUpright, false, SerifSans, 'a')
	emoji := makeFace(1, true, false, SpacingProportional, WidthNormal, WeightNormal, SlantUpright, false, SerifUnknown, '😀')

	book.Add(primary, emoji)
	set := book.BuildFallbackSet(primary)

	if len(set) == 0 || set[0].ID != primary.ID {
		t.Fatalf("expected primary face first in fallback set, got %+v", set)
	}
	if len(set) != 2 {
		t.Fatalf("expected primary plus the coverage-adding emoji face, got %d entries", len(set))
	}
}

func TestNormalizeFamilyTrimsCommonSuffixes(t *testing.T) {
	cases := map[string]string{
		"Noto Sans Regular": "noto sans",
		"Noto Sans Normal":  "noto sans",
		"Noto Sans":         "noto sans",
		"  Noto   Sans  ":   "noto sans",
	}
	for in, want := range cases {
		if got := normalizeFamily(in); got != want {
			t.Errorf("normalizeFamily(%q) = %q, want %q", in, got, want)
		}
	}
}
