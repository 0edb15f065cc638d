package font

import "testing"

func makeFace(id uint64, color, variable bool, spacing Spacing, width, weight, slant float64, ui bool, serif Serif, runes ...rune) *Face {
	cov := NewCoverageSet()
	for _, r := range runes {
		cov.Add(r)
	}
	return &Face{
		ID:         id,
		Coverage:   cov,
		Color:      color,
		Scalable:   true,
		Spacing:    spacing,
		Variable:   variable,
		Width:      width,
		Weight:     weight,
		Slant:      slant,
		UI:         ui,
		SerifClass: serif,
	}
}

func TestCompareFontsIdenticalAttributesScoresHigh(t *testing.T) {
	target := makeFace(0, false, false, SpacingProportional, WidthNormal, WeightNormal, SlantUpright, false, SerifSans, 'a')
	same := makeFace(1, false, false, SpacingProportional, WidthNormal, WeightNormal, SlantUpright, false, SerifSans, 'a')
	different := makeFace(2, false, false, SpacingMono, 50, 200, 100, true, SerifSerif, 'a')

	scoreSame := CompareFonts(target, same)
	scoreDifferent := CompareFonts(target, different)

	if scoreSame <= scoreDifferent {
		t.Fatalf("expected identical attributes to score higher: same=%d different=%d", scoreSame, scoreDifferent)
	}
}

func TestCompareFontsColorInversion(t *testing.T) {
	// A fallback differing in color trait from the target scores the color
	// bit higher, not lower — the documented inversion (spec §4.2): a text
	// face leans on a fallback for what it lacks (e.g. emoji coverage).
	target := makeFace(0, false, false, SpacingProportional, WidthNormal, WeightNormal, SlantUpright, false, SerifSans, 'a')
	colorFallback := makeFace(1, true, false, SpacingProportional, WidthNormal, WeightNormal, SlantUpright, false, SerifSans, 'a')
	monoFallback := makeFace(2, false, false, SpacingProportional, WidthNormal, WeightNormal, SlantUpright, false, SerifSans, 'a')

	scoreColor := CompareFonts(target, colorFallback)
	scoreMono := CompareFonts(target, monoFallback)
	if scoreColor <= scoreMono {
		t.Fatalf("expected color-differing fallback to score higher: color=%d mono=%d", scoreColor, scoreMono)
	}
}

func TestSortFaceSetPrunesRedundantCoverage(t *testing.T) {
	target := makeFace(0, false, false, SpacingProportional, WidthNormal, WeightNormal, SlantUpright, false, SerifSans, 'a', 'b')

	// redundant covers nothing beyond target; extra adds 'c'.
	redundant := makeFace(1, false, false, SpacingProportional, WidthNormal, WeightNormal, SlantUpright, false, SerifSans, 'a')
	extra := makeFace(2, false, false, SpacingProportional, WidthNormal, WeightNormal, SlantUpright, false, SerifSans, 'c')

	set := FaceSet{redundant, extra}
	pruned := SortFaceSet(set, target)

	if len(pruned) != 1 || pruned[0].ID != 2 {
		t.Fatalf("expected only the coverage-adding face to survive pruning, got %+v", pruned)
	}
}

func TestSortFaceSetOrdersDescendingByScore(t *testing.T) {
	target := makeFace(0, false, false, SpacingProportional, WidthNormal, WeightNormal, SlantUpright, false, SerifSans, 'a')
	closeFace := makeFace(1, false, false, SpacingProportional, WidthNormal, WeightNormal, SlantUpright, false, SerifSans, 'b')
	farFace := makeFace(2, false, false, SpacingMono, 50, 200, 100, true, SerifSerif, 'c')

	set := FaceSet{farFace, closeFace}
	pruned := SortFaceSet(set, target)

	if len(pruned) != 2 {
		t.Fatalf("expected both faces to survive (disjoint coverage), got %d", len(pruned))
	}
	if pruned[0].ID != 1 {
		t.Fatalf("expected closer-scoring face first, got order %+v", pruned)
	}
}
