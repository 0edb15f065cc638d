package font

import "sort"

// FaceSet is a contiguous, priority-ordered sequence of Faces; index 0 is
// the highest priority. See spec §3.
type FaceSet []*Face

// CompareFonts scores how close candidate is to target, for building a
// fallback chain. Higher is better. The bitfield layout below matches
// spec §4.2 / gopan's gp_compare_fonts exactly, so that sorting by this
// value alone reproduces the original ordering.
//
// Note the deliberate inversion on color: a fallback is scored higher when
// it differs from the target's color trait, since a text face is expected
// to lean on a fallback for what it lacks (e.g. emoji).
func CompareFonts(target, candidate *Face) uint64 {
	color := boolBit(target.Color != candidate.Color)
	scalable := boolBit(target.Scalable == candidate.Scalable)
	spacing := boolBit(target.Spacing == candidate.Spacing)
	variable := boolBit(target.Variable == candidate.Variable)

	var widthDiff, weightDiff, slantDiff float64
	switch {
	case candidate.Variable:
		// Variable fonts are assumed to cover the whole design space.
		widthDiff, weightDiff, slantDiff = 0, 0, 0
	case target.Variable:
		widthDiff = absf(WidthNormal - candidate.Width)
		weightDiff = absf(WeightNormal - candidate.Weight)
		slantDiff = absf(SlantUpright - candidate.Slant)
	default:
		widthDiff = absf(target.Width - candidate.Width)
		weightDiff = absf(target.Weight - candidate.Weight)
		slantDiff = absf(target.Slant - candidate.Slant)
	}

	width := invertByte(widthDiff / 20.0)
	weight := invertByte(weightDiff / 5.0)
	slant := invertByte(slantDiff / 10.0)

	ui := boolBit(target.UI == candidate.UI)
	serif := boolBit(target.SerifClass == candidate.SerifClass)

	return color<<30 + scalable<<29 + spacing<<28 + variable<<27 +
		uint64(width)<<26 + uint64(weight)<<18 + uint64(slant)<<10 +
		ui<<2 + serif<<1
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

func absf(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// invertByte buckets a distance into a byte and returns its ones-complement,
// so that a smaller distance yields a larger byte value.
func invertByte(bucketed float64) uint8 {
	if bucketed < 0 {
		bucketed = 0
	}
	if bucketed > 255 {
		bucketed = 255
	}
	return ^uint8(bucketed)
}

// SortFaceSet scores every face in set against target, sorts descending by
// score, then prunes faces whose coverage adds nothing beyond the
// already-accepted faces (spec §4.2). It mutates set in place and returns
// the (possibly shorter) retained slice.
func SortFaceSet(set FaceSet, target *Face) FaceSet {
	for _, f := range set {
		f.Score = CompareFonts(target, f)
	}

	sort.SliceStable(set, func(i, j int) bool {
		return set[i].Score > set[j].Score
	})

	totalCoverage := target.Coverage.Clone()
	fallbackFaces := 0
	for i := 0; i < len(set); i++ {
		if set[i].Coverage.IsSubsetOf(totalCoverage) {
			continue
		}
		totalCoverage.Union(set[i].Coverage)
		if fallbackFaces != i {
			set[fallbackFaces], set[i] = set[i], set[fallbackFaces]
		}
		fallbackFaces++
	}

	return set[:fallbackFaces]
}

// NewEmojiFallbackSet sorts candidates against a synthetic, non-color
// target derived from face, so that under CompareFonts' color inversion
// color-capable faces are preferred first in the returned chain. This
// restores gopan.c's `load_fonts(..., with_color=true)` behavior: a second,
// emoji-biased fallback chain built from the same candidate pool (see
// SPEC_FULL.md §4).
func NewEmojiFallbackSet(face *Face, candidates FaceSet) FaceSet {
	target := *face
	target.Color = false
	cp := make(FaceSet, len(candidates))
	copy(cp, candidates)
	return SortFaceSet(cp, &target)
}
