// Package gopan is the top-level pipeline facade (Component E): given a run
// of user text and a face set, it produces the shaped runs a rendering
// backend consumes. The bidi base direction is always left-to-right.
//
// Mirrors the role of the teacher's root gotypst.go as the single package
// entry point tying together the font, itemize, and shape packages.
package gopan

import (
	"errors"
	"fmt"
	"log"
	"unicode/utf8"

	"golang.org/x/text/unicode/bidi"

	"github.com/opentypeset/gopan/font"
	"github.com/opentypeset/gopan/itemize"
	"github.com/opentypeset/gopan/shape"
)

// MaxCodepoints is the fixed working-buffer limit (spec §4.5, §9): inputs
// longer than this are rejected with ErrTooLarge rather than grown
// dynamically, preserving gopan's documented cap.
const MaxCodepoints = 4096

var (
	// ErrBidiFailed is returned when the bidi collaborator reports failure.
	ErrBidiFailed = errors.New("gopan: bidi analysis failed")
	// ErrTooLarge is returned when the input exceeds MaxCodepoints.
	ErrTooLarge = errors.New("gopan: input exceeds maximum codepoint count")
)

// Run is a shaped, itemized slice of the input (spec §3). It is a thin
// alias over itemize.Run so that callers of Analyze don't need to import
// the itemize package directly for the common case.
type Run = itemize.Run

// Utf8ToCodepoints decodes UTF-8 bytes into a codepoint (rune) sequence.
// Invalid sequences decode to utf8.RuneError per the standard library
// decoder, matching the "opaque UTF-8 decoder" collaborator of spec §1.
func Utf8ToCodepoints(b []byte) []rune {
	runes := make([]rune, 0, utf8.RuneCount(b))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		runes = append(runes, r)
		b = b[size:]
	}
	return runes
}

// RunDestroy releases the glyph buffers owned by runs. Go's garbage
// collector reclaims the memory; RunDestroy exists to document and
// preserve the lifecycle contract of spec §5 (every Run owns its glyph
// buffer; run_destroy tears the batch down together) for callers migrating
// from the original's explicit teardown discipline.
func RunDestroy(runs []Run) {
	for i := range runs {
		runs[i].Glyphs = nil
	}
}

// Analyze is the pipeline's single entry point (spec §4.5): it bidi-orders
// codepoints, itemizes them against faces, shapes every run, and returns
// the run array in strictly ascending visual order.
func Analyze(codepoints []rune, faces font.FaceSet, fontSizePx int) ([]Run, error) {
	if len(codepoints) > MaxCodepoints {
		return nil, fmt.Errorf("%w: %d codepoints (limit %d)", ErrTooLarge, len(codepoints), MaxCodepoints)
	}
	if len(codepoints) == 0 {
		return nil, nil
	}

	visual, levels, err := reorder(codepoints)
	if err != nil {
		return nil, err
	}

	runs := itemize.Itemize(visual, levels, faces)
	for i := range runs {
		if runs[i].Font == nil {
			log.Printf("gopan: run [%d,%d) has no covering font", runs[i].Start, runs[i].End)
		}
	}

	shape.NewOrchestrator().ShapeAll(runs, visual, fontSizePx)
	return runs, nil
}

// reorder invokes x/text/unicode/bidi to produce visual-order codepoints
// and per-codepoint embedding levels, standing in for gopan's direct
// fribidi_log2vis call (spec §4.5: "Invoke bidi with base = LTR").
//
// bidi.Run.String() documents that it "returns the text of the run in its
// original order" — x/text/bidi only buckets codepoints into
// direction-tagged runs, it never permutes them. fribidi_log2vis, by
// contrast, actually reverses right-to-left runs when producing visual
// order. reorder reproduces that reversal itself: each RTL run's runes are
// appended back to front, so `visual` is genuine visual order, not just
// logical order relabeled with a level.
//
// x/text/bidi's public API reports direction per run, not fribidi's nested
// numeric embedding levels; since the itemizer and shaper only ever consult
// level parity (even=LTR, odd=RTL), a run's level is taken as 0 for LTR and
// 1 for RTL, which preserves every behavior spec §4.3/§4.4 depend on.
func reorder(codepoints []rune) ([]rune, []int8, error) {
	var p bidi.Paragraph
	p.SetString(string(codepoints), bidi.DefaultDirection(bidi.LeftToRight))
	order, err := p.Order()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrBidiFailed, err)
	}

	visual := make([]rune, 0, len(codepoints))
	levels := make([]int8, 0, len(codepoints))
	for i := 0; i < order.NumRuns(); i++ {
		run := order.Run(i)
		text := []rune(run.String())
		var level int8
		if run.Direction() == bidi.RightToLeft {
			level = 1
			reverseRunes(text)
		}
		visual = append(visual, text...)
		for range text {
			levels = append(levels, level)
		}
	}
	return visual, levels, nil
}

func reverseRunes(rs []rune) {
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		rs[i], rs[j] = rs[j], rs[i]
	}
}
