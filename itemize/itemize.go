// Package itemize implements Component C of the layout pipeline: splitting
// visual-order codepoints into runs of uniform bidi level, script, width
// class, and selected font. Grounded on gopan's gp_itemize (gp.c) walk.
package itemize

import (
	"github.com/go-text/typesetting/shaping"

	"github.com/opentypeset/gopan/eawidth"
	"github.com/opentypeset/gopan/font"
	"github.com/opentypeset/gopan/script"
)

// Run is a contiguous, half-open slice of the visual-order codepoint
// sequence sharing level, script, width class, and font (spec §3).
type Run struct {
	Start, End int
	Level      int8
	Script     script.Script
	Width      eawidth.Class
	Font       *font.Face

	// FontPriority is the index within the face set that produced Font, or
	// the sentinel NoFontPriority if no face covered the run. Scratch field
	// retained from the itemizer's own bookkeeping, not part of the public
	// contract beyond diagnostics.
	FontPriority uint32

	// Ppem and Glyphs are populated by the shaper (Component D); absent
	// (zero/nil) immediately after itemization.
	Ppem   int
	Glyphs *shaping.Output
}

// NoFontPriority is the sentinel priority when no face in the set covers a
// codepoint (spec §4.3).
const NoFontPriority = 0xFFFFFFFF

// isSpace reports whether rune is whitespace per spec §4.3's is_space,
// transcribed from gopan's gp.c (itself modeled on pango's unicode-type
// classes plus U+1680).
func isSpace(r rune) bool {
	switch {
	case r >= 0x0009 && r <= 0x000D:
		return true
	case r == 0x0020, r == 0x0085, r == 0x00A0, r == 0x1680:
		return true
	case r >= 0x2000 && r <= 0x200D:
		return true
	case r == 0x2028, r == 0x2029, r == 0x202F, r == 0x205F, r == 0x3000:
		return true
	}
	return false
}

// isVariantSelector reports whether rune is a variation selector per spec
// §4.3.
func isVariantSelector(r rune) bool {
	return (r >= 0xFE00 && r <= 0xFE0F) || (r >= 0xE0100 && r <= 0xE01EF)
}

// chooseFontFor returns the first (lowest-index) face in faces covering
// rune, and its index as priority. If none covers rune, it returns (nil,
// NoFontPriority).
func chooseFontFor(r rune, faces font.FaceSet) (*font.Face, uint32) {
	for j, f := range faces {
		if f.Coverage.Has(r) {
			return f, uint32(j)
		}
	}
	return nil, NoFontPriority
}

type iterState struct {
	start, at int
	level     int8
	script    script.Script
	width     eawidth.Class
	font      *font.Face
	fontPri   uint32
}

// Itemize walks visual-order codepoints with their per-codepoint bidi
// levels and splits them into Runs per spec §4.3. faces must be
// priority-ordered (index 0 highest priority).
//
// Whitespace and variation selectors never open a run boundary; they
// inherit whatever run they fall inside. Width transitions are one-way:
// once resolved away from Ambiguous, a run does not re-split back into it.
func Itemize(runes []rune, levels []int8, faces font.FaceSet) []Run {
	if len(runes) == 0 {
		return nil
	}

	var iter iterState

	// Leading whitespace is ambiguous; skip it before seeding the iterator.
	for iter.at < len(runes) && isSpace(runes[iter.at]) {
		iter.at++
	}
	if iter.at >= len(runes) {
		// Input is entirely whitespace: a single run with a lazily-chosen
		// (possibly null) font, seeded from the first codepoint.
		iter.at = 0
		iter.width = eawidth.Lookup(runes[0])
		iter.script = script.Lookup(runes[0])
		iter.level = levels[0]
		iter.font, iter.fontPri = chooseFontFor(runes[0], faces)
		return []Run{finalRun(iter, len(runes))}
	}

	// The first run still starts at index 0: the skipped leading whitespace
	// belongs to it.
	iter.start = 0
	iter.width = eawidth.Lookup(runes[iter.at])
	iter.script = script.Lookup(runes[iter.at])
	iter.level = levels[iter.at]
	iter.font, iter.fontPri = chooseFontFor(runes[iter.at], faces)

	var runs []Run

	for ; iter.at < len(runes); iter.at++ {
		r := runes[iter.at]

		// Whitespace and variation selectors are always absorbed by the
		// current run; they never evaluate for a boundary.
		if isSpace(r) || isVariantSelector(r) {
			continue
		}

		if iter.font == nil {
			// Font selection was delayed until the first non-space
			// codepoint; this does not itself count as a change.
			iter.font, iter.fontPri = chooseFontFor(r, faces)
		}

		changed := false

		width := eawidth.Lookup(r)
		if iter.width == eawidth.Ambiguous && width != eawidth.Ambiguous && width != eawidth.Neutral {
			changed = true
		}

		var candidateFont *font.Face
		candidatePri := uint32(NoFontPriority)
		if iter.font != nil {
			candidateFont, candidatePri = chooseFontFor(r, faces)
			if candidatePri < iter.fontPri || !iter.font.Coverage.Has(r) {
				changed = true
			} else {
				candidateFont = nil
			}
		}

		sc := script.Lookup(r)
		if iter.script != sc {
			changed = true
		}

		level := levels[iter.at]
		if iter.level != level {
			changed = true
		}

		if !changed {
			continue
		}

		runs = append(runs, Run{
			Start:        iter.start,
			End:          iter.at,
			Level:        iter.level,
			Script:       iter.script,
			Width:        iter.width,
			Font:         iter.font,
			FontPriority: iter.fontPri,
		})

		iter.start = iter.at
		iter.width = width
		iter.script = sc
		iter.level = level
		iter.font = candidateFont
		iter.fontPri = candidatePri
		if iter.font == nil && !isSpace(r) {
			iter.font, iter.fontPri = chooseFontFor(r, faces)
		}
	}

	runs = append(runs, finalRun(iter, len(runes)))
	return runs
}

func finalRun(iter iterState, end int) Run {
	return Run{
		Start:        iter.start,
		End:          end,
		Level:        iter.level,
		Script:       iter.script,
		Width:        iter.width,
		Font:         iter.font,
		FontPriority: iter.fontPri,
	}
}
