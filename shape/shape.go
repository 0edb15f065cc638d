// Package shape implements Component D, the Shaper Orchestrator: for each
// itemized Run it materializes segment properties, invokes the external
// OpenType shaper, and attaches the resulting glyph buffer to the run.
//
// Grounded on gopan's shape_runs (gp.c) for the orchestration sequence, and
// on the teacher's layout/inline shaping.go for the go-text/typesetting
// call shape (shaping.Input / shaping.HarfbuzzShaper).
package shape

import (
	"log"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/opentypeset/gopan/itemize"
)

// designScale is the fixed power-of-two HarfBuzz design-space scale gopan
// sets on every font via hb_font_set_scale before shaping (gp.c's
// GP_SHAPE_SCALE); kept here purely as the documented constant the spec
// names, since go-text/typesetting's HarfbuzzShaper derives its internal
// scale from the face's own units-per-em and does not expose a separate
// knob for it.
const designScale = 2048

// Orchestrator shapes itemized runs in place. It is not safe for concurrent
// use — the underlying shaping.HarfbuzzShaper carries a mutable scratch
// buffer, matching the core's single-threaded execution model (spec §5).
type Orchestrator struct {
	shaper shaping.HarfbuzzShaper
}

// NewOrchestrator returns a ready-to-use Orchestrator.
func NewOrchestrator() *Orchestrator {
	return &Orchestrator{}
}

// ShapeAll shapes every run in runs against the visual-order codepoints
// they were itemized from, setting run.Ppem and run.Glyphs (spec §4.4).
// fontSizePx is the caller-supplied pixel size; 0 disables hinting.
func (o *Orchestrator) ShapeAll(runs []itemize.Run, codepoints []rune, fontSizePx int) {
	for i := range runs {
		o.shapeOne(&runs[i], codepoints, fontSizePx)
	}
}

func (o *Orchestrator) shapeOne(run *itemize.Run, codepoints []rune, fontSizePx int) {
	if run.Font == nil {
		// NoCoveringFont (spec §7): recorded on the run, logged, does not
		// abort the pipeline.
		log.Printf("shape: run [%d,%d) has no covering font, skipping", run.Start, run.End)
		return
	}

	text := append([]rune(nil), codepoints[run.Start:run.End]...)

	direction := di.DirectionLTR
	if run.Level%2 != 0 {
		direction = di.DirectionRTL
	}

	// The caller has already visualized the codepoints via bidi; HarfBuzz
	// expects logical order, so an RTL run must be reversed back before
	// shaping (spec §4.4).
	if direction == di.DirectionRTL {
		reverse(text)
	}

	input := shaping.Input{
		Text:      text,
		RunStart:  0,
		RunEnd:    len(text),
		Direction: direction,
		Face:      run.Font.Handle,
		Size:      fixed.I(fontSizePx),
		Script:    run.Script,
		Language:  language.NewLanguage("und"),
	}

	output := o.shaper.Shape(input)
	run.Glyphs = &output
	run.Ppem = fontSizePx
}

func reverse(rs []rune) {
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		rs[i], rs[j] = rs[j], rs[i]
	}
}
