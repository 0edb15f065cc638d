// Package font implements font face loading, classification, and
// fallback-set scoring for the gopan text-layout engine.
//
// It handles:
//   - Loading faces from TTF/OTF/TTC blobs via go-text/typesetting
//   - Deriving coverage, a stable id, and classification attributes per face
//   - Scoring and pruning a fallback FaceSet against a target face
//   - Discovering fonts from system directories (ambient, outside the core)
package font

import (
	"errors"

	gotext "github.com/go-text/typesetting/font"
)

// ErrInvalidFont is returned when a blob cannot be parsed as a font.
var ErrInvalidFont = errors.New("font: invalid or unrecognized font blob")

// Spacing classifies the advance-width distribution of a face's coverage.
type Spacing uint8

const (
	SpacingMono         Spacing = 1
	SpacingDual         Spacing = 2
	SpacingProportional Spacing = 3
)

// Serif classifies the PANOSE/family-name serif hint of a face.
type Serif uint8

const (
	SerifUnknown Serif = 0
	SerifSans    Serif = 1
	SerifSerif   Serif = 2
)

// Normal defaults for width/weight/slant, per spec §4.1.
const (
	WidthNormal  = 100.0
	WeightNormal = 80.0
	SlantUpright = 0.0
)

// Face is an immutable record of a loaded font face.
//
// Faces are produced by FromBlob/FromFile and are safe to share across
// concurrent readers so long as no caller destroys a face concurrently
// with a reader (spec §5). Score is scratch space owned by the Scorer and
// must not be read concurrently with a SortFaceSet call.
type Face struct {
	// Handle is the underlying go-text/typesetting face used for coverage
	// queries, table access, and shaping.
	Handle *gotext.Face

	// Coverage is the set of codepoints this face can render, computed once
	// at load time.
	Coverage *CoverageSet

	// ID is a 64-bit fingerprint derived from the font's table directory
	// (or first 500 bytes, or zero), per spec §4.1.
	ID uint64

	// Score is scratch space written by CompareFonts/SortFaceSet. It is not
	// an intrinsic property of the face.
	Score uint64

	Family   string
	Style    string // raw subfamily/style name, used for classification
	Subfamily string // set to the same value as Style by FromBlob; name ID 17 is not read

	Color    bool
	Scalable bool
	Spacing  Spacing
	Variable bool
	Width    float64
	Weight   float64
	Slant    float64
	UI       bool
	SerifClass Serif
}
