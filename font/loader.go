package font

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	gotext "github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/opentype/loader"
)

// FromFile loads a single face from a font file on disk.
func FromFile(path string, faceIndex int) (*Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("font: read %q: %w", path, err)
	}
	return FromBlob(data, faceIndex)
}

// FromBlob loads the face at faceIndex from an in-memory font blob
// (TTF/OTF, or a TTC/OTC collection). See spec §4.1.
func FromBlob(blob []byte, faceIndex int) (*Face, error) {
	handle, ld, err := parseFaceAndLoader(blob, faceIndex)
	if err != nil {
		return nil, err
	}

	family, style, subfamily := names(handle)

	f := &Face{
		Handle:    handle,
		Coverage:  collectCoverage(handle),
		ID:        computeID(blob),
		Family:    family,
		Style:     style,
		Subfamily: subfamily,
	}
	if f.Coverage.Len() == 0 {
		return nil, fmt.Errorf("%w: empty coverage", ErrInvalidFont)
	}

	f.Color = hasAnyTable(ld, "COLR", "CBDT", "sbix")
	f.Scalable = hasAnyTable(ld, "glyf", "CFF ", "CFF2")
	f.Spacing = classifySpacing(f.Coverage, handle)
	f.Variable = hasVariations(handle)

	// spec §4.1: scan the subfamily name first, then the style name.
	f.Width = classifyWidth(subfamily, style)
	f.Weight = classifyWeight(subfamily, style)
	f.Slant = classifySlant(subfamily, style)
	f.UI = containsWholeWord(family, "ui")
	f.SerifClass = classifySerif(ld, family)

	return f, nil
}

// parseFaceAndLoader parses blob as either a TrueType collection or a single
// sfnt font, returning the shaping-ready face handle alongside the raw
// table-directory loader used for classification (spec §4.1's "present and
// non-empty" table checks).
func parseFaceAndLoader(blob []byte, faceIndex int) (*gotext.Face, *loader.Loader, error) {
	if len(blob) < 4 {
		return nil, nil, fmt.Errorf("%w: blob too short", ErrInvalidFont)
	}

	if isTTC(blob) {
		faces, err := gotext.ParseTTC(bytes.NewReader(blob))
		if err != nil {
			return nil, nil, fmt.Errorf("%w: parse TTC: %v", ErrInvalidFont, err)
		}
		if faceIndex < 0 || faceIndex >= len(faces) {
			return nil, nil, fmt.Errorf("%w: face index %d out of range (%d faces)", ErrInvalidFont, faceIndex, len(faces))
		}
		loaders, err := ot.NewLoaders(bytes.NewReader(blob))
		if err != nil || faceIndex >= len(loaders) {
			return nil, nil, fmt.Errorf("%w: parse TTC table directory: %v", ErrInvalidFont, err)
		}
		return faces[faceIndex], loaders[faceIndex], nil
	}

	face, err := gotext.ParseTTF(bytes.NewReader(blob))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: parse sfnt: %v", ErrInvalidFont, err)
	}
	ld, err := ot.NewLoader(bytes.NewReader(blob))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: parse table directory: %v", ErrInvalidFont, err)
	}
	return face, ld, nil
}

func isTTC(blob []byte) bool {
	return len(blob) >= 4 && string(blob[:4]) == "ttcf"
}

func names(handle *gotext.Face) (family, style, subfamily string) {
	if handle == nil || handle.Font == nil {
		return "", "", ""
	}
	desc := handle.Font.Describe()
	family = desc.Family
	style = desc.Aspect.Style.String()
	// Name ID 17 (typographic subfamily) isn't separately exposed by
	// Describe(); the style string stands in for it, so classification
	// still scans "subfamily, then style" per spec §4.1, just with the
	// same value on both passes when no richer subfamily is available.
	subfamily = style
	return
}

func collectCoverage(handle *gotext.Face) *CoverageSet {
	cov := NewCoverageSet()
	if handle == nil || handle.Font == nil {
		return cov
	}
	iter := handle.Font.Cmap.Iter()
	for iter.Next() {
		r, _ := iter.Char()
		cov.Add(r)
	}
	return cov
}

func hasAnyTable(ld *loader.Loader, tags ...string) bool {
	if ld == nil {
		return false
	}
	for _, t := range tags {
		data, err := ld.RawTable(loader.MustNewTag(t))
		if err == nil && len(data) > 0 {
			return true
		}
	}
	return false
}

func hasVariations(handle *gotext.Face) bool {
	if handle == nil {
		return false
	}
	return len(handle.NormalizeVariations(nil)) > 0
}

// computeID hashes the font's table directory (tag, checksum, length per
// record), or the first 500 bytes if no directory is present, folding each
// big-endian word with `id = id*37 + word`. See spec §4.1.
func computeID(blob []byte) uint64 {
	if len(blob) < 4 {
		return 0
	}
	const sfntTrue = 0x00010000
	const sfntOTTO = 0x4F54544F // 'OTTO'
	tag := be32(blob, 0)
	if tag == sfntTrue || tag == sfntOTTO {
		if len(blob) < 12 {
			return 0
		}
		numTables := int(be16(blob, 4))
		return computeIDFromDirectory(blob, numTables, 12)
	}
	if len(blob) >= 500 {
		var id uint64
		for i := 0; i < 500; i++ {
			id = id*37 + uint64(blob[i])
		}
		return id
	}
	return 0
}

// computeIDFromDirectory folds (tag, checksum, length) per table record.
func computeIDFromDirectory(blob []byte, numTables, dirOffset int) uint64 {
	var id uint64
	for i := 0; i < numTables; i++ {
		recOff := dirOffset + i*16
		if recOff+16 > len(blob) {
			break
		}
		tagWord := be32(blob, recOff)
		checksum := be32(blob, recOff+4)
		length := be32(blob, recOff+12)
		id = id*37 + uint64(tagWord)
		id = id*37 + uint64(checksum)
		id = id*37 + uint64(length)
	}
	return id
}

func be32(b []byte, off int) uint32 {
	return uint32(b[off])<<24 | uint32(b[off+1])<<16 | uint32(b[off+2])<<8 | uint32(b[off+3])
}

func be16(b []byte, off int) uint16 {
	return uint16(b[off])<<8 | uint16(b[off+1])
}

// containsWholeWord reports whether target appears in s as a case-insensitive
// whole word: preceded by string start or a space, followed by a space or
// string end (spec §4.1).
func containsWholeWord(s, target string) bool {
	lower := strings.ToLower(s)
	target = strings.ToLower(target)
	for i := 0; i+len(target) <= len(lower); i++ {
		if lower[i:i+len(target)] != target {
			continue
		}
		startOK := i == 0 || lower[i-1] == ' '
		end := i + len(target)
		endOK := end == len(lower) || lower[end] == ' '
		if startOK && endOK {
			return true
		}
	}
	return false
}
