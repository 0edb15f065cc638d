package font

import (
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/opentype/loader"
)

// keyword is one (whole-word, case-insensitive) name-table match and the
// attribute value it implies. Tables below are transcribed verbatim from
// spec §4.1 (itself transcribed from gopan/gp_ttf.c's get_width/get_weight/
// get_slant/get_serif), first match wins, subfamily scanned before style.
type keyword struct {
	word  string
	value float64
}

var slantKeywords = []keyword{
	{"italic", 100},
	{"kursiv", 100},
	{"oblique", 110},
}

var weightKeywords = []keyword{
	{"thin", 0},
	{"extralight", 40},
	{"ultralight", 40},
	{"demilight", 55},
	{"semilight", 55},
	{"light", 50},
	{"book", 75},
	{"regular", 80},
	{"normal", 80},
	{"medium", 100},
	{"demibold", 180},
	{"demi", 180},
	{"semibold", 180},
	{"extrabold", 205},
	{"superbold", 205},
	{"ultrabold", 205},
	{"bold", 200},
	{"ultrablack", 215},
	{"superblack", 215},
	{"extrablack", 215},
	{"ultra", 205},
	{"black", 210},
	{"heavy", 210},
}

var widthKeywords = []keyword{
	{"ultracondensed", 50},
	{"extracondensed", 63},
	{"semicondensed", 87},
	{"condensed", 75},
	{"normal", 100},
	{"semiexpanded", 113},
	{"extraexpanded", 150},
	{"ultraexpanded", 200},
	{"expanded", 125},
	{"extended", 125},
}

var serifKeywords = []keyword{
	{"roman", float64(SerifSerif)},
	{"serif", float64(SerifSerif)},
	{"mincho", float64(SerifSerif)},
	{"pmincho", float64(SerifSerif)},
	{"sun", float64(SerifSerif)},
	{"gothic", float64(SerifSans)},
	{"pgothic", float64(SerifSans)},
	{"hei", float64(SerifSans)},
	{"sans", float64(SerifSans)},
}

// checkKeywords scans s for the first matching whole word in table, or
// returns (0, false) if none match.
func checkKeywords(table []keyword, s string) (float64, bool) {
	for _, k := range table {
		if containsWholeWord(s, k.word) {
			return k.value, true
		}
	}
	return 0, false
}

// checkBoth scans subfamily first, then style, matching spec §4.1's
// "scan the subfamily name first, then the style name" rule.
func checkBoth(table []keyword, subfamily, style string, def float64) float64 {
	if v, ok := checkKeywords(table, subfamily); ok {
		return v
	}
	if v, ok := checkKeywords(table, style); ok {
		return v
	}
	return def
}

func classifySlant(subfamily, style string) float64 {
	return checkBoth(slantKeywords, subfamily, style, SlantUpright)
}

func classifyWeight(subfamily, style string) float64 {
	return checkBoth(weightKeywords, subfamily, style, WeightNormal)
}

func classifyWidth(subfamily, style string) float64 {
	return checkBoth(widthKeywords, subfamily, style, WidthNormal)
}

// classifySerif consults OS/2 PANOSE byte 1 (family kind) first: PANOSE[0]=2
// (Text and Display) with PANOSE[1] in [1,10] means serif, [11,..] means
// sans. Falls back to scanning the family name. See spec §4.1.
func classifySerif(ld *loader.Loader, family string) Serif {
	if ld != nil {
		if data, err := ld.RawTable(loader.MustNewTag("OS/2")); err == nil && len(data) > 43 {
			panose0, panose1 := data[32], data[33]
			if panose0 == 2 {
				switch {
				case panose1 >= 1 && panose1 <= 10:
					return SerifSerif
				case panose1 >= 11:
					return SerifSans
				}
			}
		}
	}
	if v, ok := checkKeywords(serifKeywords, family); ok {
		return Serif(v)
	}
	return SerifUnknown
}

// classifySpacing samples coverage in ascending order, bucketing glyph
// advances into "equal within ±3%" groups, capping at 50 codepoints or all
// BMP codepoints (whichever is larger) and at an advance-bucket cap of 3
// (coverage ≤256) or 7 (coverage >256). See spec §4.1.
func classifySpacing(cov *CoverageSet, handle *gotext.Face) Spacing {
	maxAdvances := 3
	if cov.Len() > 256 {
		maxAdvances = 7
	}

	var advances []float32
	checked := 0
	for _, r := range cov.Sorted() {
		if checked >= 50 && r > 0xFFFF {
			break
		}
		if len(advances) >= maxAdvances {
			break
		}
		gid, ok := handle.NominalGlyph(r)
		if !ok {
			continue
		}
		advance := handle.HorizontalAdvance(gid, nil)
		if advance == 0 {
			continue
		}
		checked++

		matched := false
		for _, a := range advances {
			if within3Percent(a, advance) {
				matched = true
				break
			}
		}
		if !matched {
			advances = append(advances, advance)
		}
	}

	switch {
	case len(advances) == 1:
		return SpacingMono
	case len(advances) < maxAdvances:
		return SpacingDual
	default:
		return SpacingProportional
	}
}

func within3Percent(a, b float32) bool {
	lo, hi := a*0.97, a*1.03
	if lo > hi {
		lo, hi = hi, lo
	}
	return b >= lo && b <= hi
}
