package render

import (
	"testing"

	"github.com/go-text/typesetting/opentype/api"
	"golang.org/x/image/math/fixed"
)

func TestClassifyGlyphPathOutline(t *testing.T) {
	path := classifyGlyphPath(api.GlyphOutline{})
	if path.Kind != GlyphPathOutline {
		t.Fatalf("expected GlyphPathOutline, got %v", path.Kind)
	}
}

func TestClassifyGlyphPathPngBitmap(t *testing.T) {
	path := classifyGlyphPath(api.GlyphBitmap{Format: api.PNG})
	if path.Kind != GlyphPathPngBitmap {
		t.Fatalf("expected GlyphPathPngBitmap, got %v", path.Kind)
	}
}

func TestClassifyGlyphPathMonoBitmap(t *testing.T) {
	path := classifyGlyphPath(api.GlyphBitmap{Format: api.BlackAndWhite})
	if path.Kind != GlyphPathMonoBitmap {
		t.Fatalf("expected GlyphPathMonoBitmap, got %v", path.Kind)
	}
}

func TestClassifyGlyphPathNone(t *testing.T) {
	path := classifyGlyphPath(nil)
	if path.Kind != GlyphPathNone {
		t.Fatalf("expected GlyphPathNone, got %v", path.Kind)
	}
}

func TestAlignPixelsRoundsTowardNearest(t *testing.T) {
	cases := map[float64]float64{
		1.2:  1,
		1.5:  2,
		1.8:  2,
		-1.2: -1,
		-1.8: -2,
	}
	for in, want := range cases {
		if got := alignPixels(in); got != want {
			t.Errorf("alignPixels(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestFixedToFloat(t *testing.T) {
	if got := fixedToFloat(fixed.I(10)); got != 10 {
		t.Errorf("fixedToFloat(fixed.I(10)) = %v, want 10", got)
	}
}
