package font

import "testing"

func TestContainsWholeWord(t *testing.T) {
	cases := []struct {
		s, target string
		want      bool
	}{
		{"Noto Sans UI", "ui", true},
		{"Noto Sans UI", "UI", true},
		{"Noto Sans UIX", "ui", false},
		{"UI", "ui", true},
		{"Segoe UI Light", "ui", true},
		{"SegoeUI", "ui", false},
	}
	for _, c := range cases {
		if got := containsWholeWord(c.s, c.target); got != c.want {
			t.Errorf("containsWholeWord(%q, %q) = %v, want %v", c.s, c.target, got, c.want)
		}
	}
}

func TestClassifyWeightScansSubfamilyBeforeStyle(t *testing.T) {
	// "Bold" in subfamily should win even if style says something else.
	got := classifyWeight("Bold", "Condensed")
	if got != 200 {
		t.Errorf("expected bold weight 200, got %v", got)
	}
}

func TestClassifyWeightFallsBackToStyle(t *testing.T) {
	got := classifyWeight("", "Light Italic")
	if got != 50 {
		t.Errorf("expected light weight 50, got %v", got)
	}
}

func TestClassifyWeightDefaultsToNormal(t *testing.T) {
	got := classifyWeight("Foo", "Bar")
	if got != WeightNormal {
		t.Errorf("expected default weight %v, got %v", WeightNormal, got)
	}
}

func TestClassifySlantItalicAndOblique(t *testing.T) {
	if got := classifySlant("Italic", ""); got != 100 {
		t.Errorf("expected italic slant 100, got %v", got)
	}
	if got := classifySlant("", "Oblique"); got != 110 {
		t.Errorf("expected oblique slant 110, got %v", got)
	}
	if got := classifySlant("Regular", "Regular"); got != SlantUpright {
		t.Errorf("expected upright default, got %v", got)
	}
}

func TestClassifyWidthKeywords(t *testing.T) {
	if got := classifyWidth("Condensed", ""); got != 75 {
		t.Errorf("expected condensed width 75, got %v", got)
	}
	if got := classifyWidth("SemiExpanded", ""); got != 113 {
		t.Errorf("expected semiexpanded width 113, got %v", got)
	}
}

func TestClassifySerifKeywordFallback(t *testing.T) {
	if got := classifySerif(nil, "Noto Serif"); got != SerifSerif {
		t.Errorf("expected serif, got %v", got)
	}
	if got := classifySerif(nil, "Noto Sans"); got != SerifSans {
		t.Errorf("expected sans, got %v", got)
	}
	if got := classifySerif(nil, "Noto Emoji"); got != SerifUnknown {
		t.Errorf("expected unknown, got %v", got)
	}
}

func TestWithin3Percent(t *testing.T) {
	if !within3Percent(100, 102) {
		t.Error("expected 102 within 3%% of 100")
	}
	if within3Percent(100, 104) {
		t.Error("expected 104 outside 3%% of 100")
	}
}
