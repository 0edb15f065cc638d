package script

import "testing"

func TestLookupDistinguishesScripts(t *testing.T) {
	if Lookup('a') == Lookup('α') {
		t.Error("expected Latin 'a' and Greek alpha to resolve to different scripts")
	}
}

func TestLookupCommonForDigits(t *testing.T) {
	if Lookup('5') != Common {
		t.Errorf("expected ASCII digit to resolve to Common script, got %v", Lookup('5'))
	}
}

func TestTagReturnsNonEmptyString(t *testing.T) {
	if Tag(Lookup('a')) == "" {
		t.Error("expected a non-empty tag for Latin script")
	}
}
