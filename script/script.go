// Package script wraps go-text/typesetting's script lookup as the opaque
// script-query collaborator the itemizer and shaper consume (spec §1's
// "Unicode property lookup (script) — an opaque query").
package script

import (
	gotext "github.com/go-text/typesetting/language"
)

// Script is an ISO 15924 tag (e.g. Latn, Hebr, Hani), the same
// representation go-text/typesetting/language uses internally.
type Script = gotext.Script

// Common is the script value for codepoints with no specific script
// (punctuation, digits, most whitespace). The itemizer compares it like any
// other script, so a change to or from Common splits a run (whitespace
// itself is absorbed before any comparison).
const Common = gotext.Common

// Lookup returns the Unicode script of r, grounded on go-text/typesetting's
// own LookupScript (used the same way by gioui-gio's splitByScript).
func Lookup(r rune) Script {
	return gotext.LookupScript(r)
}

// Tag returns the four-letter ISO 15924 string for s, for logging and for
// handing to the shaper's segment-properties call (spec §4.4).
func Tag(s Script) string {
	return s.String()
}
