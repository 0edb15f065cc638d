// Package eawidth wraps golang.org/x/text/width as the opaque East-Asian
// width-class collaborator (spec §1's "Unicode property lookup (East-Asian
// width) — an opaque query").
package eawidth

import "golang.org/x/text/width"

// Class is the Unicode East-Asian width class, per spec §3.
type Class uint8

const (
	Neutral Class = iota
	Narrow
	HalfWidth
	Wide
	FullWidth
	Ambiguous
)

// Lookup returns the East-Asian width class of r.
func Lookup(r rune) Class {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianNarrow:
		return Narrow
	case width.EastAsianHalfwidth:
		return HalfWidth
	case width.EastAsianWide:
		return Wide
	case width.EastAsianFullwidth:
		return FullWidth
	case width.EastAsianAmbiguous:
		return Ambiguous
	default:
		return Neutral
	}
}

func (c Class) String() string {
	switch c {
	case Narrow:
		return "Narrow"
	case HalfWidth:
		return "HalfWidth"
	case Wide:
		return "Wide"
	case FullWidth:
		return "FullWidth"
	case Ambiguous:
		return "Ambiguous"
	default:
		return "Neutral"
	}
}
