package font

import (
	"sort"
	"strings"
	"sync"
)

// FaceBook manages a collection of loaded faces and groups them by family,
// for use by CLI/demo code that needs to go from a font name to a FaceSet.
// It is deliberately outside the core pipeline (spec §9 Design Notes: no
// process-wide font config singleton) — callers build one explicitly and
// pass the resulting FaceSet into Analyze.
type FaceBook struct {
	faces    []*Face
	byFamily map[string][]*Face

	mu sync.RWMutex
}

// NewFaceBook creates an empty FaceBook.
func NewFaceBook() *FaceBook {
	return &FaceBook{
		byFamily: make(map[string][]*Face),
	}
}

// Add registers faces with the book, indexing them by normalized family.
func (b *FaceBook) Add(faces ...*Face) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, f := range faces {
		b.faces = append(b.faces, f)
		family := normalizeFamily(f.Family)
		b.byFamily[family] = append(b.byFamily[family], f)
	}
}

// Len returns the number of faces in the book.
func (b *FaceBook) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.faces)
}

// Faces returns every face in the book, in load order.
func (b *FaceBook) Faces() []*Face {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]*Face, len(b.faces))
	copy(out, b.faces)
	return out
}

// Families returns all distinct normalized family names in the book.
func (b *FaceBook) Families() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]string, 0, len(b.byFamily))
	for fam := range b.byFamily {
		out = append(out, fam)
	}
	sort.Strings(out)
	return out
}

// FindByFamily returns every face registered under family (normalized).
func (b *FaceBook) FindByFamily(family string) []*Face {
	b.mu.RLock()
	defer b.mu.RUnlock()
	found := b.byFamily[normalizeFamily(family)]
	out := make([]*Face, len(found))
	copy(out, found)
	return out
}

// BuildFallbackSet builds a priority-ordered FaceSet for use as the primary
// face plus a scored, pruned fallback chain: primary first, then every
// other loaded face sorted and pruned against it (Component B, spec §4.2).
func (b *FaceBook) BuildFallbackSet(primary *Face) FaceSet {
	b.mu.RLock()
	defer b.mu.RUnlock()

	candidates := make(FaceSet, 0, len(b.faces))
	for _, f := range b.faces {
		if f.ID != primary.ID {
			candidates = append(candidates, f)
		}
	}
	fallback := SortFaceSet(candidates, primary)

	set := make(FaceSet, 0, len(fallback)+1)
	set = append(set, primary)
	set = append(set, fallback...)
	return set
}

func normalizeFamily(family string) string {
	s := strings.ToLower(family)
	s = strings.TrimSuffix(s, " regular")
	s = strings.TrimSuffix(s, " normal")
	return strings.Join(strings.Fields(s), " ")
}
