package font

import (
	"io/fs"
)

// LoadFromFS loads every face of every font file found in a filesystem
// (embed.FS, os.DirFS, etc.), descending collections face by face as
// DiscoverFonts does for on-disk directories.
func LoadFromFS(fsys fs.FS, root string) ([]*Face, error) {
	var faces []*Face

	err := fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Skip errors
		}

		if d.IsDir() {
			return nil
		}

		if !IsFontFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil // Skip unreadable files
		}

		for idx := 0; ; idx++ {
			f, err := FromBlob(data, idx)
			if err != nil {
				break
			}
			faces = append(faces, f)
			if !isTTC(data) {
				break
			}
		}
		return nil
	})

	if err != nil {
		return faces, err
	}

	return faces, nil
}

// DefaultFallbackFamilies returns a list of common fallback font families
// to try when a requested font is not available.
func DefaultFallbackFamilies() []string {
	return []string{
		// Sans-serif fallbacks
		"Noto Sans",
		"DejaVu Sans",
		"Liberation Sans",
		"Arial",
		"Helvetica",
		"sans-serif",

		// Serif fallbacks
		"Noto Serif",
		"DejaVu Serif",
		"Liberation Serif",
		"Times New Roman",
		"Times",
		"serif",

		// Monospace fallbacks
		"Noto Sans Mono",
		"DejaVu Sans Mono",
		"Liberation Mono",
		"Courier New",
		"Courier",
		"monospace",
	}
}

// GenericFamilyMapping maps generic family names to concrete font families.
var GenericFamilyMapping = map[string][]string{
	"sans-serif": {
		"Noto Sans",
		"DejaVu Sans",
		"Liberation Sans",
		"Arial",
		"Helvetica",
	},
	"serif": {
		"Noto Serif",
		"DejaVu Serif",
		"Liberation Serif",
		"Times New Roman",
		"Times",
	},
	"monospace": {
		"Noto Sans Mono",
		"DejaVu Sans Mono",
		"Liberation Mono",
		"Courier New",
		"Courier",
	},
	"cursive": {
		"Comic Sans MS",
		"Apple Chancery",
		"cursive",
	},
	"fantasy": {
		"Impact",
		"Papyrus",
		"fantasy",
	},
	"system-ui": {
		"SF Pro Text",          // macOS
		"Segoe UI",             // Windows
		"Ubuntu",               // Ubuntu Linux
		"Cantarell",            // GNOME
		"Noto Sans",            // Fallback
	},
	"ui-sans-serif": {
		"SF Pro Text",
		"Segoe UI",
		"system-ui",
	},
	"ui-serif": {
		"New York",
		"Georgia",
		"serif",
	},
	"ui-monospace": {
		"SF Mono",
		"Consolas",
		"monospace",
	},
}

// ExpandGenericFamily expands a generic family name to concrete families.
// Returns the original family in a slice if not a generic family.
func ExpandGenericFamily(family string) []string {
	if families, ok := GenericFamilyMapping[family]; ok {
		return families
	}
	return []string{family}
}

// ExpandFamilies expands a list of families, replacing generic names.
func ExpandFamilies(families []string) []string {
	var expanded []string
	seen := make(map[string]bool)

	for _, family := range families {
		for _, f := range ExpandGenericFamily(family) {
			if !seen[f] {
				seen[f] = true
				expanded = append(expanded, f)
			}
		}
	}

	return expanded
}
