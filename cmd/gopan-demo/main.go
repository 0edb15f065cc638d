// Package main provides the CLI entry point for the gopan layout demo.
//
// Usage:
//
//	gopan-demo [-config demo.toml] [-verbose] [-system-fonts] <font-path> <text>
//
// Flags must come before the two positional arguments; the first argument
// is the path of a font file, not a font-name pattern.
//
// It loads the requested font (and any fallbacks from the config file),
// analyzes the given text, and writes the shaped result as out.png in the
// current directory.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/rivo/uniseg"

	"github.com/opentypeset/gopan"
	"github.com/opentypeset/gopan/font"
	"github.com/opentypeset/gopan/render"
)

// config is the optional -config TOML file: font search directories, a
// fallback-family list, a default language tag (logged, not yet consulted
// by shaping), and the rendering pixel size — modeled on the teacher's TOML
// decoding in eval/fileops.go (toml.Decode into a plain struct). Keeping
// this in the CLI layer, not a package-level global, preserves "no
// process-wide font config singleton".
type config struct {
	FontDirs         []string `toml:"font_dirs"`
	FallbackFamilies []string `toml:"fallback_families"`
	Language         string   `toml:"language"`
	FontSizePx       int      `toml:"font_size_px"`
	FaceIndex        int      `toml:"face_index"`
}

func defaultConfig() config {
	return config{FontSizePx: 24}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("gopan-demo: decode config %q: %w", path, err)
	}
	return cfg, nil
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("gopan-demo", flag.ContinueOnError)
	configPath := fs.String("config", "", "TOML config file (font_dirs, fallback_families, language, font_size_px, face_index)")
	verbose := fs.Bool("verbose", false, "log grapheme-cluster boundaries for the input text")
	systemFonts := fs.Bool("system-fonts", false, "add the platform's system font directories to the fallback search")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "usage: gopan-demo [-config demo.toml] [-verbose] [-system-fonts] <font-path> <text>")
		return 1
	}

	fontPath := fs.Arg(0)
	text := fs.Arg(1)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}

	if *verbose {
		logGraphemeClusters(text)
		if cfg.Language != "" {
			fmt.Fprintf(os.Stderr, "language: %s (not yet consulted by shaping)\n", cfg.Language)
		}
	}

	faces, err := buildFaceSet(fontPath, cfg, *systemFonts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return -1
	}

	if err := renderText(text, faces, cfg.FontSizePx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return -1
	}

	fmt.Println("wrote out.png")
	return 0
}

// buildFaceSet loads the primary face, discovers candidate fallbacks from
// the configured font directories (and, with -system-fonts, the platform's
// system font directories), and sorts/prunes them against the primary
// (spec §4.2), mirroring gopan.c's load_fonts sequence. When
// fallback_families is set (or left empty, in which case
// font.DefaultFallbackFamilies supplies a sans/serif/mono default list),
// discovered faces are restricted to those families after generic-family
// expansion.
func buildFaceSet(fontPath string, cfg config, systemFonts bool) (font.FaceSet, error) {
	primary, err := font.FromFile(fontPath, cfg.FaceIndex)
	if err != nil {
		return nil, fmt.Errorf("load primary font %q: %w", fontPath, err)
	}

	book := font.NewFaceBook()
	if len(cfg.FontDirs) > 0 {
		discovered, err := font.DiscoverFonts(cfg.FontDirs)
		if err != nil {
			return nil, fmt.Errorf("discover fonts in %v: %w", cfg.FontDirs, err)
		}
		book.Add(discovered...)
	}
	if systemFonts {
		discovered, err := font.DiscoverSystemFonts()
		if err != nil {
			return nil, fmt.Errorf("discover system fonts: %w", err)
		}
		book.Add(discovered...)
	}

	fallbackFamilies := cfg.FallbackFamilies
	if len(fallbackFamilies) == 0 {
		fallbackFamilies = font.DefaultFallbackFamilies()
	}

	var candidates font.FaceSet
	for _, family := range font.ExpandFamilies(fallbackFamilies) {
		candidates = append(candidates, book.FindByFamily(family)...)
	}

	fallbackBook := font.NewFaceBook()
	fallbackBook.Add(candidates...)
	return fallbackBook.BuildFallbackSet(primary), nil
}

func renderText(text string, faces font.FaceSet, fontSizePx int) error {
	codepoints := gopan.Utf8ToCodepoints([]byte(text))
	runs, err := gopan.Analyze(codepoints, faces, fontSizePx)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}
	defer gopan.RunDestroy(runs)

	width := len(codepoints)*fontSizePx + fontSizePx
	height := fontSizePx * 2
	canvas := render.NewCanvas(width, height)
	canvas.DrawRuns(runs, float64(height)*0.75)

	out, err := os.Create("out.png")
	if err != nil {
		return fmt.Errorf("create out.png: %w", err)
	}
	defer out.Close()

	return canvas.WritePNG(out)
}

// logGraphemeClusters logs the grapheme-cluster boundaries of text, the
// same unit the teacher's library/foundations/str.go uses for string
// indexing, useful here as a -verbose diagnostic distinct from the
// codepoint-level itemization the pipeline itself performs.
func logGraphemeClusters(text string) {
	gr := uniseg.NewGraphemes(text)
	i := 0
	for gr.Next() {
		fmt.Fprintf(os.Stderr, "grapheme[%d] = %q\n", i, gr.Str())
		i++
	}
}
