// Package render is the rendering-collaborator contract the core pipeline
// hands shaped runs to (spec §6, §9). The core never chooses among glyph
// paths; this package distinguishes the three the original's cairo
// draw-funcs did — outline, embedded bitmap, and PNG — as a tagged variant,
// plus one concrete PNG-emitting implementation for the CLI demo.
//
// Grounded on gopan's gp_draw.c (draw_move_to_/sbit_to_bitmap/
// align_pixels/gp_draw_cairo) for the pixel-alignment and glyph-path
// selection logic, reimplemented against golang.org/x/image/vector instead
// of cairo for outline rasterization.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg" // registers the JPEG decoder used by drawBitmap
	"image/png"
	"io"
	"log"

	"github.com/go-text/typesetting/opentype/api"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/opentypeset/gopan/itemize"
)

// shapeScale mirrors shape.designScale (gp_draw.c's GP_SHAPE_SCALE).
// drawRun scales glyphs by the face's own units-per-em and uses shapeScale
// only in its place when a face reports zero units-per-em.
const shapeScale = 2048

// GlyphPathKind tags which of the three glyph paths spec §6/§9 names a
// glyph resolves to: a scalable outline, a packed monochrome bitmap
// (EBDT/CBDT/sbix 1-bpp, gp_draw.c's sbit_to_bitmap), or a PNG/JPEG-encoded
// color bitmap (CBDT/sbix image reference). The core never chooses among
// these; only the renderer does.
type GlyphPathKind uint8

const (
	GlyphPathNone GlyphPathKind = iota
	GlyphPathOutline
	GlyphPathMonoBitmap
	GlyphPathPngBitmap
)

// GlyphPath is the tagged variant a renderer dispatches on. It wraps
// go-text/typesetting's own GlyphData() return shape rather than
// reinventing outline/bitmap geometry types.
type GlyphPath struct {
	Kind    GlyphPathKind
	Outline api.GlyphOutline
	Bitmap  api.GlyphBitmap
}

// classifyGlyphPath tags a Face.GlyphData() result as one of the three
// glyph paths the renderer contract distinguishes.
func classifyGlyphPath(data interface{}) GlyphPath {
	switch d := data.(type) {
	case api.GlyphOutline:
		return GlyphPath{Kind: GlyphPathOutline, Outline: d}
	case api.GlyphBitmap:
		switch d.Format {
		case api.PNG, api.JPG:
			return GlyphPath{Kind: GlyphPathPngBitmap, Bitmap: d}
		default:
			return GlyphPath{Kind: GlyphPathMonoBitmap, Bitmap: d}
		}
	default:
		return GlyphPath{}
	}
}

// Canvas is a pixel buffer runs are painted onto, with a pen position
// advanced run-by-run, glyph-by-glyph — the Go equivalent of gp_draw_cairo's
// running (x, y) plus cairo_translate calls.
type Canvas struct {
	img  *image.RGBA
	penX float64
	penY float64
}

// NewCanvas allocates a white canvas of the given pixel size.
func NewCanvas(width, height int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return &Canvas{img: img}
}

// DrawRuns paints every shaped glyph in runs onto the canvas at baseline y,
// advancing the pen left to right (spec §6's rendering-collaborator
// contract: {face, glyphs, ppem, level} plus the shaper's positions/infos).
func (c *Canvas) DrawRuns(runs []itemize.Run, baseline float64) {
	c.penX = 0
	c.penY = baseline
	for _, run := range runs {
		if run.Font == nil || run.Glyphs == nil {
			continue
		}
		c.drawRun(run)
	}
}

func (c *Canvas) drawRun(run itemize.Run) {
	upem := float64(run.Font.Handle.Upem())
	if upem == 0 {
		upem = shapeScale
	}
	scale := float64(run.Ppem) / upem

	for _, g := range run.Glyphs.Glyphs {
		ox := c.penX + fixedToFloat(g.XOffset)*scale
		oy := c.penY - fixedToFloat(g.YOffset)*scale

		path := classifyGlyphPath(run.Font.Handle.GlyphData(g.GlyphID))
		switch path.Kind {
		case GlyphPathOutline:
			c.drawOutline(path.Outline, ox, oy, scale)
		case GlyphPathPngBitmap:
			c.drawBitmap(path.Bitmap, ox, oy)
		case GlyphPathMonoBitmap:
			// Packed 1-bpp sbit data has no decoder exposed by
			// go-text/typesetting's public API (see drawBitmap); logged
			// and skipped the same as an unsupported bitmap format.
			log.Printf("render: glyph %d in run [%d,%d) is a packed monochrome bitmap, unsupported", g.GlyphID, run.Start, run.End)
		default:
			log.Printf("render: glyph %d in run [%d,%d) has no drawable path", g.GlyphID, run.Start, run.End)
		}

		c.penX += fixedToFloat(g.XAdvance) * scale
		c.penY -= fixedToFloat(g.YAdvance) * scale
	}
}

// drawOutline fills a scalable glyph outline via golang.org/x/image/vector,
// the non-cairo equivalent of gp_draw.c's hb_draw_funcs-to-cairo path.
func (c *Canvas) drawOutline(outline api.GlyphOutline, ox, oy, scale float64) {
	bounds := c.img.Bounds()
	raster := vector.NewRasterizer(bounds.Dx(), bounds.Dy())

	toDevice := func(x, y float32) (float32, float32) {
		return float32(ox) + x*float32(scale), float32(oy) - y*float32(scale)
	}

	for _, seg := range outline.Segments {
		switch seg.Op {
		case api.SegmentOpMoveTo:
			x, y := toDevice(seg.Args[0].X, seg.Args[0].Y)
			raster.MoveTo(x, y)
		case api.SegmentOpLineTo:
			x, y := toDevice(seg.Args[0].X, seg.Args[0].Y)
			raster.LineTo(x, y)
		case api.SegmentOpQuadTo:
			x1, y1 := toDevice(seg.Args[0].X, seg.Args[0].Y)
			x2, y2 := toDevice(seg.Args[1].X, seg.Args[1].Y)
			raster.QuadTo(x1, y1, x2, y2)
		case api.SegmentOpCubeTo:
			x1, y1 := toDevice(seg.Args[0].X, seg.Args[0].Y)
			x2, y2 := toDevice(seg.Args[1].X, seg.Args[1].Y)
			x3, y3 := toDevice(seg.Args[2].X, seg.Args[2].Y)
			raster.CubeTo(x1, y1, x2, y2, x3, y3)
		}
	}

	raster.Draw(c.img, c.img.Bounds(), image.NewUniform(color.Black), image.Point{})
}

// drawBitmap blits an embedded color bitmap (EBDT/CBDT/sbix PNG/JPEG
// reference), the Go equivalent of gp_draw.c's try_draw_bitmap path.
// Callers only reach this with GlyphPathPngBitmap, so bmp.Format is always
// PNG or JPG here.
func (c *Canvas) drawBitmap(bmp api.GlyphBitmap, ox, oy float64) {
	img, _, err := image.Decode(bytes.NewReader(bmp.Data))
	if err != nil {
		log.Printf("render: decode embedded bitmap: %v", err)
		return
	}
	x, y := int(alignPixels(ox)), int(alignPixels(oy))
	dst := image.Rect(x, y-img.Bounds().Dy(), x+img.Bounds().Dx(), y)
	draw.Draw(c.img, dst, img, image.Point{}, draw.Over)
}

// alignPixels rounds a device-space coordinate to the nearest pixel,
// matching gp_draw.c's align_pixels.
func alignPixels(v float64) float64 {
	if v < 0 {
		return float64(int(v - 0.5))
	}
	return float64(int(v + 0.5))
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

// WritePNG encodes the canvas as a PNG, matching spec §6's CLI demo
// contract ("writes out.png in the current directory").
func (c *Canvas) WritePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}
