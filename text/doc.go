// Package text measures labels for the watch face layout.
//
// Three Measurer implementations are provided:
//
//   - Faces: golang.org/x/image/font/opentype faces cached per size; the
//     default, backed by the embedded Go Regular font (GoRegular).
//   - Shaper: HarfBuzz shaping via go-text/typesetting, for kerning-accurate
//     widths.
//   - Fixed: monospace approximation without font data.
//
// Faces also hands out font.Face values for rasterizers that draw text with
// the same metrics the layout was computed with.
package text
