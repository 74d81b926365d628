package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// Shaper measures text with HarfBuzz shaping from go-text/typesetting, so
// kerning and ligatures are reflected in the advance. Use it instead of
// Faces when labels use scripts or fonts where per-rune advances are not
// accurate enough.
//
// Shaper is safe for concurrent use.
type Shaper struct {
	font *font.Font
	lang language.Language

	// HarfbuzzShaper keeps an internal buffer and is not concurrent-safe.
	pool sync.Pool
}

// NewShaper parses font data for shaping.
func NewShaper(data []byte, lang string) (*Shaper, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	if lang == "" {
		lang = "en"
	}
	return &Shaper{
		font: face.Font,
		lang: language.NewLanguage(lang),
		pool: sync.Pool{New: func() any { return &shaping.HarfbuzzShaper{} }},
	}, nil
}

// MeasureText implements Measurer.
func (s *Shaper) MeasureText(str string, size float64) float64 {
	if str == "" || size <= 0 {
		return 0
	}
	runes := []rune(str)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(s.font),
		Size:      fixed.Int26_6(size * 64),
		Script:    detectScript(runes),
		Language:  s.lang,
	}

	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	s.pool.Put(hb)

	var width fixed.Int26_6
	for _, g := range out.Glyphs {
		width += g.Advance
	}
	return fixedToFloat64(width)
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
