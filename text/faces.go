package text

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Faces parses one OpenType font and caches a font.Face per pixel size.
//
// Faces is safe for concurrent use. The font.Face values returned by Face
// are not; callers drawing with them from several goroutines must
// serialize.
type Faces struct {
	mu    sync.Mutex
	font  *opentype.Font
	faces map[float64]font.Face
}

// NewFaces parses TrueType/OpenType font data.
func NewFaces(data []byte) (*Faces, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &Faces{font: f, faces: make(map[float64]font.Face)}, nil
}

var (
	goRegularOnce sync.Once
	goRegular     *Faces
)

// GoRegular returns the shared Faces for the embedded Go Regular font.
func GoRegular() *Faces {
	goRegularOnce.Do(func() {
		f, err := NewFaces(goregular.TTF)
		if err != nil {
			panic(err) // embedded font data is known good
		}
		goRegular = f
	})
	return goRegular
}

// Face returns the face for size pixels, creating it on first use.
func (f *Faces) Face(size float64) (font.Face, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.faceLocked(size)
}

func (f *Faces) faceLocked(size float64) (font.Face, error) {
	if face, ok := f.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("text: face at size %.1f: %w", size, err)
	}
	f.faces[size] = face
	return face, nil
}

// MeasureText implements Measurer. A face that cannot be built measures as
// zero width so that layout never fails.
func (f *Faces) MeasureText(s string, size float64) float64 {
	if s == "" || size <= 0 {
		return 0
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	face, err := f.faceLocked(size)
	if err != nil {
		return 0
	}
	return fixedToFloat64(font.MeasureString(face, s))
}

// Close releases every cached face.
func (f *Faces) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	var first error
	for size, face := range f.faces {
		if err := face.Close(); err != nil && first == nil {
			first = err
		}
		delete(f.faces, size)
	}
	return first
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
