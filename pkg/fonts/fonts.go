// Package fonts provides the font faces used to label charts.
//
// The Go Regular TrueType font ships with golang.org/x/image, so charts render
// identically on every machine without a system font lookup.
package fonts

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Standard label sizes in points.
const (
	SizeTitle = 14.0
	SizeLabel = 11.0
	SizeTick  = 7.0
	SizeNote  = 8.0
)

// FontFamily is the name of the embedded font.
const FontFamily = "Go Regular"

var (
	parsed    *truetype.Font
	parseErr  error
	parseOnce sync.Once

	facesMu sync.Mutex
	faces   = map[float64]font.Face{}
)

// Regular returns the parsed Go Regular font. The result is cached after first
// computation.
func Regular() (*truetype.Font, error) {
	parseOnce.Do(func() {
		parsed, parseErr = truetype.Parse(goregular.TTF)
	})
	return parsed, parseErr
}

// Face returns a Go Regular face at the given point size. Faces are cached per
// size and shared; callers must not Close them.
func Face(points float64) (font.Face, error) {
	f, err := Regular()
	if err != nil {
		return nil, err
	}

	facesMu.Lock()
	defer facesMu.Unlock()
	if face, ok := faces[points]; ok {
		return face, nil
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    points,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	faces[points] = face
	return face, nil
}
