// Package fonts provides the embedded font used to measure and render chips.
//
// The Go Regular font ships with golang.org/x/image, so measurements are
// identical on every machine and need no system fonts. SVG output names the
// same family so browsers that have it installed render labels at the
// measured width.
package fonts

import (
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontFamily is the CSS font-family name for the embedded font.
const FontFamily = "Go"

// FallbackFontFamily provides fallback fonts for systems without the embedded font.
const FallbackFontFamily = `'Go', 'Helvetica Neue', Arial, sans-serif`

// Parsed font and faces per point size. font.Face is not safe for concurrent
// use, so every access goes through mu.
var (
	parseOnce sync.Once
	parsed    *opentype.Font
	parseErr  error

	mu    sync.Mutex
	faces = map[float64]font.Face{}
)

func goRegular() (*opentype.Font, error) {
	parseOnce.Do(func() {
		parsed, parseErr = opentype.Parse(goregular.TTF)
	})
	return parsed, parseErr
}

// face returns the memoized face for size. Callers must hold mu.
func face(size float64) (font.Face, error) {
	if f, ok := faces[size]; ok {
		return f, nil
	}
	otf, err := goRegular()
	if err != nil {
		return nil, err
	}
	f, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	faces[size] = f
	return f, nil
}

// Advance returns the advance width of text in pixels at the given point size.
func Advance(size float64, text string) (float64, error) {
	mu.Lock()
	defer mu.Unlock()

	f, err := face(size)
	if err != nil {
		return 0, err
	}
	return float64(font.MeasureString(f, text)) / 64, nil
}

// LineHeight returns the ascent plus descent in pixels at the given point size.
func LineHeight(size float64) (float64, error) {
	mu.Lock()
	defer mu.Unlock()

	f, err := face(size)
	if err != nil {
		return 0, err
	}
	m := f.Metrics()
	return float64(m.Ascent+m.Descent) / 64, nil
}

// Ascent returns the distance from the baseline to the top of the line in
// pixels, used to position text vertically.
func Ascent(size float64) (float64, error) {
	mu.Lock()
	defer mu.Unlock()

	f, err := face(size)
	if err != nil {
		return 0, err
	}
	return float64(f.Metrics().Ascent) / 64, nil
}

// Round rounds v to 1/100 pixel so measurements serialize compactly.
func Round(v float64) float64 {
	return math.Round(v*100) / 100
}
