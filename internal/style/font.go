package style

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
)

var (
	boldOnce sync.Once
	bold     *truetype.Font
	boldErr  error
)

// Bold returns the parsed Go Bold font. The *truetype.Font is read-only and shared;
// faces built from it are not, so every render builds its own.
func Bold() (*truetype.Font, error) {
	boldOnce.Do(func() {
		bold, boldErr = truetype.Parse(gobold.TTF)
	})
	return bold, boldErr
}

// BoldFace returns a fresh face of the bold font at the given point size.
func (s *Style) BoldFace(points float64) (font.Face, error) {
	f, err := Bold()
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    points,
		DPI:     s.DPI,
		Hinting: font.HintingNone,
	}), nil
}
