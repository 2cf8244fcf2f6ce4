// Package render draws the wheel-of-life chart and the ikigai diagram as PNG bytes.
//
// Every call builds and discards its own drawing surface and font faces, so one
// Renderer can serve concurrent requests. Output depends only on the input and the
// style: identical requests give identical bytes.
package render

import (
	"errors"

	"github.com/MalithGihan/chart-service/internal/style"
)

type Renderer struct {
	style *style.Style
}

// New returns a Renderer using s, or the default style when s is nil.
func New(s *style.Style) *Renderer {
	if s == nil {
		s = style.Default()
	}
	return &Renderer{style: s}
}

var (
	ErrNoData         = errors.New("render: no data")
	ErrLengthMismatch = errors.New("render: data and categories differ in length")
	ErrDiagramLabels  = errors.New("render: ikigai needs exactly 4 labels and 4 overlap labels")
)
