package render

import (
	"bytes"
	"fmt"

	"github.com/fogleman/gg"

	"github.com/MalithGihan/chart-service/internal/style"
	"github.com/MalithGihan/chart-service/pkg/types"
)

// Diagram draws four translucent circles at the compass points around the origin.
// Labels go just inside each circle's outer edge (top, left, bottom, right);
// overlap labels sit on the diagonals (top-left, bottom-left, bottom-right,
// top-right) over white patches; the title is centered.
func (r *Renderer) Diagram(req types.DiagramRequest) ([]byte, error) {
	if len(req.Labels) != 4 || len(req.Overlap) != 4 {
		return nil, ErrDiagramLabels
	}
	st := r.style
	is := st.Ikigai

	labelFace, err := st.BoldFace(is.LabelSize)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	titleFace, err := st.BoldFace(is.TitleSize)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}

	dc := gg.NewContext(is.Size, is.Size)
	dc.SetColor(style.Hex(st.Background))
	dc.Clear()

	scale := float64(is.Size) / (2 * is.Extent)
	px := func(x, y float64) (float64, float64) {
		return (x + is.Extent) * scale, (is.Extent - y) * scale
	}

	off, rad := is.Offset, is.Radius
	centers := [4][2]float64{{0, off}, {-off, 0}, {0, -off}, {off, 0}}
	for i, c := range centers {
		x, y := px(c[0], c[1])
		dc.DrawCircle(x, y, rad*scale)
		dc.SetColor(style.Hex(is.Colors[i]).WithAlpha(style.Opacity(is.Alpha)))
		dc.Fill()
	}

	edge := off + rad - is.EdgeInset
	dc.SetFontFace(labelFace)
	for i, pos := range [4][2]float64{{0, edge}, {-edge, 0}, {0, -edge}, {edge, 0}} {
		x, y := px(pos[0], pos[1])
		dc.SetColor(style.Hex(is.LabelColor))
		dc.DrawStringAnchored(req.Labels[i], x, y, 0.5, 0.5)
	}

	for i, pos := range [4][2]float64{{-off, off}, {-off, -off}, {off, -off}, {off, off}} {
		x, y := px(pos[0], pos[1])
		patchedText(dc, req.Overlap[i], x, y, is.PatchPad, is.PatchColor, is.LabelColor)
	}

	dc.SetFontFace(titleFace)
	x, y := px(0, 0)
	patchedText(dc, req.Title, x, y, is.PatchPad, is.PatchColor, is.TitleColor)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode diagram: %w", err)
	}
	return buf.Bytes(), nil
}

// patchedText centers s on (x, y) over a solid rectangle in the current font face.
func patchedText(dc *gg.Context, s string, x, y, pad float64, patch, ink string) {
	if s == "" {
		return
	}
	w, h := dc.MeasureString(s)
	dc.DrawRectangle(x-w/2-pad, y-h/2-pad, w+2*pad, h+2*pad)
	dc.SetColor(style.Hex(patch))
	dc.Fill()
	dc.SetColor(style.Hex(ink))
	dc.DrawStringAnchored(s, x, y, 0.5, 0.5)
}
