package render

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/MalithGihan/chart-service/internal/style"
	"github.com/MalithGihan/chart-service/pkg/types"
)

// Chart draws a radial bar chart. Category i sits at angle 2πi/N counter-clockwise
// from east; every bar is Wheel.BarWidth wide whatever N is, so more than eight
// categories overlap. Bar length is proportional to the value, with the largest
// value reaching the plot radius. No grid, spine or radial tick labels are drawn.
func (r *Renderer) Chart(req types.ChartRequest) ([]byte, error) {
	n := len(req.Data)
	if n == 0 {
		return nil, ErrNoData
	}
	if n != len(req.Categories) {
		return nil, ErrLengthMismatch
	}
	for i, v := range req.Data {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("render: data[%d] = %v is not a bar length", i, v)
		}
	}

	st := r.style
	ws := st.Wheel
	font, err := style.Bold()
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	rr, err := chart.PNG(ws.Size, ws.Size)
	if err != nil {
		return nil, fmt.Errorf("create canvas: %w", err)
	}
	rr.SetDPI(st.DPI)
	rr.SetFont(font)

	fillRect(rr, ws.Size, ws.Size, style.Hex(st.Background))

	title := strings.TrimSpace(req.Title)
	rr.SetFontSize(ws.TitleSize)
	titleW, titleH := textSize(rr, title)
	rr.SetFontSize(ws.LabelSize)
	_, labelH := textSize(rr, "Hg")

	titleBlock := 0
	if title != "" {
		titleBlock = titleH + ws.TitlePad
	}
	radius := float64(ws.Size)/2 - float64(ws.Margin) - float64(titleBlock)/2
	cx := ws.Size / 2
	cy := ws.Size/2 + titleBlock/2

	maxV := 0.0
	for _, v := range req.Data {
		maxV = math.Max(maxV, v)
	}

	rr.SetStrokeColor(style.Hex(ws.EdgeColor))
	rr.SetStrokeWidth(ws.EdgeWidth)
	for i, v := range req.Data {
		if v == 0 {
			continue
		}
		length := v / maxV * radius
		theta := angle(i, n)
		// screen y grows downward, so counter-clockwise is a negative angle
		start := -(theta + ws.BarWidth/2)
		rr.SetFillColor(st.PaletteColor(i))
		rr.MoveTo(cx, cy)
		rr.ArcTo(cx, cy, length, length, start, ws.BarWidth)
		rr.LineTo(cx, cy)
		rr.Close()
		rr.FillStroke()
	}

	rr.SetFontColor(style.Hex(ws.LabelColor))
	rr.SetFontSize(ws.LabelSize)
	for i, label := range req.Categories {
		w, h := textSize(rr, label)
		if w == 0 && h == 0 {
			continue
		}
		theta := angle(i, n)
		cos, sin := math.Cos(theta), math.Sin(theta)
		lx := float64(cx) + cos*(radius+float64(ws.LabelPad))
		ly := float64(cy) - sin*(radius+float64(ws.LabelPad))
		// push the text box outward so it never crosses the plot circle
		x := lx - float64(w)/2 + cos*float64(w)/2
		y := ly + float64(h)/2 - sin*float64(h)/2
		rr.Text(label, round(x), round(y))
	}

	if title != "" {
		rr.SetFontColor(style.Hex(ws.TitleColor))
		rr.SetFontSize(ws.TitleSize)
		baseline := cy - int(radius) - ws.LabelPad - labelH - ws.TitlePad
		rr.Text(title, cx-titleW/2, baseline)
	}

	var buf bytes.Buffer
	if err := rr.Save(&buf); err != nil {
		return nil, fmt.Errorf("encode chart: %w", err)
	}
	return buf.Bytes(), nil
}

// textSize measures s at the current font size. go-chart reports an inverted
// box for text with no visible glyphs; that counts as zero.
func textSize(rr chart.Renderer, s string) (w, h int) {
	if strings.TrimSpace(s) == "" {
		return 0, 0
	}
	b := rr.MeasureText(s)
	return max(b.Width(), 0), max(b.Height(), 0)
}

func angle(i, n int) float64 { return 2 * math.Pi * float64(i) / float64(n) }

func round(f float64) int { return int(math.Round(f)) }

func fillRect(rr chart.Renderer, w, h int, c drawing.Color) {
	rr.SetFillColor(c)
	rr.MoveTo(0, 0)
	rr.LineTo(w, 0)
	rr.LineTo(w, h)
	rr.LineTo(0, h)
	rr.Close()
	rr.Fill()
}
