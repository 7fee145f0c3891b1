package charts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/fogleman/gg"
)

// minScale floors the scaling denominator so an all-zero batch never divides
// by zero.
const minScale = 0.1

// BarWidths scales each value against the batch maximum and returns widths in
// percent. The largest value maps to 100, zero maps to 0.
func BarWidths(values []float64) []float64 {
	max := 0.0
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	if max < minScale {
		max = minScale
	}

	widths := make([]float64, len(values))
	for i, v := range values {
		if v <= 0 {
			continue
		}
		widths[i] = v / max * 100
	}
	return widths
}

// Bar renders a terminal bar of the given percentage width
func Bar(pct float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(pct / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// Handle is a live rendered chart file. Closing it removes the file.
type Handle struct {
	Path string
}

func (h *Handle) Close() error {
	err := os.Remove(h.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Slots enforces at most one live chart per named slot: putting a new handle
// disposes the previous one for that slot first.
type Slots struct {
	mu   sync.Mutex
	open map[string]*Handle
	seq  map[string]int
}

func NewSlots() *Slots {
	return &Slots{
		open: make(map[string]*Handle),
		seq:  make(map[string]int),
	}
}

// Seq returns the next render sequence number for a slot. Callers fold it
// into the file name so a re-render never reuses the path the slot disposal
// is about to remove.
func (s *Slots) Seq(slot string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq[slot]++
	return s.seq[slot]
}

func (s *Slots) Put(slot string, h *Handle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	if prev, ok := s.open[slot]; ok {
		err = prev.Close()
	}
	s.open[slot] = h
	return err
}

// Get returns the live handle for a slot, or nil
func (s *Slots) Get(slot string) *Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open[slot]
}

// Close disposes every live handle
func (s *Slots) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var firstErr error
	for slot, h := range s.open {
		if err := h.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(s.open, slot)
	}
	return firstErr
}

const (
	chartW = 800
	chartH = 480

	padLeft   = 50.0
	padRight  = 15.0
	padTop    = 60.0
	padBottom = 50.0
)

// loadFont is best-effort: gg falls back to its built-in face when the
// system font is missing.
func loadFont(dc *gg.Context, size float64) {
	_ = dc.LoadFontFace("/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf", size)
}

func bounds(values []float64) (min, max float64) {
	min, max = values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if max == min {
		max++
	}
	return min, max
}

// RenderLine draws a labeled line chart to a PNG file and returns its handle.
// Labels and values are drawn in the order given.
func RenderLine(path, title string, labels []string, values []float64) (*Handle, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("no values to chart")
	}

	dc := gg.NewContext(chartW, chartH)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	minV, maxV := bounds(values)

	dc.SetRGB(0.1, 0.1, 0.1)
	loadFont(dc, 24)
	dc.DrawStringAnchored(title, chartW/2, 28, 0.5, 0.5)

	// Y axis gridlines and labels
	loadFont(dc, 12)
	plotH := float64(chartH) - padTop - padBottom
	plotW := float64(chartW) - padLeft - padRight
	for i := 0; i <= 4; i++ {
		val := minV + (maxV-minV)*float64(i)/4.0
		y := float64(chartH) - padBottom - (float64(i)/4.0)*plotH
		dc.SetRGB(0.8, 0.8, 0.8)
		dc.SetLineWidth(0.5)
		dc.DrawLine(padLeft, y, float64(chartW)-padRight, y)
		dc.Stroke()
		dc.SetRGB(0.3, 0.3, 0.3)
		dc.DrawStringAnchored(fmt.Sprintf("%.1f", val), padLeft-6, y, 1.0, 0.5)
	}

	// X axis labels, thinned to at most 8
	step := len(labels)/8 + 1
	for i := 0; i < len(labels); i += step {
		x := padLeft + xPos(i, len(values), plotW)
		dc.SetRGB(0.3, 0.3, 0.3)
		dc.DrawStringAnchored(labels[i], x, float64(chartH)-padBottom+16, 0.5, 0.5)
	}

	// Series line
	dc.SetRGB(0.15, 0.45, 0.85)
	dc.SetLineWidth(2)
	for i := 1; i < len(values); i++ {
		x1 := padLeft + xPos(i-1, len(values), plotW)
		y1 := float64(chartH) - padBottom - (values[i-1]-minV)/(maxV-minV)*plotH
		x2 := padLeft + xPos(i, len(values), plotW)
		y2 := float64(chartH) - padBottom - (values[i]-minV)/(maxV-minV)*plotH
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
	}

	if err := dc.SavePNG(path); err != nil {
		return nil, fmt.Errorf("writing chart: %w", err)
	}
	return &Handle{Path: path}, nil
}

// RenderBars draws a labeled bar chart to a PNG file and returns its handle
func RenderBars(path, title string, labels []string, values []float64) (*Handle, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("no values to chart")
	}

	dc := gg.NewContext(chartW, chartH)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	_, maxV := bounds(values)
	if maxV < minScale {
		maxV = minScale
	}

	dc.SetRGB(0.1, 0.1, 0.1)
	loadFont(dc, 24)
	dc.DrawStringAnchored(title, chartW/2, 28, 0.5, 0.5)

	plotH := float64(chartH) - padTop - padBottom
	plotW := float64(chartW) - padLeft - padRight
	barW := plotW / float64(len(values))

	loadFont(dc, 12)
	step := len(labels)/8 + 1
	for i, v := range values {
		h := v / maxV * plotH
		x := padLeft + float64(i)*barW
		y := float64(chartH) - padBottom - h
		dc.SetRGB(0.2, 0.55, 0.8)
		dc.DrawRectangle(x+1, y, barW-2, h)
		dc.Fill()
		if i%step == 0 && i < len(labels) {
			dc.SetRGB(0.3, 0.3, 0.3)
			dc.DrawStringAnchored(labels[i], x+barW/2, float64(chartH)-padBottom+16, 0.5, 0.5)
		}
	}

	if err := dc.SavePNG(path); err != nil {
		return nil, fmt.Errorf("writing chart: %w", err)
	}
	return &Handle{Path: path}, nil
}

func xPos(i, n int, plotW float64) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1) * plotW
}
