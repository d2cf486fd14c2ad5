package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Slider is a horizontal mouse-driven control. The value is clamped into
// [Min, Max] by construction; Snap > 0 quantizes it (Snap 1 = integers).
type Slider struct {
	Label string
	X, Y  float64
	W     float64
	Min   float64
	Max   float64
	Snap  float64

	value    float64
	dragging bool
}

const handleRadius = 7

// NewSlider creates a slider with the given initial value, clamped into
// range.
func NewSlider(label string, x, y, w, min, max, snap, value float64) *Slider {
	s := &Slider{Label: label, X: x, Y: y, W: w, Min: min, Max: max, Snap: snap}
	s.setValue(value)
	return s
}

// Value returns the current value.
func (s *Slider) Value() float64 { return s.value }

// SetValue moves the handle programmatically (range-clamped).
func (s *Slider) SetValue(v float64) { s.setValue(v) }

func (s *Slider) setValue(v float64) {
	if s.Snap > 0 {
		v = math.Round(v/s.Snap) * s.Snap
	}
	if v < s.Min {
		v = s.Min
	}
	if v > s.Max {
		v = s.Max
	}
	s.value = v
}

// Update processes mouse input and reports whether the value changed this
// tick.
func (s *Slider) Update() bool {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	if !pressed {
		s.dragging = false
		return false
	}
	if !s.dragging {
		// Start a drag only on the track area, so clicks elsewhere in
		// the window never move the handle.
		if !s.hit(float64(mx), float64(my)) {
			return false
		}
		s.dragging = true
	}

	old := s.value
	t := (float64(mx) - s.X) / s.W
	s.setValue(s.Min + t*(s.Max-s.Min))
	return s.value != old
}

func (s *Slider) hit(x, y float64) bool {
	return x >= s.X-handleRadius && x <= s.X+s.W+handleRadius &&
		y >= s.Y-handleRadius-2 && y <= s.Y+handleRadius+2
}

func (s *Slider) handleX() float64 {
	if s.Max == s.Min {
		return s.X
	}
	return s.X + s.W*(s.value-s.Min)/(s.Max-s.Min)
}

// Draw renders the track, handle and label.
func (s *Slider) Draw(dst *ebiten.Image) {
	track := color.RGBA{0x55, 0x5a, 0x66, 0xff}
	handle := color.RGBA{0xe0, 0xe4, 0xee, 0xff}

	vector.StrokeLine(dst, float32(s.X), float32(s.Y), float32(s.X+s.W), float32(s.Y), 3, track, true)
	vector.DrawFilledCircle(dst, float32(s.handleX()), float32(s.Y), handleRadius, handle, true)

	var text string
	if s.Snap > 0 && s.Snap == math.Trunc(s.Snap) {
		text = fmt.Sprintf("%s: %d", s.Label, int(s.value))
	} else {
		text = fmt.Sprintf("%s: %.2f", s.Label, s.value)
	}
	ebitenutil.DebugPrintAt(dst, text, int(s.X), int(s.Y)-24)
}
