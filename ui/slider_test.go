package ui

import "testing"

func TestSliderClampsToRange(t *testing.T) {
	s := NewSlider("x", 0, 0, 100, 1, 5, 1, 3)
	s.SetValue(99)
	if got := s.Value(); got != 5 {
		t.Fatalf("Value() = %v, want 5", got)
	}
	s.SetValue(-2)
	if got := s.Value(); got != 1 {
		t.Fatalf("Value() = %v, want 1", got)
	}
}

func TestSliderSnapsToIntegers(t *testing.T) {
	s := NewSlider("x", 0, 0, 100, 1, 5, 1, 3)
	s.SetValue(2.6)
	if got := s.Value(); got != 3 {
		t.Fatalf("Value() = %v, want 3", got)
	}
	s.SetValue(2.4)
	if got := s.Value(); got != 2 {
		t.Fatalf("Value() = %v, want 2", got)
	}
}

func TestSliderContinuous(t *testing.T) {
	s := NewSlider("x", 0, 0, 100, 0.5, 5, 0, 1.0)
	s.SetValue(2.345)
	if got := s.Value(); got != 2.345 {
		t.Fatalf("Value() = %v, want 2.345", got)
	}
}

func TestSliderHandlePosition(t *testing.T) {
	s := NewSlider("x", 10, 0, 100, 0, 10, 0, 5)
	if got := s.handleX(); got != 60 {
		t.Fatalf("handleX() = %v, want 60", got)
	}
	s.SetValue(0)
	if got := s.handleX(); got != 10 {
		t.Fatalf("handleX() = %v, want 10", got)
	}
	s.SetValue(10)
	if got := s.handleX(); got != 110 {
		t.Fatalf("handleX() = %v, want 110", got)
	}
}

func TestSliderInitialValueClamped(t *testing.T) {
	s := NewSlider("x", 0, 0, 100, 1, 5, 1, 42)
	if got := s.Value(); got != 5 {
		t.Fatalf("Value() = %v, want 5", got)
	}
}
