package engine

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/gridsnake/parameter"
)

func TestTuningResource_Clamps(t *testing.T) {
	tr := NewTuningResource(parameter.DefaultTickInterval, parameter.DefaultLerpRate)

	tests := []struct {
		in   time.Duration
		want time.Duration
	}{
		{100 * time.Millisecond, 100 * time.Millisecond},
		{0, parameter.MinTickInterval},
		{-5 * time.Second, parameter.MinTickInterval},
		{time.Hour, parameter.MaxTickInterval},
		{150*time.Millisecond + 700*time.Microsecond, 150 * time.Millisecond},
	}
	for _, tt := range tests {
		if got := tr.SetTickInterval(tt.in); got != tt.want {
			t.Errorf("SetTickInterval(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if tr.TickInterval() != tt.want {
			t.Errorf("TickInterval() after %v = %v, want %v", tt.in, tr.TickInterval(), tt.want)
		}
	}

	rates := []struct{ in, want float64 }{
		{25, 25},
		{-1, parameter.MinLerpRate},
		{5000, parameter.MaxLerpRate},
		{math.Inf(1), parameter.MaxLerpRate},
	}
	for _, tt := range rates {
		if err := tr.SetLerpRate(tt.in); err != nil {
			t.Fatalf("SetLerpRate(%v): %v", tt.in, err)
		}
		if got := tr.LerpRate(); got != tt.want {
			t.Errorf("SetLerpRate(%v) stored %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTuningResource_RejectsNaN(t *testing.T) {
	tr := NewTuningResource(parameter.DefaultTickInterval, 12)
	if err := tr.SetLerpRate(math.NaN()); !errors.Is(err, ErrInvalidTuning) {
		t.Errorf("Expected ErrInvalidTuning, got %v", err)
	}
	if tr.LerpRate() != 12 {
		t.Errorf("NaN must leave rate unchanged, got %v", tr.LerpRate())
	}

	fallback := NewTuningResource(parameter.DefaultTickInterval, math.NaN())
	if fallback.LerpRate() != parameter.DefaultLerpRate {
		t.Errorf("Expected default rate for NaN construction, got %v", fallback.LerpRate())
	}
}

func TestGridResource_Contains(t *testing.T) {
	g := &GridResource{HalfSize: 10}
	if !g.Contains(-10, 10) || !g.Contains(0, 0) {
		t.Error("Edge and origin cells should be on the plane")
	}
	if g.Contains(11, 0) || g.Contains(0, -11) {
		t.Error("Cells beyond half size should be off the plane")
	}
}
