package viz

import (
	"strings"
	"testing"
)

func TestTrajectoryPlot(t *testing.T) {
	values := []float64{1, 0.5, 0.25, 0.125}
	exact := []float64{1, 0.6, 0.36, 0.22}

	out := TrajectoryPlot(values, exact, 0.5)
	if out == "" {
		t.Fatal("empty plot")
	}
	if !strings.Contains(out, "exact vs euler (h=0.5)") {
		t.Error("missing caption")
	}
}

func TestErrorPlot(t *testing.T) {
	out := ErrorPlot([]float64{1, 0.5, 0.25}, []float64{1, 0.6, 0.36})
	if !strings.Contains(out, "absolute error") {
		t.Error("missing caption")
	}
}

func TestConvergencePlot(t *testing.T) {
	out := ConvergencePlot([]float64{0.5, 0.25}, []float64{10, 5})
	if !strings.Contains(out, "h = 0.5, 0.25") {
		t.Error("caption should list the step sizes")
	}

	// exact match must not panic on log10(0)
	out = ConvergencePlot([]float64{0.5}, []float64{0})
	if out == "" {
		t.Fatal("empty plot for zero error")
	}
}

func TestCanvasCurve(t *testing.T) {
	c := NewCanvas(20, 5)
	empty := c.String()

	c.Curve([]float64{1, 0.5, 0.25, 0.125, 0.0625})
	if c.String() == empty {
		t.Error("curve drew nothing")
	}

	c.Clear()
	if c.String() != empty {
		t.Error("clear should restore the blank canvas")
	}
}

func TestCanvasBounds(t *testing.T) {
	c := NewCanvas(4, 4)
	// out-of-range sets must be ignored, not panic
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(100, 100)
}
