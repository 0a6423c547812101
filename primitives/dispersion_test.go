package primitives

import (
	"testing"

	"github.com/ausocean/vibra/frame"
)

func TestComputeDispersionEmptyHistory(t *testing.T) {
	d := ComputeDispersion(nil, 10.0)
	want := frame.Dispersion{}
	if d != want {
		t.Errorf("ComputeDispersion(nil, 10.0) = %+v, want %+v", d, want)
	}
}

func TestComputeDispersionConstantHistoryIsZero(t *testing.T) {
	stats := []frame.Statistic{
		{Ch1: 10, Ch2: 20, Ch3: 30, Ch4: 40},
		{Ch1: 10, Ch2: 20, Ch3: 30, Ch4: 40},
		{Ch1: 10, Ch2: 20, Ch3: 30, Ch4: 40},
	}
	d := ComputeDispersion(stats, 10.0)
	want := frame.Dispersion{}
	if d != want {
		t.Errorf("ComputeDispersion(constant history) = %+v, want %+v", d, want)
	}
}

func TestComputeDispersionIsNonNegative(t *testing.T) {
	stats := []frame.Statistic{
		{Ch1: 354, Ch2: 256, Ch3: 129, Ch4: 80},
		{Ch1: 879, Ch2: 567, Ch3: 280, Ch4: 143},
		{Ch1: 657, Ch2: 452, Ch3: 456, Ch4: 111},
		{Ch1: 200, Ch2: 190, Ch3: 160, Ch4: 78},
		{Ch1: 123, Ch2: 100, Ch3: 98, Ch4: 65},
	}
	d := ComputeDispersion(stats, 10.0)
	for name, v := range map[string]float32{"ch1": d.Ch1, "ch2": d.Ch2, "ch3": d.Ch3, "ch4": d.Ch4} {
		if v < 0 {
			t.Errorf("%s dispersion = %v, want >= 0", name, v)
		}
	}
}
