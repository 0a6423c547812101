package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type dumbLogger struct {
	infoCalls int
}

func (dl *dumbLogger) Log(l int8, m string, a ...interface{})   {}
func (dl *dumbLogger) SetLevel(l int8)                          {}
func (dl *dumbLogger) Debug(msg string, args ...interface{})    {}
func (dl *dumbLogger) Info(msg string, args ...interface{})     { dl.infoCalls++ }
func (dl *dumbLogger) Warning(msg string, args ...interface{})  {}
func (dl *dumbLogger) Error(msg string, args ...interface{})    {}
func (dl *dumbLogger) Fatal(msg string, args ...interface{})    {}

func TestNewDefaults(t *testing.T) {
	dl := &dumbLogger{}
	want := ProcessingSettings{
		FramesCount:   DefaultFramesCount,
		Neighbours:    DefaultNeighbours,
		WindowSize:    DefaultWindowSize,
		IsReducedAbs:  DefaultIsReducedAbs,
		CannyKsize:    DefaultCannyKsize,
		CannySigma:    DefaultCannySigma,
		CannyIsL2:     DefaultCannyIsL2,
		Normalization: DefaultNormalization,
		Logger:        dl,
	}

	got := New(WithLogger(dl))
	if !cmp.Equal(got, want, cmp.AllowUnexported(dumbLogger{})) {
		t.Errorf("settings not equal\nwant: %+v\ngot: %+v", want, got)
	}
}

func TestNewAppliesOptions(t *testing.T) {
	s := New(
		WithFramesCount(30),
		WithNeighbours(4),
		WithWindowSize(3),
		WithReducedAbs(false),
		WithCanny(5, 0.1, false),
		WithNormalization(20.0),
	)
	if s.FramesCount != 30 {
		t.Errorf("FramesCount = %d, want 30", s.FramesCount)
	}
	if s.Neighbours != 4 {
		t.Errorf("Neighbours = %d, want 4", s.Neighbours)
	}
	if s.WindowSize != 3 {
		t.Errorf("WindowSize = %d, want 3", s.WindowSize)
	}
	if s.IsReducedAbs {
		t.Error("IsReducedAbs = true, want false")
	}
	if s.CannyKsize != 5 || s.CannySigma != 0.1 || s.CannyIsL2 {
		t.Errorf("Canny settings = %d,%v,%v, want 5,0.1,false", s.CannyKsize, s.CannySigma, s.CannyIsL2)
	}
	if s.Normalization != 20.0 {
		t.Errorf("Normalization = %v, want 20.0", s.Normalization)
	}
}

func TestNewFallsBackOnInvalidFields(t *testing.T) {
	dl := &dumbLogger{}
	s := New(
		WithLogger(dl),
		WithFramesCount(-1),
		WithWindowSize(0),
		WithNormalization(0),
	)
	if s.FramesCount != DefaultFramesCount {
		t.Errorf("FramesCount = %d, want default %d", s.FramesCount, DefaultFramesCount)
	}
	if s.WindowSize != DefaultWindowSize {
		t.Errorf("WindowSize = %d, want default %d", s.WindowSize, DefaultWindowSize)
	}
	if s.Normalization != DefaultNormalization {
		t.Errorf("Normalization = %v, want default %v", s.Normalization, DefaultNormalization)
	}
	if dl.infoCalls != 3 {
		t.Errorf("infoCalls = %d, want 3", dl.infoCalls)
	}
}
