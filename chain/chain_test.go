//go:build withcv
// +build withcv

package chain

import (
	"errors"
	"testing"

	"gocv.io/x/gocv"

	"github.com/ausocean/vibra/colorbounds"
	"github.com/ausocean/vibra/config"
	"github.com/ausocean/vibra/frame"
	"github.com/ausocean/vibra/pipeline"
)

func newGrayFrame(val float64) frame.View {
	m := gocv.NewMatWithSize(8, 8, gocv.MatTypeCV8UC1)
	m.SetTo(gocv.NewScalar(val, val, val, val))
	return frame.New(m)
}

func TestReduceAbsWarmsUpThenSucceeds(t *testing.T) {
	settings := config.New(config.WithFramesCount(3))
	c := New(colorbounds.Default(), settings)
	defer c.Close()

	for i := 0; i < settings.FramesCount-1; i++ {
		f := newGrayFrame(float64(10 * (i + 1)))
		c.RunChain(f).AppendFrame().ReduceAbs()
		_, err := c.GetResult()
		if !errors.Is(err, pipeline.ErrAbs) {
			t.Fatalf("iteration %d: GetResult() error = %v, want ErrAbs", i, err)
		}
	}

	f := newGrayFrame(99)
	c.RunChain(f).AppendFrame().ReduceAbs()
	result, err := c.GetResult()
	if err != nil {
		t.Fatalf("GetResult() after warm-up error = %v", err)
	}
	defer result.Close()
}

func TestStickyErrorPropagates(t *testing.T) {
	settings := config.New(config.WithFramesCount(5))
	c := New(colorbounds.Default(), settings)
	defer c.Close()

	f := newGrayFrame(10)
	c.RunChain(f).AppendFrame().ReduceAbs()
	_, err := c.GetResult()
	if !errors.Is(err, pipeline.ErrAbs) {
		t.Fatalf("GetResult() error = %v, want ErrAbs (warm-up)", err)
	}

	// Further stages must not clear the sticky error.
	c.Vibrating().Statistic()
	_, err2 := c.GetResult()
	if err2 == nil {
		t.Fatal("GetResult() error = nil after further stages, want sticky error retained")
	}
}

func TestGetDispersionUnavailableBeforeAnyFrame(t *testing.T) {
	settings := config.New(config.WithFramesCount(2))
	c := New(colorbounds.Default(), settings)
	defer c.Close()

	if _, ok := c.GetDispersion(); ok {
		t.Fatal("GetDispersion() ok=true before any frame processed")
	}
}
