//go:build withcv
// +build withcv

package primitives

import (
	"testing"

	"gocv.io/x/gocv"

	"github.com/ausocean/vibra/colorbounds"
	"github.com/ausocean/vibra/frame"
)

func TestVibrationOutputShape(t *testing.T) {
	mat := gocv.NewMatWithSize(10, 10, gocv.MatTypeCV8UC1)
	defer mat.Close()
	mat.SetUCharAt(5, 5, 255)
	f := frame.New(mat)

	out, err := Vibration(f, 8, 2, colorbounds.Default())
	if err != nil {
		t.Fatalf("Vibration() error = %v", err)
	}
	defer out.Close()

	if got := out.Rows(); got != 10 {
		t.Errorf("Rows() = %d, want 10", got)
	}
	if got := out.Cols(); got != 10 {
		t.Errorf("Cols() = %d, want 10", got)
	}
	if got := out.Channels(); got != 4 {
		t.Errorf("Channels() = %d, want 4", got)
	}
}

func TestVibrationSkipsRowZeroAndColZero(t *testing.T) {
	mat := gocv.NewMatWithSize(10, 10, gocv.MatTypeCV8UC1)
	defer mat.Close()
	mat.SetUCharAt(0, 4, 255)
	mat.SetUCharAt(4, 0, 255)
	f := frame.New(mat)

	out, err := Vibration(f, 8, 2, colorbounds.Default())
	if err != nil {
		t.Fatalf("Vibration() error = %v", err)
	}
	defer out.Close()

	st, ok := out.GetStatistic()
	if !ok {
		t.Fatal("GetStatistic() reported ok=false")
	}
	if st.Ch1+st.Ch2+st.Ch3+st.Ch4 != 0 {
		t.Errorf("Statistic = %+v, want all zero (both non-zero pixels sit on row/col 0)", st)
	}
}

func TestVibrationSkipsPixelsWithOutOfBoundsROI(t *testing.T) {
	mat := gocv.NewMatWithSize(5, 5, gocv.MatTypeCV8UC1)
	defer mat.Close()
	mat.SetUCharAt(4, 4, 255)
	f := frame.New(mat)

	out, err := Vibration(f, 8, 2, colorbounds.Default())
	if err != nil {
		t.Fatalf("Vibration() error = %v", err)
	}
	defer out.Close()

	st, _ := out.GetStatistic()
	if st.Ch1+st.Ch2+st.Ch3+st.Ch4 != 0 {
		t.Errorf("Statistic = %+v, want all zero (pixel's ROI runs off the bottom/right edge)", st)
	}
}
