//go:build withcv
// +build withcv

/*
NAME
  vibration.go

DESCRIPTION
  vibration.go implements the neighbourhood vibration classifier: for
  each non-zero pixel of a diff/edge frame, count non-zero neighbours in
  a square region of interest and colour the pixel according to the
  ladder of ColorBounds thresholds.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package primitives

import (
	"image"

	"gocv.io/x/gocv"

	"github.com/pkg/errors"

	"github.com/ausocean/vibra/colorbounds"
	"github.com/ausocean/vibra/frame"
	"github.com/ausocean/vibra/pipeline"
)

// Vibration classifies each non-zero pixel of f by the density of
// non-zero pixels in a square region of interest centred on it. Pixels
// in row 0 or column 0 are always skipped, as are non-zero pixels whose
// centred ROI would run off the bottom or right edge of the image. The
// neighbours parameter is accepted for API compatibility but is not
// consulted by the ladder below, which starts at bounds.Get(1); see
// SPEC_FULL.md's Open Questions for why this is preserved rather than
// "fixed" to gate on neighbours.
func Vibration(f frame.View, neighbours, windowSize int32, bounds colorbounds.ColorBounds) (frame.View, error) {
	_ = neighbours

	rows, cols := f.Rows(), f.Cols()
	w := int(windowSize)
	src := f.Mat()

	channels := make([]gocv.Mat, 4)
	for i := range channels {
		channels[i] = gocv.NewMatWithSize(rows, cols, gocv.MatTypeCV64F)
		channels[i].SetTo(gocv.NewScalar(0, 0, 0, 0))
	}
	defer func() {
		for _, c := range channels {
			c.Close()
		}
	}()

	var st frame.Statistic
	for row := 1; row < rows; row++ {
		for col := 1; col < cols; col++ {
			if src.GetUCharAt(row, col) == 0 {
				continue
			}
			if col-w < 0 || row-w < 0 || col+w >= cols || row+w >= rows {
				continue
			}

			roi := src.Region(image.Rect(col-w, row-w, col+w+1, row+w+1))
			k := int32(gocv.CountNonZero(roi))
			roi.Close()

			var color gocv.Scalar
			switch {
			case k >= bounds.Get(4):
				color = frame.RedColor
				st.Ch4++
			case k >= bounds.Get(3):
				color = frame.YellowColor
				st.Ch3++
			case k >= bounds.Get(2):
				color = frame.CyanColor
				st.Ch2++
			case k >= bounds.Get(1):
				color = frame.GreenColor
				st.Ch1++
			default:
				color = frame.BlackColor
			}

			channels[0].SetDoubleAt(row, col, color.Val1)
			channels[1].SetDoubleAt(row, col, color.Val2)
			channels[2].SetDoubleAt(row, col, color.Val3)
			channels[3].SetDoubleAt(row, col, color.Val4)
		}
	}

	merged := gocv.NewMat()
	gocv.Merge(channels, &merged)
	if merged.Empty() && !f.IsEmpty() {
		merged.Close()
		return frame.View{}, errors.Wrap(pipeline.ErrComputeVibration, "merge produced an empty frame")
	}

	out := frame.New(merged)
	out.SetStatistic(st)
	return out, nil
}
