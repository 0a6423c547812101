//go:build withcv
// +build withcv

/*
NAME
  primitives.go

DESCRIPTION
  primitives.go implements the stateless image-processing primitives the
  Chain composes: grayscale conversion, thresholding, Canny edge
  detection (fixed and sigma-adaptive), mean intensity, the Sobel
  gradient distribution helper, and the two N-way absolute-difference
  reductions. Each wraps a gocv call and reports a pipeline error kind on
  failure.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package primitives provides the stateless, gocv-backed image
// operations composed by chain.Chain: colour conversion, edge
// detection, absolute-difference reduction and the neighbourhood
// vibration classifier.
package primitives

import (
	"gocv.io/x/gocv"
	"gonum.org/v1/gonum/stat"

	"github.com/pkg/errors"

	"github.com/ausocean/vibra/frame"
	"github.com/ausocean/vibra/pipeline"
)

// Grayscale converts a BGR frame to single-channel luminance.
func Grayscale(f frame.View) (frame.View, error) {
	dst := gocv.NewMat()
	gocv.CvtColor(f.Mat(), &dst, gocv.ColorBGRToGray)
	if dst.Empty() && !f.IsEmpty() {
		dst.Close()
		return frame.View{}, errors.Wrap(pipeline.ErrGrayScale, "cvtColor produced an empty frame")
	}
	return frame.New(dst), nil
}

// Threshold applies a binary threshold: pixels greater than thresh
// become maxval, all others become 0.
func Threshold(f frame.View, thresh, maxval float32) (frame.View, error) {
	dst := gocv.NewMat()
	gocv.Threshold(f.Mat(), &dst, thresh, maxval, gocv.ThresholdBinary)
	if dst.Empty() && !f.IsEmpty() {
		dst.Close()
		return frame.View{}, errors.Wrap(pipeline.ErrThreshold, "threshold produced an empty frame")
	}
	return frame.New(dst), nil
}

// Canny runs standard Canny edge detection with the given hysteresis
// thresholds. ksize and isL2 are accepted but neither checked nor
// applied: the call goes through gocv's two-threshold Canny, so
// OpenCV's default aperture (3) and L1 gradient are always used
// (see DESIGN.md).
func Canny(f frame.View, low, high float32, ksize int, isL2 bool) (frame.View, error) {
	_ = ksize
	_ = isL2
	dst := gocv.NewMat()
	gocv.Canny(f.Mat(), &dst, low, high)
	if dst.Empty() && !f.IsEmpty() {
		dst.Close()
		return frame.View{}, errors.Wrap(pipeline.ErrCanny, "canny produced an empty frame")
	}
	return frame.New(dst), nil
}

// CannyBySigma computes the arithmetic mean pixel intensity m of frame
// (0 if it cannot be computed), sets low = 1 - sigma + m and
// high = 1 + sigma + m, and calls Canny with those thresholds. This
// formula intentionally departs from the usual multiplicative
// max(0, (1±sigma)*m) adaptive-Canny form; it is preserved verbatim as
// the pipeline's contract.
func CannyBySigma(f frame.View, ksize int, sigma float64, isL2 bool) (frame.View, error) {
	m, ok := MeanIntensity(f)
	if !ok {
		m = 0
	}
	low := 1 - sigma + m
	high := 1 + sigma + m
	return Canny(f, float32(low), float32(high), ksize, isL2)
}

// MeanIntensity interprets frame's buffer as rows*cols uint8 samples
// and returns their arithmetic mean. ok is false when the frame has no
// pixels.
func MeanIntensity(f frame.View) (float64, bool) {
	rows, cols := f.Rows(), f.Cols()
	if rows == 0 || cols == 0 {
		return 0, false
	}
	data, err := f.Mat().DataPtrUint8()
	if err != nil || len(data) == 0 {
		return 0, false
	}
	samples := make([]float64, len(data))
	for i, v := range data {
		samples[i] = float64(v)
	}
	return stat.Mean(samples, nil), true
}

// Distribution computes the Sobel gradient magnitude/orientation
// distribution of frame and returns the magnitude thresholded at
// (thresh, maxval). Supplemented from the reference implementation's
// gen_distribution_frame, dropped from the distilled spec but preserved
// here as an optional, additive Chain stage; see SPEC_FULL.md.
func Distribution(f frame.View, thresh, maxval float32) (frame.View, error) {
	gx := gocv.NewMat()
	defer gx.Close()
	gy := gocv.NewMat()
	defer gy.Close()

	gocv.Sobel(f.Mat(), &gx, gocv.MatTypeCV32F, 1, 0, 3, 1, 0, gocv.BorderDefault)
	gocv.Sobel(f.Mat(), &gy, gocv.MatTypeCV32F, 0, 1, 3, 1, 0, gocv.BorderDefault)
	if gx.Empty() || gy.Empty() {
		return frame.View{}, errors.Wrap(pipeline.ErrSobel, "sobel produced an empty gradient")
	}

	magnitude := gocv.NewMat()
	defer magnitude.Close()
	orientation := gocv.NewMat()
	defer orientation.Close()
	gocv.CartToPolar(gx, gy, &magnitude, &orientation, true)

	mask := gocv.NewMat()
	gocv.Threshold(magnitude, &mask, thresh, maxval, gocv.ThresholdBinary)
	if mask.Empty() {
		mask.Close()
		return frame.View{}, errors.Wrap(pipeline.ErrDistribution, "distribution produced an empty mask")
	}
	return frame.New(mask), nil
}

// AbsDiff returns the pixel-wise absolute difference |a - b| of two
// equally-sized single-channel frames.
func AbsDiff(a, b frame.View) (frame.View, error) {
	dst := gocv.NewMat()
	gocv.AbsDiff(a.Mat(), b.Mat(), &dst)
	if dst.Empty() {
		dst.Close()
		return frame.View{}, errors.Wrap(pipeline.ErrDifferences, "absdiff produced an empty frame")
	}
	return frame.New(dst), nil
}

// AbsReduce left-folds AbsDiff across frames: acc = frames[0]; for each
// subsequent frame, acc = AbsDiff(acc, frame). Fails if frames is empty.
func AbsReduce(frames []frame.View) (frame.View, error) {
	if len(frames) == 0 {
		return frame.View{}, pipeline.ErrAbs
	}
	acc := frames[0].Clone()
	for _, f := range frames[1:] {
		next, err := AbsDiff(acc, f)
		acc.Close()
		if err != nil {
			return frame.View{}, err
		}
		acc = next
	}
	return acc, nil
}

// AbsRecursive reduces frames by recursive pairwise descent against the
// last element: base = frames[N-1]; differences[i] = AbsDiff(base,
// frames[i]) for i in 0..N-1; recurse on differences. Implemented
// iteratively since the reference recursion depth (one level per
// history slot, bounded by frames_count) is trivially equivalent to,
// and cheaper than, true recursion. Fails if frames is empty.
func AbsRecursive(frames []frame.View) (frame.View, error) {
	if len(frames) == 0 {
		return frame.View{}, pipeline.ErrAbs
	}
	current := cloneAll(frames)
	for len(current) > 1 {
		base := current[len(current)-1]
		next := make([]frame.View, 0, len(current)-1)
		for _, f := range current[:len(current)-1] {
			d, err := AbsDiff(base, f)
			if err != nil {
				closeAll(current)
				closeAll(next)
				return frame.View{}, err
			}
			next = append(next, d)
		}
		closeAll(current)
		current = next
	}
	return current[0], nil
}

func cloneAll(frames []frame.View) []frame.View {
	out := make([]frame.View, len(frames))
	for i, f := range frames {
		out[i] = f.Clone()
	}
	return out
}

func closeAll(frames []frame.View) {
	for _, f := range frames {
		f.Close()
	}
}
