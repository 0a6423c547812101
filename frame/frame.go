//go:build withcv
// +build withcv

/*
NAME
  frame.go

DESCRIPTION
  frame.go defines View, the opaque handle over a gocv.Mat used
  throughout the pipeline, along with the Statistic side-channel that
  View carries between the vibration and statistic pipeline stages.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package frame provides View, a wrapper around gocv.Mat that gives the
// pipeline a stable type regardless of the image library's native
// representation, and the Statistic/Dispersion value types carried by
// View between pipeline stages.
package frame

import "gocv.io/x/gocv"

// View wraps a gocv.Mat. Instances are produced by a primitive or a
// capture.Source, consumed read-only by primitives, and owned
// exclusively by whichever of the Chain slot or a RingBuffer currently
// holds them. Plain assignment shares the underlying gocv.Mat handle
// (gocv.Mat is itself a thin reference over C-allocated memory); Clone
// performs the explicit deep copy used when a frame must outlive its
// producer's next mutation.
type View struct {
	mat  gocv.Mat
	stat *Statistic
}

// New wraps an existing gocv.Mat as a View.
func New(mat gocv.Mat) View {
	return View{mat: mat}
}

// Empty returns a zero-value View backed by an empty gocv.Mat, used to
// seed a Chain's result slot before the first frame arrives.
func Empty() View {
	return View{mat: gocv.NewMat()}
}

// Mat returns the underlying gocv.Mat for use by primitives. Callers
// must not retain it beyond the lifetime of the owning View.
func (v View) Mat() gocv.Mat { return v.mat }

// IsEmpty reports whether the view carries no pixel data.
func (v View) IsEmpty() bool { return v.mat.Empty() }

// Rows, Cols and Channels report the view's dimensions.
func (v View) Rows() int     { return v.mat.Rows() }
func (v View) Cols() int     { return v.mat.Cols() }
func (v View) Channels() int { return v.mat.Channels() }

// Type returns the gocv element-type tag of the underlying Mat:
// single-channel 8-bit for intermediates, 4-channel 64-bit float for
// the classified vibration output.
func (v View) Type() gocv.MatType { return v.mat.Type() }

// Clone returns a View with its own, independently-owned copy of the
// pixel buffer.
func (v View) Clone() View {
	c := View{mat: v.mat.Clone()}
	if v.stat != nil {
		s := *v.stat
		c.stat = &s
	}
	return c
}

// Close releases the gocv.Mat backing this view. It must be called
// exactly once per distinct underlying Mat; Views produced by Clone or
// by a primitive each own their own Mat and must each be Closed.
func (v View) Close() error {
	return v.mat.Close()
}

// SetStatistic attaches a Statistic to this view. Called by the
// vibration primitive; read back by Chain.Statistic.
func (v *View) SetStatistic(s Statistic) { v.stat = &s }

// GetStatistic returns the attached Statistic and whether one has been
// set. A View produced by anything other than the vibration primitive
// carries no Statistic.
func (v View) GetStatistic() (Statistic, bool) {
	if v.stat == nil {
		return Statistic{}, false
	}
	return *v.stat, true
}
