//go:build !withcv
// +build !withcv

/*
NAME
  frame_circleci.go

DESCRIPTION
  Replaces View, the gocv-backed frame handle, when built without
  OpenCV support. This is needed because CircleCI does not have a copy
  of OpenCV installed. There is no pixel data to hold; callers outside
  a withcv build never reach a code path that needs any.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package frame

// View stands in for the gocv-backed frame handle.
type View struct{}

// Empty returns the zero View.
func Empty() View { return View{} }

// IsEmpty always reports true.
func (v View) IsEmpty() bool { return true }

// Close is a no-op.
func (v View) Close() error { return nil }

// GetStatistic always reports no attached Statistic.
func (v View) GetStatistic() (Statistic, bool) { return Statistic{}, false }
