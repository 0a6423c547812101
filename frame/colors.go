//go:build withcv
// +build withcv

/*
NAME
  colors.go

DESCRIPTION
  colors.go defines the five BGRA scalar colours used to mark a
  vibration output frame: black for quiescent pixels, and green, cyan,
  yellow and red for increasingly dense neighbourhoods of change.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package frame

import "gocv.io/x/gocv"

// Colour scalars written to the vibration output frame, in (B, G, R, A)
// channel order matching gocv.Scalar.
var (
	BlackColor  = gocv.NewScalar(0, 0, 0, 0)
	GreenColor  = gocv.NewScalar(0, 255, 0, 0)
	CyanColor   = gocv.NewScalar(255, 255, 0, 0)
	YellowColor = gocv.NewScalar(0, 255, 255, 0)
	RedColor    = gocv.NewScalar(0, 0, 255, 0)
)
