/*
NAME
  errors.go

DESCRIPTION
  errors.go defines the error taxonomy shared by the primitives and chain
  packages. Errors are sentinel values wrapped with additional context via
  github.com/pkg/errors so that callers can both test for a specific
  failure kind with errors.Is and inspect a human-readable message.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package pipeline defines the error taxonomy used across the frame
// processing pipeline: primitive failures, chain-level sticky errors, and
// capture/read failures from external frame sources.
package pipeline

import "errors"

// Primitive and chain-level sentinel errors. These are wrapped with
// context by the function that detects them; callers should use
// errors.Is against these sentinels rather than comparing messages.
var (
	ErrGrayScale        = errors.New("pipeline: grayscale conversion failed")
	ErrThreshold        = errors.New("pipeline: threshold failed")
	ErrCanny            = errors.New("pipeline: canny edge detection failed")
	ErrSobel            = errors.New("pipeline: sobel failed")
	ErrDifferences      = errors.New("pipeline: absolute difference failed")
	ErrAbs              = errors.New("pipeline: n-way absolute difference reduction failed or history not yet full")
	ErrDistribution     = errors.New("pipeline: distribution helper failed")
	ErrComputeVibration = errors.New("pipeline: vibration computation failed")
	ErrComputeStatistic = errors.New("pipeline: statistic computation failed")
	ErrComputeMedian    = errors.New("pipeline: mean intensity computation failed")
)

// Capture and read taxonomy, mirroring the frame-source adapter contract
// of the capture package.
var (
	ErrOpenStream       = errors.New("capture: failed to open video stream")
	ErrCloseStream      = errors.New("capture: failed to close video stream")
	ErrUnsupportedSource = errors.New("capture: unsupported video stream source")
	ErrNextFrame        = errors.New("capture: failed to read next frame")
)

// IsWarmUp reports whether err is the expected warm-up condition of
// Chain.ReduceAbs/AbsRecursively: the frame history has not yet reached
// framesCount. Warm-up is signalled identically to a genuine reduction
// failure (ErrAbs) for wire compatibility with the original chain
// contract; this helper lets callers distinguish the two without
// changing that behaviour.
func IsWarmUp(err error, framesSeen, framesCount int) bool {
	return errors.Is(err, ErrAbs) && framesSeen < framesCount
}
