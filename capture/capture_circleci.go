//go:build !withcv
// +build !withcv

/*
NAME
  capture_circleci.go

DESCRIPTION
  Replaces Source's gocv-backed implementation when built without
  OpenCV support. This is needed because CircleCI does not have a copy
  of OpenCV installed.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package capture

import (
	"errors"

	"github.com/ausocean/vibra/frame"
)

// Kind identifies the class of address passed to Source.Open.
type Kind int

const (
	// VideoFile opens address as a path to a video file.
	VideoFile Kind = iota
	// WebCamera opens address as a numeric device index.
	WebCamera
	// RtspStream opens address as an RTSP URL.
	RtspStream
)

// Source is a frame source; GoCVSource is its only implementation but
// callers depend on this interface so tests can substitute a fake.
type Source interface {
	Open(address string, kind Kind) error
	ReadFrame() (frame.View, error)
	Close() error
}

var errNoOpenCV = errors.New("capture: built without OpenCV support, rebuild with -tags withcv")

// GoCVSource stands in for the gocv-backed video source; every call
// reports errNoOpenCV for testing purposes only.
type GoCVSource struct{}

// NewGoCVSource returns an unopened GoCVSource.
func NewGoCVSource() *GoCVSource { return &GoCVSource{} }

// Open always fails for CircleCI testing only.
func (s *GoCVSource) Open(address string, kind Kind) error { return errNoOpenCV }

// ReadFrame always fails for CircleCI testing only.
func (s *GoCVSource) ReadFrame() (frame.View, error) { return frame.Empty(), errNoOpenCV }

// Close performs no operation for CircleCI testing only.
func (s *GoCVSource) Close() error { return nil }
