//go:build withcv
// +build withcv

/*
NAME
  capture.go

DESCRIPTION
  capture.go implements Source, the frame source adapter wrapping
  gocv.VideoCapture: video file, RTSP stream and webcam device inputs
  all open through the same call, keeping the core pipeline opaque to
  which one is in use.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package capture implements the gocv-backed video frame source.
package capture

import (
	"strconv"

	"gocv.io/x/gocv"

	"github.com/pkg/errors"

	"github.com/ausocean/vibra/frame"
	"github.com/ausocean/vibra/pipeline"
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

// GoCVSource is a Source backed by gocv.VideoCapture.
type GoCVSource struct {
	cap *gocv.VideoCapture
}

// NewGoCVSource returns an unopened GoCVSource.
func NewGoCVSource() *GoCVSource { return &GoCVSource{} }

// Open opens address according to kind. For WebCamera, address is
// parsed as an integer device index; a non-numeric address yields
// pipeline.ErrOpenStream. VideoFile and RtspStream pass address through
// to gocv as a path or URL.
func (s *GoCVSource) Open(address string, kind Kind) error {
	var (
		cap *gocv.VideoCapture
		err error
	)
	switch kind {
	case VideoFile, RtspStream:
		cap, err = gocv.OpenVideoCapture(address)
	case WebCamera:
		device, perr := strconv.Atoi(address)
		if perr != nil {
			return errors.Wrapf(pipeline.ErrOpenStream, "device index %q is not numeric", address)
		}
		cap, err = gocv.OpenVideoCapture(device)
	default:
		return errors.Wrapf(pipeline.ErrUnsupportedSource, "unknown stream kind %d", kind)
	}
	if err != nil {
		return errors.Wrapf(pipeline.ErrOpenStream, "failed to open %q: %v", address, err)
	}
	s.cap = cap
	return nil
}

// ReadFrame reads the next frame from the stream. Callers must Close
// the returned View.
func (s *GoCVSource) ReadFrame() (frame.View, error) {
	mat := gocv.NewMat()
	if ok := s.cap.Read(&mat); !ok {
		mat.Close()
		return frame.View{}, pipeline.ErrNextFrame
	}
	if mat.Empty() {
		mat.Close()
		return frame.View{}, pipeline.ErrNextFrame
	}
	return frame.New(mat), nil
}

// Close releases the underlying capture device.
func (s *GoCVSource) Close() error {
	if s.cap == nil {
		return nil
	}
	if err := s.cap.Close(); err != nil {
		return errors.Wrap(pipeline.ErrCloseStream, err.Error())
	}
	return nil
}
