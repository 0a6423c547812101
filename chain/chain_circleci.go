//go:build !withcv
// +build !withcv

/*
NAME
  chain_circleci.go

DESCRIPTION
  Replaces Chain's gocv-backed implementation when built without OpenCV
  support. This is needed because CircleCI does not have a copy of
  OpenCV installed. Every stage is a no-op and the slot holds
  errNoOpenCV from construction onward.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package chain

import (
	"errors"

	"github.com/ausocean/vibra/colorbounds"
	"github.com/ausocean/vibra/config"
	"github.com/ausocean/vibra/frame"
)

var errNoOpenCV = errors.New("chain: built without OpenCV support, rebuild with -tags withcv")

// Chain stands in for the gocv-backed pipeline coordinator for testing
// purposes only.
type Chain struct {
	err error
}

// New returns a Chain whose slot already holds errNoOpenCV.
func New(bounds colorbounds.ColorBounds, settings config.ProcessingSettings) *Chain {
	return &Chain{err: errNoOpenCV}
}

func (c *Chain) RunChain(mat frame.View) *Chain             { return c }
func (c *Chain) Grayscale() *Chain                          { return c }
func (c *Chain) Canny() *Chain                              { return c }
func (c *Chain) Distribution(thresh, maxval float32) *Chain { return c }
func (c *Chain) Threshold(thresh, maxval float32) *Chain    { return c }
func (c *Chain) AppendFrame() *Chain                        { return c }
func (c *Chain) ReduceAbs() *Chain                          { return c }
func (c *Chain) AbsRecursively() *Chain                     { return c }
func (c *Chain) Vibrating() *Chain                          { return c }
func (c *Chain) Statistic() *Chain                          { return c }

// GetResult always reports errNoOpenCV for CircleCI testing only.
func (c *Chain) GetResult() (frame.View, error) { return frame.Empty(), c.err }

// GetDispersion always reports unavailable for CircleCI testing only.
func (c *Chain) GetDispersion() (frame.Dispersion, bool) { return frame.Dispersion{}, false }

// Close performs no operation for CircleCI testing only.
func (c *Chain) Close() {}
