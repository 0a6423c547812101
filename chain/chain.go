//go:build withcv
// +build withcv

/*
NAME
  chain.go

DESCRIPTION
  chain.go implements Chain, the stateful pipeline coordinator that
  threads a result slot through a sequence of fluent stage methods,
  feeding a frame history and a statistic history ring and caching the
  rolling Dispersion once the statistic history first fills.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package chain implements Chain, the fluent pipeline coordinator
// composing the primitives package's stateless operations over a
// sliding window of frames and statistics.
package chain

import (
	"github.com/ausocean/vibra/colorbounds"
	"github.com/ausocean/vibra/config"
	"github.com/ausocean/vibra/frame"
	"github.com/ausocean/vibra/pipeline"
	"github.com/ausocean/vibra/primitives"
	"github.com/ausocean/vibra/ring"
)

// Chain owns a single result slot, a bounded frame history, a bounded
// statistic history and the settings used to drive each stage. Chain is
// not safe for concurrent use; one frame is threaded through at a time.
type Chain struct {
	result frame.View
	err    error

	frames *ring.Buffer[frame.View]
	stats  *ring.Buffer[frame.Statistic]

	dispersion *frame.Dispersion
	bounds     colorbounds.ColorBounds
	settings   config.ProcessingSettings
}

// New constructs a Chain with an empty Ok slot, frame and statistic
// histories of capacity settings.FramesCount, and bounds as the
// vibration classifier's ladder.
func New(bounds colorbounds.ColorBounds, settings config.ProcessingSettings) *Chain {
	c := &Chain{
		result:   frame.Empty(),
		bounds:   bounds,
		settings: settings,
	}
	c.frames = ring.New[frame.View](settings.FramesCount).WithEvictFunc(func(f frame.View) { f.Close() })
	c.stats = ring.New[frame.Statistic](settings.FramesCount)
	return c
}

// sticky reports whether the slot already holds an error; if so, err is
// left untouched (stage methods must not attempt further work).
func (c *Chain) sticky() bool { return c.err != nil }

// fail sets the slot to the given error, closing out any held frame.
func (c *Chain) fail(err error) {
	c.result.Close()
	c.result = frame.Empty()
	c.err = err
}

// ok replaces the slot with a successful frame, closing out any frame
// previously held. f must be a Mat distinct from the one already in the
// slot; every stage that calls ok allocates a fresh output Mat.
func (c *Chain) ok(f frame.View) {
	c.result.Close()
	c.result = f
	c.err = nil
}

// RunChain replaces the slot with mat, resetting the chain for a new
// frame. Returns c for fluent composition.
func (c *Chain) RunChain(mat frame.View) *Chain {
	c.ok(mat)
	return c
}

// Grayscale converts the slot's frame to single-channel luminance,
// mapping failure to pipeline.ErrGrayScale. Sticky on error.
func (c *Chain) Grayscale() *Chain {
	if c.sticky() {
		return c
	}
	out, err := primitives.Grayscale(c.result)
	if err != nil {
		c.fail(err)
		return c
	}
	c.ok(out)
	return c
}

// Canny runs sigma-adaptive Canny edge detection using the chain's
// configured aperture, sigma band and L2-gradient choice. Sticky on
// error.
func (c *Chain) Canny() *Chain {
	if c.sticky() {
		return c
	}
	out, err := primitives.CannyBySigma(c.result, c.settings.CannyKsize, c.settings.CannySigma, c.settings.CannyIsL2)
	if err != nil {
		c.fail(err)
		return c
	}
	c.ok(out)
	return c
}

// Distribution replaces the slot with the Sobel gradient-magnitude
// distribution of the current frame thresholded at (thresh, maxval).
// Supplemented from the reference implementation's optional
// gen_distribution_frame stage; see SPEC_FULL.md. Sticky on error.
func (c *Chain) Distribution(thresh, maxval float32) *Chain {
	if c.sticky() {
		return c
	}
	out, err := primitives.Distribution(c.result, thresh, maxval)
	if err != nil {
		c.fail(err)
		return c
	}
	c.ok(out)
	return c
}

// Threshold replaces the slot with a binary threshold of the current
// frame. Sticky on error.
func (c *Chain) Threshold(thresh, maxval float32) *Chain {
	if c.sticky() {
		return c
	}
	out, err := primitives.Threshold(c.result, thresh, maxval)
	if err != nil {
		c.fail(err)
		return c
	}
	c.ok(out)
	return c
}

// AppendFrame pushes a clone of the slot's frame into the frame
// history, evicting the head if the history is already at capacity,
// then resets the slot to an empty Ok frame. On error the slot is left
// untouched and nothing is pushed.
func (c *Chain) AppendFrame() *Chain {
	if c.sticky() {
		return c
	}
	c.frames.Push(c.result.Clone())
	c.ok(frame.Empty())
	return c
}

// ReduceAbs is the warm-up-gated left-fold N-way absolute difference
// stage. While the frame history has not yet reached FramesCount, the
// slot is set to pipeline.ErrAbs and callers are expected to continue
// iterating. Once full, the head of the history is dropped (sliding the
// window forward by one) before the fold runs.
func (c *Chain) ReduceAbs() *Chain {
	if c.frames.Len() < c.settings.FramesCount {
		c.fail(pipeline.ErrAbs)
		return c
	}
	if c.sticky() {
		return c
	}
	if head, ok := c.frames.PopFront(); ok {
		head.Close()
	}
	out, err := primitives.AbsReduce(c.frames.Slice())
	if err != nil {
		c.fail(pipeline.ErrAbs)
		return c
	}
	c.ok(out)
	return c
}

// AbsRecursively is the base-on-right recursive-descent counterpart of
// ReduceAbs, with the same warm-up discipline.
func (c *Chain) AbsRecursively() *Chain {
	if c.frames.Len() < c.settings.FramesCount {
		c.fail(pipeline.ErrAbs)
		return c
	}
	if c.sticky() {
		return c
	}
	if head, ok := c.frames.PopFront(); ok {
		head.Close()
	}
	out, err := primitives.AbsRecursive(c.frames.Slice())
	if err != nil {
		c.fail(pipeline.ErrAbs)
		return c
	}
	c.ok(out)
	return c
}

// Vibrating classifies the slot's frame with the neighbourhood
// vibration classifier, attaching the resulting Statistic to the
// classified frame, and leaves that frame in the slot. The statistic
// history is not touched here; Statistic performs the single push per
// frame. Failure is re-kinded to pipeline.ErrAbs for parity with the
// reference contract. Sticky on error.
func (c *Chain) Vibrating() *Chain {
	if c.sticky() {
		return c
	}
	out, err := primitives.Vibration(c.result, c.settings.Neighbours, c.settings.WindowSize, c.bounds)
	if err != nil {
		c.fail(pipeline.ErrAbs)
		return c
	}
	c.ok(out)
	return c
}

// Statistic reads the Statistic Vibrating attached to the slot's frame
// and performs this frame's single push into the statistic history
// (evicting the head if full). Once the statistic history has reached
// FramesCount, it computes and caches Dispersion. The slot is left
// unchanged on success. Sticky on error.
func (c *Chain) Statistic() *Chain {
	if c.sticky() {
		return c
	}
	if st, ok := c.result.GetStatistic(); ok {
		c.stats.Push(st)
	}
	if c.stats.Len() >= c.settings.FramesCount {
		d := primitives.ComputeDispersion(c.stats.Slice(), c.settings.Normalization)
		c.dispersion = &d
	}
	return c
}

// GetResult returns a clone of the current slot and, if the slot holds
// an error, that error.
func (c *Chain) GetResult() (frame.View, error) {
	if c.err != nil {
		return frame.View{}, c.err
	}
	return c.result.Clone(), nil
}

// GetDispersion returns the cached Dispersion and true, or the zero
// Dispersion and false if the statistic history has not yet filled.
func (c *Chain) GetDispersion() (frame.Dispersion, bool) {
	if c.dispersion == nil {
		return frame.Dispersion{}, false
	}
	return *c.dispersion, true
}

// Close releases all Mats still held by the slot and the frame history.
func (c *Chain) Close() {
	c.result.Close()
	for {
		f, ok := c.frames.PopFront()
		if !ok {
			break
		}
		f.Close()
	}
}
