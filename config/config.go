/*
NAME
  config.go

DESCRIPTION
  config.go provides ProcessingSettings, the Chain's configuration, built
  programmatically through functional options that validate and default
  their fields. There is no config file format; options are applied in
  order and a Logger (if supplied) records any field that falls back to
  its default.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package config provides ProcessingSettings, the programmatic
// configuration for a chain.Chain.
package config

import (
	"github.com/ausocean/utils/logging"
)

// Defaults for each recognised ProcessingSettings option.
const (
	DefaultFramesCount  = 15
	DefaultNeighbours   = 8
	DefaultWindowSize   = 2
	DefaultIsReducedAbs = true
	DefaultCannyKsize   = 3
	DefaultCannySigma   = 0.05
	DefaultCannyIsL2    = true
	DefaultNormalization = float32(10.0)
)

// ProcessingSettings is the Chain's configuration, set at construction
// time and not mutated afterwards.
type ProcessingSettings struct {
	// FramesCount is the window length of the frame and statistic
	// history.
	FramesCount int

	// Neighbours is the minimum neighbour count below which a pixel
	// stays black. Accepted and stored for API compatibility; the
	// vibration classifier's ladder starts at ColorBounds.Get(1)
	// regardless of this value (see primitives.Vibration).
	Neighbours int32

	// WindowSize is the half-side of the square neighbourhood used by
	// the vibration classifier (WindowSize=2 => 5x5).
	WindowSize int32

	// IsReducedAbs selects the fold-style (true) vs recursive-style
	// (false) absolute-difference reduction. Chain does not read it;
	// the caller runs Chain.ReduceAbs or Chain.AbsRecursively to match,
	// as cmd/vibra does.
	IsReducedAbs bool

	// CannyKsize is the Sobel aperture passed to primitives.Canny, which
	// does not apply it: edge detection always uses OpenCV's default
	// aperture of 3.
	CannyKsize int

	// CannySigma is the sigma-adaptive threshold band.
	CannySigma float64

	// CannyIsL2 is the L2-gradient choice passed to primitives.Canny,
	// which does not apply it: edge detection always uses the L1
	// gradient magnitude.
	CannyIsL2 bool

	// Normalization is the scalar divisor applied to the per-channel
	// standard deviation when computing Dispersion.
	Normalization float32

	// Logger receives Info-level notices when a field is defaulted.
	// May be nil, in which case defaulting is silent.
	Logger logging.Logger
}

// Option configures a ProcessingSettings during New.
type Option func(*ProcessingSettings)

// WithLogger attaches a logger used to report defaulted fields.
func WithLogger(log logging.Logger) Option {
	return func(s *ProcessingSettings) { s.Logger = log }
}

// WithFramesCount sets the sliding window length.
func WithFramesCount(n int) Option {
	return func(s *ProcessingSettings) { s.FramesCount = n }
}

// WithNeighbours sets the (unused-by-the-ladder, API-compatible)
// neighbour floor.
func WithNeighbours(n int32) Option {
	return func(s *ProcessingSettings) { s.Neighbours = n }
}

// WithWindowSize sets the half-side of the vibration neighbourhood.
func WithWindowSize(n int32) Option {
	return func(s *ProcessingSettings) { s.WindowSize = n }
}

// WithReducedAbs selects the fold-style (true) or recursive-style
// (false) N-way absolute difference reduction.
func WithReducedAbs(reduced bool) Option {
	return func(s *ProcessingSettings) { s.IsReducedAbs = reduced }
}

// WithCanny sets the Canny aperture, sigma band and L2-gradient choice.
func WithCanny(ksize int, sigma float64, isL2 bool) Option {
	return func(s *ProcessingSettings) {
		s.CannyKsize = ksize
		s.CannySigma = sigma
		s.CannyIsL2 = isL2
	}
}

// WithNormalization sets the Dispersion normalization divisor.
func WithNormalization(n float32) Option {
	return func(s *ProcessingSettings) { s.Normalization = n }
}

// New builds a ProcessingSettings starting from the documented defaults
// and applying opts in order. After options are applied, FramesCount,
// WindowSize and CannyKsize fall back to their defaults when zero or
// negative, and Normalization when zero, logging each substitution if a
// Logger was supplied via WithLogger.
func New(opts ...Option) ProcessingSettings {
	s := ProcessingSettings{
		FramesCount:   DefaultFramesCount,
		Neighbours:    DefaultNeighbours,
		WindowSize:    DefaultWindowSize,
		IsReducedAbs:  DefaultIsReducedAbs,
		CannyKsize:    DefaultCannyKsize,
		CannySigma:    DefaultCannySigma,
		CannyIsL2:     DefaultCannyIsL2,
		Normalization: DefaultNormalization,
	}
	for _, opt := range opts {
		opt(&s)
	}

	if s.FramesCount <= 0 {
		s.logInvalidField("FramesCount", DefaultFramesCount)
		s.FramesCount = DefaultFramesCount
	}
	if s.WindowSize <= 0 {
		s.logInvalidField("WindowSize", DefaultWindowSize)
		s.WindowSize = DefaultWindowSize
	}
	if s.CannyKsize <= 0 {
		s.logInvalidField("CannyKsize", DefaultCannyKsize)
		s.CannyKsize = DefaultCannyKsize
	}
	if s.Normalization == 0 {
		s.logInvalidField("Normalization", DefaultNormalization)
		s.Normalization = DefaultNormalization
	}
	return s
}

func (s *ProcessingSettings) logInvalidField(name string, def interface{}) {
	if s.Logger == nil {
		return
	}
	s.Logger.Info(name+" bad or unset, defaulting", name, def)
}
