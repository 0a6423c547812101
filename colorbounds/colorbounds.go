/*
NAME
  colorbounds.go

DESCRIPTION
  colorbounds.go provides the ColorBounds value object: four ascending
  neighbour-count thresholds used by the vibration classifier to pick a
  colour rung for each non-zero pixel.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package colorbounds provides the ColorBounds value object used to
// classify neighbourhood pixel counts into one of five colour rungs.
package colorbounds

import "github.com/pkg/errors"

// Defaults for the four ascending thresholds, matching the reference
// implementation's {8,9,10,11}.
const (
	DefaultCh1 = 8
	DefaultCh2 = 9
	DefaultCh3 = 10
	DefaultCh4 = 11
)

// ColorBounds holds four ascending thresholds b1 <= b2 <= b3 <= b4. It is
// immutable once constructed.
type ColorBounds struct {
	ch1, ch2, ch3, ch4 int32
}

// New returns a ColorBounds with the given thresholds, validating that
// they are ascending. An out-of-order set of thresholds is a
// configuration mistake, not a recoverable runtime condition, so it is
// reported rather than silently reordered or clamped.
func New(ch1, ch2, ch3, ch4 int32) (ColorBounds, error) {
	if !(ch1 <= ch2 && ch2 <= ch3 && ch3 <= ch4) {
		return ColorBounds{}, errors.Errorf("colorbounds: thresholds must be ascending, got %d,%d,%d,%d", ch1, ch2, ch3, ch4)
	}
	return ColorBounds{ch1: ch1, ch2: ch2, ch3: ch3, ch4: ch4}, nil
}

// Default returns the default ColorBounds {8,9,10,11}.
func Default() ColorBounds {
	b, _ := New(DefaultCh1, DefaultCh2, DefaultCh3, DefaultCh4)
	return b
}

// Get returns the threshold at the given 1-based index. Any index outside
// 1..4 returns 0; this is a defensive default and is not exercised by the
// vibration classifier, since neighbour counts are always >= 1 (the
// centre pixel itself is counted).
func (b ColorBounds) Get(index int32) int32 {
	switch index {
	case 1:
		return b.ch1
	case 2:
		return b.ch2
	case 3:
		return b.ch3
	case 4:
		return b.ch4
	default:
		return 0
	}
}
