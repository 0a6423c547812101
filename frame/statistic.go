/*
NAME
  statistic.go

DESCRIPTION
  statistic.go defines Statistic, the per-frame count of pixels
  classified into each of the four vibration colour rungs, and
  Dispersion, the rolling per-channel spread computed over a history of
  Statistic values.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package frame

// Statistic gives the number of pixels classified in each of the four
// colour rungs for one vibration output frame.
type Statistic struct {
	Ch1, Ch2, Ch3, Ch4 uint16
}

// Dispersion holds the per-channel agitation signal: the square root of
// the sum of squared deviations from the mean over a Statistic history,
// divided by a configurable normalization factor. This is deliberately
// not a true standard deviation (there is no division by history
// length); the formula is preserved verbatim because downstream
// consumers depend on its exact numeric value.
type Dispersion struct {
	Ch1, Ch2, Ch3, Ch4 float32
}
