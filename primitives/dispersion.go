/*
NAME
  dispersion.go

DESCRIPTION
  dispersion.go computes the rolling per-channel dispersion over a
  Statistic history: the square root of the sum of squared deviations
  from a truncated-integer mean, divided by a normalization factor. This
  is not a true population standard deviation; the formula is preserved
  verbatim because downstream consumers depend on its exact value.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package primitives

import (
	"math"

	"github.com/ausocean/vibra/frame"
)

// ComputeDispersion computes Dispersion over stats. For each channel:
// the mean is an unsigned-integer truncated mean; the sum of squared
// deviations is accumulated in float32 from that truncated mean; the
// result is sqrt(ssd)/normalization. Division by len(stats), which a
// true population standard deviation would require, is deliberately
// omitted. If stats is empty, the zero Dispersion is returned.
func ComputeDispersion(stats []frame.Statistic, normalization float32) frame.Dispersion {
	if len(stats) == 0 {
		return frame.Dispersion{}
	}

	get := func(s frame.Statistic, ch int) uint16 {
		switch ch {
		case 1:
			return s.Ch1
		case 2:
			return s.Ch2
		case 3:
			return s.Ch3
		default:
			return s.Ch4
		}
	}

	channelDispersion := func(ch int) float32 {
		var sum uint32
		for _, s := range stats {
			sum += uint32(get(s, ch))
		}
		mean := sum / uint32(len(stats))

		var ssd float32
		for _, s := range stats {
			d := float32(int32(get(s, ch)) - int32(mean))
			ssd += d * d
		}
		return float32(math.Sqrt(float64(ssd))) / normalization
	}

	return frame.Dispersion{
		Ch1: channelDispersion(1),
		Ch2: channelDispersion(2),
		Ch3: channelDispersion(3),
		Ch4: channelDispersion(4),
	}
}
