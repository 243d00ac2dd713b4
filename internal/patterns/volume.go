package patterns

import "github.com/ducanhng/crypto-advisor/pkg/types"

const (
	volumeRecentBars = 5
	spikeThreshold   = 1.5
)

// AnalyzeVolume compares the recent 5-bar average volume against the full
// window average. A ratio above 1.5 is a spike; a spike coinciding with any
// nonzero price change in either direction counts as price/volume
// confirmation (intentionally permissive, not direction-specific).
func AnalyzeVolume(series []types.PricePoint) VolumeProfile {
	volumes := types.Volumes(series)
	if len(volumes) == 0 {
		return VolumeProfile{Ratio: 1}
	}

	full := 0.0
	for _, v := range volumes {
		full += v
	}
	full /= float64(len(volumes))

	recent := volumes
	if len(recent) > volumeRecentBars {
		recent = recent[len(recent)-volumeRecentBars:]
	}
	recentAvg := 0.0
	for _, v := range recent {
		recentAvg += v
	}
	recentAvg /= float64(len(recent))

	profile := VolumeProfile{Ratio: 1}
	if full > 0 {
		profile.Ratio = recentAvg / full
	}
	profile.Spike = profile.Ratio > spikeThreshold

	if profile.Spike && len(series) >= 2 {
		last := series[len(series)-1].Price
		prev := series[len(series)-2].Price
		profile.PriceVolumeConfirmed = last != prev
	}
	return profile
}
