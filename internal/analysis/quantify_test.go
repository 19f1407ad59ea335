package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyMetric(t *testing.T) {
	tests := []struct {
		bullet string
		want   MetricTier
	}{
		{"Increased revenue by 25%", MetricHigh},
		{"Saved $1.2M in annual spend", MetricHigh},
		{"Cut build time from 30 minutes to 5 minutes", MetricHigh},
		{"Made checkout 3x faster", MetricHigh},
		{"Reduced API latency from 200ms to 50ms", MetricHigh},
		{"Shrank image size from 2GB to 300MB", MetricHigh},
		{"Managed a team of 8 engineers", MetricMedium},
		{"Served 50k users", MetricMedium},
		{"Fixed 12 bugs", MetricLow},
		{"Processed 500GB daily", MetricLow},
		{"Ran a 6months pilot", MetricMedium},
		{"Finished 2nd of 40 teams", MetricMedium},
		{"Placed 1st in the hackathon", MetricNone},
		{"Joined the company in 2019", MetricNone},
		{"Wrote documentation", MetricNone},
	}

	for _, tt := range tests {
		t.Run(tt.bullet, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyMetric(tt.bullet))
		})
	}
}

func TestExtractMetrics_ScalesMagnitude(t *testing.T) {
	claims := ExtractMetrics("Grew ARR to $3.5M")

	if assert.Len(t, claims, 1) {
		assert.InDelta(t, 3.5e6, claims[0].Value, 1e-6)
		assert.Equal(t, MetricHigh, claims[0].Tier)
		assert.Equal(t, "$3.5m", claims[0].Text)
	}
}

func TestExtractMetrics_KeepsAttachedUnits(t *testing.T) {
	claims := ExtractMetrics("Cut build time from 40min to 8min")

	if assert.Len(t, claims, 2) {
		assert.Equal(t, "40min", claims[0].Text)
		assert.InDelta(t, 40.0, claims[0].Value, 1e-9)
		assert.Equal(t, MetricHigh, claims[0].Tier)
		assert.Equal(t, "8min", claims[1].Text)
	}
}

func TestQuantify_WeightedRate(t *testing.T) {
	qa := Quantify([]string{
		"Increased revenue by 25%",
		"Managed a team of 8 engineers",
		"Fixed 12 bugs",
		"Wrote documentation",
		"",
	})

	assert.Equal(t, 4, qa.Bullets)
	assert.Equal(t, 3, qa.Quantified)
	assert.Equal(t, 1, qa.High)
	assert.Equal(t, 1, qa.Medium)
	assert.Equal(t, 1, qa.Low)
	assert.InDelta(t, 50.0, qa.WeightedRate, 1e-9)
}

func TestQuantify_StrongerTierNeverLowersRate(t *testing.T) {
	filler := "Wrote documentation"
	low := Quantify([]string{"Fixed 12 bugs", filler}).WeightedRate
	medium := Quantify([]string{"Managed a team of 8 engineers", filler}).WeightedRate
	high := Quantify([]string{"Increased revenue by 25%", filler}).WeightedRate

	assert.Less(t, low, medium)
	assert.Less(t, medium, high)
	assert.InDelta(t, 15.0, low, 1e-9)
	assert.InDelta(t, 35.0, medium, 1e-9)
	assert.InDelta(t, 50.0, high, 1e-9)
}

func TestQuantify_RateBounds(t *testing.T) {
	assert.Equal(t, 0.0, Quantify(nil).WeightedRate)
	assert.InDelta(t, 100.0, Quantify([]string{"Raised conversion 40%", "Cut costs by $2M"}).WeightedRate, 1e-9)
}

func TestMetricTier_String(t *testing.T) {
	assert.Equal(t, "HIGH", MetricHigh.String())
	assert.Equal(t, "NONE", MetricNone.String())

	text, err := MetricMedium.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "MEDIUM", string(text))
}
