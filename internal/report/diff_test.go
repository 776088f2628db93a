package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiff_IdenticalStatsProduceNoChanges(t *testing.T) {
	s := CampaignStats{TotalViews: 100, TotalPosts: 3, AvgEngagementRate: 0.05}
	assert.Empty(t, Diff(s, s))
}

func TestDiff_CountFields(t *testing.T) {
	before := CampaignStats{TotalViews: 100, TikTokViews: 100}
	after := CampaignStats{TotalViews: 600, TikTokViews: 500, IGReelViews: 100}

	changes := Diff(before, after)

	fields := make([]string, 0, len(changes))
	for _, c := range changes {
		fields = append(fields, c.Field)
	}
	assert.Equal(t, []string{"totalViews", "tiktokViews", "igReelViews"}, fields)
	assert.Equal(t, "totalViews: 100 -> 600", changes[0].String())
}

func TestDiff_RateWithinToleranceIgnored(t *testing.T) {
	before := CampaignStats{AvgEngagementRate: 0.050}
	after := CampaignStats{AvgEngagementRate: 0.055}
	assert.Empty(t, Diff(before, after))

	after.AvgEngagementRate = 0.075
	changes := Diff(before, after)
	assert.Len(t, changes, 1)
	assert.Equal(t, FormatPercent, changes[0].Format)
	assert.Equal(t, "avgEngagementRate: 5.00% -> 7.50%", changes[0].String())
}
